// Package clock は購入時刻やヘルスチェックの時刻を差し替え可能にする
package clock

import (
	"sync"
	"time"
)

// Clock は現在時刻を返す
type Clock interface {
	Now() time.Time
}

// Func は関数を Clock として扱うアダプタ
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// NewSystem は UTC の実時刻を返す Clock
func NewSystem() Clock {
	return Func(func() time.Time { return time.Now().UTC() })
}

// NewFixed は常に t を返す Clock
func NewFixed(t time.Time) Clock {
	at := t.UTC()
	return Func(func() time.Time { return at })
}

// NewStepping は呼ばれるたびに step ずつ進む Clock
// 最初の呼び出しは start を返す
func NewStepping(start time.Time, step time.Duration) Clock {
	var mu sync.Mutex
	next := start.UTC()
	return Func(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	})
}
