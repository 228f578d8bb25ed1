package play

import (
	"strings"
	"time"
)

// SeatCountPolicy は空席数が0を下回る場合の扱いを表す
type SeatCountPolicy string

const (
	// SeatCountClamp は空席数を0で止める
	SeatCountClamp SeatCountPolicy = "clamp"
	// SeatCountUnguarded は空席数が負になることを許す
	SeatCountUnguarded SeatCountPolicy = "unguarded"
)

// Play は上演（公演）エンティティを表す
type Play struct {
	ID             int
	Title          string
	StartAt        time.Time
	Duration       int // 分
	Genre          string
	Description    string
	Hall           string
	AvailableSeats int
}

// Clone はコピーを返す（ストア外での変更を防ぐため）
func (p *Play) Clone() *Play {
	c := *p
	return &c
}

// RemainingAfterSale は1席販売した後の空席数を返す
func (p *Play) RemainingAfterSale(policy SeatCountPolicy) int {
	if policy != SeatCountUnguarded && p.AvailableSeats <= 0 {
		return 0
	}
	return p.AvailableSeats - 1
}

// Validate は公演の検証を行う
func (p *Play) Validate() error {
	if p.ID <= 0 {
		return ErrInvalidPlayID
	}
	if p.Title == "" {
		return ErrPlayTitleRequired
	}
	if p.AvailableSeats < 0 {
		return ErrInvalidAvailableSeats
	}
	return nil
}

// ParsePolicy は文字列からポリシーを返す。不明な値は clamp とする
func ParsePolicy(s string) SeatCountPolicy {
	if SeatCountPolicy(strings.ToLower(s)) == SeatCountUnguarded {
		return SeatCountUnguarded
	}
	return SeatCountClamp
}
