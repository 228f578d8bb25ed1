package play

import (
	"strings"
	"time"
)

// dateLayout は日付フィルターの形式（月・日は1桁も受け付ける）
const dateLayout = "2006-1-2"

// Filter は公演一覧の絞り込み条件
// 各条件はゼロ値なら無視され、指定されたものは AND で合成される
type Filter struct {
	Date  *time.Time // UTC の暦日
	Genre string
}

// ParseDate は YYYY-MM-DD 形式の日付を UTC の暦日として解析する
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return d, nil
}

// NewFilter は文字列の条件から Filter を作成する
func NewFilter(date, genre string) (Filter, error) {
	f := Filter{Genre: genre}
	if date != "" {
		d, err := ParseDate(date)
		if err != nil {
			return Filter{}, err
		}
		f.Date = &d
	}
	return f, nil
}

// Matches は公演が条件に合致するかを返す
func (f Filter) Matches(p *Play) bool {
	if f.Date != nil && !sameCivilDate(p.StartAt.UTC(), *f.Date) {
		return false
	}
	if f.Genre != "" && !strings.EqualFold(p.Genre, f.Genre) {
		return false
	}
	return true
}

func sameCivilDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
