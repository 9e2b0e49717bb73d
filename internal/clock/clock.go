// Package clock は現在時刻と「今日」の日付を提供します。
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System は実時刻を返す Clock
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed は常に同じ時刻を返す Clock (テスト用)
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// Today は loc における今日の日付を UTC の 0 時として返します。
// 日付の比較・保存はすべてこの値で行う。
func Today(c Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(c.Now().In(loc))
}

// DateOf は t のカレンダー日付 (t のロケーション基準) を UTC 0 時にして返します。
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays は日付に n 日を加えます。
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// FormatDate は YYYY-MM-DD 形式の文字列を返します。
func FormatDate(date time.Time) string {
	return date.Format(time.DateOnly)
}
