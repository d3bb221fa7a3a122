package utils

import "time"

// Все даты в аналитике считаются по календарю в UTC, чтобы группировка по
// дням совпадала с DATE() над timestamptz-колонками в базе.

const DayFormat = "2006-01-02"

// Today returns the current calendar date in UTC, truncated to midnight.
func Today() time.Time {
	return TruncateToDay(time.Now().UTC())
}

// TruncateToDay drops the time-of-day part, keeping the UTC calendar date.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	day := TruncateToDay(t)
	// time.Weekday: Sunday = 0, поэтому сдвигаем к Monday = 0
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// DaysBetween returns the number of calendar days from a to b.
// Works on truncated dates so a late-evening timestamp still counts as
// a full day once midnight passes.
func DaysBetween(a, b time.Time) int {
	from := TruncateToDay(a)
	to := TruncateToDay(b)
	return int(to.Sub(from).Hours() / 24)
}

// DayKey formats a date as the map key used for daily activity counts.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// ParseDay parses a DayFormat string back into a UTC date.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.UTC)
}
