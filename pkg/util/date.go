package util

import (
    "time"
)

// ISODate is the calendar-date layout used across the bid data set.
const ISODate = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD date string. Returns (t, true) on success.
// Strings carrying a trailing time component are truncated to the date part.
func ParseISODate(s string) (time.Time, bool) {
    if s == "" {
        return time.Time{}, false
    }
    if len(s) > len(ISODate) {
        s = s[:len(ISODate)]
    }
    t, err := time.Parse(ISODate, s)
    if err != nil {
        return time.Time{}, false
    }
    return t, true
}

// FormatISODate renders t as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
    return t.Format(ISODate)
}

// AddMonthsClamped advances t by n calendar months, clamping the day of month
// to the last day of the target month. time.AddDate normalizes overflow
// (Jan 31 + 1 month = Mar 2/3), which is the wrong contract for monthly
// forecast steps; clamping keeps Jan 31 + 1 month = Feb 29 in leap years.
func AddMonthsClamped(t time.Time, n int) time.Time {
    y, m, d := t.Date()
    firstOfTarget := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
    last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month())
    if d > last {
        d = last
    }
    return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, t.Location())
}

// FutureDates returns n dates, each the last date advanced by 1..n calendar
// months with end-of-month clamping.
func FutureDates(last time.Time, n int) []time.Time {
    if n <= 0 {
        return nil
    }
    out := make([]time.Time, 0, n)
    for k := 1; k <= n; k++ {
        out = append(out, AddMonthsClamped(last, k))
    }
    return out
}

func daysInMonth(year int, month time.Month) int {
    // day 0 of the next month is the last day of this month
    return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
