package dateutil

import "time"

// Date truncates t to its local calendar date.
func Date(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether a and b fall on the same local calendar date.
func IsSameDay(a, b time.Time) bool {
	return Date(a).Equal(Date(b))
}

// IsYesterday reports whether a falls on the calendar date right before b.
func IsYesterday(a, b time.Time) bool {
	return Date(a).Equal(Date(b).AddDate(0, 0, -1))
}

func LastWeek(now time.Time) time.Time {
	return now.AddDate(0, 0, -7)
}

func LastMonth(now time.Time) time.Time {
	return now.AddDate(0, -1, 0)
}

// BeginningOfWeek returns the monday midnight of the week containing t.
func BeginningOfWeek(t time.Time) time.Time {
	t = Date(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	return t.AddDate(0, 0, -(weekday - 1))
}

// BeginningOfMonth returns the first midnight of the month containing t.
func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}
