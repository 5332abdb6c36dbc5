package util

import "time"

// PreviousMonth returns the year and month for the previous month
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// MonthBounds returns the first instant of the month and the first instant of
// the following month in loc
func MonthBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
