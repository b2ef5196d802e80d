package util

import "time"

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this month
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the month, with
// Sunday as 0, matching a Sunday-first calendar grid
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// ClampDay returns the target day clamped to the days in the given month
// (e.g. day 31 in February yields 28 or 29)
func ClampDay(year, month, targetDay int) int {
	lastDay := DaysInMonth(year, month)
	if targetDay > lastDay {
		return lastDay
	}
	return targetDay
}
