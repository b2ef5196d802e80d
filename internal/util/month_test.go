package util

import "testing"

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 1, 31},
		{2024, 2, 29}, // leap year
		{2023, 2, 28},
		{2100, 2, 28}, // century, not a leap year
		{2000, 2, 29}, // divisible by 400
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	// 2024-01-01 was a Monday, 2024-09-01 a Sunday
	if got := FirstWeekday(2024, 1); got != 1 {
		t.Errorf("FirstWeekday(2024, 1) = %d, want 1", got)
	}
	if got := FirstWeekday(2024, 9); got != 0 {
		t.Errorf("FirstWeekday(2024, 9) = %d, want 0", got)
	}
}

func TestClampDay(t *testing.T) {
	if got := ClampDay(2024, 2, 31); got != 29 {
		t.Errorf("ClampDay(2024, 2, 31) = %d, want 29", got)
	}
	if got := ClampDay(2023, 2, 31); got != 28 {
		t.Errorf("ClampDay(2023, 2, 31) = %d, want 28", got)
	}
	if got := ClampDay(2024, 4, 31); got != 30 {
		t.Errorf("ClampDay(2024, 4, 31) = %d, want 30", got)
	}
	if got := ClampDay(2024, 1, 15); got != 15 {
		t.Errorf("ClampDay(2024, 1, 15) = %d, want 15", got)
	}
}
