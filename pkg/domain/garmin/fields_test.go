package garmin

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"01:30:45", 5445},
		{"03:34:48", 12888},
		{"00:02:10.0", 130},
		{"58:51", 3531},
		{"02:10.5", 130.5},
		{"--", 0},
		{"", 0},
		{"5445", 0},
		{"1:2:3:4", 0},
		{"aa:bb:cc", 0},
	}

	for _, tt := range tests {
		if got := ParseTime(tt.raw); got != tt.want {
			t.Errorf("ParseTime(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	date, ok := ParseDate("2025-12-27 14:12:58")
	if !ok {
		t.Fatal("expected valid date")
	}
	if date.Year() != 2025 || date.Month() != time.December || date.Day() != 27 {
		t.Errorf("unexpected date components: %v", date)
	}
	if date.Hour() != 14 || date.Minute() != 12 || date.Second() != 58 {
		t.Errorf("unexpected time components: %v", date)
	}

	if _, ok := ParseDate(""); ok {
		t.Error("expected empty string to be invalid")
	}
	if _, ok := ParseDate("not-a-date"); ok {
		t.Error("expected garbage to be invalid")
	}

	// Date-only cells still parse.
	if _, ok := ParseDate("2025-06-15"); !ok {
		t.Error("expected date-only cell to be valid")
	}
}

func TestInYear(t *testing.T) {
	june, _ := ParseDate("2025-06-15 10:00:00")
	if !InYear(june, 2025) {
		t.Error("expected 2025 date to match 2025")
	}
	newYearsEve, _ := ParseDate("2024-12-31 23:59:59")
	if InYear(newYearsEve, 2025) {
		t.Error("expected 2024 date not to match 2025")
	}
}
