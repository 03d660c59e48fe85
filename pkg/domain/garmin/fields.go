package garmin

import (
	"strconv"
	"strings"
	"time"
)

// dateLayout matches the Date column of an English Garmin export.
const dateLayout = "2006-01-02 15:04:05"

// ParseTime converts a Garmin duration cell (H:MM:SS or M:SS, optionally with
// fractional seconds) to seconds. Empty cells, the "--" placeholder, and any
// unrecognized shape yield 0.
func ParseTime(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == noValue {
		return 0
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 3:
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0
		}
		seconds, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0
		}
		return float64(hours)*3600 + float64(minutes)*60 + seconds
	case 2:
		minutes, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0
		}
		seconds, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0
		}
		return float64(minutes)*60 + seconds
	}
	return 0
}

// ParseDistance converts a distance cell to a float64. The unit is whatever
// the export used for that activity type; the orchestrator applies the
// meters-to-km correction afterwards. Invalid input yields 0.
func ParseDistance(raw string) float64 {
	cleaned := normalizeNumber(raw, hintDecimal)
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseCalories converts a calories cell to an int. Invalid input yields 0.
func ParseCalories(raw string) int {
	return parseInteger(raw)
}

// ParseElevation converts an elevation cell to meters. Invalid input yields 0.
func ParseElevation(raw string) int {
	return parseInteger(raw)
}

func parseInteger(raw string) int {
	cleaned := normalizeNumber(raw, hintGrouped)
	if cleaned == "" {
		return 0
	}
	// Integer cells occasionally carry a decimal fraction; truncate it the
	// way parseInt would.
	if i := strings.IndexByte(cleaned, '.'); i >= 0 {
		cleaned = cleaned[:i]
	}
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return value
}

// ParseDate parses a Garmin date cell (2006-01-02 15:04:05). Unlike the
// numeric parsers there is no usable default for a date, so failure is
// reported explicitly for the caller to surface as a row error.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	// Some exports drop the time-of-day entirely.
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// InYear reports whether the date falls in the target calendar year.
func InYear(t time.Time, year int) bool {
	return t.Year() == year
}
