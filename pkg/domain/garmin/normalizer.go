package garmin

import "strings"

// Garmin Connect formats numbers according to the account locale, so the same
// export schema can carry "1,234.56" (English) or "1.234,56" (European).
// normalizeNumber rewrites a raw cell into a plain decimal string that
// strconv can parse. The heuristic lives here, in one pure function, so it
// can be swapped out without touching the field parsers.

// numericHint tells the normalizer how to read a lone dot followed by exactly
// three digits, the one genuinely ambiguous shape ("1.500" is either 1.5 or
// 1500 depending on locale).
type numericHint int

const (
	// hintDecimal reads the trailing 3-digit dot group as a decimal
	// fraction. Used for distance cells.
	hintDecimal numericHint = iota
	// hintGrouped reads it as a thousands separator. Used for integer
	// cells (calories, elevation).
	hintGrouped
)

// noValue is the placeholder Garmin emits for absent metrics.
const noValue = "--"

// normalizeNumber returns a cleaned numeric string, or "" when the cell holds
// no value at all.
func normalizeNumber(raw string, hint numericHint) string {
	s := strings.TrimSpace(raw)
	if s == "" || s == noValue {
		return ""
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		// Both separators present: the rightmost one is the decimal
		// point, the other is a thousands separator.
		if lastDot > lastComma {
			return strings.ReplaceAll(s, ",", "")
		}
		s = strings.ReplaceAll(s, ".", "")
		return strings.Replace(s, ",", ".", 1)

	case lastComma >= 0:
		// Comma only. Two or fewer trailing digits reads as a decimal
		// comma ("45,25"); anything else as grouping ("1,500").
		if len(s)-lastComma-1 <= 2 {
			return strings.ReplaceAll(s[:lastComma], ",", "") + "." + s[lastComma+1:]
		}
		return strings.ReplaceAll(s, ",", "")

	case lastDot >= 0:
		// Dot only. Exactly three trailing digits is ambiguous; the
		// hint decides. Garmin's English exports use dot decimals for
		// distance but dot grouping never appears there, so distance
		// keeps the decimal reading.
		if hint == hintGrouped && len(s)-lastDot-1 == 3 {
			return strings.ReplaceAll(s, ".", "")
		}
		return s
	}

	return s
}
