package garmin

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Some Garmin exports wrap each entire row in one outer quoted string, so a
// naive field split sees a single column per row. repairWholeRowQuoting
// detects that shape and rebuilds the text with per-field quoting before the
// structural parse.

// singleFieldRowThreshold is the fraction of data rows that must collapse to
// exactly one field before the repair kicks in. A heuristic: single-column
// real data would trip it, which we accept as a known limitation.
const singleFieldRowThreshold = 0.5

type rawRowError struct {
	line    int
	message string
}

// readRecords tokenizes CSV text without header handling, collecting
// recoverable tokenizer errors instead of aborting.
func readRecords(text string) ([][]string, []rawRowError) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	var records [][]string
	var rowErrs []rawRowError
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				rowErrs = append(rowErrs, rawRowError{line: parseErr.Line, message: parseErr.Error()})
				continue
			}
			rowErrs = append(rowErrs, rawRowError{message: err.Error()})
			break
		}
		records = append(records, record)
	}
	return records, rowErrs
}

func repairWholeRowQuoting(text string) string {
	records, _ := readRecords(text)
	if len(records) < 2 {
		return text
	}

	dataRows := len(records) - 1
	singleFieldRows := 0
	for _, record := range records[1:] {
		if len(record) == 1 {
			singleFieldRows++
		}
	}
	if float64(singleFieldRows) <= float64(dataRows)*singleFieldRowThreshold {
		return text
	}

	// Re-serialize: single-field rows are unwrapped to their content, which
	// is the real row text; multi-field rows are re-quoted field by field.
	var sb strings.Builder
	for i, record := range records {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if len(record) == 1 {
			sb.WriteString(record[0])
			continue
		}
		for j, field := range record {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(quoteField(field))
		}
	}
	return sb.String()
}

func quoteField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// dedupeHeaders makes repeated column names unique by suffixing _1, _2, ...
// to each duplicate, so every header can serve as a distinct field key.
// Garmin exports repeat some columns ("Total Descent" twice, for example).
func dedupeHeaders(headers []string) []string {
	seen := make(map[string]int, len(headers))
	out := make([]string, len(headers))
	for i, name := range headers {
		count := seen[name]
		seen[name] = count + 1
		if count == 0 {
			out[i] = name
			continue
		}
		out[i] = fmt.Sprintf("%s_%d", name, count)
	}
	return out
}
