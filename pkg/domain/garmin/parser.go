// Package garmin parses Garmin Connect activity CSV exports into canonical
// activity records. The export format is locale-sensitive and shows up in a
// handful of malformed variants, so parsing runs as a pipeline: whole-row
// quote repair, structural CSV parse, header dedup, then per-row field
// parsing with error collection.
package garmin

import (
	"fmt"
	"strings"

	"github.com/activeyear/server/pkg/domain/activity"
)

// requiredHeaders are the three markers used to detect a non-English export.
// A single missing header is tolerated as a schema variation; losing more
// than one means the file is almost certainly exported in another language.
var requiredHeaders = []string{"Activity Type", "Date", "Distance"}

const wrongLanguageMessage = "Is your Garmin Connect in English? We couldn't find the expected headers. Please export your CSV in English."

// Parse ingests a Garmin CSV export and returns the activities recorded in
// the target year plus any parse diagnostics. All failures are reported as
// ParseError values; Parse never panics on malformed input.
func Parse(csvText string, targetYear int) activity.ParseResult {
	activities := []activity.Activity{}
	parseErrors := []activity.ParseError{}

	text := repairWholeRowQuoting(csvText)
	records, rowErrs := readRecords(text)

	var headers []string
	if len(records) > 0 {
		headers = make([]string, len(records[0]))
		for i, name := range records[0] {
			headers[i] = strings.TrimSpace(name)
		}
		headers = dedupeHeaders(headers)
	}

	missing := 0
	for _, want := range requiredHeaders {
		found := false
		for _, have := range headers {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			missing++
		}
	}
	if missing > 1 {
		return activity.ParseResult{
			Activities: activities,
			Errors: []activity.ParseError{{
				Type:    activity.ErrWrongLanguage,
				Row:     0,
				Message: wrongLanguageMessage,
			}},
		}
	}

	for _, rowErr := range rowErrs {
		parseErrors = append(parseErrors, activity.ParseError{
			Type:    activity.ErrUnknown,
			Row:     rowErr.line,
			Message: rowErr.message,
		})
	}

	for i, record := range records[1:] {
		rowNum := i + 2 // 1-indexed, header row included
		row := keyedRow(headers, record)

		rawType := row["Activity Type"]
		rawDate := row["Date"]
		if rawType == "" || rawDate == "" {
			parseErrors = append(parseErrors, activity.ParseError{
				Type:    activity.ErrMissingColumn,
				Row:     rowNum,
				Message: "Missing required column (Activity Type or Date)",
			})
			continue
		}

		date, ok := ParseDate(rawDate)
		if !ok {
			parseErrors = append(parseErrors, activity.ParseError{
				Type:    activity.ErrInvalidDate,
				Row:     rowNum,
				Message: fmt.Sprintf("Invalid date format: %s", rawDate),
			})
			continue
		}

		if !InYear(date, targetYear) {
			continue
		}

		distance := ParseDistance(row["Distance"])
		if DistanceInMeters(rawType) {
			distance /= 1000
		}

		duration := row["Total Time"]
		if duration == "" {
			duration = row["Time"]
		}

		activities = append(activities, activity.Activity{
			Date:      date,
			Type:      MapType(rawType),
			Title:     row["Title"],
			Distance:  distance,
			Duration:  ParseTime(duration),
			Calories:  ParseCalories(row["Calories"]),
			Elevation: ParseElevation(row["Total Ascent"]),
			Favorite:  strings.EqualFold(strings.TrimSpace(row["Favorite"]), "true"),
		})
	}

	return activity.ParseResult{Activities: activities, Errors: parseErrors}
}

func keyedRow(headers []string, record []string) map[string]string {
	row := make(map[string]string, len(headers))
	for i, name := range headers {
		if i < len(record) {
			row[name] = record[i]
		}
	}
	return row
}
