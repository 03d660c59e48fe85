// Command activeyear parses a Garmin CSV export and prints a year summary.
//
// Usage:
//
//	activeyear -file activities.csv [-year 2025] [-json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/activeyear/server/pkg/bootstrap"
	"github.com/activeyear/server/pkg/domain/activity"
	"github.com/activeyear/server/pkg/domain/garmin"
	"github.com/activeyear/server/pkg/domain/stats"
	"github.com/activeyear/server/pkg/format"
)

func main() {
	file := flag.String("file", "", "path to the Garmin CSV export")
	year := flag.Int("year", bootstrap.DefaultTrackedYear, "calendar year to summarize")
	asJSON := flag.Bool("json", false, "print the summary payload as JSON")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: activeyear -file activities.csv [-year 2025] [-json]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", *file, err)
		os.Exit(1)
	}

	result := garmin.Parse(string(data), *year)
	for _, parseErr := range result.Errors {
		if parseErr.Type == activity.ErrWrongLanguage {
			fmt.Fprintln(os.Stderr, parseErr.Message)
			os.Exit(1)
		}
	}

	yearStats := stats.CalculateYearStats(result.Activities)
	records := stats.CalculatePersonalRecords(result.Activities)
	breakdown := stats.ConsolidateBreakdown(stats.CalculateSportBreakdown(result.Activities))
	pattern := stats.CalculateWeeklyPattern(result.Activities)

	if *asJSON {
		payload := struct {
			Year          int                    `json:"year"`
			Stats         stats.YearStats        `json:"stats"`
			Records       stats.PersonalRecords  `json:"records"`
			Breakdown     []stats.SportBreakdown `json:"breakdown"`
			WeeklyPattern stats.WeeklyPattern    `json:"weeklyPattern"`
			Errors        []activity.ParseError  `json:"errors"`
		}{*year, yearStats, records, breakdown, pattern, result.Errors}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			fmt.Fprintf(os.Stderr, "encode summary: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printSummary(os.Stdout, *year, yearStats, records, breakdown, result.Errors)
}

func printSummary(out *os.File, year int, yearStats stats.YearStats, records stats.PersonalRecords, breakdown []stats.SportBreakdown, parseErrors []activity.ParseError) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Year %d\n", year)
	fmt.Fprintf(w, "Activities:\t%d\n", yearStats.ActivityCount)
	fmt.Fprintf(w, "Distance:\t%s\n", format.FormatDistance(yearStats.TotalDistance, format.UnitKm))
	fmt.Fprintf(w, "Duration:\t%s\n", format.FormatDuration(yearStats.TotalDuration))
	fmt.Fprintf(w, "Calories:\t%s\n", format.FormatCalories(yearStats.TotalCalories))
	fmt.Fprintf(w, "Elevation:\t%s\n", format.FormatElevation(yearStats.TotalElevation))
	fmt.Fprintf(w, "Active days:\t%d\n", yearStats.ActiveDays)
	fmt.Fprintf(w, "Longest streak:\t%d days\n", yearStats.LongestStreak)
	fmt.Fprintf(w, "Fun fact:\t%s\n", format.FormatEarthLaps(yearStats.TotalDistance))

	if len(breakdown) > 0 {
		fmt.Fprintln(w, "\nBreakdown:")
		for _, sport := range breakdown {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				sport.Type,
				format.FormatActivityCount(sport.Count, "session"),
				format.FormatDistance(sport.Distance, format.UnitKm),
				format.FormatDuration(sport.Duration))
		}
	}

	if records.LongestDistance != nil {
		fmt.Fprintf(w, "\nLongest distance:\t%s (%s)\n",
			format.FormatDistance(records.LongestDistance.Value, format.UnitKm),
			records.LongestDistance.Activity.Title)
	}
	if records.LongestDuration != nil {
		fmt.Fprintf(w, "Longest duration:\t%s (%s)\n",
			format.FormatDuration(records.LongestDuration.Value),
			records.LongestDuration.Activity.Title)
	}
	if records.BiggestBurn != nil {
		fmt.Fprintf(w, "Biggest burn:\t%s kcal (%s)\n",
			format.FormatCalories(int(records.BiggestBurn.Value)),
			records.BiggestBurn.Activity.Title)
	}

	if len(parseErrors) > 0 {
		fmt.Fprintf(w, "\n%d row(s) could not be parsed:\n", len(parseErrors))
		for _, parseErr := range parseErrors {
			fmt.Fprintf(w, "  row %d:\t%s\n", parseErr.Row, parseErr.Message)
		}
	}

	w.Flush()
}
