package api

import (
	"github.com/activeyear/server/pkg/domain/activity"
	"github.com/activeyear/server/pkg/domain/stats"
)

// SummaryResponse is the dashboard payload: one year of aggregates plus any
// parse diagnostics from ingestion.
type SummaryResponse struct {
	Year          int                    `json:"year"`
	Stats         stats.YearStats        `json:"stats"`
	Records       stats.PersonalRecords  `json:"records"`
	Breakdown     []stats.SportBreakdown `json:"breakdown"`
	WeeklyPattern stats.WeeklyPattern    `json:"weeklyPattern"`
	Errors        []activity.ParseError  `json:"errors"`
}

func buildSummary(result activity.ParseResult, year int) SummaryResponse {
	return SummaryResponse{
		Year:          year,
		Stats:         stats.CalculateYearStats(result.Activities),
		Records:       stats.CalculatePersonalRecords(result.Activities),
		Breakdown:     stats.ConsolidateBreakdown(stats.CalculateSportBreakdown(result.Activities)),
		WeeklyPattern: stats.CalculateWeeklyPattern(result.Activities),
		Errors:        result.Errors,
	}
}
