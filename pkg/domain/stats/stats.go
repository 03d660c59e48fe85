// Package stats derives yearly aggregates, personal records, sport
// breakdowns, and weekly patterns from a parsed activity list.
package stats

import (
	"sort"
	"time"

	"github.com/activeyear/server/pkg/domain/activity"
)

const dayKeyLayout = "2006-01-02"

// YearStats aggregates one calendar year of activities.
type YearStats struct {
	TotalDistance  float64 `json:"totalDistance"`
	TotalDuration  float64 `json:"totalDuration"`
	TotalCalories  int     `json:"totalCalories"`
	TotalElevation int     `json:"totalElevation"`
	ActiveDays     int     `json:"activeDays"`
	LongestStreak  int     `json:"longestStreak"`
	ActivityCount  int     `json:"activityCount"`
}

// PersonalRecord pairs a record value with the activity that set it.
type PersonalRecord struct {
	Value    float64           `json:"value"`
	Activity activity.Activity `json:"activity"`
}

// PersonalRecords holds the best activity per record category. A category is
// nil when no activity qualifies (value must be strictly positive).
type PersonalRecords struct {
	LongestDistance *PersonalRecord `json:"longestDistance"`
	LongestDuration *PersonalRecord `json:"longestDuration"`
	BiggestBurn     *PersonalRecord `json:"biggestBurn"`
}

// SportBreakdown aggregates one sport category.
type SportBreakdown struct {
	Type     activity.Type `json:"type"`
	Distance float64       `json:"distance"`
	Duration float64       `json:"duration"`
	Count    int           `json:"count"`
}

// WeeklyPattern counts activities per day of week, Monday=0 through Sunday=6.
type WeeklyPattern [7]int

// CalculateYearStats sums the activity list into a YearStats.
func CalculateYearStats(activities []activity.Activity) YearStats {
	stats := YearStats{ActivityCount: len(activities)}
	if len(activities) == 0 {
		return stats
	}

	days := make(map[string]struct{})
	for _, a := range activities {
		stats.TotalDistance += a.Distance
		stats.TotalDuration += a.Duration
		stats.TotalCalories += a.Calories
		stats.TotalElevation += a.Elevation
		days[a.Date.Format(dayKeyLayout)] = struct{}{}
	}
	stats.ActiveDays = len(days)
	stats.LongestStreak = CalculateLongestStreak(activities)
	return stats
}

// CalculateLongestStreak returns the longest run of consecutive calendar days
// that have at least one activity.
func CalculateLongestStreak(activities []activity.Activity) int {
	if len(activities) == 0 {
		return 0
	}

	daySet := make(map[string]struct{})
	for _, a := range activities {
		daySet[a.Date.Format(dayKeyLayout)] = struct{}{}
	}
	days := make([]string, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Strings(days)

	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		prev, _ := time.Parse(dayKeyLayout, days[i-1])
		curr, _ := time.Parse(dayKeyLayout, days[i])
		if prev.AddDate(0, 0, 1).Equal(curr) {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}
	return longest
}

// CalculatePersonalRecords finds the activities with the greatest distance,
// duration, and calories. Zero values never qualify, so a year of
// distance-less workouts yields a nil distance record rather than a bogus one.
func CalculatePersonalRecords(activities []activity.Activity) PersonalRecords {
	var records PersonalRecords

	for _, a := range activities {
		if a.Distance > 0 && (records.LongestDistance == nil || a.Distance > records.LongestDistance.Value) {
			records.LongestDistance = &PersonalRecord{Value: a.Distance, Activity: a}
		}
		if a.Duration > 0 && (records.LongestDuration == nil || a.Duration > records.LongestDuration.Value) {
			records.LongestDuration = &PersonalRecord{Value: a.Duration, Activity: a}
		}
		if a.Calories > 0 && (records.BiggestBurn == nil || float64(a.Calories) > records.BiggestBurn.Value) {
			records.BiggestBurn = &PersonalRecord{Value: float64(a.Calories), Activity: a}
		}
	}
	return records
}

// CalculateSportBreakdown aggregates per-type totals, sorted by count
// descending. The sort is stable so categories with equal counts keep their
// encounter order.
func CalculateSportBreakdown(activities []activity.Activity) []SportBreakdown {
	index := make(map[activity.Type]int)
	breakdown := []SportBreakdown{}

	for _, a := range activities {
		i, ok := index[a.Type]
		if !ok {
			i = len(breakdown)
			index[a.Type] = i
			breakdown = append(breakdown, SportBreakdown{Type: a.Type})
		}
		breakdown[i].Distance += a.Distance
		breakdown[i].Duration += a.Duration
		breakdown[i].Count++
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Count > breakdown[j].Count
	})
	return breakdown
}

// CalculateWeeklyPattern counts activities per day of week. Go's Weekday
// numbers Sunday as 0; the pattern is remapped so Monday is index 0 and
// Sunday index 6.
func CalculateWeeklyPattern(activities []activity.Activity) WeeklyPattern {
	var pattern WeeklyPattern
	for _, a := range activities {
		pattern[(int(a.Date.Weekday())+6)%7]++
	}
	return pattern
}
