// Package demo provides the canned dashboard dataset shown before a user
// uploads their own export.
package demo

import (
	"time"

	"github.com/activeyear/server/pkg/domain/activity"
	"github.com/activeyear/server/pkg/domain/stats"
)

func demoActivity(typ activity.Type, title, date string, distance, duration float64, calories, elevation int) activity.Activity {
	d, _ := time.Parse("2006-01-02", date)
	return activity.Activity{
		Date:      d,
		Type:      typ,
		Title:     title,
		Distance:  distance,
		Duration:  duration,
		Calories:  calories,
		Elevation: elevation,
	}
}

// Stats returns the demo year totals.
func Stats() stats.YearStats {
	return stats.YearStats{
		TotalDistance:  2025,
		TotalDuration:  540000, // 150 hours
		TotalCalories:  125000,
		TotalElevation: 15400,
		ActiveDays:     180,
		LongestStreak:  12,
		ActivityCount:  245,
	}
}

// Records returns the demo personal records.
func Records() stats.PersonalRecords {
	return stats.PersonalRecords{
		LongestDistance: &stats.PersonalRecord{
			Value:    42.2,
			Activity: demoActivity(activity.TypeRunning, "Marathon Finisher", "2025-10-12", 42.2, 12600, 2800, 150),
		},
		LongestDuration: &stats.PersonalRecord{
			Value:    14400,
			Activity: demoActivity(activity.TypeCycling, "Sunday Long Ride", "2025-06-15", 85.0, 14400, 1500, 800),
		},
		BiggestBurn: &stats.PersonalRecord{
			Value:    3200,
			Activity: demoActivity(activity.TypeHiking, "Mountain Summit", "2025-08-01", 15.0, 21600, 3200, 1200),
		},
	}
}

// Breakdown returns the demo sport breakdown, already ordered by count.
func Breakdown() []stats.SportBreakdown {
	return []stats.SportBreakdown{
		{Type: activity.TypeRunning, Distance: 1200, Duration: 216000, Count: 120},
		{Type: activity.TypeCycling, Distance: 800, Duration: 144000, Count: 45},
		{Type: activity.TypeStrength, Distance: 0, Duration: 108000, Count: 60},
		{Type: activity.TypeSwimming, Distance: 25.5, Duration: 36000, Count: 15},
		{Type: activity.TypeYoga, Distance: 0, Duration: 36000, Count: 5},
	}
}

// WeeklyPattern returns a plausible weekly spread matching the demo totals'
// active-day density.
func WeeklyPattern() stats.WeeklyPattern {
	return stats.WeeklyPattern{42, 31, 38, 29, 33, 40, 32}
}
