package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activeyear/server/pkg/domain/activity"
)

func act(typ activity.Type, date string, distance, duration float64, calories, elevation int) activity.Activity {
	d, err := time.Parse("2006-01-02 15:04:05", date)
	if err != nil {
		panic(err)
	}
	return activity.Activity{
		Date:      d,
		Type:      typ,
		Distance:  distance,
		Duration:  duration,
		Calories:  calories,
		Elevation: elevation,
	}
}

func TestCalculateYearStats(t *testing.T) {
	activities := []activity.Activity{
		act(activity.TypeRunning, "2025-01-01 08:00:00", 10, 3000, 600, 100),
		act(activity.TypeRunning, "2025-01-01 18:00:00", 5, 1500, 300, 50),
		act(activity.TypeCycling, "2025-01-02 08:00:00", 40, 5400, 900, 400),
		act(activity.TypeYoga, "2025-01-05 07:00:00", 0, 1800, 150, 0),
	}

	stats := CalculateYearStats(activities)

	assert.Equal(t, 55.0, stats.TotalDistance)
	assert.Equal(t, 11700.0, stats.TotalDuration)
	assert.Equal(t, 1950, stats.TotalCalories)
	assert.Equal(t, 550, stats.TotalElevation)
	assert.Equal(t, 3, stats.ActiveDays) // two activities share Jan 1
	assert.Equal(t, 2, stats.LongestStreak)
	assert.Equal(t, 4, stats.ActivityCount)
}

func TestCalculateYearStatsEmpty(t *testing.T) {
	assert.Equal(t, YearStats{}, CalculateYearStats(nil))
}

func TestCalculateLongestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []string
		want int
	}{
		{"single day", []string{"2025-03-01"}, 1},
		{"two consecutive", []string{"2025-03-01", "2025-03-02"}, 2},
		{"gap resets", []string{"2025-03-01", "2025-03-02", "2025-03-05", "2025-03-06", "2025-03-07"}, 3},
		{"month boundary", []string{"2025-01-31", "2025-02-01"}, 2},
		{"duplicates collapse", []string{"2025-03-01", "2025-03-01", "2025-03-02"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var activities []activity.Activity
			for _, day := range tt.days {
				activities = append(activities, act(activity.TypeRunning, day+" 08:00:00", 5, 1800, 300, 0))
			}
			assert.Equal(t, tt.want, CalculateLongestStreak(activities))
		})
	}
}

func TestCalculatePersonalRecords(t *testing.T) {
	marathon := act(activity.TypeRunning, "2025-10-12 09:00:00", 42.2, 12600, 2800, 150)
	longRide := act(activity.TypeCycling, "2025-06-15 08:00:00", 85, 14400, 1500, 800)
	summit := act(activity.TypeHiking, "2025-08-01 09:30:00", 15, 21600, 3200, 1200)

	records := CalculatePersonalRecords([]activity.Activity{marathon, longRide, summit})

	require.NotNil(t, records.LongestDistance)
	assert.Equal(t, 85.0, records.LongestDistance.Value)
	assert.Equal(t, longRide, records.LongestDistance.Activity)

	require.NotNil(t, records.LongestDuration)
	assert.Equal(t, 21600.0, records.LongestDuration.Value)

	require.NotNil(t, records.BiggestBurn)
	assert.Equal(t, 3200.0, records.BiggestBurn.Value)
	assert.Equal(t, summit, records.BiggestBurn.Activity)
}

func TestCalculatePersonalRecordsRequirePositiveValues(t *testing.T) {
	// A strength session with no distance must not claim the distance record.
	gym := act(activity.TypeStrength, "2025-02-01 18:00:00", 0, 2700, 350, 0)

	records := CalculatePersonalRecords([]activity.Activity{gym})

	assert.Nil(t, records.LongestDistance)
	require.NotNil(t, records.LongestDuration)
	assert.Equal(t, 2700.0, records.LongestDuration.Value)
}

func TestCalculatePersonalRecordsEmpty(t *testing.T) {
	records := CalculatePersonalRecords(nil)
	assert.Nil(t, records.LongestDistance)
	assert.Nil(t, records.LongestDuration)
	assert.Nil(t, records.BiggestBurn)
}

func TestCalculateSportBreakdown(t *testing.T) {
	activities := []activity.Activity{
		act(activity.TypeRunning, "2025-01-01 08:00:00", 10, 3000, 600, 100),
		act(activity.TypeCycling, "2025-01-02 08:00:00", 40, 5400, 900, 400),
		act(activity.TypeRunning, "2025-01-03 08:00:00", 8, 2400, 500, 60),
		act(activity.TypeYoga, "2025-01-04 07:00:00", 0, 1800, 150, 0),
	}

	breakdown := CalculateSportBreakdown(activities)

	require.Len(t, breakdown, 3)
	assert.Equal(t, activity.TypeRunning, breakdown[0].Type)
	assert.Equal(t, 18.0, breakdown[0].Distance)
	assert.Equal(t, 5400.0, breakdown[0].Duration)
	assert.Equal(t, 2, breakdown[0].Count)

	// Cycling and yoga both have count 1; encounter order breaks the tie.
	assert.Equal(t, activity.TypeCycling, breakdown[1].Type)
	assert.Equal(t, activity.TypeYoga, breakdown[2].Type)
}

func TestCalculateWeeklyPattern(t *testing.T) {
	activities := []activity.Activity{
		act(activity.TypeRunning, "2025-01-06 08:00:00", 5, 1800, 300, 0), // Monday
		act(activity.TypeRunning, "2025-01-13 08:00:00", 5, 1800, 300, 0), // Monday
		act(activity.TypeCycling, "2025-01-08 08:00:00", 20, 3600, 500, 0), // Wednesday
		act(activity.TypeHiking, "2025-01-12 09:00:00", 12, 10800, 900, 600), // Sunday
	}

	pattern := CalculateWeeklyPattern(activities)

	assert.Equal(t, WeeklyPattern{2, 0, 1, 0, 0, 0, 1}, pattern)
}
