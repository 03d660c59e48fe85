package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activeyear/server/pkg/domain/activity"
)

func TestConsolidateBreakdown(t *testing.T) {
	t.Run("keeps sports at or above one hour", func(t *testing.T) {
		input := []SportBreakdown{
			{Type: activity.TypeRunning, Distance: 10, Duration: 3600, Count: 1},
			{Type: activity.TypeCycling, Distance: 20, Duration: 4000, Count: 1},
		}
		assert.Equal(t, input, ConsolidateBreakdown(input))
	})

	t.Run("merges small sports into other", func(t *testing.T) {
		input := []SportBreakdown{
			{Type: activity.TypeRunning, Distance: 10, Duration: 3600, Count: 1},
			{Type: activity.TypeSwimming, Distance: 1, Duration: 1800, Count: 1},
			{Type: activity.TypeWalking, Distance: 2, Duration: 1200, Count: 1},
		}

		result := ConsolidateBreakdown(input)

		require.Len(t, result, 2)
		assert.Equal(t, SportBreakdown{Type: activity.TypeRunning, Distance: 10, Duration: 3600, Count: 1}, result[0])
		assert.Equal(t, SportBreakdown{Type: activity.TypeOther, Distance: 3, Duration: 3000, Count: 2}, result[1])
	})

	t.Run("folds in a pre-existing other entry", func(t *testing.T) {
		input := []SportBreakdown{
			{Type: activity.TypeRunning, Distance: 10, Duration: 3600, Count: 1},
			{Type: activity.TypeSwimming, Distance: 1, Duration: 1800, Count: 1},
			{Type: activity.TypeOther, Distance: 5, Duration: 5000, Count: 2},
		}

		result := ConsolidateBreakdown(input)

		require.Len(t, result, 2)
		assert.Equal(t, SportBreakdown{Type: activity.TypeOther, Distance: 6, Duration: 6800, Count: 3}, result[1])
	})

	t.Run("omits an empty other bucket", func(t *testing.T) {
		input := []SportBreakdown{
			{Type: activity.TypeRunning, Distance: 10, Duration: 3600, Count: 1},
		}
		result := ConsolidateBreakdown(input)
		require.Len(t, result, 1)
		assert.Equal(t, activity.TypeRunning, result[0].Type)
	})

	t.Run("idempotent on already-consolidated input", func(t *testing.T) {
		consolidated := ConsolidateBreakdown([]SportBreakdown{
			{Type: activity.TypeRunning, Distance: 10, Duration: 3600, Count: 1},
			{Type: activity.TypeSwimming, Distance: 1, Duration: 1800, Count: 1},
			{Type: activity.TypeOther, Distance: 5, Duration: 5000, Count: 2},
		})
		assert.Equal(t, consolidated, ConsolidateBreakdown(consolidated))
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, ConsolidateBreakdown(nil))
	})
}
