package stats

import "github.com/activeyear/server/pkg/domain/activity"

// oneHourInSeconds is the duration floor below which a sport is too small to
// show as its own breakdown slice.
const oneHourInSeconds = 3600

// ConsolidateBreakdown merges sports with under one hour of total duration
// into a single "other" bucket for display. Any pre-existing "other" entry is
// folded into the same bucket. Qualifying sports keep their original order
// and the consolidated bucket, if non-empty, goes last. Running it on an
// already-consolidated breakdown is a no-op.
func ConsolidateBreakdown(breakdown []SportBreakdown) []SportBreakdown {
	result := []SportBreakdown{}
	var other *SportBreakdown

	for _, sport := range breakdown {
		if sport.Type != activity.TypeOther && sport.Duration >= oneHourInSeconds {
			result = append(result, sport)
			continue
		}
		if other == nil {
			other = &SportBreakdown{Type: activity.TypeOther}
		}
		other.Distance += sport.Distance
		other.Duration += sport.Duration
		other.Count += sport.Count
	}

	if other != nil && other.Count > 0 {
		result = append(result, *other)
	}
	return result
}
