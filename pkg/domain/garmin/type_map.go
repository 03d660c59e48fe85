package garmin

import (
	"strings"

	"github.com/activeyear/server/pkg/domain/activity"
)

// activityTypeMap maps Garmin Connect's activity-type labels onto the
// canonical sport categories. Matching is exact (after trimming); supporting
// a new Garmin label is a data addition here, never a code change.
var activityTypeMap = map[string]activity.Type{
	"Running":           activity.TypeRunning,
	"Trail Running":     activity.TypeRunning,
	"Treadmill Running": activity.TypeRunning,
	"Track Running":     activity.TypeRunning,
	"Indoor Track":      activity.TypeRunning,
	"Virtual Running":   activity.TypeRunning,

	"Cycling":          activity.TypeCycling,
	"Indoor Cycling":   activity.TypeCycling,
	"Virtual Cycling":  activity.TypeCycling,
	"Road Cycling":     activity.TypeCycling,
	"Mountain Biking":  activity.TypeCycling,
	"eMountain Biking": activity.TypeCycling,
	"Gravel Cycling":   activity.TypeCycling,
	"eBiking":          activity.TypeCycling,

	"Swimming":            activity.TypeSwimming,
	"Pool Swim":           activity.TypeSwimming,
	"Open Water Swimming": activity.TypeSwimming,

	"Walking": activity.TypeWalking,
	"Hiking":  activity.TypeHiking,

	"Strength Training": activity.TypeStrength,
	"Strength":          activity.TypeStrength,

	"Yoga":    activity.TypeYoga,
	"Pilates": activity.TypeYoga,

	"Cardio":   activity.TypeCardio,
	"CrossFit": activity.TypeCardio,
	"HIIT":     activity.TypeCardio,

	"Rowing":        activity.TypeRowing,
	"Indoor Rowing": activity.TypeRowing,
	"Rowing V2":     activity.TypeRowing,

	"SUP":                     activity.TypePaddling,
	"Stand Up Paddleboarding": activity.TypePaddling,
	"Kayaking":                activity.TypePaddling,
	"Canoeing":                activity.TypePaddling,

	"Padel":         activity.TypeOther,
	"Skating":       activity.TypeOther,
	"Ice Skating":   activity.TypeOther,
	"Multisport":    activity.TypeOther,
	"Rock Climbing": activity.TypeOther,
}

// distanceInMetersTypes lists the Garmin labels whose Distance column is
// recorded in meters rather than kilometers.
var distanceInMetersTypes = map[string]struct{}{
	"Swimming":                {},
	"Pool Swim":               {},
	"Open Water Swimming":     {},
	"Rowing":                  {},
	"Indoor Rowing":           {},
	"Rowing V2":               {},
	"Track Running":           {},
	"Indoor Track":            {},
	"SUP":                     {},
	"Stand Up Paddleboarding": {},
	"Kayaking":                {},
	"Canoeing":                {},
}

// MapType resolves a raw Garmin activity-type label to a canonical category.
// Unknown labels fall back to "other".
func MapType(label string) activity.Type {
	if t, ok := activityTypeMap[strings.TrimSpace(label)]; ok {
		return t
	}
	return activity.TypeOther
}

// DistanceInMeters reports whether the label's distances are exported in
// meters and need converting to kilometers.
func DistanceInMeters(label string) bool {
	_, ok := distanceInMetersTypes[strings.TrimSpace(label)]
	return ok
}
