// Package format renders activity metrics for display: distances, durations,
// and the fun-fact comparisons shown on the dashboard cards.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unit selects the distance display unit.
type Unit string

const (
	UnitKm    Unit = "km"
	UnitMiles Unit = "miles"
)

const (
	earthCircumferenceKm = 40075
	everestHeightM       = 8848
	pizzaSliceCalories   = 285
	kmToMiles            = 0.621371
)

// printer writes numbers with English thousand separators.
var printer = message.NewPrinter(language.English)

// FormatDistance renders a distance in the requested unit: whole numbers
// under 100, one decimal from 100 up.
func FormatDistance(km float64, unit Unit) string {
	value := km
	suffix := "km"
	if unit == UnitMiles {
		value = km * kmToMiles
		suffix = "mi"
	}

	if value < 100 {
		return fmt.Sprintf("%.0f%s", value, suffix)
	}
	return fmt.Sprintf("%.1f%s", value, suffix)
}

// FormatDuration renders seconds as "Xh Ym", dropping the hour part when
// zero.
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return "0m"
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatCalories renders calories with thousand separators; anything that
// rounds to zero hundreds displays as "0".
func FormatCalories(calories int) string {
	if int(math.Round(float64(calories)/100))*100 <= 0 {
		return "0"
	}
	return printer.Sprintf("%d", calories)
}

// FormatElevation renders elevation rounded to the nearest 10 m.
func FormatElevation(meters int) string {
	rounded := int(math.Round(float64(meters)/10)) * 10
	return printer.Sprintf("%dm", rounded)
}

// EarthLaps converts a total distance to laps around the equator.
func EarthLaps(distanceKm float64) float64 {
	return distanceKm / earthCircumferenceKm
}

// FormatEarthLaps renders the Earth-lap comparison.
func FormatEarthLaps(distanceKm float64) string {
	laps := EarthLaps(distanceKm)
	if laps < 0.01 {
		return fmt.Sprintf("%.1f%% around Earth", laps*100)
	}
	return fmt.Sprintf("%.2f× around Earth", laps)
}

// Everests converts a total elevation gain to Everest ascents.
func Everests(elevationM int) float64 {
	return float64(elevationM) / everestHeightM
}

// FormatEverests renders the Everest comparison.
func FormatEverests(elevationM int) string {
	everests := Everests(elevationM)
	if everests < 0.1 {
		return fmt.Sprintf("%.0f%% of Everest", everests*100)
	}
	return fmt.Sprintf("%.1f Everests", everests)
}

// PizzaSlices converts calories to pizza slices.
func PizzaSlices(calories int) int {
	return int(math.Round(float64(calories) / pizzaSliceCalories))
}

// FormatPizzaSlices renders the pizza comparison.
func FormatPizzaSlices(calories int) string {
	return printer.Sprintf("%d slices", PizzaSlices(calories))
}

// FormatActivityCount renders a count with a naively pluralized type name.
func FormatActivityCount(count int, typeName string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, typeName)
	}
	return fmt.Sprintf("%d %ss", count, typeName)
}
