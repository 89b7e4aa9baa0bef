// Package loadmath holds the weight arithmetic used for prescribed loads:
// unit conversion, MROUND-style rounding and estimated one-rep max math.
//
// Non-finite inputs are not rejected; they propagate as NaN/Inf and callers
// validate before calling in.
package loadmath

import (
	"fmt"
	"math"
	"strings"
)

// KgPerLb is the exact international avoirdupois pound.
const KgPerLb = 0.45359237

type Units string

const (
	Lbs Units = "lbs"
	Kg  Units = "kg"
)

func (u Units) String() string {
	return string(u)
}

func (u Units) IsValid() bool {
	return u == Lbs || u == Kg
}

func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lbs", "lb", "pounds":
		return Lbs, nil
	case "kg", "kgs", "kilograms":
		return Kg, nil
	default:
		return "", fmt.Errorf("unknown units: %q", s)
	}
}

// Load is a prescribed weight, both as computed and as rounded to the plate increment.
type Load struct {
	Rounded float64 `json:"rounded"`
	Exact   float64 `json:"exact"`
}

// RoundToIncrement rounds value to the nearest multiple of increment,
// halves away from zero. A zero increment returns value unchanged.
func RoundToIncrement(value, increment float64) float64 {
	if increment == 0 {
		return value
	}
	return math.Round(value/increment) * increment
}

// ConvertWeight converts value between units. Unknown units yield NaN.
func ConvertWeight(value float64, from, to Units) float64 {
	if from == to {
		return value
	}
	switch {
	case from == Lbs && to == Kg:
		return value * KgPerLb
	case from == Kg && to == Lbs:
		return value / KgPerLb
	default:
		return math.NaN()
	}
}

// ComputeLoad converts a training max stored in pounds to the display unit,
// applies percent and rounds to the increment.
func ComputeLoad(trainingMaxLbs, percent, roundingIncrement float64, displayUnits Units) Load {
	exact := ConvertWeight(trainingMaxLbs, Lbs, displayUnits) * percent
	return Load{
		Rounded: RoundToIncrement(exact, roundingIncrement),
		Exact:   exact,
	}
}

// EstimateE1RM uses the Epley formula. A single is its own max and
// non-positive reps estimate nothing.
func EstimateE1RM(weight float64, reps int) float64 {
	switch {
	case reps <= 0:
		return 0
	case reps == 1:
		return weight
	default:
		return weight * (1 + float64(reps)/30)
	}
}

// WeightFromE1RM derives a working weight as a percent of an estimated max.
func WeightFromE1RM(e1rm, percent, roundingIncrement float64) float64 {
	return RoundToIncrement(e1rm*percent, roundingIncrement)
}
