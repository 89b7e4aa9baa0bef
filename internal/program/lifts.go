package program

import "strings"

type Lift string

const (
	Squat    Lift = "squat"
	Bench    Lift = "bench"
	Deadlift Lift = "deadlift"
)

var MainLifts = []Lift{Squat, Bench, Deadlift}

func (l Lift) IsValid() bool {
	switch l {
	case Squat, Bench, Deadlift:
		return true
	default:
		return false
	}
}

// TrainingMaxes are always stored in pounds.
type TrainingMaxes struct {
	Squat    float64 `json:"squat" validate:"gte=0"`
	Bench    float64 `json:"bench" validate:"gte=0"`
	Deadlift float64 `json:"deadlift" validate:"gte=0"`
}

func (tm TrainingMaxes) For(lift Lift) float64 {
	switch lift {
	case Squat:
		return tm.Squat
	case Bench:
		return tm.Bench
	case Deadlift:
		return tm.Deadlift
	default:
		return 0
	}
}

// LiftFromName identifies the main lift an exercise belongs to by substring,
// so "Competition Squat" and "Paused Bench Press" map to their lifts.
func LiftFromName(exerciseName string) (Lift, bool) {
	name := strings.ToLower(exerciseName)
	for _, lift := range MainLifts {
		if strings.Contains(name, string(lift)) {
			return lift, true
		}
	}
	return "", false
}

func IsMainLift(exerciseName string) bool {
	_, ok := LiftFromName(exerciseName)
	return ok
}
