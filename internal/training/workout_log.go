package training

import (
	"time"

	"github.com/2beens/liftlog/internal/loadmath"
)

type WorkoutLog struct {
	ID          string             `json:"id"`
	UserID      int                `json:"userId"`
	Date        Date               `json:"date"`
	Week        int                `json:"week" validate:"gte=1,lte=52"`
	Day         int                `json:"day" validate:"gte=1,lte=7"`
	Notes       string             `json:"notes,omitempty" validate:"lte=2000"`
	StartedAt   time.Time          `json:"startedAt"`
	CompletedAt *time.Time         `json:"completedAt,omitempty"`
	Entries     []ExerciseLogEntry `json:"entries" validate:"dive"`
}

func (l *WorkoutLog) IsCompleted() bool {
	return l.CompletedAt != nil
}

// FinishedAt orders logs: completion time when present, start time otherwise.
func (l *WorkoutLog) FinishedAt() time.Time {
	if l.CompletedAt != nil {
		return *l.CompletedAt
	}
	return l.StartedAt
}

type ExerciseLogEntry struct {
	ExerciseName string   `json:"exerciseName" validate:"required,lte=200"`
	Skipped      bool     `json:"skipped"`
	Notes        string   `json:"notes,omitempty" validate:"lte=2000"`
	Sets         []SetLog `json:"sets" validate:"dive"`
}

type SetLog struct {
	Weight    *float64       `json:"weight" validate:"omitempty,gte=0"`
	Unit      loadmath.Units `json:"unit" validate:"omitempty,oneof=lbs kg"`
	Reps      *int           `json:"reps" validate:"omitempty,gte=0"`
	RPE       *float64       `json:"rpe" validate:"omitempty,gte=0,lte=10"`
	Completed bool           `json:"completed"`
}

// IsWeighted reports whether the set counts toward load and PR math.
func (s SetLog) IsWeighted() bool {
	return s.Completed && s.Weight != nil
}

// WeightIn returns the set weight converted to units. Sets without a unit are taken as pounds.
func (s SetLog) WeightIn(units loadmath.Units) float64 {
	if s.Weight == nil {
		return 0
	}
	from := s.Unit
	if from == "" {
		from = loadmath.Lbs
	}
	return loadmath.ConvertWeight(*s.Weight, from, units)
}
