package milestones

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/loadmath"
)

var (
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrMilestoneExists   = errors.New("milestone already published")
)

type Type string

const (
	TypeFirstWorkout Type = "first-workout"
	TypeWeightPR     Type = "pr-weight"
	TypeE1RMPR       Type = "pr-e1rm"
	TypeWeekComplete Type = "week-complete"
)

// StreakThresholds are the streak values that earn a milestone, on exact equality.
var StreakThresholds = []int{3, 7, 14, 30, 50}

func StreakType(streak int) Type {
	return Type(fmt.Sprintf("streak-%d", streak))
}

type Milestone struct {
	ID               int            `json:"id"`
	UserID           int            `json:"userId"`
	Type             Type           `json:"type"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Value            *float64       `json:"value,omitempty"`
	Unit             loadmath.Units `json:"unit,omitempty"`
	ExerciseName     string         `json:"exerciseName,omitempty"`
	Week             *int           `json:"week,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	CelebrationCount int            `json:"celebrationCount"`
}

// Job asks the detector to look at one saved workout log.
type Job struct {
	UserID int
	LogID  string
}
