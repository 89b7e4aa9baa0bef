package training

import (
	"time"

	"github.com/2beens/liftlog/internal/loadmath"
	"github.com/2beens/liftlog/internal/program"
)

type Personality string

const (
	PersonalityCoach   Personality = "coach"
	PersonalityHype    Personality = "hype"
	PersonalityDeadpan Personality = "deadpan"
	PersonalitySilent  Personality = "silent"
)

var Personalities = []Personality{PersonalityCoach, PersonalityHype, PersonalityDeadpan}

const (
	DefaultRoundingIncrement      = 5.0
	DefaultMaxReactionsPerWorkout = 3
)

type NotificationPrefs struct {
	Reactions      bool `json:"reactions"`
	Milestones     bool `json:"milestones"`
	Nudges         bool `json:"nudges"`
	FriendRequests bool `json:"friendRequests"`
	MuteTaper      bool `json:"muteTaper"`
}

// Settings is the per-user singleton. TrainingMaxes are kept in pounds whatever Units says.
type Settings struct {
	UserID                 int                   `json:"userId"`
	Units                  loadmath.Units        `json:"units" validate:"oneof=lbs kg"`
	RoundingIncrement      float64               `json:"roundingIncrement" validate:"gte=0,lte=50"`
	TrainingMaxes          program.TrainingMaxes `json:"trainingMaxes"`
	Onboarded              bool                  `json:"onboarded"`
	Personality            Personality           `json:"personality" validate:"oneof=coach hype deadpan silent"`
	Notifications          NotificationPrefs     `json:"notifications"`
	MaxReactionsPerWorkout int                   `json:"maxReactionsPerWorkout" validate:"gte=0,lte=20"`
	CurrentStreak          int                   `json:"currentStreak" validate:"gte=0"`
	LastWorkoutDate        *Date                 `json:"lastWorkoutDate,omitempty"`
	UpdatedAt              time.Time             `json:"updatedAt"`
}

func DefaultSettings(userID int) Settings {
	return Settings{
		UserID:            userID,
		Units:             loadmath.Lbs,
		RoundingIncrement: DefaultRoundingIncrement,
		Personality:       PersonalityCoach,
		Notifications: NotificationPrefs{
			Reactions:      true,
			Milestones:     true,
			Nudges:         true,
			FriendRequests: true,
			MuteTaper:      false,
		},
		MaxReactionsPerWorkout: DefaultMaxReactionsPerWorkout,
	}
}

// TrainingMaxesIn returns the maxes converted to the given display unit.
func (s Settings) TrainingMaxesIn(units loadmath.Units) program.TrainingMaxes {
	return program.TrainingMaxes{
		Squat:    loadmath.ConvertWeight(s.TrainingMaxes.Squat, loadmath.Lbs, units),
		Bench:    loadmath.ConvertWeight(s.TrainingMaxes.Bench, loadmath.Lbs, units),
		Deadlift: loadmath.ConvertWeight(s.TrainingMaxes.Deadlift, loadmath.Lbs, units),
	}
}
