package milestones

import "github.com/2beens/liftlog/internal/training"

// MaxRestDays is the longest gap between workouts that keeps a streak going.
const MaxRestDays = 3

// CalculateStreak returns the streak after a workout on today, given the
// previous workout date and the streak so far.
//
// No previous date starts a streak of 1. A same-day workout keeps the streak,
// a gap of 1 to 3 days extends it and a longer gap resets it to 1. A today
// before prev (clock skew between devices) leaves the streak as it is.
func CalculateStreak(prev *training.Date, today training.Date, current int) int {
	if prev == nil || prev.IsZero() {
		return 1
	}

	gap := today.DaysSince(*prev)
	switch {
	case gap <= 0:
		return current
	case gap <= MaxRestDays:
		return current + 1
	default:
		return 1
	}
}
