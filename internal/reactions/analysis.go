package reactions

import (
	"math"
	"sort"

	"github.com/2beens/liftlog/internal/loadmath"
	"github.com/2beens/liftlog/internal/training"
)

const (
	// rpeWeightWindow is how far, in the entry's unit, a prior set may be from the best set to compare RPE.
	rpeWeightWindow = 5.0
	weightTolerance = 1e-9
)

// ExerciseAnalysis compares the best set of one exercise entry against every
// other completed log holding the same exercise name.
type ExerciseAnalysis struct {
	ExerciseName string
	Units        loadmath.Units

	BestWeight float64
	BestReps   int
	BestRPE    *float64
	// E1RM of the best set, zero when it has no reps
	E1RM float64

	HasPriorWeight  bool
	PriorBestWeight float64

	HasPriorE1RM  bool
	PriorBestE1RM float64

	HasPriorAtWeight      bool
	PriorBestRepsAtWeight int

	// PriorRPE is the RPE of the most recent prior set within the weight window.
	PriorRPE *float64
}

func (a ExerciseAnalysis) IsWeightPR() bool {
	return a.HasPriorWeight && a.BestWeight > a.PriorBestWeight
}

func (a ExerciseAnalysis) IsE1RMPR() bool {
	return a.E1RM > 0 && a.HasPriorE1RM && a.E1RM > a.PriorBestE1RM
}

func (a ExerciseAnalysis) IsRepPR() bool {
	return a.HasPriorAtWeight && a.BestReps > a.PriorBestRepsAtWeight
}

func (a ExerciseAnalysis) IsRPEDrop() bool {
	return a.BestRPE != nil && a.PriorRPE != nil && *a.BestRPE < *a.PriorRPE
}

// Analyze returns one analysis per non-skipped entry of current that has at
// least one completed, weighted set. history may contain current; it is skipped by id.
func Analyze(current training.WorkoutLog, history []training.WorkoutLog) []ExerciseAnalysis {
	prior := priorLogs(current, history)

	analyses := make([]ExerciseAnalysis, 0, len(current.Entries))
	for _, entry := range current.Entries {
		if entry.Skipped {
			continue
		}
		best, ok := bestSet(entry.Sets)
		if !ok {
			continue
		}

		units := best.Unit
		if units == "" {
			units = loadmath.Lbs
		}
		a := ExerciseAnalysis{
			ExerciseName: entry.ExerciseName,
			Units:        units,
			BestWeight:   best.WeightIn(units),
			BestReps:     repsOf(best),
			BestRPE:      best.RPE,
		}
		a.E1RM = loadmath.EstimateE1RM(a.BestWeight, a.BestReps)

		a.compareWith(prior, current.Date)
		analyses = append(analyses, a)
	}
	return analyses
}

func (a *ExerciseAnalysis) compareWith(prior []training.WorkoutLog, currentDate training.Date) {
	for _, priorLog := range prior {
		for _, entry := range priorLog.Entries {
			if entry.ExerciseName != a.ExerciseName {
				continue
			}
			for _, set := range entry.Sets {
				if !set.IsWeighted() {
					continue
				}
				weight := set.WeightIn(a.Units)
				reps := repsOf(set)

				if !a.HasPriorWeight || weight > a.PriorBestWeight {
					a.PriorBestWeight = weight
				}
				a.HasPriorWeight = true

				if reps > 0 {
					e1rm := loadmath.EstimateE1RM(weight, reps)
					if !a.HasPriorE1RM || e1rm > a.PriorBestE1RM {
						a.PriorBestE1RM = e1rm
					}
					a.HasPriorE1RM = true
				}

				if math.Abs(weight-a.BestWeight) < weightTolerance {
					if !a.HasPriorAtWeight || reps > a.PriorBestRepsAtWeight {
						a.PriorBestRepsAtWeight = reps
					}
					a.HasPriorAtWeight = true
				}
			}
		}
	}

	// prior is ordered newest first
	for _, priorLog := range prior {
		if currentDate.Before(priorLog.Date) {
			continue
		}
		if rpe := closestRPE(priorLog, a.ExerciseName, a.Units, a.BestWeight); rpe != nil {
			a.PriorRPE = rpe
			return
		}
	}
}

// closestRPE finds the RPE of the set in priorLog nearest to weight, within the window.
func closestRPE(priorLog training.WorkoutLog, exerciseName string, units loadmath.Units, weight float64) *float64 {
	var (
		found    *float64
		bestDiff = math.Inf(1)
	)
	for _, entry := range priorLog.Entries {
		if entry.ExerciseName != exerciseName {
			continue
		}
		for _, set := range entry.Sets {
			if !set.IsWeighted() || set.RPE == nil {
				continue
			}
			diff := math.Abs(set.WeightIn(units) - weight)
			if diff <= rpeWeightWindow && diff < bestDiff {
				bestDiff = diff
				found = set.RPE
			}
		}
	}
	return found
}

// priorLogs returns the other completed logs, newest first.
func priorLogs(current training.WorkoutLog, history []training.WorkoutLog) []training.WorkoutLog {
	prior := make([]training.WorkoutLog, 0, len(history))
	for _, l := range history {
		if l.ID == current.ID || !l.IsCompleted() {
			continue
		}
		prior = append(prior, l)
	}
	sort.SliceStable(prior, func(i, j int) bool {
		if !prior[i].Date.Equal(prior[j].Date) {
			return prior[j].Date.Before(prior[i].Date)
		}
		return prior[j].FinishedAt().Before(prior[i].FinishedAt())
	})
	return prior
}

// bestSet picks the heaviest completed, weighted set; ties go to more reps.
func bestSet(sets []training.SetLog) (training.SetLog, bool) {
	var (
		best  training.SetLog
		found bool
	)
	for _, set := range sets {
		if !set.IsWeighted() {
			continue
		}
		if !found {
			best, found = set, true
			continue
		}
		weight, bestWeight := set.WeightIn(loadmath.Lbs), best.WeightIn(loadmath.Lbs)
		if weight > bestWeight || (weight == bestWeight && repsOf(set) > repsOf(best)) {
			best = set
		}
	}
	return best, found
}

func repsOf(set training.SetLog) int {
	if set.Reps == nil {
		return 0
	}
	return *set.Reps
}
