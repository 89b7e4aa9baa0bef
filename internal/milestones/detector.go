package milestones

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/2beens/liftlog/internal/reactions"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/training"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

// weekCompleteDays is how many distinct days of a week must be logged to complete it.
const weekCompleteDays = 4

//go:generate mockgen -source=$GOFILE -destination=detector_mocks_test.go -package=milestones_test

type logsSource interface {
	ListLogs(ctx context.Context, userID int) ([]training.WorkoutLog, error)
	CountLogs(ctx context.Context, userID int) (int, error)
	GetSettings(ctx context.Context, userID int) (*training.Settings, error)
}

type milestonesRepo interface {
	Add(ctx context.Context, milestone Milestone) (*Milestone, error)
	Exists(ctx context.Context, userID int, mType Type, value *float64, exerciseName string) (bool, error)
}

// Detector finds and publishes milestones for a saved workout. Each milestone
// type is evaluated on its own: a failed read skips that type only.
type Detector struct {
	logs logsSource
	repo milestonesRepo
}

func NewDetector(logs logsSource, repo milestonesRepo) *Detector {
	return &Detector{
		logs: logs,
		repo: repo,
	}
}

// Detect publishes every new milestone earned by the job's log and returns
// them. Per-milestone failures are combined into the returned error.
func (d *Detector) Detect(ctx context.Context, job Job) (_ []Milestone, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "milestones.detect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", job.UserID),
		attribute.String("log.id", job.LogID),
	)

	var (
		candidates []Milestone
		errs       error
	)

	if count, err := d.logs.CountLogs(ctx, job.UserID); err != nil {
		log.Warnf("milestones [%d]: skip first workout, count logs: %s", job.UserID, err)
	} else if count <= 1 {
		candidates = append(candidates, firstWorkout(job.UserID))
	}

	if logs, err := d.logs.ListLogs(ctx, job.UserID); err != nil {
		log.Warnf("milestones [%d]: skip PR and week milestones, list logs: %s", job.UserID, err)
	} else if current, found := findLog(logs, job.LogID); !found {
		errs = multierr.Append(errs, fmt.Errorf("log %s of user %d not found", job.LogID, job.UserID))
	} else {
		candidates = append(candidates, prMilestones(*current, logs)...)
		if m, ok := weekComplete(*current, logs); ok {
			candidates = append(candidates, m)
		}
	}

	if settings, err := d.logs.GetSettings(ctx, job.UserID); err != nil {
		log.Warnf("milestones [%d]: skip streak, get settings: %s", job.UserID, err)
	} else if slices.Contains(StreakThresholds, settings.CurrentStreak) {
		candidates = append(candidates, streak(job.UserID, settings.CurrentStreak))
	}

	var published []Milestone
	for _, candidate := range candidates {
		m, err := d.publishOnce(ctx, candidate)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("publish %s: %w", candidate.Type, err))
			continue
		}
		if m != nil {
			published = append(published, *m)
		}
	}

	span.SetAttributes(attribute.Int("published", len(published)))
	return published, errs
}

// publishOnce adds m unless an equal milestone already exists. It returns nil, nil for duplicates.
func (d *Detector) publishOnce(ctx context.Context, m Milestone) (*Milestone, error) {
	exists, err := d.repo.Exists(ctx, m.UserID, m.Type, m.Value, m.ExerciseName)
	if err != nil {
		return nil, fmt.Errorf("dedup check: %w", err)
	}
	if exists {
		log.Tracef("milestone %s for user %d already published", m.Type, m.UserID)
		return nil, nil
	}

	added, err := d.repo.Add(ctx, m)
	if err != nil {
		if errors.Is(err, ErrMilestoneExists) {
			return nil, nil
		}
		return nil, err
	}
	return added, nil
}

func findLog(logs []training.WorkoutLog, id string) (*training.WorkoutLog, bool) {
	for i := range logs {
		if logs[i].ID == id {
			return &logs[i], true
		}
	}
	return nil, false
}

func firstWorkout(userID int) Milestone {
	return Milestone{
		UserID:      userID,
		Type:        TypeFirstWorkout,
		Title:       "First workout",
		Description: "Logged the first workout of the program.",
	}
}

func prMilestones(current training.WorkoutLog, history []training.WorkoutLog) []Milestone {
	if !current.IsCompleted() {
		return nil
	}

	var out []Milestone
	week := current.Week
	for _, a := range reactions.Analyze(current, history) {
		if a.IsWeightPR() {
			weight := a.BestWeight
			out = append(out, Milestone{
				UserID:       current.UserID,
				Type:         TypeWeightPR,
				Title:        fmt.Sprintf("%s PR", a.ExerciseName),
				Description:  fmt.Sprintf("Lifted %g %s on %s.", weight, a.Units, a.ExerciseName),
				Value:        &weight,
				Unit:         a.Units,
				ExerciseName: a.ExerciseName,
				Week:         &week,
			})
		}
		if a.IsE1RMPR() {
			e1rm := math.Round(a.E1RM*10) / 10
			out = append(out, Milestone{
				UserID:       current.UserID,
				Type:         TypeE1RMPR,
				Title:        fmt.Sprintf("%s estimated max PR", a.ExerciseName),
				Description:  fmt.Sprintf("Estimated max of %g %s on %s.", e1rm, a.Units, a.ExerciseName),
				Value:        &e1rm,
				Unit:         a.Units,
				ExerciseName: a.ExerciseName,
				Week:         &week,
			})
		}
	}
	return out
}

func weekComplete(current training.WorkoutLog, logs []training.WorkoutLog) (Milestone, bool) {
	days := map[int]bool{}
	for _, l := range logs {
		if l.Week == current.Week && l.IsCompleted() {
			days[l.Day] = true
		}
	}
	if len(days) < weekCompleteDays {
		return Milestone{}, false
	}

	week := current.Week
	value := float64(week)
	return Milestone{
		UserID:      current.UserID,
		Type:        TypeWeekComplete,
		Title:       fmt.Sprintf("Week %d complete", week),
		Description: fmt.Sprintf("Trained %d days in program week %d.", len(days), week),
		Value:       &value,
		Week:        &week,
	}, true
}

func streak(userID, days int) Milestone {
	value := float64(days)
	return Milestone{
		UserID:      userID,
		Type:        StreakType(days),
		Title:       fmt.Sprintf("%d workout streak", days),
		Description: fmt.Sprintf("Trained %d sessions in a row without a long break.", days),
		Value:       &value,
	}
}
