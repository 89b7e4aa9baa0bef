package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/loadmath"
	"github.com/2beens/liftlog/internal/milestones"
	"github.com/2beens/liftlog/internal/program"
	"github.com/2beens/liftlog/internal/reactions"
	"github.com/2beens/liftlog/internal/store"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/training"
	"github.com/2beens/liftlog/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

var (
	ErrWorkoutCompleted = errors.New("workout already completed")
	ErrInvalidInput     = errors.New("invalid input")
)

type logStore interface {
	GetSettings(ctx context.Context, userID int) (*training.Settings, error)
	PutSettings(ctx context.Context, settings training.Settings) error
	GetLog(ctx context.Context, userID int, id string) (*training.WorkoutLog, error)
	PutLog(ctx context.Context, workoutLog training.WorkoutLog) error
	DeleteLog(ctx context.Context, userID int, id string) error
	ListLogs(ctx context.Context, userID int) ([]training.WorkoutLog, error)
	ListLogsByDate(ctx context.Context, userID int, date training.Date) ([]training.WorkoutLog, error)
	ListLogsByWeekDay(ctx context.Context, userID, week, day int) ([]training.WorkoutLog, error)
}

type reactionEngine interface {
	Evaluate(current training.WorkoutLog, history []training.WorkoutLog, settings training.Settings) []reactions.Reaction
}

type milestoneQueue interface {
	Enqueue(job milestones.Job) bool
}

type NewWorkout struct {
	Date    *training.Date              `json:"date"`
	Week    int                         `json:"week"`
	Day     int                         `json:"day"`
	Notes   string                      `json:"notes"`
	Entries []training.ExerciseLogEntry `json:"entries"`
}

type WorkoutUpdate struct {
	Notes   string                      `json:"notes"`
	Entries []training.ExerciseLogEntry `json:"entries"`
}

// ListFilter selects logs by date, or by program week and day when Date is nil.
type ListFilter struct {
	Date *training.Date
	Week int
	Day  int
}

type CompletionResult struct {
	Log       training.WorkoutLog  `json:"log"`
	Reactions []reactions.Reaction `json:"reactions"`
	Streak    int                  `json:"streak"`
}

type Service struct {
	store          logStore
	engine         reactionEngine
	milestones     milestoneQueue
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	logStore logStore,
	engine reactionEngine,
	milestoneQueue milestoneQueue,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		store:          logStore,
		engine:         engine,
		milestones:     milestoneQueue,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) StartWorkout(ctx context.Context, userID int, nw NewWorkout) (_ *training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	now := s.now()
	date := training.DateOf(now)
	if nw.Date != nil && !nw.Date.IsZero() {
		date = *nw.Date
	}

	workoutLog := training.WorkoutLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		Week:      nw.Week,
		Day:       nw.Day,
		Notes:     nw.Notes,
		StartedAt: now,
		Entries:   nw.Entries,
	}
	if workoutLog.Entries == nil {
		workoutLog.Entries = []training.ExerciseLogEntry{}
	}
	if err := pkg.Validate(workoutLog); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.store.PutLog(ctx, workoutLog); err != nil {
		return nil, fmt.Errorf("save workout log: %w", err)
	}
	span.SetAttributes(attribute.String("log.id", workoutLog.ID))

	return &workoutLog, nil
}

// UpdateWorkout replaces notes and entries of a workout that is still in progress.
func (s *Service) UpdateWorkout(ctx context.Context, userID int, id string, update WorkoutUpdate) (_ *training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("log.id", id))

	workoutLog, err := s.store.GetLog(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if workoutLog.IsCompleted() {
		return nil, ErrWorkoutCompleted
	}

	applyUpdate(workoutLog, update)
	if err := pkg.Validate(workoutLog); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.store.PutLog(ctx, *workoutLog); err != nil {
		return nil, fmt.Errorf("save workout log: %w", err)
	}
	return workoutLog, nil
}

// CompleteWorkout finishes a workout, advances the streak and returns the reactions to it.
// Milestone detection is queued and never delays the caller.
func (s *Service) CompleteWorkout(ctx context.Context, userID int, id string, final *WorkoutUpdate) (_ *CompletionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("log.id", id))

	workoutLog, err := s.store.GetLog(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if workoutLog.IsCompleted() {
		return nil, ErrWorkoutCompleted
	}
	if final != nil {
		applyUpdate(workoutLog, *final)
	}
	if err := pkg.Validate(workoutLog); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.store.ListLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	completedAt := s.now()
	workoutLog.CompletedAt = &completedAt

	streak := milestones.CalculateStreak(settings.LastWorkoutDate, workoutLog.Date, settings.CurrentStreak)
	settings.CurrentStreak = streak
	if settings.LastWorkoutDate == nil || settings.LastWorkoutDate.Before(workoutLog.Date) {
		date := workoutLog.Date
		settings.LastWorkoutDate = &date
	}
	settings.UpdatedAt = completedAt

	if err := s.store.PutLog(ctx, *workoutLog); err != nil {
		return nil, fmt.Errorf("save workout log: %w", err)
	}
	if err := s.store.PutSettings(ctx, *settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	reacts := s.engine.Evaluate(*workoutLog, history, *settings)

	s.metricsManager.CounterWorkoutsCompleted.Inc()
	for _, r := range reacts {
		s.metricsManager.CounterReactions.WithLabelValues(string(r.Trigger)).Inc()
	}

	if !s.milestones.Enqueue(milestones.Job{UserID: userID, LogID: workoutLog.ID}) {
		log.Warnf("milestone job for user %d, log %s not queued", userID, workoutLog.ID)
	}

	span.SetAttributes(attribute.Int("streak", streak), attribute.Int("reactions", len(reacts)))
	return &CompletionResult{
		Log:       *workoutLog,
		Reactions: reacts,
		Streak:    streak,
	}, nil
}

func (s *Service) GetWorkout(ctx context.Context, userID int, id string) (_ *training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("log.id", id))

	return s.store.GetLog(ctx, userID, id)
}

func (s *Service) ListWorkouts(ctx context.Context, userID int, filter ListFilter) (_ []training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var logs []training.WorkoutLog
	switch {
	case filter.Date != nil:
		logs, err = s.store.ListLogsByDate(ctx, userID, *filter.Date)
	case filter.Week > 0 && filter.Day > 0:
		logs, err = s.store.ListLogsByWeekDay(ctx, userID, filter.Week, filter.Day)
	default:
		logs, err = s.store.ListLogs(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	if logs == nil {
		logs = []training.WorkoutLog{}
	}
	return logs, nil
}

func (s *Service) DeleteWorkout(ctx context.Context, userID int, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("log.id", id))

	return s.store.DeleteLog(ctx, userID, id)
}

// GetSettings returns stored settings, or the defaults for a user who never saved any.
func (s *Service) GetSettings(ctx context.Context, userID int) (_ *training.Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.settings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	settings, err := s.store.GetSettings(ctx, userID)
	if errors.Is(err, store.ErrSettingsNotFound) {
		defaults := training.DefaultSettings(userID)
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings stores the user editable part of settings. Streak fields stay server owned.
func (s *Service) UpdateSettings(ctx context.Context, userID int, update training.Settings) (_ *training.Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.settings.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := pkg.Validate(update); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	current, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	update.UserID = userID
	update.CurrentStreak = current.CurrentStreak
	update.LastWorkoutDate = current.LastWorkoutDate
	update.UpdatedAt = s.now()

	if err := s.store.PutSettings(ctx, update); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return &update, nil
}

func (s *Service) LoadProfile(ctx context.Context, userID int) (program.LoadProfile, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return program.LoadProfile{}, err
	}
	return program.LoadProfile{
		Units:             settings.Units,
		RoundingIncrement: settings.RoundingIncrement,
		TrainingMaxes:     settings.TrainingMaxes,
	}, nil
}

func applyUpdate(workoutLog *training.WorkoutLog, update WorkoutUpdate) {
	workoutLog.Notes = update.Notes
	if update.Entries != nil {
		workoutLog.Entries = update.Entries
	}
}

// SettingsInDisplayUnits returns settings with training maxes converted to the user's units.
func SettingsInDisplayUnits(settings training.Settings) training.Settings {
	settings.TrainingMaxes = settings.TrainingMaxesIn(settings.Units)
	return settings
}

// SettingsFromDisplayUnits converts training maxes given in the settings' units back to pounds.
func SettingsFromDisplayUnits(settings training.Settings) training.Settings {
	units := settings.Units
	if !units.IsValid() {
		return settings
	}
	settings.TrainingMaxes = program.TrainingMaxes{
		Squat:    loadmath.ConvertWeight(settings.TrainingMaxes.Squat, units, loadmath.Lbs),
		Bench:    loadmath.ConvertWeight(settings.TrainingMaxes.Bench, units, loadmath.Lbs),
		Deadlift: loadmath.ConvertWeight(settings.TrainingMaxes.Deadlift, units, loadmath.Lbs),
	}
	return settings
}
