package store

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=store_test

import (
	"context"
	"errors"

	"github.com/2beens/liftlog/internal/training"
)

var (
	ErrSettingsNotFound = errors.New("settings not found")
	ErrLogNotFound      = errors.New("workout log not found")
)

// Store persists user settings and workout logs. Logs are always scoped by user.
type Store interface {
	GetSettings(ctx context.Context, userID int) (*training.Settings, error)
	PutSettings(ctx context.Context, settings training.Settings) error
	GetLog(ctx context.Context, userID int, id string) (*training.WorkoutLog, error)
	PutLog(ctx context.Context, workoutLog training.WorkoutLog) error
	DeleteLog(ctx context.Context, userID int, id string) error
	ListLogs(ctx context.Context, userID int) ([]training.WorkoutLog, error)
	ListLogsByDate(ctx context.Context, userID int, date training.Date) ([]training.WorkoutLog, error)
	ListLogsByWeekDay(ctx context.Context, userID, week, day int) ([]training.WorkoutLog, error)
	CountLogs(ctx context.Context, userID int) (int, error)
}
