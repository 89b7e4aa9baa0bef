package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/training"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite"
)

var localMigrations = []string{
	`CREATE TABLE IF NOT EXISTS user_settings (
		user_id INTEGER PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS workout_log (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		week INTEGER NOT NULL,
		day INTEGER NOT NULL,
		started_at INTEGER NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		data TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_log_user_date ON workout_log(user_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_log_user_week_day ON workout_log(user_id, week, day)`,
	`CREATE TABLE IF NOT EXISTS sync_state (
		user_id INTEGER PRIMARY KEY,
		pushed_at INTEGER NOT NULL
	)`,
}

// LocalStore keeps an on-device copy of settings and logs in sqlite.
// Rows hold the full JSON document next to the columns used for lookups.
type LocalStore struct {
	db *sql.DB
}

var _ Store = (*LocalStore)(nil)

func NewLocalStore(dbPath string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open local db: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &LocalStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate local db: %w", err)
	}

	log.Debugf("local store opened: %s", dbPath)
	return s, nil
}

func (s *LocalStore) migrate() error {
	for _, m := range localMigrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}

func (s *LocalStore) GetSettings(ctx context.Context, userID int) (_ *training.Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "local.store.getSettings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var data string
	err = s.db.QueryRowContext(ctx, `SELECT data FROM user_settings WHERE user_id = ?`, userID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("query settings: %w", err)
	}

	var settings training.Settings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	settings.UserID = userID
	return &settings, nil
}

func (s *LocalStore) PutSettings(ctx context.Context, settings training.Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "local.store.putSettings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", settings.UserID))

	if settings.UpdatedAt.IsZero() {
		settings.UpdatedAt = time.Now()
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO user_settings (user_id, data, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		settings.UserID, string(data), settings.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func (s *LocalStore) GetLog(ctx context.Context, userID int, id string) (_ *training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "local.store.getLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("log.id", id))

	logs, err := s.queryLogs(ctx, `SELECT data FROM workout_log WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return nil, err
	}
	if len(logs) != 1 {
		return nil, ErrLogNotFound
	}
	return &logs[0], nil
}

func (s *LocalStore) PutLog(ctx context.Context, workoutLog training.WorkoutLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "local.store.putLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", workoutLog.UserID), attribute.String("log.id", workoutLog.ID))

	data, err := json.Marshal(workoutLog)
	if err != nil {
		return fmt.Errorf("marshal workout log: %w", err)
	}

	completed := 0
	if workoutLog.IsCompleted() {
		completed = 1
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO workout_log (id, user_id, date, week, day, started_at, completed, data)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				date = excluded.date,
				week = excluded.week,
				day = excluded.day,
				started_at = excluded.started_at,
				completed = excluded.completed,
				data = excluded.data
			WHERE workout_log.user_id = excluded.user_id`,
		workoutLog.ID, workoutLog.UserID, workoutLog.Date.String(), workoutLog.Week, workoutLog.Day,
		workoutLog.StartedAt.UnixNano(), completed, string(data),
	)
	if err != nil {
		return fmt.Errorf("upsert workout log: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("workout log %s belongs to another user", workoutLog.ID)
	}
	return nil
}

func (s *LocalStore) DeleteLog(ctx context.Context, userID int, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "local.store.deleteLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("log.id", id))

	res, err := s.db.ExecContext(ctx, `DELETE FROM workout_log WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete workout log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (s *LocalStore) ListLogs(ctx context.Context, userID int) (_ []training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "local.store.listLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.queryLogs(
		ctx,
		`SELECT data FROM workout_log WHERE user_id = ? ORDER BY date, started_at`,
		userID,
	)
}

func (s *LocalStore) ListLogsByDate(ctx context.Context, userID int, date training.Date) (_ []training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "local.store.listLogsByDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("date", date.String()))

	return s.queryLogs(
		ctx,
		`SELECT data FROM workout_log WHERE user_id = ? AND date = ? ORDER BY started_at`,
		userID, date.String(),
	)
}

func (s *LocalStore) ListLogsByWeekDay(ctx context.Context, userID, week, day int) (_ []training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "local.store.listLogsByWeekDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("week", week), attribute.Int("day", day))

	return s.queryLogs(
		ctx,
		`SELECT data FROM workout_log WHERE user_id = ? AND week = ? AND day = ? ORDER BY date, started_at`,
		userID, week, day,
	)
}

// CountLogs counts completed logs only.
func (s *LocalStore) CountLogs(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "local.store.countLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var count int
	err = s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM workout_log WHERE user_id = ? AND completed = 1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count workout logs: %w", err)
	}
	return count, nil
}

// IsPushed reports whether the local data of a user was already copied to the remote store.
func (s *LocalStore) IsPushed(ctx context.Context, userID int) (bool, error) {
	var pushedAt int64
	err := s.db.QueryRowContext(ctx, `SELECT pushed_at FROM sync_state WHERE user_id = ?`, userID).Scan(&pushedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query sync state: %w", err)
	}
	return true, nil
}

func (s *LocalStore) MarkPushed(ctx context.Context, userID int) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sync_state (user_id, pushed_at) VALUES (?, ?)
			ON CONFLICT(user_id) DO UPDATE SET pushed_at = excluded.pushed_at`,
		userID, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("mark pushed: %w", err)
	}
	return nil
}

// ClearPushed makes the next PushLocalOnce copy local data again.
func (s *LocalStore) ClearPushed(ctx context.Context, userID int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sync_state WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear pushed: %w", err)
	}
	return nil
}

func (s *LocalStore) queryLogs(ctx context.Context, query string, args ...any) ([]training.WorkoutLog, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workout logs: %w", err)
	}
	defer rows.Close()

	var logs []training.WorkoutLog
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan workout log: %w", err)
		}
		var l training.WorkoutLog
		if err := json.Unmarshal([]byte(data), &l); err != nil {
			return nil, fmt.Errorf("unmarshal workout log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout logs: %w", err)
	}
	return logs, nil
}
