package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/training"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const logColumns = `id, user_id, date, week, day, notes, started_at, completed_at, entries`

type PsqlStore struct {
	db *pgxpool.Pool
}

var _ Store = (*PsqlStore)(nil)

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

func (s *PsqlStore) GetSettings(ctx context.Context, userID int) (_ *training.Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.getSettings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var data []byte
	err = s.db.QueryRow(ctx, `SELECT data FROM user_settings WHERE user_id = $1;`, userID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("query settings: %w", err)
	}

	var settings training.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	settings.UserID = userID
	return &settings, nil
}

func (s *PsqlStore) PutSettings(ctx context.Context, settings training.Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.putSettings")
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

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO user_settings (user_id, data, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id) DO UPDATE
				SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at;`,
		settings.UserID, data, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func (s *PsqlStore) GetLog(ctx context.Context, userID int, id string) (_ *training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.getLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("log.id", id))

	rows, err := s.db.Query(
		ctx,
		`SELECT `+logColumns+` FROM workout_log WHERE user_id = $1 AND id = $2;`,
		userID, id,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout log: %w", err)
	}
	defer rows.Close()

	logs, err := rows2logs(rows)
	if err != nil {
		return nil, err
	}
	if len(logs) != 1 {
		return nil, ErrLogNotFound
	}
	return &logs[0], nil
}

// PutLog inserts or replaces a log. A log id owned by another user is never overwritten.
func (s *PsqlStore) PutLog(ctx context.Context, workoutLog training.WorkoutLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.putLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", workoutLog.UserID), attribute.String("log.id", workoutLog.ID))

	entries := workoutLog.Entries
	if entries == nil {
		entries = []training.ExerciseLogEntry{}
	}
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	tag, err := s.db.Exec(
		ctx,
		`INSERT INTO workout_log (`+logColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO UPDATE
				SET date = EXCLUDED.date,
					week = EXCLUDED.week,
					day = EXCLUDED.day,
					notes = EXCLUDED.notes,
					started_at = EXCLUDED.started_at,
					completed_at = EXCLUDED.completed_at,
					entries = EXCLUDED.entries
				WHERE workout_log.user_id = EXCLUDED.user_id;`,
		workoutLog.ID, workoutLog.UserID, workoutLog.Date.Time, workoutLog.Week, workoutLog.Day,
		workoutLog.Notes, workoutLog.StartedAt, workoutLog.CompletedAt, entriesJSON,
	)
	if err != nil {
		return fmt.Errorf("upsert workout log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout log %s belongs to another user", workoutLog.ID)
	}
	return nil
}

func (s *PsqlStore) DeleteLog(ctx context.Context, userID int, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.deleteLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("log.id", id))

	tag, err := s.db.Exec(ctx, `DELETE FROM workout_log WHERE user_id = $1 AND id = $2;`, userID, id)
	if err != nil {
		return fmt.Errorf("delete workout log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (s *PsqlStore) ListLogs(ctx context.Context, userID int) (_ []training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.listLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.queryLogs(
		ctx,
		`SELECT `+logColumns+` FROM workout_log
			WHERE user_id = $1
			ORDER BY date, started_at;`,
		userID,
	)
}

func (s *PsqlStore) ListLogsByDate(ctx context.Context, userID int, date training.Date) (_ []training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.listLogsByDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("date", date.String()))

	return s.queryLogs(
		ctx,
		`SELECT `+logColumns+` FROM workout_log
			WHERE user_id = $1 AND date = $2
			ORDER BY started_at;`,
		userID, date.Time,
	)
}

func (s *PsqlStore) ListLogsByWeekDay(ctx context.Context, userID, week, day int) (_ []training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.listLogsByWeekDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("week", week),
		attribute.Int("day", day),
	)

	return s.queryLogs(
		ctx,
		`SELECT `+logColumns+` FROM workout_log
			WHERE user_id = $1 AND week = $2 AND day = $3
			ORDER BY date, started_at;`,
		userID, week, day,
	)
}

// CountLogs counts completed logs only.
func (s *PsqlStore) CountLogs(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.countLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var count int
	err = s.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout_log WHERE user_id = $1 AND completed_at IS NOT NULL;`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count workout logs: %w", err)
	}
	return count, nil
}

func (s *PsqlStore) queryLogs(ctx context.Context, sql string, args ...any) ([]training.WorkoutLog, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query workout logs: %w", err)
	}
	defer rows.Close()
	return rows2logs(rows)
}

func rows2logs(rows pgx.Rows) ([]training.WorkoutLog, error) {
	var logs []training.WorkoutLog
	for rows.Next() {
		var l training.WorkoutLog
		var date time.Time
		var entries []byte
		if err := rows.Scan(
			&l.ID, &l.UserID, &date, &l.Week, &l.Day,
			&l.Notes, &l.StartedAt, &l.CompletedAt, &entries,
		); err != nil {
			return nil, fmt.Errorf("scan workout log: %w", err)
		}
		l.Date = training.DateOf(date)
		if err := json.Unmarshal(entries, &l.Entries); err != nil {
			return nil, fmt.Errorf("unmarshal entries of %s: %w", l.ID, err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout logs: %w", err)
	}
	return logs, nil
}
