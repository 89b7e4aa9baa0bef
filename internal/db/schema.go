package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS user_settings (
		user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS workout_log (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		week INTEGER NOT NULL,
		day INTEGER NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		started_at TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ,
		entries JSONB NOT NULL DEFAULT '[]'
	)`,
	`CREATE INDEX IF NOT EXISTS workout_log_user_date_idx ON workout_log (user_id, date)`,
	`CREATE INDEX IF NOT EXISTS workout_log_user_week_day_idx ON workout_log (user_id, week, day)`,
	`CREATE TABLE IF NOT EXISTS milestone (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		value DOUBLE PRECISION,
		unit TEXT NOT NULL DEFAULT '',
		exercise_name TEXT NOT NULL DEFAULT '',
		week INTEGER,
		celebration_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS milestone_dedup_idx
		ON milestone (user_id, type, COALESCE(value, -1), exercise_name)`,
	`CREATE TABLE IF NOT EXISTS celebration (
		id SERIAL PRIMARY KEY,
		milestone_id INTEGER NOT NULL REFERENCES milestone(id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (milestone_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS friend_request (
		id SERIAL PRIMARY KEY,
		from_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		to_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'declined')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS friend_request_pending_idx
		ON friend_request (from_user_id, to_user_id) WHERE status = 'pending'`,
	`CREATE TABLE IF NOT EXISTS friendship (
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		friend_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, friend_id)
	)`,
	`CREATE TABLE IF NOT EXISTS nudge (
		id SERIAL PRIMARY KEY,
		from_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		to_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		seen_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS nudge_to_user_idx ON nudge (to_user_id, created_at DESC)`,
}

// Migrate creates all tables and indexes that do not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d: %w", i, err)
		}
	}
	log.Debugf("db schema migrated, %d statements", len(schema))
	return nil
}
