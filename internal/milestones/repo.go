package milestones

import (
	"context"
	"fmt"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const milestoneColumns = `id, user_id, type, title, description, value, unit, exercise_name, week, created_at, celebration_count`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, milestone Milestone) (_ *Milestone, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", milestone.UserID),
		attribute.String("type", string(milestone.Type)),
	)

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO milestone
				(user_id, type, title, description, value, unit, exercise_name, week)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at;`,
		milestone.UserID, milestone.Type, milestone.Title, milestone.Description,
		milestone.Value, milestone.Unit, milestone.ExerciseName, milestone.Week,
	).Scan(&milestone.ID, &milestone.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrMilestoneExists
		}
		return nil, fmt.Errorf("insert milestone: %w", err)
	}

	return &milestone, nil
}

// Exists matches on user, type, value and exercise name. A nil value only matches a nil value.
func (r *Repo) Exists(ctx context.Context, userID int, mType Type, value *float64, exerciseName string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM milestone
			WHERE user_id = $1
				AND type = $2
				AND COALESCE(value, -1) = COALESCE($3::double precision, -1)
				AND exercise_name = $4
		);`,
		userID, mType, value, exerciseName,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query milestone exists: %w", err)
	}
	return exists, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Milestone, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("milestone.id", id))

	rows, err := r.db.Query(ctx, `SELECT `+milestoneColumns+` FROM milestone WHERE id = $1;`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ms, err := rows2milestones(rows)
	if err != nil {
		return nil, err
	}
	if len(ms) != 1 {
		return nil, ErrMilestoneNotFound
	}
	return &ms[0], nil
}

// ListByUser returns the newest milestones of one user first.
func (r *Repo) ListByUser(ctx context.Context, userID, limit int) (_ []Milestone, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.listByUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+milestoneColumns+` FROM milestone
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2milestones(rows)
}

// ListForUsers returns the newest milestones of any of userIDs first.
func (r *Repo) ListForUsers(ctx context.Context, userIDs []int, limit int) (_ []Milestone, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.listForUsers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("users", len(userIDs)))

	if len(userIDs) == 0 {
		return []Milestone{}, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+milestoneColumns+` FROM milestone
			WHERE user_id = ANY($1)
			ORDER BY created_at DESC, id DESC
			LIMIT $2;`,
		userIDs, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2milestones(rows)
}

func rows2milestones(rows pgx.Rows) ([]Milestone, error) {
	ms := []Milestone{}
	for rows.Next() {
		var m Milestone
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Type, &m.Title, &m.Description, &m.Value,
			&m.Unit, &m.ExerciseName, &m.Week, &m.CreatedAt, &m.CelebrationCount,
		); err != nil {
			return nil, fmt.Errorf("scan milestone: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ms, nil
}
