package social

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/liftlog/internal/milestones"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddFriendRequest(ctx context.Context, fromUserID, toUserID int) (_ *FriendRequest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.friendRequest.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("from.user.id", fromUserID), attribute.Int("to.user.id", toUserID))

	req := FriendRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     StatusPending,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO friend_request (from_user_id, to_user_id) VALUES ($1, $2) RETURNING id, created_at;`,
		fromUserID, toUserID,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrFriendRequestExists
		}
		return nil, fmt.Errorf("insert friend request: %w", err)
	}
	return &req, nil
}

// ListIncomingRequests returns pending requests sent to userID, newest first.
func (r *Repo) ListIncomingRequests(ctx context.Context, userID int) (_ []FriendRequest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.friendRequest.listIncoming")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT fr.id, fr.from_user_id, u.username, fr.to_user_id, fr.status, fr.created_at
			FROM friend_request fr
			JOIN users u ON u.id = fr.from_user_id
			WHERE fr.to_user_id = $1 AND fr.status = 'pending'
			ORDER BY fr.created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query friend requests: %w", err)
	}
	defer rows.Close()

	requests := []FriendRequest{}
	for rows.Next() {
		var req FriendRequest
		if err := rows.Scan(&req.ID, &req.FromUserID, &req.FromUsername, &req.ToUserID, &req.Status, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan friend request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// AcceptFriendRequest marks a pending request addressed to userID accepted and
// stores the friendship in both directions.
func (r *Repo) AcceptFriendRequest(ctx context.Context, requestID, userID int) (_ *FriendRequest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.friendRequest.accept")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("request.id", requestID), attribute.Int("user.id", userID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	req := FriendRequest{ID: requestID, ToUserID: userID, Status: StatusAccepted}
	err = tx.QueryRow(
		ctx,
		`UPDATE friend_request SET status = 'accepted'
			WHERE id = $1 AND to_user_id = $2 AND status = 'pending'
			RETURNING from_user_id, created_at;`,
		requestID, userID,
	).Scan(&req.FromUserID, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFriendRequestNotFound
		}
		return nil, fmt.Errorf("update friend request: %w", err)
	}

	_, err = tx.Exec(
		ctx,
		`INSERT INTO friendship (user_id, friend_id) VALUES ($1, $2), ($2, $1)
			ON CONFLICT DO NOTHING;`,
		req.FromUserID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert friendship: %w", err)
	}

	return &req, nil
}

func (r *Repo) DeclineFriendRequest(ctx context.Context, requestID, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.friendRequest.decline")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("request.id", requestID), attribute.Int("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE friend_request SET status = 'declined'
			WHERE id = $1 AND to_user_id = $2 AND status = 'pending';`,
		requestID, userID,
	)
	if err != nil {
		return fmt.Errorf("update friend request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFriendRequestNotFound
	}
	return nil
}

func (r *Repo) AreFriends(ctx context.Context, userID, otherUserID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.friendship.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM friendship WHERE user_id = $1 AND friend_id = $2);`,
		userID, otherUserID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query friendship: %w", err)
	}
	return exists, nil
}

func (r *Repo) ListFriends(ctx context.Context, userID int) (_ []Friend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.friendship.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT f.friend_id, u.username, f.created_at
			FROM friendship f
			JOIN users u ON u.id = f.friend_id
			WHERE f.user_id = $1
			ORDER BY u.username;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query friends: %w", err)
	}
	defer rows.Close()

	friends := []Friend{}
	for rows.Next() {
		var f Friend
		if err := rows.Scan(&f.UserID, &f.Username, &f.Since); err != nil {
			return nil, fmt.Errorf("scan friend: %w", err)
		}
		friends = append(friends, f)
	}
	return friends, rows.Err()
}

// RemoveFriendship deletes the friendship in both directions.
func (r *Repo) RemoveFriendship(ctx context.Context, userID, friendID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.friendship.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("friend.id", friendID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM friendship
			WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1);`,
		userID, friendID,
	)
	if err != nil {
		return fmt.Errorf("delete friendship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFriends
	}
	return nil
}

func (r *Repo) AddNudge(ctx context.Context, fromUserID, toUserID int, message string) (_ *Nudge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.nudge.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("from.user.id", fromUserID), attribute.Int("to.user.id", toUserID))

	nudge := Nudge{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Message:    message,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO nudge (from_user_id, to_user_id, message) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		fromUserID, toUserID, message,
	).Scan(&nudge.ID, &nudge.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert nudge: %w", err)
	}
	return &nudge, nil
}

func (r *Repo) ListNudges(ctx context.Context, userID, limit int) (_ []Nudge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.nudge.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT n.id, n.from_user_id, u.username, n.to_user_id, n.message, n.created_at, n.seen_at
			FROM nudge n
			JOIN users u ON u.id = n.from_user_id
			WHERE n.to_user_id = $1
			ORDER BY n.created_at DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query nudges: %w", err)
	}
	defer rows.Close()

	nudges := []Nudge{}
	for rows.Next() {
		var n Nudge
		if err := rows.Scan(&n.ID, &n.FromUserID, &n.FromUsername, &n.ToUserID, &n.Message, &n.CreatedAt, &n.SeenAt); err != nil {
			return nil, fmt.Errorf("scan nudge: %w", err)
		}
		nudges = append(nudges, n)
	}
	return nudges, rows.Err()
}

func (r *Repo) MarkNudgeSeen(ctx context.Context, userID, nudgeID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.nudge.seen")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("nudge.id", nudgeID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE nudge SET seen_at = COALESCE(seen_at, now()) WHERE id = $1 AND to_user_id = $2;`,
		nudgeID, userID,
	)
	if err != nil {
		return fmt.Errorf("update nudge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNudgeNotFound
	}
	return nil
}

// AddCelebration records one celebration per user and milestone and bumps the
// milestone's celebration count in the same transaction.
func (r *Repo) AddCelebration(ctx context.Context, milestoneID, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.social.celebration.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("milestone.id", milestoneID), attribute.Int("user.id", userID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(
		ctx,
		`INSERT INTO celebration (milestone_id, user_id) VALUES ($1, $2);`,
		milestoneID, userID,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return 0, ErrAlreadyCelebrated
		}
		if pkg.IsForeignKeyViolationError(err) {
			return 0, milestones.ErrMilestoneNotFound
		}
		return 0, fmt.Errorf("insert celebration: %w", err)
	}

	var count int
	err = tx.QueryRow(
		ctx,
		`UPDATE milestone SET celebration_count = celebration_count + 1 WHERE id = $1 RETURNING celebration_count;`,
		milestoneID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("increment celebration count: %w", err)
	}
	return count, nil
}
