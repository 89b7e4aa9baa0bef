package social

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/milestones"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/training"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=social_test

const (
	DefaultNudgesPerDay = 3
	maxNudgeMessageLen  = 280
)

type socialRepo interface {
	AddFriendRequest(ctx context.Context, fromUserID, toUserID int) (*FriendRequest, error)
	ListIncomingRequests(ctx context.Context, userID int) ([]FriendRequest, error)
	AcceptFriendRequest(ctx context.Context, requestID, userID int) (*FriendRequest, error)
	DeclineFriendRequest(ctx context.Context, requestID, userID int) error
	AreFriends(ctx context.Context, userID, otherUserID int) (bool, error)
	ListFriends(ctx context.Context, userID int) ([]Friend, error)
	RemoveFriendship(ctx context.Context, userID, friendID int) error
	AddNudge(ctx context.Context, fromUserID, toUserID int, message string) (*Nudge, error)
	ListNudges(ctx context.Context, userID, limit int) ([]Nudge, error)
	MarkNudgeSeen(ctx context.Context, userID, nudgeID int) error
	AddCelebration(ctx context.Context, milestoneID, userID int) (int, error)
}

type usersFinder interface {
	GetByUsername(ctx context.Context, username string) (*auth.User, error)
}

type settingsSource interface {
	GetSettings(ctx context.Context, userID int) (*training.Settings, error)
}

type milestonesSource interface {
	Get(ctx context.Context, id int) (*milestones.Milestone, error)
	ListForUsers(ctx context.Context, userIDs []int, limit int) ([]milestones.Milestone, error)
}

type nudgeLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// FeedItem is a friend's milestone together with the friend's username.
type FeedItem struct {
	milestones.Milestone
	Username string `json:"username"`
}

type ServiceParams struct {
	Repo         socialRepo
	Users        usersFinder
	Settings     settingsSource
	Milestones   milestonesSource
	NudgeLimiter nudgeLimiter
	NudgesPerDay int
}

type Service struct {
	repo         socialRepo
	users        usersFinder
	settings     settingsSource
	milestones   milestonesSource
	nudgeLimiter nudgeLimiter
	nudgeLimit   redis_rate.Limit
}

func NewService(params ServiceParams) *Service {
	perDay := params.NudgesPerDay
	if perDay <= 0 {
		perDay = DefaultNudgesPerDay
	}
	return &Service{
		repo:         params.Repo,
		users:        params.Users,
		settings:     params.Settings,
		milestones:   params.Milestones,
		nudgeLimiter: params.NudgeLimiter,
		nudgeLimit: redis_rate.Limit{
			Rate:   perDay,
			Burst:  perDay,
			Period: 24 * time.Hour,
		},
	}
}

// SendFriendRequest asks the user with the given username to become a friend of fromUserID.
func (s *Service) SendFriendRequest(ctx context.Context, fromUserID int, toUsername string) (_ *FriendRequest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.social.friendRequest.send")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", fromUserID))

	to, err := s.users.GetByUsername(ctx, toUsername)
	if err != nil {
		return nil, err
	}
	if to.ID == fromUserID {
		return nil, ErrSelfFriendRequest
	}

	friends, err := s.repo.AreFriends(ctx, fromUserID, to.ID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, ErrAlreadyFriends
	}

	settings, err := s.settings.GetSettings(ctx, to.ID)
	if err != nil {
		return nil, fmt.Errorf("recipient settings: %w", err)
	}
	if !settings.Notifications.FriendRequests {
		return nil, ErrFriendRequestsDisabled
	}

	return s.repo.AddFriendRequest(ctx, fromUserID, to.ID)
}

func (s *Service) ListIncomingRequests(ctx context.Context, userID int) ([]FriendRequest, error) {
	return s.repo.ListIncomingRequests(ctx, userID)
}

func (s *Service) AcceptFriendRequest(ctx context.Context, userID, requestID int) (*FriendRequest, error) {
	return s.repo.AcceptFriendRequest(ctx, requestID, userID)
}

func (s *Service) DeclineFriendRequest(ctx context.Context, userID, requestID int) error {
	return s.repo.DeclineFriendRequest(ctx, requestID, userID)
}

func (s *Service) ListFriends(ctx context.Context, userID int) ([]Friend, error) {
	return s.repo.ListFriends(ctx, userID)
}

func (s *Service) RemoveFriend(ctx context.Context, userID, friendID int) error {
	return s.repo.RemoveFriendship(ctx, userID, friendID)
}

// SendNudge nudges a friend. Recipients can opt out, and each sender is limited per recipient and day.
func (s *Service) SendNudge(ctx context.Context, fromUserID, toUserID int, message string) (_ *Nudge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.social.nudge.send")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("from.user.id", fromUserID), attribute.Int("to.user.id", toUserID))

	if utf8.RuneCountInString(message) > maxNudgeMessageLen {
		message = string([]rune(message)[:maxNudgeMessageLen])
	}

	if fromUserID == toUserID {
		return nil, ErrNotFriends
	}
	friends, err := s.repo.AreFriends(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, ErrNotFriends
	}

	settings, err := s.settings.GetSettings(ctx, toUserID)
	if err != nil {
		return nil, fmt.Errorf("recipient settings: %w", err)
	}
	if !settings.Notifications.Nudges {
		return nil, ErrNudgesDisabled
	}

	key := fmt.Sprintf("nudge|%d|%d", fromUserID, toUserID)
	res, err := s.nudgeLimiter.Allow(ctx, key, s.nudgeLimit)
	switch {
	case err != nil:
		log.Warnf("nudge rate limit check for %s: %s", key, err)
	case res.Allowed == 0:
		return nil, ErrNudgeRateLimited
	}

	return s.repo.AddNudge(ctx, fromUserID, toUserID, message)
}

func (s *Service) ListNudges(ctx context.Context, userID, limit int) ([]Nudge, error) {
	return s.repo.ListNudges(ctx, userID, limit)
}

func (s *Service) MarkNudgeSeen(ctx context.Context, userID, nudgeID int) error {
	return s.repo.MarkNudgeSeen(ctx, userID, nudgeID)
}

// Celebrate lets a friend celebrate a milestone once. Milestones of users who do
// not share them are reported as not found.
func (s *Service) Celebrate(ctx context.Context, userID, milestoneID int) (_ *Celebration, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.social.celebrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("milestone.id", milestoneID))

	m, err := s.milestones.Get(ctx, milestoneID)
	if err != nil {
		return nil, err
	}
	if m.UserID == userID {
		return nil, ErrOwnMilestone
	}

	friends, err := s.repo.AreFriends(ctx, userID, m.UserID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, ErrNotFriends
	}

	ownerSettings, err := s.settings.GetSettings(ctx, m.UserID)
	if err != nil {
		return nil, fmt.Errorf("owner settings: %w", err)
	}
	if !ownerSettings.Notifications.Milestones {
		return nil, milestones.ErrMilestoneNotFound
	}

	count, err := s.repo.AddCelebration(ctx, milestoneID, userID)
	if err != nil {
		return nil, err
	}
	return &Celebration{
		MilestoneID:      milestoneID,
		UserID:           userID,
		CelebrationCount: count,
	}, nil
}

// Feed returns the newest milestones of the user's friends, skipping friends who do not share milestones.
func (s *Service) Feed(ctx context.Context, userID, limit int) (_ []FeedItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.social.feed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	friends, err := s.repo.ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}

	usernames := make(map[int]string, len(friends))
	sharing := make([]int, 0, len(friends))
	for _, f := range friends {
		settings, err := s.settings.GetSettings(ctx, f.UserID)
		if err != nil {
			log.Warnf("feed: settings of user %d: %s", f.UserID, err)
			continue
		}
		if !settings.Notifications.Milestones {
			continue
		}
		usernames[f.UserID] = f.Username
		sharing = append(sharing, f.UserID)
	}

	items := []FeedItem{}
	if len(sharing) == 0 {
		return items, nil
	}

	ms, err := s.milestones.ListForUsers(ctx, sharing, limit)
	if err != nil {
		return nil, fmt.Errorf("list friend milestones: %w", err)
	}
	for _, m := range ms {
		items = append(items, FeedItem{
			Milestone: m,
			Username:  usernames[m.UserID],
		})
	}
	span.SetAttributes(attribute.Int("items", len(items)))
	return items, nil
}

// IsNotFound reports errors that map to a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, auth.ErrUserNotFound) ||
		errors.Is(err, ErrFriendRequestNotFound) ||
		errors.Is(err, ErrNudgeNotFound) ||
		errors.Is(err, milestones.ErrMilestoneNotFound)
}
