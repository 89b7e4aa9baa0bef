package social

import (
	"errors"
	"time"
)

var (
	ErrFriendRequestNotFound  = errors.New("friend request not found")
	ErrFriendRequestExists    = errors.New("friend request already pending")
	ErrFriendRequestsDisabled = errors.New("user does not accept friend requests")
	ErrSelfFriendRequest      = errors.New("cannot befriend yourself")
	ErrAlreadyFriends         = errors.New("already friends")
	ErrNotFriends             = errors.New("not friends")
	ErrNudgesDisabled         = errors.New("user does not accept nudges")
	ErrNudgeRateLimited       = errors.New("too many nudges")
	ErrNudgeNotFound          = errors.New("nudge not found")
	ErrAlreadyCelebrated      = errors.New("milestone already celebrated")
	ErrOwnMilestone           = errors.New("cannot celebrate own milestone")
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusDeclined RequestStatus = "declined"
)

type FriendRequest struct {
	ID           int           `json:"id"`
	FromUserID   int           `json:"fromUserId"`
	FromUsername string        `json:"fromUsername,omitempty"`
	ToUserID     int           `json:"toUserId"`
	Status       RequestStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type Friend struct {
	UserID   int       `json:"userId"`
	Username string    `json:"username"`
	Since    time.Time `json:"since"`
}

type Nudge struct {
	ID           int        `json:"id"`
	FromUserID   int        `json:"fromUserId"`
	FromUsername string     `json:"fromUsername,omitempty"`
	ToUserID     int        `json:"toUserId"`
	Message      string     `json:"message"`
	CreatedAt    time.Time  `json:"createdAt"`
	SeenAt       *time.Time `json:"seenAt,omitempty"`
}

type Celebration struct {
	MilestoneID      int `json:"milestoneId"`
	UserID           int `json:"userId"`
	CelebrationCount int `json:"celebrationCount"`
}
