//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/liftlog/internal/milestones"
	"github.com/2beens/liftlog/internal/social"
	"github.com/2beens/liftlog/internal/training"
	"github.com/2beens/liftlog/internal/workouts"
)

const testPassword = "squat-every-day"

func randomUsername() string {
	return "lifter" + gofakeit.LetterN(8)
}

func (s *IntegrationTestSuite) TestLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	username := randomUsername()
	login, err := s.client.registerAndLogin(ctx, username, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	status, err := s.client.do(ctx, "POST", "/a/register", "", map[string]string{
		"username": username,
		"password": testPassword,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, status)

	status, err = s.client.do(ctx, "POST", "/a/login", "", map[string]string{
		"username": username,
		"password": "wrong-password",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)

	status, err = s.client.do(ctx, "GET", "/settings", login.Token, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	status, err = s.client.do(ctx, "GET", "/a/logout", login.Token, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	status, err = s.client.do(ctx, "GET", "/settings", login.Token, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestWorkoutToFriendFeed() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	alice, err := s.client.registerAndLogin(ctx, randomUsername(), testPassword)
	require.NoError(t, err)
	bobName := randomUsername()
	bob, err := s.client.registerAndLogin(ctx, bobName, testPassword)
	require.NoError(t, err)

	// alice and bob become friends
	var request social.FriendRequest
	status, err := s.client.do(ctx, "POST", "/friends/requests", alice.Token, map[string]string{"username": bobName}, &request)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)

	status, err = s.client.do(ctx, "POST", fmt.Sprintf("/friends/requests/%d/accept", request.ID), bob.Token, nil, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)

	var friends []social.Friend
	status, err = s.client.do(ctx, "GET", "/friends", alice.Token, nil, &friends)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, friends, 1)
	assert.Equal(t, bob.UserID, friends[0].UserID)

	// bob trains
	weight, reps := 225.0, 5
	var started training.WorkoutLog
	status, err = s.client.do(ctx, "POST", "/workouts", bob.Token, workouts.NewWorkout{
		Week: 1,
		Day:  1,
		Entries: []training.ExerciseLogEntry{
			{
				ExerciseName: "Squat",
				Sets: []training.SetLog{
					{Weight: &weight, Reps: &reps, Completed: true},
				},
			},
		},
	}, &started)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)

	var completed workouts.CompletionResult
	status, err = s.client.do(ctx, "POST", "/workouts/"+started.ID+"/complete", bob.Token, nil, &completed)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, completed.Log.CompletedAt)
	assert.Equal(t, 1, completed.Streak)

	// milestones are published in the background
	var feed []social.FeedItem
	require.Eventually(t, func() bool {
		feed = nil
		status, err := s.client.do(ctx, "GET", "/milestones/feed", alice.Token, nil, &feed)
		if err != nil || status != http.StatusOK {
			return false
		}
		for _, item := range feed {
			if item.Type == milestones.TypeFirstWorkout {
				return true
			}
		}
		return false
	}, 10*time.Second, 200*time.Millisecond)

	var firstWorkout social.FeedItem
	for _, item := range feed {
		if item.Type == milestones.TypeFirstWorkout {
			firstWorkout = item
		}
	}
	assert.Equal(t, bob.UserID, firstWorkout.UserID)
	assert.Equal(t, bobName, firstWorkout.Username)

	var celebration social.Celebration
	celebratePath := fmt.Sprintf("/milestones/%d/celebrate", firstWorkout.ID)
	status, err = s.client.do(ctx, "POST", celebratePath, alice.Token, nil, &celebration)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, celebration.CelebrationCount)

	status, err = s.client.do(ctx, "POST", celebratePath, alice.Token, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, status)

	status, err = s.client.do(ctx, "POST", celebratePath, bob.Token, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, status)

	// nudges are limited per day
	nudge := map[string]any{"toUserId": alice.UserID, "message": "your turn"}
	for i := 0; i < 2; i++ {
		status, err = s.client.do(ctx, "POST", "/nudges", bob.Token, nudge, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, status)
	}
	status, err = s.client.do(ctx, "POST", "/nudges", bob.Token, nudge, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, status)

	var nudges []social.Nudge
	status, err = s.client.do(ctx, "GET", "/nudges", alice.Token, nil, &nudges)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, nudges, 2)
	assert.Equal(t, "your turn", nudges[0].Message)

	var bobMilestones []milestones.Milestone
	status, err = s.client.do(ctx, "GET", "/milestones", bob.Token, nil, &bobMilestones)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, bobMilestones)
}
