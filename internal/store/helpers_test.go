package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/2beens/liftlog/internal/loadmath"
	"github.com/2beens/liftlog/internal/store"
	"github.com/2beens/liftlog/internal/training"
	"github.com/2beens/liftlog/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func newLocalStore(t *testing.T) *store.LocalStore {
	t.Helper()
	s, err := store.NewLocalStore(filepath.Join(t.TempDir(), "db", "liftlog.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func fakeLog(userID int, date training.Date, week, day int, completed bool) training.WorkoutLog {
	startedAt := date.Add(17 * time.Hour)
	l := training.WorkoutLog{
		ID:        gofakeit.UUID(),
		UserID:    userID,
		Date:      date,
		Week:      week,
		Day:       day,
		Notes:     gofakeit.Sentence(6),
		StartedAt: startedAt,
		Entries: []training.ExerciseLogEntry{
			{
				ExerciseName: "Squat",
				Sets: []training.SetLog{
					{
						Weight:    pkg.Ptr(float64(gofakeit.Number(200, 400))),
						Unit:      loadmath.Lbs,
						Reps:      pkg.Ptr(gofakeit.Number(1, 8)),
						RPE:       pkg.Ptr(8.0),
						Completed: true,
					},
				},
			},
			{
				ExerciseName: gofakeit.Word(),
				Skipped:      true,
			},
		},
	}
	if completed {
		l.CompletedAt = pkg.Ptr(startedAt.Add(time.Hour))
	}
	return l
}
