package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/training"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

type localStore interface {
	Store
	IsPushed(ctx context.Context, userID int) (bool, error)
	MarkPushed(ctx context.Context, userID int) error
	ClearPushed(ctx context.Context, userID int) error
}

// Mirror writes to both stores and reads from the remote one, falling back to the
// local copy when the remote store is unreachable. A write fails only when both sides fail.
type Mirror struct {
	local          localStore
	remote         Store
	metricsManager *metrics.Manager
}

var _ Store = (*Mirror)(nil)

func NewMirror(local localStore, remote Store, metricsManager *metrics.Manager) *Mirror {
	return &Mirror{
		local:          local,
		remote:         remote,
		metricsManager: metricsManager,
	}
}

func (m *Mirror) GetSettings(ctx context.Context, userID int) (*training.Settings, error) {
	return readWithFallback(m, "getSettings", ErrSettingsNotFound,
		func() (*training.Settings, error) { return m.remote.GetSettings(ctx, userID) },
		func() (*training.Settings, error) { return m.local.GetSettings(ctx, userID) },
	)
}

func (m *Mirror) PutSettings(ctx context.Context, settings training.Settings) error {
	localErr := m.local.PutSettings(ctx, settings)
	remoteErr := m.remote.PutSettings(ctx, settings)
	return m.writeResult(ctx, "putSettings", settings.UserID, localErr, remoteErr)
}

func (m *Mirror) GetLog(ctx context.Context, userID int, id string) (*training.WorkoutLog, error) {
	return readWithFallback(m, "getLog", ErrLogNotFound,
		func() (*training.WorkoutLog, error) { return m.remote.GetLog(ctx, userID, id) },
		func() (*training.WorkoutLog, error) { return m.local.GetLog(ctx, userID, id) },
	)
}

func (m *Mirror) PutLog(ctx context.Context, workoutLog training.WorkoutLog) error {
	localErr := m.local.PutLog(ctx, workoutLog)
	remoteErr := m.remote.PutLog(ctx, workoutLog)
	return m.writeResult(ctx, "putLog", workoutLog.UserID, localErr, remoteErr)
}

// DeleteLog returns ErrLogNotFound only when neither store had the log.
func (m *Mirror) DeleteLog(ctx context.Context, userID int, id string) error {
	localErr := m.local.DeleteLog(ctx, userID, id)
	remoteErr := m.remote.DeleteLog(ctx, userID, id)

	localMissing := errors.Is(localErr, ErrLogNotFound)
	remoteMissing := errors.Is(remoteErr, ErrLogNotFound)
	if localMissing && remoteMissing {
		return ErrLogNotFound
	}
	if localMissing {
		localErr = nil
	}
	if remoteMissing {
		remoteErr = nil
	}
	return m.writeResult(ctx, "deleteLog", userID, localErr, remoteErr)
}

func (m *Mirror) ListLogs(ctx context.Context, userID int) ([]training.WorkoutLog, error) {
	return readWithFallback(m, "listLogs", nil,
		func() ([]training.WorkoutLog, error) { return m.remote.ListLogs(ctx, userID) },
		func() ([]training.WorkoutLog, error) { return m.local.ListLogs(ctx, userID) },
	)
}

func (m *Mirror) ListLogsByDate(ctx context.Context, userID int, date training.Date) ([]training.WorkoutLog, error) {
	return readWithFallback(m, "listLogsByDate", nil,
		func() ([]training.WorkoutLog, error) { return m.remote.ListLogsByDate(ctx, userID, date) },
		func() ([]training.WorkoutLog, error) { return m.local.ListLogsByDate(ctx, userID, date) },
	)
}

func (m *Mirror) ListLogsByWeekDay(ctx context.Context, userID, week, day int) ([]training.WorkoutLog, error) {
	return readWithFallback(m, "listLogsByWeekDay", nil,
		func() ([]training.WorkoutLog, error) { return m.remote.ListLogsByWeekDay(ctx, userID, week, day) },
		func() ([]training.WorkoutLog, error) { return m.local.ListLogsByWeekDay(ctx, userID, week, day) },
	)
}

func (m *Mirror) CountLogs(ctx context.Context, userID int) (int, error) {
	return readWithFallback(m, "countLogs", nil,
		func() (int, error) { return m.remote.CountLogs(ctx, userID) },
		func() (int, error) { return m.local.CountLogs(ctx, userID) },
	)
}

// PushLocalOnce copies local settings and logs that the remote store does not have yet.
// It runs once per user; records already present remotely are left as they are.
func (m *Mirror) PushLocalOnce(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.mirror.pushLocalOnce")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	pushed, err := m.local.IsPushed(ctx, userID)
	if err != nil {
		return err
	}
	if pushed {
		return nil
	}

	var errs error
	settings, err := m.local.GetSettings(ctx, userID)
	switch {
	case err == nil:
		if _, remoteErr := m.remote.GetSettings(ctx, userID); errors.Is(remoteErr, ErrSettingsNotFound) {
			errs = multierr.Append(errs, m.remote.PutSettings(ctx, *settings))
		} else if remoteErr != nil {
			errs = multierr.Append(errs, fmt.Errorf("remote settings: %w", remoteErr))
		}
	case !errors.Is(err, ErrSettingsNotFound):
		errs = multierr.Append(errs, fmt.Errorf("local settings: %w", err))
	}

	logs, err := m.local.ListLogs(ctx, userID)
	if err != nil {
		return multierr.Append(errs, fmt.Errorf("list local logs: %w", err))
	}

	copied := 0
	for _, l := range logs {
		_, remoteErr := m.remote.GetLog(ctx, userID, l.ID)
		switch {
		case errors.Is(remoteErr, ErrLogNotFound):
			if err := m.remote.PutLog(ctx, l); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("push log %s: %w", l.ID, err))
				continue
			}
			copied++
		case remoteErr != nil:
			errs = multierr.Append(errs, fmt.Errorf("remote log %s: %w", l.ID, remoteErr))
		}
	}
	span.SetAttributes(attribute.Int("logs.copied", copied))

	if errs != nil {
		return errs
	}

	log.Debugf("mirror: pushed %d local logs of user %d", copied, userID)
	return m.local.MarkPushed(ctx, userID)
}

func (m *Mirror) writeResult(ctx context.Context, op string, userID int, localErr, remoteErr error) error {
	switch {
	case localErr != nil && remoteErr != nil:
		return multierr.Combine(
			fmt.Errorf("%s local: %w", op, localErr),
			fmt.Errorf("%s remote: %w", op, remoteErr),
		)
	case remoteErr != nil:
		log.Warnf("mirror %s: remote write failed for user %d: %s", op, userID, remoteErr)
		if err := m.local.ClearPushed(ctx, userID); err != nil {
			log.Errorf("mirror %s: clear pushed state of user %d: %s", op, userID, err)
		}
	case localErr != nil:
		log.Warnf("mirror %s: local write failed for user %d: %s", op, userID, localErr)
	}
	return nil
}

func readWithFallback[T any](m *Mirror, op string, notFound error, remote, local func() (T, error)) (T, error) {
	res, err := remote()
	if err == nil || (notFound != nil && errors.Is(err, notFound)) {
		return res, err
	}

	log.Warnf("mirror %s: remote read failed, using local store: %s", op, err)
	m.metricsManager.CounterMirrorFallbacks.WithLabelValues(op).Inc()
	return local()
}
