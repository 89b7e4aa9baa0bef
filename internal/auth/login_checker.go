package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	now         func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		now:         time.Now,
	}
}

// IsLogged resolves a session token to its user. Unknown and expired tokens are not an error.
func (c *LoginChecker) IsLogged(ctx context.Context, token string) (_ int, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.loginChecker.isLogged")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	val, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get session: %w", err)
	}

	s, err := decodeSession(val)
	if err != nil {
		return 0, false, err
	}
	span.SetAttributes(attribute.Int("user.id", s.UserID))

	if s.expired(c.ttl, c.now()) {
		return 0, false, nil
	}

	return s.UserID, true, nil
}
