package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/infra/breaker"
	"github.com/NeuralTrust/TaskAPI/pkg/infra/prometheus"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const KeyPrefix = "rate_limit:"

// Result is the outcome of one evaluation. Skipped and Degraded results are
// always allowed and carry no quota information.
type Result struct {
	Allowed           bool
	Remaining         int
	ResetEpochSeconds int64
	CurrentCount      int64
	// Skipped is set when no credential was presented.
	Skipped bool
	// Degraded holds the store error that made the limiter fail open.
	Degraded error
}

// Evaluated reports whether the quota fields are meaningful and the rate
// limit headers should be sent.
func (r Result) Evaluated() bool {
	return !r.Skipped && r.Degraded == nil
}

//go:generate mockery --name=Limiter --dir=. --output=./mocks --filename=limiter_mock.go --case=underscore --with-expecter
type Limiter interface {
	Evaluate(ctx context.Context, credential string, now time.Time) Result
	Max() int
	WindowSeconds() int
}

type Options struct {
	Max           int
	WindowSeconds int
	Breaker       breaker.CircuitBreaker
	UuidProvider  func() uuid.UUID
}

type limiter struct {
	redis         *redis.Client
	logger        *logrus.Logger
	max           int
	windowSeconds int
	breaker       breaker.CircuitBreaker
	uuidProvider  func() uuid.UUID
}

func NewLimiter(redisClient *redis.Client, logger *logrus.Logger, opts Options) Limiter {
	uuidProvider := opts.UuidProvider
	if uuidProvider == nil {
		uuidProvider = uuid.New
	}
	return &limiter{
		redis:         redisClient,
		logger:        logger,
		max:           opts.Max,
		windowSeconds: opts.WindowSeconds,
		breaker:       opts.Breaker,
		uuidProvider:  uuidProvider,
	}
}

func (l *limiter) Max() int {
	return l.max
}

func (l *limiter) WindowSeconds() int {
	return l.windowSeconds
}

// Key returns the window record key for a credential.
func Key(credential string) string {
	return KeyPrefix + credential
}

// Evaluate prunes, records, counts and re-arms the credential's window in a
// single MULTI/EXEC batch. The current request is counted before the
// comparison, so a count equal to max is still allowed.
func (l *limiter) Evaluate(ctx context.Context, credential string, now time.Time) Result {
	if credential == "" {
		prometheus.RateLimitDecisions.WithLabelValues("skipped").Inc()
		return Result{Allowed: true, Skipped: true}
	}

	nowMillis := now.UnixMilli()
	var count int64
	run := func() error {
		var err error
		count, err = l.record(ctx, Key(credential), nowMillis)
		return err
	}

	var err error
	if l.breaker != nil {
		err = l.breaker.Execute(run)
	} else {
		err = run()
	}
	if err != nil {
		l.logger.WithError(err).WithField("key", Key(credential)).Error("rate limiter store call failed, allowing request")
		prometheus.RateLimitDecisions.WithLabelValues("degraded").Inc()
		return Result{Allowed: true, Degraded: err}
	}

	result := Result{
		Allowed:           count <= int64(l.max),
		Remaining:         remaining(l.max, count),
		ResetEpochSeconds: ceilSeconds(nowMillis) + int64(l.windowSeconds),
		CurrentCount:      count,
	}
	if result.Allowed {
		prometheus.RateLimitDecisions.WithLabelValues("allowed").Inc()
	} else {
		prometheus.RateLimitDecisions.WithLabelValues("denied").Inc()
	}
	return result
}

func (l *limiter) record(ctx context.Context, key string, nowMillis int64) (int64, error) {
	windowStart := nowMillis - int64(l.windowSeconds)*1000
	member := fmt.Sprintf("%d:%s", nowMillis, l.uuidProvider().String())

	pipe := l.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", "("+strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, &redis.Z{
		Score:  float64(nowMillis),
		Member: member,
	})
	card := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, time.Duration(l.windowSeconds)*time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("rate limit batch: %w", err)
	}
	return card.Val(), nil
}

func remaining(max int, count int64) int {
	left := int64(max) - count
	if left < 0 {
		return 0
	}
	return int(left)
}

func ceilSeconds(millis int64) int64 {
	seconds := millis / 1000
	if millis%1000 != 0 {
		seconds++
	}
	return seconds
}
