package messaging

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

const (
	DEFAULT_BROADCAST_WORKERS      = 4
	DEFAULT_PUBLISH_RETRY          = 10 * time.Second
	DEFAULT_PUBLISH_RETRY_INTERVAL = 200 * time.Millisecond
)

// BroadcasterConfig holds configuration for the event broadcaster
type BroadcasterConfig struct {
	Workers              int
	PublishRetry         time.Duration // Give up on an event after retrying this long
	RetryInitialInterval time.Duration
}

// Broadcaster publishes market events off the caller's path.
// Publishing failures are retried and then logged, never reported to the caller.
//
//go:generate mockgen -source=broadcaster.go -destination=../mocks/broadcaster.go -package=mocks -mock_names=Broadcaster=MockBroadcaster
type Broadcaster interface {
	Notify(ctx context.Context, event domain.MarketEvent)
	// Close waits for queued events and closes the publisher
	Close()
}

type broadcaster struct {
	config    BroadcasterConfig
	publisher Publisher
	pool      pond.Pool
	closed    atomic.Bool
}

// NewBroadcaster creates a broadcaster publishing through the given publisher
func NewBroadcaster(config BroadcasterConfig, publisher Publisher) Broadcaster {
	if config.Workers <= 0 {
		config.Workers = DEFAULT_BROADCAST_WORKERS
	}
	if config.PublishRetry <= 0 {
		config.PublishRetry = DEFAULT_PUBLISH_RETRY
	}
	if config.RetryInitialInterval <= 0 {
		config.RetryInitialInterval = DEFAULT_PUBLISH_RETRY_INTERVAL
	}

	return &broadcaster{
		config:    config,
		publisher: publisher,
		pool:      pond.NewPool(config.Workers),
	}
}

func (b *broadcaster) Notify(ctx context.Context, event domain.MarketEvent) {
	if b.closed.Load() {
		logger.DebugCtx(ctx, "Broadcaster closed, dropping event", zap.String("kind", string(event.Kind)), zap.String("id", event.ID))
		return
	}

	// The event outlives the operation that raised it
	ctx = context.WithoutCancel(ctx)
	b.pool.Submit(func() {
		b.publish(ctx, &event)
	})
}

func (b *broadcaster) publish(ctx context.Context, event *domain.MarketEvent) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = b.config.RetryInitialInterval
	bo.MaxInterval = b.config.PublishRetry / 4
	bo.MaxElapsedTime = b.config.PublishRetry
	bo.Multiplier = 2.0
	bo.RandomizationFactor = 0.1
	bctx := backoff.WithContext(bo, ctx)

	attempt := 0
	operation := func() error {
		attempt++
		return b.publisher.PublishEvent(ctx, event)
	}
	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Publishing market event failed, retrying",
			zap.Error(err),
			zap.String("kind", string(event.Kind)),
			zap.Int("attempt", attempt),
			zap.Duration("next_retry_in", next),
		)
	}

	if err := backoff.RetryNotify(operation, bctx, notify); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Dropping market event"),
			zap.String("kind", string(event.Kind)),
			zap.String("id", event.ID),
			zap.Int("attempts", attempt),
		)
	}
}

func (b *broadcaster) Close() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}
	b.pool.StopAndWait()
	b.publisher.Close()
}
