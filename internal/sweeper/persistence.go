package sweeper

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/store"
)

const (
	DEFAULT_SAVE_INTERVAL          = 5 * time.Minute
	DEFAULT_RETRY_INITIAL_INTERVAL = 500 * time.Millisecond
	DEFAULT_RETRY_MAX_ELAPSED      = time.Minute
)

// StateSource is the in-memory market the flusher persists
//
//go:generate mockgen -source=persistence.go -destination=../mocks/persistence.go -package=mocks -mock_names=StateSource=MockStateSource,PersistenceFlusher=MockPersistenceFlusher
type StateSource interface {
	// Version changes whenever the state changes
	Version() uint64
	Snapshot() *store.State
}

// PersistenceFlusher saves the market state periodically and on request
type PersistenceFlusher interface {
	Sweeper

	// RequestSave asks for a save soon. It never blocks; requests made while one is pending are merged.
	RequestSave()

	// Flush saves the state now if it changed since the last save
	Flush(ctx context.Context) error
}

// PersistenceFlusherConfig holds configuration for the persistence flusher
type PersistenceFlusherConfig struct {
	SaveInterval         time.Duration // Periodic save interval
	WriteThroughWait     time.Duration // Wait after a save request so bursts of mutations share one save
	RetryInitialInterval time.Duration
	RetryMaxElapsed      time.Duration // Give up on a save after this long; the next cycle tries again
}

type persistenceFlusher struct {
	*lifecycle
	config    *PersistenceFlusherConfig
	source    StateSource
	store     store.Store
	clock     adapter.Clock
	requests  chan struct{}
	mu        sync.Mutex // serializes saves
	lastSaved atomic.Uint64
}

// NewPersistenceFlusher creates a flusher. The state the source holds at this point counts as saved.
func NewPersistenceFlusher(config *PersistenceFlusherConfig, source StateSource, st store.Store, clock adapter.Clock) PersistenceFlusher {
	if config.SaveInterval <= 0 {
		config.SaveInterval = DEFAULT_SAVE_INTERVAL
	}
	if config.RetryInitialInterval <= 0 {
		config.RetryInitialInterval = DEFAULT_RETRY_INITIAL_INTERVAL
	}
	if config.RetryMaxElapsed <= 0 {
		config.RetryMaxElapsed = DEFAULT_RETRY_MAX_ELAPSED
	}

	f := &persistenceFlusher{
		lifecycle: newLifecycle("Persistence flusher"),
		config:    config,
		source:    source,
		store:     st,
		clock:     clock,
		requests:  make(chan struct{}, 1),
	}
	f.lastSaved.Store(source.Version())
	return f
}

// Name returns the sweeper's name
func (f *persistenceFlusher) Name() string {
	return "persistence-flusher"
}

func (f *persistenceFlusher) RequestSave() {
	select {
	case f.requests <- struct{}{}:
	default:
	}
}

// Start saves every interval and after save requests until stopped, then saves one last time
func (f *persistenceFlusher) Start(ctx context.Context) error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	logger.InfoCtx(ctx, "Starting persistence flusher",
		zap.Duration("save_interval", f.config.SaveInterval),
		zap.Duration("write_through_wait", f.config.WriteThroughWait),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Persistence flusher stopping due to context cancellation", zap.Error(ctx.Err()))
			f.finalFlush(ctx)
			return nil
		case <-f.stopping():
			logger.InfoCtx(ctx, "Persistence flusher stop requested")
			f.finalFlush(ctx)
			return nil
		case <-f.clock.After(f.config.SaveInterval):
			f.flushAndLog(ctx)
		case <-f.requests:
			if f.config.WriteThroughWait > 0 {
				select {
				case <-f.clock.After(f.config.WriteThroughWait):
				case <-ctx.Done():
					continue
				case <-f.stopping():
					continue
				}
			}
			f.flushAndLog(ctx)
		}
	}
}

// Stop requests the final save and waits for it
func (f *persistenceFlusher) Stop(ctx context.Context) error {
	return f.stop(ctx)
}

func (f *persistenceFlusher) finalFlush(ctx context.Context) {
	f.flushAndLog(context.WithoutCancel(ctx))
}

func (f *persistenceFlusher) flushAndLog(ctx context.Context) {
	if err := f.Flush(ctx); err != nil {
		logger.ErrorCtx(ctx, err)
	}
}

func (f *persistenceFlusher) Flush(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.source.Version() == f.lastSaved.Load() {
		return nil
	}

	startTime := f.clock.Now()
	state := f.source.Snapshot()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.config.RetryInitialInterval
	b.MaxInterval = f.config.RetryMaxElapsed / 4
	b.MaxElapsedTime = f.config.RetryMaxElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.1
	bctx := backoff.WithContext(b, ctx)

	attempt := 0
	operation := func() error {
		attempt++
		return f.store.SaveState(ctx, state)
	}
	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Saving market state failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("next_retry_in", next),
		)
	}

	if err := backoff.RetryNotify(operation, bctx, notify); err != nil {
		return fmt.Errorf("failed to save market state after %d attempts: %w", attempt, err)
	}

	f.lastSaved.Store(state.Version)
	logger.DebugCtx(ctx, "Market state saved",
		zap.Uint64("version", state.Version),
		zap.Int("listings", len(state.Listings)),
		zap.Int("accounts", len(state.Balances)),
		zap.Duration("duration", f.clock.Since(startTime)),
	)
	return nil
}
