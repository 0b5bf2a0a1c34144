package sweeper

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/feral-file/ff-market/internal/logger"
)

// Sweeper is a background loop owned by the market server: listing expiry and state persistence
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start blocks until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop signals the loop and waits for it to return or for ctx to expire
	Stop(ctx context.Context) error

	Name() string
}

// lifecycle tracks a single run of a sweeper loop
type lifecycle struct {
	label     string
	running   atomic.Bool
	stopOnce  sync.Once
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

func newLifecycle(label string) *lifecycle {
	return &lifecycle{
		label:     label,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// begin marks the loop as running. A sweeper runs at most once.
func (l *lifecycle) begin() error {
	if !l.running.CompareAndSwap(false, true) {
		return fmt.Errorf("%s already running", l.label)
	}
	return nil
}

// end is deferred by the loop
func (l *lifecycle) end() {
	l.running.Store(false)
	close(l.stoppedCh)
}

func (l *lifecycle) stopping() <-chan struct{} {
	return l.stopChan
}

func (l *lifecycle) stop(ctx context.Context) error {
	if !l.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping "+l.label)
	l.stopOnce.Do(func() { close(l.stopChan) })

	select {
	case <-l.stoppedCh:
		logger.InfoCtx(ctx, l.label+" stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, l.label+" stop interrupted by context timeout")
		return ctx.Err()
	}
}
