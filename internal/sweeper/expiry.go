package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

const (
	DEFAULT_EXPIRY_INTERVAL = time.Minute
)

// ListingExpirer removes listings older than the configured listing TTL
//
//go:generate mockgen -source=expiry.go -destination=../mocks/expiry.go -package=mocks -mock_names=ListingExpirer=MockListingExpirer
type ListingExpirer interface {
	ExpireListings(ctx context.Context) []domain.Listing
}

// ExpirySweeperConfig holds configuration for the listing expiry sweeper
type ExpirySweeperConfig struct {
	Interval time.Duration // Time to sleep between sweep cycles
}

// expirySweeper implements the Sweeper interface for listing expiry
type expirySweeper struct {
	*lifecycle
	config  *ExpirySweeperConfig
	expirer ListingExpirer
	clock   adapter.Clock
}

// NewExpirySweeper creates a new listing expiry sweeper
func NewExpirySweeper(config *ExpirySweeperConfig, expirer ListingExpirer, clock adapter.Clock) Sweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_EXPIRY_INTERVAL
	}

	return &expirySweeper{
		lifecycle: newLifecycle("Listing expiry sweeper"),
		config:    config,
		expirer:   expirer,
		clock:     clock,
	}
}

// Name returns the sweeper's name
func (s *expirySweeper) Name() string {
	return "listing-expiry-sweeper"
}

// Start runs a sweep cycle every interval until the context is canceled or stop is requested
func (s *expirySweeper) Start(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	logger.InfoCtx(ctx, "Starting listing expiry sweeper", zap.Duration("interval", s.config.Interval))

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Listing expiry sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopping():
			logger.InfoCtx(ctx, "Listing expiry sweeper stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
			s.runSweepCycle(ctx)
		}
	}
}

// Stop waits for the current sweep cycle to finish
func (s *expirySweeper) Stop(ctx context.Context) error {
	return s.stop(ctx)
}

// runSweepCycle runs a single sweep cycle
func (s *expirySweeper) runSweepCycle(ctx context.Context) {
	startTime := s.clock.Now()

	expired := s.expirer.ExpireListings(ctx)
	if len(expired) == 0 {
		return
	}

	logger.InfoCtx(ctx, "Expired listings",
		zap.Int("count", len(expired)),
		zap.Duration("duration", s.clock.Since(startTime)),
	)
}
