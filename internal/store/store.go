package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-market/internal/domain"
)

// State is a point-in-time copy of the whole market
type State struct {
	Listings       []domain.Listing
	Catalog        []domain.CatalogEntry
	Balances       map[domain.ActorID]int64
	OfflineCredits map[domain.ActorID]int64
	PendingGoods   []domain.PendingGoods
	// History holds the records retained in memory, oldest first
	History []domain.TransactionRecord
	Revenue int64
	// RecyclePrices holds the admin overrides of the recycle price table
	RecyclePrices map[string]int64
	Version       uint64
	TakenAt       time.Time
}

// TransactionFilter selects archived transactions
type TransactionFilter struct {
	Actor  *domain.ActorID
	Kind   *domain.TransactionKind
	Since  *time.Time
	Until  *time.Time
	Limit  int
	Offset int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// LoadState reads the last saved state, nil when nothing was ever saved
	LoadState(ctx context.Context) (*State, error)
	// SaveState replaces the saved state with the given one in a single transaction.
	// Transactions are appended to the archive, never deleted.
	SaveState(ctx context.Context, state *State) error
	// QueryTransactions reads the transaction archive, newest first
	QueryTransactions(ctx context.Context, filter TransactionFilter) ([]domain.TransactionRecord, error)
	// Close releases the database connections
	Close() error
}
