package market

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/catalog"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/environment"
	"github.com/feral-file/ff-market/internal/history"
	"github.com/feral-file/ff-market/internal/ledger"
	"github.com/feral-file/ff-market/internal/mailbox"
	"github.com/feral-file/ff-market/internal/recycle"
	"github.com/feral-file/ff-market/internal/registry"
	"github.com/feral-file/ff-market/internal/store"
)

// Service is the marketplace transaction engine
//
//go:generate mockgen -source=service.go -destination=../mocks/market.go -package=mocks -mock_names=Service=MockMarketService,SaveRequester=MockSaveRequester
type Service interface {
	// Listings
	List(ctx context.Context, owner domain.Actor, goods domain.Goods, unitPrice int64) (domain.Listing, error)
	Unlist(ctx context.Context, id uuid.UUID, requester domain.ActorID) (domain.Listing, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, requester domain.ActorID, unitPrice int64) (domain.Listing, error)
	GetListing(id uuid.UUID) (domain.Listing, bool)
	SearchListings(query registry.Query) []domain.Listing
	ListingsByOwner(owner domain.ActorID) []domain.Listing
	ExpireListings(ctx context.Context) []domain.Listing

	// Purchases
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
	PurchaseBatch(ctx context.Context, reqs []PurchaseRequest) []BatchPurchaseResult
	PurchaseCatalog(ctx context.Context, req CatalogPurchaseRequest) (*PurchaseResult, error)

	// System shop
	AddCatalogEntry(ctx context.Context, admin domain.ActorID, goods domain.Goods, unitPrice int64, nominalQuantity int) (domain.CatalogEntry, error)
	RemoveCatalogEntry(ctx context.Context, admin domain.ActorID, id uuid.UUID) (domain.CatalogEntry, error)
	UpdateCatalogPrice(ctx context.Context, admin domain.ActorID, id uuid.UUID, unitPrice int64) (domain.CatalogEntry, error)
	UpdateCatalogQuantity(ctx context.Context, admin domain.ActorID, id uuid.UUID, nominalQuantity int) (domain.CatalogEntry, error)
	ToggleCatalogEntry(ctx context.Context, admin domain.ActorID, id uuid.UUID) (domain.CatalogEntry, error)
	GetCatalogEntry(id uuid.UUID) (domain.CatalogEntry, bool)
	SearchCatalog(keyword string, activeOnly bool) []domain.CatalogEntry

	// Recycling
	PreviewRecycle(goods []domain.Goods) (total int64, prices []int64)
	Recycle(ctx context.Context, actor domain.Actor, goods domain.Goods) (*RecycleResult, error)
	RecycleBatch(ctx context.Context, actor domain.Actor, goods []domain.Goods) (*RecycleResult, error)
	RecyclePrices() map[string]int64
	SetRecyclePrice(ctx context.Context, admin domain.ActorID, itemType string, price int64) error
	RemoveRecyclePrice(ctx context.Context, admin domain.ActorID, itemType string) error

	// Currency
	Balance(actor domain.ActorID) int64
	OfflineCredit(actor domain.ActorID) int64
	PendingGoods(actor domain.ActorID) []domain.Goods
	SetBalance(ctx context.Context, admin domain.ActorID, actor domain.ActorID, amount int64) (int64, error)
	SystemRevenue() int64

	// Presence
	OnActorPresent(ctx context.Context, actor domain.ActorID) (*Delivery, error)
	OnActorAbsent(ctx context.Context, actor domain.ActorID)

	// History
	History(actor domain.ActorID, limit int) []domain.TransactionRecord
	RecentTransactions(limit int) []domain.TransactionRecord

	// IsPrivileged reports whether the actor may run administrative commands
	IsPrivileged(actor domain.ActorID) bool

	// Persistence
	Version() uint64
	Snapshot() *store.State
	Restore(state *store.State)
	SetSaveRequester(r SaveRequester)
	Close()
}

// SaveRequester is asked for an early save after critical mutations (sales, recycling, balance changes)
type SaveRequester interface {
	RequestSave()
}

// Config tunes the engine's worker pool
type Config struct {
	Workers   int
	QueueSize int
}

// Deps are the collaborators of the engine
type Deps struct {
	Economy    config.EconomyProvider
	Blacklist  registry.BlacklistRegistry
	Recycle    recycle.Engine
	Inventory  environment.Inventory
	Presence   environment.Presence
	Privileges environment.Privileges
	Notifier   environment.Notifier // optional
	Clock      adapter.Clock
	IDs        adapter.IDGenerator
}

type service struct {
	economy    config.EconomyProvider
	recycle    recycle.Engine
	inventory  environment.Inventory
	presence   environment.Presence
	privileges environment.Privileges
	notifier   environment.Notifier
	clock      adapter.Clock
	ids        adapter.IDGenerator

	ledger   ledger.Ledger
	listings registry.Listings
	catalog  catalog.Catalog
	history  history.History
	mailbox  mailbox.Mailbox

	pool pond.Pool

	// gate is shared by every operation and taken exclusively by Snapshot and Restore,
	// so a snapshot never observes half of an operation
	gate sync.RWMutex

	revenue atomic.Int64
	version atomic.Uint64
	saver   SaveRequester
}

// New creates the engine and its components
func New(cfg Config, deps Deps) Service {
	s := &service{
		economy:    deps.Economy,
		recycle:    deps.Recycle,
		inventory:  deps.Inventory,
		presence:   deps.Presence,
		privileges: deps.Privileges,
		notifier:   deps.Notifier,
		clock:      deps.Clock,
		ids:        deps.IDs,
		mailbox:    mailbox.New(),
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if cfg.QueueSize > 0 {
		s.pool = pond.NewPool(workers, pond.WithQueueSize(cfg.QueueSize))
	} else {
		s.pool = pond.NewPool(workers)
	}

	s.ledger = ledger.New(deps.Economy, &ledgerObserver{s: s})
	s.listings = registry.NewListings(deps.Economy, deps.Blacklist, &goodsReturner{s: s}, &listingObserver{s: s}, deps.Clock, deps.IDs)
	s.catalog = catalog.New(deps.Economy, deps.Privileges, &catalogObserver{s: s}, deps.Clock, deps.IDs)
	s.history = history.New(func() int { return deps.Economy.Economy().MaxTradeHistory })

	return s
}

// touch marks the state as changed since the last snapshot
func (s *service) touch() {
	s.version.Add(1)
}

// critical marks the state as changed and asks for an early save
func (s *service) critical() {
	s.touch()
	if s.saver != nil {
		s.saver.RequestSave()
	}
}

func (s *service) SetSaveRequester(r SaveRequester) {
	s.saver = r
}

func (s *service) IsPrivileged(actor domain.ActorID) bool {
	return s.privileges.IsPrivileged(actor)
}

func (s *service) Close() {
	s.pool.StopAndWait()
}
