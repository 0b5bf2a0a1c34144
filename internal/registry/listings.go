package registry

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

// Listings is the registry of player listings.
// Every operation touching an existing listing runs under that listing's own lock, so two removals of the
// same id never both succeed while operations on different listings proceed in parallel.
//
//go:generate mockgen -source=listings.go -destination=../mocks/listings.go -package=mocks -mock_names=Listings=MockListings,Returner=MockReturner,Observer=MockListingObserver
type Listings interface {
	// List creates a listing for goods already taken from the owner
	List(ctx context.Context, owner domain.Actor, goods domain.Goods, unitPrice int64) (domain.Listing, error)

	// Unlist removes a listing on behalf of its owner and hands the goods back
	Unlist(ctx context.Context, id uuid.UUID, requester domain.ActorID) (domain.Listing, error)

	// UpdatePrice changes the unit price of a listing on behalf of its owner
	UpdatePrice(ctx context.Context, id uuid.UUID, requester domain.ActorID, unitPrice int64) (domain.Listing, error)

	// Fulfill runs fn inside the listing's critical section and, when fn succeeds, removes the sold
	// quantity. A partial sale relists the remainder under a new id. Goods are never handed back.
	Fulfill(ctx context.Context, id uuid.UUID, fn FulfillFunc) (*Fulfillment, error)

	// ExpireOlderThan removes every listing older than maxAge and hands the goods back
	ExpireOlderThan(ctx context.Context, maxAge time.Duration) []domain.Listing

	// Get returns a copy of an active listing
	Get(id uuid.UUID) (domain.Listing, bool)

	// ByOwner returns the owner's listings, newest first
	ByOwner(owner domain.ActorID) []domain.Listing

	// Search returns the active listings matching the query
	Search(query Query) []domain.Listing

	// Count returns the number of listings
	Count() int

	// CountByOwner returns the number of listings of an owner
	CountByOwner(owner domain.ActorID) int

	// Snapshot copies every listing
	Snapshot() []domain.Listing

	// Restore replaces the registry content
	Restore(listings []domain.Listing)
}

// FulfillFunc performs the money movement of a sale on a validated copy of the listing.
// It returns the quantity sold; any error aborts the sale and leaves the listing untouched.
type FulfillFunc func(listing domain.Listing) (quantity int, err error)

// Fulfillment is the outcome of a completed sale
type Fulfillment struct {
	// Listing as it was before the sale
	Listing domain.Listing
	// Quantity sold
	Quantity int
	// Remainder is the listing replacing a partially sold one, nil when the listing sold out
	Remainder *domain.Listing
}

// Returner hands goods of a removed listing back to their owner
type Returner interface {
	ReturnGoods(ctx context.Context, owner domain.ActorID, goods domain.Goods)
}

// Observer is told about listing changes after they are applied
type Observer interface {
	ListingChanged(ctx context.Context, kind domain.EventKind, listing domain.Listing)
}

// Query filters and orders a search. Zero values disable a filter.
type Query struct {
	Keyword  string
	ItemType string
	Owner    *domain.ActorID
	MinPrice int64
	MaxPrice int64
	Sort     domain.SortOrder
	Offset   int
	Limit    int
}

type listings struct {
	economy   config.EconomyProvider
	blacklist BlacklistRegistry
	returner  Returner
	observer  Observer
	clock     adapter.Clock
	ids       adapter.IDGenerator

	keys *keyLock

	// mu guards both indexes; they are always updated together
	mu      sync.RWMutex
	byID    map[uuid.UUID]*domain.Listing
	byOwner map[domain.ActorID]map[uuid.UUID]struct{}
}

// NewListings creates an empty registry. observer may be nil.
func NewListings(
	economy config.EconomyProvider,
	blacklist BlacklistRegistry,
	returner Returner,
	observer Observer,
	clock adapter.Clock,
	ids adapter.IDGenerator,
) Listings {
	return &listings{
		economy:   economy,
		blacklist: blacklist,
		returner:  returner,
		observer:  observer,
		clock:     clock,
		ids:       ids,
		keys:      newKeyLock(),
		byID:      make(map[uuid.UUID]*domain.Listing),
		byOwner:   make(map[domain.ActorID]map[uuid.UUID]struct{}),
	}
}

func (r *listings) notify(ctx context.Context, kind domain.EventKind, listing domain.Listing) {
	if r.observer != nil {
		r.observer.ListingChanged(ctx, kind, listing)
	}
}

// insertLocked adds a listing to both indexes; r.mu must be held for writing
func (r *listings) insertLocked(l *domain.Listing) {
	r.byID[l.ID] = l
	owned, ok := r.byOwner[l.OwnerID]
	if !ok {
		owned = make(map[uuid.UUID]struct{})
		r.byOwner[l.OwnerID] = owned
	}
	owned[l.ID] = struct{}{}
}

// deleteLocked removes a listing from both indexes; r.mu must be held for writing
func (r *listings) deleteLocked(l *domain.Listing) {
	delete(r.byID, l.ID)
	if owned, ok := r.byOwner[l.OwnerID]; ok {
		delete(owned, l.ID)
		if len(owned) == 0 {
			delete(r.byOwner, l.OwnerID)
		}
	}
}

func (r *listings) lookup(id uuid.UUID) (*domain.Listing, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byID[id]
	return l, ok
}

func (r *listings) validatePrice(unitPrice int64) error {
	if unitPrice <= 0 {
		return domain.ErrInvalidPrice
	}
	if maxPrice := r.economy.Economy().MaxTradePrice; maxPrice > 0 && unitPrice > maxPrice {
		return fmt.Errorf("%w: %d > %d", domain.ErrPriceTooHigh, unitPrice, maxPrice)
	}
	return nil
}

func (r *listings) List(ctx context.Context, owner domain.Actor, goods domain.Goods, unitPrice int64) (domain.Listing, error) {
	if owner.ID == uuid.Nil {
		return domain.Listing{}, fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(goods.ItemType) == "" {
		return domain.Listing{}, fmt.Errorf("%w: item type is required", domain.ErrInvalidInput)
	}
	if goods.Quantity <= 0 {
		return domain.Listing{}, domain.ErrInvalidQuantity
	}
	if err := r.validatePrice(unitPrice); err != nil {
		return domain.Listing{}, err
	}
	if r.blacklist.IsListingBlacklisted(goods.ItemType) {
		return domain.Listing{}, fmt.Errorf("%w: %s", domain.ErrItemBlacklisted, goods.ItemType)
	}

	listing := &domain.Listing{
		ID:        r.ids.NewUUID(),
		OwnerID:   owner.ID,
		OwnerName: owner.Name,
		Goods:     goods.Clone(),
		UnitPrice: unitPrice,
		CreatedAt: r.clock.Now(),
		Active:    true,
	}

	// Count and insert under one write lock so concurrent lists cannot overshoot the cap
	r.mu.Lock()
	if len(r.byOwner[owner.ID]) >= r.economy.Economy().MaxListingsPerOwner {
		r.mu.Unlock()
		return domain.Listing{}, domain.ErrMaxListingsExceeded
	}
	r.insertLocked(listing)
	created := listing.Clone()
	r.mu.Unlock()

	logger.DebugCtx(ctx, "Listing created",
		logger.ListingID(created.ID),
		logger.Actor(owner.ID),
		zap.String("itemType", goods.ItemType),
		zap.Int("quantity", goods.Quantity),
		logger.Amount("unitPrice", unitPrice))

	r.notify(ctx, domain.EventKindListingCreated, created)
	return created, nil
}

func (r *listings) Unlist(ctx context.Context, id uuid.UUID, requester domain.ActorID) (domain.Listing, error) {
	unlock := r.keys.Lock(id)

	l, ok := r.lookup(id)
	if !ok {
		unlock()
		return domain.Listing{}, domain.ErrListingNotFound
	}
	if l.OwnerID != requester {
		unlock()
		return domain.Listing{}, domain.ErrNotOwner
	}

	r.mu.Lock()
	r.deleteLocked(l)
	removed := l.Clone()
	r.mu.Unlock()
	unlock()

	r.returner.ReturnGoods(ctx, removed.OwnerID, removed.Goods.Clone())

	logger.DebugCtx(ctx, "Listing removed", logger.ListingID(id), logger.Actor(requester))
	r.notify(ctx, domain.EventKindListingRemoved, removed)
	return removed, nil
}

func (r *listings) UpdatePrice(ctx context.Context, id uuid.UUID, requester domain.ActorID, unitPrice int64) (domain.Listing, error) {
	if err := r.validatePrice(unitPrice); err != nil {
		return domain.Listing{}, err
	}

	unlock := r.keys.Lock(id)
	defer unlock()

	l, ok := r.lookup(id)
	if !ok {
		return domain.Listing{}, domain.ErrListingNotFound
	}
	if l.OwnerID != requester {
		return domain.Listing{}, domain.ErrNotOwner
	}

	r.mu.Lock()
	l.UnitPrice = unitPrice
	updated := l.Clone()
	r.mu.Unlock()

	r.notify(ctx, domain.EventKindListingUpdated, updated)
	return updated, nil
}

func (r *listings) Fulfill(ctx context.Context, id uuid.UUID, fn FulfillFunc) (*Fulfillment, error) {
	unlock := r.keys.Lock(id)
	defer unlock()

	l, ok := r.lookup(id)
	if !ok {
		return nil, domain.ErrListingNotFound
	}

	r.mu.RLock()
	before := l.Clone()
	r.mu.RUnlock()

	if !before.Active {
		return nil, domain.ErrListingNotFound
	}

	quantity, err := fn(before.Clone())
	if err != nil {
		return nil, err
	}
	if quantity <= 0 || quantity > before.Goods.Quantity {
		return nil, fmt.Errorf("fulfilled quantity %d out of range for listing %s", quantity, id)
	}

	result := &Fulfillment{
		Listing:  before,
		Quantity: quantity,
	}

	r.mu.Lock()
	r.deleteLocked(l)
	if remaining := before.Goods.Quantity - quantity; remaining > 0 {
		// Destroy and recreate so no reader ever sees a half-updated listing
		remainder := before.Clone()
		remainder.ID = r.ids.NewUUID()
		remainder.Goods.Quantity = remaining
		r.insertLocked(&remainder)

		c := remainder.Clone()
		result.Remainder = &c
	}
	r.mu.Unlock()

	r.notify(ctx, domain.EventKindListingSold, before)
	if result.Remainder != nil {
		r.notify(ctx, domain.EventKindListingCreated, *result.Remainder)
	}
	return result, nil
}

func (r *listings) ExpireOlderThan(ctx context.Context, maxAge time.Duration) []domain.Listing {
	if maxAge <= 0 {
		return nil
	}
	now := r.clock.Now()

	r.mu.RLock()
	var candidates []uuid.UUID
	for id, l := range r.byID {
		if l.IsExpired(now, maxAge) {
			candidates = append(candidates, id)
		}
	}
	r.mu.RUnlock()

	var expired []domain.Listing
	for _, id := range candidates {
		if l, ok := r.expire(id, now, maxAge); ok {
			expired = append(expired, l)
		}
	}

	for _, l := range expired {
		r.returner.ReturnGoods(ctx, l.OwnerID, l.Goods.Clone())
		r.notify(ctx, domain.EventKindListingExpired, l)
	}

	if len(expired) > 0 {
		logger.InfoCtx(ctx, "Expired listings", zap.Int("count", len(expired)), zap.Duration("maxAge", maxAge))
	}
	return expired
}

// expire removes one listing if it still exists and is still expired once its lock is held
func (r *listings) expire(id uuid.UUID, now time.Time, maxAge time.Duration) (domain.Listing, bool) {
	unlock := r.keys.Lock(id)
	defer unlock()

	l, ok := r.lookup(id)
	if !ok {
		return domain.Listing{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !l.IsExpired(now, maxAge) {
		return domain.Listing{}, false
	}
	r.deleteLocked(l)
	return l.Clone(), true
}

func (r *listings) Get(id uuid.UUID) (domain.Listing, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok || !l.Active {
		return domain.Listing{}, false
	}
	return l.Clone(), true
}

func (r *listings) ByOwner(owner domain.ActorID) []domain.Listing {
	r.mu.RLock()
	result := make([]domain.Listing, 0, len(r.byOwner[owner]))
	for id := range r.byOwner[owner] {
		result = append(result, r.byID[id].Clone())
	}
	r.mu.RUnlock()

	sortListings(result, domain.SortNewest)
	return result
}

func (r *listings) Search(query Query) []domain.Listing {
	keyword := strings.ToLower(strings.TrimSpace(query.Keyword))

	r.mu.RLock()
	var result []domain.Listing
	for _, l := range r.byID {
		if matches(l, query, keyword) {
			result = append(result, l.Clone())
		}
	}
	r.mu.RUnlock()

	sort := query.Sort
	if !sort.IsValid() {
		sort = domain.SortNewest
	}
	sortListings(result, sort)

	if query.Offset > 0 {
		if query.Offset >= len(result) {
			return []domain.Listing{}
		}
		result = result[query.Offset:]
	}
	if query.Limit > 0 && query.Limit < len(result) {
		result = result[:query.Limit]
	}
	if result == nil {
		result = []domain.Listing{}
	}
	return result
}

func matches(l *domain.Listing, query Query, keyword string) bool {
	if !l.Active {
		return false
	}
	if query.Owner != nil && l.OwnerID != *query.Owner {
		return false
	}
	if query.ItemType != "" && !strings.EqualFold(l.Goods.ItemType, query.ItemType) {
		return false
	}
	if query.MinPrice > 0 && l.UnitPrice < query.MinPrice {
		return false
	}
	if query.MaxPrice > 0 && l.UnitPrice > query.MaxPrice {
		return false
	}
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Goods.Name()), keyword) ||
		strings.Contains(strings.ToLower(l.OwnerName), keyword)
}

func sortListings(listings []domain.Listing, order domain.SortOrder) {
	byKey := func(a, b domain.Listing) int {
		switch order {
		case domain.SortPriceAsc:
			return cmp.Compare(a.UnitPrice, b.UnitPrice)
		case domain.SortPriceDesc:
			return cmp.Compare(b.UnitPrice, a.UnitPrice)
		case domain.SortNameAsc:
			return cmp.Compare(strings.ToLower(a.Goods.Name()), strings.ToLower(b.Goods.Name()))
		case domain.SortNameDesc:
			return cmp.Compare(strings.ToLower(b.Goods.Name()), strings.ToLower(a.Goods.Name()))
		default:
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	}

	slices.SortStableFunc(listings, func(a, b domain.Listing) int {
		if c := byKey(a, b); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
}

func (r *listings) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func (r *listings) CountByOwner(owner domain.ActorID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byOwner[owner])
}

func (r *listings) Snapshot() []domain.Listing {
	r.mu.RLock()
	result := make([]domain.Listing, 0, len(r.byID))
	for _, l := range r.byID {
		result = append(result, l.Clone())
	}
	r.mu.RUnlock()

	slices.SortFunc(result, func(a, b domain.Listing) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return result
}

func (r *listings) Restore(listings []domain.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[uuid.UUID]*domain.Listing, len(listings))
	r.byOwner = make(map[domain.ActorID]map[uuid.UUID]struct{})
	for _, l := range listings {
		c := l.Clone()
		r.insertLocked(&c)
	}
}
