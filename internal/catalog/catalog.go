package catalog

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/environment"
	"github.com/feral-file/ff-market/internal/logger"
)

// Catalog is the system shop: admin-managed entries with unlimited stock.
// Every mutation except Touch requires a privileged actor.
//
//go:generate mockgen -source=catalog.go -destination=../mocks/catalog.go -package=mocks -mock_names=Catalog=MockCatalog,Observer=MockCatalogObserver
type Catalog interface {
	Add(ctx context.Context, admin domain.ActorID, goods domain.Goods, unitPrice int64, nominalQuantity int) (domain.CatalogEntry, error)
	Remove(ctx context.Context, admin domain.ActorID, id uuid.UUID) (domain.CatalogEntry, error)
	UpdatePrice(ctx context.Context, admin domain.ActorID, id uuid.UUID, unitPrice int64) (domain.CatalogEntry, error)
	UpdateDisplayQuantity(ctx context.Context, admin domain.ActorID, id uuid.UUID, nominalQuantity int) (domain.CatalogEntry, error)
	ToggleActive(ctx context.Context, admin domain.ActorID, id uuid.UUID) (domain.CatalogEntry, error)

	// Touch records a purchase against the entry; stock is never depleted
	Touch(id uuid.UUID) (domain.CatalogEntry, error)

	Get(id uuid.UUID) (domain.CatalogEntry, bool)
	List() []domain.CatalogEntry
	ListActive() []domain.CatalogEntry
	Search(keyword string, activeOnly bool) []domain.CatalogEntry

	Snapshot() []domain.CatalogEntry
	Restore(entries []domain.CatalogEntry)
}

// Observer is told about entry changes after they are applied
type Observer interface {
	CatalogChanged(ctx context.Context, entry domain.CatalogEntry, removed bool)
}

type catalog struct {
	economy    config.EconomyProvider
	privileges environment.Privileges
	observer   Observer
	clock      adapter.Clock
	ids        adapter.IDGenerator

	mu      sync.RWMutex
	entries map[uuid.UUID]*domain.CatalogEntry
}

// New creates an empty catalog. observer may be nil.
func New(
	economy config.EconomyProvider,
	privileges environment.Privileges,
	observer Observer,
	clock adapter.Clock,
	ids adapter.IDGenerator,
) Catalog {
	return &catalog{
		economy:    economy,
		privileges: privileges,
		observer:   observer,
		clock:      clock,
		ids:        ids,
		entries:    make(map[uuid.UUID]*domain.CatalogEntry),
	}
}

func (c *catalog) authorize(admin domain.ActorID) error {
	if !c.privileges.IsPrivileged(admin) {
		return domain.ErrNotPrivileged
	}
	return nil
}

func (c *catalog) validatePrice(unitPrice int64) error {
	if unitPrice <= 0 {
		return domain.ErrInvalidPrice
	}
	if maxPrice := c.economy.Economy().MaxTradePrice; maxPrice > 0 && unitPrice > maxPrice {
		return fmt.Errorf("%w: %d > %d", domain.ErrPriceTooHigh, unitPrice, maxPrice)
	}
	return nil
}

func (c *catalog) notify(ctx context.Context, entry domain.CatalogEntry, removed bool) {
	if c.observer != nil {
		c.observer.CatalogChanged(ctx, entry, removed)
	}
}

func (c *catalog) Add(ctx context.Context, admin domain.ActorID, goods domain.Goods, unitPrice int64, nominalQuantity int) (domain.CatalogEntry, error) {
	if err := c.authorize(admin); err != nil {
		return domain.CatalogEntry{}, err
	}
	if strings.TrimSpace(goods.ItemType) == "" {
		return domain.CatalogEntry{}, fmt.Errorf("%w: item type is required", domain.ErrInvalidInput)
	}
	if nominalQuantity <= 0 {
		return domain.CatalogEntry{}, domain.ErrInvalidQuantity
	}
	if err := c.validatePrice(unitPrice); err != nil {
		return domain.CatalogEntry{}, err
	}

	// Purchases deliver the template one unit at a time
	template := goods.WithQuantity(1)
	now := c.clock.Now()
	entry := &domain.CatalogEntry{
		ID:              c.ids.NewUUID(),
		Goods:           template,
		UnitPrice:       unitPrice,
		NominalQuantity: nominalQuantity,
		Active:          true,
		CreatedBy:       admin,
		CreatedAt:       now,
		LastModified:    now,
	}

	c.mu.Lock()
	c.entries[entry.ID] = entry
	created := entry.Clone()
	c.mu.Unlock()

	logger.InfoCtx(ctx, "Catalog entry added",
		logger.EntryID(created.ID),
		logger.Actor(admin),
		zap.String("itemType", goods.ItemType),
		logger.Amount("unitPrice", unitPrice))

	c.notify(ctx, created, false)
	return created, nil
}

func (c *catalog) Remove(ctx context.Context, admin domain.ActorID, id uuid.UUID) (domain.CatalogEntry, error) {
	if err := c.authorize(admin); err != nil {
		return domain.CatalogEntry{}, err
	}

	c.mu.Lock()
	entry, ok := c.entries[id]
	if !ok {
		c.mu.Unlock()
		return domain.CatalogEntry{}, domain.ErrCatalogEntryNotFound
	}
	delete(c.entries, id)
	removed := entry.Clone()
	c.mu.Unlock()

	logger.InfoCtx(ctx, "Catalog entry removed", logger.EntryID(id), logger.Actor(admin))
	c.notify(ctx, removed, true)
	return removed, nil
}

// update applies fn to an entry under the write lock and bumps LastModified
func (c *catalog) update(ctx context.Context, admin domain.ActorID, id uuid.UUID, fn func(*domain.CatalogEntry)) (domain.CatalogEntry, error) {
	if err := c.authorize(admin); err != nil {
		return domain.CatalogEntry{}, err
	}

	c.mu.Lock()
	entry, ok := c.entries[id]
	if !ok {
		c.mu.Unlock()
		return domain.CatalogEntry{}, domain.ErrCatalogEntryNotFound
	}
	fn(entry)
	entry.LastModified = c.clock.Now()
	updated := entry.Clone()
	c.mu.Unlock()

	c.notify(ctx, updated, false)
	return updated, nil
}

func (c *catalog) UpdatePrice(ctx context.Context, admin domain.ActorID, id uuid.UUID, unitPrice int64) (domain.CatalogEntry, error) {
	if err := c.validatePrice(unitPrice); err != nil {
		return domain.CatalogEntry{}, err
	}
	return c.update(ctx, admin, id, func(e *domain.CatalogEntry) {
		e.UnitPrice = unitPrice
	})
}

func (c *catalog) UpdateDisplayQuantity(ctx context.Context, admin domain.ActorID, id uuid.UUID, nominalQuantity int) (domain.CatalogEntry, error) {
	if nominalQuantity <= 0 {
		return domain.CatalogEntry{}, domain.ErrInvalidQuantity
	}
	return c.update(ctx, admin, id, func(e *domain.CatalogEntry) {
		e.NominalQuantity = nominalQuantity
	})
}

func (c *catalog) ToggleActive(ctx context.Context, admin domain.ActorID, id uuid.UUID) (domain.CatalogEntry, error) {
	return c.update(ctx, admin, id, func(e *domain.CatalogEntry) {
		e.Active = !e.Active
	})
}

func (c *catalog) Touch(id uuid.UUID) (domain.CatalogEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		return domain.CatalogEntry{}, domain.ErrCatalogEntryNotFound
	}
	if !entry.Active {
		return domain.CatalogEntry{}, domain.ErrCatalogEntryInactive
	}
	entry.LastModified = c.clock.Now()
	return entry.Clone(), nil
}

func (c *catalog) Get(id uuid.UUID) (domain.CatalogEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[id]
	if !ok {
		return domain.CatalogEntry{}, false
	}
	return entry.Clone(), true
}

func (c *catalog) collect(keep func(*domain.CatalogEntry) bool) []domain.CatalogEntry {
	c.mu.RLock()
	result := make([]domain.CatalogEntry, 0, len(c.entries))
	for _, entry := range c.entries {
		if keep(entry) {
			result = append(result, entry.Clone())
		}
	}
	c.mu.RUnlock()

	slices.SortFunc(result, func(a, b domain.CatalogEntry) int {
		if n := cmp.Compare(strings.ToLower(a.Goods.Name()), strings.ToLower(b.Goods.Name())); n != 0 {
			return n
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return result
}

func (c *catalog) List() []domain.CatalogEntry {
	return c.collect(func(*domain.CatalogEntry) bool { return true })
}

func (c *catalog) ListActive() []domain.CatalogEntry {
	return c.collect(func(e *domain.CatalogEntry) bool { return e.Active })
}

func (c *catalog) Search(keyword string, activeOnly bool) []domain.CatalogEntry {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	return c.collect(func(e *domain.CatalogEntry) bool {
		if activeOnly && !e.Active {
			return false
		}
		return keyword == "" ||
			strings.Contains(strings.ToLower(e.Goods.Name()), keyword) ||
			strings.Contains(strings.ToLower(e.Goods.ItemType), keyword)
	})
}

func (c *catalog) Snapshot() []domain.CatalogEntry {
	return c.List()
}

func (c *catalog) Restore(entries []domain.CatalogEntry) {
	restored := make(map[uuid.UUID]*domain.CatalogEntry, len(entries))
	for _, e := range entries {
		clone := e.Clone()
		restored[e.ID] = &clone
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = restored
}
