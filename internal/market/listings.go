package market

import (
	"context"

	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/registry"
)

// List registers goods the host already took from the owner
func (s *service) List(ctx context.Context, owner domain.Actor, goods domain.Goods, unitPrice int64) (domain.Listing, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.listings.List(ctx, owner, goods, unitPrice)
}

func (s *service) Unlist(ctx context.Context, id uuid.UUID, requester domain.ActorID) (domain.Listing, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.listings.Unlist(ctx, id, requester)
}

func (s *service) UpdatePrice(ctx context.Context, id uuid.UUID, requester domain.ActorID, unitPrice int64) (domain.Listing, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.listings.UpdatePrice(ctx, id, requester, unitPrice)
}

func (s *service) GetListing(id uuid.UUID) (domain.Listing, bool) {
	return s.listings.Get(id)
}

func (s *service) SearchListings(query registry.Query) []domain.Listing {
	return s.listings.Search(query)
}

func (s *service) ListingsByOwner(owner domain.ActorID) []domain.Listing {
	return s.listings.ByOwner(owner)
}

// ExpireListings removes listings older than the configured TTL
func (s *service) ExpireListings(ctx context.Context) []domain.Listing {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.listings.ExpireOlderThan(ctx, s.economy.Economy().ListingTTL)
}

func (s *service) AddCatalogEntry(ctx context.Context, admin domain.ActorID, goods domain.Goods, unitPrice int64, nominalQuantity int) (domain.CatalogEntry, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.catalog.Add(ctx, admin, goods, unitPrice, nominalQuantity)
}

func (s *service) RemoveCatalogEntry(ctx context.Context, admin domain.ActorID, id uuid.UUID) (domain.CatalogEntry, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.catalog.Remove(ctx, admin, id)
}

func (s *service) UpdateCatalogPrice(ctx context.Context, admin domain.ActorID, id uuid.UUID, unitPrice int64) (domain.CatalogEntry, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.catalog.UpdatePrice(ctx, admin, id, unitPrice)
}

func (s *service) UpdateCatalogQuantity(ctx context.Context, admin domain.ActorID, id uuid.UUID, nominalQuantity int) (domain.CatalogEntry, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.catalog.UpdateDisplayQuantity(ctx, admin, id, nominalQuantity)
}

func (s *service) ToggleCatalogEntry(ctx context.Context, admin domain.ActorID, id uuid.UUID) (domain.CatalogEntry, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.catalog.ToggleActive(ctx, admin, id)
}

func (s *service) GetCatalogEntry(id uuid.UUID) (domain.CatalogEntry, bool) {
	return s.catalog.Get(id)
}

func (s *service) SearchCatalog(keyword string, activeOnly bool) []domain.CatalogEntry {
	return s.catalog.Search(keyword, activeOnly)
}

func (s *service) Balance(actor domain.ActorID) int64 {
	return s.ledger.Balance(actor)
}

func (s *service) OfflineCredit(actor domain.ActorID) int64 {
	return s.ledger.OfflineCredit(actor)
}

func (s *service) SetBalance(ctx context.Context, admin domain.ActorID, actor domain.ActorID, amount int64) (int64, error) {
	if !s.privileges.IsPrivileged(admin) {
		return 0, domain.ErrNotPrivileged
	}

	s.gate.RLock()
	defer s.gate.RUnlock()

	balance := s.ledger.SetBalance(actor, amount)
	s.critical()

	logger.InfoCtx(ctx, "Balance set by admin", logger.Actor(actor), logger.Amount("balance", balance))
	return balance, nil
}

func (s *service) History(actor domain.ActorID, limit int) []domain.TransactionRecord {
	return s.history.ForActor(actor, limit)
}

func (s *service) RecentTransactions(limit int) []domain.TransactionRecord {
	return s.history.Recent(limit)
}
