package market

import (
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/ledger"
	"github.com/feral-file/ff-market/internal/store"
)

func (s *service) Version() uint64 {
	return s.version.Load()
}

// Snapshot copies the whole market while no operation is in flight
func (s *service) Snapshot() *store.State {
	s.gate.Lock()
	defer s.gate.Unlock()

	accounts := s.ledger.Snapshot()
	return &store.State{
		Listings:       s.listings.Snapshot(),
		Catalog:        s.catalog.Snapshot(),
		Balances:       accounts.Balances,
		OfflineCredits: accounts.OfflineCredits,
		PendingGoods:   s.mailbox.Snapshot(),
		History:        s.history.Snapshot(),
		Revenue:        s.revenue.Load(),
		RecyclePrices:  s.recycle.CustomPrices(),
		Version:        s.version.Load(),
		TakenAt:        s.clock.Now(),
	}
}

// Restore replaces the whole market with a saved state
func (s *service) Restore(state *store.State) {
	if state == nil {
		return
	}

	s.gate.Lock()
	defer s.gate.Unlock()

	s.listings.Restore(state.Listings)
	s.catalog.Restore(state.Catalog)
	s.ledger.Restore(ledger.Snapshot{
		Balances:       state.Balances,
		OfflineCredits: state.OfflineCredits,
	})
	s.mailbox.Restore(state.PendingGoods)
	s.history.Restore(state.History)
	s.revenue.Store(max(state.Revenue, 0))
	if state.RecyclePrices != nil {
		s.recycle.RestoreCustomPrices(state.RecyclePrices)
	}
	s.version.Store(state.Version)
}

// PendingGoods returns the goods waiting in the actor's mailbox
func (s *service) PendingGoods(actor domain.ActorID) []domain.Goods {
	return s.mailbox.Pending(actor)
}
