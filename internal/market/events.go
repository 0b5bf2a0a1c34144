package market

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

// emit sends an event to the notifier; actor nil broadcasts to everyone
func (s *service) emit(ctx context.Context, kind domain.EventKind, actor *domain.ActorID, payload map[string]any) {
	if s.notifier == nil {
		return
	}

	now := s.clock.Now()
	event := domain.MarketEvent{
		ID:        s.ids.NewULID(now),
		Kind:      kind,
		Scope:     domain.EventScopeAll,
		Timestamp: now,
		Payload:   payload,
	}
	if actor != nil {
		a := *actor
		event.Scope = domain.EventScopeActor
		event.ActorID = &a
	}

	s.notifier.Notify(ctx, event)
}

// deliver hands goods to a present actor, dropping them nearby when they do not fit
func (s *service) deliver(ctx context.Context, actor domain.ActorID, goods domain.Goods) bool {
	if s.inventory.GiveGoods(ctx, actor, goods.Clone()) {
		return true
	}

	logger.WarnCtx(ctx, "Inventory full, dropping goods", logger.Actor(actor), zap.String("itemType", goods.ItemType))
	return s.inventory.DropGoods(ctx, actor, goods.Clone())
}

// deliverOrQueue hands goods to the actor, or keeps them in the mailbox until the actor can receive them
func (s *service) deliverOrQueue(ctx context.Context, actor domain.ActorID, goods domain.Goods) (delivered bool) {
	wasPresent := s.presence.IsPresent(actor)
	if wasPresent && s.deliver(ctx, actor, goods) {
		return true
	}

	s.mailbox.Enqueue(actor, goods)
	s.touch()

	// An actor that joined after the presence read may already have drained its mailbox
	if !wasPresent && s.presence.IsPresent(actor) {
		_, requeued := s.deliverPending(ctx, actor)
		if len(requeued) == 0 {
			return true
		}
	}

	logger.InfoCtx(ctx, "Goods queued for delivery", logger.Actor(actor), zap.String("itemType", goods.ItemType), zap.Int("quantity", goods.Quantity))
	return false
}

// deliverPending drains the actor's mailbox, putting back what still cannot be handed over
func (s *service) deliverPending(ctx context.Context, actor domain.ActorID) (delivered, requeued []domain.Goods) {
	for _, goods := range s.mailbox.Drain(actor) {
		if s.deliver(ctx, actor, goods) {
			delivered = append(delivered, goods)
			continue
		}
		s.mailbox.Enqueue(actor, goods)
		requeued = append(requeued, goods)
	}
	return delivered, requeued
}

// pay credits a present actor, or keeps the amount as offline credit for an absent one.
// offline is false when the amount reached the balance.
func (s *service) pay(ctx context.Context, actor domain.ActorID, amount int64) (offline, capped bool) {
	if s.presence.IsPresent(actor) {
		return false, !s.ledger.Add(actor, amount)
	}

	s.ledger.AddOfflineCredit(actor, amount)

	// The actor may have joined and collected its offline credit since presence was read
	if !s.presence.IsPresent(actor) {
		return true, false
	}
	credit, full := s.ledger.DeliverOfflineCredit(actor)
	logger.InfoCtx(ctx, "Offline credit delivered to joining actor", logger.Actor(actor), logger.Amount("credit", credit))
	return false, !full
}

// goodsReturner hands the goods of unlisted and expired listings back to their owner
type goodsReturner struct {
	s *service
}

func (r *goodsReturner) ReturnGoods(ctx context.Context, owner domain.ActorID, goods domain.Goods) {
	if r.s.deliverOrQueue(ctx, owner, goods) {
		r.s.emit(ctx, domain.EventKindGoodsDelivered, &owner, map[string]any{"goods": goods})
	}
}

type ledgerObserver struct {
	s *service
}

func (o *ledgerObserver) BalanceChanged(actor domain.ActorID, balance int64) {
	o.s.touch()
	if o.s.presence.IsPresent(actor) {
		o.s.emit(context.Background(), domain.EventKindBalanceChanged, &actor, map[string]any{"balance": balance})
	}
}

func (o *ledgerObserver) OfflineCreditChanged(domain.ActorID, int64) {
	o.s.touch()
}

type listingObserver struct {
	s *service
}

func (o *listingObserver) ListingChanged(ctx context.Context, kind domain.EventKind, listing domain.Listing) {
	o.s.touch()
	o.s.emit(ctx, kind, nil, map[string]any{"listing": listing})
}

type catalogObserver struct {
	s *service
}

func (o *catalogObserver) CatalogChanged(ctx context.Context, entry domain.CatalogEntry, removed bool) {
	o.s.touch()
	o.s.emit(ctx, domain.EventKindCatalogChanged, nil, map[string]any{"entry": entry, "removed": removed})
}
