package host

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/environment"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/messaging"
)

// commandInventory moves goods by publishing inventory commands to the host application.
// A command counts as done once the broker accepted it.
type commandInventory struct {
	publisher messaging.Publisher
	clock     adapter.Clock
	ids       adapter.IDGenerator
}

// NewCommandInventory creates an inventory backed by the given publisher.
// Without a publisher no goods can be moved and deliveries stay in the goods mailbox.
func NewCommandInventory(publisher messaging.Publisher, clock adapter.Clock, ids adapter.IDGenerator) environment.Inventory {
	return &commandInventory{
		publisher: publisher,
		clock:     clock,
		ids:       ids,
	}
}

func (i *commandInventory) RemoveGoods(ctx context.Context, actor domain.ActorID, goods domain.Goods) bool {
	return i.send(ctx, domain.EventKindInventoryRemove, actor, goods)
}

func (i *commandInventory) GiveGoods(ctx context.Context, actor domain.ActorID, goods domain.Goods) bool {
	return i.send(ctx, domain.EventKindInventoryGive, actor, goods)
}

func (i *commandInventory) DropGoods(ctx context.Context, actor domain.ActorID, goods domain.Goods) bool {
	return i.send(ctx, domain.EventKindInventoryDrop, actor, goods)
}

func (i *commandInventory) send(ctx context.Context, kind domain.EventKind, actor domain.ActorID, goods domain.Goods) bool {
	if i.publisher == nil {
		return false
	}

	now := i.clock.Now()
	event := &domain.MarketEvent{
		ID:        i.ids.NewULID(now),
		Kind:      kind,
		Scope:     domain.EventScopeActor,
		ActorID:   &actor,
		Timestamp: now,
		Payload:   map[string]any{"goods": goods},
	}

	if err := i.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish inventory command",
			zap.Error(err),
			zap.String("kind", string(kind)),
			logger.Actor(actor),
		)
		return false
	}
	return true
}
