package market

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

// Delivery is what an actor received on becoming present
type Delivery struct {
	Credit int64
	// Capped is true when the credit hit the balance cap
	Capped bool
	Goods  []domain.Goods
	// Requeued holds goods that still could not be handed over
	Requeued []domain.Goods
}

// OnActorPresent delivers offline credit and pending goods, exactly once
func (s *service) OnActorPresent(ctx context.Context, actor domain.ActorID) (*Delivery, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()

	delivery := &Delivery{}

	credit, full := s.ledger.DeliverOfflineCredit(actor)
	delivery.Credit = credit
	delivery.Capped = !full

	delivery.Goods, delivery.Requeued = s.deliverPending(ctx, actor)

	if credit == 0 && len(delivery.Goods) == 0 && len(delivery.Requeued) == 0 {
		return delivery, nil
	}
	s.critical()

	logger.InfoCtx(ctx, "Offline delivery",
		logger.Actor(actor),
		logger.Amount("credit", credit),
		zap.Bool("capped", delivery.Capped),
		zap.Int("goods", len(delivery.Goods)),
		zap.Int("requeued", len(delivery.Requeued)))

	s.emit(ctx, domain.EventKindOfflineDelivered, &actor, map[string]any{
		"credit": credit,
		"goods":  delivery.Goods,
	})
	return delivery, nil
}

// OnActorAbsent persists the actor's state early, as the actor may not be back before the next flush
func (s *service) OnActorAbsent(ctx context.Context, actor domain.ActorID) {
	logger.DebugCtx(ctx, "Actor left", logger.Actor(actor))
	s.critical()
}
