package market

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

// RecycleResult describes goods converted into currency
type RecycleResult struct {
	Records []domain.TransactionRecord
	// Prices holds the value of every submitted stack, 0 for rejected ones
	Prices []int64
	// Rejected holds the indexes of stacks that could not be recycled
	Rejected []int
	Total    int64
	// Capped is true when the balance hit the cap and part of the total was lost
	Capped  bool
	Balance int64
}

func validateRecycle(actor domain.Actor, goods domain.Goods) error {
	if actor.ID == uuid.Nil {
		return fmt.Errorf("%w: actor is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(goods.ItemType) == "" {
		return fmt.Errorf("%w: item type is required", domain.ErrInvalidInput)
	}
	if goods.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

func (s *service) PreviewRecycle(goods []domain.Goods) (int64, []int64) {
	return s.recycle.PreviewBatch(goods)
}

// Recycle converts goods already taken from the actor into currency
func (s *service) Recycle(ctx context.Context, actor domain.Actor, goods domain.Goods) (*RecycleResult, error) {
	if err := validateRecycle(actor, goods); err != nil {
		return nil, err
	}
	if !s.recycle.IsRecyclable(goods) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotRecyclable, goods.ItemType)
	}
	price := s.recycle.PreviewPrice(goods)
	if price <= 0 {
		return nil, fmt.Errorf("%w: %s has no value", domain.ErrNotRecyclable, goods.ItemType)
	}

	s.gate.RLock()
	defer s.gate.RUnlock()

	result := &RecycleResult{
		Prices: []int64{price},
		Total:  price,
		Capped: !s.ledger.Add(actor.ID, price),
	}
	result.Records = append(result.Records, s.recordRecycle(actor, goods, price))
	result.Balance = s.ledger.Balance(actor.ID)
	s.critical()

	logger.InfoCtx(ctx, "Goods recycled",
		logger.Actor(actor.ID),
		zap.String("itemType", goods.ItemType),
		zap.Int("quantity", goods.Quantity),
		logger.Amount("price", price),
		zap.Bool("capped", result.Capped))

	return result, nil
}

// RecycleBatch recycles every recyclable stack and credits the sum once.
// Rejected stacks are reported back; the call fails only when nothing could be recycled.
func (s *service) RecycleBatch(ctx context.Context, actor domain.Actor, goods []domain.Goods) (*RecycleResult, error) {
	if actor.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: actor is required", domain.ErrInvalidInput)
	}
	if len(goods) == 0 {
		return nil, fmt.Errorf("%w: nothing to recycle", domain.ErrInvalidInput)
	}

	result := &RecycleResult{Prices: make([]int64, len(goods))}
	for i, g := range goods {
		if validateRecycle(actor, g) != nil || !s.recycle.IsRecyclable(g) {
			result.Rejected = append(result.Rejected, i)
			continue
		}
		price := s.recycle.PreviewPrice(g)
		if price <= 0 {
			result.Rejected = append(result.Rejected, i)
			continue
		}
		result.Prices[i] = price
		result.Total += price
	}
	if result.Total == 0 {
		return nil, domain.ErrNotRecyclable
	}

	s.gate.RLock()
	defer s.gate.RUnlock()

	result.Capped = !s.ledger.Add(actor.ID, result.Total)
	for i, g := range goods {
		if result.Prices[i] > 0 {
			result.Records = append(result.Records, s.recordRecycle(actor, g, result.Prices[i]))
		}
	}
	result.Balance = s.ledger.Balance(actor.ID)
	s.critical()

	logger.InfoCtx(ctx, "Goods recycled in batch",
		logger.Actor(actor.ID),
		zap.Int("stacks", len(result.Records)),
		zap.Int("rejected", len(result.Rejected)),
		logger.Amount("total", result.Total))

	return result, nil
}

func (s *service) recordRecycle(actor domain.Actor, goods domain.Goods, price int64) domain.TransactionRecord {
	now := s.clock.Now()
	record := domain.TransactionRecord{
		ID:         s.ids.NewULID(now),
		SellerID:   actor.ID,
		SellerName: actor.Name,
		BuyerID:    domain.SystemActorID,
		BuyerName:  domain.SYSTEM_SHOP_NAME,
		Goods:      goods.Clone(),
		Price:      price,
		Timestamp:  now,
		Kind:       domain.TransactionKindRecycle,
	}
	s.history.Append(record)
	return record
}

func (s *service) RecyclePrices() map[string]int64 {
	return s.recycle.RecyclableItems()
}

func (s *service) SetRecyclePrice(ctx context.Context, admin domain.ActorID, itemType string, price int64) error {
	if !s.privileges.IsPrivileged(admin) {
		return domain.ErrNotPrivileged
	}
	if err := s.recycle.SetCustomPrice(itemType, price); err != nil {
		return err
	}
	s.touch()

	logger.InfoCtx(ctx, "Recycle price set", logger.Actor(admin), zap.String("itemType", itemType), logger.Amount("price", price))
	return nil
}

func (s *service) RemoveRecyclePrice(ctx context.Context, admin domain.ActorID, itemType string) error {
	if !s.privileges.IsPrivileged(admin) {
		return domain.ErrNotPrivileged
	}
	if !s.recycle.RemovePrice(itemType) {
		return fmt.Errorf("%w: %s", domain.ErrNotRecyclable, itemType)
	}
	s.touch()

	logger.InfoCtx(ctx, "Recycle price removed", logger.Actor(admin), zap.String("itemType", itemType))
	return nil
}
