package market

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

// PurchaseRequest buys quantity units of a player listing
type PurchaseRequest struct {
	ListingID uuid.UUID
	Buyer     domain.Actor
	Quantity  int
}

// CatalogPurchaseRequest buys quantity units from the system shop
type CatalogPurchaseRequest struct {
	EntryID  uuid.UUID
	Buyer    domain.Actor
	Quantity int
}

// PurchaseResult describes a completed sale
type PurchaseResult struct {
	Record         domain.TransactionRecord
	Goods          domain.Goods // goods handed to the buyer
	TotalPrice     int64
	Tax            int64
	SellerProceeds int64
	// SellerOffline is true when the proceeds were queued as offline credit
	SellerOffline bool
	// SellerCapped is true when the seller's balance hit the cap and part of the proceeds was lost
	SellerCapped bool
	// GoodsQueued is true when the goods could not be handed over and wait in the buyer's mailbox
	GoodsQueued  bool
	BuyerBalance int64
	// Remainder replaces a partially sold listing
	Remainder *domain.Listing
}

// BatchPurchaseResult pairs a batch request with its outcome
type BatchPurchaseResult struct {
	Request PurchaseRequest
	Result  *PurchaseResult
	Err     error
}

// Tax returns ceil(total * rate)
func Tax(total int64, rate float64) int64 {
	if total <= 0 {
		return 0
	}
	return domain.CeilAmount(total, rate)
}

func (s *service) buyerName(buyer domain.Actor) string {
	if buyer.Name != "" {
		return buyer.Name
	}
	if resolved, ok := s.presence.Resolve(buyer.ID); ok {
		return resolved.Name
	}
	return ""
}

func (s *service) Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error) {
	if req.Buyer.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: buyer is required", domain.ErrInvalidInput)
	}
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	s.gate.RLock()
	defer s.gate.RUnlock()

	result := &PurchaseResult{}
	var sold domain.Goods

	fulfillment, err := s.listings.Fulfill(ctx, req.ListingID, func(l domain.Listing) (int, error) {
		if l.OwnerID == req.Buyer.ID {
			return 0, domain.ErrSelfPurchaseForbidden
		}
		if req.Quantity > l.Goods.Quantity {
			return 0, fmt.Errorf("%w: requested %d of %d", domain.ErrInvalidQuantity, req.Quantity, l.Goods.Quantity)
		}

		total, ok := l.TotalPrice(req.Quantity)
		if !ok {
			return 0, fmt.Errorf("%w: total price overflows", domain.ErrInvalidQuantity)
		}
		if !s.ledger.Remove(req.Buyer.ID, total) {
			return 0, domain.ErrInsufficientFunds
		}

		// The buyer is charged: from here on the sale is final
		tax := Tax(total, s.economy.Economy().TaxRate)
		proceeds := total - tax

		result.SellerOffline, result.SellerCapped = s.pay(ctx, l.OwnerID, proceeds)
		if result.SellerCapped {
			logger.WarnCtx(ctx, "Seller balance capped", logger.Actor(l.OwnerID), logger.Amount("proceeds", proceeds))
		}

		sold = l.Goods.WithQuantity(req.Quantity)
		result.GoodsQueued = !s.deliverOrQueue(ctx, req.Buyer.ID, sold)

		result.TotalPrice = total
		result.Tax = tax
		result.SellerProceeds = proceeds
		return req.Quantity, nil
	})
	if err != nil {
		return nil, err
	}

	s.revenue.Add(result.Tax)

	listing := fulfillment.Listing
	record := domain.TransactionRecord{
		ID:         s.ids.NewULID(s.clock.Now()),
		SellerID:   listing.OwnerID,
		SellerName: listing.OwnerName,
		BuyerID:    req.Buyer.ID,
		BuyerName:  s.buyerName(req.Buyer),
		Goods:      sold.Clone(),
		Price:      result.TotalPrice,
		Tax:        result.Tax,
		Timestamp:  s.clock.Now(),
		Kind:       domain.TransactionKindBuy,
	}
	s.history.Append(record)
	s.critical()

	result.Record = record
	result.Goods = sold
	result.Remainder = fulfillment.Remainder
	result.BuyerBalance = s.ledger.Balance(req.Buyer.ID)

	logger.InfoCtx(ctx, "Listing sold",
		logger.ListingID(listing.ID),
		zap.String("seller", listing.OwnerID.String()),
		zap.String("buyer", req.Buyer.ID.String()),
		zap.Int("quantity", req.Quantity),
		logger.Amount("total", result.TotalPrice),
		logger.Amount("tax", result.Tax),
		zap.Bool("sellerOffline", result.SellerOffline))

	if result.SellerOffline {
		owner := listing.OwnerID
		s.emit(ctx, domain.EventKindListingSold, &owner, map[string]any{"record": record})
	}

	return result, nil
}

func (s *service) PurchaseBatch(ctx context.Context, reqs []PurchaseRequest) []BatchPurchaseResult {
	results := make([]BatchPurchaseResult, len(reqs))
	tasks := make([]pond.Task, 0, len(reqs))

	for i, req := range reqs {
		results[i].Request = req
		tasks = append(tasks, s.pool.Submit(func() {
			results[i].Result, results[i].Err = s.Purchase(ctx, req)
		}))
	}

	for i, task := range tasks {
		if err := task.Wait(); err != nil {
			results[i].Err = fmt.Errorf("purchase task failed: %w", err)
		}
	}
	return results
}

func (s *service) PurchaseCatalog(ctx context.Context, req CatalogPurchaseRequest) (*PurchaseResult, error) {
	if req.Buyer.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: buyer is required", domain.ErrInvalidInput)
	}
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	s.gate.RLock()
	defer s.gate.RUnlock()

	entry, err := s.catalog.Touch(req.EntryID)
	if err != nil {
		return nil, err
	}

	total, ok := domain.TotalPrice(entry.UnitPrice, req.Quantity)
	if !ok {
		return nil, fmt.Errorf("%w: total price overflows", domain.ErrInvalidQuantity)
	}
	if !s.ledger.Remove(req.Buyer.ID, total) {
		return nil, domain.ErrInsufficientFunds
	}

	// System shop sales are tax free; the whole price is system revenue
	s.revenue.Add(total)

	goods := entry.Goods.WithQuantity(req.Quantity)
	queued := !s.deliverOrQueue(ctx, req.Buyer.ID, goods)

	record := domain.TransactionRecord{
		ID:         s.ids.NewULID(s.clock.Now()),
		SellerID:   domain.SystemActorID,
		SellerName: domain.SYSTEM_SHOP_NAME,
		BuyerID:    req.Buyer.ID,
		BuyerName:  s.buyerName(req.Buyer),
		Goods:      goods.Clone(),
		Price:      total,
		Timestamp:  s.clock.Now(),
		Kind:       domain.TransactionKindBuy,
	}
	s.history.Append(record)
	s.critical()

	logger.InfoCtx(ctx, "Catalog entry sold",
		logger.EntryID(entry.ID),
		zap.String("buyer", req.Buyer.ID.String()),
		zap.Int("quantity", req.Quantity),
		logger.Amount("total", total))

	return &PurchaseResult{
		Record:       record,
		Goods:        goods,
		TotalPrice:   total,
		GoodsQueued:  queued,
		BuyerBalance: s.ledger.Balance(req.Buyer.ID),
	}, nil
}

func (s *service) SystemRevenue() int64 {
	return s.revenue.Load()
}
