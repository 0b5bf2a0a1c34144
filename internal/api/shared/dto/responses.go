package dto

import (
	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/market"
)

// ListResponse is a page of results
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	// Total is the number of results before paging
	Total int `json:"total"`
}

// NewListResponse pages items
func NewListResponse[T any](items []T, offset, limit int) ListResponse[T] {
	total := len(items)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)

	page := items[offset:end]
	if page == nil {
		page = []T{}
	}
	return ListResponse[T]{
		Items:  page,
		Offset: offset,
		Limit:  limit,
		Total:  total,
	}
}

// PurchaseResponse describes a completed purchase
type PurchaseResponse struct {
	Transaction    domain.TransactionRecord `json:"transaction"`
	Goods          domain.Goods             `json:"goods"`
	TotalPrice     int64                    `json:"total_price"`
	Tax            int64                    `json:"tax"`
	SellerProceeds int64                    `json:"seller_proceeds"`
	GoodsQueued    bool                     `json:"goods_queued"`
	Balance        int64                    `json:"balance"`
	Remainder      *domain.Listing          `json:"remainder,omitempty"`
}

// NewPurchaseResponse converts a purchase result
func NewPurchaseResponse(r *market.PurchaseResult) PurchaseResponse {
	return PurchaseResponse{
		Transaction:    r.Record,
		Goods:          r.Goods,
		TotalPrice:     r.TotalPrice,
		Tax:            r.Tax,
		SellerProceeds: r.SellerProceeds,
		GoodsQueued:    r.GoodsQueued,
		Balance:        r.BuyerBalance,
		Remainder:      r.Remainder,
	}
}

// BatchPurchaseResult is the outcome of one purchase of a batch
type BatchPurchaseResult struct {
	ListingID uuid.UUID         `json:"listing_id"`
	Purchase  *PurchaseResponse `json:"purchase,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// BatchPurchaseResponse pairs every purchase of a batch with its outcome, in request order
type BatchPurchaseResponse struct {
	Results   []BatchPurchaseResult `json:"results"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// NewBatchPurchaseResponse converts batch purchase results
func NewBatchPurchaseResponse(results []market.BatchPurchaseResult) BatchPurchaseResponse {
	resp := BatchPurchaseResponse{Results: make([]BatchPurchaseResult, 0, len(results))}
	for _, r := range results {
		item := BatchPurchaseResult{ListingID: r.Request.ListingID}
		if r.Err != nil {
			item.Error = r.Err.Error()
			resp.Failed++
		} else {
			p := NewPurchaseResponse(r.Result)
			item.Purchase = &p
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}

// RecyclePreviewResponse lists the value of every submitted stack
type RecyclePreviewResponse struct {
	Total  int64   `json:"total"`
	Prices []int64 `json:"prices"`
}

// RecycleResponse describes a completed recycle
type RecycleResponse struct {
	Transactions []domain.TransactionRecord `json:"transactions"`
	Prices       []int64                    `json:"prices"`
	Rejected     []int                      `json:"rejected"`
	Total        int64                      `json:"total"`
	Capped       bool                       `json:"capped"`
	Balance      int64                      `json:"balance"`
}

// NewRecycleResponse converts a recycle result
func NewRecycleResponse(r *market.RecycleResult) RecycleResponse {
	resp := RecycleResponse{
		Transactions: r.Records,
		Prices:       r.Prices,
		Rejected:     r.Rejected,
		Total:        r.Total,
		Capped:       r.Capped,
		Balance:      r.Balance,
	}
	if resp.Transactions == nil {
		resp.Transactions = []domain.TransactionRecord{}
	}
	if resp.Rejected == nil {
		resp.Rejected = []int{}
	}
	return resp
}

// AccountResponse is the currency and goods state of an actor
type AccountResponse struct {
	ActorID       domain.ActorID `json:"actor_id"`
	Balance       int64          `json:"balance"`
	OfflineCredit int64          `json:"offline_credit"`
	PendingGoods  []domain.Goods `json:"pending_goods"`
	Present       bool           `json:"present"`
	Currency      string         `json:"currency"`
}

// DeliveryResponse describes what an actor received on joining
type DeliveryResponse struct {
	Credit   int64          `json:"credit"`
	Capped   bool           `json:"capped"`
	Goods    []domain.Goods `json:"goods"`
	Requeued []domain.Goods `json:"requeued"`
}

// NewDeliveryResponse converts a presence delivery
func NewDeliveryResponse(d *market.Delivery) DeliveryResponse {
	resp := DeliveryResponse{Goods: []domain.Goods{}, Requeued: []domain.Goods{}}
	if d == nil {
		return resp
	}
	resp.Credit = d.Credit
	resp.Capped = d.Capped
	if d.Goods != nil {
		resp.Goods = d.Goods
	}
	if d.Requeued != nil {
		resp.Requeued = d.Requeued
	}
	return resp
}

// StatsResponse summarizes the market
type StatsResponse struct {
	SystemRevenue int64   `json:"system_revenue"`
	Currency      string  `json:"currency"`
	TaxRate       float64 `json:"tax_rate"`
	RecycleRate   float64 `json:"recycle_rate"`
}
