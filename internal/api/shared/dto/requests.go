package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-market/internal/api/shared/errors"
	"github.com/feral-file/ff-market/internal/domain"
)

// CreateListingRequest represents the request body for listing goods on the market
type CreateListingRequest struct {
	Goods     domain.Goods `json:"goods"`
	UnitPrice int64        `json:"unit_price"`
	// TakeFromInventory asks the host to remove the goods from the actor's holdings first
	TakeFromInventory bool `json:"take_from_inventory"`
}

// Validate validates the request body
func (r *CreateListingRequest) Validate() error {
	if err := validateGoods(r.Goods); err != nil {
		return err
	}
	if r.UnitPrice <= 0 {
		return apierrors.NewValidationError("unit_price must be positive")
	}
	return nil
}

// UpdatePriceRequest represents the request body for repricing a listing or a catalog entry
type UpdatePriceRequest struct {
	UnitPrice int64 `json:"unit_price"`
}

// Validate validates the request body
func (r *UpdatePriceRequest) Validate() error {
	if r.UnitPrice <= 0 {
		return apierrors.NewValidationError("unit_price must be positive")
	}
	return nil
}

// PurchaseRequest represents the request body for buying from a listing or the system shop
type PurchaseRequest struct {
	Quantity int `json:"quantity"`
}

// Validate validates the request body
func (r *PurchaseRequest) Validate() error {
	if r.Quantity <= 0 {
		return apierrors.NewValidationError("quantity must be positive")
	}
	if r.Quantity > constants.MAX_GOODS_QUANTITY {
		return apierrors.NewValidationError(fmt.Sprintf("quantity must be at most %d", constants.MAX_GOODS_QUANTITY))
	}
	return nil
}

// BatchPurchaseItem is a single purchase of a batch
type BatchPurchaseItem struct {
	ListingID uuid.UUID `json:"listing_id"`
	Quantity  int       `json:"quantity"`
}

// BatchPurchaseRequest represents the request body for buying from several listings at once
type BatchPurchaseRequest struct {
	Purchases []BatchPurchaseItem `json:"purchases"`
}

// Validate validates the request body
func (r *BatchPurchaseRequest) Validate() error {
	if len(r.Purchases) == 0 {
		return apierrors.NewValidationError("purchases is required")
	}
	if len(r.Purchases) > constants.MAX_BATCH_PURCHASES {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d purchases allowed", constants.MAX_BATCH_PURCHASES))
	}
	for i, p := range r.Purchases {
		if p.ListingID == uuid.Nil {
			return apierrors.NewValidationError(fmt.Sprintf("purchases[%d]: listing_id is required", i))
		}
		if p.Quantity <= 0 {
			return apierrors.NewValidationError(fmt.Sprintf("purchases[%d]: quantity must be positive", i))
		}
		if p.Quantity > constants.MAX_GOODS_QUANTITY {
			return apierrors.NewValidationError(fmt.Sprintf("purchases[%d]: quantity must be at most %d", i, constants.MAX_GOODS_QUANTITY))
		}
	}
	return nil
}

// RecycleRequest represents the request body for recycling or previewing goods
type RecycleRequest struct {
	Goods []domain.Goods `json:"goods"`
	// TakeFromInventory asks the host to remove the goods from the actor's holdings first.
	// It is ignored by the preview.
	TakeFromInventory bool `json:"take_from_inventory"`
}

// Validate validates the request body
func (r *RecycleRequest) Validate() error {
	if len(r.Goods) == 0 {
		return apierrors.NewValidationError("goods is required")
	}
	if len(r.Goods) > constants.MAX_RECYCLE_STACKS {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d stacks allowed", constants.MAX_RECYCLE_STACKS))
	}
	for _, g := range r.Goods {
		if err := validateGoods(g); err != nil {
			return err
		}
	}
	return nil
}

// CreateCatalogEntryRequest represents the request body for adding goods to the system shop
type CreateCatalogEntryRequest struct {
	Goods           domain.Goods `json:"goods"`
	UnitPrice       int64        `json:"unit_price"`
	NominalQuantity int          `json:"nominal_quantity"`
}

// Validate validates the request body
func (r *CreateCatalogEntryRequest) Validate() error {
	if err := validateGoods(r.Goods); err != nil {
		return err
	}
	if r.UnitPrice <= 0 {
		return apierrors.NewValidationError("unit_price must be positive")
	}
	if r.NominalQuantity <= 0 {
		return apierrors.NewValidationError("nominal_quantity must be positive")
	}
	return nil
}

// UpdateCatalogEntryRequest represents the request body for changing a catalog entry.
// Only the fields that are set are changed.
type UpdateCatalogEntryRequest struct {
	UnitPrice       *int64 `json:"unit_price"`
	NominalQuantity *int   `json:"nominal_quantity"`
}

// Validate validates the request body
func (r *UpdateCatalogEntryRequest) Validate() error {
	if r.UnitPrice == nil && r.NominalQuantity == nil {
		return apierrors.NewValidationError("unit_price or nominal_quantity is required")
	}
	if r.UnitPrice != nil && *r.UnitPrice <= 0 {
		return apierrors.NewValidationError("unit_price must be positive")
	}
	if r.NominalQuantity != nil && *r.NominalQuantity <= 0 {
		return apierrors.NewValidationError("nominal_quantity must be positive")
	}
	return nil
}

// SetBalanceRequest represents the request body for overwriting an actor's balance
type SetBalanceRequest struct {
	Balance int64 `json:"balance"`
}

// Validate validates the request body
func (r *SetBalanceRequest) Validate() error {
	if r.Balance < 0 {
		return apierrors.NewValidationError("balance must not be negative")
	}
	return nil
}

// SetRecyclePriceRequest represents the request body for overriding a recycle base price
type SetRecyclePriceRequest struct {
	Price int64 `json:"price"`
}

// Validate validates the request body
func (r *SetRecyclePriceRequest) Validate() error {
	if r.Price <= 0 {
		return apierrors.NewValidationError("price must be positive")
	}
	return nil
}

// PresenceRequest represents the request body for reporting an actor joining or leaving
type PresenceRequest struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// Validate validates the request body
func (r *PresenceRequest) Validate() error {
	if r.Present && strings.TrimSpace(r.Name) == "" {
		return apierrors.NewValidationError("name is required when present")
	}
	return nil
}

func validateGoods(g domain.Goods) error {
	if strings.TrimSpace(g.ItemType) == "" {
		return apierrors.NewValidationError("goods.item_type is required")
	}
	if len(g.ItemType) > constants.MAX_ITEM_TYPE_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("goods.item_type must be at most %d characters", constants.MAX_ITEM_TYPE_LENGTH))
	}
	if g.Quantity <= 0 {
		return apierrors.NewValidationError("goods.quantity must be positive")
	}
	if g.Quantity > constants.MAX_GOODS_QUANTITY {
		return apierrors.NewValidationError(fmt.Sprintf("goods.quantity must be at most %d", constants.MAX_GOODS_QUANTITY))
	}
	return nil
}
