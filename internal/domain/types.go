package domain

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActorID is the opaque identity of a market participant
type ActorID = uuid.UUID

// Actor pairs an identity with the display name the host resolved for it
type Actor struct {
	ID   ActorID `json:"id"`
	Name string  `json:"name"`
}

// Enchantment is a modifier carried by goods (e.g. sharpness 3 of 5)
type Enchantment struct {
	ID       string `json:"id"`
	Level    int    `json:"level"`
	MaxLevel int    `json:"max_level"`
}

// Goods describes a tradable stack of a single item type.
// Goods are values: every hand-off goes through Clone so that no two owners share mutable state.
type Goods struct {
	ItemType     string            `json:"item_type"`              // e.g. "minecraft:diamond"
	DisplayName  string            `json:"display_name"`           // name shown to players and used by search
	Quantity     int               `json:"quantity"`               // number of units in the stack
	Damage       int               `json:"damage,omitempty"`       // wear taken so far
	MaxDamage    int               `json:"max_damage,omitempty"`   // 0 when the item has no durability
	Enchantments []Enchantment     `json:"enchantments,omitempty"` // modifiers, order is not significant
	Metadata     map[string]string `json:"metadata,omitempty"`     // opaque host metadata
}

// Clone returns a deep copy of the goods
func (g Goods) Clone() Goods {
	c := g
	if g.Enchantments != nil {
		c.Enchantments = slices.Clone(g.Enchantments)
	}
	if g.Metadata != nil {
		c.Metadata = maps.Clone(g.Metadata)
	}
	return c
}

// WithQuantity returns a deep copy of the goods holding the given quantity
func (g Goods) WithQuantity(quantity int) Goods {
	c := g.Clone()
	c.Quantity = quantity
	return c
}

// IsDamageable reports whether the item type carries a durability attribute
func (g Goods) IsDamageable() bool {
	return g.MaxDamage > 0
}

// Name returns the display name, falling back to the item type
func (g Goods) Name() string {
	if g.DisplayName != "" {
		return g.DisplayName
	}
	return g.ItemType
}

// SameKind reports whether two stacks describe the same item, ignoring quantity
func (g Goods) SameKind(other Goods) bool {
	if !strings.EqualFold(g.ItemType, other.ItemType) ||
		g.Damage != other.Damage ||
		g.MaxDamage != other.MaxDamage ||
		!maps.Equal(g.Metadata, other.Metadata) ||
		len(g.Enchantments) != len(other.Enchantments) {
		return false
	}

	// Enchantment order is not significant
	for _, e := range g.Enchantments {
		if !slices.Contains(other.Enchantments, e) {
			return false
		}
	}

	return true
}

// Equal reports whether two stacks are the same item in the same quantity
func (g Goods) Equal(other Goods) bool {
	return g.Quantity == other.Quantity && g.SameKind(other)
}

// Listing is a player-owned offer of goods at a unit price
type Listing struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   ActorID   `json:"owner_id"`
	OwnerName string    `json:"owner_name"`
	Goods     Goods     `json:"goods"`
	UnitPrice int64     `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `json:"active"`
}

// Clone returns a deep copy of the listing
func (l Listing) Clone() Listing {
	c := l
	c.Goods = l.Goods.Clone()
	return c
}

// TotalPrice returns the price of buying quantity units; ok is false when it overflows
func (l Listing) TotalPrice(quantity int) (int64, bool) {
	return TotalPrice(l.UnitPrice, quantity)
}

// IsExpired reports whether the listing is older than ttl at the given time
func (l Listing) IsExpired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(l.CreatedAt) > ttl
}

// CatalogEntry is an admin-owned, unlimited-stock offer in the system shop
type CatalogEntry struct {
	ID              uuid.UUID `json:"id"`
	Goods           Goods     `json:"goods"`
	UnitPrice       int64     `json:"unit_price"`
	NominalQuantity int       `json:"nominal_quantity"` // display only, supply is unlimited
	Active          bool      `json:"active"`
	CreatedBy       ActorID   `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	LastModified    time.Time `json:"last_modified"`
}

// Clone returns a deep copy of the catalog entry
func (e CatalogEntry) Clone() CatalogEntry {
	c := e
	c.Goods = e.Goods.Clone()
	return c
}

// TransactionKind is the kind of a transaction record
type TransactionKind string

const (
	TransactionKindBuy     TransactionKind = "BUY"
	TransactionKindSell    TransactionKind = "SELL"
	TransactionKindRecycle TransactionKind = "RECYCLE"
)

// IsValid checks if the transaction kind is known
func (k TransactionKind) IsValid() bool {
	return k == TransactionKindBuy || k == TransactionKindSell || k == TransactionKindRecycle
}

// TransactionRecord is an immutable entry of the trade history
type TransactionRecord struct {
	ID         string          `json:"id"` // ULID, sortable by creation time
	SellerID   ActorID         `json:"seller_id"`
	SellerName string          `json:"seller_name"`
	BuyerID    ActorID         `json:"buyer_id"`
	BuyerName  string          `json:"buyer_name"`
	Goods      Goods           `json:"goods"`
	Price      int64           `json:"price"`
	Tax        int64           `json:"tax"`
	Timestamp  time.Time       `json:"timestamp"`
	Kind       TransactionKind `json:"kind"`
}

// Involves reports whether the actor took part in the transaction
func (r TransactionRecord) Involves(actor ActorID) bool {
	return r.SellerID == actor || r.BuyerID == actor
}

// KindFor returns the kind of the record from the given actor's perspective.
// A sale is a BUY for the buyer and a SELL for the seller.
func (r TransactionRecord) KindFor(actor ActorID) TransactionKind {
	if r.Kind == TransactionKindRecycle {
		return r.Kind
	}
	if r.SellerID == actor && r.BuyerID != actor {
		return TransactionKindSell
	}
	return TransactionKindBuy
}

// OfflineCredit is currency owed to an actor that was absent when it was earned
type OfflineCredit struct {
	ActorID ActorID `json:"actor_id"`
	Amount  int64   `json:"amount"`
}

// PendingGoods are goods waiting to be handed back to an absent actor
type PendingGoods struct {
	ActorID ActorID `json:"actor_id"`
	Goods   []Goods `json:"goods"`
}

// SortOrder is the ordering of listing search results
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortNameAsc   SortOrder = "name_asc"
	SortNameDesc  SortOrder = "name_desc"
)

// IsValid checks if the sort order is known
func (s SortOrder) IsValid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return true
	default:
		return false
	}
}

// EventKind is the kind of a market notification
type EventKind string

const (
	EventKindListingCreated   EventKind = "listing.created"
	EventKindListingRemoved   EventKind = "listing.removed"
	EventKindListingUpdated   EventKind = "listing.updated"
	EventKindListingSold      EventKind = "listing.sold"
	EventKindListingExpired   EventKind = "listing.expired"
	EventKindBalanceChanged   EventKind = "balance.changed"
	EventKindCatalogChanged   EventKind = "catalog.changed"
	EventKindOfflineDelivered EventKind = "offline.delivered"
	EventKindGoodsDelivered   EventKind = "goods.delivered"

	// Commands asking the host application to move goods in an actor's holdings
	EventKindInventoryGive   EventKind = "inventory.give"
	EventKindInventoryDrop   EventKind = "inventory.drop"
	EventKindInventoryRemove EventKind = "inventory.remove"
)

// EventScope is the audience of a market notification
type EventScope string

const (
	EventScopeActor EventScope = "actor"
	EventScopeAll   EventScope = "all"
)

// MarketEvent is a fire-and-forget notification sent to observers
type MarketEvent struct {
	ID        string         `json:"id"` // ULID
	Kind      EventKind      `json:"kind"`
	Scope     EventScope     `json:"scope"`
	ActorID   *ActorID       `json:"actor_id,omitempty"` // set when Scope is actor
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
}
