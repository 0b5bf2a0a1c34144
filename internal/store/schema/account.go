package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Account represents the accounts table - one row per actor the ledger knows
type Account struct {
	// ActorID is the actor uuid
	ActorID string `gorm:"column:actor_id;primaryKey;type:varchar(36)"`
	// Balance is the spendable balance
	Balance int64 `gorm:"column:balance;not null"`
	// OfflineCredit is currency earned while the actor was absent, not yet delivered
	OfflineCredit int64 `gorm:"column:offline_credit;not null;default:0"`
	// UpdatedAt is the time of the last save touching this row
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}

// PendingGoods represents the pending_goods table - goods waiting for an absent actor
type PendingGoods struct {
	ActorID string `gorm:"column:actor_id;primaryKey;type:varchar(36)"`
	// Goods is the list of stacks waiting for delivery, oldest first
	Goods     datatypes.JSON `gorm:"column:goods;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the PendingGoods model
func (PendingGoods) TableName() string {
	return "pending_goods"
}

// RecyclePrice represents the recycle_prices table - admin overrides of the recycle price table
type RecyclePrice struct {
	ItemType string `gorm:"column:item_type;primaryKey;type:varchar(255)"`
	// Price is the override, 0 removes the item from the default table
	Price int64 `gorm:"column:price;not null"`
}

// TableName specifies the table name for the RecyclePrice model
func (RecyclePrice) TableName() string {
	return "recycle_prices"
}
