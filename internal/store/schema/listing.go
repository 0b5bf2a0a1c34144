package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Listing represents the listings table - player offers currently on the market
type Listing struct {
	// ID is the listing uuid
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// OwnerID is the uuid of the seller
	OwnerID string `gorm:"column:owner_id;not null;type:varchar(36);index:idx_listings_owner"`
	// OwnerName is the seller's display name at listing time
	OwnerName string `gorm:"column:owner_name;not null;type:varchar(255)"`
	// ItemType is denormalized from Goods for ad-hoc queries
	ItemType string `gorm:"column:item_type;not null;type:varchar(255);index:idx_listings_item_type"`
	// Goods is the listed stack
	Goods datatypes.JSON `gorm:"column:goods;not null"`
	// UnitPrice is the price of a single unit
	UnitPrice int64 `gorm:"column:unit_price;not null"`
	// Active is false for listings that cannot be bought
	Active bool `gorm:"column:active;not null"`
	// CreatedAt is the listing time, kept across partial sales
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
