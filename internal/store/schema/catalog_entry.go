package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CatalogEntry represents the catalog_entries table - the system shop
type CatalogEntry struct {
	ID              string         `gorm:"column:id;primaryKey;type:varchar(36)"`
	Goods           datatypes.JSON `gorm:"column:goods;not null"`
	UnitPrice       int64          `gorm:"column:unit_price;not null"`
	NominalQuantity int            `gorm:"column:nominal_quantity;not null"`
	Active          bool           `gorm:"column:active;not null"`
	CreatedBy       string         `gorm:"column:created_by;not null;type:varchar(36)"`
	CreatedAt       time.Time      `gorm:"column:created_at;not null;autoCreateTime:false"`
	LastModified    time.Time      `gorm:"column:last_modified;not null"`
}

// TableName specifies the table name for the CatalogEntry model
func (CatalogEntry) TableName() string {
	return "catalog_entries"
}
