package schema

import (
	"time"

	"gorm.io/datatypes"
)

// TransactionKind mirrors domain.TransactionKind in the database
type TransactionKind string

const (
	TransactionKindBuy     TransactionKind = "BUY"
	TransactionKindSell    TransactionKind = "SELL"
	TransactionKindRecycle TransactionKind = "RECYCLE"
)

// Transaction represents the transactions table - the trade history archive.
// Rows are only ever inserted: the in-memory history evicts old records, the archive keeps them.
type Transaction struct {
	// ID is the ULID of the record, sortable by creation time
	ID         string `gorm:"column:id;primaryKey;type:varchar(26)"`
	SellerID   string `gorm:"column:seller_id;not null;type:varchar(36);index:idx_transactions_seller"`
	SellerName string `gorm:"column:seller_name;not null;type:varchar(255)"`
	BuyerID    string `gorm:"column:buyer_id;not null;type:varchar(36);index:idx_transactions_buyer"`
	BuyerName  string `gorm:"column:buyer_name;not null;type:varchar(255)"`
	// ItemType and Quantity are denormalized from Goods for ad-hoc queries
	ItemType string         `gorm:"column:item_type;not null;type:varchar(255)"`
	Quantity int            `gorm:"column:quantity;not null"`
	Goods    datatypes.JSON `gorm:"column:goods;not null"`
	// Price is the total paid, tax included
	Price int64           `gorm:"column:price;not null"`
	Tax   int64           `gorm:"column:tax;not null;default:0"`
	Kind  TransactionKind `gorm:"column:kind;not null;type:varchar(16)"`
	// Timestamp is the time the transaction completed
	Timestamp time.Time `gorm:"column:timestamp;not null;index:idx_transactions_timestamp"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// Models lists every table of the market schema, in migration order
func Models() []any {
	return []any{
		&KeyValueStore{},
		&Listing{},
		&CatalogEntry{},
		&Account{},
		&PendingGoods{},
		&RecyclePrice{},
		&Transaction{},
	}
}
