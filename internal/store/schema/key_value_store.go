package schema

import "time"

// Keys of the market-wide scalars kept in the key value store
const (
	KeySystemRevenue = "system_revenue"
	KeyStateVersion  = "state_version"
	KeyStateTakenAt  = "state_taken_at"
)

// KeyValueStore stores arbitrary key-value pairs for market-wide state
// Used for storing system revenue, the snapshot version, etc.
type KeyValueStore struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}
