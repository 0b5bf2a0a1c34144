package domain

import "github.com/google/uuid"

const (
	// Economy defaults
	DEFAULT_MAX_LISTINGS_PER_OWNER = 10
	DEFAULT_MAX_TRADE_PRICE        = 1_000_000
	DEFAULT_MAX_BALANCE            = 10_000_000
	DEFAULT_INITIAL_BALANCE        = 1_000
	DEFAULT_TAX_RATE               = 0.05
	DEFAULT_RECYCLE_RATE           = 0.5
	DEFAULT_MAX_TRADE_HISTORY      = 1_000
	DEFAULT_CURRENCY_NAME          = "coins"

	// SYSTEM_SHOP_NAME is the seller name recorded for system catalog purchases
	SYSTEM_SHOP_NAME = "System Shop"

	// ENCHANTMENT_BONUS_FACTOR is the currency bonus per (level x max level) point of a modifier
	ENCHANTMENT_BONUS_FACTOR = 10
)

// DefaultItemBlacklist lists item types that can never be listed or recycled
var DefaultItemBlacklist = []string{
	"minecraft:bedrock",
	"minecraft:barrier",
	"minecraft:command_block",
}

// SystemActorID identifies the system shop as a transaction counterparty
var SystemActorID = uuid.Nil
