package recycle

import (
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
)

// Blacklist reports item types that may not be recycled
type Blacklist interface {
	IsRecycleBlacklisted(itemType string) bool
}

// Engine computes the currency paid by the system for recycled goods.
// Pricing never mutates the ledger; callers credit the actor themselves.
//
//go:generate mockgen -source=recycle.go -destination=../mocks/recycle.go -package=mocks -mock_names=Engine=MockRecycleEngine
type Engine interface {
	// PreviewPrice returns the recycle value of the goods, 0 when they are worthless or unknown
	PreviewPrice(goods domain.Goods) int64

	// PreviewBatch returns the value of every stack and their sum
	PreviewBatch(goods []domain.Goods) (total int64, prices []int64)

	// IsRecyclable reports whether the item type has a base price and is not blacklisted for recycling
	IsRecyclable(goods domain.Goods) bool

	// BasePrice returns the base unit price of an item type
	BasePrice(itemType string) (int64, bool)

	// SetCustomPrice overrides the base unit price of an item type
	SetCustomPrice(itemType string, price int64) error

	// RemovePrice makes an item type unrecyclable; it reports whether the item type had a price
	RemovePrice(itemType string) bool

	// RecyclableItems returns the effective base price table
	RecyclableItems() map[string]int64

	// CustomPrices returns the overrides applied on top of the default table; 0 marks a removed item type
	CustomPrices() map[string]int64

	// RestoreCustomPrices replaces the overrides
	RestoreCustomPrices(prices map[string]int64)

	// ResetPrices drops every override and returns to the default table
	ResetPrices()

	// LoadPriceTable reads overrides from a JSON object of item type -> base price
	LoadPriceTable(path string) error
}

type engine struct {
	economy   config.EconomyProvider
	blacklist Blacklist
	fs        adapter.FileSystem
	json      adapter.JSON

	defaults map[string]int64

	mu     sync.RWMutex
	custom map[string]int64
}

// NewEngine creates a pricing engine backed by the default price table. blacklist may be nil.
func NewEngine(
	economy config.EconomyProvider,
	blacklist Blacklist,
	fs adapter.FileSystem,
	json adapter.JSON,
) Engine {
	return &engine{
		economy:   economy,
		blacklist: blacklist,
		fs:        fs,
		json:      json,
		defaults:  DefaultPriceTable(),
		custom:    make(map[string]int64),
	}
}

func normalize(itemType string) string {
	return strings.ToLower(strings.TrimSpace(itemType))
}

func (e *engine) BasePrice(itemType string) (int64, bool) {
	itemType = normalize(itemType)

	e.mu.RLock()
	price, overridden := e.custom[itemType]
	e.mu.RUnlock()

	if overridden {
		return price, price > 0
	}

	price, ok := e.defaults[itemType]
	return price, ok
}

func (e *engine) IsRecyclable(goods domain.Goods) bool {
	if _, ok := e.BasePrice(goods.ItemType); !ok {
		return false
	}
	return e.blacklist == nil || !e.blacklist.IsRecycleBlacklisted(goods.ItemType)
}

func (e *engine) PreviewPrice(goods domain.Goods) int64 {
	base, ok := e.BasePrice(goods.ItemType)
	if !ok || goods.Quantity <= 0 {
		return 0
	}

	value := decimal.NewFromInt(base).Mul(decimal.NewFromInt(int64(goods.Quantity)))

	if goods.IsDamageable() {
		maxDamage := int64(goods.MaxDamage)
		damage := min(max(int64(goods.Damage), 0), maxDamage)
		value, _ = value.Mul(decimal.NewFromInt(maxDamage - damage)).QuoRem(decimal.NewFromInt(maxDamage), 0)
	}

	for _, ench := range goods.Enchantments {
		if ench.Level <= 0 || ench.MaxLevel <= 0 {
			continue
		}
		bonus := int64(ench.Level) * int64(ench.MaxLevel) * domain.ENCHANTMENT_BONUS_FACTOR
		value = value.Add(decimal.NewFromInt(bonus))
	}

	value = value.Mul(domain.Rate(e.economy.Economy().RecycleRate))
	if !value.IsPositive() {
		return 0
	}

	return max(domain.ToAmount(value.Floor()), 1)
}

func (e *engine) PreviewBatch(goods []domain.Goods) (int64, []int64) {
	var total int64
	prices := make([]int64, len(goods))
	for i, g := range goods {
		if !e.IsRecyclable(g) {
			continue
		}
		prices[i] = e.PreviewPrice(g)
		total += prices[i]
	}
	return total, prices
}

func (e *engine) SetCustomPrice(itemType string, price int64) error {
	itemType = normalize(itemType)
	if itemType == "" {
		return fmt.Errorf("%w: item type is required", domain.ErrInvalidInput)
	}
	if price <= 0 {
		return domain.ErrInvalidPrice
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.custom[itemType] = price
	return nil
}

func (e *engine) RemovePrice(itemType string) bool {
	itemType = normalize(itemType)
	_, had := e.BasePrice(itemType)

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, isDefault := e.defaults[itemType]; isDefault {
		e.custom[itemType] = 0
	} else {
		delete(e.custom, itemType)
	}
	return had
}

func (e *engine) RecyclableItems() map[string]int64 {
	items := maps.Clone(e.defaults)

	e.mu.RLock()
	defer e.mu.RUnlock()

	for itemType, price := range e.custom {
		if price > 0 {
			items[itemType] = price
		} else {
			delete(items, itemType)
		}
	}
	return items
}

func (e *engine) CustomPrices() map[string]int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.custom)
}

func (e *engine) RestoreCustomPrices(prices map[string]int64) {
	custom := make(map[string]int64, len(prices))
	for itemType, price := range prices {
		if price < 0 {
			continue
		}
		custom[normalize(itemType)] = price
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.custom = custom
}

func (e *engine) ResetPrices() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.custom = make(map[string]int64)
}

func (e *engine) LoadPriceTable(path string) error {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read recycle price file: %w", err)
	}

	var table map[string]int64
	if err := e.json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("failed to parse recycle price JSON: %w", err)
	}

	for itemType, price := range table {
		if price < 0 {
			return fmt.Errorf("invalid recycle price %d for %s", price, itemType)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for itemType, price := range table {
		e.custom[normalize(itemType)] = price
	}
	return nil
}
