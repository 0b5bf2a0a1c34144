package config

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-market/internal/domain"
)

// EconomyConfig holds the engine settings that may change while the server runs
type EconomyConfig struct {
	MaxListingsPerOwner int           `mapstructure:"max_listings_per_owner"`
	MaxTradePrice       int64         `mapstructure:"max_trade_price"`
	MaxBalance          int64         `mapstructure:"max_balance"`
	InitialBalance      int64         `mapstructure:"initial_balance"`
	TaxRate             float64       `mapstructure:"tax_rate"`     // fraction of a sale kept by the system, in [0,1]
	RecycleRate         float64       `mapstructure:"recycle_rate"` // fraction of the base price paid on recycle, in [0,1]
	ListingTTL          time.Duration `mapstructure:"listing_ttl"`
	MaxTradeHistory     int           `mapstructure:"max_trade_history"`
	CurrencyName        string        `mapstructure:"currency_name"`
	ItemBlacklist       []string      `mapstructure:"item_blacklist"`
	RecycleBlacklist    []string      `mapstructure:"recycle_blacklist"`
	Admins              []string      `mapstructure:"admins"` // actor ids allowed to run admin commands
}

// DefaultEconomyConfig returns the economy settings used when nothing is configured
func DefaultEconomyConfig() EconomyConfig {
	return EconomyConfig{
		MaxListingsPerOwner: domain.DEFAULT_MAX_LISTINGS_PER_OWNER,
		MaxTradePrice:       domain.DEFAULT_MAX_TRADE_PRICE,
		MaxBalance:          domain.DEFAULT_MAX_BALANCE,
		InitialBalance:      domain.DEFAULT_INITIAL_BALANCE,
		TaxRate:             domain.DEFAULT_TAX_RATE,
		RecycleRate:         domain.DEFAULT_RECYCLE_RATE,
		ListingTTL:          7 * 24 * time.Hour,
		MaxTradeHistory:     domain.DEFAULT_MAX_TRADE_HISTORY,
		CurrencyName:        domain.DEFAULT_CURRENCY_NAME,
		ItemBlacklist:       append([]string(nil), domain.DefaultItemBlacklist...),
		RecycleBlacklist:    append([]string(nil), domain.DefaultItemBlacklist...),
	}
}

func setEconomyDefaults(v *viper.Viper) {
	d := DefaultEconomyConfig()
	v.SetDefault("economy.max_listings_per_owner", d.MaxListingsPerOwner)
	v.SetDefault("economy.max_trade_price", d.MaxTradePrice)
	v.SetDefault("economy.max_balance", d.MaxBalance)
	v.SetDefault("economy.initial_balance", d.InitialBalance)
	v.SetDefault("economy.tax_rate", d.TaxRate)
	v.SetDefault("economy.recycle_rate", d.RecycleRate)
	v.SetDefault("economy.listing_ttl", d.ListingTTL.String())
	v.SetDefault("economy.max_trade_history", d.MaxTradeHistory)
	v.SetDefault("economy.currency_name", d.CurrencyName)
	v.SetDefault("economy.item_blacklist", d.ItemBlacklist)
	v.SetDefault("economy.recycle_blacklist", d.RecycleBlacklist)
	v.SetDefault("economy.admins", []string{})
}

// Normalize lowercases item types and trims admin ids
func (c *EconomyConfig) Normalize() {
	for i, item := range c.ItemBlacklist {
		c.ItemBlacklist[i] = strings.ToLower(strings.TrimSpace(item))
	}
	for i, item := range c.RecycleBlacklist {
		c.RecycleBlacklist[i] = strings.ToLower(strings.TrimSpace(item))
	}
	for i, admin := range c.Admins {
		c.Admins[i] = strings.TrimSpace(admin)
	}
}

// Validate checks the economy settings for values the engine cannot work with
func (c *EconomyConfig) Validate() error {
	var errs []error
	if c.MaxListingsPerOwner <= 0 {
		errs = append(errs, errors.New("max_listings_per_owner must be positive"))
	}
	if c.MaxTradePrice <= 0 {
		errs = append(errs, errors.New("max_trade_price must be positive"))
	}
	if c.MaxBalance <= 0 {
		errs = append(errs, errors.New("max_balance must be positive"))
	}
	if c.InitialBalance < 0 || c.InitialBalance > c.MaxBalance {
		errs = append(errs, fmt.Errorf("initial_balance must be within [0, %d]", c.MaxBalance))
	}
	if c.TaxRate < 0 || c.TaxRate > 1 {
		errs = append(errs, errors.New("tax_rate must be within [0, 1]"))
	}
	if c.RecycleRate < 0 || c.RecycleRate > 1 {
		errs = append(errs, errors.New("recycle_rate must be within [0, 1]"))
	}
	if c.ListingTTL < 0 {
		errs = append(errs, errors.New("listing_ttl must not be negative"))
	}
	if c.MaxTradeHistory <= 0 {
		errs = append(errs, errors.New("max_trade_history must be positive"))
	}
	for _, admin := range c.Admins {
		if _, err := uuid.Parse(admin); err != nil {
			errs = append(errs, fmt.Errorf("admin %q is not a valid actor id", admin))
		}
	}
	return errors.Join(errs...)
}

// EconomyProvider returns the economy settings in effect
//
//go:generate mockgen -source=economy.go -destination=../mocks/economy.go -package=mocks -mock_names=EconomyProvider=MockEconomyProvider
type EconomyProvider interface {
	Economy() EconomyConfig
}

// EconomyStore is an EconomyProvider whose settings can be swapped atomically on reload
type EconomyStore struct {
	current atomic.Pointer[EconomyConfig]
}

// NewEconomyStore creates a store holding the initial settings
func NewEconomyStore(initial EconomyConfig) *EconomyStore {
	s := &EconomyStore{}
	s.Set(initial)
	return s
}

// Economy returns the settings in effect
func (s *EconomyStore) Economy() EconomyConfig {
	return *s.current.Load()
}

// Set replaces the settings in effect
func (s *EconomyStore) Set(cfg EconomyConfig) {
	s.current.Store(&cfg)
}

// StaticEconomy is an EconomyProvider that never changes
type StaticEconomy EconomyConfig

// Economy returns the static settings
func (s StaticEconomy) Economy() EconomyConfig {
	return EconomyConfig(s)
}
