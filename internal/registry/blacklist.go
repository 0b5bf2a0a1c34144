package registry

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/config"
)

// BlacklistRegistry defines the interface for item blacklist lookups
//
//go:generate mockgen -source=blacklist.go -destination=../mocks/blacklist_registry.go -package=mocks -mock_names=BlacklistRegistry=MockBlacklistRegistry,BlacklistRegistryLoader=MockBlacklistRegistryLoader
type BlacklistRegistry interface {
	// IsListingBlacklisted checks if an item type may not be listed on the market
	IsListingBlacklisted(itemType string) bool

	// IsRecycleBlacklisted checks if an item type may not be recycled
	IsRecycleBlacklisted(itemType string) bool
}

// BlacklistRegistryLoader loads a blacklist registry from a file
type BlacklistRegistryLoader interface {
	Load(filePath string) (BlacklistRegistry, error)
}

// BlacklistData represents the structure of the blacklist.json file
type BlacklistData struct {
	Listing []string `json:"listing"`
	Recycle []string `json:"recycle"`
}

// blacklistRegistry combines the file entries with the economy lists in effect
type blacklistRegistry struct {
	economy config.EconomyProvider
	// Fast lookup maps: lowercase item type -> true
	listing map[string]bool
	recycle map[string]bool
}

type blacklistRegistryLoader struct {
	fs      adapter.FileSystem
	json    adapter.JSON
	economy config.EconomyProvider
}

// NewBlacklistRegistryLoader creates a loader. economy may be nil, in which case only the file entries apply.
func NewBlacklistRegistryLoader(fs adapter.FileSystem, json adapter.JSON, economy config.EconomyProvider) BlacklistRegistryLoader {
	return &blacklistRegistryLoader{
		fs:      fs,
		json:    json,
		economy: economy,
	}
}

// Load loads the blacklist registry from a JSON file. An empty path yields a registry backed by the economy lists only.
func (l *blacklistRegistryLoader) Load(filePath string) (BlacklistRegistry, error) {
	if filePath == "" {
		return NewBlacklistRegistry(l.economy, BlacklistData{}), nil
	}

	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read blacklist file: %w", err)
	}

	var blacklistData BlacklistData
	if err := l.json.Unmarshal(data, &blacklistData); err != nil {
		return nil, fmt.Errorf("failed to parse blacklist JSON: %w", err)
	}

	return NewBlacklistRegistry(l.economy, blacklistData), nil
}

// NewBlacklistRegistry builds a registry from explicit data
func NewBlacklistRegistry(economy config.EconomyProvider, data BlacklistData) BlacklistRegistry {
	return &blacklistRegistry{
		economy: economy,
		listing: lookup(data.Listing),
		recycle: lookup(data.Recycle),
	}
}

func lookup(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, item := range items {
		m[strings.ToLower(strings.TrimSpace(item))] = true
	}
	return m
}

func (b *blacklistRegistry) IsListingBlacklisted(itemType string) bool {
	if b == nil {
		return false
	}
	itemType = strings.ToLower(itemType)
	if b.listing[itemType] {
		return true
	}
	return b.economy != nil && contains(b.economy.Economy().ItemBlacklist, itemType)
}

func (b *blacklistRegistry) IsRecycleBlacklisted(itemType string) bool {
	if b == nil {
		return false
	}
	itemType = strings.ToLower(itemType)
	if b.recycle[itemType] {
		return true
	}
	return b.economy != nil && contains(b.economy.Economy().RecycleBlacklist, itemType)
}

func contains(items []string, itemType string) bool {
	for _, item := range items {
		if strings.EqualFold(item, itemType) {
			return true
		}
	}
	return false
}
