package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/domain"
)

// InitStore returns a clean store for one test
type InitStore func(t *testing.T, historyLimit int) Store

// RunStoreTests runs the store contract against an implementation
func RunStoreTests(t *testing.T, initStore InitStore) {
	t.Run("LoadState_Empty", func(t *testing.T) {
		testLoadStateEmpty(t, initStore(t, 100))
	})
	t.Run("SaveState_RoundTrip", func(t *testing.T) {
		testSaveStateRoundTrip(t, initStore(t, 100))
	})
	t.Run("SaveState_ReplacesRows", func(t *testing.T) {
		testSaveStateReplacesRows(t, initStore(t, 100))
	})
	t.Run("SaveState_ArchivesHistory", func(t *testing.T) {
		testSaveStateArchivesHistory(t, initStore(t, 2))
	})
	t.Run("SaveState_Nil", func(t *testing.T) {
		err := initStore(t, 100).SaveState(context.Background(), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("QueryTransactions", func(t *testing.T) {
		testQueryTransactions(t, initStore(t, 100))
	})
}

// =============================================================================
// Test Data Builders
// =============================================================================

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func buildTestGoods(itemType string, quantity int) domain.Goods {
	return domain.Goods{
		ItemType:    itemType,
		DisplayName: itemType,
		Quantity:    quantity,
		Enchantments: []domain.Enchantment{
			{ID: "unbreaking", Level: 2, MaxLevel: 3},
		},
		Metadata: map[string]string{"lore": "test"},
	}
}

func buildTestListing(owner domain.ActorID, itemType string, createdAt time.Time) domain.Listing {
	return domain.Listing{
		ID:        uuid.New(),
		OwnerID:   owner,
		OwnerName: "seller",
		Goods:     buildTestGoods(itemType, 16),
		UnitPrice: 25,
		CreatedAt: createdAt,
		Active:    true,
	}
}

func buildTestRecord(id string, seller, buyer domain.ActorID, kind domain.TransactionKind, ts time.Time) domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:         id,
		SellerID:   seller,
		SellerName: "seller",
		BuyerID:    buyer,
		BuyerName:  "buyer",
		Goods:      buildTestGoods("minecraft:diamond", 4),
		Price:      100,
		Tax:        5,
		Timestamp:  ts,
		Kind:       kind,
	}
}

func buildTestState() *State {
	seller := uuid.New()
	buyer := uuid.New()
	admin := uuid.New()

	return &State{
		Listings: []domain.Listing{
			buildTestListing(seller, "minecraft:diamond", baseTime),
			buildTestListing(seller, "minecraft:emerald", baseTime.Add(time.Minute)),
		},
		Catalog: []domain.CatalogEntry{
			{
				ID:              uuid.New(),
				Goods:           buildTestGoods("minecraft:bread", 1),
				UnitPrice:       3,
				NominalQuantity: 64,
				Active:          false,
				CreatedBy:       admin,
				CreatedAt:       baseTime,
				LastModified:    baseTime.Add(time.Hour),
			},
		},
		Balances: map[domain.ActorID]int64{
			seller: 1500,
			buyer:  250,
		},
		OfflineCredits: map[domain.ActorID]int64{
			seller: 95,
		},
		PendingGoods: []domain.PendingGoods{
			{ActorID: buyer, Goods: []domain.Goods{buildTestGoods("minecraft:iron_ingot", 8)}},
		},
		History: []domain.TransactionRecord{
			buildTestRecord("01J00000000000000000000001", seller, buyer, domain.TransactionKindBuy, baseTime),
			buildTestRecord("01J00000000000000000000002", buyer, domain.SystemActorID, domain.TransactionKindRecycle, baseTime.Add(time.Second)),
		},
		Revenue:       42,
		RecyclePrices: map[string]int64{"minecraft:iron_sword": 20, "minecraft:bread": 0},
		Version:       7,
		TakenAt:       baseTime.Add(2 * time.Hour),
	}
}

// =============================================================================
// Tests
// =============================================================================

func testLoadStateEmpty(t *testing.T, store Store) {
	state, err := store.LoadState(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state)
}

func testSaveStateRoundTrip(t *testing.T, store Store) {
	ctx := context.Background()
	saved := buildTestState()

	require.NoError(t, store.SaveState(ctx, saved))

	loaded, err := store.LoadState(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, saved.Version, loaded.Version)
	assert.Equal(t, saved.Revenue, loaded.Revenue)
	assert.True(t, saved.TakenAt.Equal(loaded.TakenAt))
	assert.Equal(t, saved.Balances, loaded.Balances)
	assert.Equal(t, saved.OfflineCredits, loaded.OfflineCredits)
	assert.Equal(t, saved.RecyclePrices, loaded.RecyclePrices)

	require.Len(t, loaded.Listings, 2)
	for i, l := range loaded.Listings {
		assert.Equal(t, saved.Listings[i].ID, l.ID)
		assert.Equal(t, saved.Listings[i].OwnerID, l.OwnerID)
		assert.True(t, saved.Listings[i].Goods.Equal(l.Goods))
		assert.Equal(t, saved.Listings[i].UnitPrice, l.UnitPrice)
		assert.True(t, saved.Listings[i].CreatedAt.Equal(l.CreatedAt))
		assert.True(t, l.Active)
	}

	require.Len(t, loaded.Catalog, 1)
	assert.Equal(t, saved.Catalog[0].ID, loaded.Catalog[0].ID)
	assert.False(t, loaded.Catalog[0].Active)
	assert.Equal(t, 64, loaded.Catalog[0].NominalQuantity)
	assert.True(t, saved.Catalog[0].LastModified.Equal(loaded.Catalog[0].LastModified))

	require.Len(t, loaded.PendingGoods, 1)
	assert.Equal(t, saved.PendingGoods[0].ActorID, loaded.PendingGoods[0].ActorID)
	require.Len(t, loaded.PendingGoods[0].Goods, 1)
	assert.True(t, saved.PendingGoods[0].Goods[0].Equal(loaded.PendingGoods[0].Goods[0]))

	require.Len(t, loaded.History, 2)
	assert.Equal(t, saved.History[0].ID, loaded.History[0].ID)
	assert.Equal(t, saved.History[1].ID, loaded.History[1].ID)
	assert.Equal(t, domain.TransactionKindRecycle, loaded.History[1].Kind)
	assert.Equal(t, int64(5), loaded.History[0].Tax)
}

func testSaveStateReplacesRows(t *testing.T, store Store) {
	ctx := context.Background()
	first := buildTestState()
	require.NoError(t, store.SaveState(ctx, first))

	// A sale removed the first listing, the catalog was emptied and the mailbox drained
	second := buildTestState()
	second.Listings = first.Listings[1:]
	second.Listings[0].UnitPrice = 30
	second.Catalog = nil
	second.PendingGoods = nil
	second.RecyclePrices = map[string]int64{}
	second.Balances = map[domain.ActorID]int64{first.Listings[0].OwnerID: 10}
	second.OfflineCredits = nil
	second.Version = 8
	require.NoError(t, store.SaveState(ctx, second))

	loaded, err := store.LoadState(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, uint64(8), loaded.Version)
	require.Len(t, loaded.Listings, 1)
	assert.Equal(t, first.Listings[1].ID, loaded.Listings[0].ID)
	assert.Equal(t, int64(30), loaded.Listings[0].UnitPrice)
	assert.Empty(t, loaded.Catalog)
	assert.Empty(t, loaded.PendingGoods)
	assert.Empty(t, loaded.RecyclePrices)
	assert.Equal(t, map[domain.ActorID]int64{first.Listings[0].OwnerID: 10}, loaded.Balances)
	assert.Empty(t, loaded.OfflineCredits)
}

func testSaveStateArchivesHistory(t *testing.T, store Store) {
	ctx := context.Background()
	seller := uuid.New()
	buyer := uuid.New()

	state := buildTestState()
	state.History = []domain.TransactionRecord{
		buildTestRecord("01J00000000000000000000001", seller, buyer, domain.TransactionKindBuy, baseTime),
		buildTestRecord("01J00000000000000000000002", seller, buyer, domain.TransactionKindBuy, baseTime.Add(time.Second)),
	}
	require.NoError(t, store.SaveState(ctx, state))

	// The in-memory history evicted the oldest record; the archive keeps it
	state.History = []domain.TransactionRecord{
		state.History[1],
		buildTestRecord("01J00000000000000000000003", seller, buyer, domain.TransactionKindBuy, baseTime.Add(2*time.Second)),
	}
	require.NoError(t, store.SaveState(ctx, state))

	archived, err := store.QueryTransactions(ctx, TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, archived, 3)
	assert.Equal(t, "01J00000000000000000000003", archived[0].ID)
	assert.Equal(t, "01J00000000000000000000001", archived[2].ID)

	// LoadState only reads back the newest records, oldest first
	loaded, err := store.LoadState(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.History, 2)
	assert.Equal(t, "01J00000000000000000000002", loaded.History[0].ID)
	assert.Equal(t, "01J00000000000000000000003", loaded.History[1].ID)
}

func testQueryTransactions(t *testing.T, store Store) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	state := buildTestState()
	state.History = []domain.TransactionRecord{
		buildTestRecord("01J00000000000000000000001", alice, bob, domain.TransactionKindBuy, baseTime),
		buildTestRecord("01J00000000000000000000002", bob, carol, domain.TransactionKindBuy, baseTime.Add(time.Hour)),
		buildTestRecord("01J00000000000000000000003", alice, domain.SystemActorID, domain.TransactionKindRecycle, baseTime.Add(2*time.Hour)),
	}
	require.NoError(t, store.SaveState(ctx, state))

	recycle := domain.TransactionKindRecycle
	since := baseTime.Add(30 * time.Minute)
	until := baseTime.Add(90 * time.Minute)

	tests := []struct {
		name     string
		filter   TransactionFilter
		expected []string
	}{
		{
			name:     "all newest first",
			filter:   TransactionFilter{},
			expected: []string{"01J00000000000000000000003", "01J00000000000000000000002", "01J00000000000000000000001"},
		},
		{
			name:     "by actor on either side",
			filter:   TransactionFilter{Actor: &bob},
			expected: []string{"01J00000000000000000000002", "01J00000000000000000000001"},
		},
		{
			name:     "by kind",
			filter:   TransactionFilter{Kind: &recycle},
			expected: []string{"01J00000000000000000000003"},
		},
		{
			name:     "by time window",
			filter:   TransactionFilter{Since: &since, Until: &until},
			expected: []string{"01J00000000000000000000002"},
		},
		{
			name:     "paged",
			filter:   TransactionFilter{Limit: 1, Offset: 1},
			expected: []string{"01J00000000000000000000002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := store.QueryTransactions(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(records))
			for _, r := range records {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestCalculateSafeBatchSize(t *testing.T) {
	assert.Equal(t, 10, calculateSafeBatchSize(10, 8))
	assert.Equal(t, 64535/8, calculateSafeBatchSize(100000, 8))
	assert.Equal(t, 0, calculateSafeBatchSize(0, 3))
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 20, open)
	assert.Equal(t, 5, idle)
	assert.Equal(t, 5*time.Minute, lifetime)
	assert.Equal(t, 10*time.Minute, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(4, 10, time.Minute, time.Minute)
	assert.Equal(t, 4, open)
	assert.Equal(t, 4, idle)
}
