package registry_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/mocks"
	"github.com/feral-file/ff-market/internal/registry"
)

type testListingsMocks struct {
	ctrl     *gomock.Controller
	clock    *mocks.MockClock
	returner *mocks.MockReturner
	now      atomic.Pointer[time.Time]
	registry registry.Listings
}

func setupTestListings(t *testing.T) *testListingsMocks {
	ctrl := gomock.NewController(t)

	cfg := config.DefaultEconomyConfig()
	cfg.MaxListingsPerOwner = 3
	cfg.MaxTradePrice = 10_000
	economy := config.StaticEconomy(cfg)

	tm := &testListingsMocks{
		ctrl:     ctrl,
		clock:    mocks.NewMockClock(ctrl),
		returner: mocks.NewMockReturner(ctrl),
	}

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tm.now.Store(&start)
	tm.clock.EXPECT().Now().DoAndReturn(func() time.Time { return *tm.now.Load() }).AnyTimes()

	blacklist := registry.NewBlacklistRegistry(economy, registry.BlacklistData{})
	tm.registry = registry.NewListings(economy, blacklist, tm.returner, nil, tm.clock, adapter.NewIDGenerator())
	return tm
}

func (tm *testListingsMocks) advance(d time.Duration) {
	next := tm.now.Load().Add(d)
	tm.now.Store(&next)
}

func tearDownTestListings(tm *testListingsMocks) {
	tm.ctrl.Finish()
}

func diamonds(quantity int) domain.Goods {
	return domain.Goods{ItemType: "minecraft:diamond", DisplayName: "Diamond", Quantity: quantity}
}

func TestListings_ListValidation(t *testing.T) {
	seller := domain.Actor{ID: uuid.New(), Name: "steve"}

	tests := []struct {
		name      string
		owner     domain.Actor
		goods     domain.Goods
		unitPrice int64
		expected  error
	}{
		{name: "missing owner", owner: domain.Actor{}, goods: diamonds(1), unitPrice: 10, expected: domain.ErrInvalidInput},
		{name: "missing item type", owner: seller, goods: domain.Goods{Quantity: 1}, unitPrice: 10, expected: domain.ErrInvalidInput},
		{name: "zero quantity", owner: seller, goods: diamonds(0), unitPrice: 10, expected: domain.ErrInvalidQuantity},
		{name: "zero price", owner: seller, goods: diamonds(1), unitPrice: 0, expected: domain.ErrInvalidPrice},
		{name: "negative price", owner: seller, goods: diamonds(1), unitPrice: -3, expected: domain.ErrInvalidPrice},
		{name: "price above maximum", owner: seller, goods: diamonds(1), unitPrice: 10_001, expected: domain.ErrPriceTooHigh},
		{name: "blacklisted item", owner: seller, goods: domain.Goods{ItemType: "MINECRAFT:BEDROCK", Quantity: 1}, unitPrice: 10, expected: domain.ErrItemBlacklisted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestListings(t)
			defer tearDownTestListings(tm)

			_, err := tm.registry.List(context.Background(), tt.owner, tt.goods, tt.unitPrice)

			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, 0, tm.registry.Count())
		})
	}
}

func TestListings_ListCopiesGoods(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	goods := diamonds(5)
	goods.Metadata = map[string]string{"lore": "shiny"}

	listing, err := tm.registry.List(context.Background(), domain.Actor{ID: uuid.New(), Name: "steve"}, goods, 100)
	require.NoError(t, err)

	goods.Quantity = 1
	goods.Metadata["lore"] = "dull"

	stored, ok := tm.registry.Get(listing.ID)
	require.True(t, ok)
	assert.Equal(t, 5, stored.Goods.Quantity)
	assert.Equal(t, "shiny", stored.Goods.Metadata["lore"])
	assert.True(t, stored.Active)
	assert.Equal(t, *tm.now.Load(), stored.CreatedAt)
}

func TestListings_MaxListingsPerOwner(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	owner := domain.Actor{ID: uuid.New(), Name: "steve"}

	var wg sync.WaitGroup
	var succeeded, rejected atomic.Int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tm.registry.List(context.Background(), owner, diamonds(1), 10)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrMaxListingsExceeded):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), succeeded.Load())
	assert.Equal(t, int32(17), rejected.Load())
	assert.Equal(t, 3, tm.registry.CountByOwner(owner.ID))

	// Another owner is not affected
	_, err := tm.registry.List(context.Background(), domain.Actor{ID: uuid.New(), Name: "alex"}, diamonds(1), 10)
	assert.NoError(t, err)
}

func TestListings_Unlist(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	ctx := context.Background()
	owner := domain.Actor{ID: uuid.New(), Name: "steve"}
	listing, err := tm.registry.List(ctx, owner, diamonds(4), 25)
	require.NoError(t, err)

	_, err = tm.registry.Unlist(ctx, listing.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = tm.registry.Unlist(ctx, uuid.New(), owner.ID)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	tm.returner.EXPECT().ReturnGoods(ctx, owner.ID, diamonds(4)).Times(1)

	removed, err := tm.registry.Unlist(ctx, listing.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, removed.ID)
	assert.Equal(t, 0, tm.registry.CountByOwner(owner.ID))

	_, ok := tm.registry.Get(listing.ID)
	assert.False(t, ok)
}

func TestListings_ConcurrentUnlistSucceedsOnce(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	ctx := context.Background()
	owner := domain.Actor{ID: uuid.New(), Name: "steve"}
	listing, err := tm.registry.List(ctx, owner, diamonds(1), 25)
	require.NoError(t, err)

	tm.returner.EXPECT().ReturnGoods(ctx, owner.ID, gomock.Any()).Times(1)

	var wg sync.WaitGroup
	var succeeded, notFound atomic.Int32
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tm.registry.Unlist(ctx, listing.ID, owner.ID)
			if err == nil {
				succeeded.Add(1)
			} else if errors.Is(err, domain.ErrListingNotFound) {
				notFound.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(15), notFound.Load())
}

func TestListings_UpdatePrice(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	ctx := context.Background()
	owner := domain.Actor{ID: uuid.New(), Name: "steve"}
	listing, err := tm.registry.List(ctx, owner, diamonds(2), 25)
	require.NoError(t, err)

	_, err = tm.registry.UpdatePrice(ctx, listing.ID, uuid.New(), 30)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = tm.registry.UpdatePrice(ctx, listing.ID, owner.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = tm.registry.UpdatePrice(ctx, uuid.New(), owner.ID, 30)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	updated, err := tm.registry.UpdatePrice(ctx, listing.ID, owner.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(30), updated.UnitPrice)
	assert.Equal(t, listing.ID, updated.ID)

	stored, _ := tm.registry.Get(listing.ID)
	assert.Equal(t, int64(30), stored.UnitPrice)
}

func TestListings_FulfillFull(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	ctx := context.Background()
	owner := domain.Actor{ID: uuid.New(), Name: "steve"}
	listing, err := tm.registry.List(ctx, owner, diamonds(3), 40)
	require.NoError(t, err)

	result, err := tm.registry.Fulfill(ctx, listing.ID, func(l domain.Listing) (int, error) {
		assert.Equal(t, listing.ID, l.ID)
		return 3, nil
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Quantity)
	assert.Nil(t, result.Remainder)
	assert.Equal(t, 0, tm.registry.Count())
}

func TestListings_FulfillPartialRelistsRemainder(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	ctx := context.Background()
	owner := domain.Actor{ID: uuid.New(), Name: "steve"}
	listing, err := tm.registry.List(ctx, owner, diamonds(5), 100)
	require.NoError(t, err)

	tm.advance(time.Minute)

	result, err := tm.registry.Fulfill(ctx, listing.ID, func(domain.Listing) (int, error) { return 2, nil })
	require.NoError(t, err)
	require.NotNil(t, result.Remainder)

	remainder := *result.Remainder
	assert.NotEqual(t, listing.ID, remainder.ID)
	assert.Equal(t, owner.ID, remainder.OwnerID)
	assert.Equal(t, int64(100), remainder.UnitPrice)
	assert.Equal(t, 3, remainder.Goods.Quantity)
	assert.Equal(t, listing.CreatedAt, remainder.CreatedAt)

	_, ok := tm.registry.Get(listing.ID)
	assert.False(t, ok, "old id is gone")
	stored, ok := tm.registry.Get(remainder.ID)
	assert.True(t, ok)
	assert.Equal(t, 3, stored.Goods.Quantity)
	assert.Equal(t, 1, tm.registry.CountByOwner(owner.ID))
}

func TestListings_FulfillErrorLeavesListing(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	ctx := context.Background()
	owner := domain.Actor{ID: uuid.New(), Name: "steve"}
	listing, err := tm.registry.List(ctx, owner, diamonds(5), 100)
	require.NoError(t, err)

	_, err = tm.registry.Fulfill(ctx, listing.ID, func(domain.Listing) (int, error) {
		return 0, domain.ErrInsufficientFunds
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	stored, ok := tm.registry.Get(listing.ID)
	require.True(t, ok)
	assert.Equal(t, 5, stored.Goods.Quantity)

	_, err = tm.registry.Fulfill(ctx, uuid.New(), func(domain.Listing) (int, error) { return 1, nil })
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestListings_ConcurrentFulfillSellsOnce(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	ctx := context.Background()
	owner := domain.Actor{ID: uuid.New(), Name: "steve"}
	listing, err := tm.registry.List(ctx, owner, diamonds(1), 50)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var calls, succeeded atomic.Int32
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tm.registry.Fulfill(ctx, listing.ID, func(l domain.Listing) (int, error) {
				calls.Add(1)
				return l.Goods.Quantity, nil
			})
			if err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "the sale callback runs once")
	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, 0, tm.registry.Count())
}

func TestListings_ExpireOlderThan(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	ctx := context.Background()
	owner := domain.Actor{ID: uuid.New(), Name: "steve"}

	old, err := tm.registry.List(ctx, owner, diamonds(1), 10)
	require.NoError(t, err)
	tm.advance(2 * time.Hour)
	fresh, err := tm.registry.List(ctx, owner, diamonds(2), 10)
	require.NoError(t, err)
	tm.advance(30 * time.Minute)

	tm.returner.EXPECT().ReturnGoods(ctx, owner.ID, diamonds(1)).Times(1)

	expired := tm.registry.ExpireOlderThan(ctx, time.Hour)

	require.Len(t, expired, 1)
	assert.Equal(t, old.ID, expired[0].ID)
	_, ok := tm.registry.Get(fresh.ID)
	assert.True(t, ok)
	assert.Empty(t, tm.registry.ExpireOlderThan(ctx, 0), "zero max age disables expiry")
}

func TestListings_Search(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	ctx := context.Background()
	steve := domain.Actor{ID: uuid.New(), Name: "Steve"}
	alex := domain.Actor{ID: uuid.New(), Name: "Alex"}

	sword, err := tm.registry.List(ctx, steve, domain.Goods{ItemType: "minecraft:diamond_sword", DisplayName: "Diamond Sword", Quantity: 1}, 300)
	require.NoError(t, err)
	tm.advance(time.Second)
	gems, err := tm.registry.List(ctx, alex, domain.Goods{ItemType: "minecraft:diamond", DisplayName: "Diamond", Quantity: 8}, 100)
	require.NoError(t, err)
	tm.advance(time.Second)
	apple, err := tm.registry.List(ctx, alex, domain.Goods{ItemType: "minecraft:golden_apple", DisplayName: "Golden Apple", Quantity: 2}, 100)
	require.NoError(t, err)

	ids := func(listings []domain.Listing) []uuid.UUID {
		result := make([]uuid.UUID, 0, len(listings))
		for _, l := range listings {
			result = append(result, l.ID)
		}
		return result
	}

	tests := []struct {
		name     string
		query    registry.Query
		expected []uuid.UUID
	}{
		{name: "newest first by default", query: registry.Query{}, expected: []uuid.UUID{apple.ID, gems.ID, sword.ID}},
		{name: "keyword on display name", query: registry.Query{Keyword: "DIAMOND", Sort: domain.SortNameAsc}, expected: []uuid.UUID{gems.ID, sword.ID}},
		{name: "keyword on owner name", query: registry.Query{Keyword: "stev"}, expected: []uuid.UUID{sword.ID}},
		{name: "price descending", query: registry.Query{Sort: domain.SortPriceDesc, Limit: 1}, expected: []uuid.UUID{sword.ID}},
		{name: "name descending", query: registry.Query{Sort: domain.SortNameDesc}, expected: []uuid.UUID{apple.ID, sword.ID, gems.ID}},
		{name: "price range", query: registry.Query{MinPrice: 150, MaxPrice: 500}, expected: []uuid.UUID{sword.ID}},
		{name: "owner filter", query: registry.Query{Owner: &alex.ID, Sort: domain.SortNewest}, expected: []uuid.UUID{apple.ID, gems.ID}},
		{name: "item type filter", query: registry.Query{ItemType: "Minecraft:Golden_Apple"}, expected: []uuid.UUID{apple.ID}},
		{name: "offset past the end", query: registry.Query{Offset: 10}, expected: []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(tm.registry.Search(tt.query)))
		})
	}

	// Equal prices fall back to the listing id
	asc := tm.registry.Search(registry.Query{Sort: domain.SortPriceAsc})
	require.Len(t, asc, 3)
	assert.Equal(t, sword.ID, asc[2].ID)
	assert.Negative(t, compareIDs(asc[0].ID, asc[1].ID))
}

func compareIDs(a, b uuid.UUID) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func TestListings_SnapshotRestore(t *testing.T) {
	tm := setupTestListings(t)
	defer tearDownTestListings(tm)

	ctx := context.Background()
	owner := domain.Actor{ID: uuid.New(), Name: "steve"}
	first, err := tm.registry.List(ctx, owner, diamonds(1), 10)
	require.NoError(t, err)
	tm.advance(time.Second)
	second, err := tm.registry.List(ctx, owner, diamonds(2), 20)
	require.NoError(t, err)

	snapshot := tm.registry.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, first.ID, snapshot[0].ID)
	assert.Equal(t, second.ID, snapshot[1].ID)

	restored := setupTestListings(t)
	defer tearDownTestListings(restored)
	restored.registry.Restore(snapshot)

	assert.Equal(t, 2, restored.registry.CountByOwner(owner.ID))
	got, ok := restored.registry.Get(second.ID)
	require.True(t, ok)
	assert.Equal(t, second, got)
}
