package recycle_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/mocks"
	"github.com/feral-file/ff-market/internal/recycle"
	"github.com/feral-file/ff-market/internal/registry"
)

func newEngine(rate float64) recycle.Engine {
	cfg := config.DefaultEconomyConfig()
	cfg.RecycleRate = rate
	economy := config.StaticEconomy(cfg)
	blacklist := registry.NewBlacklistRegistry(economy, registry.BlacklistData{Recycle: []string{"minecraft:elytra"}})
	return recycle.NewEngine(economy, blacklist, adapter.NewFileSystem(), adapter.NewJSON())
}

func TestEngine_PreviewPrice(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		custom   map[string]int64
		goods    domain.Goods
		expected int64
	}{
		{
			name:     "half durability at half rate",
			rate:     0.5,
			custom:   map[string]int64{"minecraft:iron_sword": 20},
			goods:    domain.Goods{ItemType: "minecraft:iron_sword", Quantity: 1, Damage: 125, MaxDamage: 250},
			expected: 5,
		},
		{
			name:     "stack of undamaged goods",
			rate:     0.5,
			goods:    domain.Goods{ItemType: "minecraft:diamond", Quantity: 3},
			expected: 150,
		},
		{
			name:     "item type lookup is case insensitive",
			rate:     0.5,
			goods:    domain.Goods{ItemType: "Minecraft:Diamond", Quantity: 1},
			expected: 50,
		},
		{
			name:     "unknown item is worthless",
			rate:     0.5,
			goods:    domain.Goods{ItemType: "minecraft:dirt", Quantity: 64},
			expected: 0,
		},
		{
			name: "enchantment bonus added before the rate",
			rate: 0.5,
			goods: domain.Goods{
				ItemType:     "minecraft:diamond_sword",
				Quantity:     1,
				MaxDamage:    1561,
				Enchantments: []domain.Enchantment{{ID: "sharpness", Level: 3, MaxLevel: 5}, {ID: "mending", Level: 1, MaxLevel: 1}},
			},
			// (200 + 3*5*10 + 1*1*10) * 0.5
			expected: 180,
		},
		{
			name:     "fully broken item still earns its enchantments",
			rate:     0.5,
			goods:    domain.Goods{ItemType: "minecraft:diamond_sword", Quantity: 1, Damage: 1561, MaxDamage: 1561, Enchantments: []domain.Enchantment{{ID: "unbreaking", Level: 1, MaxLevel: 3}}},
			expected: 15,
		},
		{
			name:     "fully broken plain item is worthless",
			rate:     0.5,
			goods:    domain.Goods{ItemType: "minecraft:diamond_sword", Quantity: 1, Damage: 1561, MaxDamage: 1561},
			expected: 0,
		},
		{
			name:     "small value floored at one",
			rate:     0.1,
			goods:    domain.Goods{ItemType: "minecraft:bread", Quantity: 1},
			expected: 1,
		},
		{
			name:     "zero rate pays nothing",
			rate:     0,
			goods:    domain.Goods{ItemType: "minecraft:diamond", Quantity: 1},
			expected: 0,
		},
		{
			name:     "non-positive quantity pays nothing",
			rate:     0.5,
			goods:    domain.Goods{ItemType: "minecraft:diamond", Quantity: 0},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(tt.rate)
			for itemType, price := range tt.custom {
				require.NoError(t, engine.SetCustomPrice(itemType, price))
			}

			price := engine.PreviewPrice(tt.goods)

			assert.Equal(t, tt.expected, price)
			assert.Equal(t, price, engine.PreviewPrice(tt.goods), "preview must be deterministic")
		})
	}
}

func TestEngine_PriceNeverExceedsBaseValue(t *testing.T) {
	for _, rate := range []float64{0, 0.1, 0.33, 0.5, 0.99, 1} {
		engine := newEngine(rate)
		for itemType, base := range recycle.DefaultPriceTable() {
			for _, quantity := range []int{1, 7, 64} {
				goods := domain.Goods{ItemType: itemType, Quantity: quantity}
				price := engine.PreviewPrice(goods)
				assert.LessOrEqual(t, price, base*int64(quantity), "%s x%d at rate %v", itemType, quantity, rate)
				assert.GreaterOrEqual(t, price, int64(0))
			}
		}
	}
}

func TestEngine_IsRecyclable(t *testing.T) {
	engine := newEngine(0.5)

	assert.True(t, engine.IsRecyclable(domain.Goods{ItemType: "minecraft:diamond", Quantity: 1}))
	assert.False(t, engine.IsRecyclable(domain.Goods{ItemType: "minecraft:dirt", Quantity: 1}), "no base price")
	assert.False(t, engine.IsRecyclable(domain.Goods{ItemType: "minecraft:elytra", Quantity: 1}), "blacklisted by file")
	assert.False(t, engine.IsRecyclable(domain.Goods{ItemType: "minecraft:bedrock", Quantity: 1}), "no base price and blacklisted")

	require.NoError(t, engine.SetCustomPrice("minecraft:bedrock", 10))
	assert.False(t, engine.IsRecyclable(domain.Goods{ItemType: "minecraft:bedrock", Quantity: 1}), "blacklisted by economy")
}

func TestEngine_CustomPrices(t *testing.T) {
	engine := newEngine(0.5)

	assert.ErrorIs(t, engine.SetCustomPrice("minecraft:dirt", 0), domain.ErrInvalidPrice)
	assert.ErrorIs(t, engine.SetCustomPrice(" ", 5), domain.ErrInvalidInput)

	require.NoError(t, engine.SetCustomPrice("Minecraft:Dirt", 2))
	price, ok := engine.BasePrice("minecraft:dirt")
	assert.True(t, ok)
	assert.Equal(t, int64(2), price)

	require.NoError(t, engine.SetCustomPrice("minecraft:diamond", 150))
	price, _ = engine.BasePrice("minecraft:diamond")
	assert.Equal(t, int64(150), price)

	assert.True(t, engine.RemovePrice("minecraft:emerald"))
	_, ok = engine.BasePrice("minecraft:emerald")
	assert.False(t, ok)
	assert.False(t, engine.RemovePrice("minecraft:emerald"))

	items := engine.RecyclableItems()
	assert.Equal(t, int64(2), items["minecraft:dirt"])
	assert.Equal(t, int64(150), items["minecraft:diamond"])
	assert.NotContains(t, items, "minecraft:emerald")

	custom := engine.CustomPrices()
	assert.Equal(t, map[string]int64{"minecraft:dirt": 2, "minecraft:diamond": 150, "minecraft:emerald": 0}, custom)

	restored := newEngine(0.5)
	restored.RestoreCustomPrices(custom)
	assert.Equal(t, items, restored.RecyclableItems())

	restored.ResetPrices()
	assert.Equal(t, recycle.DefaultPriceTable(), restored.RecyclableItems())
}

func TestEngine_PreviewBatch(t *testing.T) {
	engine := newEngine(0.5)

	total, prices := engine.PreviewBatch([]domain.Goods{
		{ItemType: "minecraft:diamond", Quantity: 2},
		{ItemType: "minecraft:dirt", Quantity: 64},
		{ItemType: "minecraft:elytra", Quantity: 1},
		{ItemType: "minecraft:gold_ingot", Quantity: 1},
	})

	assert.Equal(t, []int64{100, 0, 0, 25}, prices)
	assert.Equal(t, int64(125), total)
}

func TestEngine_LoadPriceTable(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr string
		validate    func(*testing.T, recycle.Engine)
	}{
		{
			name: "overrides applied",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("prices.json").Return([]byte(`{"minecraft:dirt": 1, "minecraft:diamond": 0}`), nil)
				mockJSON.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).DoAndReturn(func(data []byte, v interface{}) error {
					return json.Unmarshal(data, v)
				})
			},
			validate: func(t *testing.T, engine recycle.Engine) {
				price, ok := engine.BasePrice("minecraft:dirt")
				assert.True(t, ok)
				assert.Equal(t, int64(1), price)
				_, ok = engine.BasePrice("minecraft:diamond")
				assert.False(t, ok, "zero disables a default price")
			},
		},
		{
			name: "negative price rejected",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("prices.json").Return([]byte(`{"minecraft:dirt": -1}`), nil)
				mockJSON.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).DoAndReturn(func(data []byte, v interface{}) error {
					return json.Unmarshal(data, v)
				})
			},
			expectedErr: "invalid recycle price",
		},
		{
			name: "file read error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("prices.json").Return(nil, assert.AnError)
			},
			expectedErr: "failed to read recycle price file",
		},
		{
			name: "JSON parse error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("prices.json").Return([]byte(`nope`), nil)
				mockJSON.EXPECT().Unmarshal([]byte(`nope`), gomock.Any()).Return(assert.AnError)
			},
			expectedErr: "failed to parse recycle price JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJSON := mocks.NewMockJSON(ctrl)
			tt.setupMocks(mockFS, mockJSON)

			engine := recycle.NewEngine(config.StaticEconomy(config.DefaultEconomyConfig()), nil, mockFS, mockJSON)
			err := engine.LoadPriceTable("prices.json")

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Empty(t, engine.CustomPrices())
				return
			}
			require.NoError(t, err)
			tt.validate(t, engine)
		})
	}
}
