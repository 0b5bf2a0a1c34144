package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/mocks"
	"github.com/feral-file/ff-market/internal/registry"
)

func TestBlacklistRegistryLoader_Load(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		setupMocks   func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr  string // Error message to assert, empty means no error expected
		validateFunc func(t *testing.T, reg registry.BlacklistRegistry)
	}{
		{
			name: "successful load with valid JSON",
			path: "blacklist.json",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("blacklist.json").
					Return([]byte(`{
					"listing": ["minecraft:spawner", "minecraft:end_portal_frame"],
					"recycle": ["minecraft:elytra"]
				}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			expectedErr: "",
			validateFunc: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.True(t, reg.IsListingBlacklisted("minecraft:spawner"))
				assert.True(t, reg.IsListingBlacklisted("minecraft:end_portal_frame"))
				assert.False(t, reg.IsListingBlacklisted("minecraft:elytra"))
				assert.True(t, reg.IsRecycleBlacklisted("minecraft:elytra"))
				assert.False(t, reg.IsRecycleBlacklisted("minecraft:spawner"))
			},
		},
		{
			name: "successful load with empty blacklist",
			path: "blacklist.json",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("blacklist.json").
					Return([]byte(`{}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			expectedErr: "",
			validateFunc: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.False(t, reg.IsListingBlacklisted("minecraft:diamond"))
				assert.False(t, reg.IsRecycleBlacklisted("minecraft:diamond"))
			},
		},
		{
			name:        "empty path skips the file",
			path:        "",
			expectedErr: "",
			validateFunc: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.False(t, reg.IsListingBlacklisted("minecraft:spawner"))
			},
		},
		{
			name: "file read error",
			path: "blacklist.json",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("blacklist.json").
					Return(nil, assert.AnError)
			},
			expectedErr: "failed to read blacklist file",
		},
		{
			name: "JSON parse error",
			path: "blacklist.json",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				blacklistJSON := []byte(`invalid json`)
				mockFS.
					EXPECT().
					ReadFile("blacklist.json").
					Return(blacklistJSON, nil)
				mockJSON.
					EXPECT().
					Unmarshal(blacklistJSON, gomock.Any()).
					Return(assert.AnError)
			},
			expectedErr: "failed to parse blacklist JSON",
		},
		{
			name: "case insensitive lookup",
			path: "blacklist.json",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("blacklist.json").
					Return([]byte(`{"listing": ["Minecraft:Spawner"]}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			expectedErr: "",
			validateFunc: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.True(t, reg.IsListingBlacklisted("minecraft:spawner"))
				assert.True(t, reg.IsListingBlacklisted("MINECRAFT:SPAWNER"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJSON := mocks.NewMockJSON(ctrl)

			if tt.setupMocks != nil {
				tt.setupMocks(mockFS, mockJSON)
			}

			loader := registry.NewBlacklistRegistryLoader(mockFS, mockJSON, nil)
			reg, err := loader.Load(tt.path)

			if tt.expectedErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, reg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, reg)
				if tt.validateFunc != nil {
					tt.validateFunc(t, reg)
				}
			}
		})
	}
}

func TestBlacklistRegistry_CombinesEconomyLists(t *testing.T) {
	store := config.NewEconomyStore(config.DefaultEconomyConfig())
	reg := registry.NewBlacklistRegistry(store, registry.BlacklistData{
		Listing: []string{"minecraft:spawner"},
	})

	tests := []struct {
		name     string
		check    func(string) bool
		itemType string
		expected bool
	}{
		{name: "file listing entry", check: reg.IsListingBlacklisted, itemType: "minecraft:spawner", expected: true},
		{name: "economy listing entry", check: reg.IsListingBlacklisted, itemType: "minecraft:bedrock", expected: true},
		{name: "economy entry is case insensitive", check: reg.IsListingBlacklisted, itemType: "Minecraft:Barrier", expected: true},
		{name: "economy recycle entry", check: reg.IsRecycleBlacklisted, itemType: "minecraft:command_block", expected: true},
		{name: "file listing entry does not block recycling", check: reg.IsRecycleBlacklisted, itemType: "minecraft:spawner", expected: false},
		{name: "tradable item", check: reg.IsListingBlacklisted, itemType: "minecraft:diamond", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.check(tt.itemType))
		})
	}

	// Reloaded economy settings apply without rebuilding the registry
	updated := config.DefaultEconomyConfig()
	updated.ItemBlacklist = []string{"minecraft:diamond"}
	store.Set(updated)

	assert.True(t, reg.IsListingBlacklisted("minecraft:diamond"))
	assert.False(t, reg.IsListingBlacklisted("minecraft:bedrock"))
}
