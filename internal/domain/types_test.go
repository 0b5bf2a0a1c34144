package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-market/internal/domain"
)

func TestGoods_Clone(t *testing.T) {
	original := domain.Goods{
		ItemType:     "minecraft:diamond_sword",
		Quantity:     1,
		Enchantments: []domain.Enchantment{{ID: "sharpness", Level: 3, MaxLevel: 5}},
		Metadata:     map[string]string{"lore": "old"},
	}

	clone := original.Clone()
	clone.Enchantments[0].Level = 5
	clone.Metadata["lore"] = "new"

	assert.Equal(t, 3, original.Enchantments[0].Level)
	assert.Equal(t, "old", original.Metadata["lore"])
}

func TestGoods_WithQuantity(t *testing.T) {
	g := domain.Goods{ItemType: "minecraft:diamond", Quantity: 5}

	c := g.WithQuantity(2)

	assert.Equal(t, 2, c.Quantity)
	assert.Equal(t, 5, g.Quantity)
	assert.True(t, g.SameKind(c))
	assert.False(t, g.Equal(c))
}

func TestGoods_SameKind(t *testing.T) {
	base := domain.Goods{
		ItemType: "minecraft:diamond_sword",
		Quantity: 1,
		Enchantments: []domain.Enchantment{
			{ID: "sharpness", Level: 3, MaxLevel: 5},
			{ID: "unbreaking", Level: 1, MaxLevel: 3},
		},
	}

	tests := []struct {
		name     string
		other    domain.Goods
		expected bool
	}{
		{
			name: "enchantments in different order",
			other: domain.Goods{
				ItemType: "MINECRAFT:DIAMOND_SWORD",
				Quantity: 3,
				Enchantments: []domain.Enchantment{
					{ID: "unbreaking", Level: 1, MaxLevel: 3},
					{ID: "sharpness", Level: 3, MaxLevel: 5},
				},
			},
			expected: true,
		},
		{
			name: "different enchantment level",
			other: domain.Goods{
				ItemType: "minecraft:diamond_sword",
				Enchantments: []domain.Enchantment{
					{ID: "sharpness", Level: 4, MaxLevel: 5},
					{ID: "unbreaking", Level: 1, MaxLevel: 3},
				},
			},
			expected: false,
		},
		{
			name:     "different metadata",
			other:    domain.Goods{ItemType: "minecraft:diamond_sword", Enchantments: base.Enchantments, Metadata: map[string]string{"a": "b"}},
			expected: false,
		},
		{
			name:     "different damage",
			other:    domain.Goods{ItemType: "minecraft:diamond_sword", Enchantments: base.Enchantments, Damage: 4},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base.SameKind(tt.other))
		})
	}
}

func TestListing_IsExpired(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	l := domain.Listing{CreatedAt: now.Add(-48 * time.Hour)}

	assert.True(t, l.IsExpired(now, 24*time.Hour))
	assert.False(t, l.IsExpired(now, 72*time.Hour))
	assert.False(t, l.IsExpired(now, 48*time.Hour), "age equal to ttl is not expired")
	assert.False(t, l.IsExpired(now, 0), "zero ttl disables expiry")
}

func TestTransactionRecord_KindFor(t *testing.T) {
	seller := uuid.New()
	buyer := uuid.New()

	sale := domain.TransactionRecord{SellerID: seller, BuyerID: buyer, Kind: domain.TransactionKindBuy}
	assert.Equal(t, domain.TransactionKindSell, sale.KindFor(seller))
	assert.Equal(t, domain.TransactionKindBuy, sale.KindFor(buyer))
	assert.True(t, sale.Involves(seller))
	assert.False(t, sale.Involves(uuid.New()))

	recycle := domain.TransactionRecord{SellerID: seller, BuyerID: domain.SystemActorID, Kind: domain.TransactionKindRecycle}
	assert.Equal(t, domain.TransactionKindRecycle, recycle.KindFor(seller))
}

func TestIsUserError(t *testing.T) {
	assert.True(t, domain.IsUserError(domain.ErrInsufficientFunds))
	assert.True(t, domain.IsUserError(fmt.Errorf("purchase: %w", domain.ErrListingNotFound)))
	assert.False(t, domain.IsUserError(assert.AnError))
	assert.False(t, domain.IsUserError(nil))
}
