package history_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/history"
)

func sale(i int, seller, buyer uuid.UUID) domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:        fmt.Sprintf("tx-%03d", i),
		SellerID:  seller,
		BuyerID:   buyer,
		Goods:     domain.Goods{ItemType: "minecraft:diamond", Quantity: 1},
		Price:     int64(10 * i),
		Timestamp: time.Unix(int64(i), 0).UTC(),
		Kind:      domain.TransactionKindBuy,
	}
}

func ids(records []domain.TransactionRecord) []string {
	result := make([]string, 0, len(records))
	for _, r := range records {
		result = append(result, r.ID)
	}
	return result
}

func TestHistory_EvictsOldestBeyondCapacity(t *testing.T) {
	h := history.New(func() int { return 3 })
	a, b := uuid.New(), uuid.New()

	for i := 1; i <= 5; i++ {
		h.Append(sale(i, a, b))
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"tx-005", "tx-004", "tx-003"}, ids(h.Recent(0)))
	assert.Equal(t, []string{"tx-005", "tx-004"}, ids(h.Recent(2)))
	assert.Equal(t, []string{"tx-005", "tx-004", "tx-003"}, ids(h.ForActor(a, 10)))
}

func TestHistory_ForActorPerspective(t *testing.T) {
	h := history.New(func() int { return 100 })
	seller, buyer, other := uuid.New(), uuid.New(), uuid.New()

	h.Append(sale(1, seller, buyer))
	h.Append(sale(2, other, buyer))
	h.Append(domain.TransactionRecord{
		ID:       "tx-003",
		SellerID: seller,
		BuyerID:  domain.SystemActorID,
		Kind:     domain.TransactionKindRecycle,
	})

	sellerView := h.ForActor(seller, 0)
	require.Len(t, sellerView, 2)
	assert.Equal(t, "tx-003", sellerView[0].ID)
	assert.Equal(t, domain.TransactionKindRecycle, sellerView[0].Kind)
	assert.Equal(t, domain.TransactionKindSell, sellerView[1].Kind)

	buyerView := h.ForActor(buyer, 0)
	assert.Equal(t, []string{"tx-002", "tx-001"}, ids(buyerView))
	for _, r := range buyerView {
		assert.Equal(t, domain.TransactionKindBuy, r.Kind)
	}

	assert.Equal(t, []string{"tx-002"}, ids(h.ForActor(buyer, 1)))
	assert.Empty(t, h.ForActor(uuid.New(), 5))

	// The stored record keeps its own kind
	assert.Equal(t, domain.TransactionKindBuy, h.Recent(3)[2].Kind)
}

func TestHistory_EvictionUpdatesActorIndex(t *testing.T) {
	h := history.New(func() int { return 2 })
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	h.Append(sale(1, a, b))
	h.Append(sale(2, b, c))
	h.Append(sale(3, c, a))

	assert.Equal(t, []string{"tx-003"}, ids(h.ForActor(a, 0)))
	assert.Equal(t, []string{"tx-002"}, ids(h.ForActor(b, 0)))
	assert.Equal(t, []string{"tx-003", "tx-002"}, ids(h.ForActor(c, 0)))
}

func TestHistory_Since(t *testing.T) {
	h := history.New(func() int { return 10 })
	a, b := uuid.New(), uuid.New()
	for i := 1; i <= 4; i++ {
		h.Append(sale(i, a, b))
	}

	assert.Equal(t, []string{"tx-003", "tx-004"}, ids(h.Since("tx-002")))
	assert.Empty(t, h.Since("tx-004"))
	assert.Len(t, h.Since(""), 4)
	assert.Len(t, h.Since("unknown"), 4)
}

func TestHistory_RecordsAreCopies(t *testing.T) {
	h := history.New(func() int { return 10 })
	record := sale(1, uuid.New(), uuid.New())
	record.Goods.Metadata = map[string]string{"lore": "a"}
	h.Append(record)

	record.Goods.Metadata["lore"] = "b"
	got := h.Recent(1)[0]
	assert.Equal(t, "a", got.Goods.Metadata["lore"])

	got.Goods.Metadata["lore"] = "c"
	assert.Equal(t, "a", h.Recent(1)[0].Goods.Metadata["lore"])
}

func TestHistory_SnapshotRestore(t *testing.T) {
	h := history.New(func() int { return 10 })
	a, b := uuid.New(), uuid.New()
	for i := 1; i <= 4; i++ {
		h.Append(sale(i, a, b))
	}

	snapshot := h.Snapshot()
	assert.Equal(t, []string{"tx-001", "tx-002", "tx-003", "tx-004"}, ids(snapshot))

	smaller := history.New(func() int { return 2 })
	smaller.Restore(snapshot)
	assert.Equal(t, []string{"tx-003", "tx-004"}, ids(smaller.Snapshot()))
	assert.Equal(t, []string{"tx-004", "tx-003"}, ids(smaller.ForActor(b, 0)))
}
