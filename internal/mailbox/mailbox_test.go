package mailbox_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/mailbox"
)

func TestMailbox_DrainOnce(t *testing.T) {
	m := mailbox.New()
	actor := uuid.New()

	m.Enqueue(actor, domain.Goods{ItemType: "minecraft:diamond", Quantity: 3})
	m.Enqueue(actor, domain.Goods{ItemType: "minecraft:emerald", Quantity: 1})
	m.Enqueue(actor, domain.Goods{ItemType: "minecraft:dirt", Quantity: 0})

	assert.Len(t, m.Pending(actor), 2)

	drained := m.Drain(actor)
	require.Len(t, drained, 2)
	assert.Equal(t, "minecraft:diamond", drained[0].ItemType)

	assert.Empty(t, m.Drain(actor))
	assert.Empty(t, m.Pending(actor))
}

func TestMailbox_ConcurrentDrainDeliversEachStackOnce(t *testing.T) {
	m := mailbox.New()
	actor := uuid.New()
	for i := 0; i < 50; i++ {
		m.Enqueue(actor, domain.Goods{ItemType: "minecraft:diamond", Quantity: 1})
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := len(m.Drain(actor))
			mu.Lock()
			total += n
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, total)
}

func TestMailbox_SnapshotRestore(t *testing.T) {
	m := mailbox.New()
	a, b := uuid.New(), uuid.New()
	goods := domain.Goods{ItemType: "minecraft:diamond", Quantity: 2, Metadata: map[string]string{"k": "v"}}
	m.Enqueue(a, goods)
	m.Enqueue(b, goods)

	goods.Metadata["k"] = "changed"

	snapshot := m.Snapshot()
	require.Len(t, snapshot, 2)

	restored := mailbox.New()
	restored.Restore(snapshot)
	pending := restored.Pending(a)
	require.Len(t, pending, 1)
	assert.Equal(t, "v", pending[0].Metadata["k"])
	assert.Len(t, restored.Pending(b), 1)
}
