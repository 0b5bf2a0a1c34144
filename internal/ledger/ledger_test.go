package ledger_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/ledger"
	"github.com/feral-file/ff-market/internal/mocks"
)

func testEconomy() config.StaticEconomy {
	cfg := config.DefaultEconomyConfig()
	cfg.InitialBalance = 1000
	cfg.MaxBalance = 10_000
	return config.StaticEconomy(cfg)
}

func TestLedger_FirstTouchReturnsInitialBalance(t *testing.T) {
	l := ledger.New(testEconomy(), nil)
	actor := uuid.New()

	assert.Equal(t, int64(1000), l.Balance(actor))
	assert.True(t, l.HasAtLeast(actor, 1000))
	assert.False(t, l.HasAtLeast(actor, 1001))
	assert.False(t, l.HasAtLeast(actor, -1))
}

func TestLedger_SetBalanceClamps(t *testing.T) {
	l := ledger.New(testEconomy(), nil)
	actor := uuid.New()

	assert.Equal(t, int64(0), l.SetBalance(actor, -50))
	assert.Equal(t, int64(0), l.Balance(actor))

	assert.Equal(t, int64(10_000), l.SetBalance(actor, 99_999))
	assert.Equal(t, int64(10_000), l.Balance(actor))

	assert.Equal(t, int64(42), l.SetBalance(actor, 42))
}

func TestLedger_Add(t *testing.T) {
	tests := []struct {
		name     string
		start    int64
		amount   int64
		expectOK bool
		expected int64
	}{
		{name: "plain credit", start: 100, amount: 50, expectOK: true, expected: 150},
		{name: "zero credit", start: 100, amount: 0, expectOK: true, expected: 100},
		{name: "negative credit leaves balance", start: 100, amount: -1, expectOK: false, expected: 100},
		{name: "credit up to the cap", start: 9_000, amount: 1_000, expectOK: true, expected: 10_000},
		{name: "overflow pins to cap", start: 9_000, amount: 5_000, expectOK: false, expected: 10_000},
		{name: "huge credit does not wrap", start: 9_000, amount: 1<<62 + 1<<61, expectOK: false, expected: 10_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ledger.New(testEconomy(), nil)
			actor := uuid.New()
			l.SetBalance(actor, tt.start)

			ok := l.Add(actor, tt.amount)

			assert.Equal(t, tt.expectOK, ok)
			assert.Equal(t, tt.expected, l.Balance(actor))
		})
	}
}

func TestLedger_Remove(t *testing.T) {
	tests := []struct {
		name     string
		start    int64
		amount   int64
		expectOK bool
		expected int64
	}{
		{name: "plain debit", start: 100, amount: 40, expectOK: true, expected: 60},
		{name: "debit everything", start: 100, amount: 100, expectOK: true, expected: 0},
		{name: "insufficient funds leaves balance", start: 100, amount: 101, expectOK: false, expected: 100},
		{name: "negative debit leaves balance", start: 100, amount: -5, expectOK: false, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ledger.New(testEconomy(), nil)
			actor := uuid.New()
			l.SetBalance(actor, tt.start)

			ok := l.Remove(actor, tt.amount)

			assert.Equal(t, tt.expectOK, ok)
			assert.Equal(t, tt.expected, l.Balance(actor))
		})
	}
}

func TestLedger_RandomOperationsStayInBounds(t *testing.T) {
	l := ledger.New(testEconomy(), nil)
	actor := uuid.New()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5_000; i++ {
		before := l.Balance(actor)
		amount := rng.Int63n(4_000) - 500

		if rng.Intn(2) == 0 {
			l.Add(actor, amount)
		} else {
			ok := l.Remove(actor, amount)
			after := l.Balance(actor)
			if ok {
				assert.Equal(t, before-amount, after)
			} else {
				assert.Equal(t, before, after, "failed remove must not partially debit")
			}
		}

		balance := l.Balance(actor)
		require.GreaterOrEqual(t, balance, int64(0))
		require.LessOrEqual(t, balance, int64(10_000))
	}
}

func TestLedger_ConcurrentRemoveNeverOverdraws(t *testing.T) {
	l := ledger.New(testEconomy(), nil)
	actor := uuid.New()
	l.SetBalance(actor, 1000)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Remove(actor, 30) {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 33, succeeded)
	assert.Equal(t, int64(10), l.Balance(actor))
}

func TestLedger_OfflineCreditDeliveredOnce(t *testing.T) {
	l := ledger.New(testEconomy(), nil)
	seller := uuid.New()
	l.SetBalance(seller, 500)

	l.AddOfflineCredit(seller, 190)
	l.AddOfflineCredit(seller, 95)
	l.AddOfflineCredit(seller, 0)
	l.AddOfflineCredit(seller, -10)
	assert.Equal(t, int64(285), l.OfflineCredit(seller))

	delivered, full := l.DeliverOfflineCredit(seller)
	assert.Equal(t, int64(285), delivered)
	assert.True(t, full)
	assert.Equal(t, int64(785), l.Balance(seller))
	assert.Equal(t, int64(0), l.OfflineCredit(seller))

	delivered, full = l.DeliverOfflineCredit(seller)
	assert.Equal(t, int64(0), delivered)
	assert.True(t, full)
	assert.Equal(t, int64(785), l.Balance(seller))
}

func TestLedger_OfflineCreditCappedAtMax(t *testing.T) {
	l := ledger.New(testEconomy(), nil)
	seller := uuid.New()
	l.SetBalance(seller, 9_900)
	l.AddOfflineCredit(seller, 500)

	delivered, full := l.DeliverOfflineCredit(seller)

	assert.Equal(t, int64(500), delivered)
	assert.False(t, full)
	assert.Equal(t, int64(10_000), l.Balance(seller))
	assert.Equal(t, int64(0), l.OfflineCredit(seller))
}

func TestLedger_LoweredCapKeepsExistingBalance(t *testing.T) {
	economy := config.NewEconomyStore(config.EconomyConfig(testEconomy()))
	l := ledger.New(economy, nil)
	actor := uuid.New()
	l.SetBalance(actor, 8_000)

	lowered := economy.Economy()
	lowered.MaxBalance = 5_000
	economy.Set(lowered)

	assert.False(t, l.Add(actor, 1))
	assert.Equal(t, int64(8_000), l.Balance(actor))

	l.AddOfflineCredit(actor, 200)
	delivered, full := l.DeliverOfflineCredit(actor)
	assert.Equal(t, int64(200), delivered)
	assert.False(t, full)
	assert.Equal(t, int64(8_000), l.Balance(actor))

	require.True(t, l.Remove(actor, 3_500))
	assert.True(t, l.Add(actor, 100))
	assert.Equal(t, int64(4_600), l.Balance(actor))
}

func TestLedger_OfflineCreditSaturates(t *testing.T) {
	l := ledger.New(testEconomy(), nil)
	seller := uuid.New()

	l.AddOfflineCredit(seller, math.MaxInt64-10)
	l.AddOfflineCredit(seller, 100)

	assert.Equal(t, int64(math.MaxInt64), l.OfflineCredit(seller))
}

func TestLedger_OfflineCreditUnknownActor(t *testing.T) {
	l := ledger.New(testEconomy(), nil)

	assert.Equal(t, int64(0), l.OfflineCredit(uuid.New()))
	delivered, full := l.DeliverOfflineCredit(uuid.New())
	assert.Equal(t, int64(0), delivered)
	assert.True(t, full)
}

func TestLedger_ConcurrentCreditAndDelivery(t *testing.T) {
	l := ledger.New(testEconomy(), nil)
	seller := uuid.New()
	l.SetBalance(seller, 0)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var delivered int64

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.AddOfflineCredit(seller, 10)
		}()
		go func() {
			defer wg.Done()
			d, _ := l.DeliverOfflineCredit(seller)
			mu.Lock()
			delivered += d
			mu.Unlock()
		}()
	}
	wg.Wait()

	d, _ := l.DeliverOfflineCredit(seller)
	delivered += d

	assert.Equal(t, int64(1000), delivered)
	assert.Equal(t, int64(1000), l.Balance(seller))
	assert.Equal(t, int64(0), l.OfflineCredit(seller))
}

func TestLedger_ObserverSeesMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	observer := mocks.NewMockLedgerObserver(ctrl)
	l := ledger.New(testEconomy(), observer)
	actor := uuid.New()

	gomock.InOrder(
		observer.EXPECT().BalanceChanged(actor, int64(1100)),
		observer.EXPECT().BalanceChanged(actor, int64(1050)),
		observer.EXPECT().OfflineCreditChanged(actor, int64(20)),
		observer.EXPECT().BalanceChanged(actor, int64(1070)),
		observer.EXPECT().OfflineCreditChanged(actor, int64(0)),
	)

	assert.True(t, l.Add(actor, 100))
	assert.True(t, l.Remove(actor, 50))
	assert.False(t, l.Remove(actor, 5_000))
	l.AddOfflineCredit(actor, 20)
	l.DeliverOfflineCredit(actor)
}

func TestLedger_SnapshotRestore(t *testing.T) {
	l := ledger.New(testEconomy(), nil)
	a, b := uuid.New(), uuid.New()
	l.SetBalance(a, 300)
	l.SetBalance(b, 700)
	l.AddOfflineCredit(b, 40)

	snap := l.Snapshot()
	assert.Equal(t, map[uuid.UUID]int64{a: 300, b: 700}, snap.Balances)
	assert.Equal(t, map[uuid.UUID]int64{b: 40}, snap.OfflineCredits)

	restored := ledger.New(testEconomy(), nil)
	restored.SetBalance(uuid.New(), 1)
	restored.Restore(snap)

	assert.Equal(t, int64(300), restored.Balance(a))
	assert.Equal(t, int64(700), restored.Balance(b))
	assert.Equal(t, int64(40), restored.OfflineCredit(b))
	assert.Len(t, restored.Snapshot().Balances, 2)
}
