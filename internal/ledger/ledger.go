package ledger

import (
	"math"
	"sync"

	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/domain"
)

// Ledger is the per-actor currency store.
// Balances are clamped to [0, maxBalance]; every operation locks only the actor it touches.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger,Observer=MockLedgerObserver
type Ledger interface {
	// Balance returns the actor's balance, initializing unknown actors with the initial balance
	Balance(actor domain.ActorID) int64

	// SetBalance sets the balance clamped to [0, maxBalance] and returns the stored value
	SetBalance(actor domain.ActorID, amount int64) int64

	// Add credits amount. It returns false without change for a negative amount, and false with the
	// balance pinned to maxBalance when the sum would overflow the cap.
	Add(actor domain.ActorID, amount int64) bool

	// Remove debits amount. It fails without any change when amount is negative or exceeds the balance.
	Remove(actor domain.ActorID, amount int64) bool

	// HasAtLeast reports whether the actor's balance covers amount
	HasAtLeast(actor domain.ActorID, amount int64) bool

	// AddOfflineCredit accumulates currency owed to an absent actor
	AddOfflineCredit(actor domain.ActorID, amount int64)

	// OfflineCredit returns the currency waiting for the actor
	OfflineCredit(actor domain.ActorID) int64

	// DeliverOfflineCredit moves the pending credit into the balance and clears it, exactly once.
	// full is false when the credit hit the balance cap.
	DeliverOfflineCredit(actor domain.ActorID) (delivered int64, full bool)

	// Snapshot copies all balances and offline credits
	Snapshot() Snapshot

	// Restore replaces the ledger content with a snapshot
	Restore(s Snapshot)
}

// Observer is told about every successful mutation.
// It is called while the actor's lock is held, so it must not call back into the ledger.
type Observer interface {
	BalanceChanged(actor domain.ActorID, balance int64)
	OfflineCreditChanged(actor domain.ActorID, pending int64)
}

// Snapshot is a copy of the ledger content
type Snapshot struct {
	Balances       map[domain.ActorID]int64
	OfflineCredits map[domain.ActorID]int64
}

type account struct {
	mu      sync.Mutex
	balance int64
	offline int64
}

type ledger struct {
	accounts sync.Map // domain.ActorID -> *account
	economy  config.EconomyProvider
	observer Observer
}

// New creates an empty ledger. observer may be nil.
func New(economy config.EconomyProvider, observer Observer) Ledger {
	return &ledger{
		economy:  economy,
		observer: observer,
	}
}

func (l *ledger) account(actor domain.ActorID) *account {
	if a, ok := l.accounts.Load(actor); ok {
		return a.(*account)
	}

	a, _ := l.accounts.LoadOrStore(actor, &account{balance: l.economy.Economy().InitialBalance})
	return a.(*account)
}

func (l *ledger) balanceChanged(actor domain.ActorID, balance int64) {
	if l.observer != nil {
		l.observer.BalanceChanged(actor, balance)
	}
}

func (l *ledger) offlineChanged(actor domain.ActorID, pending int64) {
	if l.observer != nil {
		l.observer.OfflineCreditChanged(actor, pending)
	}
}

func (l *ledger) Balance(actor domain.ActorID) int64 {
	a := l.account(actor)
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (l *ledger) SetBalance(actor domain.ActorID, amount int64) int64 {
	amount = clamp(amount, l.economy.Economy().MaxBalance)

	a := l.account(actor)
	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = amount
	l.balanceChanged(actor, amount)
	return amount
}

func (l *ledger) Add(actor domain.ActorID, amount int64) bool {
	if amount < 0 {
		return false
	}

	a := l.account(actor)
	a.mu.Lock()
	defer a.mu.Unlock()

	return l.addLocked(actor, a, amount)
}

// addLocked credits a locked account, saturating at the cap
func (l *ledger) addLocked(actor domain.ActorID, a *account, amount int64) bool {
	maxBalance := l.economy.Economy().MaxBalance
	if amount == 0 {
		return true
	}
	// A balance above a lowered cap is kept as is; it just has no headroom
	if a.balance >= maxBalance {
		return false
	}

	// Compare against the headroom so the sum itself can never overflow int64
	if amount > maxBalance-a.balance {
		a.balance = maxBalance
		l.balanceChanged(actor, a.balance)
		return false
	}

	a.balance += amount
	l.balanceChanged(actor, a.balance)
	return true
}

func (l *ledger) Remove(actor domain.ActorID, amount int64) bool {
	if amount < 0 {
		return false
	}

	a := l.account(actor)
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount > a.balance {
		return false
	}
	if amount == 0 {
		return true
	}

	a.balance -= amount
	l.balanceChanged(actor, a.balance)
	return true
}

func (l *ledger) HasAtLeast(actor domain.ActorID, amount int64) bool {
	return amount >= 0 && l.Balance(actor) >= amount
}

func (l *ledger) AddOfflineCredit(actor domain.ActorID, amount int64) {
	if amount <= 0 {
		return
	}

	a := l.account(actor)
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount > math.MaxInt64-a.offline {
		a.offline = math.MaxInt64
	} else {
		a.offline += amount
	}
	l.offlineChanged(actor, a.offline)
}

func (l *ledger) OfflineCredit(actor domain.ActorID) int64 {
	v, ok := l.accounts.Load(actor)
	if !ok {
		return 0
	}

	a := v.(*account)
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offline
}

func (l *ledger) DeliverOfflineCredit(actor domain.ActorID) (int64, bool) {
	v, ok := l.accounts.Load(actor)
	if !ok {
		return 0, true
	}

	a := v.(*account)
	a.mu.Lock()
	defer a.mu.Unlock()

	credit := a.offline
	if credit == 0 {
		return 0, true
	}

	// Merge then clear under the same lock: a concurrent AddOfflineCredit either lands
	// before (and is delivered now) or after (and waits for the next delivery)
	a.offline = 0
	full := l.addLocked(actor, a, credit)
	l.offlineChanged(actor, 0)

	return credit, full
}

func (l *ledger) Snapshot() Snapshot {
	s := Snapshot{
		Balances:       make(map[domain.ActorID]int64),
		OfflineCredits: make(map[domain.ActorID]int64),
	}

	l.accounts.Range(func(key, value any) bool {
		actor := key.(domain.ActorID)
		a := value.(*account)

		a.mu.Lock()
		s.Balances[actor] = a.balance
		if a.offline > 0 {
			s.OfflineCredits[actor] = a.offline
		}
		a.mu.Unlock()

		return true
	})

	return s
}

func (l *ledger) Restore(s Snapshot) {
	maxBalance := l.economy.Economy().MaxBalance

	l.accounts.Clear()
	for actor, balance := range s.Balances {
		l.accounts.Store(actor, &account{balance: clamp(balance, maxBalance)})
	}
	for actor, credit := range s.OfflineCredits {
		if credit <= 0 {
			continue
		}
		a := l.account(actor)
		a.offline = credit
	}
}

func clamp(amount, maxBalance int64) int64 {
	return max(0, min(amount, maxBalance))
}
