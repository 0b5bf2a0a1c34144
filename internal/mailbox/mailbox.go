package mailbox

import (
	"sync"

	"github.com/feral-file/ff-market/internal/domain"
)

// Mailbox holds goods owed to actors that were absent when the goods came back to them
//
//go:generate mockgen -source=mailbox.go -destination=../mocks/mailbox.go -package=mocks -mock_names=Mailbox=MockMailbox
type Mailbox interface {
	// Enqueue stores a copy of the goods for the actor
	Enqueue(actor domain.ActorID, goods domain.Goods)

	// Pending returns copies of the goods waiting for the actor
	Pending(actor domain.ActorID) []domain.Goods

	// Drain takes and clears the actor's goods; a second call returns nothing
	Drain(actor domain.ActorID) []domain.Goods

	// Snapshot copies every pending delivery
	Snapshot() []domain.PendingGoods

	// Restore replaces the content
	Restore(pending []domain.PendingGoods)
}

type mailbox struct {
	mu      sync.Mutex
	pending map[domain.ActorID][]domain.Goods
}

// New creates an empty mailbox
func New() Mailbox {
	return &mailbox{pending: make(map[domain.ActorID][]domain.Goods)}
}

func (m *mailbox) Enqueue(actor domain.ActorID, goods domain.Goods) {
	if goods.Quantity <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[actor] = append(m.pending[actor], goods.Clone())
}

func (m *mailbox) Pending(actor domain.ActorID) []domain.Goods {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneAll(m.pending[actor])
}

func (m *mailbox) Drain(actor domain.ActorID) []domain.Goods {
	m.mu.Lock()
	defer m.mu.Unlock()

	goods := m.pending[actor]
	delete(m.pending, actor)
	return goods
}

func (m *mailbox) Snapshot() []domain.PendingGoods {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]domain.PendingGoods, 0, len(m.pending))
	for actor, goods := range m.pending {
		result = append(result, domain.PendingGoods{ActorID: actor, Goods: cloneAll(goods)})
	}
	return result
}

func (m *mailbox) Restore(pending []domain.PendingGoods) {
	restored := make(map[domain.ActorID][]domain.Goods, len(pending))
	for _, p := range pending {
		for _, g := range p.Goods {
			if g.Quantity > 0 {
				restored[p.ActorID] = append(restored[p.ActorID], g.Clone())
			}
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = restored
}

func cloneAll(goods []domain.Goods) []domain.Goods {
	result := make([]domain.Goods, 0, len(goods))
	for _, g := range goods {
		result = append(result, g.Clone())
	}
	return result
}
