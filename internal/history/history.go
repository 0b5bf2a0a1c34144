package history

import (
	"sync"

	"github.com/feral-file/ff-market/internal/domain"
)

// History keeps the most recent transaction records, oldest evicted first
//
//go:generate mockgen -source=history.go -destination=../mocks/history.go -package=mocks -mock_names=History=MockHistory
type History interface {
	// Append records a transaction and evicts the oldest records beyond the capacity
	Append(record domain.TransactionRecord)

	// Recent returns up to limit records, newest first. A non-positive limit returns everything.
	Recent(limit int) []domain.TransactionRecord

	// ForActor returns up to limit records involving the actor, newest first,
	// with Kind rewritten to the actor's perspective
	ForActor(actor domain.ActorID, limit int) []domain.TransactionRecord

	// Since returns the records appended after the record with the given id, oldest first.
	// An unknown or empty id returns every retained record.
	Since(id string) []domain.TransactionRecord

	// Len returns the number of retained records
	Len() int

	// Snapshot returns every retained record, oldest first
	Snapshot() []domain.TransactionRecord

	// Restore replaces the content, keeping the newest records within capacity
	Restore(records []domain.TransactionRecord)
}

// CapacityFunc returns the current capacity; it is read on every append so reloads apply
type CapacityFunc func() int

type history struct {
	capacity CapacityFunc

	mu      sync.RWMutex
	records []domain.TransactionRecord
	// per-actor index of record ids in append order
	byActor map[domain.ActorID][]string
}

// New creates an empty history
func New(capacity CapacityFunc) History {
	return &history{
		capacity: capacity,
		byActor:  make(map[domain.ActorID][]string),
	}
}

func (h *history) Append(record domain.TransactionRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.appendLocked(record)
	h.evictLocked()
}

func (h *history) appendLocked(record domain.TransactionRecord) {
	record.Goods = record.Goods.Clone()
	h.records = append(h.records, record)

	h.byActor[record.SellerID] = append(h.byActor[record.SellerID], record.ID)
	if record.BuyerID != record.SellerID {
		h.byActor[record.BuyerID] = append(h.byActor[record.BuyerID], record.ID)
	}
}

func (h *history) evictLocked() {
	excess := len(h.records) - max(h.capacity(), 1)
	if excess <= 0 {
		return
	}

	for _, r := range h.records[:excess] {
		h.dropFromIndexLocked(r.SellerID, r.ID)
		if r.BuyerID != r.SellerID {
			h.dropFromIndexLocked(r.BuyerID, r.ID)
		}
	}

	// Copy so the evicted prefix is released
	h.records = append([]domain.TransactionRecord(nil), h.records[excess:]...)
}

// dropFromIndexLocked removes the oldest entry of an actor's index, which is always the evicted record
func (h *history) dropFromIndexLocked(actor domain.ActorID, id string) {
	ids := h.byActor[actor]
	if len(ids) > 0 && ids[0] == id {
		ids = ids[1:]
	}
	if len(ids) == 0 {
		delete(h.byActor, actor)
		return
	}
	h.byActor[actor] = ids
}

func (h *history) Recent(limit int) []domain.TransactionRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := len(h.records)
	if limit <= 0 || limit > n {
		limit = n
	}

	result := make([]domain.TransactionRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		result = append(result, clone(h.records[i]))
	}
	return result
}

func (h *history) ForActor(actor domain.ActorID, limit int) []domain.TransactionRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := h.byActor[actor]
	if limit <= 0 || limit > len(ids) {
		limit = len(ids)
	}
	if limit == 0 {
		return []domain.TransactionRecord{}
	}

	wanted := make(map[string]struct{}, limit)
	for _, id := range ids[len(ids)-limit:] {
		wanted[id] = struct{}{}
	}

	result := make([]domain.TransactionRecord, 0, limit)
	for i := len(h.records) - 1; i >= 0 && len(result) < limit; i-- {
		r := h.records[i]
		if _, ok := wanted[r.ID]; !ok {
			continue
		}
		c := clone(r)
		c.Kind = r.KindFor(actor)
		result = append(result, c)
	}
	return result
}

func (h *history) Since(id string) []domain.TransactionRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	start := 0
	if id != "" {
		for i := len(h.records) - 1; i >= 0; i-- {
			if h.records[i].ID == id {
				start = i + 1
				break
			}
		}
	}

	result := make([]domain.TransactionRecord, 0, len(h.records)-start)
	for _, r := range h.records[start:] {
		result = append(result, clone(r))
	}
	return result
}

func (h *history) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

func (h *history) Snapshot() []domain.TransactionRecord {
	return h.Since("")
}

func (h *history) Restore(records []domain.TransactionRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = nil
	h.byActor = make(map[domain.ActorID][]string)
	for _, r := range records {
		h.appendLocked(r)
	}
	h.evictLocked()
}

func clone(r domain.TransactionRecord) domain.TransactionRecord {
	r.Goods = r.Goods.Clone()
	return r
}
