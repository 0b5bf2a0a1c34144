package adapter

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator defines an interface for identifier generation to enable deterministic tests
//
//go:generate mockgen -source=id.go -destination=../mocks/id.go -package=mocks -mock_names=IDGenerator=MockIDGenerator
type IDGenerator interface {
	// NewUUID returns a random identifier for listings and catalog entries
	NewUUID() uuid.UUID

	// NewULID returns a time-sortable identifier for transactions and events
	NewULID(t time.Time) string
}

// RealIDGenerator implements IDGenerator with google/uuid and oklog/ulid
type RealIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIDGenerator creates a new real identifier generator
func NewIDGenerator() IDGenerator {
	return &RealIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (g *RealIDGenerator) NewUUID() uuid.UUID {
	return uuid.New()
}

func (g *RealIDGenerator) NewULID(t time.Time) string {
	// Monotonic entropy is not safe for concurrent use
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}
