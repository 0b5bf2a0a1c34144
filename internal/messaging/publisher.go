package messaging

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-market/internal/domain"
)

// Publisher defines the interface for publishing market events to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a market event to the message broker
	PublishEvent(ctx context.Context, event *domain.MarketEvent) error
	// Close closes the connection
	Close()
}

// RoutingKey returns the broker routing key of an event.
// Broadcast events are routed by kind, e.g. listing.created;
// actor events are routed as actor.{actor_id}.{kind}, e.g. actor.7f3c...9a.balance.changed
func RoutingKey(event *domain.MarketEvent) string {
	if event.Scope == domain.EventScopeActor && event.ActorID != nil {
		return fmt.Sprintf("actor.%s.%s", event.ActorID.String(), event.Kind)
	}
	return string(event.Kind)
}
