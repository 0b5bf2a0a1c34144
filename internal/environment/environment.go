package environment

import (
	"context"

	"github.com/feral-file/ff-market/internal/domain"
)

// Inventory moves goods in and out of an actor's holdings in the host application
//
//go:generate mockgen -source=environment.go -destination=../mocks/environment.go -package=mocks -mock_names=Inventory=MockInventory,Presence=MockPresence,Privileges=MockPrivileges,Notifier=MockNotifier
type Inventory interface {
	// RemoveGoods takes goods from a present actor; false when the actor does not hold them
	RemoveGoods(ctx context.Context, actor domain.ActorID, goods domain.Goods) bool

	// GiveGoods puts goods into a present actor's holdings; false when they do not fit
	GiveGoods(ctx context.Context, actor domain.ActorID, goods domain.Goods) bool

	// DropGoods places goods next to a present actor when GiveGoods failed
	DropGoods(ctx context.Context, actor domain.ActorID, goods domain.Goods) bool
}

// Presence tells whether an actor is reachable for immediate delivery
type Presence interface {
	IsPresent(actor domain.ActorID) bool

	// Resolve returns the actor with its display name when present
	Resolve(actor domain.ActorID) (domain.Actor, bool)
}

// Privileges is the authorization hook for administrative commands
type Privileges interface {
	IsPrivileged(actor domain.ActorID) bool
}

// Notifier delivers market events to observers. It is fire-and-forget: failures never fail the caller.
type Notifier interface {
	Notify(ctx context.Context, event domain.MarketEvent)
}
