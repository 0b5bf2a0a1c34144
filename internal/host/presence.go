package host

import (
	"sort"
	"strings"
	"sync"

	"github.com/feral-file/ff-market/internal/domain"
)

// PresenceTracker is the server's view of which actors are connected to the host application
//
//go:generate mockgen -source=presence.go -destination=../mocks/presence.go -package=mocks -mock_names=PresenceTracker=MockPresenceTracker
type PresenceTracker interface {
	IsPresent(actor domain.ActorID) bool
	Resolve(actor domain.ActorID) (domain.Actor, bool)

	// SetPresent records the actor as present; it returns false when the actor already was
	SetPresent(actor domain.Actor) bool
	// SetAbsent records the actor as absent; it returns false when the actor already was
	SetAbsent(actor domain.ActorID) bool
	// Present lists the present actors ordered by name
	Present() []domain.Actor
}

type sessionPresence struct {
	sessions sync.Map // domain.ActorID -> string
}

// NewSessionPresence creates an empty presence tracker
func NewSessionPresence() PresenceTracker {
	return &sessionPresence{}
}

func (p *sessionPresence) IsPresent(actor domain.ActorID) bool {
	_, ok := p.sessions.Load(actor)
	return ok
}

func (p *sessionPresence) Resolve(actor domain.ActorID) (domain.Actor, bool) {
	name, ok := p.sessions.Load(actor)
	if !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: actor, Name: name.(string)}, true
}

func (p *sessionPresence) SetPresent(actor domain.Actor) bool {
	_, loaded := p.sessions.Swap(actor.ID, actor.Name)
	return !loaded
}

func (p *sessionPresence) SetAbsent(actor domain.ActorID) bool {
	_, loaded := p.sessions.LoadAndDelete(actor)
	return loaded
}

func (p *sessionPresence) Present() []domain.Actor {
	var actors []domain.Actor
	p.sessions.Range(func(key, value any) bool {
		actors = append(actors, domain.Actor{ID: key.(domain.ActorID), Name: value.(string)})
		return true
	})

	sort.Slice(actors, func(i, j int) bool {
		a, b := strings.ToLower(actors[i].Name), strings.ToLower(actors[j].Name)
		if a != b {
			return a < b
		}
		return actors[i].ID.String() < actors[j].ID.String()
	})
	return actors
}
