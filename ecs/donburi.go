// Package ecs provides ECS adapters for willowxr.
package ecs

import (
	"github.com/phanxgames/willowxr"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for converted surface
// pointer events. Subscribe to this in your ECS systems to receive them.
var InteractionEventType = events.NewEventType[willowxr.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) willowxr.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event willowxr.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
