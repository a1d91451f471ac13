// Package ecs provides ECS adapters for willowxr's surface pointer events.
//
// The primary adapter is [NewDonburiStore], which bridges every pointer event
// a surface emits (motion, press, release, with pixel position and motion
// delta) into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	xrWorld.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
