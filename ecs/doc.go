// Package ecs provides ECS adapters for panes session events.
//
// The primary adapter is [NewDonburiSink], which bridges session events
// (region created, moved, hidden, deleted, global moves and resizes,
// component load requests) into a [Donburi] world as typed events.
// Subscribe to [EventType] in your ECS systems to receive them.
//
// The sink also mirrors the session's regions as entities carrying the
// [Region] component: one entity per live region, created and removed with
// it, holding its last placement and visibility. The global frame lives on
// a single [Frame] entity. Use [DonburiSink.Entity] to find a region's
// entity, or query Region directly.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	session.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
