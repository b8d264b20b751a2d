// Package ecs provides a [Donburi] adapter for sparks particle pools.
//
// Attach a pool to an entity with [NewEmitter], register the emit handler
// once per world, publish [EmitRequest] events from any system and call
// [Update] once per frame:
//
//	ecs.Register(world)
//	entity, err := ecs.NewEmitter(world, 512)
//	...
//	ecs.EmitEventType.Publish(world, ecs.EmitRequest{Entity: entity, Count: 5, Type: spark, X: 400, Y: 300})
//	ecs.Update(world, dt)
//	ecs.Draw(world, renderer)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
