package ecs

import (
	"github.com/phanxgames/sparks"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Emitter is the component holding an entity's particle pool.
type Emitter struct {
	State *sparks.ParticlesState
	// OffsetX and OffsetY shift every particle when drawn.
	OffsetX, OffsetY int
}

// Particles is the Donburi component type for Emitter.
var Particles = donburi.NewComponentType[Emitter]()

// EmitRequest asks the pool of Entity to emit Count particles of Type at (X, Y).
type EmitRequest struct {
	Entity donburi.Entity
	Count  int
	Type   *sparks.ParticleType
	X, Y   float64
}

// EmitEventType is the Donburi event type for emission requests. Requests
// are queued and applied by Update before the pools advance.
var EmitEventType = events.NewEventType[EmitRequest]()

var emitters = donburi.NewQuery(filter.Contains(Particles))

// Register subscribes the emit handler to world. Call it once per world.
func Register(world donburi.World) {
	EmitEventType.Subscribe(world, handleEmit)
}

// NewEmitter creates an entity owning a pool of the given capacity.
func NewEmitter(world donburi.World, capacity int, opts ...sparks.Option) (donburi.Entity, error) {
	state, err := sparks.NewParticlesState(capacity, opts...)
	if err != nil {
		return donburi.Null, err
	}
	entity := world.Create(Particles)
	Particles.SetValue(world.Entry(entity), Emitter{State: state})
	return entity, nil
}

// Update applies queued emit requests, then advances every pool by dt seconds.
func Update(world donburi.World, dt float64) {
	EmitEventType.ProcessEvents(world)
	emitters.Each(world, func(e *donburi.Entry) {
		Particles.Get(e).State.Update(dt)
	})
}

// Draw hands every alive particle of every pool to r and returns how many were drawn.
func Draw(world donburi.World, r sparks.Renderer) int {
	n := 0
	emitters.Each(world, func(e *donburi.Entry) {
		em := Particles.Get(e)
		n += sparks.Draw(r, em.State, em.OffsetX, em.OffsetY)
	})
	return n
}

// handleEmit drops requests for entities that were removed or have no pool.
func handleEmit(w donburi.World, req EmitRequest) {
	if !w.Valid(req.Entity) {
		return
	}
	entry := w.Entry(req.Entity)
	if !entry.HasComponent(Particles) {
		return
	}
	Particles.Get(entry).State.Emit(req.Count, req.Type, req.X, req.Y)
}
