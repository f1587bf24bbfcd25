package engine

import (
	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
)

// Typed component accessors. These are the only sanctioned way for a
// system to read or write component state. Each returns a mutable
// pointer into the kind's pool when the entity is live and carries the
// kind, and nil otherwise.
//
// The pointer is frame-scoped: a component removal or entity destroy
// elsewhere in the same frame invalidates it. Never cache one across
// system invocations; cache the entity handle instead and re-fetch.

// Transform returns the entity's transform record, or nil.
func (w *World) Transform(e core.Entity) *component.Transform {
	if !w.HasComponent(e, component.KindTransform) {
		return nil
	}
	return w.transforms.Get(e.Index())
}

// Physics returns the entity's physics body record, or nil.
func (w *World) Physics(e core.Entity) *component.Physics {
	if !w.HasComponent(e, component.KindPhysics) {
		return nil
	}
	return w.physics.Get(e.Index())
}

// Collision returns the entity's collision shape record, or nil.
func (w *World) Collision(e core.Entity) *component.Collision {
	if !w.HasComponent(e, component.KindCollision) {
		return nil
	}
	return w.collisions.Get(e.Index())
}

// AI returns the entity's AI state record, or nil.
func (w *World) AI(e core.Entity) *component.AI {
	if !w.HasComponent(e, component.KindAI) {
		return nil
	}
	return w.ais.Get(e.Index())
}

// Renderable returns the entity's renderable record, or nil.
func (w *World) Renderable(e core.Entity) *component.Renderable {
	if !w.HasComponent(e, component.KindRenderable) {
		return nil
	}
	return w.renderables.Get(e.Index())
}

// Player returns the entity's player-control record, or nil.
func (w *World) Player(e core.Entity) *component.Player {
	if !w.HasComponent(e, component.KindPlayer) {
		return nil
	}
	return w.players.Get(e.Index())
}

// Camera returns the entity's camera record, or nil.
func (w *World) Camera(e core.Entity) *component.Camera {
	if !w.HasComponent(e, component.KindCamera) {
		return nil
	}
	return w.cameras.Get(e.Index())
}
