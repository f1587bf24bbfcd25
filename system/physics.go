package system

import (
	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
	"github.com/atimics/signal-sub008/engine"
)

// PhysicsUpdate integrates every entity carrying physics + transform:
// acceleration into velocity, drag damping, velocity into position.
// Kinematic bodies are skipped; their transforms belong to gameplay
// code. dt is the interval the scheduler accumulated for this system.
func PhysicsUpdate(w *engine.World, dt float64) {
	if w == nil {
		return
	}

	w.Each(component.KindPhysics|component.KindTransform, func(e core.Entity) {
		body := w.Physics(e)
		tf := w.Transform(e)
		if body == nil || tf == nil || body.Kinematic {
			return
		}

		body.Velocity = body.Velocity.Add(body.Acceleration.Scale(dt))
		body.Velocity = body.Velocity.Scale(body.Drag)
		tf.Position = tf.Position.Add(body.Velocity.Scale(dt))
		tf.Dirty = true
	})
}
