package system

import (
	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
	"github.com/atimics/signal-sub008/engine"
	"github.com/atimics/signal-sub008/event"
)

// CollisionUpdate runs pairwise sphere overlap tests over entities
// carrying collision + transform, emits a Collision event per
// overlapping pair, and separates solid (non-trigger) pairs by moving
// each half the overlap apart and killing their velocities.
//
// O(n²) pair loop; layer masks gate pairs before any distance math.
// TODO: spatial partitioning once scenes grow past a few hundred
// colliders.
func CollisionUpdate(w *engine.World, dt float64) {
	_ = dt
	if w == nil {
		return
	}

	entities := w.Entities(component.KindCollision | component.KindTransform)

	for i := 0; i < len(entities); i++ {
		a := entities[i]
		colA := w.Collision(a)
		tfA := w.Transform(a)
		if colA == nil || tfA == nil {
			continue
		}
		colA.LastCheckFrame = w.FrameNumber

		for j := i + 1; j < len(entities); j++ {
			b := entities[j]
			colB := w.Collision(b)
			tfB := w.Transform(b)
			if colB == nil || tfB == nil {
				continue
			}

			if colA.LayerMask&colB.LayerMask == 0 {
				continue
			}
			// Sphere-sphere only; box and capsule pairs are skipped
			if colA.Shape != component.ShapeSphere || colB.Shape != component.ShapeSphere {
				continue
			}

			dist := core.Distance(tfA.Position, tfB.Position)
			combined := colA.Radius + colB.Radius
			if dist >= combined {
				continue
			}

			trigger := colA.IsTrigger || colB.IsTrigger
			w.PushEvent(event.Collision, event.CollisionPayload{
				A:       a,
				B:       b,
				Depth:   combined - dist,
				Trigger: trigger,
			})

			if trigger {
				continue
			}

			sep := tfA.Position.Sub(tfB.Position)
			sepLen := sep.Length()
			if sepLen == 0 {
				continue // Coincident centers, no separation axis
			}
			sep = sep.Scale(1 / sepLen)
			overlap := combined - dist

			tfA.Position = tfA.Position.Add(sep.Scale(overlap * 0.5))
			tfB.Position = tfB.Position.Add(sep.Scale(-overlap * 0.5))
			tfA.Dirty = true
			tfB.Dirty = true

			if body := w.Physics(a); body != nil {
				body.Velocity = core.Vector3{}
			}
			if body := w.Physics(b); body != nil {
				body.Velocity = core.Vector3{}
			}
		}
	}
}
