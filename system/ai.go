package system

import (
	"math/rand"

	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
	"github.com/atimics/signal-sub008/engine"
	"github.com/atimics/signal-sub008/parameter"
)

// AIUpdate drives the per-entity behavior state machine. The scheduler
// runs this at a low base rate; inside, each entity carries its own LOD
// frequency scaled by distance to the player, so far entities think
// even less often than the system runs.
//
// Entity back-references (TargetEntity) are validated against the world
// before every use; a destroyed target drops the entity back to idle
// instead of chasing a dangling handle.
func AIUpdate(w *engine.World, dt float64) {
	_ = dt
	if w == nil {
		return
	}

	// Player position anchors the LOD rings
	playerEntity := core.InvalidEntity
	var playerPos core.Vector3
	w.Each(component.KindPlayer, func(e core.Entity) {
		if playerEntity != core.InvalidEntity {
			return
		}
		playerEntity = e
		if tf := w.Transform(e); tf != nil {
			playerPos = tf.Position
		}
	})

	w.Each(component.KindAI|component.KindTransform, func(e core.Entity) {
		ai := w.AI(e)
		tf := w.Transform(e)
		if ai == nil || tf == nil {
			return
		}

		if playerEntity != core.InvalidEntity {
			switch dist := core.Distance(tf.Position, playerPos); {
			case dist < parameter.AICloseRange:
				ai.UpdateFrequency = parameter.AICloseHz
			case dist < parameter.AIMediumRange:
				ai.UpdateFrequency = parameter.AIMediumHz
			default:
				ai.UpdateFrequency = parameter.AIFarHz
			}
		}
		if ai.UpdateFrequency <= 0 {
			ai.UpdateFrequency = parameter.AIFarHz
		}

		if w.TotalTime-ai.LastUpdate < 1.0/ai.UpdateFrequency {
			return
		}
		ai.LastUpdate = w.TotalTime

		switch ai.State {
		case component.AIIdle:
			if w.TotalTime-ai.DecisionTimer > parameter.AIIdleDwell {
				ai.State = component.AIPatrolling
				ai.DecisionTimer = w.TotalTime
			}

		case component.AIPatrolling:
			if body := w.Physics(e); body != nil {
				body.Velocity.X += (rand.Float64()*2 - 1) * parameter.AIPatrolJitter
				body.Velocity.Z += (rand.Float64()*2 - 1) * parameter.AIPatrolJitter
			}

		case component.AIReacting:
			// Stale target check before any chase math
			if !w.Alive(ai.TargetEntity) {
				ai.TargetEntity = core.InvalidEntity
				ai.State = component.AIIdle
				ai.DecisionTimer = w.TotalTime
				return
			}
			if target := w.Transform(ai.TargetEntity); target != nil {
				ai.TargetPosition = target.Position
				if body := w.Physics(e); body != nil {
					dir := ai.TargetPosition.Sub(tf.Position).Normalize()
					body.Velocity = body.Velocity.Add(dir.Scale(parameter.AIPatrolJitter))
				}
			}

		case component.AIFleeing:
			if !w.Alive(ai.TargetEntity) {
				ai.TargetEntity = core.InvalidEntity
				ai.State = component.AIIdle
				ai.DecisionTimer = w.TotalTime
				return
			}
			if threat := w.Transform(ai.TargetEntity); threat != nil {
				if body := w.Physics(e); body != nil {
					dir := tf.Position.Sub(threat.Position).Normalize()
					body.Velocity = body.Velocity.Add(dir.Scale(parameter.AIPatrolJitter))
				}
			}
		}
	})
}
