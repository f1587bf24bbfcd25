package system

import (
	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
	"github.com/atimics/signal-sub008/engine"
	"github.com/atimics/signal-sub008/parameter"
)

// PlayerUpdate converts commanded throttle into acceleration along the
// ship's forward axis and manages afterburner energy. Input handling
// lives with the host; it only writes Throttle/Afterburner flags here.
func PlayerUpdate(w *engine.World, dt float64) {
	if w == nil {
		return
	}

	w.Each(component.KindPlayer|component.KindPhysics|component.KindTransform, func(e core.Entity) {
		player := w.Player(e)
		body := w.Physics(e)
		tf := w.Transform(e)
		if player == nil || body == nil || tf == nil || !player.ControlsEnabled {
			return
		}

		accel := player.Throttle * parameter.PlayerThrustAccel

		if player.Afterburner && player.AfterburnerEnergy > 0 {
			accel *= parameter.PlayerAfterburnerMult
			player.AfterburnerEnergy -= parameter.PlayerAfterburnerDrain * dt
			if player.AfterburnerEnergy < 0 {
				player.AfterburnerEnergy = 0
			}
		} else {
			player.AfterburnerEnergy += parameter.PlayerAfterburnerRegen * dt
			if player.AfterburnerEnergy > parameter.PlayerAfterburnerMax {
				player.AfterburnerEnergy = parameter.PlayerAfterburnerMax
			}
		}

		forward := tf.Rotation.Rotate(core.Vector3{Z: -1})
		body.Acceleration = forward.Scale(accel)
	})
}
