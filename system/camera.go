package system

import (
	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
	"github.com/atimics/signal-sub008/engine"
	"github.com/atimics/signal-sub008/parameter"
)

// CameraUpdate moves the active camera according to its behavior and
// rebuilds its cached matrices when the position or target changed.
// With no active camera set, the first live camera entity is promoted.
func CameraUpdate(w *engine.World, dt float64) {
	if w == nil {
		return
	}

	active := w.ActiveCamera()
	if !w.Alive(active) {
		active = core.InvalidEntity
		w.Each(component.KindCamera, func(e core.Entity) {
			if active == core.InvalidEntity {
				active = e
			}
		})
		if active == core.InvalidEntity {
			return
		}
		w.SetActiveCamera(active)
	}

	cam := w.Camera(active)
	if cam == nil {
		return
	}

	applyCameraDefaults(cam)

	switch cam.Behavior {
	case component.CameraThirdPerson, component.CameraChase:
		// Follow target may have been destroyed since it was assigned
		if !w.Alive(cam.FollowTarget) {
			break
		}
		target := w.Transform(cam.FollowTarget)
		if target == nil {
			break
		}

		desired := target.Position.Add(cam.FollowOffset)

		lerp := cam.FollowSmoothing * dt * 60.0
		if lerp > 1 {
			lerp = 1
		}
		lerp *= parameter.CameraLerpResponse
		if lerp > parameter.CameraLerpMax {
			lerp = parameter.CameraLerpMax
		}

		old := cam.Position
		cam.Position = core.Lerp(cam.Position, desired, lerp)
		cam.Target = target.Position

		if core.Distance(old, cam.Position) > parameter.CameraEpsilon {
			cam.MatricesDirty = true
		}

	case component.CameraFirstPerson:
		if !w.Alive(cam.FollowTarget) {
			break
		}
		target := w.Transform(cam.FollowTarget)
		if target == nil {
			break
		}
		old := cam.Position
		cam.Position = target.Position
		forward := target.Rotation.Rotate(core.Vector3{Z: -1})
		cam.Target = cam.Position.Add(forward)
		if core.Distance(old, cam.Position) > parameter.CameraEpsilon {
			cam.MatricesDirty = true
		}

	case component.CameraStatic:
		// Static cameras never move

	case component.CameraOrbital:
		// Not implemented; behaves as static
	}

	if cam.MatricesDirty {
		rebuildCameraMatrices(cam)
	}
}

// applyCameraDefaults fills zero-valued projection parameters so a
// partially initialized camera still produces a usable frustum.
func applyCameraDefaults(cam *component.Camera) {
	if cam.FOV == 0 {
		cam.FOV = 60
	}
	if cam.NearPlane == 0 {
		cam.NearPlane = 0.1
	}
	if cam.FarPlane == 0 {
		cam.FarPlane = 1000
	}
	if cam.AspectRatio == 0 {
		cam.AspectRatio = 16.0 / 9.0
	}
	if cam.Up == (core.Vector3{}) {
		cam.Up = core.Vector3{Y: 1}
	}
}

func rebuildCameraMatrices(cam *component.Camera) {
	cam.View = core.LookAt(cam.Position, cam.Target, cam.Up)
	cam.Projection = core.Perspective(cam.FOV, cam.AspectRatio, cam.NearPlane, cam.FarPlane)
	cam.ViewProjection = cam.Projection.Mul(cam.View)
	cam.MatricesDirty = false
}
