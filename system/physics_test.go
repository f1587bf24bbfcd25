package system

import (
	"testing"

	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
	"github.com/atimics/signal-sub008/engine"
)

func newBody(t *testing.T, w *engine.World) core.Entity {
	t.Helper()
	e := w.CreateEntity()
	if e == core.InvalidEntity {
		t.Fatal("create failed")
	}
	if !w.AddComponent(e, component.KindTransform) || !w.AddComponent(e, component.KindPhysics) {
		t.Fatal("add failed")
	}
	return e
}

func TestPhysicsIntegration(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	e := newBody(t, w)

	body := w.Physics(e)
	body.Acceleration = core.Vector3{X: 2}
	body.Drag = 1 // No damping, exact arithmetic

	PhysicsUpdate(w, 0.5)

	if body.Velocity != (core.Vector3{X: 1}) {
		t.Errorf("velocity = %v, want (1,0,0)", body.Velocity)
	}
	tf := w.Transform(e)
	if tf.Position != (core.Vector3{X: 0.5}) {
		t.Errorf("position = %v, want (0.5,0,0)", tf.Position)
	}
	if !tf.Dirty {
		t.Error("transform not marked dirty")
	}
}

func TestPhysicsDrag(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	e := newBody(t, w)

	body := w.Physics(e)
	body.Velocity = core.Vector3{X: 8}
	body.Drag = 0.5

	PhysicsUpdate(w, 0.25)

	if body.Velocity != (core.Vector3{X: 4}) {
		t.Errorf("velocity = %v, want halved", body.Velocity)
	}
}

func TestPhysicsSkipsKinematic(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	e := newBody(t, w)

	body := w.Physics(e)
	body.Acceleration = core.Vector3{X: 100}
	body.Drag = 1
	body.Kinematic = true

	PhysicsUpdate(w, 1)

	if body.Velocity != (core.Vector3{}) {
		t.Errorf("kinematic body integrated: %v", body.Velocity)
	}
	if w.Transform(e).Position != (core.Vector3{}) {
		t.Error("kinematic body moved")
	}
}
