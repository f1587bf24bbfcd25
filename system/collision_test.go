package system

import (
	"testing"

	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
	"github.com/atimics/signal-sub008/engine"
	"github.com/atimics/signal-sub008/event"
)

func newSphere(t *testing.T, w *engine.World, pos core.Vector3, radius float64, layer uint32) core.Entity {
	t.Helper()
	e := w.CreateEntity()
	if e == core.InvalidEntity {
		t.Fatal("create failed")
	}
	if !w.AddComponent(e, component.KindTransform) || !w.AddComponent(e, component.KindCollision) {
		t.Fatal("add failed")
	}
	w.Transform(e).Position = pos
	col := w.Collision(e)
	col.Shape = component.ShapeSphere
	col.Radius = radius
	col.LayerMask = layer
	return e
}

func TestCollisionSeparatesSolidPair(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	a := newSphere(t, w, core.Vector3{}, 1, 1)
	b := newSphere(t, w, core.Vector3{X: 1}, 1, 1)
	if !w.AddComponent(a, component.KindPhysics) {
		t.Fatal("add physics failed")
	}
	w.Physics(a).Velocity = core.Vector3{X: 5}

	CollisionUpdate(w, 0)

	// Overlap is 1; each body moves half along the separation axis
	if got := w.Transform(a).Position; got != (core.Vector3{X: -0.5}) {
		t.Errorf("a position = %v, want (-0.5,0,0)", got)
	}
	if got := w.Transform(b).Position; got != (core.Vector3{X: 1.5}) {
		t.Errorf("b position = %v, want (1.5,0,0)", got)
	}
	if w.Physics(a).Velocity != (core.Vector3{}) {
		t.Error("velocity not zeroed on solid contact")
	}

	events := w.Events().Consume()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	payload, ok := events[0].Payload.(event.CollisionPayload)
	if !ok {
		t.Fatalf("payload type %T", events[0].Payload)
	}
	if payload.Trigger {
		t.Error("solid pair reported as trigger")
	}
	if payload.Depth != 1 {
		t.Errorf("depth = %v, want 1", payload.Depth)
	}
}

func TestCollisionTriggerReportsWithoutResponse(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	a := newSphere(t, w, core.Vector3{}, 1, 1)
	b := newSphere(t, w, core.Vector3{X: 1}, 1, 1)
	w.Collision(b).IsTrigger = true

	CollisionUpdate(w, 0)

	if w.Transform(a).Position != (core.Vector3{}) || w.Transform(b).Position != (core.Vector3{X: 1}) {
		t.Error("trigger pair was separated")
	}
	events := w.Events().Consume()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if p := events[0].Payload.(event.CollisionPayload); !p.Trigger {
		t.Error("trigger flag not set")
	}
}

func TestCollisionLayerMaskGate(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	newSphere(t, w, core.Vector3{}, 1, 0b01)
	newSphere(t, w, core.Vector3{X: 1}, 1, 0b10)

	CollisionUpdate(w, 0)

	if events := w.Events().Consume(); events != nil {
		t.Errorf("disjoint layers produced %d events", len(events))
	}
}

func TestCollisionNoOverlapNoEvent(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	newSphere(t, w, core.Vector3{}, 1, 1)
	newSphere(t, w, core.Vector3{X: 3}, 1, 1)

	CollisionUpdate(w, 0)

	if events := w.Events().Consume(); events != nil {
		t.Errorf("separated spheres produced %d events", len(events))
	}
}

func TestCollisionStampsCheckFrame(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	e := newSphere(t, w, core.Vector3{}, 1, 1)

	w.Update(0.016)
	w.Update(0.016)
	CollisionUpdate(w, 0)

	if got := w.Collision(e).LastCheckFrame; got != 2 {
		t.Errorf("LastCheckFrame = %d, want 2", got)
	}
}
