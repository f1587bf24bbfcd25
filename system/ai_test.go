package system

import (
	"testing"

	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
	"github.com/atimics/signal-sub008/engine"
	"github.com/atimics/signal-sub008/parameter"
)

func newAgent(t *testing.T, w *engine.World, pos core.Vector3) core.Entity {
	t.Helper()
	e := w.CreateEntity()
	if e == core.InvalidEntity {
		t.Fatal("create failed")
	}
	if !w.AddComponent(e, component.KindTransform) || !w.AddComponent(e, component.KindAI) {
		t.Fatal("add failed")
	}
	w.Transform(e).Position = pos
	return e
}

func TestAIIdleToPatrolAfterDwell(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	e := newAgent(t, w, core.Vector3{})

	w.Update(parameter.AIIdleDwell + 1)
	AIUpdate(w, 0)

	if got := w.AI(e).State; got != component.AIPatrolling {
		t.Errorf("state = %v, want patrolling", got)
	}
}

func TestAIGatedBelowUpdateFrequency(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	e := newAgent(t, w, core.Vector3{})

	ai := w.AI(e)
	ai.DecisionTimer = -2 * parameter.AIIdleDwell // Dwell long since expired

	// Not enough world time for even the far-LOD interval
	w.Update(0.1)
	AIUpdate(w, 0)

	if ai.State != component.AIIdle {
		t.Error("gated entity changed state")
	}
}

func TestAIStaleTargetDropsToIdle(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	e := newAgent(t, w, core.Vector3{})

	victim := w.CreateEntity()
	ai := w.AI(e)
	ai.State = component.AIReacting
	ai.TargetEntity = victim
	w.DestroyEntity(victim)

	w.Update(1)
	AIUpdate(w, 0)

	if ai.State != component.AIIdle {
		t.Errorf("state = %v, want idle after target died", ai.State)
	}
	if ai.TargetEntity != core.InvalidEntity {
		t.Error("stale target reference not cleared")
	}
}

func TestAIDistanceLOD(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)

	player := w.CreateEntity()
	if !w.AddComponent(player, component.KindTransform) || !w.AddComponent(player, component.KindPlayer) {
		t.Fatal("player setup failed")
	}

	near := newAgent(t, w, core.Vector3{X: parameter.AICloseRange / 2})
	mid := newAgent(t, w, core.Vector3{X: parameter.AIMediumRange - 1})
	far := newAgent(t, w, core.Vector3{X: parameter.AIMediumRange * 2})

	w.Update(1)
	AIUpdate(w, 0)

	if got := w.AI(near).UpdateFrequency; got != parameter.AICloseHz {
		t.Errorf("near frequency = %v, want %v", got, parameter.AICloseHz)
	}
	if got := w.AI(mid).UpdateFrequency; got != parameter.AIMediumHz {
		t.Errorf("mid frequency = %v, want %v", got, parameter.AIMediumHz)
	}
	if got := w.AI(far).UpdateFrequency; got != parameter.AIFarHz {
		t.Errorf("far frequency = %v, want %v", got, parameter.AIFarHz)
	}
}

func TestAIChaseAcceleratesTowardTarget(t *testing.T) {
	w := engine.NewWorldWithCapacity(8)
	e := newAgent(t, w, core.Vector3{})
	if !w.AddComponent(e, component.KindPhysics) {
		t.Fatal("add physics failed")
	}

	prey := w.CreateEntity()
	if !w.AddComponent(prey, component.KindTransform) {
		t.Fatal("prey setup failed")
	}
	w.Transform(prey).Position = core.Vector3{X: 10}

	ai := w.AI(e)
	ai.State = component.AIReacting
	ai.TargetEntity = prey

	w.Update(1)
	AIUpdate(w, 0)

	if v := w.Physics(e).Velocity; v.X <= 0 {
		t.Errorf("velocity %v does not point at target", v)
	}
	if ai.TargetPosition != (core.Vector3{X: 10}) {
		t.Errorf("target position not cached: %v", ai.TargetPosition)
	}
}
