package engine

import (
	"strings"
	"testing"
)

// drive runs frames of fixed dt through world and scheduler, the way a
// host loop does.
func drive(sched *Scheduler, world *World, dt float64, frames int) {
	for i := 0; i < frames; i++ {
		world.Update(dt)
		sched.Update(world, dt)
	}
}

// Binary-exact drive values keep accumulator arithmetic deterministic:
// dt = 1/64s, intervals at powers of two divide it without rounding.
const exactDt = 0.015625

func TestFrequencyLaw(t *testing.T) {
	world := NewWorldWithCapacity(4)
	sched := NewScheduler(nil)

	calls := 0
	sched.Register("counter", 16, func(w *World, dt float64) {
		calls++
	})

	// T = 2.0s at 16 Hz: exactly 32 executions
	drive(sched, world, exactDt, 128)
	if calls != 32 {
		t.Errorf("16 Hz over 2s executed %d times, want 32", calls)
	}
}

func TestNoExecutionBeforeInterval(t *testing.T) {
	world := NewWorldWithCapacity(4)
	sched := NewScheduler(nil)

	calls := 0
	sched.Register("counter", 16, func(w *World, dt float64) {
		calls++
	})

	// 3 frames = 46.875ms < 62.5ms interval
	drive(sched, world, exactDt, 3)
	if calls != 0 {
		t.Errorf("system executed %d times before its interval elapsed", calls)
	}

	drive(sched, world, exactDt, 1)
	if calls != 1 {
		t.Errorf("system executed %d times after one interval, want 1", calls)
	}
}

// Inexact dt: carry-remainder scheduling keeps the long-run count at
// floor(T*f) within boundary rounding.
func TestFrequencyLawInexactDt(t *testing.T) {
	world := NewWorldWithCapacity(4)
	sched := NewScheduler(nil)

	calls := 0
	sched.Register("counter", 10, func(w *World, dt float64) {
		calls++
	})

	// 1000 frames of 10ms: T = 10s at 10 Hz -> 100 ± 1
	drive(sched, world, 0.01, 1000)
	if calls < 99 || calls > 101 {
		t.Errorf("10 Hz over 10s executed %d times, want 100 ± 1", calls)
	}
}

// A due system receives its nominal interval as dt, not the frame dt.
func TestSystemReceivesInterval(t *testing.T) {
	world := NewWorldWithCapacity(4)
	sched := NewScheduler(nil)

	var got []float64
	sched.Register("slow", 4, func(w *World, dt float64) {
		got = append(got, dt)
	})

	drive(sched, world, exactDt, 64) // 1s at 4 Hz -> 4 calls
	if len(got) != 4 {
		t.Fatalf("expected 4 executions, got %d", len(got))
	}
	for i, dt := range got {
		if dt != 0.25 {
			t.Errorf("execution %d received dt=%v, want 0.25", i, dt)
		}
	}
}

// Within a frame, systems run in registration order: the physics-kind
// system must be observed complete before the collision-kind one reads.
func TestRegistrationOrderWithinFrame(t *testing.T) {
	world := NewWorldWithCapacity(4)
	sched := NewScheduler(nil)

	physicsRuns := 0
	orderViolations := 0
	collisionRuns := 0

	sched.Register("physics", 64, func(w *World, dt float64) {
		physicsRuns++
	})
	sched.Register("collision", 64, func(w *World, dt float64) {
		collisionRuns++
		if physicsRuns != collisionRuns {
			orderViolations++
		}
	})

	drive(sched, world, exactDt, 32)

	if collisionRuns == 0 {
		t.Fatal("collision system never ran")
	}
	if orderViolations != 0 {
		t.Errorf("collision observed stale physics count in %d frames", orderViolations)
	}
}

// Disable freezes a system; re-enable requires one fresh interval.
func TestDisableEnable(t *testing.T) {
	world := NewWorldWithCapacity(4)
	sched := NewScheduler(nil)

	sched.Register("ai", 4, func(w *World, dt float64) {})
	sched.Disable("ai")

	// Far beyond the 250ms interval
	drive(sched, world, exactDt, 256)
	if n := sched.Calls("ai"); n != 0 {
		t.Errorf("disabled system executed %d times", n)
	}

	sched.Enable("ai")
	drive(sched, world, exactDt, 16) // One full interval
	if n := sched.Calls("ai"); n != 1 {
		t.Errorf("re-enabled system executed %d times after one interval, want 1", n)
	}
}

func TestSetFrequency(t *testing.T) {
	world := NewWorldWithCapacity(4)
	sched := NewScheduler(nil)

	sched.Register("sys", 4, func(w *World, dt float64) {})

	if sched.SetFrequency("sys", 0) {
		t.Error("zero frequency accepted")
	}
	if sched.SetFrequency("missing", 8) {
		t.Error("unknown system accepted")
	}
	if !sched.SetFrequency("sys", 64) {
		t.Fatal("valid SetFrequency rejected")
	}

	drive(sched, world, exactDt, 64) // 1s at 64 Hz
	if n := sched.Calls("sys"); n != 64 {
		t.Errorf("retuned system executed %d times over 1s, want 64", n)
	}
}

func TestNoRegistrationAfterStart(t *testing.T) {
	world := NewWorldWithCapacity(4)
	sched := NewScheduler(nil)

	sched.Register("first", 64, func(w *World, dt float64) {})
	sched.Update(world, exactDt)

	if sched.Register("late", 64, func(w *World, dt float64) {}) {
		t.Error("registration accepted after first Update")
	}
}

func TestSchedulerDefensiveNilArgs(t *testing.T) {
	world := NewWorldWithCapacity(4)
	sched := NewScheduler(nil)

	calls := 0
	sched.Register("sys", 64, func(w *World, dt float64) {
		calls++
	})

	sched.Update(nil, exactDt) // Nil world
	var nilSched *Scheduler
	nilSched.Update(world, exactDt) // Nil scheduler
	nilSched.Enable("sys")
	nilSched.PrintStats(nil)

	if calls != 0 {
		t.Errorf("system executed %d times through nil entry points", calls)
	}
}

func TestPrintStats(t *testing.T) {
	world := NewWorldWithCapacity(4)
	sched := NewScheduler(nil)

	sched.Register("physics", 64, func(w *World, dt float64) {})
	sched.Register("idle", 64, func(w *World, dt float64) {})
	sched.Disable("idle")

	drive(sched, world, exactDt, 64)

	var sb strings.Builder
	sched.PrintStats(&sb)
	out := sb.String()

	if !strings.Contains(out, "physics") {
		t.Errorf("stats output missing executed system:\n%s", out)
	}
	if strings.Contains(out, "idle") {
		t.Errorf("stats output lists never-executed system:\n%s", out)
	}

	if n := sched.Registry().Ints.Get("scheduler.physics.calls").Load(); n != sched.Calls("physics") {
		t.Errorf("status registry calls %d != scheduler calls %d", n, sched.Calls("physics"))
	}
}
