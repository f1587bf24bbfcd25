package engine

import (
	"fmt"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/atimics/signal-sub008/engine/status"
)

// SystemFunc is the plug-in contract for concrete systems: a stateless
// update over the world. The dt argument is the simulated time the call
// must cover, which is the system's nominal interval 1/frequency rather
// than the host frame delta. A 20 Hz system driven at 60 FPS therefore
// sees dt = 50ms and integrates its full interval in one call.
type SystemFunc func(w *World, dt float64)

// systemSlot is one descriptor in the scheduler's fixed table.
type systemSlot struct {
	name      string
	frequency float64 // Target rate, Hz
	accum     float64 // Time since last execution
	enabled   bool
	update    SystemFunc

	calls   int64
	elapsed time.Duration

	// Mirrors for external introspection
	statCalls *atomic.Int64
	statMs    *status.AtomicFloat
}

// Scheduler decides, once per frame, which registered systems execute.
// Systems run in registration order within a frame; a system runs at
// most once per frame regardless of how far behind it is.
//
// Accumulator contract: an execution consumes exactly one interval from
// the accumulator and the sub-interval remainder carries, so over any
// steady drive the execution count tracks floor(T*frequency) within one
// execution of boundary rounding. Backlog beyond one interval (a stall,
// a long disable) is discarded, never replayed: each execution covers at
// most one interval of simulated time, so motion is never
// double-integrated.
type Scheduler struct {
	systems    []systemSlot
	totalTime  float64
	frameCount uint64
	started    bool

	reg *status.Registry
}

// NewScheduler creates an empty scheduler publishing per-system stats
// into reg. reg may be nil when introspection is not wanted.
func NewScheduler(reg *status.Registry) *Scheduler {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Scheduler{reg: reg}
}

// Register appends a system descriptor to the fixed table. Call order
// is execution order. Registration is only valid before the first
// Update; later calls are rejected. frequency must be positive.
func (s *Scheduler) Register(name string, frequency float64, fn SystemFunc) bool {
	if s == nil || s.started || fn == nil || frequency <= 0 {
		return false
	}
	s.systems = append(s.systems, systemSlot{
		name:      name,
		frequency: frequency,
		enabled:   true,
		update:    fn,
		statCalls: s.reg.Ints.Get("scheduler." + name + ".calls"),
		statMs:    s.reg.Floats.Get("scheduler." + name + ".ms"),
	})
	return true
}

// Update advances scheduler time and executes every enabled system
// whose accumulated time has crossed its interval. Defensive no-op on
// nil scheduler or world: a bad frame must not take the loop down.
func (s *Scheduler) Update(w *World, dt float64) {
	if s == nil || w == nil {
		return
	}
	s.started = true
	s.totalTime += dt
	s.frameCount++

	for i := range s.systems {
		sys := &s.systems[i]
		if !sys.enabled {
			continue
		}

		sys.accum += dt
		interval := 1.0 / sys.frequency
		if sys.accum < interval {
			continue
		}

		start := time.Now()
		sys.update(w, interval)
		wall := time.Since(start)

		sys.accum -= interval
		if sys.accum >= interval {
			// Drop whole backlog intervals, keep the phase remainder
			sys.accum = math.Mod(sys.accum, interval)
		}
		sys.calls++
		sys.elapsed += wall
		sys.statCalls.Store(sys.calls)
		sys.statMs.Add(float64(wall) / float64(time.Millisecond))
	}
}

// Enable re-enables a system by name; takes effect next Update.
func (s *Scheduler) Enable(name string) {
	if slot := s.find(name); slot != nil {
		slot.enabled = true
	}
}

// Disable suspends a system by name. Time does not accumulate while
// disabled; after re-enable the system waits a full interval before its
// next execution.
func (s *Scheduler) Disable(name string) {
	if slot := s.find(name); slot != nil {
		slot.enabled = false
	}
}

// SetFrequency changes a system's target rate. Non-positive rates are
// rejected. Takes effect next Update.
func (s *Scheduler) SetFrequency(name string, hz float64) bool {
	slot := s.find(name)
	if slot == nil || hz <= 0 {
		return false
	}
	slot.frequency = hz
	return true
}

// Calls returns how many times the named system has executed.
func (s *Scheduler) Calls(name string) int64 {
	if slot := s.find(name); slot != nil {
		return slot.calls
	}
	return 0
}

// FrameCount returns the number of Update calls so far.
func (s *Scheduler) FrameCount() uint64 {
	if s == nil {
		return 0
	}
	return s.frameCount
}

// TotalTime returns the scheduler's accumulated simulation time.
func (s *Scheduler) TotalTime() float64 {
	if s == nil {
		return 0
	}
	return s.totalTime
}

// Registry exposes the metrics registry the scheduler publishes into.
func (s *Scheduler) Registry() *status.Registry {
	if s == nil {
		return nil
	}
	return s.reg
}

// PrintStats writes per-system call counts and timing to out.
func (s *Scheduler) PrintStats(out io.Writer) {
	if s == nil || out == nil {
		return
	}
	fmt.Fprintf(out, "system performance: %d frames over %.2fs\n", s.frameCount, s.totalTime)
	for i := range s.systems {
		sys := &s.systems[i]
		if sys.calls == 0 {
			continue
		}
		avg := sys.elapsed / time.Duration(sys.calls)
		actualHz := 0.0
		if s.totalTime > 0 {
			actualHz = float64(sys.calls) / s.totalTime
		}
		fmt.Fprintf(out, "  %-10s %6d calls  %8.3fms avg  %6.1f Hz actual (%.1f target)\n",
			sys.name, sys.calls, float64(avg)/float64(time.Millisecond), actualHz, sys.frequency)
	}
}

func (s *Scheduler) find(name string) *systemSlot {
	if s == nil {
		return nil
	}
	for i := range s.systems {
		if s.systems[i].name == name {
			return &s.systems[i]
		}
	}
	return nil
}
