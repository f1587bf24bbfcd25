package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/atimics/signal-sub008/engine"
	"github.com/atimics/signal-sub008/event"
)

// Engine turns world events into sound cues. It is the single consumer
// of the world's event queue and is registered with the scheduler at a
// modest rate; missing a frame only delays a cue, never drops sim state.
type Engine struct {
	rate    beep.SampleRate
	enabled bool
}

// NewEngine initializes the speaker. A failed init (headless host, no
// audio device) is not fatal: the engine stays muted but keeps draining
// the event queue.
func NewEngine(sampleRate int) *Engine {
	e := &Engine{rate: beep.SampleRate(sampleRate)}
	if err := speaker.Init(e.rate, e.rate.N(time.Second/10)); err == nil {
		e.enabled = true
	}
	return e
}

// Enabled reports whether the speaker initialized.
func (e *Engine) Enabled() bool {
	return e != nil && e.enabled
}

// Update drains pending events and plays the matching cues.
// Signature matches the scheduler's system contract.
func (e *Engine) Update(w *engine.World, dt float64) {
	_ = dt
	if e == nil || w == nil {
		return
	}

	for _, ev := range w.Events().Consume() {
		if !e.enabled {
			continue
		}
		switch ev.Type {
		case event.Collision:
			if p, ok := ev.Payload.(event.CollisionPayload); ok && !p.Trigger {
				speaker.Play(CollisionSound(e.rate))
			}
		case event.EntitySpawned:
			speaker.Play(SpawnSound(e.rate))
		}
	}
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	if e != nil && e.enabled {
		speaker.Close()
		e.enabled = false
	}
}
