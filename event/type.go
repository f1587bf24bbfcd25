package event

import "github.com/atimics/signal-sub008/core"

// Type discriminates game events.
type Type uint16

const (
	None Type = iota
	Collision
	EntitySpawned
	EntityDestroyed
	CameraSwitched
)

// GameEvent is the envelope pushed through the ring buffer.
// Frame records the frame number at emission for ordering diagnostics.
type GameEvent struct {
	Type    Type
	Payload any
	Frame   uint64
}

// CollisionPayload reports one overlapping pair. Handles are non-owning
// and may be stale by the time a consumer sees them.
type CollisionPayload struct {
	A, B    core.Entity
	Depth   float64
	Trigger bool
}
