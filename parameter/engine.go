package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the host frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// ECS & Resource Limits
const (
	// MaxEntities is the hard limit for the Entity Component System
	// Sized for the worst-case scene; pools allocate this up front
	MaxEntities = 4096

	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Per-kind pool budgets. Most kinds share the entity slab capacity;
// singleton-ish kinds carry a tight budget so exhaustion is detectable
const (
	PoolCapTransform  = MaxEntities
	PoolCapPhysics    = MaxEntities
	PoolCapCollision  = MaxEntities
	PoolCapAI         = MaxEntities
	PoolCapRenderable = MaxEntities
	PoolCapPlayer     = 8
	PoolCapCamera     = 8
)
