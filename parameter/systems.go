package parameter

// Default system update frequencies (Hz)
// Registration order in main is the per-frame execution order:
// player, physics, collision, ai, camera, render, audio
const (
	// PhysicsHz integrates motion every frame at the nominal frame rate
	PhysicsHz = 60.0

	// CollisionHz runs every third frame at 60 FPS
	CollisionHz = 20.0

	// AIHz is the scheduler-level base rate; per-entity LOD inside the
	// AI system drops far entities well below this
	AIHz = 5.0

	// CameraHz tracks targets every frame to avoid visible lag
	CameraHz = 60.0

	// RenderHz redraws the terminal view every frame
	RenderHz = 60.0

	// AudioHz drains the event queue for sound cues
	AudioHz = 30.0
)

// AI distance LOD thresholds and rates
const (
	AICloseRange  = 50.0
	AIMediumRange = 200.0

	AICloseHz  = 10.0
	AIMediumHz = 5.0
	AIFarHz    = 2.0

	// AIIdleDwell is how long an idle entity waits before patrolling
	AIIdleDwell = 5.0

	// AIPatrolJitter is the per-decision random velocity kick magnitude
	AIPatrolJitter = 1.0
)

// Camera behavior tuning
const (
	CameraLerpResponse = 3.0
	CameraLerpMax      = 0.3
	CameraEpsilon      = 0.001
)

// Player control tuning
const (
	PlayerThrustAccel      = 30.0
	PlayerAfterburnerMult  = 2.5
	PlayerAfterburnerDrain = 20.0
	PlayerAfterburnerMax   = 100.0
	PlayerAfterburnerRegen = 5.0
)
