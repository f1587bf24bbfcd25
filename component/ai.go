package component

import "github.com/atimics/signal-sub008/core"

// AIState enumerates the behavior states of the AI state machine.
type AIState uint8

const (
	AIIdle AIState = iota
	AIPatrolling
	AIReacting
	AICommunicating
	AIFleeing
)

// AI holds per-entity behavior state.
//
// TargetEntity is a non-owning back-reference: the target may be
// destroyed at any time, so holders must validate the handle against
// the world before use.
type AI struct {
	State AIState

	DecisionTimer    float64
	ReactionCooldown float64
	TargetPosition   core.Vector3
	TargetEntity     core.Entity

	// Per-entity LOD scheduling inside the AI system: entities far from
	// the player update below the system's base rate
	UpdateFrequency float64
	LastUpdate      float64
}
