package component

// Player marks the player-controlled entity and carries control state.
type Player struct {
	Throttle          float64 // 0..1 commanded thrust fraction
	AfterburnerEnergy float64
	Afterburner       bool
	ControlsEnabled   bool
}
