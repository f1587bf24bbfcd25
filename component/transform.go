package component

import "github.com/atimics/signal-sub008/core"

// Transform places an entity in world space.
type Transform struct {
	Position core.Vector3
	Rotation core.Quaternion
	Scale    core.Vector3

	// Dirty is set whenever position/rotation/scale change so matrix
	// consumers can skip unchanged entities
	Dirty bool
}
