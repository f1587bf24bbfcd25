package component

import "github.com/atimics/signal-sub008/core"

// Physics is the rigid body record integrated by the physics system.
type Physics struct {
	Velocity     core.Vector3
	Acceleration core.Vector3
	Mass         float64
	Drag         float64

	// Kinematic bodies ignore forces; their transform is driven
	// directly by gameplay code
	Kinematic bool
}
