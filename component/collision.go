package component

import "github.com/atimics/signal-sub008/core"

// CollisionShape selects the bounding volume of a collision record.
type CollisionShape uint8

const (
	ShapeSphere CollisionShape = iota
	ShapeBox
	ShapeCapsule
)

// Collision describes an entity's bounding volume and filtering.
// Shape selects which of the size fields is meaningful.
type Collision struct {
	Shape CollisionShape

	Radius        float64      // ShapeSphere, ShapeCapsule
	BoxSize       core.Vector3 // ShapeBox
	CapsuleHeight float64      // ShapeCapsule

	// IsTrigger marks ghost volumes: overlap is reported but no
	// separation response is applied
	IsTrigger bool

	// LayerMask gates pair tests; two records collide only when their
	// masks intersect
	LayerMask uint32

	LastCheckFrame uint64
}
