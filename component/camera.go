package component

import "github.com/atimics/signal-sub008/core"

// CameraBehavior selects how the camera system moves a camera.
type CameraBehavior uint8

const (
	CameraThirdPerson CameraBehavior = iota
	CameraFirstPerson
	CameraStatic
	CameraChase
	CameraOrbital
)

// Camera is a viewpoint record. One camera entity is marked active on
// the world; the render surface reads that one's matrices.
type Camera struct {
	Position core.Vector3
	Target   core.Vector3
	Up       core.Vector3

	FOV         float64 // Vertical field of view, degrees
	AspectRatio float64
	NearPlane   float64
	FarPlane    float64

	Behavior CameraBehavior

	// FollowTarget is a non-owning entity back-reference; validated
	// before use each update
	FollowTarget    core.Entity
	FollowDistance  float64
	FollowOffset    core.Vector3
	FollowSmoothing float64

	// Cached matrices, rebuilt when MatricesDirty is set
	View           core.Mat4
	Projection     core.Mat4
	ViewProjection core.Mat4
	MatricesDirty  bool

	IsActive bool
}
