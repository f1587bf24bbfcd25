package component

import "strings"

// Kind is the per-entity component presence bitmask, one bit per
// component kind. A set bit guarantees a live record in that kind's
// pool at the entity's slot.
type Kind uint32

const (
	KindTransform Kind = 1 << iota
	KindPhysics
	KindCollision
	KindAI
	KindRenderable
	KindPlayer
	KindCamera
)

// AllKinds covers every registered component kind.
const AllKinds = KindTransform | KindPhysics | KindCollision | KindAI |
	KindRenderable | KindPlayer | KindCamera

// Has reports whether every bit of sub is set in k.
func (k Kind) Has(sub Kind) bool {
	return k&sub == sub
}

var kindNames = []struct {
	bit  Kind
	name string
}{
	{KindTransform, "transform"},
	{KindPhysics, "physics"},
	{KindCollision, "collision"},
	{KindAI, "ai"},
	{KindRenderable, "renderable"},
	{KindPlayer, "player"},
	{KindCamera, "camera"},
}

// String renders the mask as a pipe-joined kind list.
func (k Kind) String() string {
	if k == 0 {
		return "none"
	}
	var parts []string
	for _, kn := range kindNames {
		if k&kn.bit != 0 {
			parts = append(parts, kn.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}
