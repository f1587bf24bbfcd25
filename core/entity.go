package core

// Entity is a tagged handle identifying one simulated object.
// The low 32 bits are the registry slot index; the high 32 bits carry a
// generation counter bumped on every destroy, so a handle held across a
// destroy/create pair on the same slot fails lookup instead of silently
// resolving to an unrelated entity.
//
// Generations start at 1, which guarantees a valid handle is never zero.
type Entity uint64

// InvalidEntity is the reserved "none" sentinel. It never denotes a
// live entity.
const InvalidEntity Entity = 0

// MakeEntity packs a slot index and generation into a handle.
func MakeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the registry slot index encoded in the handle.
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the liveness generation encoded in the handle.
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// Valid reports whether the handle is non-sentinel. It does not imply
// the entity is still alive; use World.Alive for that.
func (e Entity) Valid() bool {
	return e != InvalidEntity
}
