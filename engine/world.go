package engine

import (
	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
	"github.com/atimics/signal-sub008/event"
	"github.com/atimics/signal-sub008/parameter"
)

// entitySlot is one record in the fixed entity slab. The generation
// counts destroys on this slot; handles carrying an older generation
// fail lookup.
type entitySlot struct {
	generation uint32
	mask       component.Kind
	alive      bool
}

// World aggregates the entity registry, the component pools and global
// simulation time. It is the single mutable context passed into every
// system call; no system may hold authoritative state of its own.
//
// All storage is allocated once in NewWorld. Entity handles are the
// only references that stay valid across frames; component pointers
// obtained through the accessors are frame-scoped.
type World struct {
	slots    []entitySlot
	freeList []uint32
	live     int

	transforms  *Pool[component.Transform]
	physics     *Pool[component.Physics]
	collisions  *Pool[component.Collision]
	ais         *Pool[component.AI]
	renderables *Pool[component.Renderable]
	players     *Pool[component.Player]
	cameras     *Pool[component.Camera]

	activeCamera core.Entity

	events *event.Queue

	// Frame clock, advanced once per frame by Update
	FrameNumber uint64
	DeltaTime   float64
	TotalTime   float64
}

// NewWorld creates a world sized for parameter.MaxEntities.
func NewWorld() *World {
	return NewWorldWithCapacity(parameter.MaxEntities)
}

// NewWorldWithCapacity creates a world with an explicit entity
// capacity. Tests use small capacities; production code uses NewWorld.
func NewWorldWithCapacity(capacity int) *World {
	w := &World{
		slots:    make([]entitySlot, capacity),
		freeList: make([]uint32, 0, capacity),
		events:   event.NewQueue(),

		transforms:  NewPool[component.Transform](capacity, parameter.PoolCapTransform),
		physics:     NewPool[component.Physics](capacity, parameter.PoolCapPhysics),
		collisions:  NewPool[component.Collision](capacity, parameter.PoolCapCollision),
		ais:         NewPool[component.AI](capacity, parameter.PoolCapAI),
		renderables: NewPool[component.Renderable](capacity, parameter.PoolCapRenderable),
		players:     NewPool[component.Player](capacity, parameter.PoolCapPlayer),
		cameras:     NewPool[component.Camera](capacity, parameter.PoolCapCamera),
	}

	for i := range w.slots {
		w.slots[i].generation = 1
	}
	// Filled in reverse so slot 0 is handed out first
	for i := capacity - 1; i >= 0; i-- {
		w.freeList = append(w.freeList, uint32(i))
	}

	return w
}

// Update advances the frame clock. Host loops call this once per frame
// before running the scheduler.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.FrameNumber++
	w.DeltaTime = dt
	w.TotalTime += dt
}

// CreateEntity allocates the next free slot and returns its handle, or
// InvalidEntity when capacity is exhausted. The new entity has an empty
// presence mask.
func (w *World) CreateEntity() core.Entity {
	if w == nil || len(w.freeList) == 0 {
		return core.InvalidEntity
	}

	idx := w.freeList[len(w.freeList)-1]
	w.freeList = w.freeList[:len(w.freeList)-1]

	slot := &w.slots[idx]
	slot.mask = 0
	slot.alive = true
	w.live++

	return core.MakeEntity(idx, slot.generation)
}

// DestroyEntity releases the entity's components and returns its slot
// to the free list. Destroying an invalid or already-dead handle is a
// no-op, which makes the operation idempotent. The slot generation is
// bumped so every outstanding handle to this entity goes stale
// immediately.
func (w *World) DestroyEntity(e core.Entity) {
	slot := w.lookup(e)
	if slot == nil {
		return
	}

	idx := e.Index()
	w.releaseComponents(idx, slot.mask)
	slot.mask = 0
	slot.alive = false
	slot.generation++
	if slot.generation == 0 {
		slot.generation = 1 // Never mint the invalid sentinel
	}

	w.freeList = append(w.freeList, idx)
	w.live--

	if w.activeCamera == e {
		w.activeCamera = core.InvalidEntity
	}
}

// Alive reports whether the handle denotes a live entity.
func (w *World) Alive(e core.Entity) bool {
	return w.lookup(e) != nil
}

// Mask returns the entity's presence mask. ok is false for stale or
// invalid handles.
func (w *World) Mask(e core.Entity) (component.Kind, bool) {
	slot := w.lookup(e)
	if slot == nil {
		return 0, false
	}
	return slot.mask, true
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.live
}

// Capacity returns the fixed entity capacity.
func (w *World) Capacity() int {
	if w == nil {
		return 0
	}
	return len(w.slots)
}

// AddComponent claims a pool record of the given kind for the entity,
// zero-initializes it and sets the presence bit. It fails when the
// handle is stale, the kind is unknown, the bit is already set, or the
// kind's pool budget is exhausted.
func (w *World) AddComponent(e core.Entity, kind component.Kind) bool {
	slot := w.lookup(e)
	if slot == nil || slot.mask.Has(kind) {
		return false
	}

	idx := e.Index()
	var ok bool
	switch kind {
	case component.KindTransform:
		ok = w.transforms.Acquire(idx)
	case component.KindPhysics:
		ok = w.physics.Acquire(idx)
	case component.KindCollision:
		ok = w.collisions.Acquire(idx)
	case component.KindAI:
		ok = w.ais.Acquire(idx)
	case component.KindRenderable:
		ok = w.renderables.Acquire(idx)
	case component.KindPlayer:
		ok = w.players.Acquire(idx)
	case component.KindCamera:
		ok = w.cameras.Acquire(idx)
	default:
		return false
	}
	if !ok {
		return false
	}

	slot.mask |= kind
	return true
}

// RemoveComponent clears the presence bit and releases the pool record.
// The record's memory is not zeroed until the slot is next acquired, so
// consumers must never read a component whose bit is unset. Unknown
// kinds and absent components are no-ops.
func (w *World) RemoveComponent(e core.Entity, kind component.Kind) {
	slot := w.lookup(e)
	if slot == nil || !slot.mask.Has(kind) {
		return
	}

	w.releaseComponents(e.Index(), kind)
	slot.mask &^= kind
}

// HasComponent is a pure presence-bit test. O(1), no side effects.
func (w *World) HasComponent(e core.Entity, kind component.Kind) bool {
	slot := w.lookup(e)
	return slot != nil && slot.mask.Has(kind)
}

// Each invokes fn for every live entity whose mask contains all bits of
// mask, in slot order. It allocates nothing. fn must not create or
// destroy entities; use a collect-then-apply pattern for that.
func (w *World) Each(mask component.Kind, fn func(e core.Entity)) {
	if w == nil {
		return
	}
	for i := range w.slots {
		slot := &w.slots[i]
		if slot.alive && slot.mask.Has(mask) {
			fn(core.MakeEntity(uint32(i), slot.generation))
		}
	}
}

// Entities collects the handles matching mask into a fresh slice.
// Convenience for tests and tooling; hot paths use Each.
func (w *World) Entities(mask component.Kind) []core.Entity {
	var out []core.Entity
	w.Each(mask, func(e core.Entity) {
		out = append(out, e)
	})
	return out
}

// SetActiveCamera marks the camera entity the render surface should
// use. The handle must denote a live entity with a camera component.
func (w *World) SetActiveCamera(e core.Entity) bool {
	if !w.HasComponent(e, component.KindCamera) {
		return false
	}
	w.activeCamera = e
	return true
}

// SwitchToCamera activates the n-th camera entity in slot order.
// Returns false when fewer than n+1 cameras exist.
func (w *World) SwitchToCamera(n int) bool {
	if w == nil || n < 0 {
		return false
	}
	found := core.InvalidEntity
	i := 0
	w.Each(component.KindCamera, func(e core.Entity) {
		if i == n {
			found = e
		}
		i++
	})
	if found == core.InvalidEntity {
		return false
	}
	return w.SetActiveCamera(found)
}

// ActiveCamera returns the current camera entity, which may have gone
// stale since it was set; callers validate via the accessor.
func (w *World) ActiveCamera() core.Entity {
	if w == nil {
		return core.InvalidEntity
	}
	return w.activeCamera
}

// Events exposes the world's event queue.
func (w *World) Events() *event.Queue {
	if w == nil {
		return nil
	}
	return w.events
}

// PushEvent emits a game event stamped with the current frame number.
func (w *World) PushEvent(t event.Type, payload any) {
	if w == nil || w.events == nil {
		return
	}
	w.events.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.FrameNumber,
	})
}

// Clear destroys every entity and resets the frame clock. Slot
// generations are bumped so handles from before the clear are stale.
func (w *World) Clear() {
	if w == nil {
		return
	}
	for i := range w.slots {
		slot := &w.slots[i]
		slot.mask = 0
		slot.alive = false
		slot.generation++
		if slot.generation == 0 {
			slot.generation = 1
		}
	}
	w.freeList = w.freeList[:0]
	for i := len(w.slots) - 1; i >= 0; i-- {
		w.freeList = append(w.freeList, uint32(i))
	}
	w.live = 0
	w.activeCamera = core.InvalidEntity

	w.transforms.Reset()
	w.physics.Reset()
	w.collisions.Reset()
	w.ais.Reset()
	w.renderables.Reset()
	w.players.Reset()
	w.cameras.Reset()

	w.FrameNumber = 0
	w.DeltaTime = 0
	w.TotalTime = 0
}

// lookup resolves a handle to its slot, or nil when the handle is the
// sentinel, out of range, dead, or from an older generation.
func (w *World) lookup(e core.Entity) *entitySlot {
	if w == nil || e == core.InvalidEntity {
		return nil
	}
	idx := e.Index()
	if int(idx) >= len(w.slots) {
		return nil
	}
	slot := &w.slots[idx]
	if !slot.alive || slot.generation != e.Generation() {
		return nil
	}
	return slot
}

// releaseComponents returns every pool record named by mask at the slot.
func (w *World) releaseComponents(idx uint32, mask component.Kind) {
	if mask.Has(component.KindTransform) {
		w.transforms.Release(idx)
	}
	if mask.Has(component.KindPhysics) {
		w.physics.Release(idx)
	}
	if mask.Has(component.KindCollision) {
		w.collisions.Release(idx)
	}
	if mask.Has(component.KindAI) {
		w.ais.Release(idx)
	}
	if mask.Has(component.KindRenderable) {
		w.renderables.Release(idx)
	}
	if mask.Has(component.KindPlayer) {
		w.players.Release(idx)
	}
	if mask.Has(component.KindCamera) {
		w.cameras.Release(idx)
	}
}
