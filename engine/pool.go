package engine

// Pool is fixed-capacity struct-of-arrays storage for one component
// kind. The slab is sized to the world's entity capacity and the slot
// index equals the owning entity's registry index, so lookup is a
// single bounds-checked array access and same-kind iteration walks
// contiguous memory. Nothing is allocated after construction.
//
// A record at slot i is only semantically valid while entity i's
// presence mask has the kind's bit set.
type Pool[T any] struct {
	records []T
	inUse   int
	budget  int
}

// NewPool allocates a slab of capacity records with an in-use budget.
// budget < capacity models kinds that are intentionally scarce (player
// control, cameras).
func NewPool[T any](capacity, budget int) *Pool[T] {
	if budget > capacity {
		budget = capacity
	}
	return &Pool[T]{
		records: make([]T, capacity),
		budget:  budget,
	}
}

// Acquire claims the record at slot, zeroing it, and counts it against
// the budget. Returns false when the budget is exhausted or the slot is
// out of range; no state changes on failure.
func (p *Pool[T]) Acquire(slot uint32) bool {
	if int(slot) >= len(p.records) || p.inUse >= p.budget {
		return false
	}
	var zero T
	p.records[slot] = zero
	p.inUse++
	return true
}

// Release returns the slot's record to the unused convention. The
// record is not zeroed; stale data remains until the next Acquire.
func (p *Pool[T]) Release(slot uint32) {
	if int(slot) >= len(p.records) || p.inUse == 0 {
		return
	}
	p.inUse--
}

// Get returns a pointer into the slab. Callers must have verified
// presence via the entity mask; the pointer is frame-scoped.
func (p *Pool[T]) Get(slot uint32) *T {
	if int(slot) >= len(p.records) {
		return nil
	}
	return &p.records[slot]
}

// InUse returns the number of records currently claimed.
func (p *Pool[T]) InUse() int {
	return p.inUse
}

// Budget returns the maximum number of simultaneously claimed records.
func (p *Pool[T]) Budget() int {
	return p.budget
}

// Reset releases every record without zeroing the slab.
func (p *Pool[T]) Reset() {
	p.inUse = 0
}
