package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 behind an atomic uint64 bit pattern.
type AtomicFloat struct {
	bits atomic.Uint64
}

// Store sets the value atomically.
func (f *AtomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Load reads the value atomically.
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add increments the value by delta via CAS loop.
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if f.bits.CompareAndSwap(old, next) {
			return math.Float64frombits(next)
		}
	}
}
