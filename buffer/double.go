package buffer

import "sync/atomic"

// Double holds two equally sized sample buffers and a flag marking which one
// is active (safe to read). A producer writes a freshly computed curve into
// the inactive buffer, then calls Swap to publish it; a consumer only ever
// reads the active buffer.
//
// The flag flip is a single atomic store visible to both sides. This is
// correct only under single-producer/single-consumer discipline: the consumer
// must finish reading before the next Swap lands a new write on top of the
// buffer it just read. Multiple concurrent writers or readers need a
// different mechanism.
type Double struct {
	a, b []float64

	// true when a is active.
	aActive atomic.Bool
}

// NewDouble returns a Double with two zero-filled buffers of the given size.
// The buffers are never reallocated afterwards.
func NewDouble(size int) *Double {
	if size < 0 {
		size = 0
	}

	d := &Double{
		a: make([]float64, size),
		b: make([]float64, size),
	}
	d.aActive.Store(true)

	return d
}

// Size returns the length of each buffer.
func (d *Double) Size() int {
	return len(d.a)
}

// Active returns the buffer currently safe to read.
func (d *Double) Active() []float64 {
	if d.aActive.Load() {
		return d.a
	}

	return d.b
}

// Inactive returns the buffer the producer may write into.
func (d *Double) Inactive() []float64 {
	if d.aActive.Load() {
		return d.b
	}

	return d.a
}

// Swap publishes the inactive buffer as active.
func (d *Double) Swap() {
	d.aActive.Store(!d.aActive.Load())
}
