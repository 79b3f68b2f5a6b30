package biquad

import "sync/atomic"

// Snapshot is an immutable coefficient and parameter set handed from a
// control goroutine to the audio goroutine.
type Snapshot struct {
	Coefficients Coefficients
	Parameters   Parameters

	version uint64
}

// Exchange is a single-writer, single-reader handoff for [Snapshot] values.
// The writer calls Publish from any goroutine; the audio goroutine calls
// [Filter.Acquire] at block boundaries. Neither side takes a lock, and the
// reader never observes a partially written coefficient vector. A Filter
// should acquire from one Exchange only, since versions are per Exchange.
//
// The zero value is ready to use and holds no snapshot.
type Exchange struct {
	current atomic.Pointer[Snapshot]
	seq     atomic.Uint64
}

// Publish makes s the current snapshot. It allocates a copy, so it belongs
// on the control side only.
func (e *Exchange) Publish(s Snapshot) {
	s.version = e.seq.Add(1)
	e.current.Store(&s)
}

// Load returns the current snapshot, or false if nothing was published.
func (e *Exchange) Load() (Snapshot, bool) {
	p := e.current.Load()
	if p == nil {
		return Snapshot{}, false
	}
	return *p, true
}

// Acquire applies the latest snapshot from e if it is newer than the one
// applied previously and reports whether anything changed. Coefficients
// and parameters are replaced together; the delay line is kept. Acquire
// does not allocate.
func (f *Filter) Acquire(e *Exchange) bool {
	p := e.current.Load()
	if p == nil || p.version == f.version {
		return false
	}
	f.coeffs = p.Coefficients
	f.SetParameters(p.Parameters)
	f.version = p.version
	return true
}
