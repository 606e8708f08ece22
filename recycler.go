package spritebatch

// recycler hands out fixed-shape records and takes them back for reuse,
// so a steady-state frame allocates nothing.
// It is not safe for concurrent use.
type recycler[T any] struct {
	free []*T
	live int
}

// create returns a zeroed record, reusing a released one when available.
func (r *recycler[T]) create() *T {
	r.live++
	n := len(r.free)
	if n == 0 {
		return new(T)
	}
	v := r.free[n-1]
	r.free[n-1] = nil
	r.free = r.free[:n-1]
	return v
}

// recycle zeroes v and keeps it for the next create.
func (r *recycler[T]) recycle(v *T) {
	var zero T
	*v = zero
	r.free = append(r.free, v)
	r.live--
}

// freeAll drops every pooled record.
func (r *recycler[T]) freeAll() {
	clear(r.free)
	r.free = r.free[:0]
}
