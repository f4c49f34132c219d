// This file implements Path, the ordered vertex sequence produced by
// traversal algorithms.

package core

// Path is an ordered, randomly indexable, double-ended sequence of vertex
// values plus the summed edge weight (Length) of the route. It is backed
// by a ring buffer: random access and removal from either end are O(1),
// pushes are O(1) amortized.
//
// Traversals build a Path by backtracking predecessor links from the goal,
// so construction is naturally front-loaded via PushFront.
//
// The zero-size Path is the "no path exists" sentinel: callers can treat
// "no path" uniformly with "trivial path" by checking Len.
type Path[V comparable] struct {
	buf    []V
	head   int
	size   int
	length float64
}

// NewPath returns an empty Path.
func NewPath[V comparable]() *Path[V] { return &Path[V]{} }

// Len returns the number of vertices on the path.
func (p *Path[V]) Len() int { return p.size }

// Length returns the summed edge weight of the route.
func (p *Path[V]) Length() float64 { return p.length }

// AddLength accumulates w into the route weight.
func (p *Path[V]) AddLength(w float64) { p.length += w }

// PushFront prepends v. Complexity: O(1) amortized.
func (p *Path[V]) PushFront(v V) {
	p.grow()
	p.head = (p.head - 1 + len(p.buf)) % len(p.buf)
	p.buf[p.head] = v
	p.size++
}

// PushBack appends v. Complexity: O(1) amortized.
func (p *Path[V]) PushBack(v V) {
	p.grow()
	p.buf[(p.head+p.size)%len(p.buf)] = v
	p.size++
}

// PopFront removes and returns the first vertex,
// or (zero, false) on an empty path.
func (p *Path[V]) PopFront() (V, bool) {
	var zero V
	if p.size == 0 {
		return zero, false
	}
	v := p.buf[p.head]
	p.buf[p.head] = zero
	p.head = (p.head + 1) % len(p.buf)
	p.size--

	return v, true
}

// PopBack removes and returns the last vertex,
// or (zero, false) on an empty path.
func (p *Path[V]) PopBack() (V, bool) {
	var zero V
	if p.size == 0 {
		return zero, false
	}
	i := (p.head + p.size - 1) % len(p.buf)
	v := p.buf[i]
	p.buf[i] = zero
	p.size--

	return v, true
}

// At returns the i-th vertex from the front, or (zero, false) if i is out
// of range. Complexity: O(1).
func (p *Path[V]) At(i int) (V, bool) {
	var zero V
	if i < 0 || i >= p.size {
		return zero, false
	}

	return p.buf[(p.head+i)%len(p.buf)], true
}

// Front returns the first vertex, or (zero, false) on an empty path.
func (p *Path[V]) Front() (V, bool) { return p.At(0) }

// Back returns the last vertex, or (zero, false) on an empty path.
func (p *Path[V]) Back() (V, bool) { return p.At(p.size - 1) }

// Reverse flips the sequence in place. Complexity: O(n).
func (p *Path[V]) Reverse() {
	for i, j := 0, p.size-1; i < j; i, j = i+1, j-1 {
		a := (p.head + i) % len(p.buf)
		b := (p.head + j) % len(p.buf)
		p.buf[a], p.buf[b] = p.buf[b], p.buf[a]
	}
}

// Slice returns the vertices front-to-back as a fresh slice.
// Complexity: O(n).
func (p *Path[V]) Slice() []V {
	out := make([]V, p.size)
	for i := 0; i < p.size; i++ {
		out[i] = p.buf[(p.head+i)%len(p.buf)]
	}

	return out
}

// grow doubles the ring buffer when full, re-linearizing the contents.
func (p *Path[V]) grow() {
	if p.size < len(p.buf) {
		return
	}
	capacity := len(p.buf) * 2
	if capacity == 0 {
		capacity = 8
	}
	buf := make([]V, capacity)
	for i := 0; i < p.size; i++ {
		buf[i] = p.buf[(p.head+i)%len(p.buf)]
	}
	p.buf = buf
	p.head = 0
}
