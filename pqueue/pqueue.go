// Package pqueue implements an indexed binary min-heap keyed by a mutable
// float64 priority, supporting Insert, DecreaseKey, and ExtractMin.
//
// Unlike the lazy-duplicate strategy (push a fresh entry on every
// improvement, skip stale pops), this heap tracks each item's position so
// a priority improvement re-sifts the existing entry in place. Best-first
// search relies on this for a frontier that never holds duplicates.
//
// Ties are broken by insertion sequence: for a fixed insertion order,
// extraction order is fully deterministic.
//
// Complexity:
//
//   - Insert:      O(log n)
//   - DecreaseKey: O(log n)
//   - ExtractMin:  O(log n)
//   - Min, Len:    O(1)
package pqueue

// Item is one heap entry. The zero value is not usable; Items are created
// by Heap.Insert and owned by the heap until extracted.
type Item[T any] struct {
	// Value is the payload carried by this entry.
	Value T

	priority float64
	seq      uint64 // insertion sequence, tie-break key
	index    int    // position in the heap array, -1 once extracted
}

// Priority returns the entry's current key.
func (it *Item[T]) Priority() float64 { return it.priority }

// InHeap reports whether the entry is still queued.
func (it *Item[T]) InHeap() bool { return it.index >= 0 }

// Heap is a binary min-heap of Items. The zero value is ready to use.
type Heap[T any] struct {
	items []*Item[T]
	seq   uint64
}

// New returns an empty heap.
func New[T any]() *Heap[T] { return &Heap[T]{} }

// Len returns the number of queued entries.
func (h *Heap[T]) Len() int { return len(h.items) }

// Insert queues value with the given priority and returns its entry,
// which the caller may later pass to DecreaseKey.
func (h *Heap[T]) Insert(value T, priority float64) *Item[T] {
	it := &Item[T]{Value: value, priority: priority, seq: h.seq, index: len(h.items)}
	h.seq++
	h.items = append(h.items, it)
	h.siftUp(it.index)

	return it
}

// DecreaseKey lowers it's priority and restores heap order. Returns false
// without mutating anything if it is no longer queued or if priority is
// not an improvement.
func (h *Heap[T]) DecreaseKey(it *Item[T], priority float64) bool {
	if it.index < 0 || it.index >= len(h.items) || h.items[it.index] != it {
		return false
	}
	if priority >= it.priority {
		return false
	}
	it.priority = priority
	h.siftUp(it.index)

	return true
}

// ExtractMin removes and returns the minimum-key entry's value.
// The second result is false on an empty heap.
func (h *Heap[T]) ExtractMin() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.swap(0, last)
	h.items[last] = nil
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}
	top.index = -1

	return top.Value, true
}

// Min returns the minimum-key entry without removing it,
// or (nil, false) on an empty heap.
func (h *Heap[T]) Min() (*Item[T], bool) {
	if len(h.items) == 0 {
		return nil, false
	}

	return h.items[0], true
}

// less orders by priority, then by insertion sequence for stable ties.
func (h *Heap[T]) less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seq < b.seq
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}
