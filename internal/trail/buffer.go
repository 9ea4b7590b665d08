// Package trail holds the bounded position history drawn behind each particle.
package trail

// Buffer is a capacity-bounded FIFO queue.
// Elements are kept on two stacks: back holds new elements in push order,
// front holds older elements reversed so the oldest sits on top.
// Push and Pop are amortized O(1).
type Buffer[T any] struct {
	front []T
	back  []T
	cap   int
}

// New creates a Buffer holding at most capacity elements
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{cap: capacity}
}

// Len returns the number of stored elements
func (b *Buffer[T]) Len() int {
	return len(b.front) + len(b.back)
}

// Cap returns the current capacity
func (b *Buffer[T]) Cap() int {
	return b.cap
}

// Push appends v as the newest element, evicting the oldest when full.
// A zero-capacity buffer stores nothing.
func (b *Buffer[T]) Push(v T) {
	if b.cap == 0 {
		return
	}
	if b.Len() >= b.cap {
		b.Pop()
	}
	b.back = append(b.back, v)
}

// Pop removes and returns the oldest element.
// ok is false when the buffer is empty.
func (b *Buffer[T]) Pop() (v T, ok bool) {
	if len(b.front) == 0 {
		for i := len(b.back) - 1; i >= 0; i-- {
			b.front = append(b.front, b.back[i])
		}
		clear(b.back)
		b.back = b.back[:0]
	}
	n := len(b.front)
	if n == 0 {
		return v, false
	}
	v = b.front[n-1]
	var zero T
	b.front[n-1] = zero
	b.front = b.front[:n-1]
	return v, true
}

// Get returns the i-th element counting from the oldest (0) to the newest (Len()-1).
// It panics when i is out of range.
func (b *Buffer[T]) Get(i int) T {
	if i < len(b.front) {
		return b.front[len(b.front)-i-1]
	}
	return b.back[i-len(b.front)]
}

// Each calls fn for every element from oldest to newest
func (b *Buffer[T]) Each(fn func(i int, v T)) {
	n := len(b.front)
	for i := n - 1; i >= 0; i-- {
		fn(n-1-i, b.front[i])
	}
	for i, v := range b.back {
		fn(n+i, v)
	}
}

// SetCapacity changes the capacity, evicting the oldest elements when shrinking
func (b *Buffer[T]) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	for b.Len() > capacity {
		b.Pop()
	}
	b.cap = capacity
}

// AppendTo appends the contents to dst from oldest to newest
func (b *Buffer[T]) AppendTo(dst []T) []T {
	for i := len(b.front) - 1; i >= 0; i-- {
		dst = append(dst, b.front[i])
	}
	return append(dst, b.back...)
}
