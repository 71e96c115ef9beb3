// Package adaptor provides restricted containers: a stack, a queue, and a
// priority queue. They expose only push, peek, and pop, plus a Snapshot
// method that copies the backing storage in observation order so the
// containers can be printed by reprint without being drained.
package adaptor

import (
	"cmp"
	"container/heap"
	"slices"
)

// Stack is a last-in first-out container.
type Stack[T any] struct {
	items []T
}

// NewStack returns a stack holding items, pushed in order.
func NewStack[T any](items ...T) *Stack[T] {
	return &Stack[T]{items: slices.Clone(items)}
}

// Push adds v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	n := len(s.items) - 1
	v := s.items[n]
	s.items[n] = zero
	s.items = s.items[:n]
	return v, true
}

// Peek returns the top element.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// Snapshot returns a copy of the elements, top first.
func (s *Stack[T]) Snapshot() any {
	out := slices.Clone(s.items)
	slices.Reverse(out)
	if out == nil {
		out = []T{}
	}
	return out
}

// Queue is a first-in first-out container.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns a queue holding items, pushed in order.
func NewQueue[T any](items ...T) *Queue[T] {
	return &Queue[T]{items: slices.Clone(items)}
}

// Push adds v at the back.
func (q *Queue[T]) Push(v T) { q.items = append(q.items, v) }

// Pop removes and returns the front element.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// Reclaim the consumed prefix once it dominates the slice.
	if q.head > 32 && q.head*2 > len(q.items) {
		q.items = slices.Clone(q.items[q.head:])
		q.head = 0
	}
	return v, true
}

// Peek returns the front element.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head == len(q.items) {
		var zero T
		return zero, false
	}
	return q.items[q.head], true
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Snapshot returns a copy of the elements, front first.
func (q *Queue[T]) Snapshot() any {
	out := make([]T, q.Len())
	copy(out, q.items[q.head:])
	return out
}

// PriorityQueue is a binary heap ordered by a less function. Pop returns the
// element that sorts first.
type PriorityQueue[T any] struct {
	h binaryHeap[T]
}

// NewPriorityQueue returns an empty queue ordered by less.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: binaryHeap[T]{less: less}}
}

// NewMinQueue returns an empty queue that pops the smallest element first.
func NewMinQueue[T cmp.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueue(cmp.Less[T])
}

// NewMaxQueue returns an empty queue that pops the largest element first.
func NewMaxQueue[T cmp.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueue(func(a, b T) bool { return cmp.Less(b, a) })
}

// Push adds v.
func (pq *PriorityQueue[T]) Push(v T) { heap.Push(&pq.h, v) }

// Pop removes and returns the first element.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if len(pq.h.items) == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&pq.h).(T), true
}

// Peek returns the first element.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if len(pq.h.items) == 0 {
		var zero T
		return zero, false
	}
	return pq.h.items[0], true
}

// Len returns the number of elements.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h.items) }

// Snapshot returns a copy of the heap array. Only the first element is
// guaranteed to be in priority order.
func (pq *PriorityQueue[T]) Snapshot() any {
	out := make([]T, len(pq.h.items))
	copy(out, pq.h.items)
	return out
}

// binaryHeap implements heap.Interface.
type binaryHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h binaryHeap[T]) Len() int           { return len(h.items) }
func (h binaryHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h binaryHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *binaryHeap[T]) Push(x any) { h.items = append(h.items, x.(T)) }

func (h *binaryHeap[T]) Pop() any {
	var zero T
	n := len(h.items) - 1
	v := h.items[n]
	h.items[n] = zero
	h.items = h.items[:n]
	return v
}
