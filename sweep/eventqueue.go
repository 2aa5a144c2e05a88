package sweep

import "github.com/emirpasic/gods/trees/binaryheap"

// EventQueue is a min-heap over sweep order, wrapping
// github.com/emirpasic/gods/trees/binaryheap the way the teacher wraps a
// gods tree for its own status structures. Unlike the teacher's event
// queues, which are keyed maps that merge same-position entries together,
// this queue allows genuine duplicates: the sweep driver pushes the next
// event for an edge without checking whether that endpoint index is already
// queued from a sibling edge, and relies on [Visited] to discard the second
// copy when it surfaces (§9, "heap with stale entries"). A binary heap has
// no uniqueness constraint, which is exactly the property a keyed tree
// lacks.
type EventQueue struct {
	heap *binaryheap.Heap
}

// NewEventQueue returns an empty event queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{
		heap: binaryheap.NewWith(func(a, b interface{}) int {
			return Compare(a.(EventPoint), b.(EventPoint))
		}),
	}
}

// Push inserts p into the queue.
func (q *EventQueue) Push(p EventPoint) {
	q.heap.Push(p)
}

// Pop removes and returns the smallest event point in sweep order. ok is
// false if the queue is empty.
func (q *EventQueue) Pop() (p EventPoint, ok bool) {
	v, ok := q.heap.Pop()
	if !ok {
		return EventPoint{}, false
	}
	return v.(EventPoint), true
}

// Peek returns the smallest event point without removing it.
func (q *EventQueue) Peek() (p EventPoint, ok bool) {
	v, ok := q.heap.Peek()
	if !ok {
		return EventPoint{}, false
	}
	return v.(EventPoint), true
}

// Empty reports whether the queue has no entries.
func (q *EventQueue) Empty() bool {
	return q.heap.Empty()
}

// Len returns the number of entries currently queued, including any stale
// ones not yet discarded.
func (q *EventQueue) Len() int {
	return q.heap.Size()
}
