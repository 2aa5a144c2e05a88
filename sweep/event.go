// Package sweep implements the plane-sweep machinery the partitioner drives:
// the totally-ordered event queue, the visited bitset, the active edge list
// with its bubble-sort stabilization and self-intersection primitives, and
// the endpoint classifier. None of these types know what a B-quad is — they
// only know how to keep the sweep's bookkeeping correct, the same division
// of labor the teacher draws between its sweepline status structure (pure
// ordering and intersection arithmetic) and the caller that decides what to
// do with each event.
package sweep

import "github.com/vecmesh/partitioner/geom"

// EventPoint is one entry in the sweep's event queue: a position and the
// input endpoint it corresponds to.
type EventPoint struct {
	Position      geom.Point32
	EndpointIndex uint32
}

// Less reports whether p sorts before q in sweep order: increasing x, then
// increasing y, then increasing endpoint index as a final, deterministic
// tiebreaker.
func (p EventPoint) Less(q EventPoint) bool {
	if p.Position.X != q.Position.X {
		return p.Position.X < q.Position.X
	}
	if p.Position.Y != q.Position.Y {
		return p.Position.Y < q.Position.Y
	}
	return p.EndpointIndex < q.EndpointIndex
}

// Compare returns a negative number if p sorts before q, zero if equal, and
// a positive number otherwise — the three-way convention
// github.com/emirpasic/gods comparators use.
func Compare(p, q EventPoint) int {
	switch {
	case p.Less(q):
		return -1
	case q.Less(p):
		return 1
	default:
		return 0
	}
}
