package partitioner

import (
	"fmt"

	"github.com/vecmesh/partitioner/geom"
	"github.com/vecmesh/partitioner/mesh"
	"github.com/vecmesh/partitioner/sweep"
	"github.com/vecmesh/partitioner/types"
)

// Partition runs the plane sweep over the subpaths in [firstSubpath,
// lastSubpath) — all belonging to the same logical input path, tagged
// pathID in the emitted mesh — and returns the index ranges the call
// contributed to the partitioner's [mesh.Library] (§4.5).
//
// Multiple disjoint subpaths (e.g. a shape with holes) are swept together so
// self-intersections and nesting between them are resolved correctly; pass a
// one-subpath range to partition a single closed contour on its own.
func (p *Partitioner) Partition(pathID uint16, firstSubpath, lastSubpath uint32) mesh.IndexRanges {
	start := p.library.SnapshotLengths()

	p.activeEdges = sweep.NewList()
	heap := sweep.NewEventQueue()
	classifier := sweep.Classifier{PositionOf: func(i uint32) geom.Point32 { return p.endpoints[i].Position }}

	for sp := firstSubpath; sp < lastSubpath; sp++ {
		subpath := p.subpaths[sp]
		for i := subpath.FirstEndpointIndex; i < subpath.LastEndpointIndex; i++ {
			prev, next := p.prevIndex(i), p.nextIndex(i)
			if classifier.Classify(i, prev, next) == sweep.Min {
				heap.Push(sweep.EventPoint{Position: p.endpoints[i].Position, EndpointIndex: i})
			}
		}
	}

	for !heap.Empty() {
		ep, ok := heap.Peek()
		if !ok {
			break
		}
		if p.visited.IsVisited(ep.EndpointIndex) {
			heap.Pop()
			continue
		}
		p.visited.Mark(ep.EndpointIndex)

		p.activeEdges.Stabilize(ep.Position.X, p.epsilon, p, func(i, j int, crossing geom.Point32) {
			p.emitBQuadsAroundActiveEdge(i, crossing.X, pathID)
			p.emitBQuadsAroundActiveEdge(j, crossing.X, pathID)
		})

		switch k := len(p.matchingActiveEdgeIndices(ep.EndpointIndex)); k {
		case 0:
			p.handleMin(ep, heap, pathID)
		case 1:
			p.handleRegular(ep, heap, pathID)
		case 2:
			p.handleMax(ep, heap, pathID)
		default:
			panic(fmt.Errorf("partitioner: endpoint %d matches %d active edges, want 0, 1, or 2", ep.EndpointIndex, k))
		}
	}

	end := p.library.SnapshotLengths()
	ranges := mesh.RangesBetween(start, end)
	p.library.RecordPath(pathID, ranges)
	return ranges
}

// matchingActiveEdgeIndices returns the active edge list positions currently
// targeting endpointIndex, in list order.
func (p *Partitioner) matchingActiveEdgeIndices(endpointIndex uint32) []int {
	var out []int
	for i := 0; i < p.activeEdges.Len(); i++ {
		if p.activeEdges.Get(i).RightEndpointIndex == endpointIndex {
			out = append(out, i)
		}
	}
	return out
}

// handleMin inserts the two active edges born at a Min event: the shared
// left vertex is pushed once, and the event's two adjacent path edges (to
// prev(p) and next(p)) become active edges ordered by the sign of their
// cross product (§4.5). The edge toward next(p) follows the path in
// increasing x, so it gets LeftToRight and Forward true; the edge toward
// prev(p) gets both false.
func (p *Partitioner) handleMin(ep sweep.EventPoint, heap *sweep.EventQueue, pathID uint16) {
	heap.Pop()

	j := 0
	for j < p.activeEdges.Len() {
		if p.activeEdges.YAtX(j, ep.Position.X, p.epsilon, p) > ep.Position.Y {
			break
		}
		j++
	}
	if j > 0 {
		p.emitBQuadsAroundActiveEdge(j-1, ep.Position.X, pathID)
	}

	leftVertexIdx := p.library.PushVertex(ep.Position, pathID, mesh.LoopBlinnData{Kind: mesh.Endpoint0})

	prev, next := p.prevIndex(ep.EndpointIndex), p.nextIndex(ep.EndpointIndex)
	prevPos, nextPos := p.endpoints[prev].Position, p.endpoints[next].Position

	cross := prevPos.Sub(ep.Position).CrossProduct(nextPos.Sub(ep.Position))
	// A control point is stored on the endpoint its edge runs into along the
	// path: next(p) for the edge toward next(p), p itself for the edge from prev(p).
	upperTarget, lowerTarget := next, prev
	upperCtrl, lowerCtrl := next, ep.EndpointIndex
	upperForward := true
	if types.OrientationFromCrossProduct(cross) != types.PointsClockwise {
		upperTarget, lowerTarget = prev, next
		upperCtrl, lowerCtrl = ep.EndpointIndex, next
		upperForward = false
	}

	upperAE := sweep.ActiveEdge{LeftVertexIndex: leftVertexIdx, ControlPointVertexIndex: Sentinel, RightEndpointIndex: upperTarget, LeftToRight: upperForward, Forward: upperForward}
	if ctrl, ok := p.controlPointPosition(upperCtrl); ok {
		upperAE.ControlPointVertexIndex = p.library.PushVertex(ctrl, pathID, mesh.LoopBlinnData{})
	}

	lowerAE := sweep.ActiveEdge{LeftVertexIndex: leftVertexIdx, ControlPointVertexIndex: Sentinel, RightEndpointIndex: lowerTarget, LeftToRight: !upperForward, Forward: !upperForward}
	if ctrl, ok := p.controlPointPosition(lowerCtrl); ok {
		lowerAE.ControlPointVertexIndex = p.library.PushVertex(ctrl, pathID, mesh.LoopBlinnData{})
	}

	p.activeEdges.InsertAt(j, upperAE, lowerAE)

	heap.Push(sweep.EventPoint{Position: nextPos, EndpointIndex: next})
	if prev != next {
		heap.Push(sweep.EventPoint{Position: prevPos, EndpointIndex: prev})
	}
}

// handleRegular advances the single active edge currently targeting ep to
// its next path neighbor, emitting the B-quad it closes off along the way
// (§4.5).
func (p *Partitioner) handleRegular(ep sweep.EventPoint, heap *sweep.EventQueue, pathID uint16) {
	heap.Pop()

	matches := p.matchingActiveEdgeIndices(ep.EndpointIndex)
	i := matches[0]

	before := p.activeEdges.Get(i)
	p.emitBQuadsAroundActiveEdge(i, ep.Position.X, pathID)
	ae := p.activeEdges.Get(i)

	if ae.LeftVertexIndex == before.LeftVertexIndex {
		// This active edge was not itself a bounding edge at ep.Position.X
		// (no-fill span, or already exactly there) — advance it manually.
		leftPos := p.VertexPosition(ae.LeftVertexIndex)
		if leftPos.DistanceSquaredTo(ep.Position) > p.epsilon*p.epsilon {
			ae.LeftVertexIndex = p.library.PushVertex(ep.Position, pathID, mesh.LoopBlinnData{})
			ae.Parity = !ae.Parity
		}
	}

	var newRight uint32
	if ae.Forward {
		newRight = p.nextIndex(ep.EndpointIndex)
	} else {
		newRight = p.prevIndex(ep.EndpointIndex)
	}

	var ctrlPos geom.Point32
	var hasCtrl bool
	if ae.Forward {
		ctrlPos, hasCtrl = p.controlPointPosition(newRight)
	} else {
		ctrlPos, hasCtrl = p.controlPointPosition(ep.EndpointIndex)
	}
	ae.ControlPointVertexIndex = Sentinel
	if hasCtrl {
		ae.ControlPointVertexIndex = p.library.PushVertex(ctrlPos, pathID, mesh.LoopBlinnData{})
	}
	ae.RightEndpointIndex = newRight
	p.activeEdges.Set(i, ae)

	newPos := p.endpoints[newRight].Position
	heap.Push(sweep.EventPoint{Position: newPos, EndpointIndex: newRight})
}

// handleMax closes off both active edges meeting at a Max event, emitting
// their final B-quads and removing them from the active edge list (§4.5).
func (p *Partitioner) handleMax(ep sweep.EventPoint, heap *sweep.EventQueue, pathID uint16) {
	matches := p.matchingActiveEdgeIndices(ep.EndpointIndex)
	i1, i2 := matches[0], matches[1]

	p.emitBQuadsAroundActiveEdge(i1, ep.Position.X, pathID)
	p.emitBQuadsAroundActiveEdge(i2, ep.Position.X, pathID)

	heap.Pop()
	p.activeEdges.RemoveIndices(i1, i2)
}
