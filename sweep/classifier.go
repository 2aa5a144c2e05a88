package sweep

import "github.com/vecmesh/partitioner/geom"

// Classification labels an endpoint by comparing it to its two cyclic
// subpath neighbors in sweep order.
type Classification uint8

const (
	// Min endpoints have both neighbors at or after them in sweep order —
	// a new pair of active edges is born here.
	Min Classification = iota
	// Regular endpoints have exactly one neighbor before them in sweep
	// order — one active edge advances through here.
	Regular
	// Max endpoints have both neighbors before them in sweep order — a pair
	// of active edges dies here.
	Max
)

// String returns a human-readable name for the classification.
func (c Classification) String() string {
	switch c {
	case Min:
		return "Min"
	case Regular:
		return "Regular"
	case Max:
		return "Max"
	default:
		return "Classification(?)"
	}
}

// Classifier labels endpoints by sweep order without needing to know
// anything about subpath storage: the caller resolves the cyclic prev/next
// endpoint indices (through its own Subpath ranges) and passes them in along
// with a function to resolve any endpoint index to its position.
type Classifier struct {
	PositionOf func(endpointIndex uint32) geom.Point32
}

// Classify labels endpoint i, given its cyclic subpath neighbors prev and
// next (§4.4).
func (c Classifier) Classify(i, prev, next uint32) Classification {
	p := EventPoint{Position: c.PositionOf(i), EndpointIndex: i}
	prevPoint := EventPoint{Position: c.PositionOf(prev), EndpointIndex: prev}
	nextPoint := EventPoint{Position: c.PositionOf(next), EndpointIndex: next}

	prevBeforeI := prevPoint.Less(p)
	nextBeforeI := nextPoint.Less(p)

	switch {
	case prevBeforeI && nextBeforeI:
		return Max
	case prevBeforeI != nextBeforeI:
		return Regular
	default:
		return Min
	}
}
