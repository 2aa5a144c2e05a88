package mesh

import "github.com/google/btree"

// pathRegistry is a sorted, path-id-keyed index over a Library's recorded
// [IndexRanges], backed by github.com/google/btree the same way the
// teacher's sweep status structure keys a btree.BTreeG by sweep position —
// here the ordering key is simply path id, so paths can be enumerated or
// looked up in sorted order without a linear scan over every partition call
// a caller has ever made against the library.
type pathRegistry struct {
	tree *btree.BTreeG[pathEntry]
}

type pathEntry struct {
	pathID uint16
	ranges IndexRanges
}

func pathEntryLess(a, b pathEntry) bool {
	return a.pathID < b.pathID
}

func newPathRegistry() *pathRegistry {
	return &pathRegistry{tree: btree.NewG[pathEntry](2, pathEntryLess)}
}

func (r *pathRegistry) put(pathID uint16, ranges IndexRanges) {
	r.tree.ReplaceOrInsert(pathEntry{pathID: pathID, ranges: ranges})
}

func (r *pathRegistry) get(pathID uint16) (IndexRanges, bool) {
	entry, ok := r.tree.Get(pathEntry{pathID: pathID})
	if !ok {
		return IndexRanges{}, false
	}
	return entry.ranges, true
}

func (r *pathRegistry) ids() []uint16 {
	ids := make([]uint16, 0, r.tree.Len())
	r.tree.Ascend(func(e pathEntry) bool {
		ids = append(ids, e.pathID)
		return true
	})
	return ids
}
