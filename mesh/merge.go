package mesh

// Merge appends every vertex, index, and B-quad from srcs into dst in order,
// offsetting every index so each source's internal references stay correct,
// and returns the [IndexRanges] each source ended up occupying in dst. This
// is the caller-side half of the parallelism story from §5: partition
// distinct paths into separate libraries on separate goroutines, then merge
// the results into one library before handing it to a renderer.
func Merge(dst *Library, srcs ...*Library) []IndexRanges {
	ranges := make([]IndexRanges, len(srcs))
	for i, src := range srcs {
		ranges[i] = mergeOne(dst, src)
	}
	return ranges
}

func mergeOne(dst *Library, src *Library) IndexRanges {
	start := dst.SnapshotLengths()
	vertexOffset := start.Vertices

	for i := 0; i < src.Len(); i++ {
		pos := src.bVertexPositions[i]
		pathID := src.bVertexPathIDs[i]
		lbd := src.bVertexLoopBlinnData[i]
		dst.PushVertex(pos, pathID, lbd)
	}

	for _, idx := range src.interiorIndices {
		dst.interiorIndices = append(dst.interiorIndices, idx+vertexOffset)
	}
	for _, idx := range src.curveIndices {
		dst.curveIndices = append(dst.curveIndices, idx+vertexOffset)
	}

	for _, bq := range src.bQuads {
		dst.AddBQuad(BQuad{
			UL: bq.UL + vertexOffset, UC: offsetOrSentinel(bq.UC, vertexOffset), UR: bq.UR + vertexOffset,
			LL: bq.LL + vertexOffset, LC: offsetOrSentinel(bq.LC, vertexOffset), LR: bq.LR + vertexOffset,
		})
	}

	for _, pathID := range src.Paths() {
		r, _ := src.RangesForPath(pathID)
		dst.RecordPath(pathID, offsetRanges(r, start))
	}

	end := dst.SnapshotLengths()
	return RangesBetween(start, end)
}

// offsetOrSentinel offsets i by delta unless i is the SENTINEL value, which
// must pass through unchanged regardless of how many vertices precede it.
func offsetOrSentinel(i, delta uint32) uint32 {
	const sentinel = ^uint32(0)
	if i == sentinel {
		return sentinel
	}
	return i + delta
}

func offsetRanges(r IndexRanges, start MeshLengths) IndexRanges {
	return IndexRanges{
		BVertexPositions:     offsetRange(r.BVertexPositions, start.Vertices),
		CoverInteriorIndices: offsetRange(r.CoverInteriorIndices, start.InteriorIndices),
		CoverCurveIndices:    offsetRange(r.CoverCurveIndices, start.CurveIndices),
		BQuads:               offsetRange(r.BQuads, start.BQuads),
	}
}

func offsetRange(r IndexRange, delta uint32) IndexRange {
	return IndexRange{Start: r.Start + delta, End: r.End + delta}
}
