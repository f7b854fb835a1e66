package decoder

// rawCoord is an (x, y) pair still in the raw integer domain: delta
// accumulation happens here, exactly, before any conversion to real units
// (spec §3 "Raw intermediate", §9 "Raw-integer domain for deltas").
type rawCoord struct {
	X, Y int64
}

// rawPair is one undecoded (v1, v2) varint pair read from the coordinate
// stream, still unclassified as absolute or delta.
type rawPair struct {
	V1, V2 uint64
}

// segmentParts walks the coordinate stream following the consecutive-
// absolute-pair rule (spec §4.5 PartSegmenter) and splits it into parts.
//
// first is the already-placed first coordinate (absolute, read before
// segmentation begins per spec §4.4 step 6c); pairs holds the remaining
// point_count-1 (v1, v2) pairs in stream order. threshold classifies a pair
// as absolute (v1 >= threshold) or delta-zigzag (v1 < threshold).
//
// When refine is true, the optional tie-break from spec §4.5/§9 open
// question 2 applies: a pair that would otherwise open a new one-point part
// because it is the absolute immediately following another absolute is
// folded into the current part instead, if it is the last pair in the
// stream (so no part ends up a trailing singleton created purely by an
// encoding accident).
func segmentParts(first rawCoord, pairs []rawPair, threshold int64, refine bool) [][]rawCoord {
	parts := make([][]rawCoord, 0, 1)
	current := []rawCoord{first}
	currX, currY := first.X, first.Y
	prevAbsolute := true // the first coordinate counts as absolute (spec §4.5)

	for i, p := range pairs {
		isLast := i == len(pairs)-1
		if int64(p.V1) >= threshold {
			currX, currY = int64(p.V1), int64(p.V2)
			if prevAbsolute {
				if refine && isLast {
					// Optional refinement: a trailing lone absolute is an
					// encoding optimization, not a boundary.
					current = append(current, rawCoord{currX, currY})
				} else {
					parts = append(parts, current)
					current = []rawCoord{{currX, currY}}
				}
			} else {
				// Large jump that didn't fit efficiently as a delta; not a
				// boundary because the previous pair wasn't absolute.
				current = append(current, rawCoord{currX, currY})
			}
			prevAbsolute = true
			continue
		}

		dx, dy := zigzag(p.V1), zigzag(p.V2)
		currX += dx
		currY += dy
		current = append(current, rawCoord{currX, currY})
		prevAbsolute = false
	}

	parts = append(parts, current)
	return parts
}
