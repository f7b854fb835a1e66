package decoder

// Magic is the four-byte prefix every ST_Geometry blob begins with (spec §6).
var Magic = []byte{0x64, 0x11, 0x0F, 0x00}

// AbsoluteThreshold is the default ABSOLUTE_THRESHOLD (spec §6), exported for
// callers that want to report or compare against it without reaching into
// Options.
const AbsoluteThreshold = absoluteThreshold

// Decode parses one ST_Geometry blob into a Geometry, using crs to convert
// raw integer coordinates to real-valued units and opts to control the
// decoder's optional behaviors. This is the package's single entry point
// (spec §4.4 BlobParser); it is a pure function of its inputs (spec §5).
func Decode(blob []byte, crs CRSFrame, opts Options) (Geometry, error) {
	r := newVarintReader(blob)

	if err := r.readTag(Magic); err != nil {
		return Geometry{}, err
	}

	pointCount, err := r.readU32LE()
	if err != nil {
		return Geometry{}, err
	}

	// Spec §4.4 step 2: an empty geometry is reported as soon as point_count
	// is known, before size_hint or geom_flags are read.
	if pointCount == 0 {
		return Geometry{}, errEmptyGeometry(r.pos)
	}

	if _, err := r.readVarint(); err != nil { // size_hint, informational only
		return Geometry{}, err
	}

	flagsOffset := r.pos
	flagsRaw, err := r.readVarint()
	if err != nil {
		return Geometry{}, err
	}
	flags, err := classifyFlags(flagsRaw, flagsOffset)
	if err != nil {
		return Geometry{}, err
	}

	threshold := opts.threshold()

	if flags.shape == shapePoint {
		return decodePoint(r, crs, flags, threshold, opts)
	}
	return decodeMultiPart(r, crs, flags, pointCount, threshold, opts)
}

// decodePoint implements the Point fast path. Spec §4.4 step 5's literal
// text describes a bare absolute (x, y) pair with no bounding box or
// part-info region, but the worked example in spec §8 scenario S1 only
// reproduces its documented coordinate when the same bounding-box and
// part-info preamble as the non-Point path (§4.4 step 6a/6b) is read first:
// real blobs carry that preamble for every shape, Point included. See
// DESIGN.md's Open Question Decisions for the trace that established this.
func decodePoint(r *varintReader, crs CRSFrame, flags geometryFlags, threshold int64, opts Options) (Geometry, error) {
	first, err := readBBoxAndFirstCoord(r, threshold)
	if err != nil {
		return Geometry{}, err
	}

	x, y := crs.toXY(first.X, first.Y)
	coord := Coordinate{X: x, Y: y}

	if flags.hasZ {
		rawZ, err := r.readVarint()
		if err != nil {
			return Geometry{}, err
		}
		coord.Z = crs.toZ(int64(rawZ))
	}

	if err := checkTrailing(r, opts); err != nil {
		return Geometry{}, err
	}

	return Geometry{
		Type:   GeometryTypePoint,
		HasZ:   flags.hasZ,
		Bounds: boundsOf([]Coordinate{coord}),
		Point:  coord,
	}, nil
}

// readBBoxAndFirstCoord implements spec §4.4 steps 6a and 6b: four
// bounding-box varints consumed for stream position only, then the
// opaque part-info region skipped up to the first coordinate at or above
// threshold (first_x), followed immediately by first_y.
func readBBoxAndFirstCoord(r *varintReader, threshold int64) (rawCoord, error) {
	for i := 0; i < 4; i++ {
		if _, err := r.readVarint(); err != nil {
			return rawCoord{}, err
		}
	}

	firstX, err := skipPartInfo(r, threshold)
	if err != nil {
		return rawCoord{}, err
	}
	rawFirstY, err := r.readVarint()
	if err != nil {
		return rawCoord{}, err
	}
	return rawCoord{X: firstX, Y: int64(rawFirstY)}, nil
}

// decodeMultiPart implements spec §4.4 step 6-8 for Polyline, Polygon, and
// MultiPoint shapes: bounding box, part-info skip, coordinate stream via
// PartSegmenter, optional Z tail, and shape-from-part-count assembly.
func decodeMultiPart(r *varintReader, crs CRSFrame, flags geometryFlags, pointCount uint32, threshold int64, opts Options) (Geometry, error) {
	// Bounding box: consumed for stream position only (spec §4.4 step 6a).
	// The result's Bounds is always derived from the decoded coordinates,
	// which is never wrong, rather than trusted from this box.
	first, err := readBBoxAndFirstCoord(r, threshold)
	if err != nil {
		return Geometry{}, err
	}

	pairs := make([]rawPair, pointCount-1)
	for i := range pairs {
		v1, err := r.readVarint()
		if err != nil {
			return Geometry{}, err
		}
		v2, err := r.readVarint()
		if err != nil {
			return Geometry{}, err
		}
		pairs[i] = rawPair{V1: v1, V2: v2}
	}

	parts := segmentParts(first, pairs, threshold, opts.TwoPointRefinement)

	coordParts := make([][]Coordinate, len(parts))
	for pi, part := range parts {
		cs := make([]Coordinate, len(part))
		for ci, rc := range part {
			x, y := crs.toXY(rc.X, rc.Y)
			cs[ci] = Coordinate{X: x, Y: y}
		}
		coordParts[pi] = cs
	}

	if flags.hasZ {
		if err := attachZ(r, crs, coordParts, int(pointCount)); err != nil {
			return Geometry{}, err
		}
	}

	if err := checkTrailing(r, opts); err != nil {
		return Geometry{}, err
	}

	g := assembleShape(flags, coordParts, opts.RingPolicy)
	g.Bounds = boundsOf(g.Flatten())
	return g, nil
}

// skipPartInfo implements spec §4.4 step 6b: discard varints below threshold
// until the first one at or above it, which is first_x.
func skipPartInfo(r *varintReader, threshold int64) (int64, error) {
	for {
		if r.remaining() == 0 {
			return 0, errInvalidCoordinateStream(r.pos)
		}
		v, _, err := r.peekVarint()
		if err != nil {
			return 0, errInvalidCoordinateStream(r.pos)
		}
		if int64(v) >= threshold {
			if _, err := r.readVarint(); err != nil {
				return 0, err
			}
			return int64(v), nil
		}
		if _, err := r.readVarint(); err != nil {
			return 0, errInvalidCoordinateStream(r.pos)
		}
	}
}

// attachZ implements spec §4.6: point_count z varints following the XY
// stream, first absolute then zigzag deltas, assigned in flattened
// part-then-point order.
func attachZ(r *varintReader, crs CRSFrame, coordParts [][]Coordinate, pointCount int) error {
	var currZ int64
	idx := 0
	for pi := range coordParts {
		for ci := range coordParts[pi] {
			v, err := r.readVarint()
			if err != nil {
				return errTruncatedZStream(r.pos, idx, pointCount)
			}
			if idx == 0 {
				currZ = int64(v)
			} else {
				currZ += zigzag(v)
			}
			coordParts[pi][ci].Z = crs.toZ(currZ)
			idx++
		}
	}
	return nil
}

func checkTrailing(r *varintReader, opts Options) error {
	if opts.Strict && r.remaining() > 0 {
		return errTrailingBytes(r.pos, r.remaining())
	}
	return nil
}

// assembleShape implements spec §4.4 step 7 and §4.3: the final variant is
// chosen from the shape nibble plus the number of parts segmentation
// produced, never from a flag bit.
func assembleShape(flags geometryFlags, parts [][]Coordinate, ringPolicy RingPolicy) Geometry {
	g := Geometry{HasZ: flags.hasZ}

	switch flags.shape {
	case shapePolyline:
		if len(parts) == 1 {
			g.Type = GeometryTypeLineString
			g.Line = parts[0]
		} else {
			g.Type = GeometryTypeMultiLineString
			g.Lines = parts
		}

	case shapePolygon:
		if len(parts) == 1 {
			g.Type = GeometryTypePolygon
			g.Rings = parts
			break
		}
		switch ringPolicy {
		case RingPolicyOrientation:
			polygons := assemblePolygonsByOrientation(parts)
			if len(polygons) == 1 {
				g.Type = GeometryTypePolygon
				g.Rings = polygons[0]
			} else {
				g.Type = GeometryTypeMultiPolygon
				g.Polygons = polygons
			}
		default: // RingPolicyHoles
			g.Type = GeometryTypePolygon
			g.Rings = parts
		}

	case shapeMultiPoint:
		g.Type = GeometryTypeMultiPoint
		for _, part := range parts {
			g.Points = append(g.Points, part...)
		}
	}

	return g
}
