package decoder

// GeometryType is the closed set of variants a decode call can produce
// (spec §3, §9 "closed variant set over inheritance").
type GeometryType int

const (
	GeometryTypePoint GeometryType = iota
	GeometryTypeLineString
	GeometryTypePolygon
	GeometryTypeMultiPoint
	GeometryTypeMultiLineString
	GeometryTypeMultiPolygon
)

func (t GeometryType) String() string {
	switch t {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	case GeometryTypeMultiPoint:
		return "MultiPoint"
	case GeometryTypeMultiLineString:
		return "MultiLineString"
	case GeometryTypeMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// Coordinate is a single real-valued point in the target CRS's native units.
// Z is meaningless unless the owning Geometry's HasZ is true.
type Coordinate struct {
	X, Y, Z float64
}

// Bounds is a cached axis-aligned bounding box, populated from the decoded
// coordinates (spec §3 "cached bounds"; spec §8 testable property 7).
type Bounds struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// Contains reports whether (x, y) falls within the 2D extent of b.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Intersects reports whether b and other overlap in 2D.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX || other.MinX > b.MaxX ||
		other.MaxY < b.MinY || other.MinY > b.MaxY)
}

// Expand returns a copy of b grown by margin in every direction.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin, MaxX: b.MaxX + margin,
		MinY: b.MinY - margin, MaxY: b.MaxY + margin,
		MinZ: b.MinZ - margin, MaxZ: b.MaxZ + margin,
	}
}

func boundsOf(coords []Coordinate) Bounds {
	if len(coords) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: coords[0].X, MaxX: coords[0].X,
		MinY: coords[0].Y, MaxY: coords[0].Y,
		MinZ: coords[0].Z, MaxZ: coords[0].Z,
	}
	for _, c := range coords[1:] {
		if c.X < b.MinX {
			b.MinX = c.X
		}
		if c.X > b.MaxX {
			b.MaxX = c.X
		}
		if c.Y < b.MinY {
			b.MinY = c.Y
		}
		if c.Y > b.MaxY {
			b.MaxY = c.Y
		}
		if c.Z < b.MinZ {
			b.MinZ = c.Z
		}
		if c.Z > b.MaxZ {
			b.MaxZ = c.Z
		}
	}
	return b
}

// MergeBounds returns the union of any number of Bounds values, for callers
// (e.g. geomindex) that need to fold bounds across a batch of geometries
// rather than a single decode call.
func MergeBounds(bs ...Bounds) Bounds {
	var out Bounds
	first := true
	for _, b := range bs {
		if first {
			out = b
			first = false
			continue
		}
		if b.MinX < out.MinX {
			out.MinX = b.MinX
		}
		if b.MaxX > out.MaxX {
			out.MaxX = b.MaxX
		}
		if b.MinY < out.MinY {
			out.MinY = b.MinY
		}
		if b.MaxY > out.MaxY {
			out.MaxY = b.MaxY
		}
		if b.MinZ < out.MinZ {
			out.MinZ = b.MinZ
		}
		if b.MaxZ > out.MaxZ {
			out.MaxZ = b.MaxZ
		}
	}
	return out
}

// Geometry is the tagged union of decode results (spec §3). Exactly one of
// the variant fields below is meaningful, selected by Type:
//
//	Point            -> Point
//	LineString       -> Line
//	Polygon          -> Rings (first is exterior, remainder are holes; under
//	                     RingPolicyOrientation several exteriors produce a
//	                     MultiPolygon instead — see Geometry.Polygons)
//	MultiPoint       -> Points
//	MultiLineString  -> Lines
//	MultiPolygon     -> Polygons
//
// Geometry is a value type: it owns its coordinate slices and does not alias
// the source blob (spec §3 "Lifecycle").
type Geometry struct {
	Type   GeometryType
	HasZ   bool
	Bounds Bounds

	Point    Coordinate
	Line     []Coordinate
	Rings    [][]Coordinate
	Points   []Coordinate
	Lines    [][]Coordinate
	Polygons [][][]Coordinate
}

// Flatten returns every coordinate the geometry carries, in emission order.
// It is a plain-data accessor for callers building their own exporter
// (WKT/WKB/GeoJSON are out of scope here, spec §1) — not a serializer.
func (g Geometry) Flatten() []Coordinate {
	switch g.Type {
	case GeometryTypePoint:
		return []Coordinate{g.Point}
	case GeometryTypeLineString:
		return append([]Coordinate(nil), g.Line...)
	case GeometryTypeMultiPoint:
		return append([]Coordinate(nil), g.Points...)
	case GeometryTypePolygon:
		var out []Coordinate
		for _, ring := range g.Rings {
			out = append(out, ring...)
		}
		return out
	case GeometryTypeMultiLineString:
		var out []Coordinate
		for _, line := range g.Lines {
			out = append(out, line...)
		}
		return out
	case GeometryTypeMultiPolygon:
		var out []Coordinate
		for _, poly := range g.Polygons {
			for _, ring := range poly {
				out = append(out, ring...)
			}
		}
		return out
	default:
		return nil
	}
}
