package decoder

// shape is the lower-4-bit classification of the geom_flags varint (spec
// §4.3). It names the wire shape family; the final Geometry variant (single
// vs. multi part) is only known after segmentation (spec §4.4 step 7).
type shape int

const (
	shapePoint      shape = 1
	shapeMultiPoint shape = 2
	shapePolyline   shape = 4
	shapePolygon    shape = 8
)

// hasZFlag is the upper bit of geom_flags that marks a Z-augmented geometry.
const hasZFlag uint64 = 0x40

// geometryFlags is the parsed geom_flags varint: a shape nibble plus
// modifier bits.
type geometryFlags struct {
	shape shape
	hasZ  bool
}

// classifyFlags splits the geom_flags varint into its shape and modifier
// bits (spec §4.3). offset is the varint's position, used only for the
// UnsupportedGeometryKind error.
func classifyFlags(raw uint64, offset int) (geometryFlags, error) {
	s := shape(raw & 0x0F)
	switch s {
	case shapePoint, shapeMultiPoint, shapePolyline, shapePolygon:
	default:
		return geometryFlags{}, errUnsupportedGeometryKind(offset, int(s))
	}
	return geometryFlags{
		shape: s,
		hasZ:  raw&hasZFlag != 0,
	}, nil
}
