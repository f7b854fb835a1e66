// Package stgeom provides a clean public API for decoding Esri
// ST_Geometry binary blobs into typed, in-memory geometry values.
package stgeom

import "github.com/foundatron/stgeometry/internal/decoder"

// Magic is the four-byte prefix every ST_Geometry blob begins with.
var Magic = decoder.Magic

// AbsoluteThreshold is the default magnitude (10^11) above which a raw
// coordinate varint is classified as an absolute coordinate rather than
// part-metadata or a delta.
const AbsoluteThreshold = decoder.AbsoluteThreshold

// CRSFrame describes the coordinate reference frame a table's metadata
// supplies: an origin and scale sufficient to convert the blob's raw
// integer coordinates into real-world units.
//
// A CRSFrame is immutable and safe to share across any number of
// concurrent Decode calls against blobs from the same table.
type CRSFrame = decoder.CRSFrame

// RingPolicy selects how multiple rings decoded from a Polygon-shaped blob
// are assembled into Polygon or MultiPolygon results.
type RingPolicy = decoder.RingPolicy

const (
	// RingPolicyHoles treats the first ring as exterior and all remaining
	// rings as holes of a single Polygon. This is the default.
	RingPolicyHoles = decoder.RingPolicyHoles

	// RingPolicyOrientation classifies rings by winding order (shoelace
	// formula): clockwise rings start new polygons, counter-clockwise
	// rings become holes of the preceding polygon. May produce a
	// MultiPolygon where RingPolicyHoles would nest everything under one
	// exterior.
	RingPolicyOrientation = decoder.RingPolicyOrientation
)

// Options configures a Decode call.
//
// Example:
//
//	opts := stgeom.DefaultOptions()
//	opts.Strict = true
//	geom, err := stgeom.Decode(blob, crs, opts)
type Options = decoder.Options

// DefaultOptions returns the reference decode behavior: non-strict,
// default absolute threshold, literal segmentation, holes-nesting ring
// policy.
func DefaultOptions() Options {
	return decoder.DefaultOptions()
}

// GeometryType is the closed set of variants a Decode call can produce.
type GeometryType = decoder.GeometryType

const (
	GeometryTypePoint           = decoder.GeometryTypePoint
	GeometryTypeLineString      = decoder.GeometryTypeLineString
	GeometryTypePolygon         = decoder.GeometryTypePolygon
	GeometryTypeMultiPoint      = decoder.GeometryTypeMultiPoint
	GeometryTypeMultiLineString = decoder.GeometryTypeMultiLineString
	GeometryTypeMultiPolygon    = decoder.GeometryTypeMultiPolygon
)

// Coordinate is a single real-valued point in the target CRS's native units.
type Coordinate = decoder.Coordinate

// Bounds is a cached axis-aligned bounding box.
type Bounds = decoder.Bounds

// MergeBounds returns the union of any number of Bounds values.
func MergeBounds(bs ...Bounds) Bounds {
	return decoder.MergeBounds(bs...)
}

// Geometry is the tagged union of decode results. Exactly one of the
// variant fields is meaningful, selected by Type. See the internal decoder
// package's Geometry documentation for the field-to-type mapping.
type Geometry = decoder.Geometry

// DecodeError is the single closed error type Decode returns. Use Kind to
// discriminate without a type assertion.
type DecodeError = decoder.DecodeError

// DecodeErrorKind classifies a DecodeError.
type DecodeErrorKind = decoder.DecodeErrorKind

const (
	KindBadMagic                = decoder.KindBadMagic
	KindTruncated               = decoder.KindTruncated
	KindVarintOverflow          = decoder.KindVarintOverflow
	KindUnsupportedGeometryKind = decoder.KindUnsupportedGeometryKind
	KindEmptyGeometry           = decoder.KindEmptyGeometry
	KindInvalidCoordinateStream = decoder.KindInvalidCoordinateStream
	KindTruncatedZStream        = decoder.KindTruncatedZStream
	KindTrailingBytes           = decoder.KindTrailingBytes
)

// Decode parses one ST_Geometry blob into a Geometry.
//
// Example:
//
//	crs := stgeom.CRSFrame{XOrigin: -20037700, YOrigin: -30241100, XYScale: 10000}
//	geom, err := stgeom.Decode(blob, crs, stgeom.DefaultOptions())
func Decode(blob []byte, crs CRSFrame, opts Options) (Geometry, error) {
	return decoder.Decode(blob, crs, opts)
}
