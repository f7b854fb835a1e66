package decoder

import (
	"encoding/binary"
	"encoding/hex"
	"reflect"
	"testing"
)

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

type blobBuilder struct {
	buf []byte
}

func newBlobBuilder(pointCount uint32, flags uint64) *blobBuilder {
	b := &blobBuilder{}
	b.buf = append(b.buf, Magic...)
	b.buf = append(b.buf, u32le(pointCount)...)
	b.buf = append(b.buf, encodeVarint(0)...) // size_hint, unused
	b.buf = append(b.buf, encodeVarint(flags)...)
	return b
}

func (b *blobBuilder) varint(v uint64) *blobBuilder {
	b.buf = append(b.buf, encodeVarint(v)...)
	return b
}

func (b *blobBuilder) bytes() []byte { return b.buf }

// TestDecodePointFastPath exercises the Point fast path with the same
// bounding-box and part-info preamble every shape carries (see
// DESIGN.md's Open Question Decisions and decodePoint's doc comment).
func TestDecodePointFastPath(t *testing.T) {
	blob := newBlobBuilder(1, 1). // flags=1: Point
					varint(1).varint(1).varint(1).varint(1). // bbox, unused
					varint(5).                                // part-info metadata, below threshold
					varint(200_000_000_000).                  // first_x
					varint(250_000_000_000).                  // first_y
					bytes()

	crs := CRSFrame{XYScale: 100_000}
	g, err := Decode(blob, crs, DefaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g.Type != GeometryTypePoint {
		t.Fatalf("Type = %v, want Point", g.Type)
	}
	if g.Point.X != 1_000_000 || g.Point.Y != 1_250_000 {
		t.Errorf("Point = (%v, %v), want (1000000, 1250000)", g.Point.X, g.Point.Y)
	}
}

// TestDecodeS1KnownPoint is spec §8 scenario S1, the literal worked example:
// a real blob hex string and its documented decoded coordinate. Tracing it
// by hand shows the Point fast path must read through the same bbox and
// part-info preamble as every other shape (see decodePoint's doc comment);
// this test is the regression guard for that.
func TestDecodeS1KnownPoint(t *testing.T) {
	blob, err := hex.DecodeString("64110F000100000004010C0000000100000081E88CFA8004A2CBB9C08915")
	if err != nil {
		t.Fatalf("invalid test fixture hex: %v", err)
	}

	crs := CRSFrame{XOrigin: -20037700, YOrigin: -30241100, XYScale: 10000}
	g, err := Decode(blob, crs, DefaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g.Type != GeometryTypePoint {
		t.Fatalf("Type = %v, want Point", g.Type)
	}

	const wantX, wantY = -13152949.20, 5964179.30
	if d := g.Point.X - wantX; d < -0.01 || d > 0.01 {
		t.Errorf("Point.X = %v, want ~%v", g.Point.X, wantX)
	}
	if d := g.Point.Y - wantY; d < -0.01 || d > 0.01 {
		t.Errorf("Point.Y = %v, want ~%v", g.Point.Y, wantY)
	}
}

// TestDecodeEmptyGeometry is S2: point_count == 0 fails with EmptyGeometry
// under the reference default policy.
func TestDecodeEmptyGeometry(t *testing.T) {
	blob := newBlobBuilder(0, 4).bytes() // flags=4: Polyline

	_, err := Decode(blob, CRSFrame{XYScale: 1}, DefaultOptions())
	if err == nil {
		t.Fatal("expected EmptyGeometry error, got nil")
	}
	if de := asDecodeError(t, err); de.Kind() != KindEmptyGeometry {
		t.Errorf("got kind %s, want EmptyGeometry", de.Kind())
	}
}

// TestDecodeTwoPointLineStringDelta is S3.
func TestDecodeTwoPointLineStringDelta(t *testing.T) {
	blob := newBlobBuilder(2, 4). // flags=4: Polyline, single part -> LineString
					varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000). // bbox, unused
					varint(200_000_000_000).varint(200_000_000_000).                                                 // first_x, first_y
					varint(zigzagEncode(20_000)).varint(zigzagEncode(20_000)).                                       // one delta pair
					bytes()

	crs := CRSFrame{XYScale: 10_000}
	g, err := Decode(blob, crs, DefaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g.Type != GeometryTypeLineString {
		t.Fatalf("Type = %v, want LineString", g.Type)
	}
	if len(g.Line) != 2 {
		t.Fatalf("got %d points, want 2", len(g.Line))
	}
	if dx := g.Line[1].X - g.Line[0].X; dx < 0.999 || dx > 1.001 {
		t.Errorf("dx = %v, want ~1.0", dx)
	}
	if dy := g.Line[1].Y - g.Line[0].Y; dy < 0.999 || dy > 1.001 {
		t.Errorf("dy = %v, want ~1.0", dy)
	}
}

// TestDecodeMultiPartLineString mirrors S4: two consecutive absolute pairs
// mid-stream split a 5-point Polyline into a 3-point and a 2-point part.
func TestDecodeMultiPartLineString(t *testing.T) {
	blob := newBlobBuilder(5, 4).
		varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000). // bbox
		varint(200_000_000_000).varint(200_000_000_000).                                                 // p0 (first)
		varint(zigzagEncode(1)).varint(zigzagEncode(1)).                                                 // p1: delta
		varint(400_000_000_000).varint(400_000_000_000).                                                 // p2: absolute, prev=delta -> optimization
		varint(500_000_000_000).varint(500_000_000_000).                                                 // p3: absolute, prev=absolute -> boundary
		varint(zigzagEncode(1)).varint(zigzagEncode(1)).                                                 // p4: delta
		bytes()

	g, err := Decode(blob, CRSFrame{XYScale: 1}, DefaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g.Type != GeometryTypeMultiLineString {
		t.Fatalf("Type = %v, want MultiLineString", g.Type)
	}
	if len(g.Lines) != 2 {
		t.Fatalf("got %d parts, want 2", len(g.Lines))
	}
	if len(g.Lines[0]) != 3 || len(g.Lines[1]) != 2 {
		t.Errorf("part sizes = %d,%d want 3,2", len(g.Lines[0]), len(g.Lines[1]))
	}
}

// TestDecodeSinglePartWithJump is S5: a mid-stream absolute following a
// delta is an encoding optimization, not a part boundary.
func TestDecodeSinglePartWithJump(t *testing.T) {
	blob := newBlobBuilder(4, 4).
		varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000).
		varint(200_000_000_000).varint(200_000_000_000).
		varint(zigzagEncode(5)).varint(zigzagEncode(5)).
		varint(300_000_000_000).varint(300_000_000_000).
		varint(zigzagEncode(-5)).varint(zigzagEncode(-5)).
		bytes()

	g, err := Decode(blob, CRSFrame{XYScale: 1}, DefaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g.Type != GeometryTypeLineString {
		t.Fatalf("Type = %v, want LineString", g.Type)
	}
	if len(g.Line) != 4 {
		t.Fatalf("got %d points, want 4", len(g.Line))
	}
}

// TestDecodePolygonZWithHoles mirrors S6: a Polygon+Z blob producing two
// rings (exterior and hole under the default ring policy), each point
// carrying a z value accumulated from an absolute first z and zigzag deltas.
func TestDecodePolygonZWithHoles(t *testing.T) {
	const flagsPolygonZ = 8 | 0x40

	blob := newBlobBuilder(5, flagsPolygonZ).
		varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000).
		varint(200_000_000_000).varint(200_000_000_000). // p0
		varint(zigzagEncode(1)).varint(zigzagEncode(1)). // p1 delta
		varint(400_000_000_000).varint(400_000_000_000). // p2 absolute/optimization
		varint(500_000_000_000).varint(500_000_000_000). // p3 absolute/boundary
		varint(zigzagEncode(1)).varint(zigzagEncode(1)). // p4 delta
		varint(100_000).                                 // z0 absolute
		varint(zigzagEncode(10)).
		varint(zigzagEncode(-5)).
		varint(zigzagEncode(20)).
		varint(zigzagEncode(-30)).
		bytes()

	g, err := Decode(blob, CRSFrame{XYScale: 1, ZScale: 1000}, DefaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g.Type != GeometryTypePolygon {
		t.Fatalf("Type = %v, want Polygon", g.Type)
	}
	if !g.HasZ {
		t.Fatal("HasZ = false, want true")
	}
	if len(g.Rings) != 2 || len(g.Rings[0]) != 3 || len(g.Rings[1]) != 2 {
		t.Fatalf("ring sizes wrong: %v", ringSizes(g.Rings))
	}

	lastZ := g.Rings[1][1].Z
	if want := 99_995.0 / 1000; lastZ < want-1e-9 || lastZ > want+1e-9 {
		t.Errorf("last z = %v, want %v", lastZ, want)
	}
}

func ringSizes(rings [][]Coordinate) []int {
	out := make([]int, len(rings))
	for i, r := range rings {
		out[i] = len(r)
	}
	return out
}

// TestDecodeBadMagic is S7.
func TestDecodeBadMagic(t *testing.T) {
	blob := []byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}
	_, err := Decode(blob, CRSFrame{}, DefaultOptions())
	if err == nil {
		t.Fatal("expected BadMagic error, got nil")
	}
	if de := asDecodeError(t, err); de.Kind() != KindBadMagic {
		t.Errorf("got kind %s, want BadMagic", de.Kind())
	}
}

// TestDecodeIsPure is spec §8 testable property 6.
func TestDecodeIsPure(t *testing.T) {
	blob := newBlobBuilder(2, 4).
		varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000).
		varint(200_000_000_000).varint(200_000_000_000).
		varint(zigzagEncode(20_000)).varint(zigzagEncode(20_000)).
		bytes()

	crs := CRSFrame{XYScale: 10_000}
	g1, err1 := Decode(blob, crs, DefaultOptions())
	g2, err2 := Decode(blob, crs, DefaultOptions())
	if err1 != nil || err2 != nil {
		t.Fatalf("Decode errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(g1, g2) {
		t.Errorf("decode is not pure: %+v != %+v", g1, g2)
	}
}

func TestDecodeTrailingBytesStrict(t *testing.T) {
	blob := newBlobBuilder(2, 4).
		varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000).varint(100_000_000_000).
		varint(200_000_000_000).varint(200_000_000_000).
		varint(zigzagEncode(20_000)).varint(zigzagEncode(20_000)).
		bytes()
	blob = append(blob, 0xFF)

	crs := CRSFrame{XYScale: 10_000}

	if _, err := Decode(blob, crs, DefaultOptions()); err != nil {
		t.Errorf("non-strict decode should ignore trailing bytes, got %v", err)
	}

	strict := DefaultOptions()
	strict.Strict = true
	_, err := Decode(blob, crs, strict)
	if err == nil {
		t.Fatal("expected TrailingBytes error in strict mode, got nil")
	}
	if de := asDecodeError(t, err); de.Kind() != KindTrailingBytes {
		t.Errorf("got kind %s, want TrailingBytes", de.Kind())
	}
}
