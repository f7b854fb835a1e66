package geomindex

import (
	"testing"

	"github.com/foundatron/stgeometry/internal/decoder"
)

func pointEntry(id int64, x, y float64) Entry {
	return Entry{
		ID: id,
		Geometry: decoder.Geometry{
			Type:   decoder.GeometryTypePoint,
			Point:  decoder.Coordinate{X: x, Y: y},
			Bounds: decoder.Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y},
		},
	}
}

func TestIndexQueryFindsIntersectingEntries(t *testing.T) {
	entries := []Entry{
		pointEntry(1, 0, 0),
		pointEntry(2, 100, 100),
		pointEntry(3, 5, 5),
	}

	idx := Build(entries)

	hits := idx.Query(decoder.Bounds{MinX: -1, MaxX: 10, MinY: -1, MaxY: 10})

	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}

	ids := map[int64]bool{}
	for _, h := range hits {
		ids[h.ID] = true
	}
	if !ids[1] || !ids[3] {
		t.Errorf("expected entries 1 and 3 in result, got %+v", hits)
	}
}

func TestIndexCountAndBounds(t *testing.T) {
	entries := []Entry{pointEntry(1, -10, -10), pointEntry(2, 10, 10)}
	idx := Build(entries)

	if idx.Count() != 2 {
		t.Errorf("Count() = %d, want 2", idx.Count())
	}

	bounds := idx.Bounds()
	if bounds.MinX != -10 || bounds.MaxX != 10 || bounds.MinY != -10 || bounds.MaxY != 10 {
		t.Errorf("Bounds() = %+v, unexpected", bounds)
	}
}

func TestIndexQueryEmpty(t *testing.T) {
	idx := Build(nil)
	if got := idx.Query(decoder.Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}); len(got) != 0 {
		t.Errorf("Query on empty index returned %d hits, want 0", len(got))
	}
}
