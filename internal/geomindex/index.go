// Package geomindex provides fast spatial queries over a batch of decoded
// geometries using an R-tree, for callers that decode many blobs from one
// table and then need bounding-box queries (e.g. viewport rendering)
// instead of a linear scan.
package geomindex

import (
	"github.com/dhconnelly/rtreego"

	"github.com/foundatron/stgeometry/internal/decoder"
)

// minExtent is the minimum rectangle side length the R-tree accepts.
// Point geometries have a zero-area bounds, which rtreego rejects, so
// point extents are padded up to this size.
const minExtent = 1e-9

// Entry pairs a decoded Geometry with the row identifier the caller uses to
// look it back up (this package has no notion of tables or rows itself).
type Entry struct {
	ID       int64
	Geometry decoder.Geometry
}

// Index is an R-tree-backed spatial index over a fixed batch of Entry
// values. It is built once via Build and queried any number of times; there
// is no incremental insert, matching the batch-decode-then-query workflow
// this package targets.
type Index struct {
	entries []Entry
	rtree   *rtreego.Rtree
}

// indexedEntry wraps an Entry so it satisfies rtreego.Spatial without
// exposing that dependency on Entry itself.
type indexedEntry struct {
	entry  Entry
	bounds decoder.Bounds
}

// Bounds implements rtreego.Spatial.
func (e *indexedEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.bounds.MinX, e.bounds.MinY}

	w := e.bounds.MaxX - e.bounds.MinX
	h := e.bounds.MaxY - e.bounds.MinY
	if w < minExtent {
		w = minExtent
	}
	if h < minExtent {
		h = minExtent
	}

	rect, _ := rtreego.NewRect(point, []float64{w, h})
	return rect
}

// Build constructs an Index over entries. The R-tree's branching factors
// (25/50) match the teacher's chart index tuning, a reasonable default for
// batches from a few hundred to a few hundred thousand geometries.
func Build(entries []Entry) *Index {
	rtree := rtreego.NewTree(2, 25, 50)

	for _, e := range entries {
		rtree.Insert(&indexedEntry{entry: e, bounds: e.Geometry.Bounds})
	}

	return &Index{entries: entries, rtree: rtree}
}

// Query returns every Entry whose geometry bounds intersect bounds.
func (idx *Index) Query(bounds decoder.Bounds) []Entry {
	if idx.rtree == nil {
		return nil
	}

	point := rtreego.Point{bounds.MinX, bounds.MinY}
	w := bounds.MaxX - bounds.MinX
	h := bounds.MaxY - bounds.MinY
	if w < minExtent {
		w = minExtent
	}
	if h < minExtent {
		h = minExtent
	}
	queryRect, _ := rtreego.NewRect(point, []float64{w, h})

	spatials := idx.rtree.SearchIntersect(queryRect)
	result := make([]Entry, 0, len(spatials))
	for _, s := range spatials {
		result = append(result, s.(*indexedEntry).entry)
	}
	return result
}

// Count returns the number of entries in the index.
func (idx *Index) Count() int {
	return len(idx.entries)
}

// Bounds returns the union of every entry's bounds.
func (idx *Index) Bounds() decoder.Bounds {
	if len(idx.entries) == 0 {
		return decoder.Bounds{}
	}
	all := make([]decoder.Bounds, len(idx.entries))
	for i, e := range idx.entries {
		all[i] = e.Geometry.Bounds
	}
	return decoder.MergeBounds(all...)
}
