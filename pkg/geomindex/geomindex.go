// Package geomindex exposes spatial batch queries over decoded geometries.
//
// Build an Index once per batch of decoded geometries (for example, every
// row of a table decoded up front) and query it any number of times with a
// bounding box, instead of scanning the batch linearly.
package geomindex

import (
	"github.com/foundatron/stgeometry/internal/geomindex"
)

// Entry pairs a decoded geometry with the row identifier it came from.
type Entry = geomindex.Entry

// Index is an R-tree-backed spatial index over a fixed batch of entries.
//
// Example:
//
//	idx := geomindex.Build(entries)
//	hits := idx.Query(stgeom.Bounds{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10})
type Index = geomindex.Index

// Build constructs an Index over entries.
func Build(entries []Entry) *Index {
	return geomindex.Build(entries)
}
