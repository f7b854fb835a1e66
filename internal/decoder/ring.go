package decoder

// signedArea returns the actual signed area of a closed ring (the shoelace
// sum halved, not twice the area). Positive is
// counter-clockwise, negative is clockwise, under standard XY orientation.
func signedArea(ring []Coordinate) float64 {
	var sum float64
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return sum / 2
}

func isClockwise(ring []Coordinate) bool {
	return signedArea(ring) < 0
}

// assemblePolygonsByOrientation groups rings into polygons using winding
// order (spec §9 open question 1, RingPolicyOrientation): a clockwise ring
// starts a new polygon's exterior; a counter-clockwise ring that follows
// becomes a hole of the most recently started polygon. A leading
// counter-clockwise ring starts a polygon too, since there is nothing yet
// for it to be a hole of.
func assemblePolygonsByOrientation(rings [][]Coordinate) [][][]Coordinate {
	var polygons [][][]Coordinate
	for _, ring := range rings {
		if len(polygons) == 0 || isClockwise(ring) {
			polygons = append(polygons, [][]Coordinate{ring})
			continue
		}
		last := len(polygons) - 1
		polygons[last] = append(polygons[last], ring)
	}
	return polygons
}
