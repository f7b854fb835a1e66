package decoder

// CRSFrame is an immutable coordinate reference frame: the origin and scale
// parameters a table's metadata supplies, sufficient to convert raw integer
// coordinates into real-world units. It carries no mutable state and is safe
// to share across any number of concurrent Decode calls (spec §5).
//
// Mirrors the teacher's datasetParams (COMF/SOMF scaling), generalized from
// a single fixed coordinate-multiplication-factor pair to the origin+scale
// pair this format actually uses.
type CRSFrame struct {
	XOrigin float64
	YOrigin float64
	ZOrigin float64
	XYScale float64
	ZScale  float64
}

// effectiveXYScale applies the format's doubled-scale invariant (spec §3):
// the metadata stores half of the true scale factor.
func (f CRSFrame) effectiveXYScale() float64 {
	return f.XYScale * 2
}

// toXY converts a raw integer (x, y) pair into real-valued coordinates.
func (f CRSFrame) toXY(rawX, rawY int64) (x, y float64) {
	scale := f.effectiveXYScale()
	return float64(rawX)/scale + f.XOrigin, float64(rawY)/scale + f.YOrigin
}

// toZ converts a raw integer z into a real-valued depth/elevation.
func (f CRSFrame) toZ(rawZ int64) float64 {
	return float64(rawZ)/f.ZScale + f.ZOrigin
}
