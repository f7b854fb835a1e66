package decoder

// absoluteThreshold is the default ABSOLUTE_THRESHOLD (spec §6): raw varints
// at or above this value are absolute coordinates, below it they are either
// delta-zigzag values or opaque part-metadata (spec §4.4 step 6b).
const absoluteThreshold int64 = 100_000_000_000

// RingPolicy selects how multiple rings decoded for a Polygon-shaped blob are
// assembled (spec §9 open question 1).
type RingPolicy int

const (
	// RingPolicyHoles treats the first ring as exterior and all remaining
	// rings as holes of a single Polygon. This is the spec's default policy
	// (spec §4.4 "Default polygon policy").
	RingPolicyHoles RingPolicy = iota

	// RingPolicyOrientation adds a ring-winding pass: rings are classified by
	// signed area (shoelace formula), clockwise rings start new polygons and
	// counter-clockwise rings become holes of the preceding polygon. This can
	// produce a MultiPolygon where RingPolicyHoles would nest everything
	// under one exterior.
	RingPolicyOrientation
)

// Options configures a single Decode call. The zero value behaves like
// DefaultOptions: a zero AbsoluteThreshold is read as the default 10^11, and
// all other fields default usefully to their zero value.
type Options struct {
	// Strict enables the TrailingBytes check (spec §4.4 step 8). Off by
	// default: most callers don't care whether a blob carries trailer bytes
	// past the decoded geometry.
	Strict bool

	// AbsoluteThreshold overrides ABSOLUTE_THRESHOLD. Spec §9 design note
	// flags the threshold as "a configuration point" for CRS families other
	// than the Web-Mercator-like ones this default was reverse-engineered
	// against. Zero means "use the default".
	AbsoluteThreshold int64

	// TwoPointRefinement selects the optional segmentation refinement from
	// spec §4.5/§9 open question 2: a trailing lone absolute pair is folded
	// into the current part instead of starting a new one-point part. Off by
	// default, matching the spec's stated literal reference behavior.
	TwoPointRefinement bool

	// RingPolicy controls Polygon ring assembly (spec §9 open question 1).
	RingPolicy RingPolicy
}

// DefaultOptions returns the spec's reference decode behavior: non-strict,
// default threshold, literal segmentation, holes-nesting ring policy.
func DefaultOptions() Options {
	return Options{
		Strict:             false,
		AbsoluteThreshold:  absoluteThreshold,
		TwoPointRefinement: false,
		RingPolicy:         RingPolicyHoles,
	}
}

func (o Options) threshold() int64 {
	if o.AbsoluteThreshold == 0 {
		return absoluteThreshold
	}
	return o.AbsoluteThreshold
}
