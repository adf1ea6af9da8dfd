// Spatial extents for fragment non-empty domains.
//
// A Domain is one closed [low, high] interval per array dimension. Two
// domains intersect iff every dimension's intervals overlap, so a shared
// boundary point counts as an intersection. Bounds are float64; integer
// dimensions are represented exactly up to 2^53.
package mergeplan

// Range is a closed interval over one dimension.
type Range struct {
	Low  float64
	High float64
}

func (r Range) overlaps(o Range) bool {
	return r.Low <= o.High && o.Low <= r.High
}

func (r Range) extend(o Range) Range {
	if o.Low < r.Low {
		r.Low = o.Low
	}
	if o.High > r.High {
		r.High = o.High
	}
	return r
}

// Domain is the per-dimension bounding extent of a fragment's data.
type Domain []Range

// Intersects reports whether every dimension of d overlaps the matching
// dimension of o. Domains of different dimensionality never intersect.
func (d Domain) Intersects(o Domain) bool {
	if len(d) == 0 || len(d) != len(o) {
		return false
	}
	for i := range d {
		if !d[i].overlaps(o[i]) {
			return false
		}
	}
	return true
}

// union returns the per-dimension bounding union of d and o. Both
// domains must have the same dimensionality; callers validate that
// before clustering starts.
func (d Domain) union(o Domain) Domain {
	out := make(Domain, len(d))
	for i := range d {
		out[i] = d[i].extend(o[i])
	}
	return out
}

// validate rejects empty domains and inverted bounds, and checks the
// dimension count against the rest of the fragment set.
func (d Domain) validate(dims int) error {
	if len(d) == 0 {
		return ErrInvalidDomain
	}
	for _, r := range d {
		if r.Low > r.High {
			return ErrInvalidDomain
		}
	}
	if len(d) != dims {
		return ErrDimensionMismatch
	}
	return nil
}
