// Fragment descriptors supplied by the storage layer.
//
// A Fragment is an immutable snapshot of one written unit of array data:
// its URI, the bounding extent of the data it actually contains, and its
// on-disk footprint. Slice position is write order — the planner never
// sees timestamps, only the order the storage layer enumerated.
package mergeplan

// Fragment describes one fragment eligible for consolidation.
type Fragment struct {
	URI    string // opaque identifier, passed through to the plan
	Domain Domain // non-empty domain, one Range per dimension
	Size   uint64 // on-disk size in bytes
}

// validateFragments checks that every fragment carries a well-formed
// domain and that all fragments agree on dimensionality. The first
// fragment sets the expected dimension count.
func validateFragments(fragments []Fragment) error {
	if len(fragments) == 0 {
		return nil
	}
	dims := len(fragments[0].Domain)
	for _, f := range fragments {
		if err := f.Domain.validate(dims); err != nil {
			return err
		}
	}
	return nil
}
