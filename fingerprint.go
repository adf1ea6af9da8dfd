// Fingerprint algorithms for plan identity.
//
// A fingerprint is a 16 hex character hash over the plan's canonical
// Dump bytes, so two plans with identical dumps fingerprint equal
// across processes and machines. Three algorithms are supported.
package mergeplan

import (
	"fmt"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// Fingerprint returns a 16 hex character identity for the plan using
// the given algorithm. Zero selects AlgXXHash3; an unknown algorithm
// returns "".
func (p *Plan) Fingerprint(alg int) string {
	dump := p.Dump()
	if alg == 0 {
		alg = AlgXXHash3
	}
	switch alg {
	case AlgXXHash3:
		h := xxh3.HashString(dump)
		return fmt.Sprintf("%016x", h)
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write([]byte(dump))
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write([]byte(dump))
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return ""
	}
}
