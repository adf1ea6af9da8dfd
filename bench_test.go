package mergeplan

import (
	"strconv"
	"testing"
)

// benchFragments lays out n small fragments on a diagonal with every
// fourth one overlapping its predecessor, mixing merge clusters with
// combinable singletons.
func benchFragments(n int) []Fragment {
	fragments := make([]Fragment, n)
	for i := range fragments {
		base := float64(i * 10)
		if i%4 == 3 {
			base -= 5 // reach back into the previous fragment
		}
		fragments[i] = Fragment{
			URI:    "f-" + strconv.Itoa(i),
			Domain: dom2(base, base+6, base, base+6),
			Size:   64,
		}
	}
	return fragments
}

func BenchmarkNew(b *testing.B) {
	fragments := benchFragments(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(fragments, 256); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDump(b *testing.B) {
	p, _ := New(benchFragments(1000), 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Dump()
	}
}

func BenchmarkEncode(b *testing.B) {
	p, _ := New(benchFragments(1000), 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Encode()
	}
}

func BenchmarkFingerprint(b *testing.B) {
	p, _ := New(benchFragments(1000), 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Fingerprint(AlgXXHash3)
	}
}
