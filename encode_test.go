package mergeplan

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := mustPlan(t, []Fragment{
		frag("f1", 10, 0, 5, 0, 5),
		frag("f2", 10, 4, 9, 4, 9),
		frag("f3", 200, 50, 60, 50, 60),
		frag("f4", 10, 80, 81, 80, 81),
	}, 100)

	blob := original.Encode()
	decoded, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.FragmentSize() != original.FragmentSize() {
		t.Errorf("FragmentSize = %d, want %d", decoded.FragmentSize(), original.FragmentSize())
	}
	if got, want := decoded.Dump(), original.Dump(); got != want {
		t.Errorf("Dump after round trip = %q, want %q", got, want)
	}
	if got, want := decoded.Fingerprint(0), original.Fingerprint(0); got != want {
		t.Errorf("Fingerprint after round trip = %q, want %q", got, want)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	p := mustPlan(t, []Fragment{
		frag("f1", 10, 0, 5, 0, 5),
		frag("f2", 10, 90, 95, 90, 95),
	}, 100)

	if first, second := p.Encode(), p.Encode(); first != second {
		t.Errorf("Encode not stable:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestEncodePrintable(t *testing.T) {
	p := mustPlan(t, []Fragment{
		frag("f1", 10, 0, 5, 0, 5),
	}, 100)

	blob := p.Encode()
	if blob == "" {
		t.Fatal("Encode returned empty string")
	}
	if strings.ContainsAny(blob, "\n\r") {
		t.Errorf("Encode output contains newlines: %q", blob)
	}
	for _, c := range blob {
		// 'z' is the ascii85 shorthand for four zero bytes.
		if (c < '!' || c > 'u') && c != 'z' {
			t.Errorf("Encode output contains byte %q outside the ascii85 alphabet", c)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode("")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Decode empty string: got %v, want ErrDecode", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	// Valid ascii85 characters that do not decompress.
	_, err := Decode("0000000000")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Decode garbage: got %v, want ErrDecode", err)
	}
}

func TestDecodeInvalidAscii85(t *testing.T) {
	_, err := Decode("\x01\x02\x03")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Decode invalid ascii85: got %v, want ErrDecode", err)
	}
}

func TestEncodeEmptyPlan(t *testing.T) {
	p := mustPlan(t, nil, 64)

	decoded, err := Decode(p.Encode())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.NumNodes() != 0 {
		t.Errorf("NumNodes = %d, want 0", decoded.NumNodes())
	}
	if decoded.FragmentSize() != 64 {
		t.Errorf("FragmentSize = %d, want 64", decoded.FragmentSize())
	}
}
