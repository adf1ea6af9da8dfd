// Portable single-string plan encoding.
//
// A plan travelling through logs, environment values, or line-oriented
// protocols needs a compact printable form. Encode JSON-encodes the
// plan, Zstd-compresses it, then Ascii85-encodes the result to produce
// a newline-free string that embeds anywhere without escaping. This
// avoids the 33% overhead of base64 and keeps long URI lists cheap.
package mergeplan

import (
	"bytes"
	"encoding/ascii85"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder — both are documented as safe for concurrent
// use. Allocated once at init because zstd encoder/decoder construction
// is expensive (internal state tables). Plans are small, so SpeedFastest
// costs nothing measurable in ratio.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// Encode returns the plan as a printable, newline-free string.
// Deterministic for a given plan: the JSON form is ordered and the
// compressor is configured identically on every call.
func (p *Plan) Encode() string {
	// Marshalling a budget and a list of strings cannot fail.
	data, _ := p.MarshalJSON()

	compressed := zstdEncoder.EncodeAll(data, nil)

	var encoded bytes.Buffer
	enc := ascii85.NewEncoder(&encoded)
	// bytes.Buffer.Write never errors; enc.Close flushes trailing padding.
	_, _ = enc.Write(compressed)
	_ = enc.Close()

	return encoded.String()
}

// Decode rebuilds a plan from an Encode output. All failures wrap
// ErrDecode; structural violations surface the construction sentinels
// (ErrZeroBudget, ErrEmptyNode) instead.
func Decode(blob string) (*Plan, error) {
	if blob == "" {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	dec := ascii85.NewDecoder(bytes.NewReader([]byte(blob)))
	compressed, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: ascii85: %w", ErrDecode, err)
	}

	data, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecode, err)
	}

	var p Plan
	if err := p.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &p, nil
}
