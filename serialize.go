// Request wire type for remote planning.
//
// A caller asking a remote service for a consolidation plan sends only
// the budget; the fragment list lives with the array on the remote
// side. The response travels back as the plan's node structure and is
// rebuilt locally through FromNodes (or Plan.UnmarshalJSON, which
// routes through it).
package mergeplan

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Request carries the parameters of a consolidation planning call.
type Request struct {
	FragmentSize uint64 `json:"fragmentSize"`
}

// EncodeRequest renders a request as JSON. The budget is validated
// before encoding so a zero budget is caught on the sending side.
func EncodeRequest(r Request) ([]byte, error) {
	if r.FragmentSize == 0 {
		return nil, ErrZeroBudget
	}
	return json.Marshal(r)
}

// DecodeRequest parses a JSON request and validates the budget.
func DecodeRequest(data []byte) (Request, error) {
	var r Request
	if err := json.Unmarshal(data, &r); err != nil {
		return Request{}, fmt.Errorf("%w: json: %w", ErrDecode, err)
	}
	if r.FragmentSize == 0 {
		return Request{}, ErrZeroBudget
	}
	return r, nil
}
