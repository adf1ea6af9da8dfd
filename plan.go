// Consolidation plan construction and read-only accessors.
//
// A Plan partitions fragment URIs into nodes. Every input fragment
// appears in exactly one node; fragments connected through a chain of
// domain overlaps share a node; a node holding a single fragment larger
// than the budget marks that fragment for splitting. Node order and URI
// order within a node follow fragment write order, so a given input
// always produces the same plan.
package mergeplan

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Plan is the result of consolidation planning: a size budget and an
// ordered list of nodes, each an ordered list of fragment URIs.
// Immutable after construction.
type Plan struct {
	fragmentSize uint64
	nodes        [][]string
}

// New builds a plan for the given fragments and fragment size budget.
// The fragments slice must be in write order; it is not retained. A
// zero budget fails with ErrZeroBudget, malformed domains with
// ErrInvalidDomain or ErrDimensionMismatch. Zero fragments yield a
// valid plan with no nodes.
func New(fragments []Fragment, fragmentSize uint64) (*Plan, error) {
	if fragmentSize == 0 {
		return nil, ErrZeroBudget
	}
	if err := validateFragments(fragments); err != nil {
		return nil, err
	}
	return &Plan{
		fragmentSize: fragmentSize,
		nodes:        assemble(fragments, fragmentSize),
	}, nil
}

// FromNodes reconstructs a plan from an already computed node
// structure, bypassing the clustering algorithm. This is the path for
// plans computed remotely and shipped back as an ordered list of URI
// lists. The input is deep-copied. A node with no fragments fails with
// ErrEmptyNode; a zero budget with ErrZeroBudget.
func FromNodes(fragmentSize uint64, nodes [][]string) (*Plan, error) {
	if fragmentSize == 0 {
		return nil, ErrZeroBudget
	}
	copied := make([][]string, len(nodes))
	for i, n := range nodes {
		if len(n) == 0 {
			return nil, ErrEmptyNode
		}
		copied[i] = make([]string, len(n))
		copy(copied[i], n)
	}
	return &Plan{fragmentSize: fragmentSize, nodes: copied}, nil
}

// FragmentSize returns the budget the plan was built against.
func (p *Plan) FragmentSize() uint64 {
	return p.fragmentSize
}

// NumNodes returns the number of consolidation nodes in the plan.
func (p *Plan) NumNodes() int {
	return len(p.nodes)
}

// NumFragments returns the number of fragments in the given node.
func (p *Plan) NumFragments(node int) (int, error) {
	if node < 0 || node >= len(p.nodes) {
		return 0, ErrNodeOutOfBounds
	}
	return len(p.nodes[node]), nil
}

// FragmentURI returns the URI at position frag within the given node.
func (p *Plan) FragmentURI(node, frag int) (string, error) {
	if node < 0 || node >= len(p.nodes) {
		return "", ErrNodeOutOfBounds
	}
	if frag < 0 || frag >= len(p.nodes[node]) {
		return "", ErrFragmentOutOfBounds
	}
	return p.nodes[node][frag], nil
}

// Nodes returns a deep copy of the node structure: an ordered list of
// ordered URI lists, the same shape the wire layer carries.
func (p *Plan) Nodes() [][]string {
	out := make([][]string, len(p.nodes))
	for i, n := range p.nodes {
		out[i] = make([]string, len(n))
		copy(out[i], n)
	}
	return out
}

// Dump renders the plan as diagnostic JSON text. The format is a
// compatibility surface — byte-for-byte stable for a given plan, so
// dumps can be compared directly:
//
//	{
//	  "nodes": [
//	    {
//	      "uris": [
//	        "frag-a",
//	        "frag-b"
//	      ]
//	    }
//	  ]
//	}
//
// Two-space indent, one URI per line, trailing newline. A plan with no
// nodes renders with the empty list split across lines:
//
//	{
//	  "nodes": [
//	  ]
//	}
func (p *Plan) Dump() string {
	var b strings.Builder
	b.WriteString("{\n  \"nodes\": [\n")
	for i, n := range p.nodes {
		b.WriteString("    {\n      \"uris\": [\n")
		for j, uri := range n {
			b.WriteString("        ")
			b.WriteString(strconv.Quote(uri))
			if j < len(n)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString("      ]\n    }")
		if i < len(p.nodes)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("  ]\n}\n")
	return b.String()
}

// planJSON is the wire shape shared by MarshalJSON and UnmarshalJSON.
type planJSON struct {
	FragmentSize uint64     `json:"fragmentSize"`
	Nodes        [][]string `json:"nodes"`
}

// MarshalJSON encodes the plan as {"fragmentSize": N, "nodes": [...]}.
func (p *Plan) MarshalJSON() ([]byte, error) {
	return json.Marshal(planJSON{
		FragmentSize: p.fragmentSize,
		Nodes:        p.nodes,
	})
}

// UnmarshalJSON decodes a plan previously produced by MarshalJSON. The
// decoded structure passes through the FromNodes checks, so an
// unmarshalled plan satisfies every construction invariant.
func (p *Plan) UnmarshalJSON(data []byte) error {
	var w planJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: json: %w", ErrDecode, err)
	}
	decoded, err := FromNodes(w.FragmentSize, w.Nodes)
	if err != nil {
		return err
	}
	*p = *decoded
	return nil
}
