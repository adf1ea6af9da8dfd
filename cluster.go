// Two-phase grouping of fragments into consolidation nodes.
//
// Phase 1 de-interleaves the fragments into overlap clusters using a
// union-find keyed by fragment index. Each set root carries the running
// union of its members' domains and their total size, so an incoming
// fragment is tested against whole clusters rather than individual
// members — overlap closure is transitive by construction, and the final
// clustering does not depend on interleaving in the write order.
//
// Phase 2 turns clusters into nodes. A lone over-budget fragment becomes
// its own node (a split candidate). A cluster with two or more members
// becomes one node whatever its total size: overlapping writes must be
// merged for correctness, so the budget cannot defer them. What remains
// are small singletons, and those are combined greedily in write order
// while the running total stays within the budget. An over-budget
// cluster sitting between run members ends the run only if its union
// domain intersects the run's accumulated domain; otherwise it is
// stepped over and the run keeps growing.
package mergeplan

import "slices"

// unionFind tracks overlap clusters. domain and size are only
// meaningful at set roots. Unions always keep the smaller index as
// root, so a root index is also the earliest write position in its set.
type unionFind struct {
	parent []int
	domain []Domain
	size   []uint64
}

func newUnionFind(fragments []Fragment) *unionFind {
	u := &unionFind{
		parent: make([]int, len(fragments)),
		domain: make([]Domain, len(fragments)),
		size:   make([]uint64, len(fragments)),
	}
	for i, f := range fragments {
		u.parent[i] = i
		u.domain[i] = slices.Clone(f.Domain)
		u.size[i] = f.Size
	}
	return u
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]] // path halving
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.domain[ra] = u.domain[ra].union(u.domain[rb])
	u.size[ra] += u.size[rb]
	u.domain[rb] = nil
}

// cluster holds one Phase-1 overlap cluster. members are fragment
// indices in write order; domain is the bounding union of their
// domains.
type cluster struct {
	members []int
	domain  Domain
	size    uint64
}

// declusterOverlapping runs Phase 1: each fragment, in write order, is
// united with every existing cluster whose union domain its own domain
// intersects. Intersecting more than one cluster merges them all.
// Returned clusters are ordered by their earliest member.
func declusterOverlapping(fragments []Fragment) []cluster {
	u := newUnionFind(fragments)
	for i := range fragments {
		for j := 0; j < i; j++ {
			r := u.find(j)
			if r == u.find(i) {
				continue
			}
			if u.domain[r].Intersects(fragments[i].Domain) {
				u.union(i, j)
			}
		}
	}

	byRoot := make(map[int]*cluster)
	var order []int
	for i := range fragments {
		r := u.find(i)
		c, ok := byRoot[r]
		if !ok {
			c = &cluster{domain: u.domain[r], size: u.size[r]}
			byRoot[r] = c
			order = append(order, r)
		}
		c.members = append(c.members, i)
	}
	slices.Sort(order)

	out := make([]cluster, 0, len(order))
	for _, r := range order {
		out = append(out, *byRoot[r])
	}
	return out
}

// assemble runs both phases and returns the plan's node structure:
// ordered URI lists, nodes ordered by their earliest member fragment.
func assemble(fragments []Fragment, budget uint64) [][]string {
	clusters := declusterOverlapping(fragments)

	// groups collects final node membership as fragment index lists.
	var groups [][]int

	// Running combination of small singletons.
	var run []int
	var runSize uint64
	var runDomain Domain
	flush := func() {
		if len(run) > 0 {
			groups = append(groups, run)
			run, runSize, runDomain = nil, 0, nil
		}
	}

	for _, c := range clusters {
		overBudget := c.size > budget
		if len(c.members) > 1 || overBudget {
			// Emitted as one node either way: a multi-member cluster
			// is overlapping writes that must merge regardless of
			// size, a lone over-budget fragment is a split candidate.
			// An over-budget cluster whose union has grown into the
			// run's bounding box spatially separates the run; one
			// that sits elsewhere is stepped over.
			if overBudget && runDomain != nil && c.domain.Intersects(runDomain) {
				flush()
			}
			groups = append(groups, c.members)
			continue
		}
		if len(run) > 0 && runSize+c.size > budget {
			flush()
		}
		run = append(run, c.members[0])
		runSize += c.size
		if runDomain == nil {
			runDomain = c.domain
		} else {
			runDomain = runDomain.union(c.domain)
		}
	}
	flush()

	// Node order follows the earliest member, not emission order: a
	// run can close after later split nodes were already emitted.
	slices.SortFunc(groups, func(a, b []int) int { return a[0] - b[0] })

	nodes := make([][]string, len(groups))
	for i, g := range groups {
		uris := make([]string, len(g))
		for j, idx := range g {
			uris[j] = fragments[idx].URI
		}
		nodes[i] = uris
	}
	return nodes
}
