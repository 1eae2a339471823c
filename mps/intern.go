package mps

import "sort"

// interner maps the opaque node IDs reachable from the oracle's target to a
// dense, contiguous range of integer indices. Every per-node set the
// deviation generator needs (root-path membership, in particular) is backed
// by a bits.Bits over these indices instead of a map[string]struct{}.
//
// Per spec.md's §9 design note, this is the "intern node ids to dense
// integer indices at construction" rewrite of the dynamically-typed
// original: it turns an O(log n) (or amortized O(1) but allocation-heavy)
// map lookup into an O(1) array/bit read.
type interner struct {
	indexOf map[string]int
	idAt    []string
}

// newInterner assigns dense indices to ids in sorted order, so index
// assignment (and therefore bits.Bits iteration order) is deterministic and
// reproducible across runs, matching the rest of this package's ordering
// guarantees.
func newInterner(ids map[string]struct{}) *interner {
	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	in := &interner{
		indexOf: make(map[string]int, len(sorted)),
		idAt:    sorted,
	}
	for i, id := range sorted {
		in.indexOf[id] = i
	}

	return in
}

// len returns the number of interned ids, i.e. the bit-width every bits.Bits
// built against this interner must use.
func (in *interner) len() int { return len(in.idAt) }

// index returns the dense index of id. Callers must only pass ids known to
// be in the oracle's reachable set.
func (in *interner) index(id string) int { return in.indexOf[id] }
