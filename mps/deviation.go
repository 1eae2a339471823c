package mps

import "github.com/soniakeys/bits"

// deviate runs the MPS deviation rule against c, pushing at most one new
// candidate per deviation index onto buf. It stops scanning early in two
// cases: the root path up to the current index revisits a node (the
// candidate itself would be cyclic beyond this point), or every remaining
// node on c's path has only one predecessor in the forward graph (there is
// no alternative way back onto this path, so no further index can deviate
// usefully). Both early-exits are scans forward; nothing after them would
// have produced a candidate anyway.
func (e *Engine) deviate(c *candidate, buf *candidateBuffer) {
	rootSeen := bits.New(e.interner.len())
	for idx := 0; idx <= c.devIndex; idx++ {
		ix := e.interner.index(c.path[idx])
		if rootSeen.Bit(ix) == 1 {
			return // root prefix itself already cyclic; nothing to deviate from
		}
		rootSeen.SetBit(ix, 1)
	}

	for i := c.devIndex; i <= len(c.path)-2; i++ {
		if i > c.devIndex {
			ix := e.interner.index(c.path[i])
			if rootSeen.Bit(ix) == 1 {
				return
			}
			rootSeen.SetBit(ix, 1)
		}

		if e.noOtherPathBeyond(c.path, i) {
			return
		}

		vi := c.path[i]
		arcs, err := e.arcsOf(vi)
		if err != nil {
			continue
		}

		vj := c.path[i+1]
		kIdx, ok := arcs.headToIndex[vj]
		if !ok {
			continue
		}

		for idx2 := kIdx + 1; idx2 < len(arcs.entries); idx2++ {
			entry := arcs.entries[idx2]
			if rootSeen.Bit(e.interner.index(entry.head)) == 1 {
				continue // would revisit a root-path node; try the next arc
			}

			newPath := make([]string, 0, i+1+len(e.oracle.path[entry.head]))
			newPath = append(newPath, c.path[:i+1]...)
			newPath = append(newPath, e.oracle.path[entry.head]...)

			if i == c.devIndex {
				buf.push(c.devPathCost+entry.reducedCost, newPath, i, c.devPathCost)
			} else {
				buf.push(c.cost+entry.reducedCost, newPath, i, c.cost)
			}
			break
		}
	}
}

// noOtherPathBeyond reports whether every node on path after position i has
// exactly one predecessor in the forward graph, meaning the suffix path[i+1:]
// is the only way to reach target from path[i+1] onward and no deviation at
// or after i can produce a new simple path.
func (e *Engine) noOtherPathBeyond(path []string, i int) bool {
	for k := len(path) - 1; k > i; k-- {
		if e.oracle.revOutDegree[path[k]] > 1 {
			return false
		}
	}

	return true
}
