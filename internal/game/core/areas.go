package core

// NoLeader is the leader of a free cell.
const NoLeader = -1

// AreaTracker is a union-find forest over board cells. Merges happen on
// placement; removals are handled by re-labelling the affected components
// with a flood fill, since union-find cannot split a set.
type AreaTracker struct {
	board  *Board
	leader []int // parent pointer per cell, NoLeader for free cells
	size   []int // component size, valid at roots only

	// visit marks for the flood fill; a cell is visited when mark == epoch
	mark  []uint64
	epoch uint64
	stack []int
}

// NewAreaTracker creates a tracker with every cell unassigned.
func NewAreaTracker(b *Board) *AreaTracker {
	n := b.Cells()
	at := &AreaTracker{
		board:  b,
		leader: make([]int, n),
		size:   make([]int, n),
		mark:   make([]uint64, n),
	}
	for i := range at.leader {
		at.leader[i] = NoLeader
	}
	return at
}

// Find returns the root of idx's area with path compression, or NoLeader
// for an unassigned cell.
func (at *AreaTracker) Find(idx int) int {
	root := idx
	if at.leader[root] == NoLeader {
		return NoLeader
	}
	for at.leader[root] != root {
		root = at.leader[root]
	}
	for at.leader[idx] != root {
		next := at.leader[idx]
		at.leader[idx] = root
		idx = next
	}
	return root
}

// ResetArea makes idx a single-cell area.
func (at *AreaTracker) ResetArea(idx int) {
	at.leader[idx] = idx
	at.size[idx] = 1
}

// UnionInto merges neighbor's area with cell's area. It reports false when
// both were already the same area.
func (at *AreaTracker) UnionInto(cell, neighbor int) bool {
	rc, rn := at.Find(cell), at.Find(neighbor)
	if rc == rn || rc == NoLeader || rn == NoLeader {
		return false
	}
	if at.size[rc] < at.size[rn] {
		rc, rn = rn, rc
	}
	at.leader[rn] = rc
	at.size[rc] += at.size[rn]
	return true
}

// SameArea reports whether two assigned cells share a root.
func (at *AreaTracker) SameArea(a, b int) bool {
	ra := at.Find(a)
	return ra != NoLeader && ra == at.Find(b)
}

// AreaSize returns the number of cells in idx's area, 0 for a free cell.
func (at *AreaTracker) AreaSize(idx int) int {
	root := at.Find(idx)
	if root == NoLeader {
		return 0
	}
	return at.size[root]
}

// RecomputeAfterRemoval relabels the areas around a cell that owner just
// lost. The board must already show removed as not owned by owner. Every
// remaining same-owner neighbor component gets a fresh leader; the number of
// components found is returned.
func (at *AreaTracker) RecomputeAfterRemoval(owner, removed int) int {
	at.leader[removed] = NoLeader
	at.size[removed] = 0
	at.epoch++

	components := 0
	for _, d := range Directions {
		n, ok := at.board.Neighbor(removed, d)
		if !ok || at.board.T[n] != owner || at.mark[n] == at.epoch {
			continue
		}
		at.size[n] = at.relabel(owner, n)
		components++
	}
	return components
}

// relabel flood-fills from start through owner's cells, pointing each one at
// start. It returns the component size.
func (at *AreaTracker) relabel(owner, start int) int {
	at.stack = append(at.stack[:0], start)
	at.mark[start] = at.epoch
	count := 0

	for len(at.stack) > 0 {
		cur := at.stack[len(at.stack)-1]
		at.stack = at.stack[:len(at.stack)-1]
		at.leader[cur] = start
		count++

		for _, d := range Directions {
			n, ok := at.board.Neighbor(cur, d)
			if !ok || at.board.T[n] != owner || at.mark[n] == at.epoch {
				continue
			}
			at.mark[n] = at.epoch
			at.stack = append(at.stack, n)
		}
	}
	return count
}
