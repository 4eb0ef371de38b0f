package game

import "github.com/mitchelldurbincs/gamma/internal/game/core"

// This file keeps the per-player counters in step with the board.

// peekStats returns a copy of the player's counters without creating an entry.
func (e *Engine) peekStats(player int) playerState {
	if st, ok := e.stats[player]; ok {
		return *st
	}
	return playerState{}
}

func (e *Engine) statsFor(player int) *playerState {
	st, ok := e.stats[player]
	if !ok {
		st = &playerState{}
		e.stats[player] = st
	}
	return st
}

// checkPlacement applies the move rules to an in-bounds cell.
func (e *Engine) checkPlacement(player, idx int) error {
	if e.board.T[idx] != core.FreeID {
		return core.ErrFieldTaken
	}
	if !e.board.IsAdjacentTo(idx, player) && e.peekStats(player).occupiedAreas >= e.maxAreas {
		return core.ErrAreaLimit
	}
	return nil
}

// neighborOwners returns the distinct players owning a 4-neighbor of idx.
func (e *Engine) neighborOwners(idx int) ([4]int, int) {
	var owners [4]int
	n := 0
	for _, d := range core.Directions {
		nb, ok := e.board.Neighbor(idx, d)
		if !ok {
			continue
		}
		owner := e.board.T[nb]
		if owner == core.FreeID {
			continue
		}
		seen := false
		for i := 0; i < n; i++ {
			if owners[i] == owner {
				seen = true
				break
			}
		}
		if !seen {
			owners[n] = owner
			n++
		}
	}
	return owners, n
}

// place gives a free cell to player without checking the rules. It returns
// how many of the player's existing areas the cell joined.
func (e *Engine) place(player, idx int) int {
	st := e.statsFor(player)

	// The cell leaves the adjacent pool of everyone it touched
	owners, n := e.neighborOwners(idx)
	for i := 0; i < n; i++ {
		e.stats[owners[i]].adjacentFree--
	}
	e.freeCells--

	e.board.T[idx] = player
	e.areas.ResetArea(idx)
	merged := 0
	for _, d := range core.Directions {
		if nb, ok := e.board.Neighbor(idx, d); ok && e.board.T[nb] == player {
			if e.areas.UnionInto(idx, nb) {
				merged++
			}
		}
	}
	st.occupiedAreas += 1 - merged

	st.takenFields++
	if st.takenFields == 1 {
		e.occupiedPlayers++
	}
	e.bracketBytes += bracketWidth(player)

	// Free neighbors touching player for the first time become adjacent
	for _, d := range core.Directions {
		nb, ok := e.board.Neighbor(idx, d)
		if ok && e.board.T[nb] == core.FreeID && e.board.CountNeighborsOwnedBy(nb, player) == 1 {
			st.adjacentFree++
		}
	}
	return merged
}

// remove clears an owned cell and returns its previous owner.
func (e *Engine) remove(idx int) int {
	owner := e.board.T[idx]
	st := e.stats[owner]

	e.board.T[idx] = core.FreeID
	e.freeCells++

	// The cell joins the adjacent pool of everyone it touches
	owners, n := e.neighborOwners(idx)
	for i := 0; i < n; i++ {
		e.stats[owners[i]].adjacentFree++
	}

	// Free neighbors that only touched owner through this cell become far
	for _, d := range core.Directions {
		nb, ok := e.board.Neighbor(idx, d)
		if ok && e.board.T[nb] == core.FreeID && !e.board.IsAdjacentTo(nb, owner) {
			st.adjacentFree--
		}
	}

	st.takenFields--
	if st.takenFields == 0 {
		e.occupiedPlayers--
	}
	e.bracketBytes -= bracketWidth(owner)

	split := e.areas.RecomputeAfterRemoval(owner, idx)
	st.occupiedAreas += split - 1
	return owner
}
