// Package rules recomputes game facts from a bare board by brute force.
// The engine keeps the same facts incrementally; these are the slow, obvious
// versions used to check it and to let simple agents pick moves.
package rules

import "github.com/mitchelldurbincs/gamma/internal/game/core"

// CountAreas returns the number of maximal 4-connected groups of player's cells.
func CountAreas(b *core.Board, player int) int {
	if player == core.FreeID {
		return 0
	}
	seen := make([]bool, b.Cells())
	queue := make([]int, 0, 16)
	areas := 0

	for start, owner := range b.T {
		if owner != player || seen[start] {
			continue
		}
		areas++
		seen[start] = true
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range core.Directions {
				n, ok := b.Neighbor(cur, d)
				if ok && !seen[n] && b.T[n] == player {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return areas
}

// CanPlace reports whether player may claim (x, y) under maxAreas.
func CanPlace(b *core.Board, player, maxAreas, x, y int) bool {
	if player == core.FreeID || !b.InBounds(x, y) {
		return false
	}
	idx := b.Idx(x, y)
	if b.T[idx] != core.FreeID {
		return false
	}
	return b.IsAdjacentTo(idx, player) || CountAreas(b, player) < maxAreas
}

// LegalPlacementMask returns, per cell index, whether player may claim it.
func LegalPlacementMask(b *core.Board, player, maxAreas int) []bool {
	mask := make([]bool, b.Cells())
	if player == core.FreeID {
		return mask
	}
	canOpen := CountAreas(b, player) < maxAreas
	for idx, owner := range b.T {
		mask[idx] = owner == core.FreeID && (canOpen || b.IsAdjacentTo(idx, player))
	}
	return mask
}

// CountLegalPlacements is the number of true entries in LegalPlacementMask.
func CountLegalPlacements(b *core.Board, player, maxAreas int) int {
	count := 0
	for _, ok := range LegalPlacementMask(b, player, maxAreas) {
		if ok {
			count++
		}
	}
	return count
}

// GoldenTargets lists the cells player could try to capture.
func GoldenTargets(b *core.Board, player int) []core.Coordinate {
	var targets []core.Coordinate
	for idx, owner := range b.T {
		if owner != core.FreeID && owner != player {
			targets = append(targets, core.FromIndex(idx, b.W))
		}
	}
	return targets
}

// GoldenMoveKeepsLimit reports whether capturing (x, y) for player leaves
// both the player and the victim within maxAreas, and whether the player
// could claim the freed cell at all. It does not look at golden-move usage.
func GoldenMoveKeepsLimit(b *core.Board, player, maxAreas, x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	victim := b.Get(x, y)
	if victim == core.FreeID || victim == player {
		return false
	}

	sim := b.Clone()
	sim.Set(x, y, core.FreeID)
	if !CanPlace(sim, player, maxAreas, x, y) {
		return false
	}
	sim.Set(x, y, player)
	return CountAreas(sim, victim) <= maxAreas && CountAreas(sim, player) <= maxAreas
}
