package rules

import (
	"sort"

	"github.com/mitchelldurbincs/gamma/internal/game/core"
)

// Standing is one player's share of the board.
type Standing struct {
	PlayerID int
	Fields   int
	Areas    int
}

// Standings ranks players 1..players by owned cells, most first; ties keep
// the lower player ID first.
func Standings(b *core.Board, players int) []Standing {
	fields := make(map[int]int)
	for _, owner := range b.T {
		if owner != core.FreeID {
			fields[owner]++
		}
	}

	standings := make([]Standing, 0, players)
	for p := 1; p <= players; p++ {
		s := Standing{PlayerID: p, Fields: fields[p]}
		if s.Fields > 0 {
			s.Areas = CountAreas(b, p)
		}
		standings = append(standings, s)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Fields > standings[j].Fields
	})
	return standings
}

// Leaders returns every player sharing the highest field count. It is empty
// when nobody owns a cell.
func Leaders(standings []Standing) []int {
	var leaders []int
	if len(standings) == 0 || standings[0].Fields == 0 {
		return leaders
	}
	for _, s := range standings {
		if s.Fields != standings[0].Fields {
			break
		}
		leaders = append(leaders, s.PlayerID)
	}
	return leaders
}
