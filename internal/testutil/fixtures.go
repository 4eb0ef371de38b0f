package testutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/gamma/internal/game/core"
)

// ParseDiagram builds a board from rows written the way the engine prints
// them: the first row is the top (y = height-1), '.' is free, a digit is an
// owner and "[12]" is an owner of ten or more.
func ParseDiagram(rows ...string) (*core.Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty diagram")
	}

	parsed := make([][]int, len(rows))
	for i, row := range rows {
		cells, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if i > 0 && len(cells) != len(parsed[0]) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(cells), len(parsed[0]))
		}
		parsed[i] = cells
	}

	h := len(parsed)
	b := core.NewBoard(len(parsed[0]), h)
	for i, cells := range parsed {
		for x, owner := range cells {
			b.Set(x, h-1-i, owner)
		}
	}
	return b, nil
}

// MustParseDiagram is ParseDiagram for fixtures known to be valid.
func MustParseDiagram(rows ...string) *core.Board {
	b, err := ParseDiagram(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func parseRow(row string) ([]int, error) {
	var cells []int
	for i := 0; i < len(row); i++ {
		switch c := row[i]; {
		case c == '.':
			cells = append(cells, core.FreeID)
		case c >= '1' && c <= '9':
			cells = append(cells, int(c-'0'))
		case c == '[':
			end := strings.IndexByte(row[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("unclosed bracket at %d", i)
			}
			owner, err := strconv.Atoi(row[i+1 : i+end])
			if err != nil || owner < 1 {
				return nil, fmt.Errorf("bad owner %q", row[i+1:i+end])
			}
			cells = append(cells, owner)
			i += end
		default:
			return nil, fmt.Errorf("unexpected %q at %d", c, i)
		}
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("empty row")
	}
	return cells, nil
}
