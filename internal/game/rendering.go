package game

import (
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/gamma/internal/game/core"
)

// bracketWidth is how many bytes beyond one a cell owned by player takes in
// Board output: "[12]" is 4 bytes, so 3 extra.
func bracketWidth(player int) int {
	if player < 10 {
		return 0
	}
	return len(strconv.Itoa(player)) + 1
}

// BoardSize returns the exact length of Board's output.
func (e *Engine) BoardSize() int {
	if e == nil {
		return 0
	}
	return (e.width+1)*e.height + e.bracketBytes
}

// Board renders the grid one row per line, from the top row (y = height-1)
// down to y = 0. Free cells are '.', owners 1..9 a digit and larger owners
// their number in brackets. Every row, including the last, ends in '\n'.
func (e *Engine) Board() string {
	if e == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(e.BoardSize())

	var digits [20]byte
	for y := e.height - 1; y >= 0; y-- {
		for x := 0; x < e.width; x++ {
			owner := e.board.Get(x, y)
			switch {
			case owner == core.FreeID:
				sb.WriteByte('.')
			case owner < 10:
				sb.WriteByte(byte('0' + owner))
			default:
				sb.WriteByte('[')
				sb.Write(strconv.AppendInt(digits[:0], int64(owner), 10))
				sb.WriteByte(']')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
