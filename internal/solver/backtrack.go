package solver

import (
	"math/bits"

	"svw.info/sudoku-engine/internal/validator"
)

// BacktrackingSolver completes a validator-clean board by depth-first
// search with a fewest-candidates-first cell order.
type BacktrackingSolver struct {
	v *validator.FastValidator
}

func NewBacktrackingSolver() *BacktrackingSolver {
	return &BacktrackingSolver{v: validator.New()}
}

const allDigits = 0x3FE // bits 1..9

// legalMask returns the digits placeable at (r, c) against the live grid,
// one bit per digit.
func legalMask(g *[9][9]uint8, r, c int) uint16 {
	m := uint16(allDigits)
	for i := 0; i < 9; i++ {
		m &^= 1 << g[r][i]
		m &^= 1 << g[i][c]
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			m &^= 1 << g[br+dr][bc+dc]
		}
	}
	return m
}

// nextCell picks the empty cell with the fewest legal digits, ties broken
// by row-major position. found is false once the grid is complete.
func nextCell(g *[9][9]uint8) (row, col int, mask uint16, found bool) {
	best := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			m := legalMask(g, r, c)
			if n := bits.OnesCount16(m); n < best {
				best = n
				row, col, mask, found = r, c, m, true
				if n == 0 {
					return
				}
			}
		}
	}
	return
}
