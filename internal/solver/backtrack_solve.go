package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// ErrUnsolvable means the search exhausted every candidate without
// completing the board. The board is left exactly as it was passed in.
var ErrUnsolvable = errors.New("solver: board is unsolvable")

// Solve fills every empty cell and returns the cells it assigned, in
// assignment order; cells that already held a value are excluded. A board
// carrying a duplicate digit fails up front with ErrUnsolvable. The search
// runs on a working copy of the values, so every failing path — including
// the outermost one — leaves the board untouched. The context bounds a
// pathological search; there is no internal timeout.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) ([]domain.CellState, ports.Stats, error) {
	start := time.Now()
	if len(s.v.Validate(b)) > 0 {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrUnsolvable
	}

	grid := b.Grid()
	nodes := 0
	var order []domain.CellCoord

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, mask, found := nextCell(&grid)
		if !found {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			if mask&(1<<v) == 0 {
				continue
			}
			nodes++
			grid[r][c] = v
			order = append(order, domain.CellCoord{Row: r, Col: c})
			if dfs() {
				return true
			}
			grid[r][c] = 0
			order = order[:len(order)-1]
		}
		return false
	}

	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}

	assigned := make([]domain.CellState, 0, len(order))
	for _, co := range order {
		b.SetValue(co.Row, co.Col, grid[co.Row][co.Col])
		// Pencil marks are not maintained during the search, so the
		// snapshots carry the value only.
		assigned = append(assigned, domain.CellState{Row: co.Row, Col: co.Col, Value: grid[co.Row][co.Col]})
	}
	return assigned, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
