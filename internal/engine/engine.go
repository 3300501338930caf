// Package engine maintains candidate (pencil-mark) state on a board and
// applies the standard deduction techniques: naked values, hidden values
// and pointing values. Every technique recomputes pencil marks before
// reading them, so candidate state is never stale with respect to the
// current values.
package engine

import "svw.info/sudoku-engine/internal/domain"

// Engine is stateless; every method takes the board it operates on.
type Engine struct{}

func New() *Engine { return &Engine{} }

func snapshots(cells []*domain.Cell) []domain.CellState {
	out := make([]domain.CellState, len(cells))
	for i, c := range cells {
		out[i] = c.Snapshot()
	}
	return out
}
