package engine

import "svw.info/sudoku-engine/internal/domain"

// ResetCandidates refills every cell's candidate set to {1..9},
// regardless of placed values.
func (e *Engine) ResetCandidates(b *domain.Board) {
	b.ForEachCell(func(c *domain.Cell) {
		c.Candidates.Fill()
	})
}

// UpdatePencilMarks recomputes all candidate sets from the placed values:
// a full reset, then every solved cell's value is struck from the
// candidates of its row, column and block peers. Idempotent. Duplicate
// placements are not detected here; that is the validator's job.
func (e *Engine) UpdatePencilMarks(b *domain.Board) {
	e.ResetCandidates(b)
	b.ForEachCell(func(c *domain.Cell) {
		if !c.Solved() {
			return
		}
		strike(b.House(domain.HouseRow, c.Row), c)
		strike(b.House(domain.HouseColumn, c.Col), c)
		strike(b.House(domain.HouseBlock, c.Block), c)
	})
}

func strike(house []*domain.Cell, src *domain.Cell) {
	for _, p := range house {
		if p != src {
			p.Candidates.Remove(src.Value)
		}
	}
}
