package domain

// Cell is one board position. Cells are created once at board construction
// and mutated in place for the life of the puzzle.
type Cell struct {
	Row   int
	Col   int
	Block int
	Value uint8

	// Candidates only ever shrinks between one full reset and the next;
	// solved cells keep their set purely as deduction bookkeeping.
	Candidates DigitSet
}

// Solved reports whether the cell carries a placed digit.
func (c *Cell) Solved() bool { return c.Value != 0 }

// Coord returns the cell's board coordinate.
func (c *Cell) Coord() CellCoord { return CellCoord{Row: c.Row, Col: c.Col} }

// Snapshot captures the cell's current state for an outbound report.
func (c *Cell) Snapshot() CellState {
	return CellState{
		Row:        c.Row,
		Col:        c.Col,
		Value:      c.Value,
		Candidates: c.Candidates.Digits(),
	}
}
