package domain

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellState is an outbound snapshot of a cell, detached from the live board
// so deduction reports never alias engine-internal state.
type CellState struct {
	Row        int     `json:"row"`
	Col        int     `json:"col"`
	Value      uint8   `json:"value"`
	Candidates []uint8 `json:"candidates,omitempty"`
}

// ValueGroup reports a naked or hidden value group: the cells that form the
// group and the digit set that justifies it.
type ValueGroup struct {
	Kind   HouseKind   `json:"house"`
	House  int         `json:"houseIndex"`
	Cells  []CellState `json:"cells"`
	Digits []uint8     `json:"digits"`
}

// PointingReport describes a digit confined to a block-aligned triple and
// the cells outside the triple that lost it as a candidate.
type PointingReport struct {
	Digit      uint8       `json:"digit"`
	Kind       HouseKind   `json:"line"`
	Line       int         `json:"lineIndex"`
	Block      int         `json:"block"`
	Triple     []CellState `json:"triple"`
	Eliminated []CellState `json:"eliminated"`
}

// InvalidCell flags one cell participating in a duplicate digit within a house.
type InvalidCell struct {
	Cell  CellCoord `json:"cell"`
	Kind  HouseKind `json:"house"`
	Digit uint8     `json:"digit"`
}
