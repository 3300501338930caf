package domain

// Board owns the 81 cells of a puzzle in one flat arena, plus three index
// views (rows, columns, blocks) over the same cells. Views hold arena
// indices, never copies: rows[r][c], columns[c][r] and the matching block
// slot all resolve to the same cell.
type Board struct {
	cells   [81]Cell
	rows    [9][9]int
	columns [9][9]int
	blocks  [9][9]int
}

// BlockOf maps a coordinate to its 3x3 block index.
func BlockOf(row, col int) int { return (row/3)*3 + col/3 }

// NewBoard builds an empty board with full candidate sets.
func NewBoard() *Board {
	b := &Board{}
	var fill [9]int // next free slot per block
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			i := r*9 + c
			blk := BlockOf(r, c)
			b.cells[i] = Cell{Row: r, Col: c, Block: blk, Candidates: FullDigitSet()}
			b.rows[r][c] = i
			b.columns[c][r] = i
			b.blocks[blk][fill[blk]] = i
			fill[blk]++
		}
	}
	return b
}

// Cell returns the live cell at (row, col).
func (b *Board) Cell(row, col int) *Cell {
	return &b.cells[row*9+col]
}

// Value returns the placed digit at (row, col), 0 when empty.
func (b *Board) Value(row, col int) uint8 {
	return b.cells[row*9+col].Value
}

// SetValue places digit v at (row, col); v == 0 clears the cell.
func (b *Board) SetValue(row, col int, v uint8) {
	b.cells[row*9+col].Value = v
}

// Reset clears every cell to empty and refills every candidate set.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i].Value = 0
		b.cells[i].Candidates.Fill()
	}
}

// Load resets the board and places the given grid of digits (0 = empty).
func (b *Board) Load(grid [9][9]uint8) {
	b.Reset()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.cells[r*9+c].Value = grid[r][c]
		}
	}
}

// Grid copies out the current values.
func (b *Board) Grid() [9][9]uint8 {
	var g [9][9]uint8
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = b.cells[r*9+c].Value
		}
	}
	return g
}

// Unsolved counts the empty cells.
func (b *Board) Unsolved() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Value == 0 {
			n++
		}
	}
	return n
}

// House returns the cells of house i of the given kind, in house order:
// left-to-right for rows, top-to-bottom for columns, row-major within the
// 3x3 sub-grid for blocks.
func (b *Board) House(kind HouseKind, i int) []*Cell {
	var idx *[9]int
	switch kind {
	case HouseRow:
		idx = &b.rows[i]
	case HouseColumn:
		idx = &b.columns[i]
	default:
		idx = &b.blocks[i]
	}
	cells := make([]*Cell, 9)
	for k, ci := range idx {
		cells[k] = &b.cells[ci]
	}
	return cells
}

// ForEachCell visits all cells in row-major order.
func (b *Board) ForEachCell(visit func(*Cell)) {
	for i := range b.cells {
		visit(&b.cells[i])
	}
}

// ForEachHouse visits all 27 houses: for each index i in 0..8, the row
// house, then the column house, then the block house. Deductions rely on
// this order only for deterministic iteration.
func (b *Board) ForEachHouse(visit func(kind HouseKind, index int, cells []*Cell)) {
	for i := 0; i < 9; i++ {
		visit(HouseRow, i, b.House(HouseRow, i))
		visit(HouseColumn, i, b.House(HouseColumn, i))
		visit(HouseBlock, i, b.House(HouseBlock, i))
	}
}
