package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewsAliasTheSameCells(t *testing.T) {
	b := NewBoard()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := b.Cell(r, c)
			require.Same(t, cell, b.House(HouseRow, r)[c])
			require.Same(t, cell, b.House(HouseColumn, c)[r])

			blk := BlockOf(r, c)
			found := false
			for _, bc := range b.House(HouseBlock, blk) {
				if bc == cell {
					found = true
				}
			}
			require.True(t, found, "cell (%d,%d) missing from block %d", r, c, blk)
		}
	}
}

func TestBlockCellsAreRowMajor(t *testing.T) {
	b := NewBoard()
	// block 4 covers rows 3..5, cols 3..5
	want := []CellCoord{
		{3, 3}, {3, 4}, {3, 5},
		{4, 3}, {4, 4}, {4, 5},
		{5, 3}, {5, 4}, {5, 5},
	}
	for i, c := range b.House(HouseBlock, 4) {
		require.Equal(t, want[i], c.Coord())
	}
}

func TestForEachHouseOrder(t *testing.T) {
	b := NewBoard()
	var kinds []HouseKind
	var indices []int
	b.ForEachHouse(func(kind HouseKind, index int, cells []*Cell) {
		kinds = append(kinds, kind)
		indices = append(indices, index)
		require.Len(t, cells, 9)
	})
	require.Len(t, kinds, 27)
	for i := 0; i < 9; i++ {
		require.Equal(t, []HouseKind{HouseRow, HouseColumn, HouseBlock}, kinds[i*3:i*3+3])
		require.Equal(t, []int{i, i, i}, indices[i*3:i*3+3])
	}
}

func TestLoadGridRoundTrip(t *testing.T) {
	b := NewBoard()
	grid := ExamplePuzzle()
	b.Load(grid)
	require.Equal(t, grid, b.Grid())
	require.Equal(t, 53, b.Unsolved())
}

func TestSetValueZeroClears(t *testing.T) {
	b := NewBoard()
	b.SetValue(4, 7, 6)
	require.Equal(t, uint8(6), b.Value(4, 7))
	require.True(t, b.Cell(4, 7).Solved())

	b.SetValue(4, 7, 0)
	require.Equal(t, uint8(0), b.Value(4, 7))
	require.False(t, b.Cell(4, 7).Solved())
}

func TestResetClearsValuesAndRefillsCandidates(t *testing.T) {
	b := NewBoard()
	b.Load(ExamplePuzzle())
	b.Cell(0, 2).Candidates.Clear()

	b.Reset()
	require.Equal(t, 81, b.Unsolved())
	b.ForEachCell(func(c *Cell) {
		require.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}, c.Candidates.Digits())
	})
}
