package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

// Row 0 holds 1..8, leaving (0,8) with the single candidate 9. The cell
// forms a size-1 group in each of its three houses.
func nakedSingleBoard() *domain.Board {
	b := domain.NewBoard()
	for c := 0; c < 8; c++ {
		b.SetValue(0, c, uint8(c+1))
	}
	return b
}

func TestNakedSingle(t *testing.T) {
	b := nakedSingleBoard()
	groups := New().FindNakedValues(b, 1)

	require.Len(t, groups, 3)
	kinds := make([]domain.HouseKind, 0, 3)
	for _, g := range groups {
		kinds = append(kinds, g.Kind)
		require.Equal(t, []uint8{9}, g.Digits)
		require.Len(t, g.Cells, 1)
		require.Equal(t, 0, g.Cells[0].Row)
		require.Equal(t, 8, g.Cells[0].Col)
	}
	// house order of ForEachHouse: row 0 (i=0), block 2 (i=2), column 8 (i=8)
	require.Equal(t, []domain.HouseKind{domain.HouseRow, domain.HouseBlock, domain.HouseColumn}, kinds)

	// 9 is struck from the single's column and block peers.
	require.False(t, b.Cell(5, 8).Candidates.Has(9))
	require.False(t, b.Cell(1, 6).Candidates.Has(9))
	// unrelated cells keep 9
	require.True(t, b.Cell(5, 0).Candidates.Has(9))
}

func TestNakedSingleIdempotent(t *testing.T) {
	b := nakedSingleBoard()
	e := New()

	first := e.FindNakedValues(b, 1)
	second := e.FindNakedValues(b, 1)
	require.Equal(t, first, second)
}

func TestNakedPair(t *testing.T) {
	b := domain.NewBoard()
	// row 0: 3..7 in cols 2..6; block 0 carries 8 and 9, so (0,0) and
	// (0,1) are left with exactly {1,2}.
	for c := 2; c <= 6; c++ {
		b.SetValue(0, c, uint8(c+1))
	}
	b.SetValue(1, 0, 8)
	b.SetValue(1, 1, 9)

	groups := New().FindNakedValues(b, 2)

	var rowPair *domain.ValueGroup
	for i := range groups {
		g := &groups[i]
		if g.Kind == domain.HouseRow && g.House == 0 && g.Digits[0] == 1 {
			rowPair = g
		}
	}
	require.NotNil(t, rowPair)
	require.Equal(t, []uint8{1, 2}, rowPair.Digits)
	require.Len(t, rowPair.Cells, 2)
	require.Equal(t, 0, rowPair.Cells[0].Col)
	require.Equal(t, 1, rowPair.Cells[1].Col)

	// the pair digits are gone from the rest of the row
	require.Equal(t, []uint8{8, 9}, b.Cell(0, 7).Candidates.Digits())
	require.Equal(t, []uint8{8, 9}, b.Cell(0, 8).Candidates.Digits())
	// the block-0 view of the same pair strikes its block peers too
	require.False(t, b.Cell(2, 2).Candidates.Has(1))
	require.False(t, b.Cell(2, 2).Candidates.Has(2))
}

// Three cells sharing a two-digit set is not a size-2 group.
func TestNakedPairRejectsOversizedMatch(t *testing.T) {
	b := domain.NewBoard()
	// row 0: 4..9 in cols 3..8 leaves (0,0),(0,1),(0,2) with {1,2,3};
	// no pair exists anywhere among them.
	for c := 3; c <= 8; c++ {
		b.SetValue(0, c, uint8(c+1))
	}
	groups := New().FindNakedValues(b, 2)
	for _, g := range groups {
		if g.Kind == domain.HouseRow && g.House == 0 {
			t.Fatalf("unexpected row-0 pair: %+v", g)
		}
	}
}
