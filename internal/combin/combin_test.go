package combin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairsOfThree(t *testing.T) {
	g, err := New([]int{1, 2, 3}, 2)
	require.NoError(t, err)

	want := [][]int{{1, 2}, {1, 3}, {2, 3}}
	for _, w := range want {
		require.True(t, g.HasNext())
		got, err := g.Next()
		require.NoError(t, err)
		require.Equal(t, w, got)
	}
	require.False(t, g.HasNext())

	_, err = g.Next()
	require.ErrorIs(t, err, ErrExhausted)
}

func TestSizeBounds(t *testing.T) {
	_, err := New([]int{1, 2}, 3)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New([]int{1, 2}, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEmptySubset(t *testing.T) {
	g, err := New([]string{"a", "b"}, 0)
	require.NoError(t, err)
	require.True(t, g.HasNext())

	got, err := g.Next()
	require.NoError(t, err)
	require.Empty(t, got)

	require.False(t, g.HasNext())
	_, err = g.Next()
	require.ErrorIs(t, err, ErrExhausted)
}

func TestFullSubset(t *testing.T) {
	g, err := New([]uint8{4, 7, 9}, 3)
	require.NoError(t, err)

	got, err := g.Next()
	require.NoError(t, err)
	require.Equal(t, []uint8{4, 7, 9}, got)
	require.False(t, g.HasNext())
}

func TestLexicographicOrder(t *testing.T) {
	g, err := New([]int{0, 1, 2, 3, 4}, 3)
	require.NoError(t, err)

	var all [][]int
	for g.HasNext() {
		c, err := g.Next()
		require.NoError(t, err)
		all = append(all, c)
	}
	require.Len(t, all, 10) // C(5,3)
	require.Equal(t, []int{0, 1, 2}, all[0])
	require.Equal(t, []int{0, 1, 3}, all[1])
	require.Equal(t, []int{2, 3, 4}, all[9])
}
