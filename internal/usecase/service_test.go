package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/engine"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/validator"
)

func newTestService() *Service {
	return NewService(solver.NewBacktrackingSolver(), validator.New(), engine.New())
}

func TestSetValueBounds(t *testing.T) {
	uc := newTestService()
	b := domain.NewBoard()

	require.NoError(t, uc.SetValue(b, 0, 0, 9))
	require.NoError(t, uc.SetValue(b, 8, 8, 0))
	require.Error(t, uc.SetValue(b, -1, 0, 1))
	require.Error(t, uc.SetValue(b, 0, 9, 1))
	require.Error(t, uc.SetValue(b, 0, 0, 10))
	require.Equal(t, uint8(9), b.Value(0, 0))
}

func TestEndToEndTurn(t *testing.T) {
	uc := newTestService()
	b := domain.NewBoard()
	b.Load(domain.ExamplePuzzle())

	require.NoError(t, uc.UpdatePencilMarks(b))

	reports, err := uc.Validate(b)
	require.NoError(t, err)
	require.Empty(t, reports)

	assigned, _, err := uc.Solve(context.Background(), b)
	require.NoError(t, err)
	require.Len(t, assigned, 53)

	reports, err = uc.Validate(b)
	require.NoError(t, err)
	require.Empty(t, reports)
}

func TestUnconfiguredDependenciesError(t *testing.T) {
	uc := &Service{}
	b := domain.NewBoard()

	require.ErrorIs(t, uc.UpdatePencilMarks(b), errNotConfigured)
	_, err := uc.FindNakedValues(b, 1)
	require.ErrorIs(t, err, errNotConfigured)
	_, err = uc.Validate(b)
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = uc.Solve(context.Background(), b)
	require.ErrorIs(t, err, errNotConfigured)
}
