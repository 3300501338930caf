package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a partially filled board by exhaustive search.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) ([]domain.CellState, Stats, error)
}

// Validator performs duplicate-digit checks over all 27 houses.
type Validator interface {
	Validate(b *domain.Board) []domain.InvalidCell
}

// Deducer maintains pencil marks and applies deduction techniques.
type Deducer interface {
	ResetCandidates(b *domain.Board)
	UpdatePencilMarks(b *domain.Board)
	FindNakedValues(b *domain.Board, size int) []domain.ValueGroup
	FindHiddenValues(b *domain.Board, size int) ([]domain.ValueGroup, error)
	FindPointingValues(b *domain.Board) []domain.PointingReport
}
