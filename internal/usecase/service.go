package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// Service fronts the engine for whatever owns the interaction loop. It is
// plain wiring: no global state, the board is handed in per call and the
// caller serializes its turns (edit, re-derive candidates, query).
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Deducer   ports.Deducer
}

func NewService(s ports.Solver, v ports.Validator, d ports.Deducer) *Service {
	return &Service{Solver: s, Validator: v, Deducer: d}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// SetValue places digit v at (row, col) after bounds-checking all three;
// v == 0 clears the cell.
func (u *Service) SetValue(b *domain.Board, row, col int, v uint8) error {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return fmt.Errorf("cell (%d,%d) out of range", row, col)
	}
	if v > 9 {
		return fmt.Errorf("digit %d out of range", v)
	}
	b.SetValue(row, col, v)
	return nil
}

func (u *Service) Reset(b *domain.Board) { b.Reset() }

func (u *Service) ResetCandidates(b *domain.Board) error {
	if u.Deducer == nil {
		return errNotConfigured
	}
	u.Deducer.ResetCandidates(b)
	return nil
}

func (u *Service) UpdatePencilMarks(b *domain.Board) error {
	if u.Deducer == nil {
		return errNotConfigured
	}
	u.Deducer.UpdatePencilMarks(b)
	return nil
}

func (u *Service) FindNakedValues(b *domain.Board, size int) ([]domain.ValueGroup, error) {
	if u.Deducer == nil {
		return nil, errNotConfigured
	}
	return u.Deducer.FindNakedValues(b, size), nil
}

func (u *Service) FindHiddenValues(b *domain.Board, size int) ([]domain.ValueGroup, error) {
	if u.Deducer == nil {
		return nil, errNotConfigured
	}
	return u.Deducer.FindHiddenValues(b, size)
}

func (u *Service) FindPointingValues(b *domain.Board) ([]domain.PointingReport, error) {
	if u.Deducer == nil {
		return nil, errNotConfigured
	}
	return u.Deducer.FindPointingValues(b), nil
}

func (u *Service) Validate(b *domain.Board) ([]domain.InvalidCell, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	return u.Validator.Validate(b), nil
}

func (u *Service) Solve(ctx context.Context, b *domain.Board) ([]domain.CellState, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}
