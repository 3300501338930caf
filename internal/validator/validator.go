package validator

import "svw.info/sudoku-engine/internal/domain"

// FastValidator reports duplicate placed digits per house. It never errors
// and says nothing about solvability.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate returns one report per offending cell per duplicated digit per
// house — every occurrence of the digit is flagged, not just the repeats.
// An empty result means the board breaks no placement rule.
func (v *FastValidator) Validate(b *domain.Board) []domain.InvalidCell {
	var reports []domain.InvalidCell
	b.ForEachHouse(func(kind domain.HouseKind, index int, cells []*domain.Cell) {
		for d := uint8(1); d <= 9; d++ {
			var hits []*domain.Cell
			for _, c := range cells {
				if c.Value == d {
					hits = append(hits, c)
				}
			}
			if len(hits) < 2 {
				continue
			}
			for _, c := range hits {
				reports = append(reports, domain.InvalidCell{
					Cell:  c.Coord(),
					Kind:  kind,
					Digit: d,
				})
			}
		}
	})
	return reports
}
