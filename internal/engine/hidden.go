package engine

import (
	"svw.info/sudoku-engine/internal/combin"
	"svw.info/sudoku-engine/internal/domain"
)

// FindHiddenValues locates digit combinations of the given size that are
// confined to exactly size unsolved cells of one house, even though those
// cells carry further candidates. The matching cells are restricted to the
// combination and reported. The confinement check is what separates hidden
// from naked groups.
func (e *Engine) FindHiddenValues(b *domain.Board, size int) ([]domain.ValueGroup, error) {
	if size < 1 {
		return nil, nil
	}
	e.UpdatePencilMarks(b)

	var groups []domain.ValueGroup
	var firstErr error
	b.ForEachHouse(func(kind domain.HouseKind, index int, cells []*domain.Cell) {
		for _, c := range cells {
			if c.Solved() || c.Candidates.Count() <= size {
				continue
			}
			gen, err := combin.New(c.Candidates.Digits(), size)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for gen.HasNext() {
				digits, err := gen.Next()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				combo := domain.NewDigitSet(digits...)
				match := []*domain.Cell{c}
				confined := true
				for _, o := range cells {
					if o == c || o.Solved() {
						continue
					}
					if o.Candidates.ContainsAll(combo) {
						match = append(match, o)
					} else if o.Candidates.Intersects(combo) {
						confined = false
						break
					}
				}
				if !confined || len(match) != size {
					continue
				}
				for _, m := range match {
					m.Candidates.RestrictTo(combo)
				}
				groups = append(groups, domain.ValueGroup{
					Kind:   kind,
					House:  index,
					Cells:  snapshots(match),
					Digits: digits,
				})
				// c now holds exactly the combination; remaining
				// combinations would read digits it no longer has.
				break
			}
		}
	})
	return groups, firstErr
}
