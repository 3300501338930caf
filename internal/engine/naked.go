package engine

import "svw.info/sudoku-engine/internal/domain"

// FindNakedValues locates groups of exactly size unsolved cells within one
// house that share an identical candidate set of that size, removes the
// shared digits from the rest of the house, and reports each group. A cell
// can show up in more than one house's group.
func (e *Engine) FindNakedValues(b *domain.Board, size int) []domain.ValueGroup {
	if size < 1 {
		return nil
	}
	e.UpdatePencilMarks(b)

	var groups []domain.ValueGroup
	b.ForEachHouse(func(kind domain.HouseKind, index int, cells []*domain.Cell) {
		for i, c := range cells {
			if c.Solved() || c.Candidates.Count() != size {
				continue
			}
			match := []*domain.Cell{c}
			for _, o := range cells[i+1:] {
				if !o.Solved() && o.Candidates.Equal(c.Candidates) {
					match = append(match, o)
				}
			}
			if len(match) != size {
				continue
			}
			for _, o := range cells {
				if o.Solved() || inGroup(match, o) {
					continue
				}
				o.Candidates.RemoveAll(c.Candidates)
			}
			groups = append(groups, domain.ValueGroup{
				Kind:   kind,
				House:  index,
				Cells:  snapshots(match),
				Digits: c.Candidates.Digits(),
			})
		}
	})
	return groups
}

func inGroup(group []*domain.Cell, c *domain.Cell) bool {
	for _, g := range group {
		if g == c {
			return true
		}
	}
	return false
}
