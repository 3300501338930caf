package engine

import "svw.info/sudoku-engine/internal/domain"

// FindPointingValues scans every block-aligned row and column triple. A
// digit whose only candidates within the block sit inside one triple must
// land in that triple, so it is removed from the rest of the triple's row
// or column outside the block. Only triples that eliminated something are
// reported.
func (e *Engine) FindPointingValues(b *domain.Board) []domain.PointingReport {
	e.UpdatePencilMarks(b)

	var reports []domain.PointingReport
	for blk := 0; blk < 9; blk++ {
		block := b.House(domain.HouseBlock, blk)
		baseRow := (blk / 3) * 3
		baseCol := (blk % 3) * 3
		for t := 0; t < 3; t++ {
			rowTriple := block[t*3 : t*3+3]
			reports = e.pointAlongLine(b, reports, blk, block, rowTriple, domain.HouseRow, baseRow+t)
		}
		for t := 0; t < 3; t++ {
			colTriple := []*domain.Cell{block[t], block[t+3], block[t+6]}
			reports = e.pointAlongLine(b, reports, blk, block, colTriple, domain.HouseColumn, baseCol+t)
		}
	}
	return reports
}

func (e *Engine) pointAlongLine(b *domain.Board, reports []domain.PointingReport,
	blk int, block, triple []*domain.Cell, kind domain.HouseKind, line int) []domain.PointingReport {

	for d := uint8(1); d <= 9; d++ {
		if !candidateInTriple(triple, d) {
			continue
		}
		if candidateElsewhereInBlock(block, triple, d) {
			continue
		}
		var eliminated []domain.CellState
		for _, c := range b.House(kind, line) {
			if c.Block == blk || c.Solved() || !c.Candidates.Has(d) {
				continue
			}
			c.Candidates.Remove(d)
			eliminated = append(eliminated, c.Snapshot())
		}
		if len(eliminated) > 0 {
			reports = append(reports, domain.PointingReport{
				Digit:      d,
				Kind:       kind,
				Line:       line,
				Block:      blk,
				Triple:     snapshots(triple),
				Eliminated: eliminated,
			})
		}
	}
	return reports
}

func candidateInTriple(triple []*domain.Cell, d uint8) bool {
	for _, c := range triple {
		if !c.Solved() && c.Candidates.Has(d) {
			return true
		}
	}
	return false
}

func candidateElsewhereInBlock(block, triple []*domain.Cell, d uint8) bool {
	for _, c := range block {
		if inGroup(triple, c) || c.Solved() {
			continue
		}
		if c.Candidates.Has(d) {
			return true
		}
	}
	return false
}
