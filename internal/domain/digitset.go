package domain

import "github.com/bits-and-blooms/bitset"

// DigitSet holds a set of digits 1..9, used for cell candidates and for
// the justification sets attached to deduction reports.
type DigitSet struct {
	bits *bitset.BitSet
}

// NewDigitSet returns an empty set.
func NewDigitSet(digits ...uint8) DigitSet {
	s := DigitSet{bits: bitset.New(10)}
	for _, d := range digits {
		s.Add(d)
	}
	return s
}

// FullDigitSet returns a set containing all of 1..9.
func FullDigitSet() DigitSet {
	s := NewDigitSet()
	s.Fill()
	return s
}

// Fill resets the set to all of 1..9.
func (s DigitSet) Fill() {
	s.bits.ClearAll()
	for d := uint(1); d <= 9; d++ {
		s.bits.Set(d)
	}
}

func (s DigitSet) Clear()                { s.bits.ClearAll() }
func (s DigitSet) Add(d uint8)           { s.bits.Set(uint(d)) }
func (s DigitSet) Remove(d uint8)        { s.bits.Clear(uint(d)) }
func (s DigitSet) Has(d uint8) bool      { return s.bits.Test(uint(d)) }
func (s DigitSet) Count() int            { return int(s.bits.Count()) }
func (s DigitSet) Equal(o DigitSet) bool { return s.bits.Equal(o.bits) }

// ContainsAll reports whether every digit of o is present in s.
func (s DigitSet) ContainsAll(o DigitSet) bool { return s.bits.IsSuperSet(o.bits) }

// Intersects reports whether s and o share at least one digit.
func (s DigitSet) Intersects(o DigitSet) bool {
	return s.bits.IntersectionCardinality(o.bits) > 0
}

// RemoveAll removes every digit of o from s.
func (s DigitSet) RemoveAll(o DigitSet) { s.bits.InPlaceDifference(o.bits) }

// RestrictTo drops every digit of s that is not in o.
func (s DigitSet) RestrictTo(o DigitSet) { s.bits.InPlaceIntersection(o.bits) }

// Clone returns an independent copy of the set.
func (s DigitSet) Clone() DigitSet {
	return DigitSet{bits: s.bits.Clone()}
}

// Digits returns the members in ascending order.
func (s DigitSet) Digits() []uint8 {
	out := make([]uint8, 0, s.bits.Count())
	for d, ok := s.bits.NextSet(1); ok && d <= 9; d, ok = s.bits.NextSet(d + 1) {
		out = append(out, uint8(d))
	}
	return out
}
