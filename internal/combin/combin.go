// Package combin lazily enumerates the k-subsets of a fixed sequence in
// lexicographic order of the source positions.
package combin

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when the subset size is out of [0, n].
	ErrInvalidArgument = errors.New("combin: subset size out of range")
	// ErrExhausted is returned by Next once every combination has been produced.
	ErrExhausted = errors.New("combin: iterator exhausted")
)

// Generator walks the C(n, k) combinations of its source. A generator is
// single-use: re-enumerating requires a fresh instance.
type Generator[T any] struct {
	src       []T
	pointers  []int
	remaining int
	started   bool
}

// New builds a generator over the k-subsets of src. The source slice is not
// copied; callers must not mutate it while iterating.
func New[T any](src []T, k int) (*Generator[T], error) {
	n := len(src)
	if k < 0 || k > n {
		return nil, fmt.Errorf("%w: k=%d n=%d", ErrInvalidArgument, k, n)
	}
	g := &Generator[T]{
		src:       src,
		pointers:  make([]int, k),
		remaining: binomial(n, k),
	}
	for i := range g.pointers {
		g.pointers[i] = i
	}
	return g, nil
}

// HasNext reports whether any combination remains.
func (g *Generator[T]) HasNext() bool { return g.remaining > 0 }

// Next returns the current combination and advances the iterator.
func (g *Generator[T]) Next() ([]T, error) {
	if g.remaining == 0 {
		return nil, ErrExhausted
	}
	if g.started {
		g.advance()
	}
	g.started = true
	g.remaining--

	out := make([]T, len(g.pointers))
	for i, p := range g.pointers {
		out[i] = g.src[p]
	}
	return out, nil
}

// advance moves to the next pointer tuple: bump the right-most pointer not
// yet at its maximum position, then reset everything to its right to
// consecutive positions immediately after it.
func (g *Generator[T]) advance() {
	k := len(g.pointers)
	n := len(g.src)
	for i := k - 1; i >= 0; i-- {
		if g.pointers[i] < n-k+i {
			g.pointers[i]++
			for j := i + 1; j < k; j++ {
				g.pointers[j] = g.pointers[j-1] + 1
			}
			return
		}
	}
}

func binomial(n, k int) int {
	if k > n-k {
		k = n - k
	}
	r := 1
	for i := 0; i < k; i++ {
		r = r * (n - i) / (i + 1)
	}
	return r
}
