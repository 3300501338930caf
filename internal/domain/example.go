package domain

// ExamplePuzzle returns the classical 28-clue demo layout (0 = empty).
// The engine's end-to-end tests and the CLI's --example flag both use it.
func ExamplePuzzle() [9][9]uint8 {
	return [9][9]uint8{
		{5, 3, 0, 0, 0, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 0, 0, 0, 7, 9},
	}
}
