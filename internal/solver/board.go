package solver

import (
	"fmt"

	"github.com/dchistyakov/sweeper/internal/mines"
)

var neighborOffsets = [8][2]int{
	{1, 1}, {1, 0}, {1, -1},
	{0, 1}, {0, -1},
	{-1, 1}, {-1, 0}, {-1, -1},
}

// Board is the solver's private record of what it knows about each
// cell. Every cell leaves Unknown at most once, through Reveal or
// PlantFlag, and never comes back; the running counters are kept in
// step with those two mutations.
type Board struct {
	width, height    int
	grid             Grid
	flagsPlaced      int
	unknownRemaining int
	minesRevealed    int
}

func NewBoard(width, height int) *Board {
	grid := make(Grid, width*height)
	for i := range grid {
		grid[i] = Unknown
	}
	return &Board{
		width:            width,
		height:           height,
		grid:             grid,
		unknownRemaining: width * height,
	}
}

func (b *Board) Width() int            { return b.width }
func (b *Board) Height() int           { return b.height }
func (b *Board) CellCount() int        { return len(b.grid) }
func (b *Board) FlagsPlaced() int      { return b.flagsPlaced }
func (b *Board) UnknownRemaining() int { return b.unknownRemaining }
func (b *Board) MinesRevealed() int    { return b.minesRevealed }

func (b *Board) Cell(i int) CellState {
	return b.grid[i]
}

// Index converts a position to a flat index, row-major with the column
// varying fastest.
func (b *Board) Index(col, row int) (int, error) {
	if col < 0 || col >= b.width || row < 0 || row >= b.height {
		return 0, fmt.Errorf("%w: %d:%d", ErrBadIndex, col, row)
	}
	return row*b.width + col, nil
}

func (b *Board) Coords(i int) (col, row int) {
	return i % b.width, i / b.width
}

// Neighbors returns the flat indices of the up to eight cells around i,
// clipped to board bounds.
func (b *Board) Neighbors(i int) []int {
	col, row := b.Coords(i)
	neighbors := make([]int, 0, 8)
	for _, d := range neighborOffsets {
		c, r := col+d[0], row+d[1]
		if c >= 0 && c < b.width && r >= 0 && r < b.height {
			neighbors = append(neighbors, r*b.width+c)
		}
	}
	return neighbors
}

// Reveal records a sweep outcome for cell i.
func (b *Board) Reveal(i int, out mines.Outcome) error {
	if b.grid[i] != Unknown {
		return AssertionError{fmt.Sprintf("cell %d revealed twice (state %v)", i, b.grid[i])}
	}
	if out == mines.Detonated {
		b.grid[i] = Mine
		b.minesRevealed++
	} else {
		b.grid[i] = CellState(out)
	}
	b.unknownRemaining--
	return nil
}

// PlantFlag marks cell i as a deduced mine. No oracle call is made.
func (b *Board) PlantFlag(i int) error {
	if b.grid[i] != Unknown {
		return AssertionError{fmt.Sprintf("cell %d flagged twice (state %v)", i, b.grid[i])}
	}
	b.grid[i] = Flagged
	b.flagsPlaced++
	b.unknownRemaining--
	return nil
}
