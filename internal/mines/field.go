package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Field is the natively generated minefield. Mine placement is lazy:
// the grid stays unplaced until the first Sweep call, which then plants
// MineCount mines uniformly over every cell except the probed one, so
// the first sweep can never detonate.
type Field struct {
	params GameParams
	rnd    *rand.Rand
	mines  []bool // nil until placed
	swept  []bool
}

// NewField creates an unplaced field. The random generator is injected
// so callers can make placement deterministic.
func NewField(params GameParams, rnd *rand.Rand) (*Field, error) {
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("new field: %w", err)
	}
	return &Field{
		params: params,
		rnd:    rnd,
		swept:  make([]bool, params.CellCount()),
	}, nil
}

// FieldFromGrid creates a field with a fixed, already placed mine
// layout. The mine count is taken from the layout itself.
func FieldFromGrid(width, height int, mineGrid []bool) (*Field, error) {
	if len(mineGrid) != width*height {
		return nil, fmt.Errorf("mine grid of %d cells does not match a %dx%d field",
			len(mineGrid), width, height)
	}
	mineCount := 0
	for _, mined := range mineGrid {
		if mined {
			mineCount++
		}
	}
	return &Field{
		params: GameParams{Width: width, Height: height, MineCount: mineCount},
		mines:  mineGrid,
		swept:  make([]bool, width*height),
	}, nil
}

func (f *Field) Width() int     { return f.params.Width }
func (f *Field) Height() int    { return f.params.Height }
func (f *Field) MineCount() int { return f.params.MineCount }

func (f *Field) place(exclude int) {
	size := f.params.CellCount()
	f.mines = make([]bool, size)
	for planted := 0; planted < f.params.MineCount; {
		i := f.rnd.IntN(size)
		if i != exclude && !f.mines[i] {
			f.mines[i] = true
			planted++
		}
	}
	Log.WithFields(logrus.Fields{
		"params":  f.params,
		"exclude": exclude,
	}).Debug("placed mines")
}

func (f *Field) neighborMines(col, row int) (count int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			c, r := col+dx, row+dy
			if f.params.PointInBounds(c, r) && f.mines[r*f.params.Width+c] {
				count++
			}
		}
	}
	return count
}

func (f *Field) Sweep(col, row int) (Outcome, error) {
	if !f.params.PointInBounds(col, row) {
		return 0, AssertionError{fmt.Sprintf("sweep out of bounds: %d:%d", col, row)}
	}
	i := row*f.params.Width + col
	if f.swept[i] {
		return 0, AssertionError{fmt.Sprintf("cell %d:%d swept twice", col, row)}
	}
	f.swept[i] = true
	if f.mines == nil {
		f.place(i)
	}
	if f.mines[i] {
		return Detonated, nil
	}
	return Outcome(f.neighborMines(col, row)), nil
}
