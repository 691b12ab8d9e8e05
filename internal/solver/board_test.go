package solver

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchistyakov/sweeper/internal/mines"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// counters must always agree with a full scan of the grid
func checkCounters(t *testing.T, b *Board) {
	t.Helper()
	var flags, unknowns, minesRevealed int
	for i := range b.CellCount() {
		switch cell := b.Cell(i); {
		case cell == Flagged:
			flags++
		case cell == Unknown:
			unknowns++
		case cell == Mine:
			minesRevealed++
		}
	}
	assert.Equal(t, flags, b.FlagsPlaced())
	assert.Equal(t, unknowns, b.UnknownRemaining())
	assert.Equal(t, minesRevealed, b.MinesRevealed())
}

func TestBoardCounters(t *testing.T) {
	t.Parallel()

	b := NewBoard(3, 2)
	assert.Equal(t, 6, b.UnknownRemaining())
	checkCounters(t, b)

	require.NoError(t, b.Reveal(0, mines.Outcome(2)))
	assert.Equal(t, 5, b.UnknownRemaining())
	checkCounters(t, b)

	require.NoError(t, b.PlantFlag(1))
	assert.Equal(t, 4, b.UnknownRemaining())
	assert.Equal(t, 1, b.FlagsPlaced())
	checkCounters(t, b)

	require.NoError(t, b.Reveal(2, mines.Detonated))
	assert.Equal(t, 1, b.MinesRevealed())
	checkCounters(t, b)

	// flags + revealed (numbered and mine cells) + unknown covers the board
	revealed := 2
	assert.Equal(t, b.CellCount(), b.FlagsPlaced()+revealed+b.UnknownRemaining())
}

func TestBoardSingleTransition(t *testing.T) {
	t.Parallel()

	b := NewBoard(2, 2)
	require.NoError(t, b.Reveal(0, mines.Outcome(1)))
	require.NoError(t, b.PlantFlag(1))

	var ae AssertionError

	err := b.Reveal(0, mines.Outcome(1))
	require.Error(t, err)
	assert.True(t, errors.As(err, &ae))

	err = b.Reveal(1, mines.Outcome(0))
	require.Error(t, err)
	assert.True(t, errors.As(err, &ae))

	err = b.PlantFlag(0)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ae))

	// failed mutations must not touch the counters
	assert.Equal(t, 2, b.UnknownRemaining())
	assert.Equal(t, 1, b.FlagsPlaced())
}

func TestBoardIndex(t *testing.T) {
	t.Parallel()

	b := NewBoard(4, 3)

	i, err := b.Index(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, i)
	col, row := b.Coords(6)
	assert.Equal(t, 2, col)
	assert.Equal(t, 1, row)

	for _, pos := range [][2]int{{-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
		_, err := b.Index(pos[0], pos[1])
		assert.ErrorIs(t, err, ErrBadIndex, "position %v", pos)
	}
}

func TestBoardNeighbors(t *testing.T) {
	t.Parallel()

	b := NewBoard(3, 3)

	assert.ElementsMatch(t, []int{1, 3, 4}, b.Neighbors(0))
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, b.Neighbors(4))
	assert.ElementsMatch(t, []int{4, 5, 7}, b.Neighbors(8))
}

func TestGridToString(t *testing.T) {
	t.Parallel()

	g := Grid{Unknown, Flagged, 0, 3, Mine, Unknown}
	assert.Equal(t, ". F \n  3 \nX . \n", g.ToString(2))
}
