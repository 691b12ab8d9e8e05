package mines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The scripted backend has to honor the exact same oracle contract as
// the native one: safe first sweep, counts in 0..8, exactly MineCount
// detonations across the whole board.
func TestLuaFieldConformance(t *testing.T) {
	t.Parallel()

	params := GameParams{Width: 8, Height: 8, MineCount: 12}
	field, err := NewLuaField(params, 42)
	require.NoError(t, err)

	assert.Equal(t, params.Width, field.Width())
	assert.Equal(t, params.Height, field.Height())
	assert.Equal(t, params.MineCount, field.MineCount())

	out, err := field.Sweep(0, 0)
	require.NoError(t, err)
	require.NotEqual(t, Detonated, out, "first sweep detonated")

	mined := make([]bool, params.CellCount())
	detonations := 0
	for row := range params.Height {
		for col := range params.Width {
			if col == 0 && row == 0 {
				continue
			}
			out, err := field.Sweep(col, row)
			require.NoError(t, err)
			if out == Detonated {
				mined[row*params.Width+col] = true
				detonations++
			} else {
				assert.GreaterOrEqual(t, int(out), 0)
				assert.LessOrEqual(t, int(out), 8)
			}
		}
	}
	assert.Equal(t, params.MineCount, detonations)

	// Recheck the first answer against the mine map discovered above.
	count := 0
	for _, j := range []int{1, params.Width, params.Width + 1} {
		if mined[j] {
			count++
		}
	}
	assert.Equal(t, Outcome(count), out)
}

func TestLuaFieldContractFaults(t *testing.T) {
	t.Parallel()

	field, err := NewLuaField(GameParams{Width: 4, Height: 4, MineCount: 3}, 7)
	require.NoError(t, err)

	var ae AssertionError

	_, err = field.Sweep(4, 0)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ae))

	_, err = field.Sweep(1, 1)
	require.NoError(t, err)
	_, err = field.Sweep(1, 1)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ae))
}

func TestLuaFieldRejectsBadParams(t *testing.T) {
	t.Parallel()

	_, err := NewLuaField(GameParams{Width: 0, Height: 4, MineCount: 1}, 1)
	assert.Error(t, err)
}
