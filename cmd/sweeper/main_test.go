package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchistyakov/sweeper/internal/mines"
)

func TestResolveParams(t *testing.T) {
	params, err := resolveParams(options{preset: "expert"})
	require.NoError(t, err)
	assert.Equal(t, mines.Expert, params)

	params, err = resolveParams(options{preset: "beginner", width: 12, mineCount: 7})
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 12, Height: 10, MineCount: 7}, params)

	_, err = resolveParams(options{preset: "impossible"})
	assert.Error(t, err)
}

func TestRunBatch(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	opts := options{iterations: 8, seed: 1}
	stats, err := runBatch(mines.Beginner, opts)
	require.NoError(t, err)

	assert.Equal(t, 8, stats.runs)
	assert.GreaterOrEqual(t, stats.solved, 0)
	assert.LessOrEqual(t, stats.solved, stats.runs)
	if stats.solved > 0 {
		assert.Greater(t, stats.meanLuck(), float32(0))
		assert.LessOrEqual(t, stats.meanLuck(), float32(1.0001))
	}
	assert.InDelta(t, float64(stats.solved)/8, float64(stats.successRate()), 1e-6)
}
