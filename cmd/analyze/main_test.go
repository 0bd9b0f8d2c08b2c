package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/amazeing/maze/engine"
)

func createTestOptions() Options {
	return Options{
		Width:     12,
		Height:    10,
		Count:     20,
		SeedStart: 100,
		Perfect:   true,
		Overlay:   true,
	}
}

func TestAnalyze(t *testing.T) {
	t.Run("perfect mazes have no loops", func(t *testing.T) {
		stats, err := analyze(context.Background(), createTestOptions())
		require.NoError(t, err)
		require.Len(t, stats, 2)

		carvable := 12*10 - 20
		for _, st := range stats {
			assert.Equal(t, 20, st.Mazes)
			assert.InDelta(t, float64(carvable-1), st.Passages, 1e-9, st.Algorithm)
			assert.Zero(t, st.Loops, st.Algorithm)
			assert.Greater(t, st.PathLength, 0.0)
		}
		assert.Equal(t, engine.DFS, stats[0].Algorithm)
		assert.Equal(t, engine.Prim, stats[1].Algorithm)
	})

	t.Run("prim branches more than dfs", func(t *testing.T) {
		stats, err := analyze(context.Background(), createTestOptions())
		require.NoError(t, err)
		assert.Greater(t, stats[1].DeadEnds, stats[0].DeadEnds)
		assert.Greater(t, stats[1].Junctions, stats[0].Junctions)
	})

	t.Run("imperfect mazes have loops", func(t *testing.T) {
		opts := createTestOptions()
		opts.Perfect = false
		stats, err := analyze(context.Background(), opts)
		require.NoError(t, err)
		for _, st := range stats {
			assert.Greater(t, st.Loops, 0.0, st.Algorithm)
		}
	})

	t.Run("without overlay every cell is carvable", func(t *testing.T) {
		opts := createTestOptions()
		opts.Overlay = false
		opts.Count = 3
		stats, err := analyze(context.Background(), opts)
		require.NoError(t, err)
		for _, st := range stats {
			assert.InDelta(t, float64(12*10-1), st.Passages, 1e-9)
		}
	})

	t.Run("count must be positive", func(t *testing.T) {
		opts := createTestOptions()
		opts.Count = 0
		_, err := analyze(context.Background(), opts)
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := analyze(ctx, createTestOptions())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &buf

	err := cmd.Run(context.Background(), []string{"analyze", "--width", "10", "--height", "10", "--count", "2", "--seed-start", "5", "--imperfect"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "10x10 imperfect mazes, seeds 5..6")
	assert.Contains(t, out, "=== DFS (2 mazes) ===")
	assert.Contains(t, out, "=== Prim (2 mazes) ===")
	assert.Contains(t, out, "Dead ends:")
}
