package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/amazeing/maze/config"
	"github.com/wricardo/amazeing/maze/engine"
	"github.com/wricardo/amazeing/validate"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, "1.0.0", Version)
	assert.Equal(t, "A-Maze-ing", AppName)
}

func TestGenerateCommand(t *testing.T) {
	t.Run("preset with print", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		out, err := runApp(t, "generate", "--output", "out/maze.txt", "--print", "default")
		require.NoError(t, err)

		assert.Contains(t, out, "DFS maze 20x15, seed 42")
		assert.Contains(t, out, "saved to out/maze.txt")
		assert.Contains(t, out, "█")

		result := validate.File(filepath.Join(dir, "out", "maze.txt"))
		assert.True(t, result.Valid, "errors: %v", result.Errors)
	})

	t.Run("overrides", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		out, err := runApp(t, "generate", "--algorithm", "prim", "--seed", "9", "--output", "prim.txt", "default")
		require.NoError(t, err)
		assert.Contains(t, out, "Prim maze 20x15, seed 9")
		assert.FileExists(t, filepath.Join(dir, "prim.txt"))
	})

	t.Run("config file path", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		cfgPath := filepath.Join(dir, "small.txt")
		content := "WIDTH=10\nHEIGHT=10\nENTRY=0,0\nEXIT=9,9\nOUTPUT_FILE=small_maze.txt\nPERFECT=False\nSEED=3\n"
		require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

		_, err := runApp(t, "generate", cfgPath)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "small_maze.txt"))
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		_, err := runApp(t, "generate", "--algorithm", "kruskal", "default")
		assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := runApp(t, "generate", "does-not-exist")
		assert.ErrorIs(t, err, config.ErrConfigNotFound)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := runApp(t, "generate")
		assert.ErrorContains(t, err, "missing CONFIG argument")
	})
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := runApp(t, "generate", "--output", "good.txt", "default")
	require.NoError(t, err)

	t.Run("valid export", func(t *testing.T) {
		out, err := runApp(t, "validate", "good.txt")
		require.NoError(t, err)
		assert.Contains(t, out, "=== good.txt: VALID ===")
		assert.Contains(t, out, "✓ ")
	})

	t.Run("invalid export", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("F\n"), 0644))
		out, err := runApp(t, "validate", "good.txt", "bad.txt")
		assert.ErrorIs(t, err, errValidationFailed)
		assert.Contains(t, out, "=== bad.txt: INVALID ===")
	})

	t.Run("no files", func(t *testing.T) {
		_, err := runApp(t, "validate")
		assert.Error(t, err)
	})
}

func TestPresetsCommand(t *testing.T) {
	out, err := runApp(t, "presets")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "20x15")
	assert.Contains(t, out, "imperfect")
	assert.Contains(t, out, "large.yaml")
}

// repoConfigs is resolved before any test changes directory.
var repoConfigs = mustAbs("configs")

func mustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}

// runApp runs the command line and returns what it printed on stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut

	argv := append([]string{"amazeing", "--config-dir", repoConfigs}, args...)
	err := app.Run(context.Background(), argv)
	return out.String(), err
}
