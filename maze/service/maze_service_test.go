package service_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/amazeing/maze/config"
	"github.com/wricardo/amazeing/maze/engine"
	"github.com/wricardo/amazeing/maze/service"
	"github.com/wricardo/amazeing/maze/session"
)

// MockExporter implements session.Exporter for testing
type MockExporter struct {
	path     string
	exported []*session.Session
	err      error
}

func (m *MockExporter) Export(s *session.Session) error {
	if m.err != nil {
		return m.err
	}
	m.exported = append(m.exported, s)
	return nil
}

func (m *MockExporter) Path() string {
	return m.path
}

func newMockFactory(m *MockExporter) service.ExporterFactory {
	return func(path string) (session.Exporter, error) {
		m.path = path
		return m, nil
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func createTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse(map[string]string{
		"WIDTH":       "15",
		"HEIGHT":      "12",
		"ENTRY":       "0,0",
		"EXIT":        "14,11",
		"OUTPUT_FILE": "maze.txt",
		"PERFECT":     "true",
		"SEED":        "42",
		"ANIMATE":     "false",
	})
	require.NoError(t, err)
	return cfg
}

func TestRegenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("first generation uses the configured seed", func(t *testing.T) {
		exp := &MockExporter{}
		svc := service.NewMazeService(createTestConfig(t), newMockFactory(exp), quietLogger())

		info, err := svc.Regenerate(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, int64(42), info.Seed)
		assert.Equal(t, engine.DFS, info.Algorithm)
		assert.Equal(t, "maze.txt", info.Output)
		assert.Equal(t, 15*12-20-1, info.Passages)
		assert.Positive(t, info.PathLength)
		require.Len(t, exp.exported, 1)

		sess, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, info.ID, sess.ID)
	})

	t.Run("later generations are unseeded", func(t *testing.T) {
		exp := &MockExporter{}
		svc := service.NewMazeService(createTestConfig(t), newMockFactory(exp), quietLogger())

		first, err := svc.Regenerate(ctx, engine.DFS)
		require.NoError(t, err)
		second, err := svc.Regenerate(ctx, engine.Prim)
		require.NoError(t, err)

		assert.NotEqual(t, int64(42), second.Seed)
		assert.Equal(t, engine.Prim, second.Algorithm)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, exp.exported, 2)
	})

	t.Run("two services with the same seed agree", func(t *testing.T) {
		a := service.NewMazeService(createTestConfig(t), newMockFactory(&MockExporter{}), quietLogger())
		b := service.NewMazeService(createTestConfig(t), newMockFactory(&MockExporter{}), quietLogger())

		_, err := a.Regenerate(ctx, engine.Prim)
		require.NoError(t, err)
		_, err = b.Regenerate(ctx, engine.Prim)
		require.NoError(t, err)

		sa, _ := a.Current(ctx)
		sb, _ := b.Current(ctx)
		assert.Equal(t, session.Encode(sa), session.Encode(sb))
	})

	t.Run("export failure keeps the previous maze", func(t *testing.T) {
		exp := &MockExporter{}
		svc := service.NewMazeService(createTestConfig(t), newMockFactory(exp), quietLogger())

		first, err := svc.Regenerate(ctx, "")
		require.NoError(t, err)

		exp.err = errors.New("disk full")
		_, err = svc.Regenerate(ctx, "")
		assert.Error(t, err)

		sess, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, sess.ID)
	})

	t.Run("geometry conflict", func(t *testing.T) {
		cfg := createTestConfig(t)
		cfg.Entry = engine.ComputeOverlay(cfg.Width, cfg.Height).Cells()[0]
		svc := service.NewMazeService(cfg, newMockFactory(&MockExporter{}), quietLogger())

		_, err := svc.Regenerate(ctx, "")
		assert.ErrorIs(t, err, engine.ErrGeometryConflict)
	})

	t.Run("cancelled context", func(t *testing.T) {
		svc := service.NewMazeService(createTestConfig(t), newMockFactory(&MockExporter{}), quietLogger())
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := svc.Regenerate(cctx, "")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("writes the export file", func(t *testing.T) {
		cfg := createTestConfig(t)
		cfg.OutputFile = filepath.Join(t.TempDir(), "maze.txt")
		svc := service.NewMazeService(cfg, nil, quietLogger())

		_, err := svc.Regenerate(ctx, "")
		require.NoError(t, err)

		sess, _ := svc.Current(ctx)
		data, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)
		assert.Equal(t, session.Encode(sess), data)
	})
}

func TestNoSession(t *testing.T) {
	ctx := context.Background()
	svc := service.NewMazeService(createTestConfig(t), newMockFactory(&MockExporter{}), quietLogger())

	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, service.ErrNoSession)
	_, err = svc.Path(ctx)
	assert.ErrorIs(t, err, service.ErrNoSession)
	_, err = svc.RecomputePath(ctx)
	assert.ErrorIs(t, err, service.ErrNoSession)
}

func TestPath(t *testing.T) {
	ctx := context.Background()
	svc := service.NewMazeService(createTestConfig(t), newMockFactory(&MockExporter{}), quietLogger())
	_, err := svc.Regenerate(ctx, "")
	require.NoError(t, err)

	path, err := svc.Path(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, engine.Point{}, path[0])
	assert.Equal(t, engine.Point{X: 14, Y: 11}, path[len(path)-1])

	again, err := svc.RecomputePath(ctx)
	require.NoError(t, err)
	assert.Equal(t, path, again)

	assert.False(t, svc.PathVisible())
	assert.True(t, svc.TogglePath(ctx))
	assert.True(t, svc.PathVisible())
	assert.False(t, svc.TogglePath(ctx))
}

func TestRotateColor(t *testing.T) {
	ctx := context.Background()
	svc := service.NewMazeService(createTestConfig(t), newMockFactory(&MockExporter{}), quietLogger())

	assert.Equal(t, service.White, svc.Color())
	seen := []service.Color{svc.Color()}
	for i := 1; i < len(service.Palette); i++ {
		seen = append(seen, svc.RotateColor(ctx))
	}
	assert.Equal(t, service.Palette, seen)
	assert.Equal(t, service.White, svc.RotateColor(ctx))
}

func TestReconfigure(t *testing.T) {
	ctx := context.Background()
	exp := &MockExporter{}
	svc := service.NewMazeService(createTestConfig(t), newMockFactory(exp), quietLogger())

	_, err := svc.Regenerate(ctx, "")
	require.NoError(t, err)

	cfg := createTestConfig(t)
	cfg.Width = 30
	cfg.Exit = engine.Point{X: 29, Y: 11}
	cfg.OutputFile = "other.txt"
	require.NoError(t, svc.Reconfigure(ctx, cfg))
	assert.Same(t, cfg, svc.Config())

	info, err := svc.Regenerate(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 30, info.Width)
	assert.Equal(t, int64(42), info.Seed)
	assert.Equal(t, "other.txt", exp.path)

	t.Run("rejects invalid configuration", func(t *testing.T) {
		bad := createTestConfig(t)
		bad.Exit = bad.Entry
		err := svc.Reconfigure(ctx, bad)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Same(t, cfg, svc.Config())

		assert.ErrorIs(t, svc.Reconfigure(ctx, nil), config.ErrInvalidConfig)
	})
}
