package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wricardo/amazeing/maze/engine"
)

const (
	DefaultGenerationDelay = 10 * time.Millisecond
	DefaultPathDelay       = 80 * time.Millisecond
)

// Screen draws mazes on a tcell screen.
type Screen struct {
	screen          tcell.Screen
	GenerationDelay time.Duration
	PathDelay       time.Duration
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen:          s,
		GenerationDelay: DefaultGenerationDelay,
		PathDelay:       DefaultPathDelay,
	}
}

// Tcell exposes the wrapped screen.
func (s *Screen) Tcell() tcell.Screen {
	return s.screen
}

// DrawFrame paints a frame with its top left corner at (x, y). It does not
// call Show.
func (s *Screen) DrawFrame(f *Frame, x, y int, color string) {
	for r, row := range f.Kinds {
		for c, k := range row {
			s.screen.SetContent(x+c, y+r, k.Rune(), nil, cellStyle(k, color))
		}
	}
}

// Draw clears the screen and paints the scene at the origin.
func (s *Screen) Draw(sc Scene, color string) *Frame {
	f := BuildFrame(sc)
	s.screen.Clear()
	s.DrawFrame(f, 0, 0, color)
	return f
}

// DrawText writes a single line of text.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *Screen) Show() {
	s.screen.Show()
}

// AnimateGeneration replays the recorded carving on a blank grid, showing
// each opened wall, then draws the finished scene.
func (s *Screen) AnimateGeneration(ctx context.Context, rec *engine.Recorder, sc Scene, color string) error {
	if rec == nil || rec.Len() == 0 {
		s.Draw(sc, color)
		s.Show()
		return nil
	}

	step := sc
	step.Path = nil
	_, err := rec.Replay(sc.Grid.Width, sc.Grid.Height, func(g *engine.Grid, _ int) error {
		step.Grid = g
		s.Draw(step, color)
		s.Show()
		return sleep(ctx, s.GenerationDelay)
	})
	if err != nil {
		return err
	}

	s.Draw(sc, color)
	s.Show()
	return nil
}

// AnimatePath grows the solution from the entry one cell at a time.
func (s *Screen) AnimatePath(ctx context.Context, sc Scene, color string) error {
	path := sc.Path
	for i := 1; i <= len(path); i++ {
		sc.Path = path[:i]
		s.Draw(sc, color)
		s.Show()
		if err := sleep(ctx, s.PathDelay); err != nil {
			return err
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
