// Package tui runs the interactive maze menu on a tcell screen.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/wricardo/amazeing/maze/config"
	"github.com/wricardo/amazeing/maze/engine"
	"github.com/wricardo/amazeing/maze/service"
	"github.com/wricardo/amazeing/render"
)

type mode int

const (
	modeIntro mode = iota
	modeMenu
	modeAlgorithm
)

var (
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	menuStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var menuLines = []string{
	"=== A-Maze-ing ===",
	"1. Re-generate a new maze",
	"2. Show/Hide path from entry to exit",
	"3. Rotate maze colors",
	"4. Quit",
}

var algorithmLines = []string{
	"Available algorithms",
	"1- DFS",
	"2- PRIM'S",
}

// App is the keyboard driven maze session.
type App struct {
	screen *render.Screen
	svc    service.MazeService
	log    *logrus.Logger

	// WatchPath, when set, regenerates the maze whenever the file changes.
	WatchPath string
	// SkipIntro starts directly on the first maze.
	SkipIntro bool

	mode   mode
	status string
	failed bool
	events chan tcell.Event
}

// New creates an app drawing on an initialized screen.
func New(screen tcell.Screen, svc service.MazeService, log *logrus.Logger) *App {
	return &App{
		screen: render.NewScreen(screen),
		svc:    svc,
		log:    log,
		events: make(chan tcell.Event, 16),
	}
}

// Screen gives access to the renderer, mostly to tune animation delays.
func (a *App) Screen() *render.Screen {
	return a.screen
}

// Run processes events until the user quits or ctx is done. A maze whose
// entry or exit lies in the emblem ends the session with an error.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.pollEvents(ctx, cancel)

	if a.WatchPath != "" {
		go func() {
			err := Watch(ctx, a.WatchPath, config.Load, a.screen.Tcell().PostEvent, a.log)
			if err != nil && !errors.Is(err, context.Canceled) {
				a.log.WithError(err).Warn("config watcher stopped")
			}
		}()
	}

	if a.SkipIntro {
		if err := a.generate(ctx, ""); err != nil {
			return err
		}
	} else {
		a.drawIntro()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-a.events:
			quit, err := a.handle(ctx, ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// pollEvents forwards screen events to the loop. Ctrl-C cancels at once so
// that running animations stop.
func (a *App) pollEvents(ctx context.Context, cancel context.CancelFunc) {
	for {
		ev := a.screen.Tcell().PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyCtrlC {
			cancel()
			return
		}
		select {
		case a.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) handle(ctx context.Context, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Tcell().Sync()
		a.redraw()
	case *tcell.EventInterrupt:
		if reload, ok := ev.Data().(Reload); ok {
			return false, a.reload(ctx, reload)
		}
	case *tcell.EventKey:
		return a.handleKey(ctx, ev)
	}
	return false, nil
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) (bool, error) {
	if ev.Key() == tcell.KeyEscape {
		return true, nil
	}

	switch a.mode {
	case modeIntro:
		if ev.Key() == tcell.KeyEnter {
			return false, a.generate(ctx, "")
		}
		return false, nil

	case modeAlgorithm:
		a.mode = modeMenu
		switch runeOf(ev) {
		case '1':
			return false, a.generate(ctx, engine.DFS)
		case '2':
			return false, a.generate(ctx, engine.Prim)
		}
		a.setStatus("choice unavailable", true)
		a.redraw()
		return false, nil
	}

	switch runeOf(ev) {
	case '1':
		a.mode = modeAlgorithm
		a.redraw()
	case '2':
		if a.svc.TogglePath(ctx) {
			a.setStatus("", false)
			return false, a.animatePath(ctx)
		}
		a.redraw()
	case '3':
		color := a.svc.RotateColor(ctx)
		a.setStatus(fmt.Sprintf("walls are now %s", color), false)
		a.redraw()
	case '4', 'q':
		return true, nil
	default:
		a.setStatus("== choice unavailable :( ==", true)
		a.redraw()
	}
	return false, nil
}

// generate builds a new maze and shows it, animated when the configuration
// asks for it.
func (a *App) generate(ctx context.Context, algo engine.Algorithm) error {
	info, err := a.svc.Regenerate(ctx, algo)
	if err != nil {
		if errors.Is(err, engine.ErrGeometryConflict) || errors.Is(err, context.Canceled) {
			return err
		}
		a.log.WithError(err).Error("regeneration failed")
		a.mode = modeMenu
		a.setStatus(err.Error(), true)
		a.redraw()
		return nil
	}

	a.mode = modeMenu
	a.setStatus(fmt.Sprintf("%s maze, seed %d, %d passages, path %d steps, saved to %s",
		info.Algorithm, info.Seed, info.Passages, info.PathLength, info.Output), false)

	sess, err := a.svc.Current(ctx)
	if err != nil {
		return err
	}
	if sess.Recorder != nil && sess.Recorder.Len() > 0 {
		sc, _ := a.scene(ctx)
		if err := a.screen.AnimateGeneration(ctx, sess.Recorder, sc, string(a.svc.Color())); err != nil {
			return nil
		}
		sess.Recorder.Clear()
	}

	a.redraw()
	return nil
}

func (a *App) animatePath(ctx context.Context) error {
	sc, ok := a.scene(ctx)
	if !ok {
		return nil
	}
	if err := a.screen.AnimatePath(ctx, sc, string(a.svc.Color())); err != nil {
		return nil
	}
	a.redraw()
	return nil
}

func (a *App) reload(ctx context.Context, r Reload) error {
	if r.Err != nil {
		a.setStatus(fmt.Sprintf("config not reloaded: %v", r.Err), true)
		a.redraw()
		return nil
	}
	if err := a.svc.Reconfigure(ctx, r.Config); err != nil {
		a.setStatus(fmt.Sprintf("config not reloaded: %v", err), true)
		a.redraw()
		return nil
	}
	return a.generate(ctx, "")
}

// scene describes the current maze, with the path when it is visible.
func (a *App) scene(ctx context.Context) (render.Scene, bool) {
	sess, err := a.svc.Current(ctx)
	if err != nil {
		return render.Scene{}, false
	}
	sc := render.Scene{
		Grid:    sess.Grid,
		Overlay: sess.Overlay,
		Entry:   sess.Entry,
		Exit:    sess.Exit,
	}
	if a.svc.PathVisible() {
		sc.Path = sess.Path
	}
	return sc, true
}

func (a *App) redraw() {
	if a.mode == modeIntro {
		a.drawIntro()
		return
	}

	row := 0
	if sc, ok := a.scene(context.Background()); ok {
		f := a.screen.Draw(sc, string(a.svc.Color()))
		row = f.Height + 1
	} else {
		a.screen.Tcell().Clear()
	}

	lines := menuLines
	if a.mode == modeAlgorithm {
		lines = algorithmLines
	}
	for i, line := range lines {
		style := menuStyle
		if i == 0 {
			style = titleStyle
		}
		a.screen.DrawText(0, row+i, line, style)
	}
	row += len(lines) + 1

	if a.status != "" {
		style := statusStyle
		if a.failed {
			style = errorStyle
		}
		a.screen.DrawText(0, row, a.status, style)
	}
	a.screen.Show()
}

func (a *App) drawIntro() {
	a.screen.Tcell().Clear()
	for i, line := range render.Banner {
		a.screen.DrawText(0, i+1, line, bannerStyle)
	}
	row := len(render.Banner) + 2
	a.screen.DrawText(0, row, "Welcome to our maze Game ;)", menuStyle)
	a.screen.DrawText(0, row+2, "Press ENTER to start the game...", statusStyle)
	a.screen.Show()
}

func (a *App) setStatus(msg string, failed bool) {
	a.status = msg
	a.failed = failed
}

func runeOf(ev *tcell.EventKey) rune {
	if ev.Key() != tcell.KeyRune {
		return 0
	}
	return ev.Rune()
}
