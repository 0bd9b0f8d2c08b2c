package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/wricardo/amazeing/maze/config"
)

// reloadDebounce groups the bursts of events editors produce on save.
const reloadDebounce = 150 * time.Millisecond

// Reload is posted to the event loop when the watched config changed.
type Reload struct {
	Config *config.Config
	Err    error
}

// Loader reads a configuration file.
type Loader func(path string) (*config.Config, error)

// Watch reloads path whenever it is written or replaced and posts the
// outcome as a tcell interrupt event carrying a Reload. It blocks until ctx
// is done.
func Watch(ctx context.Context, path string, load Loader, post func(tcell.Event) error, log *logrus.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it in place, which drops a watch on the file itself.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	log.WithField("path", target).Debug("watching config file")

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.After(reloadDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("config watcher error")

		case <-pending:
			pending = nil
			cfg, err := load(target)
			if err != nil {
				log.WithError(err).Warn("config reload failed")
			}
			if err := post(tcell.NewEventInterrupt(Reload{Config: cfg, Err: err})); err != nil {
				log.WithError(err).Debug("reload event dropped")
			}
		}
	}
}
