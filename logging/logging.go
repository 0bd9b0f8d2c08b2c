// Package logging builds the logrus logger shared by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options selects where log lines go.
type Options struct {
	Debug bool
	// File receives the log when set. Parent directories are created.
	File string
	// Output is used when File is empty. Nil means io.Discard, which is what
	// full screen commands want.
	Output io.Writer
}

// New returns a logger and a function closing its file, if any.
func New(opts Options) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	log.SetLevel(logrus.InfoLevel)
	if opts.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	closer := func() error { return nil }

	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		closer = f.Close
	case opts.Output != nil:
		log.SetOutput(opts.Output)
	default:
		log.SetOutput(io.Discard)
	}

	return log, closer, nil
}
