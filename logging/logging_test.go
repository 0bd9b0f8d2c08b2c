package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DiscardByDefault(t *testing.T) {
	log, closeLog, err := New(Options{})
	require.NoError(t, err)
	defer closeLog()

	assert.Equal(t, io.Discard, log.Out)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNew_Output(t *testing.T) {
	var buf bytes.Buffer
	log, closeLog, err := New(Options{Output: &buf, Debug: true})
	require.NoError(t, err)
	defer closeLog()

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	log.WithFields(logrus.Fields{"seed": 42}).Debug("maze generated")
	assert.Contains(t, buf.String(), "maze generated")
	assert.Contains(t, buf.String(), "seed=42")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "amazeing.log")
	log, closeLog, err := New(Options{File: path})
	require.NoError(t, err)

	log.Info("hello")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
