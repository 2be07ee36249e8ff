package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempLogDir points the package at a fresh directory and restores the
// globals afterwards.
func useTempLogDir(t *testing.T) string {
	t.Helper()

	origLogDir, origInitErr := logDir, initErr
	origSessionID := sessionID

	dir := t.TempDir()
	logDir = dir
	initErr = nil
	initOnce = sync.Once{}
	initOnce.Do(func() {})
	sessionID = ""
	sessionIDOnce = sync.Once{}

	t.Cleanup(func() {
		logDir, initErr = origLogDir, origInitErr
		initOnce = sync.Once{}
		sessionID = origSessionID
		sessionIDOnce = sync.Once{}
		if origSessionID != "" {
			sessionIDOnce.Do(func() {})
		}
	})
	return dir
}

func TestNewLogger(t *testing.T) {
	dir := useTempLogDir(t)

	logger, err := NewLogger("startsurface")
	require.NoError(t, err)
	defer logger.Close()

	assert.Equal(t, "startsurface", logger.component)
	assert.NotEmpty(t, logger.SessionID())
	assert.Equal(t, dir, filepath.Dir(logger.LogPath()))
	assert.FileExists(t, logger.LogPath())
}

func TestLogger_Levels(t *testing.T) {
	useTempLogDir(t)

	logger, err := NewLogger("menubutton")
	require.NoError(t, err)
	defer logger.Close()

	logger.Printf("bound %d keys", 6)
	logger.Debugf("replay")
	logger.Infof("shown")
	logger.Warnf("no theme supplier")
	logger.Errorf("destroyed twice")

	content, err := os.ReadFile(logger.LogPath())
	require.NoError(t, err)

	for _, want := range []string{
		"[menubutton] [INFO] bound 6 keys",
		"[menubutton] [DEBUG] replay",
		"[menubutton] [INFO] shown",
		"[menubutton] [WARN] no theme supplier",
		"[menubutton] [ERROR] destroyed twice",
	} {
		assert.Contains(t, string(content), want)
	}
}

func TestLogger_ComponentsShareSessionFile(t *testing.T) {
	useTempLogDir(t)

	a, err := NewLogger("tile")
	require.NoError(t, err)
	defer a.Close()
	b, err := NewLogger("loadprogress")
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, a.SessionID(), b.SessionID())
	assert.Equal(t, a.LogPath(), b.LogPath())

	a.Infof("from tile")
	b.Infof("from progress")

	content, err := os.ReadFile(a.LogPath())
	require.NoError(t, err)
	assert.Contains(t, string(content), "[tile]")
	assert.Contains(t, string(content), "[loadprogress]")
}

func TestLogPathFormat(t *testing.T) {
	useTempLogDir(t)

	logger, err := NewLogger("test")
	require.NoError(t, err)
	defer logger.Close()

	name := filepath.Base(logger.LogPath())
	require.True(t, strings.HasSuffix(name, "-modelview.log"), name)
	assert.Equal(t, GetSessionID(), strings.TrimSuffix(name, "-modelview.log"))
}

func TestLogger_CloseTwice(t *testing.T) {
	useTempLogDir(t)

	logger, err := NewLogger("test")
	require.NoError(t, err)

	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
}

func TestGetLogDirectory(t *testing.T) {
	want := useTempLogDir(t)

	dir, err := GetLogDirectory()
	require.NoError(t, err)
	assert.Equal(t, want, dir)
	assert.DirExists(t, dir)
}

func TestNewWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("headless", &buf)

	logger.Infof("step %d", 1)
	logger.With("surface").Warnf("missing key")

	out := buf.String()
	assert.Contains(t, out, "[headless] [INFO] step 1")
	assert.Contains(t, out, "[headless/surface] [WARN] missing key")
	assert.Empty(t, logger.LogPath())
}

func TestLogger_NilReceiver(t *testing.T) {
	var logger *Logger

	assert.NotPanics(t, func() {
		logger.Infof("dropped")
		logger.Errorf("dropped")
		assert.Nil(t, logger.With("child"))
		assert.NoError(t, logger.Close())
		_, _ = logger.Writer().Write([]byte("x"))
	})
}
