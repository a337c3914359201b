package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, GameFile)
	require.NoError(t, os.WriteFile(path, []byte("player:\n  speed: 5\n"), 0o600))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	// Non-config files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("player:\n  speed: 6\n"), 0o600))

	select {
	case name := <-w.Events:
		assert.Equal(t, GameFile, filepath.Base(name))
	case <-time.After(2 * time.Second):
		t.Fatal("no change event received")
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), GameFile))
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestIsConfigFile(t *testing.T) {
	assert.True(t, isConfigFile("a/game.yaml"))
	assert.True(t, isConfigFile("a/GAME.YML"))
	assert.False(t, isConfigFile("a/game.json"))
}
