package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fartgen-backend/infrastructure/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=8000\n"), 0o644))

	changed := make(chan struct{}, 1)
	w, err := config.NewWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("PORT=9000\n"), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the change")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=8000\n"), 0o644))

	changed := make(chan struct{}, 1)
	w, err := config.NewWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("unrelated"), 0o644))

	select {
	case <-changed:
		t.Fatal("watcher fired for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}
