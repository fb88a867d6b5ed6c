package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleChange_ReloadsAndNotifies(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerInDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	got := make(chan *Config, 1)
	mgr.OnConfigChange(func(c *Config) { got <- c })

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layout]\n  gap = 3.0\n"), filePerm))
	mgr.handleChange(fsnotify.Event{Name: path, Op: fsnotify.Write})

	select {
	case cfg := <-got:
		assert.InDelta(t, 3, cfg.Layout.Gap, 1e-9)
	case <-time.After(time.Second):
		t.Fatal("callback not invoked")
	}
	assert.InDelta(t, 3, mgr.Get().Layout.Gap, 1e-9)
}

func TestHandleChange_KeepsPreviousConfigOnInvalidEdit(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerInDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layout]\n  gap = 50.0\n"), filePerm))
	mgr.handleChange(fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.False(t, called)
	assert.InDelta(t, 0.5, mgr.Get().Layout.Gap, 1e-9)
}
