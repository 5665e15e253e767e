// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/uicore/base/logx"
	"cogentcore.org/uicore/cursors"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.True(t, s.KeyboardNavigation)
	assert.Equal(t, cursors.Arrow, s.Cursor())
	assert.Equal(t, slog.LevelWarn, s.Level())

	s.DefaultCursor = "crosshair"
	assert.Equal(t, cursors.Crosshair, s.Cursor())
	s.DefaultCursor = "no-such-cursor"
	assert.Equal(t, cursors.Arrow, s.Cursor())
}

func TestRoundTrip(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml", ".yml", ".json"} {
		fn := filepath.Join(t.TempDir(), "settings"+ext)
		s := Default()
		s.LogLevel = "debug"
		s.KeyboardNavigation = false
		s.FrameInterval = 40 * time.Millisecond
		s.DefaultCursor = "pointer"
		s.FontScale = 1.5
		require.NoError(t, Save(fn, s), ext)

		got, err := Load(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, s, got, ext)
	}
}

func TestLoadPartial(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(fn, []byte("font-scale = 2.0\nframe-interval = -5\n"), 0o644))
	s, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, float32(2), s.FontScale)
	assert.True(t, s.KeyboardNavigation)
	assert.Equal(t, Default().FrameInterval, s.FrameInterval)
}

func TestLoadErrors(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, Default(), s)

	_, err = Load("settings.ini")
	assert.Error(t, err)
	assert.Error(t, Save("settings.ini", Default()))

	fn := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(fn, []byte("{bad"), 0o644))
	s, err = Load(fn)
	assert.Error(t, err)
	assert.Equal(t, Default(), s)
}

func TestApply(t *testing.T) {
	old := logx.UserLevel
	defer func() { logx.UserLevel = old }()
	s := Default()
	s.LogLevel = "error"
	s.Apply()
	assert.Equal(t, slog.LevelError, logx.UserLevel)
}

func TestDefaultPath(t *testing.T) {
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(p, filepath.Join(".config", "uicore", "settings.toml")))
	assert.False(t, strings.HasPrefix(p, "~"))
}

// waitFontScale receives settings from the watcher until the font
// scale is the given one.
func waitFontScale(t *testing.T, w *Watcher, scale float32) *Settings {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-w.Changes():
			if s.FontScale == scale {
				return s
			}
		case <-timeout:
			t.Fatalf("no settings with font scale %v from %s", scale, w.File())
			return nil
		}
	}
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	w, err := Watch(fn)
	require.NoError(t, err)
	defer w.Close()
	assert.True(t, filepath.IsAbs(w.File()))

	s := Default()
	s.FontScale = 2
	s.KeyboardNavigation = false
	require.NoError(t, Save(fn, s))
	got := waitFontScale(t, w, 2)
	assert.False(t, got.KeyboardNavigation)

	s.FontScale = 3
	require.NoError(t, Save(fn, s))
	waitFontScale(t, w, 3)

	_, err = Watch(filepath.Join(t.TempDir(), "missing", "settings.toml"))
	assert.Error(t, err)
}
