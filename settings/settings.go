// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the user settings of view windows, stored
// as TOML, YAML or JSON files.
package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/uicore/base/errors"
	"cogentcore.org/uicore/base/iox"
	"cogentcore.org/uicore/base/logx"
	"cogentcore.org/uicore/cursors"
)

// Settings are the user settings of view windows.
type Settings struct {

	// LogLevel is the minimum level of log messages shown,
	// such as "debug", "info", "warn" or "error".
	LogLevel string `toml:"log-level" yaml:"log-level" json:"log-level"`

	// KeyboardNavigation is whether Tab and Shift+Tab move the focus.
	KeyboardNavigation bool `toml:"keyboard-navigation" yaml:"keyboard-navigation" json:"keyboard-navigation"`

	// FrameInterval is the time between updates of the window,
	// in which animations advance and the tree is laid out and rendered.
	FrameInterval time.Duration `toml:"frame-interval" yaml:"frame-interval" json:"frame-interval"`

	// DefaultCursor is the name of the cursor shown when no view sets one.
	DefaultCursor string `toml:"default-cursor" yaml:"default-cursor" json:"default-cursor"`

	// FontScale multiplies the size of all text.
	FontScale float32 `toml:"font-scale" yaml:"font-scale" json:"font-scale"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		LogLevel:           "warn",
		KeyboardNavigation: true,
		FrameInterval:      time.Second / 60,
		DefaultCursor:      cursors.Arrow.String(),
		FontScale:          1,
	}
}

// Cursor returns the default cursor, or the arrow if the name is not valid.
func (s *Settings) Cursor() cursors.Cursor {
	var c cursors.Cursor
	if errors.Log(c.SetString(s.DefaultCursor)) != nil {
		return cursors.Arrow
	}
	return c
}

// Level returns the log level.
func (s *Settings) Level() slog.Level {
	return logx.LevelFromString(s.LogLevel)
}

// Apply sets the global state that the settings control: the log level.
func (s *Settings) Apply() {
	logx.UserLevel = s.Level()
}

// Validate replaces unusable values with their defaults.
func (s *Settings) Validate() {
	def := Default()
	if s.FrameInterval <= 0 {
		s.FrameInterval = def.FrameInterval
	}
	if s.FontScale <= 0 {
		s.FontScale = def.FontScale
	}
	if s.DefaultCursor == "" {
		s.DefaultCursor = def.DefaultCursor
	}
}

// codecs returns the decoder and encoder for the extension of the filename.
func codecs(filename string) (iox.DecoderFunc, iox.EncoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return iox.NewDecoderFunc(toml.NewDecoder), iox.NewEncoderFunc(toml.NewEncoder), nil
	case ".yaml", ".yml":
		return iox.NewDecoderFunc(yaml.NewDecoder), iox.NewEncoderFunc(yaml.NewEncoder), nil
	case ".json":
		return iox.NewDecoderFunc(json.NewDecoder), iox.NewEncoderFunc(func(w io.Writer) *json.Encoder {
			e := json.NewEncoder(w)
			e.SetIndent("", "\t")
			return e
		}), nil
	}
	return nil, nil, fmt.Errorf("settings: unsupported file type %q", filepath.Ext(filename))
}

// Load returns the settings in the file, whose format is determined by
// its extension. Fields missing from the file keep their defaults, and
// a missing file yields the defaults without error.
func Load(filename string) (*Settings, error) {
	s := Default()
	dec, _, err := codecs(filename)
	if err != nil {
		return s, err
	}
	err = iox.Open(s, filename, dec)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, io.EOF) {
		return s, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("settings: loading %q: %w", filename, err)
	}
	s.Validate()
	return s, nil
}

// Save writes the settings to the file, whose format is determined by
// its extension.
func Save(filename string, s *Settings) error {
	_, enc, err := codecs(filename)
	if err != nil {
		return err
	}
	if err := iox.Save(s, filename, enc); err != nil {
		return fmt.Errorf("settings: saving %q: %w", filename, err)
	}
	return nil
}

// DefaultPath returns the default location of the settings file,
// ~/.config/uicore/settings.toml.
func DefaultPath() (string, error) {
	return homedir.Expand(filepath.Join("~", ".config", "uicore", "settings.toml"))
}
