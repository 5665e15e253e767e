// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors defines the standard cursors, custom cursor
// descriptions, and the cursor setting of a view.
package cursors

import (
	"fmt"
	"image"
	"strings"
)

// Cursor is a standard cursor.
type Cursor int32

const (
	// Arrow is the default cursor.
	Arrow Cursor = iota

	// None hides the cursor.
	None

	// Text is the I-beam used over editable text.
	Text

	// Pointer is the pointing hand used over links and buttons.
	Pointer

	// Wait indicates that the application is busy.
	Wait

	// Progress indicates that the application is busy but still
	// responds to input.
	Progress

	// Crosshair is used for precise selection.
	Crosshair

	// Move indicates that something can be moved.
	Move

	// ResizeNS indicates vertical resizing.
	ResizeNS

	// ResizeEW indicates horizontal resizing.
	ResizeEW

	// NotAllowed indicates that an action is not allowed.
	NotAllowed

	// Help indicates that help is available.
	Help

	cursorN
)

var cursorNames = [...]string{
	"arrow", "none", "text", "pointer", "wait", "progress", "crosshair",
	"move", "resize-ns", "resize-ew", "not-allowed", "help",
}

func (c Cursor) String() string {
	if c < 0 || c >= cursorN {
		return fmt.Sprintf("Cursor(%d)", int(c))
	}
	return cursorNames[c]
}

// SetString sets the cursor from its name. The CSS name "default"
// is accepted for [Arrow].
func (c *Cursor) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "default" {
		*c = Arrow
		return nil
	}
	for i, n := range cursorNames {
		if n == s {
			*c = Cursor(i)
			return nil
		}
	}
	return fmt.Errorf("cursors.Cursor: unknown cursor %q", s)
}

// Hotspots are the hotspots of the standard cursors in a 256 unit
// square, for platforms that render cursors from images.
// Cursors not in the map use the center.
var Hotspots = map[Cursor]image.Point{
	Arrow:   image.Pt(56, 16),
	Text:    image.Pt(128, 128),
	Pointer: image.Pt(96, 16),
}

// Custom describes a custom cursor image.
type Custom struct {

	// Image is the cursor image.
	Image image.Image

	// Hotspot is the active point of the cursor in image pixels,
	// relative to the image bounds minimum.
	Hotspot image.Point
}

// Modes determine where the cursor of a view comes from.
type Modes int32

const (
	// Inherit uses the cursor of the parent view.
	Inherit Modes = iota

	// Standard uses a standard cursor.
	Standard

	// CustomImage uses a custom cursor image.
	CustomImage
)

// Spec is the cursor setting of a view. The zero value inherits.
type Spec struct {
	Mode Modes

	// Cursor is the standard cursor of the Standard mode.
	Cursor Cursor

	// Custom is the cursor of the CustomImage mode.
	Custom *Custom
}

// StandardSpec returns a spec for the given standard cursor.
func StandardSpec(c Cursor) Spec {
	return Spec{Mode: Standard, Cursor: c}
}

// CustomSpec returns a spec for the given custom cursor.
func CustomSpec(c *Custom) Spec {
	return Spec{Mode: CustomImage, Custom: c}
}

// IsInherit returns whether the spec inherits from the parent.
func (s Spec) IsInherit() bool {
	return s.Mode == Inherit
}

func (s Spec) String() string {
	switch s.Mode {
	case Standard:
		return s.Cursor.String()
	case CustomImage:
		if s.Custom != nil && s.Custom.Image != nil {
			return fmt.Sprintf("custom %v", s.Custom.Image.Bounds().Size())
		}
		return "custom"
	}
	return "inherit"
}
