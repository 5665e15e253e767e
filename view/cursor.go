// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/uicore/cursors"
)

// CursorSetter receives the cursor to show for the pointer.
type CursorSetter interface {
	SetCursor(spec cursors.Spec)
}

// Cursor returns the cursor setting of the view.
func (v *View) Cursor() cursors.Spec { return v.cursor }

// SetCursor sets a standard cursor for the view.
func (v *View) SetCursor(c cursors.Cursor) *View {
	v.cursor = cursors.StandardSpec(c)
	return v
}

// SetCustomCursor sets a custom cursor image for the view.
func (v *View) SetCustomCursor(c *cursors.Custom) *View {
	v.cursor = cursors.CustomSpec(c)
	return v
}

// SetInheritCursor makes the view use the cursor of its parent.
func (v *View) SetInheritCursor() *View {
	v.cursor = cursors.Spec{}
	return v
}

// ResolveCursor returns the cursor of the nearest view, starting at
// this one and going up, that does not inherit it, or the standard
// fallback cursor if they all do.
func (v *View) ResolveCursor(fallback cursors.Cursor) cursors.Spec {
	for cur := v; cur != nil; cur = cur.parent {
		if !cur.cursor.IsInherit() {
			return cur.cursor
		}
	}
	return cursors.StandardSpec(fallback)
}

// UpdateCursor sets the cursor of the view on the target, falling
// back to the arrow.
func (v *View) UpdateCursor(target CursorSetter) {
	target.SetCursor(v.ResolveCursor(cursors.Arrow))
}
