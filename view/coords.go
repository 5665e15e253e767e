// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/uicore/math32"
)

// Screen coordinates are the content coordinates of the root view.
// A [Window] converts between them and window coordinates using the
// geometry of the root.

// ToScreenPos converts a position in the content coordinates of the
// view to screen coordinates.
func (v *View) ToScreenPos(pos math32.Vector2) math32.Vector2 {
	for cur := v; cur.parent != nil; cur = cur.parent {
		pos = pos.Add(cur.geom.Content.Min)
	}
	return pos
}

// FromScreenPos converts a position in screen coordinates to the
// content coordinates of the view. It is the inverse of [View.ToScreenPos].
func (v *View) FromScreenPos(pos math32.Vector2) math32.Vector2 {
	for cur := v; cur.parent != nil; cur = cur.parent {
		pos = pos.Sub(cur.geom.Content.Min)
	}
	return pos
}

// ScreenBox returns the border box of the view in screen coordinates.
func (v *View) ScreenBox() math32.Box2 {
	bb := v.geom.BorderBox()
	if v.parent == nil {
		return bb.Translate(v.geom.Content.Min.MulScalar(-1))
	}
	return bb.Translate(v.parent.ToScreenPos(math32.Vector2{}))
}

// FindViewAt returns the deepest visible subview whose border box
// contains the position, given in the content coordinates of the view.
// Earlier subviews win over later ones. It returns nil if no subview
// contains the position; the view itself is not tested.
func (v *View) FindViewAt(pos math32.Vector2) *View {
	for _, sv := range v.subviews {
		if sv.hidden || !sv.geom.BorderBox().ContainsPoint(pos) {
			continue
		}
		if hit := sv.FindViewAt(pos.Sub(sv.geom.Content.Min)); hit != nil {
			return hit
		}
		return sv
	}
	return nil
}
