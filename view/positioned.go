// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/paint"
	"cogentcore.org/uicore/styles"
)

// layoutPositioned places the visible absolutely positioned views for
// which v is the containing block: those reachable through statically
// positioned descendants. Each is then laid out, which places the
// absolute views it contains in turn.
func (v *View) layoutPositioned(s paint.TextMeasurer) {
	cb := v.geom.Content.Size()
	var walk func(n *View, off math32.Vector2)
	walk = func(n *View, off math32.Vector2) {
		for _, sv := range n.subviews {
			if sv.hidden {
				continue
			}
			if sv.style.IsAbsolute() {
				sv.placeAbsolute(s, cb, off)
				sv.Layout(s)
				continue
			}
			walk(sv, off.Add(sv.geom.Content.Min))
		}
	}
	walk(v, math32.Vector2{})
}

// placeAbsolute sets the geometry of an absolutely positioned view from
// its insets, resolved against the content size of the containing block.
// off is the position of the content box of the parent in the content
// coordinates of the containing block. A view with both horizontal
// (or vertical) insets and an auto size is stretched between them;
// otherwise it takes its preferred size. Without insets on an axis it
// is placed at the start of the containing block.
func (v *View) placeAbsolute(s paint.TextMeasurer, cb, off math32.Vector2) {
	st := &v.style
	nc := st.NonContent()
	left, hasLeft := st.Inset.Left.Dots(cb.X)
	right, hasRight := st.Inset.Right.Dots(cb.X)
	top, hasTop := st.Inset.Top.Dots(cb.Y)
	bottom, hasBottom := st.Inset.Bottom.Dots(cb.Y)

	w, ok := st.FixedWidth(cb.X)
	switch {
	case ok:
	case hasLeft && hasRight:
		w = math32.ClampNonNegative(cb.X - left - right - nc.Horizontal())
	default:
		w = math32.ClampNonNegative(v.This.PreferredWidth(s))
	}
	h, ok := st.FixedHeight(cb.Y)
	switch {
	case ok:
	case hasTop && hasBottom:
		h = math32.ClampNonNegative(cb.Y - top - bottom - nc.Vertical())
	default:
		h = math32.ClampNonNegative(v.This.PreferredHeight(s, w))
	}

	var pos math32.Vector2
	switch {
	case hasLeft:
		pos.X = left
	case hasRight:
		pos.X = cb.X - right - w - nc.Horizontal()
	}
	switch {
	case hasTop:
		pos.Y = top
	case hasBottom:
		pos.Y = cb.Y - bottom - h - nc.Vertical()
	}
	v.setLayoutGeometry(styles.GeometryFromMarginBox(st, pos.Sub(off), math32.Vec2(w, h)))
}
