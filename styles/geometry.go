// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/styles/sides"
)

// Geometry is the computed output of layout for one box: the content
// rectangle, in the coordinate space of the parent's content box, plus the
// side metrics used to derive the padding, border and margin boxes.
// It is always recomputed as a whole.
type Geometry struct {

	// Content is the content box.
	Content math32.Box2

	// Margin, Border and Padding are the resolved side widths.
	Margin, Border, Padding sides.Floats
}

// NewGeometry returns the geometry of a box with the given style and content box.
func NewGeometry(st *Box, content math32.Box2) Geometry {
	return Geometry{
		Content: content,
		Margin:  st.Margin,
		Border:  st.Border.Width,
		Padding: st.Padding,
	}
}

// GeometryFromMarginBox returns the geometry of a box with the given style
// whose margin box has the given position and content size.
func GeometryFromMarginBox(st *Box, pos math32.Vector2, contentSize math32.Vector2) Geometry {
	off := st.NonContent().Pos()
	min := pos.Add(off)
	return NewGeometry(st, math32.Box2{Min: min, Max: min.Add(contentSize)})
}

// ContentBox returns the content box.
func (g Geometry) ContentBox() math32.Box2 {
	return g.Content
}

// PaddingBox returns the content box grown by the padding.
func (g Geometry) PaddingBox() math32.Box2 {
	return g.Padding.Outset(g.Content)
}

// BorderBox returns the padding box grown by the border.
func (g Geometry) BorderBox() math32.Box2 {
	return g.Border.Outset(g.PaddingBox())
}

// MarginBox returns the border box grown by the margin.
func (g Geometry) MarginBox() math32.Box2 {
	return g.Margin.Outset(g.BorderBox())
}

// Equal returns whether the two geometries are identical.
func (g Geometry) Equal(o Geometry) bool {
	return g == o
}
