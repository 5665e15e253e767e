// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/styles"
	"cogentcore.org/uicore/styles/sides"
)

// DrawBox draws the CSS "standard box" model using the given style
// and geometry: the background color fills the border box, the
// background image is scaled to the padding box, and the border is
// drawn on top. The geometry is in the current coordinates of the surface.
func DrawBox(s Surface, st *styles.Box, g styles.Geometry) {
	bb := g.BorderBox()
	if st.Background.Color != nil {
		s.FillRect(bb, st.Background.Color)
	}
	if st.Background.Image != nil {
		pb := g.PaddingBox()
		if !pb.IsEmpty() {
			s.DrawImage(st.Background.Image, pb)
		}
	}
	DrawBorder(s, bb, st.Border)
}

// DrawBorder draws the border inside of the given border box.
func DrawBorder(s Surface, bb math32.Box2, bs styles.Border) {
	if bs.Style == styles.BorderNone || sides.AreZero(bs.Width.Sides) {
		return
	}
	w := bs.Width
	if bs.Style == styles.BorderSolid && sides.AreSame(w.Sides) && sides.AreSame(bs.Color) {
		if bs.Color.Top == nil {
			return
		}
		hw := w.Top / 2
		s.StrokeRect(math32.B2(bb.Min.X+hw, bb.Min.Y+hw, bb.Max.X-hw, bb.Max.Y-hw), w.Top, bs.Color.Top)
		return
	}

	// sides drawn one by one: top and bottom span the full width,
	// left and right fill in between
	edges := [4]math32.Box2{
		sides.Top:    math32.B2(bb.Min.X, bb.Min.Y, bb.Max.X, bb.Min.Y+w.Top),
		sides.Right:  math32.B2(bb.Max.X-w.Right, bb.Min.Y+w.Top, bb.Max.X, bb.Max.Y-w.Bottom),
		sides.Bottom: math32.B2(bb.Min.X, bb.Max.Y-w.Bottom, bb.Max.X, bb.Max.Y),
		sides.Left:   math32.B2(bb.Min.X, bb.Min.Y+w.Top, bb.Min.X+w.Left, bb.Max.Y-w.Bottom),
	}
	colors := [4]color.Color{bs.Color.Top, bs.Color.Right, bs.Color.Bottom, bs.Color.Left}
	for i, e := range edges {
		c := colors[i]
		if c == nil || e.IsEmpty() {
			continue
		}
		if bs.Style == styles.BorderDashed {
			drawDashes(s, e, c)
			continue
		}
		s.FillRect(e, c)
	}
}

// drawDashes fills the edge rectangle with dashes along its long axis,
// each dash three times the edge thickness.
func drawDashes(s Surface, e math32.Box2, c color.Color) {
	dim := math32.X
	if e.Height() > e.Width() {
		dim = math32.Y
	}
	thick := e.Size().Dim(dim.Other())
	dash := math32.Max(thick*3, 1)
	for p := e.Min.Dim(dim); p < e.Max.Dim(dim); p += 2 * dash {
		d := e
		d.Min.SetDim(dim, p)
		d.Max.SetDim(dim, math32.Min(p+dash, e.Max.Dim(dim)))
		s.FillRect(d, c)
	}
}
