// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/paint"
	"cogentcore.org/uicore/styles"
)

// blockLayout stacks the subviews vertically, each stretched to the
// width of the content box unless it has an explicit width.
// Margins do not collapse.
type blockLayout struct{}

// blockWidth returns the content width of a subview in a block of the
// given content width.
func blockWidth(c *View, width float32) float32 {
	if w, ok := c.fixedWidth(); ok {
		return w
	}
	return math32.ClampNonNegative(width - c.style.NonContent().Horizontal())
}

func (blockLayout) preferredWidth(v *View, s paint.TextMeasurer) float32 {
	var w float32
	for _, c := range v.flowSubviews() {
		w = math32.Max(w, c.measureWidth(s)+c.style.NonContent().Horizontal())
	}
	return w
}

func (blockLayout) preferredHeight(v *View, s paint.TextMeasurer, width float32) float32 {
	var h float32
	for _, c := range v.flowSubviews() {
		h += c.measureHeight(s, blockWidth(c, width)) + c.style.NonContent().Vertical()
	}
	return h
}

func (blockLayout) firstBaseline(v *View, s paint.TextMeasurer, width float32) float32 {
	flow := v.flowSubviews()
	if len(flow) == 0 {
		return v.measureHeight(s, width)
	}
	c := flow[0]
	return c.style.NonContent().Top + c.This.FirstBaseline(s, blockWidth(c, width))
}

func (blockLayout) lastBaseline(v *View, s paint.TextMeasurer, width float32) float32 {
	flow := v.flowSubviews()
	if len(flow) == 0 {
		return v.measureHeight(s, width)
	}
	var y float32
	for _, c := range flow[:len(flow)-1] {
		y += c.measureHeight(s, blockWidth(c, width)) + c.style.NonContent().Vertical()
	}
	c := flow[len(flow)-1]
	return y + c.style.NonContent().Top + c.This.LastBaseline(s, blockWidth(c, width))
}

func (blockLayout) layoutSubviews(v *View, s paint.TextMeasurer) {
	width := v.geom.Content.Width()
	var y float32
	for _, c := range v.flowSubviews() {
		cw := blockWidth(c, width)
		ch := c.measureHeight(s, cw)
		c.setLayoutGeometry(styles.GeometryFromMarginBox(&c.style, math32.Vec2(0, y), math32.Vec2(cw, ch)))
		y += ch + c.style.NonContent().Vertical()
	}
}
