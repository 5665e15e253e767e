// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/paint"
	"cogentcore.org/uicore/styles"
)

// inlineLayout flows the subviews from left to right, wrapping them
// into lines, and aligns the subviews of each line on their first
// baselines.
type inlineLayout struct{}

type inlineItem struct {
	c *View

	// size is the content size
	size math32.Vector2

	// x is the left of the margin box
	x float32

	// ascent is the distance from the top of the margin box to the baseline
	ascent float32
}

type inlineLine struct {
	items           []inlineItem
	y               float32
	ascent, descent float32
}

func (ln *inlineLine) height() float32 {
	return ln.ascent + ln.descent
}

// inlineLines breaks the subviews into lines of the given content width.
// A subview wider than the line is narrowed to it when it has no
// explicit width, and always starts a line of its own.
func inlineLines(v *View, s paint.TextMeasurer, width float32) []inlineLine {
	var lines []inlineLine
	var cur inlineLine
	var x float32
	for _, c := range v.flowSubviews() {
		nc := c.style.NonContent()
		cw := c.measureWidth(s)
		if _, ok := c.fixedWidth(); !ok {
			cw = math32.Min(cw, math32.ClampNonNegative(width-nc.Horizontal()))
		}
		ch := c.measureHeight(s, cw)
		ow := cw + nc.Horizontal()
		if len(cur.items) > 0 && x+ow > width {
			lines = append(lines, cur)
			cur = inlineLine{}
			x = 0
		}
		asc := nc.Top + c.This.FirstBaseline(s, cw)
		cur.items = append(cur.items, inlineItem{c: c, size: math32.Vec2(cw, ch), x: x, ascent: asc})
		cur.ascent = math32.Max(cur.ascent, asc)
		cur.descent = math32.Max(cur.descent, ch+nc.Vertical()-asc)
		x += ow
	}
	if len(cur.items) > 0 {
		lines = append(lines, cur)
	}
	var y float32
	for i := range lines {
		lines[i].y = y
		y += lines[i].height()
	}
	return lines
}

func (inlineLayout) preferredWidth(v *View, s paint.TextMeasurer) float32 {
	var w float32
	for _, c := range v.flowSubviews() {
		w += c.measureWidth(s) + c.style.NonContent().Horizontal()
	}
	return w
}

func (inlineLayout) preferredHeight(v *View, s paint.TextMeasurer, width float32) float32 {
	var h float32
	for _, ln := range inlineLines(v, s, width) {
		h += ln.height()
	}
	return h
}

func (inlineLayout) firstBaseline(v *View, s paint.TextMeasurer, width float32) float32 {
	lines := inlineLines(v, s, width)
	if len(lines) == 0 {
		return v.measureHeight(s, width)
	}
	return lines[0].ascent
}

func (inlineLayout) lastBaseline(v *View, s paint.TextMeasurer, width float32) float32 {
	lines := inlineLines(v, s, width)
	if len(lines) == 0 {
		return v.measureHeight(s, width)
	}
	last := lines[len(lines)-1]
	return last.y + last.ascent
}

func (inlineLayout) layoutSubviews(v *View, s paint.TextMeasurer) {
	for _, ln := range inlineLines(v, s, v.geom.Content.Width()) {
		for _, it := range ln.items {
			pos := math32.Vec2(it.x, ln.y+ln.ascent-it.ascent)
			it.c.setLayoutGeometry(styles.GeometryFromMarginBox(&it.c.style, pos, it.size))
		}
	}
}
