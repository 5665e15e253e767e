// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/paint"
	"cogentcore.org/uicore/styles"
	"cogentcore.org/uicore/styles/sides"
)

// boxLayout places the subviews one after the other along the main
// axis dim, distributing extra space by their grow factors and missing
// space by their shrink factors weighted by their basis. Subviews are
// stretched along the cross axis unless they have an explicit size.
// dim is [math32.Y] for vbox and [math32.X] for hbox.
type boxLayout struct {
	dim math32.Dims
}

type boxItem struct {
	c    *View
	nc   sides.Floats
	size math32.Vector2
}

// basis returns the main content size of the subview before flexing.
func (b boxLayout) basis(c *View, s paint.TextMeasurer, availMain, crossWidth float32) float32 {
	if bs, ok := c.style.Flex.Basis.Dots(availMain); ok {
		return math32.ClampNonNegative(bs)
	}
	if b.dim == math32.X {
		return c.measureWidth(s)
	}
	return c.measureHeight(s, crossWidth)
}

// items returns the content sizes of the subviews in flow for the
// available content size. The main size is flexed only when mainKnown,
// and subviews are stretched along the cross axis only when crossKnown.
func (b boxLayout) items(v *View, s paint.TextMeasurer, avail math32.Vector2, mainKnown, crossKnown bool) []boxItem {
	main, cross := b.dim, b.dim.Other()
	flow := v.flowSubviews()
	items := make([]boxItem, len(flow))
	var used float32
	for i, c := range flow {
		it := &items[i]
		it.c = c
		it.nc = c.style.NonContent()
		if cross == math32.X {
			it.size.X = vboxWidth(c, s, it.nc, avail.X, crossKnown)
		}
		it.size.SetDim(main, b.basis(c, s, avail.Dim(main), it.size.X))
		used += it.size.Dim(main) + it.nc.Size().Dim(main)
	}
	if mainKnown {
		b.flex(items, avail.Dim(main)-used)
	}
	if cross == math32.Y {
		for i := range items {
			it := &items[i]
			switch h, ok := it.c.fixedHeight(); {
			case ok:
				it.size.Y = h
			case crossKnown:
				it.size.Y = math32.ClampNonNegative(avail.Y - it.nc.Vertical())
			default:
				it.size.Y = it.c.measureHeight(s, it.size.X)
			}
		}
	}
	return items
}

// vboxWidth returns the cross size of a vbox subview.
func vboxWidth(c *View, s paint.TextMeasurer, nc sides.Floats, avail float32, stretch bool) float32 {
	if w, ok := c.fixedWidth(); ok {
		return w
	}
	if stretch {
		return math32.ClampNonNegative(avail - nc.Horizontal())
	}
	return c.measureWidth(s)
}

// flex distributes the free main space, which is negative when the
// subviews overflow.
func (b boxLayout) flex(items []boxItem, free float32) {
	main := b.dim
	switch {
	case free > 0:
		var grow float32
		for _, it := range items {
			grow += it.c.style.Flex.Grow
		}
		if grow <= 0 {
			return
		}
		for i := range items {
			it := &items[i]
			it.size.SetDim(main, it.size.Dim(main)+free*it.c.style.Flex.Grow/grow)
		}
	case free < 0:
		var total float32
		for _, it := range items {
			total += it.c.style.Flex.Shrink * it.size.Dim(main)
		}
		if total <= 0 {
			return
		}
		for i := range items {
			it := &items[i]
			sz := it.size.Dim(main)
			w := it.c.style.Flex.Shrink * sz
			it.size.SetDim(main, math32.ClampNonNegative(sz+free*w/total))
		}
	}
}

func (b boxLayout) preferredWidth(v *View, s paint.TextMeasurer) float32 {
	var w float32
	for _, it := range b.items(v, s, math32.Vector2{}, false, false) {
		ow := it.size.X + it.nc.Horizontal()
		if b.dim == math32.X {
			w += ow
		} else {
			w = math32.Max(w, ow)
		}
	}
	return w
}

func (b boxLayout) preferredHeight(v *View, s paint.TextMeasurer, width float32) float32 {
	var h float32
	for _, it := range b.widthItems(v, s, width) {
		oh := it.size.Y + it.nc.Vertical()
		if b.dim == math32.Y {
			h += oh
		} else {
			h = math32.Max(h, oh)
		}
	}
	return h
}

// widthItems returns the items for a known content width and an
// unknown content height.
func (b boxLayout) widthItems(v *View, s paint.TextMeasurer, width float32) []boxItem {
	avail := math32.Vec2(width, 0)
	if b.dim == math32.X {
		return b.items(v, s, avail, true, false)
	}
	return b.items(v, s, avail, false, true)
}

// offsets returns the main axis offsets of the margin boxes of the items.
func (b boxLayout) offsets(items []boxItem) []float32 {
	offs := make([]float32, len(items))
	var pos float32
	for i, it := range items {
		offs[i] = pos
		pos += it.size.Dim(b.dim) + it.nc.Size().Dim(b.dim)
	}
	return offs
}

func (b boxLayout) firstBaseline(v *View, s paint.TextMeasurer, width float32) float32 {
	items := b.widthItems(v, s, width)
	if len(items) == 0 {
		return v.measureHeight(s, width)
	}
	it := items[0]
	return it.nc.Top + it.c.This.FirstBaseline(s, it.size.X)
}

func (b boxLayout) lastBaseline(v *View, s paint.TextMeasurer, width float32) float32 {
	items := b.widthItems(v, s, width)
	if len(items) == 0 {
		return v.measureHeight(s, width)
	}
	if b.dim == math32.X {
		it := items[0]
		return it.nc.Top + it.c.This.LastBaseline(s, it.size.X)
	}
	last := len(items) - 1
	it := items[last]
	return b.offsets(items)[last] + it.nc.Top + it.c.This.LastBaseline(s, it.size.X)
}

func (b boxLayout) layoutSubviews(v *View, s paint.TextMeasurer) {
	items := b.items(v, s, v.geom.Content.Size(), true, true)
	offs := b.offsets(items)
	for i, it := range items {
		var pos math32.Vector2
		pos.SetDim(b.dim, offs[i])
		it.c.setLayoutGeometry(styles.GeometryFromMarginBox(&it.c.style, pos, it.size))
	}
}
