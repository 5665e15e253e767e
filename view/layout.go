// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"log/slog"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/paint"
	"cogentcore.org/uicore/styles"
)

// layoutStrategy measures a view and places its subviews for one
// [styles.Layouts] mode. All sizes are content sizes; the subviews
// given to a strategy are those taking part in normal flow.
type layoutStrategy interface {
	preferredWidth(v *View, s paint.TextMeasurer) float32
	preferredHeight(v *View, s paint.TextMeasurer, width float32) float32
	firstBaseline(v *View, s paint.TextMeasurer, width float32) float32
	lastBaseline(v *View, s paint.TextMeasurer, width float32) float32
	layoutSubviews(v *View, s paint.TextMeasurer)
}

func strategy(l styles.Layouts) layoutStrategy {
	switch l {
	case styles.LayoutBlock:
		return blockLayout{}
	case styles.LayoutInline:
		return inlineLayout{}
	case styles.LayoutVBox:
		return boxLayout{dim: math32.Y}
	case styles.LayoutHBox:
		return boxLayout{dim: math32.X}
	}
	return noLayout{}
}

// PreferredWidth returns the explicit width of the view, or else the
// width computed by its layout from the subviews.
func (v *View) PreferredWidth(s paint.TextMeasurer) float32 {
	if w, ok := v.fixedWidth(); ok {
		return w
	}
	return strategy(v.style.Layout).preferredWidth(v, s)
}

// PreferredHeight returns the explicit height of the view, or else the
// height computed by its layout at the given width.
func (v *View) PreferredHeight(s paint.TextMeasurer, width float32) float32 {
	if h, ok := v.fixedHeight(); ok {
		return h
	}
	return strategy(v.style.Layout).preferredHeight(v, s, width)
}

// FirstBaseline returns the first baseline computed by the layout.
// A view without subviews in flow has its baseline at the bottom of
// its content box.
func (v *View) FirstBaseline(s paint.TextMeasurer, width float32) float32 {
	return strategy(v.style.Layout).firstBaseline(v, s, width)
}

// LastBaseline returns the last baseline computed by the layout.
func (v *View) LastBaseline(s paint.TextMeasurer, width float32) float32 {
	return strategy(v.style.Layout).lastBaseline(v, s, width)
}

// Layout computes the geometry of the subviews if the view needs
// layout, and then places the absolutely positioned views it contains
// if it is a root or is itself absolutely positioned. It is normally
// called on the root after its geometry has been set.
func (v *View) Layout(s paint.TextMeasurer) {
	if v.hidden {
		v.WalkDown(func(n *View) bool {
			n.needsLay = false
			return Continue
		})
		return
	}
	if v.needsLay {
		if v.parent == nil {
			slog.Debug("view: layout", "root", v, "content", v.geom.Content)
		}
		strategy(v.style.Layout).layoutSubviews(v, s)
		for _, sv := range v.subviews {
			if sv.style.IsAbsolute() && !sv.hidden {
				continue
			}
			sv.Layout(s)
		}
	}
	if v.isContainingBlock() {
		v.layoutPositioned(s)
	}
	v.needsLay = false
}

// isContainingBlock returns whether absolutely positioned descendants
// are placed relative to this view.
func (v *View) isContainingBlock() bool {
	return v.parent == nil || v.style.IsAbsolute()
}

// flowSubviews returns the subviews that take part in normal flow.
func (v *View) flowSubviews() []*View {
	var flow []*View
	for _, sv := range v.subviews {
		if sv.hidden || sv.style.IsAbsolute() {
			continue
		}
		flow = append(flow, sv)
	}
	return flow
}

// refSize returns the size that percentages of the view resolve against.
func (v *View) refSize() math32.Vector2 {
	if v.parent == nil {
		return v.geom.Content.Size()
	}
	return v.parent.geom.Content.Size()
}

func (v *View) fixedWidth() (float32, bool) {
	return v.style.FixedWidth(v.refSize().X)
}

func (v *View) fixedHeight() (float32, bool) {
	return v.style.FixedHeight(v.refSize().Y)
}

// measureWidth returns the content width the view takes in flow when
// it is not stretched.
func (v *View) measureWidth(s paint.TextMeasurer) float32 {
	if w, ok := v.fixedWidth(); ok {
		return w
	}
	return math32.ClampNonNegative(v.This.PreferredWidth(s))
}

// measureHeight returns the content height the view takes in flow at
// the given content width.
func (v *View) measureHeight(s paint.TextMeasurer, width float32) float32 {
	if h, ok := v.fixedHeight(); ok {
		return h
	}
	return math32.ClampNonNegative(v.This.PreferredHeight(s, width))
}

// noLayout is the strategy of [styles.LayoutNone]: subviews keep the
// geometry they were given with [View.SetGeometry].
type noLayout struct{}

func (noLayout) preferredWidth(v *View, s paint.TextMeasurer) float32 { return 0 }

func (noLayout) preferredHeight(v *View, s paint.TextMeasurer, width float32) float32 { return 0 }

func (noLayout) firstBaseline(v *View, s paint.TextMeasurer, width float32) float32 { return 0 }

func (noLayout) lastBaseline(v *View, s paint.TextMeasurer, width float32) float32 { return 0 }

func (noLayout) layoutSubviews(v *View, s paint.TextMeasurer) {}
