// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the drawing surface and text measurement
// interfaces that views render through, a box model renderer
// for box styles, a raster surface on top of golang.org/x/image,
// and a recording surface for tests.
package paint

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"cogentcore.org/uicore/math32"
)

// Surface is a drawing target. All coordinates passed to the drawing
// methods are transformed by the current transform, and drawing is
// limited to the intersection of the pushed clip rectangles.
type Surface interface {
	TextMeasurer

	// Transform returns the current transform.
	Transform() math32.Matrix2

	// SetTransform replaces the current transform.
	SetTransform(m math32.Matrix2)

	// PushClip intersects the clip region with the given rectangle,
	// given in current transform coordinates.
	PushClip(r math32.Box2)

	// PopClip restores the clip region from before the last PushClip.
	PopClip()

	// FillRect fills the rectangle with the color.
	FillRect(r math32.Box2, c color.Color)

	// StrokeRect strokes the edges of the rectangle with a line of
	// the given width centered on them.
	StrokeRect(r math32.Box2, width float32, c color.Color)

	// DrawLine draws a line of the given width between two points.
	DrawLine(a, b math32.Vector2, width float32, c color.Color)

	// DrawImage draws the image scaled into the destination rectangle.
	DrawImage(img image.Image, dst math32.Box2)

	// DrawText draws a single line of text with the left end of its
	// baseline at pos.
	DrawText(ts *TextStyle, pos math32.Vector2, text string)
}

// Clearer is implemented by surfaces that can be cleared before
// everything is rendered again.
type Clearer interface {
	Clear(c color.Color)
}

// TextMeasurer measures single lines of text.
type TextMeasurer interface {

	// MeasureText returns the metrics of the text drawn in the given style.
	MeasureText(ts *TextStyle, text string) TextMetrics
}

// TextMetrics are the metrics of a measured line of text.
type TextMetrics struct {

	// Advance is the horizontal extent of the text.
	Advance float32

	// Ascent is the distance from the top of the line to the baseline.
	Ascent float32

	// Descent is the distance from the baseline to the bottom of the line.
	Descent float32
}

// Height returns the height of the line.
func (tm TextMetrics) Height() float32 {
	return tm.Ascent + tm.Descent
}

// Size returns the size of the line.
func (tm TextMetrics) Size() math32.Vector2 {
	return math32.Vec2(tm.Advance, tm.Height())
}

// TextStyle is the style used to measure and draw text.
type TextStyle struct {

	// Face is the font face; nil means the default face of the surface.
	Face font.Face

	// Size is the nominal font size in pixels, used by measurers
	// that do not have a face, such as [MonoMeasurer].
	Size float32

	// Color is the text color; nil means black.
	Color color.Color
}

// NewTextStyle returns a text style of the given size and color.
func NewTextStyle(size float32, c color.Color) *TextStyle {
	return &TextStyle{Size: size, Color: c}
}

// Render draws the text on the surface with the left end of its
// baseline at pos.
func (ts *TextStyle) Render(s Surface, pos math32.Vector2, text string) {
	s.DrawText(ts, pos, text)
}

// TextColor returns the text color, defaulting to black.
func (ts *TextStyle) TextColor() color.Color {
	if ts == nil || ts.Color == nil {
		return color.Black
	}
	return ts.Color
}
