// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"cogentcore.org/uicore/math32"
)

// DefaultFace is the face used when a [TextStyle] has none.
var DefaultFace font.Face = basicfont.Face7x13

// FaceMeasurer measures text with golang.org/x/image/font faces.
type FaceMeasurer struct {

	// Scale multiplies all metrics; zero means 1.
	Scale float32
}

// FontScaler is implemented by surfaces whose text size can be scaled.
type FontScaler interface {
	SetFontScale(scale float32)
}

// SetFontScale sets the scale of all text.
func (fm *FaceMeasurer) SetFontScale(scale float32) {
	fm.Scale = scale
}

func (fm FaceMeasurer) scale() float32 {
	if fm.Scale <= 0 {
		return 1
	}
	return fm.Scale
}

// face returns the face of the style or the default face.
func face(ts *TextStyle) font.Face {
	if ts == nil || ts.Face == nil {
		return DefaultFace
	}
	return ts.Face
}

func (fm FaceMeasurer) MeasureText(ts *TextStyle, text string) TextMetrics {
	f := face(ts)
	m := f.Metrics()
	sc := fm.scale()
	return TextMetrics{
		Advance: math32.FromFixed(font.MeasureString(f, text)) * sc,
		Ascent:  math32.FromFixed(m.Ascent) * sc,
		Descent: math32.FromFixed(m.Descent) * sc,
	}
}

// MonoMeasurer measures text as if every rune had the same advance,
// ignoring the face. It gives exact, font independent metrics.
type MonoMeasurer struct {

	// Advance is the width of each rune.
	Advance float32

	// Ascent and Descent are the line metrics.
	Ascent, Descent float32
}

// NewMonoMeasurer returns a mono measurer with the proportions of a
// typical fixed width font of the given size.
func NewMonoMeasurer(size float32) MonoMeasurer {
	return MonoMeasurer{Advance: size * 0.5, Ascent: size * 0.75, Descent: size * 0.25}
}

func (mm MonoMeasurer) MeasureText(ts *TextStyle, text string) TextMetrics {
	return TextMetrics{
		Advance: float32(utf8.RuneCountInString(text)) * mm.Advance,
		Ascent:  mm.Ascent,
		Descent: mm.Descent,
	}
}
