// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"cogentcore.org/uicore/math32"
)

// Raster is a [Surface] that renders into an [image.RGBA],
// rasterizing shapes with golang.org/x/image/vector and
// drawing images and text with golang.org/x/image/draw and font.
// Text is positioned through the transform but not scaled by it.
type Raster struct {
	FaceMeasurer

	// Image is the render target.
	Image *image.RGBA

	transform math32.Matrix2

	// clip stack, in image coordinates; the last one is current
	clips []image.Rectangle

	rast vector.Rasterizer
}

// NewRaster returns a new raster surface on a new transparent image
// with the given size.
func NewRaster(width, height int) *Raster {
	return NewRasterFromRGBA(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewRasterFromRGBA returns a raster surface rendering directly
// onto the given image.
func NewRasterFromRGBA(img *image.RGBA) *Raster {
	return &Raster{Image: img, transform: math32.Identity2()}
}

func (r *Raster) Transform() math32.Matrix2 {
	return r.transform
}

func (r *Raster) SetTransform(m math32.Matrix2) {
	r.transform = m
}

// Clip returns the current clip rectangle in image coordinates.
func (r *Raster) Clip() image.Rectangle {
	if len(r.clips) == 0 {
		return r.Image.Bounds()
	}
	return r.clips[len(r.clips)-1]
}

func (r *Raster) PushClip(b math32.Box2) {
	cr := b.MulMatrix2(r.transform).ToRect().Intersect(r.Clip())
	r.clips = append(r.clips, cr)
}

func (r *Raster) PopClip() {
	if len(r.clips) == 0 {
		return
	}
	r.clips = r.clips[:len(r.clips)-1]
}

// Clear fills the whole image with the given color, ignoring the clip.
func (r *Raster) Clear(c color.Color) {
	draw.Draw(r.Image, r.Image.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// fillPolygons fills the given closed polygons, given in current
// transform coordinates, using the non-zero winding rule.
func (r *Raster) fillPolygons(c color.Color, polys ...[]math32.Vector2) {
	clip := r.Clip()
	if clip.Empty() || c == nil {
		return
	}
	off := math32.Vector2FromPoint(clip.Min)
	r.rast.Reset(clip.Dx(), clip.Dy())
	r.rast.DrawOp = draw.Over
	for _, poly := range polys {
		for i, p := range poly {
			d := r.transform.MulVector2AsPoint(p).Sub(off)
			if i == 0 {
				r.rast.MoveTo(d.X, d.Y)
			} else {
				r.rast.LineTo(d.X, d.Y)
			}
		}
		r.rast.ClosePath()
	}
	r.rast.Draw(r.Image, clip, image.NewUniform(c), image.Point{})
}

func rectPoly(b math32.Box2, clockwise bool) []math32.Vector2 {
	if clockwise {
		return []math32.Vector2{b.Min, {X: b.Max.X, Y: b.Min.Y}, b.Max, {X: b.Min.X, Y: b.Max.Y}}
	}
	return []math32.Vector2{b.Min, {X: b.Min.X, Y: b.Max.Y}, b.Max, {X: b.Max.X, Y: b.Min.Y}}
}

func (r *Raster) FillRect(b math32.Box2, c color.Color) {
	b = b.Canon()
	if b.IsEmpty() {
		return
	}
	r.fillPolygons(c, rectPoly(b, true))
}

func (r *Raster) StrokeRect(b math32.Box2, width float32, c color.Color) {
	if width <= 0 {
		return
	}
	b = b.Canon()
	hw := width / 2
	outer := math32.B2(b.Min.X-hw, b.Min.Y-hw, b.Max.X+hw, b.Max.Y+hw)
	inner := math32.B2(b.Min.X+hw, b.Min.Y+hw, b.Max.X-hw, b.Max.Y-hw)
	if inner.IsEmpty() {
		r.fillPolygons(c, rectPoly(outer, true))
		return
	}
	// opposite winding cuts the inner rectangle out
	r.fillPolygons(c, rectPoly(outer, true), rectPoly(inner, false))
}

func (r *Raster) DrawLine(a, b math32.Vector2, width float32, c color.Color) {
	d := b.Sub(a)
	l := math32.Sqrt(d.X*d.X + d.Y*d.Y)
	if l == 0 || width <= 0 {
		return
	}
	n := math32.Vec2(-d.Y/l, d.X/l).MulScalar(width / 2)
	r.fillPolygons(c, []math32.Vector2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

func (r *Raster) DrawImage(img image.Image, dst math32.Box2) {
	dst = dst.Canon()
	ib := img.Bounds()
	if dst.IsEmpty() || ib.Empty() {
		return
	}
	isz := math32.Vector2FromPoint(ib.Size())
	m := r.transform.Translate(dst.Min.X, dst.Min.Y).
		Mul(math32.Scale2D(dst.Width()/isz.X, dst.Height()/isz.Y)).
		Translate(-float32(ib.Min.X), -float32(ib.Min.Y))
	sub := r.Image.SubImage(r.Clip()).(*image.RGBA)
	draw.BiLinear.Transform(sub, m.Aff3(), img, ib, draw.Over, nil)
}

// DrawText draws the text with the face of the style. With a font
// scale other than 1, the glyphs are drawn at their natural size and
// then scaled onto the image.
func (r *Raster) DrawText(ts *TextStyle, pos math32.Vector2, text string) {
	if text == "" {
		return
	}
	f := face(ts)
	src := image.NewUniform(ts.TextColor())
	dot := r.transform.MulVector2AsPoint(pos)
	sub := r.Image.SubImage(r.Clip()).(*image.RGBA)
	sc := r.scale()
	if sc == 1 {
		d := font.Drawer{Dst: sub, Src: src, Face: f, Dot: dot.ToFixed()}
		d.DrawString(text)
		return
	}
	m := f.Metrics()
	asc := m.Ascent.Ceil()
	w, h := font.MeasureString(f, text).Ceil(), asc+m.Descent.Ceil()
	if w <= 0 || h <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{Dst: tmp, Src: src, Face: f, Dot: fixed.P(0, asc)}
	d.DrawString(text)
	xf := math32.Translate2D(dot.X, dot.Y).Mul(math32.Scale2D(sc, sc)).Translate(0, -float32(asc))
	draw.BiLinear.Transform(sub, xf.Aff3(), tmp, tmp.Bounds(), draw.Over, nil)
}
