// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"

	"cogentcore.org/uicore/base/iox/imagex"
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/paint"
)

// ImageView is a view showing an image scaled to its content box.
// Its preferred size is the size of the image, with the height
// following the aspect ratio of the image at other widths.
type ImageView struct {
	View

	image image.Image
}

// NewImageView returns a new image view showing the image, which may be nil.
func NewImageView(img image.Image) *ImageView {
	iv := &ImageView{image: img}
	iv.Init(iv)
	return iv
}

// Image returns the image.
func (iv *ImageView) Image() image.Image { return iv.image }

// SetImage sets the image and marks the view as needing layout.
func (iv *ImageView) SetImage(img image.Image) *ImageView {
	iv.image = img
	iv.SetNeedsLayout()
	return iv
}

// Open sets the image from the file, in any format supported by [imagex].
func (iv *ImageView) Open(filename string) error {
	img, _, err := imagex.Open(filename)
	if err != nil {
		return err
	}
	iv.SetImage(img)
	return nil
}

func (iv *ImageView) imageSize() math32.Vector2 {
	if iv.image == nil {
		return math32.Vector2{}
	}
	return math32.Vector2FromPoint(iv.image.Bounds().Size())
}

func (iv *ImageView) PreferredWidth(s paint.TextMeasurer) float32 {
	return iv.imageSize().X
}

func (iv *ImageView) PreferredHeight(s paint.TextMeasurer, width float32) float32 {
	sz := iv.imageSize()
	if sz.X <= 0 || width <= 0 {
		return sz.Y
	}
	return sz.Y * width / sz.X
}

func (iv *ImageView) RenderContent(s paint.Surface) {
	if iv.image == nil {
		return
	}
	sz := iv.geom.Content.Size()
	s.DrawImage(iv.image, math32.B2(0, 0, sz.X, sz.Y))
}
