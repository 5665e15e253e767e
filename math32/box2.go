// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
// Boxes are half-open for containment: Min is inside, Max is outside.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2XYWH returns a new [Box2] from the given position and size.
func B2XYWH(x, y, w, h float32) Box2 {
	return Box2{Vec2(x, y), Vec2(x+w, y+h)}
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return Box2{Vector2FromPoint(rect.Min), Vector2FromPoint(rect.Max)}
}

// B2FromFixed returns a new [Box2] from the given [fixed.Rectangle26_6].
func B2FromFixed(rect fixed.Rectangle26_6) Box2 {
	return Box2{Vector2FromFixed(rect.Min), Vector2FromFixed(rect.Max)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values
func B2Empty() Box2 {
	return Box2{Vector2Scalar(Infinity), Vector2Scalar(-Infinity)}
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// IsEmpty returns if this bounding box is empty (max <= min on any coord).
func (b Box2) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// ToRect returns image.Rectangle version of this bbox, using floor for min
// and Ceil for max.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}

// ToFixed returns fixed.Rectangle26_6 version of this bbox.
func (b Box2) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: b.Min.ToFixed(), Max: b.Max.ToFixed()}
}

// Canon returns the canonical version of the box.
// The returned rectangle has minimum and maximum coordinates swapped
// if necessary so that it is well-formed.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Width returns the horizontal extent of the box.
func (b Box2) Width() float32 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b Box2) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// TopLeft returns the minimum corner of the box.
func (b Box2) TopLeft() Vector2 {
	return b.Min
}

// Translate returns the box moved by the given offset.
func (b Box2) Translate(off Vector2) Box2 {
	return Box2{b.Min.Add(off), b.Max.Add(off)}
}

// ContainsPoint returns if this bounding box contains the specified point.
// The minimum edges are inclusive and the maximum edges are exclusive.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X < b.Max.X &&
		point.Y >= b.Min.Y && point.Y < b.Max.Y
}

// Intersect returns the intersection with other box.
// The result is empty (per [Box2.IsEmpty]) when the boxes do not overlap.
func (b Box2) Intersect(other Box2) Box2 {
	return Box2{b.Min.Max(other.Min), b.Max.Min(other.Max)}
}

// Union returns the union with other box.
func (b Box2) Union(other Box2) Box2 {
	return Box2{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// MulMatrix2 multiplies the specified matrix to the vertices of this bounding box
// and computes the resulting spanning Box2 of the transformed points
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	nb := B2Empty()
	nb.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Min.X, b.Min.Y)))
	nb.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Min.X, b.Max.Y)))
	nb.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Max.X, b.Min.Y)))
	nb.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Max.X, b.Max.Y)))
	return nb
}
