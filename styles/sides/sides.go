// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides provides flexible representation of box sides,
// with either a single value for all, or different values
// for subsets.
package sides

import (
	"log/slog"

	"cogentcore.org/uicore/math32"
)

// Indexes provides names for the Sides in order defined
type Indexes int32

const (
	Top Indexes = iota
	Right
	Bottom
	Left
)

// Sides contains values for each side of a box.
type Sides[T any] struct {

	// top value
	Top T

	// right value
	Right T

	// bottom value
	Bottom T

	// left value
	Left T
}

// NewSides is a helper that creates new sides of the given type
// and calls Set on them with the given values.
func NewSides[T any](vals ...T) *Sides[T] {
	return (&Sides[T]{}).Set(vals...)
}

// Set sets the values of the sides from the given list of 0 to 4 values.
// If 0 values are provided, all sides are set to the zero value of the type.
// If 1 value is provided, all sides are set to that value.
// If 2 values are provided, the top and bottom are set to the first value
// and the right and left are set to the second value.
// If 3 values are provided, the top is set to the first value,
// the right and left are set to the second value,
// and the bottom is set to the third value.
// If 4 values are provided, they are set in top, right, bottom, left order.
// If more than 4 values are provided, the behavior is the same
// as with 4 values, but Set also logs a programmer error.
// This behavior is based on the CSS multi-side setting syntax,
// like that with padding and margin.
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	switch len(vals) {
	case 0:
		var zval T
		s.SetAll(zval)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.SetVertical(vals[0])
		s.SetHorizontal(vals[1])
	case 3:
		s.Top = vals[0]
		s.SetHorizontal(vals[1])
		s.Bottom = vals[2]
	default:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
		if len(vals) > 4 {
			slog.Error("programmer error: sides.Set: expected 0 to 4 values, but got", "numValues", len(vals))
		}
	}
	return s
}

// Zero sets the values of all of the sides to zero.
func (s *Sides[T]) Zero() *Sides[T] {
	s.Set()
	return s
}

// SetVertical sets the top and bottom sides to the given value
func (s *Sides[T]) SetVertical(val T) *Sides[T] {
	s.Top = val
	s.Bottom = val
	return s
}

// SetHorizontal sets the right and left sides to the given value
func (s *Sides[T]) SetHorizontal(val T) *Sides[T] {
	s.Right = val
	s.Left = val
	return s
}

// SetAll sets the values for all of the sides to the given value
func (s *Sides[T]) SetAll(val T) *Sides[T] {
	s.Top = val
	s.Right = val
	s.Bottom = val
	s.Left = val
	return s
}

// SetSide sets the side at the given index.
func (s *Sides[T]) SetSide(idx Indexes, val T) *Sides[T] {
	switch idx {
	case Top:
		s.Top = val
	case Right:
		s.Right = val
	case Bottom:
		s.Bottom = val
	case Left:
		s.Left = val
	}
	return s
}

// AreSame returns whether all of the sides are the same
func AreSame[T comparable](s Sides[T]) bool {
	return s.Right == s.Top && s.Bottom == s.Top && s.Left == s.Top
}

// AreZero returns whether all of the sides are equal to zero
func AreZero[T comparable](s Sides[T]) bool {
	var zv T
	return s.Top == zv && s.Right == zv && s.Bottom == zv && s.Left == zv
}

// Floats contains float32 values for each side of a box
type Floats struct {
	Sides[float32]
}

// NewFloats is a helper that creates new side floats
// and calls Set on them with the given values.
func NewFloats(vals ...float32) Floats {
	sides := Sides[float32]{}
	sides.Set(vals...)
	return Floats{sides}
}

// Add adds the side floats to the
// other side floats and returns the result
func (sf Floats) Add(other Floats) Floats {
	return NewFloats(
		sf.Top+other.Top,
		sf.Right+other.Right,
		sf.Bottom+other.Bottom,
		sf.Left+other.Left,
	)
}

// ClampNonNegative returns the floats with any negative side set to zero.
func (sf Floats) ClampNonNegative() Floats {
	return NewFloats(
		math32.ClampNonNegative(sf.Top),
		math32.ClampNonNegative(sf.Right),
		math32.ClampNonNegative(sf.Bottom),
		math32.ClampNonNegative(sf.Left),
	)
}

// Pos returns the position offset caused by the side values (Left, Top)
func (sf Floats) Pos() math32.Vector2 {
	return math32.Vec2(sf.Left, sf.Top)
}

// Size returns the total size the side values take up (Left + Right, Top + Bottom)
func (sf Floats) Size() math32.Vector2 {
	return math32.Vec2(sf.Left+sf.Right, sf.Top+sf.Bottom)
}

// Horizontal returns Left + Right.
func (sf Floats) Horizontal() float32 {
	return sf.Left + sf.Right
}

// Vertical returns Top + Bottom.
func (sf Floats) Vertical() float32 {
	return sf.Top + sf.Bottom
}

// Outset returns the box grown outward by the side values.
func (sf Floats) Outset(b math32.Box2) math32.Box2 {
	return math32.B2(b.Min.X-sf.Left, b.Min.Y-sf.Top, b.Max.X+sf.Right, b.Max.Y+sf.Bottom)
}

// Inset returns the box shrunk inward by the side values.
func (sf Floats) Inset(b math32.Box2) math32.Box2 {
	return math32.B2(b.Min.X+sf.Left, b.Min.Y+sf.Top, b.Max.X-sf.Right, b.Max.Y-sf.Bottom)
}
