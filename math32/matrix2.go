// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Matrix2 is a 3x2 affine transformation matrix, in the
// form used by 2D graphics:
//
//	| XX XY X0 |
//	| YX YY Y0 |
//
// A point (x, y) maps to (XX*x + XY*y + X0, YX*x + YY*y + Y0).
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 scaling matrix by given scaling factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

func (a Matrix2) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", a.XX, a.XY, a.X0, a.YX, a.YY, a.Y0)
}

// Mul returns a*b, which applies b first and then a when transforming points.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// Translate returns a with a translation applied before it, so that
// points are first offset by (x, y) and then transformed by a.
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(a.XX*v.X+a.XY*v.Y, a.YX*v.X+a.YY*v.Y)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(a.XX*v.X+a.XY*v.Y+a.X0, a.YX*v.X+a.YY*v.Y+a.Y0)
}

// Determinant returns the determinant of the linear part of the matrix.
func (a Matrix2) Determinant() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns the inverse of the matrix. A singular matrix
// yields the zero matrix.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Determinant()
	if det == 0 {
		return Matrix2{}
	}
	inv := 1 / det
	return Matrix2{
		XX: a.YY * inv,
		YX: -a.YX * inv,
		XY: -a.XY * inv,
		YY: a.XX * inv,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * inv,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * inv,
	}
}

// IsTranslation returns whether the matrix only translates,
// with no scale, rotation or skew.
func (a Matrix2) IsTranslation() bool {
	return a.XX == 1 && a.YY == 1 && a.XY == 0 && a.YX == 0
}

// Aff3 returns the matrix in the row-major [f64.Aff3] form
// used by golang.org/x/image/draw transforms.
func (a Matrix2) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(a.XX), float64(a.XY), float64(a.X0),
		float64(a.YX), float64(a.YY), float64(a.Y0),
	}
}
