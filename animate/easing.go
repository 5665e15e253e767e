// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

// Linear is the identity easing.
func Linear(t float32) float32 {
	return t
}

// EaseIn starts slowly and accelerates.
func EaseIn(t float32) float32 {
	return t * t
}

// EaseOut starts quickly and decelerates.
func EaseOut(t float32) float32 {
	return t * (2 - t)
}

// EaseInOut accelerates until halfway, then decelerates.
func EaseInOut(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Smoothstep is the cubic Hermite easing 3t² - 2t³.
func Smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}
