// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the declarative box style of a view:
// its layout mode, positioning, box metrics, flex factors and
// background, along with the geometry computed from it by layout.
package styles

import (
	"image"
	"image/color"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/styles/sides"
	"cogentcore.org/uicore/styles/units"
)

// Box is the style of one view box. It is a plain value: changing
// it has no side effects, so whoever changes the style of an attached
// view must also mark that view as needing layout.
//
// The zero value is a block layout, statically positioned box with
// auto width and height and no margin, border, padding or background.
type Box struct {

	// Layout is the algorithm used to arrange the children of the box.
	Layout Layouts

	// Position determines whether the box takes part in normal flow.
	Position Positions

	// Width is the width of the content box; auto means computed by layout.
	Width units.Value

	// Height is the height of the content box; auto means computed by layout.
	Height units.Value

	// Inset holds the top, right, bottom and left offsets used for
	// absolute positioning, relative to the containing box.
	Inset sides.Sides[units.Value]

	// Margin is the outer-most transparent space around the box.
	Margin sides.Floats

	// Border is the rendered border around the padding box.
	Border Border

	// Padding is the space between the border and the content.
	Padding sides.Floats

	// Flex specifies how the box grows and shrinks in vbox and hbox layouts.
	Flex Flex

	// Background is the paint used to fill the border box.
	Background Background
}

// Flex contains the flex factors of a box.
type Flex struct {

	// Grow is the proportion of any extra space given to this box.
	Grow float32

	// Shrink is the proportion of any missing space taken from this box,
	// weighted by its basis.
	Shrink float32

	// Basis is the initial main size of the box; auto means its preferred size.
	Basis units.Value
}

// IsFlexible returns whether the box declares any flex factor.
func (f Flex) IsFlexible() bool {
	return f.Grow > 0 || f.Shrink > 0
}

// BorderStyles determines how to draw the border
type BorderStyles int32

const (
	// BorderSolid indicates to render a solid border.
	BorderSolid BorderStyles = iota

	// BorderDashed indicates to render a dashed border.
	BorderDashed

	// BorderNone indicates to render no border, while keeping its width.
	BorderNone
)

// Border contains style parameters for borders
type Border struct {

	// Style specifies how to draw the border
	Style BorderStyles

	// Width specifies the width of each side of the border
	Width sides.Floats

	// Color specifies the color of each side of the border
	Color sides.Sides[color.Color]
}

// Background is the paint of the border box.
type Background struct {

	// Color fills the border box if non-nil.
	Color color.Color

	// Image is drawn scaled to the padding box if non-nil.
	Image image.Image
}

// IsZero returns whether there is nothing to paint.
func (b Background) IsZero() bool {
	return b.Color == nil && b.Image == nil
}

// IsAbsolute returns whether the box is absolutely positioned.
func (s *Box) IsAbsolute() bool {
	return s.Position == PositionAbsolute
}

// IsWidthAuto returns whether the width is computed by layout.
func (s *Box) IsWidthAuto() bool {
	return s.Width.IsAuto()
}

// IsHeightAuto returns whether the height is computed by layout.
func (s *Box) IsHeightAuto() bool {
	return s.Height.IsAuto()
}

// FixedWidth returns the explicit content width resolved against the
// reference width, and false if the width is auto.
func (s *Box) FixedWidth(ref float32) (float32, bool) {
	w, ok := s.Width.Dots(ref)
	return math32.ClampNonNegative(w), ok
}

// FixedHeight returns the explicit content height resolved against the
// reference height, and false if the height is auto.
func (s *Box) FixedHeight(ref float32) (float32, bool) {
	h, ok := s.Height.Dots(ref)
	return math32.ClampNonNegative(h), ok
}

// NonContent returns the total space taken by margin, border and padding
// on each side of the content box.
func (s *Box) NonContent() sides.Floats {
	return s.Margin.Add(s.Border.Width).Add(s.Padding)
}

// Clamp replaces malformed values with usable ones: negative sizes,
// border widths, padding and flex factors become zero, and unknown
// layout or position modes fall back to block and static.
// Margins may legitimately be negative and are kept.
func (s *Box) Clamp() {
	if s.Layout < LayoutBlock || s.Layout > LayoutNone {
		s.Layout = LayoutBlock
	}
	if s.Position < PositionStatic || s.Position > PositionAbsolute {
		s.Position = PositionStatic
	}
	s.Width = s.Width.Clamp()
	s.Height = s.Height.Clamp()
	s.Flex.Basis = s.Flex.Basis.Clamp()
	s.Border.Width = s.Border.Width.ClampNonNegative()
	s.Padding = s.Padding.ClampNonNegative()
	s.Flex.Grow = math32.ClampNonNegative(s.Flex.Grow)
	s.Flex.Shrink = math32.ClampNonNegative(s.Flex.Shrink)
}
