// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// Layouts are the layout algorithms a box can use to arrange its children.
type Layouts int32

const (
	// LayoutBlock stacks children vertically, each taking the full width.
	LayoutBlock Layouts = iota

	// LayoutInline flows children horizontally, wrapping into lines.
	LayoutInline

	// LayoutVBox places children vertically with flex distribution.
	LayoutVBox

	// LayoutHBox places children horizontally with flex distribution.
	LayoutHBox

	// LayoutNone does not arrange children; the box is sized by its
	// explicit width and height.
	LayoutNone
)

var layoutNames = [...]string{"block", "inline", "vbox", "hbox", "none"}

func (l Layouts) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return "Layouts(" + strconv.Itoa(int(l)) + ")"
	}
	return layoutNames[l]
}

// SetString sets the layout from its name. The CSS display names
// "line" (inline), "flow-root" (block) and "flex-column" / "flex-row"
// (vbox / hbox) are also accepted.
func (l *Layouts) SetString(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "block", "flow-root":
		*l = LayoutBlock
	case "inline", "line", "inline-block":
		*l = LayoutInline
	case "vbox", "flex-column":
		*l = LayoutVBox
	case "hbox", "flex-row", "flex":
		*l = LayoutHBox
	case "none", "contents":
		*l = LayoutNone
	default:
		return fmt.Errorf("styles.Layouts: unknown layout %q", s)
	}
	return nil
}

// Positions determines whether a box takes part in normal flow.
type Positions int32

const (
	// PositionStatic boxes are placed by the layout of their parent.
	PositionStatic Positions = iota

	// PositionAbsolute boxes are placed by their insets relative to
	// the nearest non-static ancestor, outside of normal flow.
	PositionAbsolute
)

var positionNames = [...]string{"static", "absolute"}

func (p Positions) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return "Positions(" + strconv.Itoa(int(p)) + ")"
	}
	return positionNames[p]
}

// SetString sets the position from its name.
func (p *Positions) SetString(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static", "relative":
		*p = PositionStatic
	case "absolute", "fixed":
		*p = PositionAbsolute
	default:
		return fmt.Errorf("styles.Positions: unknown position %q", s)
	}
	return nil
}
