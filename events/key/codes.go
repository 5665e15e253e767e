// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines key codes, modifier flags and key chords
// carried by key events.
package key

import (
	"strconv"
	"strings"
)

// Codes are the physical key codes that are not described by a rune.
// Keys that produce a printable rune use [CodeRune].
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeRune
	CodeReturnEnter
	CodeKeypadEnter
	CodeEscape
	CodeBackspace
	CodeDelete
	CodeTab
	CodeSpacebar
	CodeUpArrow
	CodeDownArrow
	CodeLeftArrow
	CodeRightArrow
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeLeftShift
	CodeLeftControl
	CodeLeftAlt
	CodeLeftMeta
)

var codeNames = [...]string{
	"Unknown", "Rune", "ReturnEnter", "KeypadEnter", "Escape", "Backspace",
	"Delete", "Tab", "Spacebar", "UpArrow", "DownArrow", "LeftArrow",
	"RightArrow", "Home", "End", "PageUp", "PageDown",
	"LeftShift", "LeftControl", "LeftAlt", "LeftMeta",
}

func (c Codes) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return "Codes(" + strconv.Itoa(int(c)) + ")"
	}
	return codeNames[c]
}

// SetString sets the code from its name.
func (c *Codes) SetString(s string) bool {
	for i, n := range codeNames {
		if strings.EqualFold(n, s) {
			*c = Codes(i)
			return true
		}
	}
	return false
}

// IsModifier returns whether the code is a modifier key.
func (c Codes) IsModifier() bool {
	return c >= CodeLeftShift && c <= CodeLeftMeta
}
