// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "strings"

// Modifiers are bitflags representing a set of modifier keys.
type Modifiers int64

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

var modNames = [...]string{"Shift", "Control", "Alt", "Meta"}

// HasAnyModifier returns whether any of the given modifiers are set.
func HasAnyModifier(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if flags&m != 0 {
			return true
		}
	}
	return false
}

// HasAllModifiers returns whether all of the given modifiers are set.
func HasAllModifiers(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if flags&m == 0 {
			return false
		}
	}
	return true
}

// ModifiersString returns the modifiers joined by "+", with a trailing
// "+" if there are any, in the form used by chords: "Control+Shift+".
func (mo Modifiers) ModifiersString() string {
	var sb strings.Builder
	for i, n := range modNames {
		if mo&(1<<i) != 0 {
			sb.WriteString(n)
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

func (mo Modifiers) String() string {
	return strings.TrimSuffix(mo.ModifiersString(), "+")
}
