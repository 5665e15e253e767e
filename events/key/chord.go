// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Chord represents the key chord associated with a given key function.
// It is the modifiers followed by the key, joined with "+",
// such as "Control+A", "Shift+Tab" or "a".
type Chord string

// NewChord returns the chord for the given rune, code and modifiers.
// The rune is used for [CodeRune] keys.
func NewChord(r rune, code Codes, mods Modifiers) Chord {
	k := code.String()
	if code == CodeRune {
		k = string(r)
	}
	return Chord(mods.ModifiersString() + k)
}

// Decode decomposes the chord into its rune, code and modifiers.
func (ch Chord) Decode() (r rune, code Codes, mods Modifiers, err error) {
	cs := string(ch)
	if cs == "" {
		return 0, CodeUnknown, 0, fmt.Errorf("key.Chord.Decode: empty chord")
	}
	parts := strings.Split(cs, "+")
	last := parts[len(parts)-1]
	if last == "" && len(parts) > 1 {
		// the chord ends with the "+" key itself
		last = "+"
		parts = parts[:len(parts)-1]
	}
	for _, p := range parts[:len(parts)-1] {
		i := -1
		for mi, n := range modNames {
			if strings.EqualFold(n, p) {
				i = mi
			}
		}
		if i < 0 {
			return 0, CodeUnknown, 0, fmt.Errorf("key.Chord.Decode: unknown modifier %q in %q", p, cs)
		}
		mods |= 1 << i
	}
	if utf8.RuneCountInString(last) == 1 {
		r, _ = utf8.DecodeRuneInString(last)
		return r, CodeRune, mods, nil
	}
	if !code.SetString(last) {
		return 0, CodeUnknown, 0, fmt.Errorf("key.Chord.Decode: unknown key %q in %q", last, cs)
	}
	return 0, code, mods, nil
}

func (ch Chord) String() string {
	return string(ch)
}
