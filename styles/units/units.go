// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units supports the CSS length units used by box styles,
// including the auto keyword.
package units

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"

	"cogentcore.org/uicore/math32"
)

// Units is an enum that represents a unit (px, em, etc).
// The zero value is [UnitAuto], so that a zero [Value] means "auto".
type Units int32

const (
	// UnitAuto means that the value is computed by layout.
	UnitAuto Units = iota

	// UnitPx = pixels
	UnitPx

	// UnitEm = font size of the element, see [EmSize]
	UnitEm

	// UnitPct = percentage of the reference length (typically the containing box)
	UnitPct
)

// EmSize is the number of pixels in one em.
var EmSize float32 = 16

var unitNames = [...]string{"auto", "px", "em", "%"}

func (u Units) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "Units(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// Value and units, and converted value into raw pixels
type Value struct {

	// Value is the value in terms of the specified unit
	Value float32

	// Unit is the unit used for the value
	Unit Units
}

// Auto returns an auto [Value].
func Auto() Value {
	return Value{}
}

// Px returns a new px value:
// px = pixels
func Px(val float32) Value {
	return Value{val, UnitPx}
}

// Em returns a new em value:
// em = font size of the element
func Em(val float32) Value {
	return Value{val, UnitEm}
}

// Pct returns a new percentage value.
func Pct(val float32) Value {
	return Value{val, UnitPct}
}

// IsAuto returns whether the value is auto.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Dots converts the value to raw pixels, with percentages taken of ref.
// It returns false for auto values.
func (v Value) Dots(ref float32) (float32, bool) {
	switch v.Unit {
	case UnitPx:
		return v.Value, true
	case UnitEm:
		return v.Value * EmSize, true
	case UnitPct:
		return v.Value * ref / 100, true
	}
	return 0, false
}

// Clamp returns the value with a negative magnitude set to zero.
func (v Value) Clamp() Value {
	v.Value = math32.ClampNonNegative(v.Value)
	return v
}

func (v Value) String() string {
	if v.IsAuto() {
		return "auto"
	}
	return strconv.FormatFloat(float64(v.Value), 'g', -1, 32) + v.Unit.String()
}

// Parse parses a CSS length such as "10px", "1.5em", "50%", "0" or "auto".
// A number without unit is taken as pixels.
func Parse(str string) (Value, error) {
	str = strings.TrimSpace(strings.ToLower(str))
	if str == "auto" || str == "" {
		return Auto(), nil
	}
	b := []byte(str)
	nn, nu := parse.Dimension(b)
	if nn == 0 || nn+nu != len(b) {
		return Value{}, fmt.Errorf("units.Parse: invalid length %q", str)
	}
	f, err := strconv.ParseFloat(str[:nn], 32)
	if err != nil {
		return Value{}, fmt.Errorf("units.Parse: invalid number in %q: %w", str, err)
	}
	v := Value{Value: float32(f)}
	switch unit := str[nn:]; unit {
	case "", "px":
		v.Unit = UnitPx
	case "em", "rem":
		v.Unit = UnitEm
	case "%":
		v.Unit = UnitPct
	default:
		return Value{}, fmt.Errorf("units.Parse: unsupported unit %q in %q", unit, str)
	}
	return v, nil
}
