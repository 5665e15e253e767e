// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/image/colornames"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/styles/sides"
	"cogentcore.org/uicore/styles/units"
)

// SetCSS sets the style from a semicolon-separated list of CSS
// declarations, such as "display: hbox; margin: 4px 8px".
// Declarations that fail to parse are skipped and reported in the
// returned error; the others are still applied. The result is clamped.
// The last declaration needs no terminating semicolon.
func (s *Box) SetCSS(decls string) error {
	// the parser drops the value of an unterminated last declaration
	if t := strings.TrimSpace(decls); t != "" && !strings.HasSuffix(t, ";") {
		decls = t + ";"
	}
	ds, err := parser.ParseDeclarations(decls)
	if err != nil {
		return fmt.Errorf("styles.Box.SetCSS: %w", err)
	}
	var errs []error
	for _, d := range ds {
		errs = append(errs, s.SetProperty(d.Property, d.Value))
	}
	s.Clamp()
	return errors.Join(errs...)
}

// SetProperty sets one CSS property on the style. An empty value is
// an error; use "auto" for the automatic value of a length.
func (s *Box) SetProperty(name, value string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("styles: property %q: empty value", name)
	}
	var err error
	switch name {
	case "display", "layout":
		err = s.Layout.SetString(value)
	case "position":
		err = s.Position.SetString(value)
	case "width":
		s.Width, err = units.Parse(value)
	case "height":
		s.Height, err = units.Parse(value)
	case "top":
		s.Inset.Top, err = units.Parse(value)
	case "right":
		s.Inset.Right, err = units.Parse(value)
	case "bottom":
		s.Inset.Bottom, err = units.Parse(value)
	case "left":
		s.Inset.Left, err = units.Parse(value)
	case "inset":
		err = setSideValues(&s.Inset, value)
	case "margin":
		err = setSideFloats(&s.Margin, value)
	case "margin-top", "margin-right", "margin-bottom", "margin-left":
		err = setSideFloat(&s.Margin, name, value)
	case "padding":
		err = setSideFloats(&s.Padding, value)
	case "padding-top", "padding-right", "padding-bottom", "padding-left":
		err = setSideFloat(&s.Padding, name, value)
	case "border-width":
		err = setSideFloats(&s.Border.Width, value)
	case "border-top-width", "border-right-width", "border-bottom-width", "border-left-width":
		err = setSideFloat(&s.Border.Width, strings.TrimSuffix(name, "-width"), value)
	case "border-color":
		err = setSideColors(&s.Border.Color, value)
	case "border-style":
		err = s.Border.Style.SetString(value)
	case "border":
		err = s.setBorder(value)
	case "flex-grow":
		s.Flex.Grow, err = parseFloat(value)
	case "flex-shrink":
		s.Flex.Shrink, err = parseFloat(value)
	case "flex-basis":
		s.Flex.Basis, err = units.Parse(value)
	case "flex":
		err = s.setFlex(value)
	case "background", "background-color":
		var c color.Color
		c, err = ParseColor(value)
		s.Background.Color = c
	default:
		err = fmt.Errorf("styles: unsupported property %q", name)
	}
	if err != nil {
		return fmt.Errorf("styles: property %q: %w", name, err)
	}
	return nil
}

// SetString sets the border style from its name.
func (b *BorderStyles) SetString(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solid":
		*b = BorderSolid
	case "dashed", "dotted":
		*b = BorderDashed
	case "none", "hidden":
		*b = BorderNone
	default:
		return fmt.Errorf("unknown border style %q", s)
	}
	return nil
}

// setBorder handles the "border: <width> <style> <color>" shorthand,
// with the parts in any order.
func (s *Box) setBorder(value string) error {
	for _, f := range strings.Fields(value) {
		if v, err := units.Parse(f); err == nil {
			px, _ := v.Dots(0)
			s.Border.Width.SetAll(px)
			continue
		}
		var bs BorderStyles
		if bs.SetString(f) == nil {
			s.Border.Style = bs
			continue
		}
		c, err := ParseColor(f)
		if err != nil {
			return err
		}
		s.Border.Color.SetAll(c)
	}
	return nil
}

// setFlex handles the "flex: <grow> [<shrink>] [<basis>]" shorthand
// and the "none" and "auto" keywords.
func (s *Box) setFlex(value string) error {
	switch strings.TrimSpace(value) {
	case "none":
		s.Flex = Flex{}
		return nil
	case "auto":
		s.Flex = Flex{Grow: 1, Shrink: 1}
		return nil
	}
	fs := strings.Fields(value)
	if len(fs) == 0 || len(fs) > 3 {
		return fmt.Errorf("invalid flex %q", value)
	}
	f := Flex{Shrink: 1}
	var err error
	if f.Grow, err = parseFloat(fs[0]); err != nil {
		return err
	}
	if len(fs) > 1 {
		if f.Shrink, err = parseFloat(fs[1]); err != nil {
			// two value form may be <grow> <basis>
			if f.Basis, err = units.Parse(fs[1]); err != nil {
				return err
			}
			f.Shrink = 1
		}
	}
	if len(fs) > 2 {
		if f.Basis, err = units.Parse(fs[2]); err != nil {
			return err
		}
	}
	s.Flex = f
	return nil
}

func parseFloat(str string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(str), 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// parsePixels parses a length that must resolve without a reference.
func parsePixels(str string) (float32, error) {
	v, err := units.Parse(str)
	if err != nil {
		return 0, err
	}
	if v.Unit == units.UnitPct {
		return 0, fmt.Errorf("percentage %q not allowed here", str)
	}
	px, _ := v.Dots(0)
	return px, nil
}

func setSideFloats(sf *sides.Floats, value string) error {
	fs := strings.Fields(value)
	vals := make([]float32, len(fs))
	for i, f := range fs {
		px, err := parsePixels(f)
		if err != nil {
			return err
		}
		vals[i] = px
	}
	sf.Set(vals...)
	return nil
}

func setSideFloat(sf *sides.Floats, name, value string) error {
	px, err := parsePixels(value)
	if err != nil {
		return err
	}
	sf.SetSide(sideIndex(name), px)
	return nil
}

func sideIndex(name string) sides.Indexes {
	switch {
	case strings.HasSuffix(name, "-top"):
		return sides.Top
	case strings.HasSuffix(name, "-right"):
		return sides.Right
	case strings.HasSuffix(name, "-bottom"):
		return sides.Bottom
	}
	return sides.Left
}

func setSideValues(sv *sides.Sides[units.Value], value string) error {
	fs := strings.Fields(value)
	vals := make([]units.Value, len(fs))
	for i, f := range fs {
		v, err := units.Parse(f)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	sv.Set(vals...)
	return nil
}

func setSideColors(sc *sides.Sides[color.Color], value string) error {
	fs := strings.Fields(value)
	vals := make([]color.Color, len(fs))
	for i, f := range fs {
		c, err := ParseColor(f)
		if err != nil {
			return err
		}
		vals[i] = c
	}
	sc.Set(vals...)
	return nil
}

// ParseColor parses a CSS color: a named color, "#rgb", "#rrggbb",
// "#rrggbbaa", or "transparent" / "none", which yield nil.
func ParseColor(str string) (color.Color, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	switch str {
	case "transparent", "none":
		return nil, nil
	}
	if c, ok := colornames.Map[str]; ok {
		return c, nil
	}
	if !strings.HasPrefix(str, "#") {
		return nil, fmt.Errorf("invalid color %q", str)
	}
	hex := str[1:]
	if len(hex) == 3 || len(hex) == 4 {
		var sb strings.Builder
		for _, r := range hex {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		hex = sb.String()
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("invalid color %q", str)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", str, err)
	}
	c := color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}
	return color.RGBAModel.Convert(c), nil
}

// ToCSS converts the style to a semicolon-separated CSS declaration
// string. Colors and images are not included.
func ToCSS(s *Box) string {
	parts := []string{}
	add := func(key, value string) {
		if value == "" || value == "0" || value == "0px" || value == "auto" {
			return
		}
		parts = append(parts, key+":"+value)
	}
	add("display", s.Layout.String())
	if s.IsAbsolute() {
		add("position", s.Position.String())
	}
	add("width", s.Width.String())
	add("height", s.Height.String())
	add("top", s.Inset.Top.String())
	add("right", s.Inset.Right.String())
	add("bottom", s.Inset.Bottom.String())
	add("left", s.Inset.Left.String())
	add("margin", floatsToCSS(s.Margin))
	add("padding", floatsToCSS(s.Padding))
	add("border-width", floatsToCSS(s.Border.Width))
	if s.Flex.IsFlexible() || !s.Flex.Basis.IsAuto() {
		add("flex", fmt.Sprintf("%g %g %s", s.Flex.Grow, s.Flex.Shrink, s.Flex.Basis.String()))
	}
	return strings.Join(parts, ";")
}

func floatsToCSS(sf sides.Floats) string {
	if sides.AreZero(sf.Sides) {
		return ""
	}
	px := func(f float32) string {
		return units.Px(math32.Round(f*100) / 100).String()
	}
	if sides.AreSame(sf.Sides) {
		return px(sf.Top)
	}
	return px(sf.Top) + " " + px(sf.Right) + " " + px(sf.Bottom) + " " + px(sf.Left)
}
