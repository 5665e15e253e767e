// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Sheet is a parsed style sheet whose rules can be applied to boxes.
// Only simple selectors are supported: the universal selector "*",
// a class ".name" and an id "#name", optionally comma separated.
// Rules are applied in order, so later rules win, and id rules are
// applied after class rules, which are applied after universal rules.
type Sheet struct {
	rules []sheetRule
}

type sheetRule struct {
	selector string
	decls    []*css.Declaration
}

// specificity of a simple selector.
func (r sheetRule) specificity() int {
	switch {
	case r.selector == "*":
		return 0
	case strings.HasPrefix(r.selector, "."):
		return 1
	}
	return 2
}

// ParseSheet parses the given CSS source into a [Sheet].
// At-rules and selectors other than the supported simple ones are skipped.
func ParseSheet(src string) (*Sheet, error) {
	ss, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("styles.ParseSheet: %w", err)
	}
	sh := &Sheet{}
	for _, r := range ss.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		for _, sel := range r.Selectors {
			sel = strings.TrimSpace(sel)
			if !isSimpleSelector(sel) {
				continue
			}
			sh.rules = append(sh.rules, sheetRule{selector: sel, decls: r.Declarations})
		}
	}
	slices.SortStableFunc(sh.rules, func(a, b sheetRule) int {
		return a.specificity() - b.specificity()
	})
	return sh, nil
}

func isSimpleSelector(sel string) bool {
	if sel == "*" {
		return true
	}
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " >+~.#:[*")
}

// Len returns the number of applicable rules.
func (sh *Sheet) Len() int {
	return len(sh.rules)
}

// Matches returns whether the selector matches a box with the
// given name and classes.
func Matches(selector, name string, classes []string) bool {
	switch {
	case selector == "*":
		return true
	case strings.HasPrefix(selector, "#"):
		return name != "" && selector[1:] == name
	case strings.HasPrefix(selector, "."):
		return slices.Contains(classes, selector[1:])
	}
	return false
}

// Apply sets the properties of every matching rule on the box, and
// returns whether any rule matched. The box is clamped afterwards.
func (sh *Sheet) Apply(s *Box, name string, classes []string) (bool, error) {
	matched := false
	var errs []error
	for _, r := range sh.rules {
		if !Matches(r.selector, name, classes) {
			continue
		}
		matched = true
		for _, d := range r.decls {
			errs = append(errs, s.SetProperty(d.Property, d.Value))
		}
	}
	if matched {
		s.Clamp()
	}
	return matched, errors.Join(errs...)
}
