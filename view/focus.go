// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"log/slog"
	"slices"

	"cogentcore.org/uicore/events"
)

// FocusPolicies determine whether a view can take the focus through
// keyboard navigation.
type FocusPolicies int32

const (
	// FocusReject views are skipped by keyboard navigation.
	FocusReject FocusPolicies = iota

	// FocusAccept views with a positive tab index are visited by
	// keyboard navigation.
	FocusAccept
)

func (fp FocusPolicies) String() string {
	if fp == FocusAccept {
		return "accept"
	}
	return "reject"
}

// FocusPolicy returns the focus policy of the view.
func (v *View) FocusPolicy() FocusPolicies { return v.focusPolicy }

// SetFocusPolicy sets the focus policy of the view.
func (v *View) SetFocusPolicy(fp FocusPolicies) *View {
	v.focusPolicy = fp
	return v
}

// TabIndex returns the tab index of the view; 0 means unset.
func (v *View) TabIndex() int { return v.tabIndex }

// SetTabIndex sets the tab index, which orders keyboard navigation.
// Views without a positive tab index are never visited.
func (v *View) SetTabIndex(index int) *View {
	v.tabIndex = index
	return v
}

// HasFocus returns whether the view holds the focus of its tree.
func (v *View) HasFocus() bool {
	return v.Root().focus == v
}

// FocusView returns the view holding the focus of the tree, or nil.
func (v *View) FocusView() *View {
	return v.Root().focus
}

// SetFocus gives the focus of the tree to the view. The previous
// holder receives a focus lost event and then the view receives a
// focus gained event, both without propagation. It does nothing if
// the view already has the focus.
func (v *View) SetFocus() {
	root := v.Root()
	if root.focus == v {
		return
	}
	old := root.focus
	root.focus = v
	slog.Debug("view: focus", "view", v)
	if old != nil {
		old.DispatchEvent(events.NewFocusChange(false), true)
	}
	v.DispatchEvent(events.NewFocusChange(true), true)
}

// RemoveFocus clears the focus of the tree if the view holds it,
// sending it a focus lost event.
func (v *View) RemoveFocus() {
	root := v.Root()
	if root.focus != v {
		return
	}
	root.focus = nil
	v.DispatchEvent(events.NewFocusChange(false), true)
}

// focusCandidates returns the views of the tree that keyboard
// navigation visits, in ascending tab index order and document order
// within the same index. Hidden subtrees are skipped, and the root
// itself is never a candidate.
func (v *View) focusCandidates() []*View {
	var list []*View
	root := v.Root()
	root.WalkDown(func(n *View) bool {
		if n.hidden {
			return Break
		}
		if n != root && n.tabIndex > 0 && n.focusPolicy == FocusAccept {
			list = append(list, n)
		}
		return Continue
	})
	slices.SortStableFunc(list, func(a, b *View) int {
		return a.tabIndex - b.tabIndex
	})
	return list
}

// FocusNext moves the focus of the tree to the next view in tab
// order, wrapping around at the end. If no view of the order holds
// the focus, the first one gets it. It returns the new focus view,
// or nil if no view can take the focus.
func (v *View) FocusNext() *View {
	return v.moveFocus(1)
}

// FocusPrev moves the focus of the tree to the previous view in tab
// order, wrapping around at the start. If no view of the order holds
// the focus, the last one gets it.
func (v *View) FocusPrev() *View {
	return v.moveFocus(-1)
}

func (v *View) moveFocus(step int) *View {
	list := v.focusCandidates()
	n := len(list)
	if n == 0 {
		return nil
	}
	var next *View
	i := slices.Index(list, v.Root().focus)
	switch {
	case i >= 0:
		next = list[(i+step+n)%n]
	case step > 0:
		next = list[0]
	default:
		next = list[n-1]
	}
	next.SetFocus()
	return next
}
