// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import "slices"

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkDown calls the function on the view and all of its subviews in
// depth-first pre-order. Returning [Break] skips the subviews of the
// current view. The subview lists are copied before they are visited,
// so the function may modify the tree.
func (v *View) WalkDown(fun func(n *View) bool) {
	if !fun(v) {
		return
	}
	for _, sv := range append([]*View(nil), v.subviews...) {
		sv.WalkDown(fun)
	}
}

// WalkUp calls the function on the view and then on its ancestors up
// to the root, stopping when the function returns [Break].
// It returns whether the root was reached.
func (v *View) WalkUp(fun func(n *View) bool) bool {
	for cur := v; cur != nil; cur = cur.parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// ancestors returns the ancestors of the view from the root down to
// its parent.
func (v *View) ancestors() []*View {
	var path []*View
	for cur := v.parent; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}
