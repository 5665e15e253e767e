// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import "fmt"

// OwnerView returns the view that captured the pointer of the tree,
// or nil. Pointer events go to the owner until it is released.
func (v *View) OwnerView() *View {
	return v.Root().owner
}

// SetOwnerView sets the view capturing the pointer of the tree.
// A nil view releases it. It panics if the owner is in another tree.
func (v *View) SetOwnerView(owner *View) {
	root := v.Root()
	root.checkInTree("SetOwnerView", owner)
	root.owner = owner
}

// ProximityView returns the view last found under the pointer, or nil.
func (v *View) ProximityView() *View {
	return v.Root().proximity
}

// SetProximityView sets the view under the pointer. It returns the
// previous proximity view and whether it changed. It panics if the
// view is in another tree.
func (v *View) SetProximityView(prox *View) (*View, bool) {
	root := v.Root()
	root.checkInTree("SetProximityView", prox)
	old := root.proximity
	if old == prox {
		return old, false
	}
	root.proximity = prox
	return old, true
}

// checkInTree panics if n is neither nil nor in the tree of v.
func (v *View) checkInTree(op string, n *View) {
	if n != nil && !n.IsDescendantOf(v.Root()) {
		panic(fmt.Sprintf("view.%s: %v is not in the tree of %v", op, n, v.Root()))
	}
}
