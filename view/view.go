// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view provides a retained-mode tree of rectangular views:
// box-model styles and geometry, a set of layout strategies, rendering
// onto a [paint.Surface], hit testing, three-phase event dispatch,
// tab-index focus navigation, cursors and animations. A [Window] drives
// a tree from an event source.
//
// A view tree is not safe for concurrent use: all mutation, layout,
// rendering and dispatch happen on one goroutine.
package view

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/uicore/animate"
	"cogentcore.org/uicore/base/errors"
	"cogentcore.org/uicore/cursors"
	"cogentcore.org/uicore/events"
	"cogentcore.org/uicore/paint"
	"cogentcore.org/uicore/styles"
)

// Viewer is the interface implemented by all views. Types that embed
// [View] override the methods below to customize measurement and
// content rendering; all other behavior comes from the embedded View.
type Viewer interface {

	// AsView returns the embedded [View].
	AsView() *View

	// PreferredWidth returns the content width the view wants when
	// it is not constrained.
	PreferredWidth(s paint.TextMeasurer) float32

	// PreferredHeight returns the content height the view wants at
	// the given content width.
	PreferredHeight(s paint.TextMeasurer, width float32) float32

	// FirstBaseline returns the offset of the first baseline from the
	// top of the content box at the given content width.
	FirstBaseline(s paint.TextMeasurer, width float32) float32

	// LastBaseline returns the offset of the last baseline from the
	// top of the content box at the given content width.
	LastBaseline(s paint.TextMeasurer, width float32) float32

	// RenderContent draws the content of the view, in its content
	// coordinates, after the box and before the subviews.
	RenderContent(s paint.Surface)

	// LocalRoot returns whether the view is rendered by itself rather
	// than as part of its parent, as is the case for views shown in
	// their own layer.
	LocalRoot() bool
}

// View is a node in the view tree. Use [New] to make a plain view,
// or embed View in another type and call [View.Init] with the outer value.
type View struct {

	// This is the outermost value embedding this View, through which
	// the overridable [Viewer] methods are called.
	This Viewer

	// OnSubviewAdded is called after a subview has been attached.
	OnSubviewAdded func(sub *View)

	// OnSubviewRemoved is called after a subview has been detached.
	OnSubviewRemoved func(sub *View)

	name    string
	classes []string

	parent   *View
	subviews []*View

	style    styles.Box
	geom     styles.Geometry
	hidden   bool
	needsLay bool

	focusPolicy FocusPolicies
	tabIndex    int
	cursor      cursors.Spec

	listeners  events.Listeners
	animations animate.Group

	// state held by the root only
	needsRender bool
	focus       *View
	owner       *View
	proximity   *View
	scheduler   *animate.Scheduler
}

// New returns a new plain view that needs layout.
func New() *View {
	v := &View{}
	v.Init(v)
	return v
}

// Init sets the outer value of the view. It must be called once for
// types that embed [View], typically in their constructor.
func (v *View) Init(this Viewer) {
	v.This = this
	v.needsLay = true
	v.needsRender = true
}

func (v *View) AsView() *View { return v }

func (v *View) String() string {
	return v.Path()
}

// Name returns the name of the view, used by style sheets and for debugging.
func (v *View) Name() string { return v.name }

// SetName sets the name of the view.
func (v *View) SetName(name string) *View {
	v.name = name
	return v
}

// Path returns the slash separated names of the view and its
// ancestors; unnamed views show their index in the parent.
func (v *View) Path() string {
	var parts []string
	for cur := v; cur != nil; cur = cur.parent {
		nm := cur.name
		if nm == "" {
			if cur.parent == nil {
				nm = "root"
			} else {
				nm = fmt.Sprintf("%d", cur.IndexInParent())
			}
		}
		parts = append(parts, nm)
	}
	slices.Reverse(parts)
	return "/" + strings.Join(parts, "/")
}

// Parent returns the parent view, or nil for a root.
func (v *View) Parent() *View { return v.parent }

// IsRoot returns whether the view has no parent.
func (v *View) IsRoot() bool { return v.parent == nil }

// Root returns the root of the tree containing the view.
func (v *View) Root() *View {
	r := v
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Subviews returns the subviews in order. The returned slice must not
// be modified.
func (v *View) Subviews() []*View { return v.subviews }

// NumSubviews returns the number of subviews.
func (v *View) NumSubviews() int { return len(v.subviews) }

// Subview returns the subview at the given index, or nil if the index
// is out of range.
func (v *View) Subview(i int) *View {
	if i < 0 || i >= len(v.subviews) {
		return nil
	}
	return v.subviews[i]
}

// IndexInParent returns the index of the view in its parent, or -1
// for a root.
func (v *View) IndexInParent() int {
	if v.parent == nil {
		return -1
	}
	return slices.Index(v.parent.subviews, v)
}

// IsDescendantOf returns whether the view is a or inside of a.
func (v *View) IsDescendantOf(a *View) bool {
	for cur := v; cur != nil; cur = cur.parent {
		if cur == a {
			return true
		}
	}
	return false
}

// AddSubview appends the view to the subviews and marks both as
// needing layout. Running animations of the added subtree move to the
// scheduler of this tree. Adding nil does nothing. It panics if the view
// already has a parent or if it is this view or one of its ancestors.
func (v *View) AddSubview(sub Viewer) {
	if sub == nil {
		return
	}
	sv := sub.AsView()
	if sv == nil {
		return
	}
	if sv.This == nil {
		sv.Init(sub)
	}
	if sv.parent != nil {
		panic(fmt.Sprintf("view.AddSubview: %v is already a subview of %v", sv, sv.parent))
	}
	if v.IsDescendantOf(sv) {
		panic(fmt.Sprintf("view.AddSubview: adding %v to %v would make a cycle", sv, v))
	}
	from := sv.treeScheduler()
	v.subviews = append(v.subviews, sv)
	sv.parent = v
	// root only state does not survive attachment
	sv.focus, sv.owner, sv.proximity, sv.scheduler = nil, nil, nil, nil
	sv.moveAnimations(from, v.treeScheduler())
	sv.needsRender = false
	sv.SetNeedsLayout()
	v.SetNeedsLayout()
	if v.OnSubviewAdded != nil {
		v.OnSubviewAdded(sv)
	}
}

// RemoveFromSuper detaches the view from its parent, which is marked
// as needing layout. Focus, owner and proximity pointers of the old
// root that refer into the detached subtree are cleared; a view
// losing the focus this way receives a focus lost event. Running
// animations of the subtree move to the scheduler of the detached
// tree, [animate.Default] unless one is set on it.
// It does nothing for a root.
func (v *View) RemoveFromSuper() {
	super := v.parent
	if super == nil {
		return
	}
	root := super.Root()
	var lost *View
	if root.focus != nil && root.focus.IsDescendantOf(v) {
		lost = root.focus
		root.focus = nil
	}
	if root.owner != nil && root.owner.IsDescendantOf(v) {
		root.owner = nil
	}
	if root.proximity != nil && root.proximity.IsDescendantOf(v) {
		root.proximity = nil
	}
	if i := slices.Index(super.subviews, v); i >= 0 {
		super.subviews = slices.Delete(super.subviews, i, i+1)
	}
	v.parent = nil
	v.needsRender = true
	v.moveAnimations(root.treeScheduler(), v.treeScheduler())
	super.SetNeedsLayout()
	if lost != nil {
		lost.DispatchEvent(events.NewFocusChange(false), true)
	}
	if super.OnSubviewRemoved != nil {
		super.OnSubviewRemoved(v)
	}
}

// IsHidden returns whether the view is hidden. Hidden views and
// their subviews are not laid out, rendered, hit or focused.
func (v *View) IsHidden() bool { return v.hidden }

// SetHidden sets whether the view is hidden, marking it as needing
// layout if that changed. Hidden subtrees are not laid out, so showing
// a view marks its whole subtree.
func (v *View) SetHidden(hidden bool) {
	if v.hidden == hidden {
		return
	}
	v.hidden = hidden
	if !hidden {
		v.WalkDown(func(n *View) bool {
			n.needsLay = true
			return Continue
		})
	}
	v.SetNeedsLayout()
}

// NeedsLayout returns whether the view needs layout.
func (v *View) NeedsLayout() bool { return v.needsLay }

// SetNeedsLayout marks the view and all of its ancestors as needing
// layout, and the root as needing render.
func (v *View) SetNeedsLayout() {
	cur := v
	for {
		cur.needsLay = true
		if cur.parent == nil {
			cur.needsRender = true
			return
		}
		cur = cur.parent
	}
}

// NeedsRender returns whether the tree of the view needs to be rendered.
func (v *View) NeedsRender() bool { return v.Root().needsRender }

// SetNeedsRender marks the tree of the view as needing render.
func (v *View) SetNeedsRender() { v.Root().needsRender = true }

// Geometry returns the geometry computed by the last layout.
func (v *View) Geometry() styles.Geometry { return v.geom }

// SetGeometry sets the geometry of the view. If the content box
// changed, the view is marked as needing layout.
func (v *View) SetGeometry(g styles.Geometry) {
	if g == v.geom {
		return
	}
	changed := g.Content != v.geom.Content
	v.geom = g
	if changed {
		v.SetNeedsLayout()
	} else {
		v.SetNeedsRender()
	}
}

// setLayoutGeometry sets the geometry computed by the layout of the
// parent, marking only the view itself when its content size changed.
// The parent lays the view out right after.
func (v *View) setLayoutGeometry(g styles.Geometry) {
	if g.Content.Size() != v.geom.Content.Size() {
		v.needsLay = true
	}
	v.geom = g
}

// Style returns a copy of the style.
func (v *View) Style() styles.Box { return v.style }

// SetStyle replaces the style and marks the view as needing layout.
// Malformed values are clamped.
func (v *View) SetStyle(st styles.Box) {
	st.Clamp()
	v.style = st
	v.SetNeedsLayout()
}

// UpdateStyle calls the function to modify the style in place and
// marks the view as needing layout.
func (v *View) UpdateStyle(fun func(st *styles.Box)) {
	fun(&v.style)
	v.style.Clamp()
	v.SetNeedsLayout()
}

// SetStyleCSS applies CSS declarations such as "width: 20px; padding: 4px"
// to the style and marks the view as needing layout. Valid declarations
// are applied even when others fail.
func (v *View) SetStyleCSS(decls string) error {
	err := v.style.SetCSS(decls)
	v.SetNeedsLayout()
	return err
}

// Classes returns the style classes of the view.
func (v *View) Classes() []string { return v.classes }

// AddClass adds style classes to the view.
func (v *View) AddClass(classes ...string) *View {
	for _, c := range classes {
		if !slices.Contains(v.classes, c) {
			v.classes = append(v.classes, c)
		}
	}
	return v
}

// HasClass returns whether the view has the style class.
func (v *View) HasClass(class string) bool {
	return slices.Contains(v.classes, class)
}

// ApplySheet applies the matching rules of the sheet to the style of
// the view and all of its subviews, marking the styled views as
// needing layout. It returns the joined errors of invalid declarations.
func (v *View) ApplySheet(sh *styles.Sheet) error {
	var errs []error
	v.WalkDown(func(n *View) bool {
		matched, err := sh.Apply(&n.style, n.name, n.classes)
		if err != nil {
			errs = append(errs, err)
		}
		if matched {
			n.SetNeedsLayout()
		}
		return Continue
	})
	if len(errs) > 0 {
		slog.Debug("view: style sheet errors", "view", v, "count", len(errs))
	}
	return errors.Join(errs...)
}

// SetScheduler sets the animation scheduler of the tree, which must
// be set on the root. Without one, [animate.Default] is used.
// Running animations of the tree move to the new scheduler.
func (v *View) SetScheduler(s *animate.Scheduler) {
	root := v.Root()
	from := root.treeScheduler()
	root.scheduler = s
	root.moveAnimations(from, root.treeScheduler())
}
