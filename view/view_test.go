// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/uicore/events"
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/paint"
	"cogentcore.org/uicore/styles"
	"cogentcore.org/uicore/styles/units"
)

// mm gives runes an advance of 8 and lines an ascent of 12 and a descent of 4.
var mm = paint.NewMonoMeasurer(16)

func named(name string) *View {
	return New().SetName(name)
}

// sized returns a view with an explicit content size.
func sized(name string, w, h float32) *View {
	v := named(name)
	v.UpdateStyle(func(st *styles.Box) {
		st.Width = units.Px(w)
		st.Height = units.Px(h)
	})
	return v
}

// layoutRoot gives the root a content box of the size and lays it out.
func layoutRoot(root *View, w, h float32) {
	root.SetGeometry(styles.NewGeometry(&root.style, math32.B2(0, 0, w, h)))
	root.Layout(mm)
}

// checkDirtyClosure asserts that every view needing layout has a
// parent needing layout.
func checkDirtyClosure(t *testing.T, root *View) {
	t.Helper()
	root.WalkDown(func(n *View) bool {
		if n.NeedsLayout() && n.Parent() != nil {
			assert.True(t, n.Parent().NeedsLayout(), "parent of %v", n)
		}
		return Continue
	})
}

func allClean(root *View) bool {
	clean := true
	root.WalkDown(func(n *View) bool {
		if n.NeedsLayout() {
			clean = false
		}
		return Continue
	})
	return clean
}

func TestAddSubview(t *testing.T) {
	root := named("root")
	a := named("a")
	var added []*View
	root.OnSubviewAdded = func(sub *View) { added = append(added, sub) }

	root.AddSubview(a)
	root.AddSubview(nil)
	assert.Equal(t, []*View{a}, root.Subviews())
	assert.Equal(t, []*View{a}, added)
	assert.Same(t, root, a.Parent())
	assert.Same(t, root, a.Root())
	assert.True(t, a.NeedsLayout())
	assert.True(t, root.NeedsLayout())
	assert.True(t, root.NeedsRender())
	assert.Equal(t, "/root/a", a.Path())
	assert.Equal(t, 0, a.IndexInParent())
	assert.Equal(t, -1, root.IndexInParent())

	b := New()
	a.AddSubview(b)
	assert.Equal(t, "/root/a/0", b.Path())
	assert.True(t, b.IsDescendantOf(root))
	assert.False(t, root.IsDescendantOf(b))
}

func TestAddSubviewPanics(t *testing.T) {
	root := named("root")
	a := named("a")
	b := named("b")
	root.AddSubview(a)
	a.AddSubview(b)

	assert.Panics(t, func() { root.AddSubview(b) }, "already attached")
	assert.Panics(t, func() { b.AddSubview(root) }, "ancestor")
	assert.Panics(t, func() { b.AddSubview(b) }, "self")
}

func TestAddSubviewInit(t *testing.T) {
	root := New()
	l := &Label{text: "x"}
	root.AddSubview(l)
	assert.Same(t, l, l.This)
	assert.Equal(t, 1, root.NumSubviews())
	assert.Nil(t, root.Subview(1))
}

func TestRemoveFromSuper(t *testing.T) {
	root := named("root")
	a := named("a")
	b := named("b")
	c := named("c")
	root.AddSubview(a)
	root.AddSubview(b)
	root.AddSubview(c)
	layoutRoot(root, 100, 100)
	require.True(t, allClean(root))

	var removed *View
	root.OnSubviewRemoved = func(sub *View) { removed = sub }
	b.RemoveFromSuper()
	assert.Equal(t, []*View{a, c}, root.Subviews())
	assert.Nil(t, b.Parent())
	assert.Same(t, b, removed)
	assert.True(t, root.NeedsLayout())

	// attach followed by detach leaves the parent as it was
	before := append([]*View(nil), root.Subviews()...)
	d := New()
	root.AddSubview(d)
	d.RemoveFromSuper()
	assert.Equal(t, before, root.Subviews())

	// detaching a root does nothing
	root.RemoveFromSuper()
	assert.Nil(t, root.Parent())
}

func TestRemoveClearsRootPointers(t *testing.T) {
	root := named("root")
	a := named("a")
	b := named("b")
	root.AddSubview(a)
	a.AddSubview(b)
	b.SetFocusPolicy(FocusAccept).SetTabIndex(1)
	b.SetFocus()
	root.SetOwnerView(b)
	root.SetProximityView(b)

	lost := 0
	b.On(events.AtTarget, events.FocusLost, func(events.Event) { lost++ })
	a.RemoveFromSuper()
	assert.Nil(t, root.FocusView())
	assert.Nil(t, root.OwnerView())
	assert.Nil(t, root.ProximityView())
	assert.Equal(t, 1, lost)

	// root state does not follow a view into another tree
	other := New()
	a.SetFocus()
	assert.Same(t, a, a.FocusView())
	other.AddSubview(a)
	assert.Nil(t, other.FocusView())
}

func TestDirtyClosure(t *testing.T) {
	root := named("root")
	var all []*View
	parent := root
	for i := 0; i < 4; i++ {
		v := New()
		parent.AddSubview(v)
		all = append(all, v)
		sib := New()
		parent.AddSubview(sib)
		all = append(all, sib)
		parent = v
	}
	layoutRoot(root, 100, 100)
	assert.True(t, allClean(root))
	assert.True(t, root.NeedsRender())
	root.Render(paint.NewRecorder(mm))
	assert.False(t, root.NeedsRender())

	for i, v := range all {
		v.SetNeedsLayout()
		checkDirtyClosure(t, root)
		assert.True(t, root.NeedsLayout())
		assert.True(t, root.NeedsRender())
		if i%2 == 0 {
			v.SetHidden(true)
			checkDirtyClosure(t, root)
		}
		layoutRoot(root, 100, 100)
		assert.True(t, allClean(root), "after %d", i)
		root.Render(paint.NewRecorder(mm))
	}
}

func TestSetHidden(t *testing.T) {
	root := New()
	a := sized("a", 10, 10)
	root.AddSubview(a)
	layoutRoot(root, 100, 100)

	a.SetHidden(false)
	assert.False(t, root.NeedsLayout(), "no change")
	a.SetHidden(true)
	assert.True(t, a.IsHidden())
	assert.True(t, root.NeedsLayout())
	layoutRoot(root, 100, 100)
	assert.True(t, allClean(root))
	assert.Equal(t, math32.B2(0, 0, 10, 10), a.Geometry().Content, "geometry is kept")
}

func TestSetGeometry(t *testing.T) {
	root := New()
	a := New()
	root.AddSubview(a)
	layoutRoot(root, 100, 100)
	root.Render(paint.NewRecorder(mm))

	g := a.Geometry()
	a.SetGeometry(g)
	assert.False(t, a.NeedsLayout())
	assert.False(t, root.NeedsRender())

	g.Content = math32.B2(1, 1, 5, 5)
	a.SetGeometry(g)
	assert.True(t, a.NeedsLayout())
	assert.True(t, root.NeedsLayout())
}

func TestStyle(t *testing.T) {
	root := New()
	a := New()
	root.AddSubview(a)
	layoutRoot(root, 100, 100)

	a.UpdateStyle(func(st *styles.Box) { st.Padding.SetAll(-3) })
	assert.Equal(t, float32(0), a.Style().Padding.Top, "clamped")
	assert.True(t, root.NeedsLayout())

	layoutRoot(root, 100, 100)
	require.NoError(t, a.SetStyleCSS("layout: hbox; width: 20px"))
	assert.Equal(t, styles.LayoutHBox, a.Style().Layout)
	assert.Equal(t, units.Px(20), a.Style().Width)
	assert.True(t, root.NeedsLayout())

	assert.Error(t, a.SetStyleCSS("width: wide"))

	st := a.Style()
	st.Height = units.Px(7)
	a.SetStyle(st)
	assert.Equal(t, units.Px(7), a.Style().Height)
}

func TestApplySheet(t *testing.T) {
	sh, err := styles.ParseSheet(`
		* { padding: 1px }
		.big { height: 40px }
		#title { width: 30px }
	`)
	require.NoError(t, err)

	root := New()
	title := named("title").AddClass("big")
	other := New()
	root.AddSubview(title)
	root.AddSubview(other)
	assert.True(t, title.HasClass("big"))
	assert.Equal(t, []string{"big"}, title.AddClass("big").Classes())

	require.NoError(t, root.ApplySheet(sh))
	assert.Equal(t, units.Px(30), title.Style().Width)
	assert.Equal(t, units.Px(40), title.Style().Height)
	assert.Equal(t, float32(1), title.Style().Padding.Left)
	assert.True(t, other.Style().Width.IsAuto())
	assert.Equal(t, float32(1), other.Style().Padding.Left)

	layoutRoot(root, 100, 100)
	assert.Equal(t, math32.B2(1, 1, 31, 41), title.Geometry().Content)
}

func TestWalk(t *testing.T) {
	root := named("root")
	a := named("a")
	b := named("b")
	c := named("c")
	root.AddSubview(a)
	a.AddSubview(b)
	root.AddSubview(c)

	var names []string
	root.WalkDown(func(n *View) bool {
		names = append(names, n.Name())
		return n != a
	})
	assert.Equal(t, []string{"root", "a", "c"}, names)

	names = nil
	reached := b.WalkUp(func(n *View) bool {
		names = append(names, n.Name())
		return Continue
	})
	assert.True(t, reached)
	assert.Equal(t, []string{"b", "a", "root"}, names)
	assert.Equal(t, []*View{root, a}, b.ancestors())
}
