// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/styles"
	"cogentcore.org/uicore/styles/units"
)

func withLayout(l styles.Layouts) *View {
	v := New()
	v.UpdateStyle(func(st *styles.Box) { st.Layout = l })
	return v
}

func content(v Viewer) math32.Box2 {
	return v.AsView().Geometry().Content
}

func TestBlockLayout(t *testing.T) {
	root := New()
	a := New()
	a.UpdateStyle(func(st *styles.Box) { st.Height = units.Px(30) })
	b := New()
	b.UpdateStyle(func(st *styles.Box) { st.Height = units.Px(50) })
	root.AddSubview(a)
	root.AddSubview(b)
	layoutRoot(root, 200, 100)

	assert.Equal(t, math32.B2(0, 0, 200, 30), content(a))
	assert.Equal(t, math32.B2(0, 30, 200, 80), content(b))
	assert.Equal(t, float32(80), root.PreferredHeight(mm, 200))
	assert.True(t, allClean(root))
}

func TestBlockMargins(t *testing.T) {
	root := New()
	a := New()
	a.UpdateStyle(func(st *styles.Box) {
		st.Margin.SetAll(8)
		st.Height = units.Px(10)
	})
	b := sized("b", 40, 10)
	c := New()
	c.UpdateStyle(func(st *styles.Box) {
		st.Width = units.Pct(50)
		st.Height = units.Px(4)
	})
	root.AddSubview(a)
	root.AddSubview(b)
	root.AddSubview(c)
	layoutRoot(root, 100, 100)

	assert.Equal(t, math32.B2(8, 8, 92, 18), content(a))
	assert.Equal(t, math32.B2(0, 26, 40, 36), content(b), "explicit width wins")
	assert.Equal(t, math32.B2(0, 36, 50, 40), content(c), "percent of the parent")
	assert.Equal(t, float32(50), root.PreferredWidth(mm), "widest margin box")
}

func TestBlockPadding(t *testing.T) {
	root := New()
	p := New()
	p.UpdateStyle(func(st *styles.Box) {
		st.Padding.SetAll(5)
		st.Border.Width.SetAll(1)
	})
	a := New()
	a.UpdateStyle(func(st *styles.Box) { st.Height = units.Px(20) })
	p.AddSubview(a)
	root.AddSubview(p)
	layoutRoot(root, 100, 100)

	assert.Equal(t, math32.B2(6, 6, 94, 26), content(p))
	assert.Equal(t, math32.B2(0, 0, 88, 20), content(a))
	assert.Equal(t, math32.B2(0, 0, 100, 32), p.Geometry().BorderBox())
}

func TestInlineWrap(t *testing.T) {
	root := withLayout(styles.LayoutInline)
	a := sized("a", 20, 10)
	b := sized("b", 20, 10)
	c := sized("c", 20, 10)
	root.AddSubview(a)
	root.AddSubview(b)
	root.AddSubview(c)
	layoutRoot(root, 50, 100)

	assert.Equal(t, math32.B2(0, 0, 20, 10), content(a))
	assert.Equal(t, math32.B2(20, 0, 40, 10), content(b))
	assert.Equal(t, math32.B2(0, 10, 20, 20), content(c))
	assert.Equal(t, float32(60), root.PreferredWidth(mm))
	assert.Equal(t, float32(20), root.PreferredHeight(mm, 50))
	assert.Equal(t, float32(10), root.PreferredHeight(mm, 60))
}

func TestInlineBaseline(t *testing.T) {
	root := withLayout(styles.LayoutInline)
	l := NewLabel("ab")
	box := sized("box", 20, 30)
	root.AddSubview(l)
	root.AddSubview(box)
	layoutRoot(root, 100, 100)

	// the label baseline at 12 meets the bottom of the box at 30
	assert.Equal(t, math32.B2(0, 18, 16, 34), content(l))
	assert.Equal(t, math32.B2(16, 0, 36, 30), content(box))
	assert.Equal(t, float32(34), root.PreferredHeight(mm, 100))
	assert.Equal(t, float32(30), root.FirstBaseline(mm, 100))
	assert.Equal(t, float32(30), root.LastBaseline(mm, 100))
}

func TestInlineNarrow(t *testing.T) {
	root := withLayout(styles.LayoutInline)
	wide := NewLabel("abcdefghij")
	root.AddSubview(wide)
	layoutRoot(root, 50, 100)
	assert.Equal(t, math32.B2(0, 0, 50, 16), content(wide), "narrowed to the line")
}

func TestVBoxGrow(t *testing.T) {
	root := withLayout(styles.LayoutVBox)
	a := New()
	a.UpdateStyle(func(st *styles.Box) {
		st.Flex.Basis = units.Px(50)
		st.Flex.Grow = 1
	})
	b := New()
	b.UpdateStyle(func(st *styles.Box) {
		st.Flex.Basis = units.Px(50)
		st.Flex.Grow = 3
	})
	root.AddSubview(a)
	root.AddSubview(b)
	layoutRoot(root, 100, 200)

	assert.Equal(t, math32.B2(0, 0, 100, 75), content(a))
	assert.Equal(t, math32.B2(0, 75, 100, 200), content(b))
	assert.Equal(t, float32(100), root.PreferredHeight(mm, 100))
}

func TestVBoxShrink(t *testing.T) {
	root := withLayout(styles.LayoutVBox)
	a := New()
	a.UpdateStyle(func(st *styles.Box) {
		st.Flex.Basis = units.Px(50)
		st.Flex.Shrink = 1
	})
	b := New()
	b.UpdateStyle(func(st *styles.Box) {
		st.Flex.Basis = units.Px(30)
		st.Flex.Shrink = 1
	})
	root.AddSubview(a)
	root.AddSubview(b)
	layoutRoot(root, 100, 60)

	assert.Equal(t, math32.B2(0, 0, 100, 37.5), content(a))
	assert.Equal(t, math32.B2(0, 37.5, 100, 60), content(b))
}

func TestVBoxLabels(t *testing.T) {
	root := withLayout(styles.LayoutVBox)
	a := NewLabel("one")
	b := NewLabel("two")
	b.UpdateStyle(func(st *styles.Box) { st.Width = units.Px(30) })
	root.AddSubview(a)
	root.AddSubview(b)
	layoutRoot(root, 100, 100)

	assert.Equal(t, math32.B2(0, 0, 100, 16), content(a))
	assert.Equal(t, math32.B2(0, 16, 30, 32), content(b))
	assert.Equal(t, float32(12), root.FirstBaseline(mm, 100))
	assert.Equal(t, float32(28), root.LastBaseline(mm, 100))
	assert.Equal(t, float32(30), root.PreferredWidth(mm))
}

func TestHBox(t *testing.T) {
	root := withLayout(styles.LayoutHBox)
	a := New()
	a.UpdateStyle(func(st *styles.Box) { st.Width = units.Px(30) })
	b := New()
	b.UpdateStyle(func(st *styles.Box) {
		st.Flex.Basis = units.Px(20)
		st.Flex.Grow = 1
	})
	root.AddSubview(a)
	root.AddSubview(b)
	layoutRoot(root, 100, 40)

	assert.Equal(t, math32.B2(0, 0, 30, 40), content(a))
	assert.Equal(t, math32.B2(30, 0, 100, 40), content(b))
	assert.Equal(t, float32(50), root.PreferredWidth(mm))

	c := sized("c", 10, 25)
	root.AddSubview(c)
	layoutRoot(root, 100, 40)
	assert.Equal(t, math32.B2(90, 0, 100, 25), content(c), "explicit height wins")
	assert.Equal(t, math32.B2(30, 0, 90, 40), content(b))
	assert.Equal(t, float32(25), root.PreferredHeight(mm, 100))
}

func TestPositioned(t *testing.T) {
	root := New()
	p := New()
	p.UpdateStyle(func(st *styles.Box) { st.Margin.SetAll(10) })
	abs := sized("abs", 20, 20)
	abs.UpdateStyle(func(st *styles.Box) {
		st.Position = styles.PositionAbsolute
		st.Inset.Left = units.Px(10)
		st.Inset.Top = units.Px(5)
	})
	p.AddSubview(abs)
	root.AddSubview(p)

	stretch := New()
	stretch.UpdateStyle(func(st *styles.Box) {
		st.Position = styles.PositionAbsolute
		st.Inset.Left = units.Px(20)
		st.Inset.Right = units.Px(20)
		st.Height = units.Px(10)
	})
	root.AddSubview(stretch)

	right := sized("right", 20, 10)
	right.UpdateStyle(func(st *styles.Box) {
		st.Position = styles.PositionAbsolute
		st.Inset.Right = units.Px(10)
		st.Inset.Bottom = units.Pct(10)
	})
	root.AddSubview(right)
	layoutRoot(root, 200, 100)

	assert.Equal(t, math32.B2(10, 10, 190, 10), content(p), "absolute views are not in flow")
	assert.Equal(t, math32.B2(0, -5, 20, 15), content(abs))
	assert.Equal(t, math32.Vec2(10, 5), abs.ToScreenPos(math32.Vector2{}))
	assert.Equal(t, math32.B2(20, 0, 180, 10), content(stretch))
	assert.Equal(t, math32.B2(170, 80, 190, 90), content(right))
	assert.True(t, allClean(root))

	abs.UpdateStyle(func(st *styles.Box) { st.Inset.Left = units.Pct(50) })
	layoutRoot(root, 200, 100)
	assert.Equal(t, math32.B2(90, -5, 110, 15), content(abs))
	assert.True(t, allClean(root))
}

func TestPositionedNested(t *testing.T) {
	root := New()
	outer := sized("outer", 100, 50)
	outer.UpdateStyle(func(st *styles.Box) {
		st.Position = styles.PositionAbsolute
		st.Inset.Left = units.Px(40)
		st.Inset.Top = units.Px(40)
	})
	inner := sized("inner", 10, 10)
	inner.UpdateStyle(func(st *styles.Box) {
		st.Position = styles.PositionAbsolute
		st.Inset.Right = units.Px(0)
		st.Inset.Top = units.Px(0)
	})
	outer.AddSubview(inner)
	root.AddSubview(outer)
	layoutRoot(root, 200, 200)

	assert.Equal(t, math32.B2(40, 40, 140, 90), content(outer))
	assert.Equal(t, math32.B2(90, 0, 100, 10), content(inner), "relative to the absolute parent")
	assert.Equal(t, math32.Vec2(130, 40), inner.ToScreenPos(math32.Vector2{}))
}

func TestLayoutNone(t *testing.T) {
	root := withLayout(styles.LayoutNone)
	a := New()
	root.AddSubview(a)
	g := styles.NewGeometry(&a.style, math32.B2(5, 5, 15, 15))
	a.SetGeometry(g)
	layoutRoot(root, 100, 100)

	assert.Equal(t, math32.B2(5, 5, 15, 15), content(a))
	assert.Equal(t, float32(0), root.PreferredWidth(mm))
	assert.Equal(t, float32(0), root.PreferredHeight(mm, 100))
	assert.True(t, allClean(root))
}

func TestHiddenOutOfFlow(t *testing.T) {
	root := New()
	a := sized("a", 10, 10)
	h := sized("h", 10, 50)
	b := sized("b", 10, 10)
	root.AddSubview(a)
	root.AddSubview(h)
	root.AddSubview(b)
	h.SetHidden(true)
	layoutRoot(root, 100, 100)
	assert.Equal(t, math32.B2(0, 10, 10, 20), content(b))
	assert.Equal(t, float32(20), root.PreferredHeight(mm, 100))

	h.SetHidden(false)
	assert.True(t, h.NeedsLayout())
	layoutRoot(root, 100, 100)
	assert.Equal(t, math32.B2(0, 10, 10, 60), content(h))
	assert.Equal(t, math32.B2(0, 60, 10, 70), content(b))
}

func TestChildlessBaseline(t *testing.T) {
	v := sized("v", 10, 24)
	assert.Equal(t, float32(24), v.FirstBaseline(mm, 10))
	assert.Equal(t, float32(24), v.LastBaseline(mm, 10))
}

func TestLayoutOnlyDirty(t *testing.T) {
	root := New()
	a := New()
	l := NewLabel("abc")
	a.AddSubview(l)
	root.AddSubview(a)
	layoutRoot(root, 100, 100)
	assert.Equal(t, math32.B2(0, 0, 100, 16), content(l))

	l.SetText("abcdef")
	assert.True(t, l.NeedsLayout())
	assert.True(t, a.NeedsLayout())
	root.Layout(mm)
	assert.True(t, allClean(root))
	assert.Equal(t, float32(48), l.PreferredWidth(mm))
}
