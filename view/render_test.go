// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/paint"
	"cogentcore.org/uicore/styles"
	"cogentcore.org/uicore/styles/units"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// layer is a view rendered on its own.
type layer struct {
	View
}

func newLayer() *layer {
	l := &layer{}
	l.Init(l)
	return l
}

func (l *layer) LocalRoot() bool { return true }

func TestRender(t *testing.T) {
	root := New()
	root.UpdateStyle(func(st *styles.Box) { st.Background.Color = red })
	a := New()
	a.UpdateStyle(func(st *styles.Box) {
		st.Margin.SetAll(10)
		st.Height = units.Px(20)
		st.Background.Color = blue
	})
	hi := NewLabel("hi")
	a.AddSubview(hi)
	hidden := sized("hidden", 10, 10)
	hidden.UpdateStyle(func(st *styles.Box) { st.Background.Color = blue })
	hidden.SetHidden(true)
	lr := newLayer()
	lr.UpdateStyle(func(st *styles.Box) {
		st.Height = units.Px(10)
		st.Background.Color = red
	})
	root.AddSubview(a)
	root.AddSubview(hidden)
	root.AddSubview(lr)
	layoutRoot(root, 100, 100)

	rec := paint.NewRecorder(mm)
	require.True(t, root.NeedsRender())
	root.Render(rec)
	assert.False(t, root.NeedsRender())
	assert.Equal(t, math32.Identity2(), rec.Transform())

	require.Len(t, rec.Ops, 3, rec.String())
	assert.Equal(t, paint.OpFillRect, rec.Ops[0].Kind)
	assert.Equal(t, math32.B2(0, 0, 100, 100), rec.Ops[0].Box)
	assert.Equal(t, color.Color(red), rec.Ops[0].Color)
	assert.Equal(t, paint.OpFillRect, rec.Ops[1].Kind)
	assert.Equal(t, math32.B2(10, 10, 90, 30), rec.Ops[1].Box)
	assert.Equal(t, paint.OpText, rec.Ops[2].Kind)
	assert.Equal(t, "hi", rec.Ops[2].Text)
	assert.Equal(t, math32.Vec2(10, 22), rec.Ops[2].Box.Min)

	// the layer renders itself at its place in the parent
	rec.Reset()
	lr.Render(rec)
	require.Len(t, rec.Ops, 1)
	assert.Equal(t, math32.B2(0, 40, 100, 50), rec.Ops[0].Box)
}

func TestRenderBorder(t *testing.T) {
	root := New()
	a := sized("a", 20, 20)
	a.UpdateStyle(func(st *styles.Box) {
		st.Border.Width.SetAll(2)
		st.Border.Color.SetAll(blue)
	})
	root.AddSubview(a)
	layoutRoot(root, 100, 100)

	rec := paint.NewRecorder(mm)
	root.Render(rec)
	require.Len(t, rec.Ops, 1, rec.String())
	assert.Equal(t, paint.OpStrokeRect, rec.Ops[0].Kind)
	assert.Equal(t, math32.B2(1, 1, 23, 23), rec.Ops[0].Box)
	assert.Equal(t, float32(2), rec.Ops[0].Width)
}

func TestRenderRootOffset(t *testing.T) {
	root := New()
	root.UpdateStyle(func(st *styles.Box) {
		st.Padding.SetAll(4)
		st.Background.Color = red
	})
	a := sized("a", 10, 10)
	a.UpdateStyle(func(st *styles.Box) { st.Background.Color = blue })
	root.AddSubview(a)
	root.SetGeometry(styles.GeometryFromMarginBox(&root.style, math32.Vector2{}, math32.Vec2(92, 92)))
	root.Layout(mm)

	rec := paint.NewRecorder(mm)
	root.Render(rec)
	require.Len(t, rec.Ops, 2)
	assert.Equal(t, math32.B2(0, 0, 100, 100), rec.Ops[0].Box)
	assert.Equal(t, math32.B2(4, 4, 14, 14), rec.Ops[1].Box)
}
