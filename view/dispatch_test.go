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
	"cogentcore.org/uicore/styles"
	"cogentcore.org/uicore/styles/units"
)

// dispatchTree returns root > a > b, with a inset by a margin of 10
// and b placed 20 below the top of a.
func dispatchTree() (root, a, b *View) {
	root = named("root")
	a = named("a")
	a.UpdateStyle(func(st *styles.Box) { st.Margin.SetAll(10) })
	spacer := sized("spacer", 10, 20)
	b = named("b")
	b.UpdateStyle(func(st *styles.Box) { st.Height = units.Px(30) })
	a.AddSubview(spacer)
	a.AddSubview(b)
	root.AddSubview(a)
	layoutRoot(root, 200, 200)
	return
}

// trace records the path of press events through the views.
func trace(log *[]string, views ...*View) {
	for _, v := range views {
		v := v
		for _, ph := range []events.Phases{events.Capturing, events.AtTarget, events.Bubbling} {
			v.On(ph, events.PointerPress, func(ev events.Event) {
				*log = append(*log, v.Name()+":"+ev.AsBase().Phase().String())
			})
		}
	}
}

func press(pos math32.Vector2) *events.Pointer {
	return events.NewPointer(events.PointerPress, pos, events.Left, 0)
}

func TestDispatchPhases(t *testing.T) {
	root, a, b := dispatchTree()
	var log []string
	trace(&log, root, a, b)

	ev := press(math32.Vec2(50, 50))
	b.DispatchEvent(ev, false)
	assert.Equal(t, []string{
		"root:Capturing", "a:Capturing", "b:AtTarget", "a:Bubbling", "root:Bubbling",
	}, log)
	assert.Equal(t, any(b), ev.Target())
	assert.Nil(t, ev.CurrentTarget())
	assert.Equal(t, events.NoPhase, ev.Phase())

	log = nil
	root.DispatchEvent(press(math32.Vector2{}), false)
	assert.Equal(t, []string{"root:AtTarget"}, log)
}

func TestDispatchStop(t *testing.T) {
	root, a, b := dispatchTree()
	var log []string
	trace(&log, root, a, b)
	b.On(events.AtTarget, events.PointerPress, func(ev events.Event) {
		ev.AsBase().StopPropagation()
	})
	b.On(events.AtTarget, events.PointerPress, func(ev events.Event) {
		log = append(log, "b:after")
	})

	b.DispatchEvent(press(math32.Vector2{}), false)
	assert.Equal(t, []string{"root:Capturing", "a:Capturing", "b:AtTarget", "b:after"}, log)

	log = nil
	slot := root.On(events.Capturing, events.PointerPress, func(ev events.Event) {
		ev.AsBase().StopPropagation()
	})
	b.DispatchEvent(press(math32.Vector2{}), false)
	assert.Equal(t, []string{"root:Capturing"}, log)

	log = nil
	slot.Disconnect()
	ev := press(math32.Vector2{})
	a.DispatchEvent(ev, false)
	assert.Equal(t, []string{"root:Capturing", "a:AtTarget", "root:Bubbling"}, log)
	assert.False(t, ev.IsPropagationStopped())
}

func TestDispatchNoPropagation(t *testing.T) {
	root, a, b := dispatchTree()
	var log []string
	trace(&log, root, a, b)
	b.DispatchEvent(press(math32.Vector2{}), true)
	assert.Equal(t, []string{"b:AtTarget"}, log)
}

func TestDispatchLocal(t *testing.T) {
	root, a, b := dispatchTree()
	require.Equal(t, math32.B2(0, 20, 180, 50), b.Geometry().Content)

	var locals []math32.Vector2
	for _, v := range []*View{root, a, b} {
		v.OnPointer(events.Capturing, events.PointerPress, func(ev *events.Pointer) {
			locals = append(locals, ev.Local)
		})
		v.OnPointer(events.AtTarget, events.PointerPress, func(ev *events.Pointer) {
			locals = append(locals, ev.Local)
		})
	}
	b.DispatchEvent(press(math32.Vec2(50, 50)), false)
	assert.Equal(t, []math32.Vector2{
		math32.Vec2(50, 50), math32.Vec2(40, 40), math32.Vec2(40, 20),
	}, locals)
}

func TestDispatchKey(t *testing.T) {
	root, _, b := dispatchTree()
	var got []*events.Key
	root.OnKey(events.Bubbling, events.KeyPress, func(ev *events.Key) {
		got = append(got, ev)
	})
	root.OnKey(events.Bubbling, events.KeyRelease, func(ev *events.Key) {
		got = append(got, ev)
	})
	ev := events.NewKey(events.KeyPress, 0, 'x', 0)
	b.DispatchEvent(ev, false)
	require.Len(t, got, 1)
	assert.Same(t, ev, got[0])
	assert.Equal(t, 1, root.Listeners().Len(events.Bubbling, events.KeyPress))
}

func TestFindViewAt(t *testing.T) {
	root, a, b := dispatchTree()
	assert.Same(t, b, root.FindViewAt(math32.Vec2(50, 50)))
	assert.Same(t, a.Subview(0), root.FindViewAt(math32.Vec2(15, 15)))
	assert.Same(t, a, root.FindViewAt(math32.Vec2(150, 15)))
	assert.Nil(t, root.FindViewAt(math32.Vec2(5, 5)), "in the margin of a")
	assert.Nil(t, root.FindViewAt(math32.Vec2(50, 150)))

	b.SetHidden(true)
	assert.Same(t, a, root.FindViewAt(math32.Vec2(50, 50)))
}

func TestFindViewAtOverlap(t *testing.T) {
	root := withLayout(styles.LayoutNone)
	first := New()
	second := New()
	root.AddSubview(first)
	root.AddSubview(second)
	first.SetGeometry(styles.NewGeometry(&first.style, math32.B2(0, 0, 50, 50)))
	second.SetGeometry(styles.NewGeometry(&second.style, math32.B2(25, 25, 75, 75)))
	layoutRoot(root, 100, 100)

	assert.Same(t, first, root.FindViewAt(math32.Vec2(30, 30)))
	assert.Same(t, second, root.FindViewAt(math32.Vec2(60, 60)))
}

func TestScreenPos(t *testing.T) {
	root, a, b := dispatchTree()
	p := math32.Vec2(3, 4)
	assert.Equal(t, math32.Vec2(13, 34), b.ToScreenPos(p))
	assert.Equal(t, p, b.FromScreenPos(b.ToScreenPos(p)))
	assert.Equal(t, p, root.ToScreenPos(p))
	assert.Equal(t, math32.B2(10, 30, 190, 60), b.ScreenBox())
	assert.Equal(t, math32.B2(0, 0, 180, 50), a.ScreenBox().Translate(math32.Vec2(-10, -10)))
	assert.Equal(t, math32.B2(0, 0, 200, 200), root.ScreenBox())
}
