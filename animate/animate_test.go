// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroup(t *testing.T) {
	var vals []float32
	ended := 0
	var g Group
	g.Start(Animation{
		From: 10, To: 20, Duration: 100 * time.Millisecond,
		Setter: func(v float32) { vals = append(vals, v) },
		OnEnd:  func() { ended++ },
	})
	t0 := time.Unix(1000, 0)
	g.Update(t0)
	g.Update(t0.Add(50 * time.Millisecond))
	assert.True(t, g.IsActive())
	g.Update(t0.Add(150 * time.Millisecond))
	assert.Equal(t, []float32{10, 15, 20}, vals)
	assert.Equal(t, 1, ended)
	assert.False(t, g.IsActive())

	g.Update(t0.Add(time.Second))
	assert.Len(t, vals, 3)
}

func TestGroupStop(t *testing.T) {
	calls := 0
	ended := false
	var g Group
	g.Start(Animation{To: 1, Duration: time.Second, Setter: func(float32) { calls++ }, OnEnd: func() { ended = true }})
	g.Update(time.Unix(0, 0))
	g.Stop()
	g.Update(time.Unix(5, 0))
	assert.Equal(t, 1, calls)
	assert.False(t, ended)
	assert.Equal(t, 0, g.Len())
}

func TestZeroDuration(t *testing.T) {
	var got float32
	var g Group
	g.Start(Animation{From: 1, To: 3, Setter: func(v float32) { got = v }})
	g.Update(time.Unix(0, 0))
	assert.Equal(t, float32(3), got)
	assert.False(t, g.IsActive())
}

func TestChained(t *testing.T) {
	var g Group
	var got []float32
	g.Start(Animation{From: 0, To: 1, Setter: func(v float32) { got = append(got, v) }, OnEnd: func() {
		g.Start(Animation{From: 5, To: 6, Setter: func(v float32) { got = append(got, v) }})
	}})
	g.Update(time.Unix(0, 0))
	assert.Equal(t, []float32{1}, got)
	assert.True(t, g.IsActive())
	g.Update(time.Unix(1, 0))
	assert.Equal(t, []float32{1, 6}, got)
}

func TestScheduler(t *testing.T) {
	now := time.Unix(100, 0)
	s := NewScheduler()
	s.Now = func() time.Time { return now }
	var a, b Group
	var va, vb float32
	s.Start(&a, Animation{From: 0, To: 10, Duration: 2 * time.Second, Easing: Linear, Setter: func(v float32) { va = v }})
	s.Start(&b, Animation{From: 0, To: 1, Duration: time.Second, Easing: EaseIn, Setter: func(v float32) { vb = v }})
	s.Start(&b, Animation{From: 0, To: 1, Duration: time.Second})
	assert.True(t, s.IsActive())

	assert.True(t, s.Update())
	now = now.Add(500 * time.Millisecond)
	assert.True(t, s.Update())
	assert.Equal(t, float32(2.5), va)
	assert.Equal(t, float32(0.25), vb)

	now = now.Add(time.Second)
	assert.True(t, s.Update())
	assert.Equal(t, float32(1), vb)
	assert.False(t, b.IsActive())

	now = now.Add(10 * time.Second)
	assert.False(t, s.Update())
	assert.Equal(t, float32(10), va)
	assert.False(t, s.IsActive())
}

func TestEasing(t *testing.T) {
	for _, f := range []func(float32) float32{Linear, EaseIn, EaseOut, EaseInOut, Smoothstep} {
		assert.Equal(t, float32(0), f(0))
		assert.Equal(t, float32(1), f(1))
	}
	assert.Equal(t, float32(0.5), EaseInOut(0.5))
	assert.Equal(t, float32(0.5), Smoothstep(0.5))
	a := Animation{From: 2, To: 4}
	assert.Equal(t, float32(4), a.Value(7))
	assert.Equal(t, float32(2), a.Value(-1))
}

func TestSchedulerMove(t *testing.T) {
	s1, s2 := NewScheduler(), NewScheduler()
	var g, idle Group
	var v float32
	s1.Start(&g, Animation{From: 0, To: 4, Duration: time.Second, Setter: func(x float32) { v = x }})
	s2.Add(&idle)
	assert.False(t, s2.Has(&idle), "nothing running")

	s1.Remove(&g)
	s2.Add(&g)
	s2.Add(&g)
	assert.False(t, s1.Has(&g))
	assert.False(t, s1.IsActive())
	now := time.Unix(100, 0)
	s2.Tick(now)
	assert.True(t, s2.Tick(now.Add(time.Second/2)))
	assert.Equal(t, float32(2), v)
	assert.True(t, g.IsActive(), "removing keeps the animations")
}
