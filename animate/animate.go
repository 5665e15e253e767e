// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animate provides time based interpolation of float values,
// grouped per view and driven by a scheduler on the event loop.
package animate

import (
	"slices"
	"time"

	"cogentcore.org/uicore/math32"
)

// Animation interpolates a value from From to To over Duration,
// calling Setter with each new value.
type Animation struct {

	// From and To are the start and end values.
	From, To float32

	// Setter receives each interpolated value.
	Setter func(v float32)

	// Duration is the length of the animation. A zero or negative
	// duration sets the end value at the first update.
	Duration time.Duration

	// Easing maps linear progress in [0, 1] to eased progress;
	// nil means [Linear].
	Easing func(t float32) float32

	// OnEnd is called once after the end value has been set.
	// It is not called when the animation is stopped.
	OnEnd func()
}

// Value returns the value at the given linear progress in [0, 1].
func (a *Animation) Value(t float32) float32 {
	t = math32.Clamp(t, 0, 1)
	if a.Easing != nil {
		t = a.Easing(t)
	}
	return math32.Lerp(a.From, a.To, t)
}

type running struct {
	Animation

	// start is set at the first update
	start   time.Time
	started bool
	done    bool
}

// Group is the set of running animations of one view.
// The zero value is ready to use.
type Group struct {
	running []*running
}

// Start adds the animation to the group. Its clock starts at the
// next update.
func (g *Group) Start(a Animation) {
	g.running = append(g.running, &running{Animation: a})
}

// Stop removes all animations without calling their setters or
// end functions again.
func (g *Group) Stop() {
	for _, r := range g.running {
		r.done = true
	}
	g.running = nil
}

// Len returns the number of running animations.
func (g *Group) Len() int {
	return len(g.running)
}

// IsActive returns whether any animation is running.
func (g *Group) IsActive() bool {
	return len(g.running) > 0
}

// Update advances every animation to the given time, and removes and
// ends those that are finished. Setters and end functions may start
// or stop animations; animations started during the update are first
// advanced by the next update.
func (g *Group) Update(now time.Time) {
	current := slices.Clone(g.running)
	var ended []*running
	for _, r := range current {
		if r.done {
			continue
		}
		if !r.started {
			r.start = now
			r.started = true
		}
		t := float32(1)
		if r.Duration > 0 {
			t = float32(now.Sub(r.start)) / float32(r.Duration)
		}
		if r.Setter != nil {
			r.Setter(r.Value(t))
		}
		if t >= 1 && !r.done {
			r.done = true
			ended = append(ended, r)
		}
	}
	g.running = slices.DeleteFunc(g.running, func(r *running) bool { return r.done })
	for _, r := range ended {
		if r.OnEnd != nil {
			r.OnEnd()
		}
	}
}
