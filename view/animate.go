// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"time"

	"cogentcore.org/uicore/animate"
)

// Animate starts an animation of a value from one to another over the
// duration, calling the setter with each value on the ticks of the
// scheduler of the tree. The easing may be nil for linear progress,
// and onEnd may be nil. Setters typically change the style and call
// [View.SetNeedsLayout], or [View.SetNeedsRender] for visual changes.
func (v *View) Animate(from, to float32, setter func(value float32), duration time.Duration, easing func(t float32) float32, onEnd func()) {
	v.AnimateWith(animate.Animation{
		From:     from,
		To:       to,
		Setter:   setter,
		Duration: duration,
		Easing:   easing,
		OnEnd:    onEnd,
	})
}

// AnimateWith starts the animation on the view. Running animations
// follow the view when it moves to another tree.
func (v *View) AnimateWith(a animate.Animation) {
	v.treeScheduler().Start(&v.animations, a)
}

// StopAnimations stops all animations of the view without calling
// their end functions.
func (v *View) StopAnimations() {
	v.animations.Stop()
}

// IsAnimating returns whether the view has running animations.
func (v *View) IsAnimating() bool {
	return v.animations.IsActive()
}

func (v *View) treeScheduler() *animate.Scheduler {
	if s := v.Root().scheduler; s != nil {
		return s
	}
	return animate.Default
}

// moveAnimations hands the running animations of the subtree from
// one scheduler to another.
func (v *View) moveAnimations(from, to *animate.Scheduler) {
	if from == to {
		return
	}
	v.WalkDown(func(n *View) bool {
		if n.animations.IsActive() {
			from.Remove(&n.animations)
			to.Add(&n.animations)
		}
		return Continue
	})
}
