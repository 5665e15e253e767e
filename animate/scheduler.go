// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"slices"
	"time"
)

// Scheduler drives the groups with running animations. It is
// ticked by the event loop, on the same goroutine that mutates
// the view tree, and is not safe for concurrent use.
type Scheduler struct {

	// Now returns the current time; it defaults to [time.Now].
	Now func() time.Time

	groups []*Group
}

// Default is the scheduler used by views whose root has none set.
var Default = NewScheduler()

// NewScheduler returns a new scheduler using [time.Now].
func NewScheduler() *Scheduler {
	return &Scheduler{Now: time.Now}
}

// Start starts the animation in the group and makes sure that the
// group is ticked by the scheduler.
func (s *Scheduler) Start(g *Group, a Animation) {
	g.Start(a)
	if !slices.Contains(s.groups, g) {
		s.groups = append(s.groups, g)
	}
}

// Add makes sure that the group is ticked by the scheduler, if it
// has running animations.
func (s *Scheduler) Add(g *Group) {
	if g.IsActive() && !slices.Contains(s.groups, g) {
		s.groups = append(s.groups, g)
	}
}

// Remove stops ticking the group, leaving its animations running.
func (s *Scheduler) Remove(g *Group) {
	s.groups = slices.DeleteFunc(s.groups, func(o *Group) bool { return o == g })
}

// Has returns whether the scheduler ticks the group.
func (s *Scheduler) Has(g *Group) bool {
	return slices.Contains(s.groups, g)
}

// IsActive returns whether any group has running animations.
func (s *Scheduler) IsActive() bool {
	for _, g := range s.groups {
		if g.IsActive() {
			return true
		}
	}
	return false
}

// Tick updates every group to the given time and drops groups that
// have nothing running. It returns whether any animation is still running.
func (s *Scheduler) Tick(now time.Time) bool {
	for _, g := range slices.Clone(s.groups) {
		g.Update(now)
	}
	s.groups = slices.DeleteFunc(s.groups, func(g *Group) bool { return !g.IsActive() })
	return len(s.groups) > 0
}

// Update ticks the scheduler at the current time.
func (s *Scheduler) Update() bool {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return s.Tick(now())
}
