// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"log/slog"

	"cogentcore.org/uicore/events"
)

// On adds a listener for events of the given kind reaching the view in
// the given phase. Listeners are called in the order they were added.
// The returned slot disconnects the listener.
func (v *View) On(phase events.Phases, kind events.Kinds, fun func(ev events.Event)) *events.Slot {
	return v.listeners.Add(phase, kind, fun)
}

// OnPointer adds a listener for pointer events of the given kind.
func (v *View) OnPointer(phase events.Phases, kind events.Kinds, fun func(ev *events.Pointer)) *events.Slot {
	return v.On(phase, kind, func(ev events.Event) {
		if pe, ok := ev.(*events.Pointer); ok {
			fun(pe)
		}
	})
}

// OnKey adds a listener for key events of the given kind.
func (v *View) OnKey(phase events.Phases, kind events.Kinds, fun func(ev *events.Key)) *events.Slot {
	return v.On(phase, kind, func(ev events.Event) {
		if ke, ok := ev.(*events.Key); ok {
			fun(ke)
		}
	})
}

// OnFocusChange adds a listener called when the view gains or loses
// the focus. It returns the slots of both listeners.
func (v *View) OnFocusChange(fun func(gained bool)) (gained, lost *events.Slot) {
	gained = v.On(events.AtTarget, events.FocusGained, func(events.Event) { fun(true) })
	lost = v.On(events.AtTarget, events.FocusLost, func(events.Event) { fun(false) })
	return
}

// Listeners returns the listeners of the view.
func (v *View) Listeners() *events.Listeners {
	return &v.listeners
}

// DispatchEvent sends the event with the view as its target. With
// noPropagation, only the listeners of the view are called, in the
// at-target phase. Otherwise the event goes from the root down to the
// parent in the capturing phase, then to the view, and then back up to
// the root in the bubbling phase, stopping before the next view once
// propagation is stopped. The path is fixed when dispatch starts.
func (v *View) DispatchEvent(ev events.Event, noPropagation bool) {
	b := ev.AsBase()
	b.SetTarget(v.This)
	defer b.SetCurrent(nil, events.NoPhase)

	if noPropagation {
		v.handleEvent(ev, events.AtTarget)
		return
	}
	path := v.ancestors()
	for _, a := range path {
		if b.IsPropagationStopped() {
			return
		}
		a.handleEvent(ev, events.Capturing)
	}
	if b.IsPropagationStopped() {
		return
	}
	v.handleEvent(ev, events.AtTarget)
	for i := len(path) - 1; i >= 0; i-- {
		if b.IsPropagationStopped() {
			return
		}
		path[i].handleEvent(ev, events.Bubbling)
	}
}

// handleEvent calls the listeners of the view for the event in the phase.
func (v *View) handleEvent(ev events.Event, phase events.Phases) {
	ev.AsBase().SetCurrent(v.This, phase)
	switch e := ev.(type) {
	case *events.Pointer:
		e.Local = v.FromScreenPos(e.Pos)
	case *events.Key, *events.FocusChange, *events.ActivationChange,
		*events.CloseRequest, *events.WindowResize:
	default:
		slog.Error("view: unknown event type", "event", ev)
		return
	}
	v.listeners.Call(phase, ev)
}
