// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the closed set of UI events dispatched through
// the view tree, their propagation phases and notification kinds,
// the per-phase listener lists of a view, and the event source and
// queue used to deliver them to the event loop.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/uicore/events/key"
	"cogentcore.org/uicore/math32"
)

// Event is the interface for all events. The set of events is closed:
// every event type embeds [Base], and the event kinds are the
// [ActivationChange], [CloseRequest], [WindowResize], [FocusChange],
// [Pointer] and [Key] types defined in this package.
type Event interface {
	fmt.Stringer

	// AsBase returns the propagation state shared by all events.
	AsBase() *Base

	// Kind returns the notification channel the event is routed to.
	Kind() Kinds

	sealed()
}

// Base is the propagation state of an event: the target and current
// target, the current phase and whether propagation was stopped.
// Targets are the views of the tree the event is dispatched in.
type Base struct {

	// GenTime records the time when the event was generated.
	GenTime time.Time

	target  any
	current any
	phase   Phases
	stopped bool
}

func (b *Base) AsBase() *Base { return b }

func (b *Base) sealed() {}

// Init sets the generation time to now.
func (b *Base) Init() {
	b.GenTime = time.Now()
}

// Time returns the time the event was generated.
func (b *Base) Time() time.Time {
	return b.GenTime
}

// Target returns the view the event is dispatched to.
func (b *Base) Target() any { return b.target }

// SetTarget sets the target of the event, which also resets its
// propagation state for a new dispatch.
func (b *Base) SetTarget(t any) {
	b.target = t
	b.current = nil
	b.phase = NoPhase
	b.stopped = false
}

// CurrentTarget returns the view whose listeners are being called.
func (b *Base) CurrentTarget() any { return b.current }

// SetCurrent sets the current target and phase.
func (b *Base) SetCurrent(cur any, phase Phases) {
	b.current = cur
	b.phase = phase
}

// Phase returns the current propagation phase.
func (b *Base) Phase() Phases { return b.phase }

// StopPropagation stops the event from reaching any further views.
// The remaining listeners of the current view are still called.
func (b *Base) StopPropagation() {
	b.stopped = true
}

// IsPropagationStopped returns whether [Base.StopPropagation] was called.
func (b *Base) IsPropagationStopped() bool {
	return b.stopped
}

// ActivationChange is sent when the window becomes active or inactive.
type ActivationChange struct {
	Base

	// Active is whether the window is now active.
	Active bool
}

// NewActivationChange returns a new activation change event.
func NewActivationChange(active bool) *ActivationChange {
	ev := &ActivationChange{Active: active}
	ev.Init()
	return ev
}

func (ev *ActivationChange) Kind() Kinds { return Activation }

func (ev *ActivationChange) String() string {
	return fmt.Sprintf("%v{Active: %v}", ev.Kind(), ev.Active)
}

// CloseRequest is sent when the window is asked to close.
type CloseRequest struct {
	Base
}

// NewCloseRequest returns a new close request event.
func NewCloseRequest() *CloseRequest {
	ev := &CloseRequest{}
	ev.Init()
	return ev
}

func (ev *CloseRequest) Kind() Kinds { return Close }

func (ev *CloseRequest) String() string {
	return ev.Kind().String()
}

// WindowResize is sent when the window changes size.
type WindowResize struct {
	Base

	// Size is the new size of the window.
	Size math32.Vector2
}

// NewWindowResize returns a new resize event.
func NewWindowResize(size math32.Vector2) *WindowResize {
	ev := &WindowResize{Size: size}
	ev.Init()
	return ev
}

func (ev *WindowResize) Kind() Kinds { return Resize }

func (ev *WindowResize) String() string {
	return fmt.Sprintf("%v{Size: %v}", ev.Kind(), ev.Size)
}

// FocusChange is sent to a view that gains or loses the focus.
// It is always dispatched without propagation.
type FocusChange struct {
	Base

	// Gained is whether the focus was gained rather than lost.
	Gained bool
}

// NewFocusChange returns a new focus change event.
func NewFocusChange(gained bool) *FocusChange {
	ev := &FocusChange{Gained: gained}
	ev.Init()
	return ev
}

func (ev *FocusChange) Kind() Kinds {
	if ev.Gained {
		return FocusGained
	}
	return FocusLost
}

func (ev *FocusChange) String() string {
	return ev.Kind().String()
}

// Buttons is a pointer button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonNames = [...]string{"NoButton", "Left", "Middle", "Right"}

func (b Buttons) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return fmt.Sprintf("Buttons(%d)", int(b))
	}
	return buttonNames[b]
}

// Pointer is a pointer (mouse, pen or touch) event.
type Pointer struct {
	Base

	// Type is the pointer kind of the event.
	Type Kinds

	// Pos is the position in window coordinates.
	Pos math32.Vector2

	// Local is the position in the content coordinates of the current
	// target, updated by the dispatcher for each view it visits.
	Local math32.Vector2

	// Button is the button pressed or released.
	Button Buttons

	// Mods are the modifier keys held down.
	Mods key.Modifiers
}

// NewPointer returns a new pointer event of the given kind, which must
// be one of the pointer kinds.
func NewPointer(kind Kinds, pos math32.Vector2, but Buttons, mods key.Modifiers) *Pointer {
	if !kind.IsPointer() {
		panic(fmt.Sprintf("events.NewPointer: %v is not a pointer kind", kind))
	}
	ev := &Pointer{Type: kind, Pos: pos, Local: pos, Button: but, Mods: mods}
	ev.Init()
	return ev
}

func (ev *Pointer) Kind() Kinds { return ev.Type }

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Type, ev.Button, ev.Pos, ev.Mods.ModifiersString())
}

// Key is a keyboard event.
type Key struct {
	Base

	// Type is KeyPress or KeyRelease.
	Type Kinds

	// Code is the key code.
	Code key.Codes

	// Rune is the rune of [key.CodeRune] keys.
	Rune rune

	// Mods are the modifier keys held down.
	Mods key.Modifiers
}

// NewKey returns a new key event of the given kind, which must be
// KeyPress or KeyRelease.
func NewKey(kind Kinds, code key.Codes, r rune, mods key.Modifiers) *Key {
	if !kind.IsKey() {
		panic(fmt.Sprintf("events.NewKey: %v is not a key kind", kind))
	}
	ev := &Key{Type: kind, Code: code, Rune: r, Mods: mods}
	ev.Init()
	return ev
}

func (ev *Key) Kind() Kinds { return ev.Type }

// Chord returns the key chord of the event.
func (ev *Key) Chord() key.Chord {
	return key.NewChord(ev.Rune, ev.Code, ev.Mods)
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Chord: %v}", ev.Type, ev.Chord())
}
