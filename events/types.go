// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Phases are the stages of event propagation through the view tree.
type Phases int32

const (
	// NoPhase is the phase of an event that is not being dispatched.
	NoPhase Phases = iota

	// Capturing runs from the root down to the parent of the target.
	Capturing

	// AtTarget runs on the target itself.
	AtTarget

	// Bubbling runs from the parent of the target up to the root.
	Bubbling

	phasesN
)

var phaseNames = [...]string{"NoPhase", "Capturing", "AtTarget", "Bubbling"}

func (p Phases) String() string {
	if p < 0 || p >= phasesN {
		return "Phases(" + strconv.Itoa(int(p)) + ")"
	}
	return phaseNames[p]
}

// Kinds are the notification channels events are routed to.
// Each kind has its own list of listeners per phase.
type Kinds int32

const (
	// Activation is sent to the root when the window gains or loses
	// activation.
	Activation Kinds = iota

	// Close is sent to the root when the window is asked to close.
	Close

	// Resize is sent to the root when the window changes size.
	Resize

	// FocusGained is sent to a view that receives the focus.
	FocusGained

	// FocusLost is sent to a view that loses the focus.
	FocusLost

	// PointerEnter is sent to a view that the pointer moved into.
	PointerEnter

	// PointerLeave is sent to a view that the pointer moved out of.
	PointerLeave

	// PointerMove is sent to the view under the pointer when it moves.
	PointerMove

	// PointerPress is sent when a pointer button is pressed.
	PointerPress

	// PointerRelease is sent when a pointer button is released.
	PointerRelease

	// PointerDoubleClick is sent when a button is pressed twice in
	// quick succession.
	PointerDoubleClick

	// PointerProximity is sent when the view nearest to the pointer
	// changes, such as when a pen hovers.
	PointerProximity

	// KeyPress is sent to the focused view when a key is pressed.
	KeyPress

	// KeyRelease is sent to the focused view when a key is released.
	KeyRelease

	kindsN
)

var kindNames = [...]string{
	"Activation", "Close", "Resize", "FocusGained", "FocusLost",
	"PointerEnter", "PointerLeave", "PointerMove", "PointerPress",
	"PointerRelease", "PointerDoubleClick", "PointerProximity",
	"KeyPress", "KeyRelease",
}

func (k Kinds) String() string {
	if k < 0 || k >= kindsN {
		return "Kinds(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsPointer returns whether the kind is one of the pointer kinds.
func (k Kinds) IsPointer() bool {
	return k >= PointerEnter && k <= PointerProximity
}

// IsKey returns whether the kind is one of the key kinds.
func (k Kinds) IsKey() bool {
	return k == KeyPress || k == KeyRelease
}
