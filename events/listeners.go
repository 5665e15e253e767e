// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners holds the listener functions of one view, in separate
// lists for each propagation phase and event kind.
// The zero value is ready to use.
type Listeners struct {
	lists [phasesN][kindsN][]*Slot
}

// Slot is a registered listener, which can be disconnected.
type Slot struct {
	fun       func(ev Event)
	connected bool
}

// Disconnect removes the listener; it will not be called again,
// including by a call already in progress.
func (s *Slot) Disconnect() {
	s.connected = false
}

// IsConnected returns whether the listener is still registered.
func (s *Slot) IsConnected() bool {
	return s.connected
}

func validPhase(phase Phases) bool {
	return phase > NoPhase && phase < phasesN
}

func validKind(kind Kinds) bool {
	return kind >= 0 && kind < kindsN
}

// Add adds a listener for the given phase and kind, and returns its slot.
// It panics on an invalid phase or kind.
func (ls *Listeners) Add(phase Phases, kind Kinds, fun func(Event)) *Slot {
	if !validPhase(phase) || !validKind(kind) {
		panic("events.Listeners.Add: invalid phase " + phase.String() + " or kind " + kind.String())
	}
	s := &Slot{fun: fun, connected: true}
	ls.lists[phase][kind] = append(ls.lists[phase][kind], s)
	return s
}

// Len returns the number of connected listeners for the given phase and kind.
func (ls *Listeners) Len(phase Phases, kind Kinds) int {
	if !validPhase(phase) || !validKind(kind) {
		return 0
	}
	n := 0
	for _, s := range ls.lists[phase][kind] {
		if s.connected {
			n++
		}
	}
	return n
}

// Call calls the listeners registered for the given phase and the kind
// of the event, in the order they were added. All of them are called
// even if one stops propagation. Listeners added during the call are
// not called, and disconnected ones are dropped from the list.
func (ls *Listeners) Call(phase Phases, ev Event) {
	kind := ev.Kind()
	if !validPhase(phase) || !validKind(kind) {
		return
	}
	list := ls.lists[phase][kind]
	if len(list) == 0 {
		return
	}
	calling := make([]*Slot, len(list))
	copy(calling, list)
	for _, s := range calling {
		if s.connected {
			s.fun(ev)
		}
	}
	ls.compact(phase, kind)
}

// compact removes disconnected slots.
func (ls *Listeners) compact(phase Phases, kind Kinds) {
	list := ls.lists[phase][kind]
	n := 0
	for _, s := range list {
		if s.connected {
			list[n] = s
			n++
		}
	}
	clear(list[n:])
	ls.lists[phase][kind] = list[:n]
}

// DisconnectAll disconnects every listener.
func (ls *Listeners) DisconnectAll() {
	for p := range ls.lists {
		for k := range ls.lists[p] {
			for _, s := range ls.lists[p][k] {
				s.connected = false
			}
			ls.lists[p][k] = nil
		}
	}
}
