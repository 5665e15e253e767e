// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Source delivers input events to the event loop.
// NextEvent returns nil when no event is pending.
type Source interface {
	NextEvent() Event
}

// Queue is the standard [Source]: a FIFO queue that platform code may
// Send to from any goroutine, while the event loop receives with
// NextEvent. An event that only supersedes the last pending one
// replaces it instead of queueing behind it: a pointer move after a
// move with the same button and modifiers, or a resize after a resize.
// The zero value is ready to use.
type Queue struct {
	mu     sync.Mutex
	events []Event

	// coalesced counts the events replaced by later ones.
	coalesced int
}

// NewQueue returns a new empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Send adds the event to the end of the queue, or replaces the last
// pending event with it if it supersedes that one.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.events); n > 0 && supersedes(ev, q.events[n-1]) {
		q.events[n-1] = ev
		q.coalesced++
		return
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the first event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}
	return ev
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Coalesced returns the number of events that were replaced by later
// ones before being received.
func (q *Queue) Coalesced() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.coalesced
}

// supersedes returns whether ev makes the pending event last useless.
func supersedes(ev, last Event) bool {
	switch e := ev.(type) {
	case *Pointer:
		l, ok := last.(*Pointer)
		return ok && e.Type == PointerMove && l.Type == PointerMove &&
			e.Button == l.Button && e.Mods == l.Mods
	case *WindowResize:
		_, ok := last.(*WindowResize)
		return ok
	}
	return false
}
