// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/uicore/animate"
	"cogentcore.org/uicore/base/errors"
	"cogentcore.org/uicore/cursors"
	"cogentcore.org/uicore/cursors/cursorimg"
	"cogentcore.org/uicore/events"
	"cogentcore.org/uicore/events/key"
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/paint"
	"cogentcore.org/uicore/settings"
	"cogentcore.org/uicore/styles"
)

// Window drives a view tree: it routes input events to the views,
// advances their animations, and lays out and renders the tree onto
// its surface when needed. The root view fills the window.
//
// Pointer events are given in window coordinates; the window converts
// them to screen coordinates, the content coordinates of the root,
// before dispatching them.
type Window struct {

	// OnCursor is called when the cursor to show changes.
	OnCursor func(spec cursors.Spec)

	root      *View
	surface   paint.Surface
	settings  *settings.Settings
	watcher   *settings.Watcher
	scheduler *animate.Scheduler
	size      math32.Vector2
	cursor    cursors.Spec
	cursors   cursorimg.Cache
	active    bool
	closed    bool
}

// NewWindow returns a window of the given size showing the root view
// on the surface, with the default settings. It panics if the root
// has a parent.
func NewWindow(root Viewer, s paint.Surface, size math32.Vector2) *Window {
	rv := root.AsView()
	if rv.This == nil {
		rv.Init(root)
	}
	if rv.parent != nil {
		panic(fmt.Sprintf("view.NewWindow: %v is not a root", rv))
	}
	w := &Window{root: rv, surface: s, scheduler: animate.NewScheduler()}
	rv.SetScheduler(w.scheduler)
	w.ApplySettings(settings.Default())
	w.Resize(size)
	return w
}

// Root returns the root view.
func (w *Window) Root() *View { return w.root }

// Surface returns the surface the tree is rendered onto.
func (w *Window) Surface() paint.Surface { return w.surface }

// Scheduler returns the animation scheduler of the tree.
func (w *Window) Scheduler() *animate.Scheduler { return w.scheduler }

// Settings returns the settings in use.
func (w *Window) Settings() *settings.Settings { return w.settings }

// Size returns the size of the window.
func (w *Window) Size() math32.Vector2 { return w.size }

// IsActive returns whether the window was last reported active.
func (w *Window) IsActive() bool { return w.active }

// IsClosed returns whether a close request was accepted.
func (w *Window) IsClosed() bool { return w.closed }

// ApplySettings uses the settings for the window: the log level,
// keyboard navigation, frame interval, default cursor and font scale.
func (w *Window) ApplySettings(st *settings.Settings) {
	st.Validate()
	st.Apply()
	w.settings = st
	if fs, ok := w.surface.(paint.FontScaler); ok {
		fs.SetFontScale(st.FontScale)
		w.root.SetNeedsLayout()
	}
}

// WatchSettings reloads the settings file whenever it changes and
// applies the new settings at the next frame of [Window.Run]. Any
// previous watch is stopped.
func (w *Window) WatchSettings(filename string) error {
	sw, err := settings.Watch(filename)
	if err != nil {
		return err
	}
	w.UnwatchSettings()
	w.watcher = sw
	return nil
}

// UnwatchSettings stops watching the settings file.
func (w *Window) UnwatchSettings() {
	if w.watcher == nil {
		return
	}
	errors.Log(w.watcher.Close())
	w.watcher = nil
}

// updateSettings applies settings reloaded by the watcher, if any.
// It returns whether it applied them.
func (w *Window) updateSettings() bool {
	if w.watcher == nil {
		return false
	}
	select {
	case st := <-w.watcher.Changes():
		w.ApplySettings(st)
		slog.Info("view: settings reloaded", "file", w.watcher.File())
		return true
	default:
		return false
	}
}

// Resize sets the size of the window and the geometry of the root,
// whose margin box fills it.
func (w *Window) Resize(size math32.Vector2) {
	w.size = size
	nc := w.root.style.NonContent()
	content := size.Sub(nc.Size()).Max(math32.Vector2{})
	w.root.SetGeometry(styles.GeometryFromMarginBox(&w.root.style, math32.Vector2{}, content))
}

// Cursor returns the cursor to show.
func (w *Window) Cursor() cursors.Spec { return w.cursor }

// SetCursor sets the cursor to show, calling [Window.OnCursor] if it changed.
func (w *Window) SetCursor(spec cursors.Spec) {
	if spec == w.cursor {
		return
	}
	w.cursor = spec
	if w.OnCursor != nil {
		w.OnCursor(spec)
	}
}

// CustomCursor returns the image of the current cursor scaled to the
// size in pixels, for a custom cursor. Scaled images are cached.
func (w *Window) CustomCursor(size int) (*cursorimg.Cursor, error) {
	if w.cursor.Mode != cursors.CustomImage {
		return nil, fmt.Errorf("view.Window: cursor %v is not custom", w.cursor)
	}
	return w.cursors.Get(w.cursor.Custom, size)
}

// Dispatch routes the event to the views. Pointer events go to the
// view capturing the pointer, or else to the deepest view under the
// pointer, and update the view under the pointer and the cursor. A
// press captures the pointer for the view it goes to until the release.
// Key events go to the focus view, or else the root; an unhandled Tab
// press moves the focus. Window events go to the root, and a close
// request whose propagation is not stopped closes the window.
func (w *Window) Dispatch(ev events.Event) {
	switch e := ev.(type) {
	case *events.Pointer:
		w.dispatchPointer(e)
	case *events.Key:
		w.dispatchKey(e)
	case *events.WindowResize:
		w.Resize(e.Size)
		w.root.DispatchEvent(e, false)
	case *events.ActivationChange:
		w.active = e.Active
		w.root.DispatchEvent(e, false)
	case *events.CloseRequest:
		w.root.DispatchEvent(e, false)
		if !e.IsPropagationStopped() {
			w.closed = true
		}
	case *events.FocusChange:
		if f := w.root.focus; f != nil {
			f.DispatchEvent(e, true)
		}
	}
}

func (w *Window) dispatchPointer(e *events.Pointer) {
	e.Pos = e.Pos.Sub(w.root.geom.Content.Min)
	if e.Type == events.PointerLeave {
		w.setProximity(nil, e)
		return
	}
	hit := w.root.FindViewAt(e.Pos)
	if hit == nil {
		hit = w.root
	}
	w.setProximity(hit, e)
	target := hit
	if owner := w.root.owner; owner != nil {
		target = owner
	}
	w.SetCursor(target.ResolveCursor(w.settings.Cursor()))

	switch e.Type {
	case events.PointerEnter, events.PointerProximity:
	case events.PointerPress:
		w.root.owner = target
		target.DispatchEvent(e, false)
	case events.PointerRelease:
		target.DispatchEvent(e, false)
		w.root.owner = nil
	default:
		target.DispatchEvent(e, false)
	}
}

// setProximity records the view under the pointer. When it changes,
// the old view gets a leave event and the new one an enter event,
// without propagation, followed by a proximity event with propagation.
func (w *Window) setProximity(hit *View, e *events.Pointer) {
	old, changed := w.root.SetProximityView(hit)
	if !changed {
		return
	}
	if old != nil {
		old.DispatchEvent(events.NewPointer(events.PointerLeave, e.Pos, events.NoButton, e.Mods), true)
	}
	if hit != nil {
		hit.DispatchEvent(events.NewPointer(events.PointerEnter, e.Pos, events.NoButton, e.Mods), true)
		hit.DispatchEvent(events.NewPointer(events.PointerProximity, e.Pos, events.NoButton, e.Mods), false)
	}
}

func (w *Window) dispatchKey(e *events.Key) {
	target := w.root.focus
	if target == nil {
		target = w.root
	}
	target.DispatchEvent(e, false)
	if e.Type != events.KeyPress || e.Code != key.CodeTab || !w.settings.KeyboardNavigation || e.IsPropagationStopped() {
		return
	}
	if key.HasAnyModifier(e.Mods, key.Shift) {
		w.root.FocusPrev()
	} else {
		w.root.FocusNext()
	}
}

// Update advances the animations to the time, lays out the tree and
// renders it if it needs render. It returns whether it rendered.
func (w *Window) Update(now time.Time) bool {
	w.scheduler.Tick(now)
	w.root.Layout(w.surface)
	if !w.root.needsRender {
		return false
	}
	if c, ok := w.surface.(paint.Clearer); ok {
		c.Clear(color.Transparent)
	}
	w.root.Render(w.surface)
	return true
}

// Run dispatches the events of the source and updates the window every
// frame interval until the window is closed, returning nil, or the
// context is done, returning its error. Settings reloaded from a
// watched file are applied before each update.
func (w *Window) Run(ctx context.Context, src events.Source) error {
	ticker := time.NewTicker(w.settings.FrameInterval)
	defer ticker.Stop()
	slog.Debug("view: window running", "size", w.size, "frame", w.settings.FrameInterval)
	for {
		for ev := src.NextEvent(); ev != nil; ev = src.NextEvent() {
			w.Dispatch(ev)
		}
		if w.closed {
			return nil
		}
		if w.updateSettings() {
			ticker.Reset(w.settings.FrameInterval)
		}
		w.Update(w.now())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *Window) now() time.Time {
	if w.scheduler.Now != nil {
		return w.scheduler.Now()
	}
	return time.Now()
}
