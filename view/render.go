// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/uicore/paint"
)

// Render draws the box of the view, then its content and then its
// visible subviews that are not local roots, with the content box
// origin translated to the origin of the surface. The surface
// transform is restored afterwards. Rendering the root clears its
// needs render flag.
func (v *View) Render(s paint.Surface) {
	if v.parent == nil {
		v.needsRender = false
	}
	if v.hidden {
		return
	}
	paint.DrawBox(s, &v.style, v.geom)
	old := s.Transform()
	origin := v.geom.Content.Min
	s.SetTransform(old.Translate(origin.X, origin.Y))
	v.This.RenderContent(s)
	for _, sv := range v.subviews {
		if sv.hidden || sv.This.LocalRoot() {
			continue
		}
		sv.Render(s)
	}
	s.SetTransform(old)
}

// RenderContent draws nothing for a plain view.
func (v *View) RenderContent(s paint.Surface) {}

// LocalRoot returns false for a plain view.
func (v *View) LocalRoot() bool { return false }
