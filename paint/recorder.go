// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"cogentcore.org/uicore/math32"
)

// OpKinds are the kinds of drawing operations recorded by a [Recorder].
type OpKinds int32

const (
	OpFillRect OpKinds = iota
	OpStrokeRect
	OpLine
	OpImage
	OpText
)

var opNames = [...]string{"fill", "stroke", "line", "image", "text"}

func (k OpKinds) String() string {
	if k < 0 || int(k) >= len(opNames) {
		return fmt.Sprintf("OpKinds(%d)", int(k))
	}
	return opNames[k]
}

// Op is one recorded drawing operation. Its geometry is in surface
// coordinates, with the transform at the time of the call applied.
type Op struct {
	Kind OpKinds

	// Box is the transformed rectangle: the rect for fills and strokes,
	// the destination for images, the endpoints for lines, and the
	// baseline origin (as Min) for text.
	Box math32.Box2

	// Clip is the clip rectangle in effect; empty if none.
	Clip math32.Box2

	Width float32
	Color color.Color
	Text  string
	Image image.Image
}

func (op Op) String() string {
	switch op.Kind {
	case OpText:
		return fmt.Sprintf("%s %q at %v", op.Kind, op.Text, op.Box.Min)
	case OpLine:
		return fmt.Sprintf("%s %v-%v", op.Kind, op.Box.Min, op.Box.Max)
	}
	return fmt.Sprintf("%s %v", op.Kind, op.Box)
}

// Recorder is a [Surface] that records drawing operations instead of
// rendering them, for inspecting render traversals in tests.
// It measures text with its [MonoMeasurer].
type Recorder struct {
	MonoMeasurer

	// Ops are the recorded operations in call order.
	Ops []Op

	transform math32.Matrix2
	clips     []math32.Box2
}

// NewRecorder returns a new recorder measuring text with the given measurer.
func NewRecorder(mm MonoMeasurer) *Recorder {
	return &Recorder{MonoMeasurer: mm, transform: math32.Identity2()}
}

func (r *Recorder) Transform() math32.Matrix2 {
	return r.transform
}

func (r *Recorder) SetTransform(m math32.Matrix2) {
	r.transform = m
}

func (r *Recorder) clip() math32.Box2 {
	if len(r.clips) == 0 {
		return math32.Box2{}
	}
	return r.clips[len(r.clips)-1]
}

func (r *Recorder) PushClip(b math32.Box2) {
	cb := b.MulMatrix2(r.transform)
	if len(r.clips) > 0 {
		cb = cb.Intersect(r.clip())
	}
	r.clips = append(r.clips, cb)
}

func (r *Recorder) PopClip() {
	if len(r.clips) > 0 {
		r.clips = r.clips[:len(r.clips)-1]
	}
}

// ClipDepth returns the number of pushed clips.
func (r *Recorder) ClipDepth() int {
	return len(r.clips)
}

func (r *Recorder) add(op Op) {
	op.Clip = r.clip()
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) FillRect(b math32.Box2, c color.Color) {
	r.add(Op{Kind: OpFillRect, Box: b.MulMatrix2(r.transform), Color: c})
}

func (r *Recorder) StrokeRect(b math32.Box2, width float32, c color.Color) {
	r.add(Op{Kind: OpStrokeRect, Box: b.MulMatrix2(r.transform), Width: width, Color: c})
}

func (r *Recorder) DrawLine(a, b math32.Vector2, width float32, c color.Color) {
	box := math32.Box2{Min: r.transform.MulVector2AsPoint(a), Max: r.transform.MulVector2AsPoint(b)}
	r.add(Op{Kind: OpLine, Box: box, Width: width, Color: c})
}

func (r *Recorder) DrawImage(img image.Image, dst math32.Box2) {
	r.add(Op{Kind: OpImage, Box: dst.MulMatrix2(r.transform), Image: img})
}

func (r *Recorder) DrawText(ts *TextStyle, pos math32.Vector2, text string) {
	p := r.transform.MulVector2AsPoint(pos)
	r.add(Op{Kind: OpText, Box: math32.Box2{Min: p, Max: p}, Color: ts.TextColor(), Text: text})
}

// Texts returns the text of all recorded text operations.
func (r *Recorder) Texts() []string {
	var ts []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			ts = append(ts, op.Text)
		}
	}
	return ts
}

// Reset clears the recorded operations and the clip stack, and
// resets the transform to the identity.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.clips = nil
	r.transform = math32.Identity2()
}

// Clear discards the recorded operations, as everything drawn before
// is covered.
func (r *Recorder) Clear(c color.Color) {
	r.Reset()
}

func (r *Recorder) String() string {
	var sb strings.Builder
	for _, op := range r.Ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
