// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"strings"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/paint"
)

// TextAligns are the horizontal alignments of text in its box.
type TextAligns int32

const (
	AlignLeft TextAligns = iota
	AlignRight
	AlignCenter

	// AlignJustify spreads the words of the text over the width.
	AlignJustify
)

// LineBreaks determine how a single line of text that is wider than
// its box is shortened.
type LineBreaks int32

const (
	// LineBreakClip draws the text clipped to the content box.
	LineBreakClip LineBreaks = iota

	// TruncateHead replaces the start of the text with [Ellipsis].
	TruncateHead

	// TruncateTail replaces the end of the text with [Ellipsis].
	TruncateTail

	// TruncateMiddle replaces the middle of the text with [Ellipsis].
	TruncateMiddle
)

// Ellipsis marks the text removed by truncation.
var Ellipsis = "..."

// Label is a view showing a single line of text.
type Label struct {
	View

	text      string
	align     TextAligns
	lineBreak LineBreaks
	textStyle paint.TextStyle
}

// NewLabel returns a new label with the text.
func NewLabel(text string) *Label {
	l := &Label{text: text}
	l.Init(l)
	return l
}

// Text returns the text of the label.
func (l *Label) Text() string { return l.text }

// SetText sets the text and marks the label as needing layout.
func (l *Label) SetText(text string) *Label {
	if text != l.text {
		l.text = text
		l.SetNeedsLayout()
	}
	return l
}

// TextStyle returns the text style.
func (l *Label) TextStyle() paint.TextStyle { return l.textStyle }

// SetTextStyle sets the text style and marks the label as needing layout.
func (l *Label) SetTextStyle(ts paint.TextStyle) *Label {
	l.textStyle = ts
	l.SetNeedsLayout()
	return l
}

// Align returns the text alignment.
func (l *Label) Align() TextAligns { return l.align }

// SetAlign sets the text alignment.
func (l *Label) SetAlign(a TextAligns) *Label {
	l.align = a
	l.SetNeedsRender()
	return l
}

// LineBreak returns how text wider than the label is shortened.
func (l *Label) LineBreak() LineBreaks { return l.lineBreak }

// SetLineBreak sets how text wider than the label is shortened.
func (l *Label) SetLineBreak(lb LineBreaks) *Label {
	l.lineBreak = lb
	l.SetNeedsRender()
	return l
}

func (l *Label) metrics(s paint.TextMeasurer) paint.TextMetrics {
	return s.MeasureText(&l.textStyle, l.text)
}

func (l *Label) PreferredWidth(s paint.TextMeasurer) float32 {
	return l.metrics(s).Advance
}

func (l *Label) PreferredHeight(s paint.TextMeasurer, width float32) float32 {
	return l.metrics(s).Height()
}

func (l *Label) FirstBaseline(s paint.TextMeasurer, width float32) float32 {
	return l.metrics(s).Ascent
}

func (l *Label) LastBaseline(s paint.TextMeasurer, width float32) float32 {
	return l.metrics(s).Ascent
}

func (l *Label) RenderContent(s paint.Surface) {
	if l.text == "" {
		return
	}
	ts := &l.textStyle
	size := l.geom.Content.Size()
	m := s.MeasureText(ts, l.text)
	base := m.Ascent
	if m.Advance <= size.X {
		l.renderAligned(s, m, size.X, base)
		return
	}
	if l.lineBreak == LineBreakClip {
		s.PushClip(math32.B2(0, 0, size.X, size.Y))
		ts.Render(s, math32.Vec2(0, base), l.text)
		s.PopClip()
		return
	}
	if t := Truncate(s, ts, l.text, size.X, l.lineBreak); t != "" {
		ts.Render(s, math32.Vec2(0, base), t)
	}
}

func (l *Label) renderAligned(s paint.Surface, m paint.TextMetrics, width, base float32) {
	ts := &l.textStyle
	extra := width - m.Advance
	switch l.align {
	case AlignRight:
		ts.Render(s, math32.Vec2(extra, base), l.text)
	case AlignCenter:
		ts.Render(s, math32.Vec2(extra/2, base), l.text)
	case AlignJustify:
		words := strings.Fields(l.text)
		if len(words) < 2 {
			ts.Render(s, math32.Vec2(0, base), l.text)
			return
		}
		var used float32
		for _, w := range words {
			used += s.MeasureText(ts, w).Advance
		}
		gap := (width - used) / float32(len(words)-1)
		var x float32
		for _, w := range words {
			ts.Render(s, math32.Vec2(x, base), w)
			x += s.MeasureText(ts, w).Advance + gap
		}
	default:
		ts.Render(s, math32.Vec2(0, base), l.text)
	}
}

// Truncate returns the longest shortening of the text by the mode that
// fits in the width, with [Ellipsis] marking the removed runes. It
// returns "" if not even the ellipsis fits, and the text itself if it
// fits or the mode is [LineBreakClip].
func Truncate(s paint.TextMeasurer, ts *paint.TextStyle, text string, width float32, mode LineBreaks) string {
	if mode == LineBreakClip || s.MeasureText(ts, text).Advance <= width {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n >= 0; n-- {
		var t string
		switch mode {
		case TruncateHead:
			t = Ellipsis + string(runes[len(runes)-n:])
		case TruncateTail:
			t = string(runes[:n]) + Ellipsis
		default:
			head := (n + 1) / 2
			t = string(runes[:head]) + Ellipsis + string(runes[len(runes)-(n-head):])
		}
		if s.MeasureText(ts, t).Advance <= width {
			return t
		}
	}
	return ""
}
