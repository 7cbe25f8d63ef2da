// Copyright 2026 The verdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render turns comparison results and highlight markup into styled output.
//
// [Spans] parses the ~~/** markup convention back into typed spans; [Text] and [SideBySide]
// render a whole [verdiff.Result] for terminals using ANSI escape sequences, and [HTML] converts
// a single line's markup to HTML.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verdiff/verdiff"
	"github.com/verdiff/verdiff/internal/config"
	"github.com/verdiff/verdiff/render/color"
)

// SpanKind classifies a parsed markup span.
type SpanKind int

const (
	SpanPlain   SpanKind = iota // text common to both sides
	SpanRemoved                 // text wrapped in ~~, present only on the left
	SpanAdded                   // text wrapped in **, present only on the right
)

// Span is a contiguous piece of a parsed markup string.
type Span struct {
	Kind SpanKind
	Text string
}

const (
	removedMark = "~~"
	addedMark   = "**"
)

// Spans parses highlight markup into its spans. The delimiters are a strict contract: a ~~ or
// ** sequence opens a span only if a closing occurrence follows, otherwise it is kept as plain
// text. Concatenating the texts of all spans yields the markup with all recognized delimiters
// stripped.
func Spans(markup string) []Span {
	var out []Span
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			out = append(out, Span{SpanPlain, plain.String()})
			plain.Reset()
		}
	}
	for i := 0; i < len(markup); {
		var kind SpanKind
		var mark string
		switch {
		case strings.HasPrefix(markup[i:], removedMark):
			kind, mark = SpanRemoved, removedMark
		case strings.HasPrefix(markup[i:], addedMark):
			kind, mark = SpanAdded, addedMark
		default:
			plain.WriteByte(markup[i])
			i++
			continue
		}
		rest := markup[i+len(mark):]
		end := strings.Index(rest, mark)
		if end < 0 {
			// Unterminated delimiter, keep it as literal text.
			plain.WriteString(mark)
			i += len(mark)
			continue
		}
		flush()
		out = append(out, Span{kind, rest[:end]})
		i += len(mark) + end + len(mark)
	}
	flush()
	return out
}

// Text renders res for a terminal, one line per item. The first column identifies the item
// kind (' ' aligned, '+' added, '-' removed, '~' moved); a modified pair is rendered as a
// '-' line followed by a '+' line with its changed spans colored.
func Text(res verdiff.Result, opts ...color.Option) string {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}

	var b strings.Builder
	for _, it := range res.Items {
		switch {
		case it.Kind == verdiff.KindAdded:
			writeLine(&b, "+", cc.Added, it.Right)
		case it.Kind == verdiff.KindRemoved:
			writeLine(&b, "-", cc.Removed, it.Left)
		case it.LeftMarkup != "" || it.RightMarkup != "":
			writeSpans(&b, "-", it.LeftMarkup, cc.Removed)
			writeSpans(&b, "+", it.RightMarkup, cc.Added)
		case it.Kind == verdiff.KindMoved:
			writeLine(&b, "~", cc.Moved, it.Right)
		default:
			b.WriteString("  ")
			b.WriteString(it.Left)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// SideBySide renders res as two columns separated by '│', the left one padded to width
// terminal cells. Padding uses display widths, so wide characters stay aligned.
func SideBySide(res verdiff.Result, width int, opts ...color.Option) string {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}

	var b strings.Builder
	for _, it := range res.Items {
		var leftCell, rightCell string
		var leftWidth int
		switch {
		case it.LeftMarkup != "" || it.RightMarkup != "":
			leftCell, leftWidth = cell(it.LeftMarkup, cc)
			rightCell, _ = cell(it.RightMarkup, cc)
		default:
			if it.LeftIndex >= 0 {
				leftCell, leftWidth = colorCell(it, it.Left, cc)
			}
			if it.RightIndex >= 0 {
				rightCell, _ = colorCell(it, it.Right, cc)
			}
		}
		b.WriteString(leftCell)
		if pad := width - leftWidth; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString("│ ")
		b.WriteString(rightCell)
		b.WriteByte('\n')
	}
	return b.String()
}

// cell renders markup spans with coloring and reports the visible cell width.
func cell(markup string, cc config.ColorConfig) (string, int) {
	var b strings.Builder
	width := 0
	for _, sp := range Spans(markup) {
		width += runewidth.StringWidth(sp.Text)
		switch sp.Kind {
		case SpanRemoved:
			b.WriteString(cc.Removed)
			b.WriteString(sp.Text)
			b.WriteString(config.Reset)
		case SpanAdded:
			b.WriteString(cc.Added)
			b.WriteString(sp.Text)
			b.WriteString(config.Reset)
		default:
			b.WriteString(sp.Text)
		}
	}
	return b.String(), width
}

// colorCell renders an unmodified side of an item, colored by its kind.
func colorCell(it verdiff.Item, text string, cc config.ColorConfig) (string, int) {
	width := runewidth.StringWidth(text)
	var code string
	switch it.Kind {
	case verdiff.KindAdded:
		code = cc.Added
	case verdiff.KindRemoved:
		code = cc.Removed
	case verdiff.KindMoved:
		code = cc.Moved
	default:
		return text, width
	}
	return code + text + config.Reset, width
}

func writeLine(b *strings.Builder, gutter, code, text string) {
	b.WriteString(gutter)
	b.WriteByte(' ')
	b.WriteString(code)
	b.WriteString(text)
	b.WriteString(config.Reset)
	b.WriteByte('\n')
}

func writeSpans(b *strings.Builder, gutter, markup, code string) {
	b.WriteString(gutter)
	b.WriteByte(' ')
	for _, sp := range Spans(markup) {
		if sp.Kind == SpanPlain {
			b.WriteString(sp.Text)
			continue
		}
		b.WriteString(code)
		b.WriteString(sp.Text)
		b.WriteString(config.Reset)
	}
	b.WriteByte('\n')
}
