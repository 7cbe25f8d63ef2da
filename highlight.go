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

package verdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/verdiff/verdiff/internal/config"
	"github.com/verdiff/verdiff/internal/editscript"
	"github.com/verdiff/verdiff/internal/tokens"
)

// Markup delimiters. These are a wire format shared with consumers, not just decoration:
// renderers parse them back into spans. They must not change.
const (
	removedMark = "~~"
	addedMark   = "**"
)

// Markup is the highlight markup for one compared line pair. Spans present only in the old line
// are wrapped in ~~ in Left, spans present only in the new line are wrapped in ** in Right, and
// common spans appear unmarked on both sides.
type Markup struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Highlight compares a and b and returns sub-line change markup for both sides. Stripping all
// delimiters from Left yields exactly a, and from Right exactly b. If a == b, both sides are
// returned unmarked.
//
// By default changes are marked per character with semantic cleanup, which merges trivially
// fragmented edits into readable spans. [WordGranularity] switches to per-word marking.
//
// Delimiter characters occurring in the input text are not escaped: a line that already
// contains ~~ or ** will produce markup that a delimiter-blind consumer cannot distinguish
// from generated markers.
func Highlight(a, b string, opts ...Option) Markup {
	cfg := config.FromOptions(opts, config.WordGranularity)
	return highlight(a, b, cfg)
}

func highlight(a, b string, cfg config.Config) Markup {
	if a == b {
		return Markup{Left: a, Right: b}
	}
	if cfg.WordGranularity {
		return highlightWords(a, b)
	}
	return highlightChars(a, b)
}

func highlightChars(a, b string) Markup {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var left, right strings.Builder
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			left.WriteString(d.Text)
			right.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			left.WriteString(removedMark)
			left.WriteString(d.Text)
			left.WriteString(removedMark)
		case diffmatchpatch.DiffInsert:
			right.WriteString(addedMark)
			right.WriteString(d.Text)
			right.WriteString(addedMark)
		}
	}
	return Markup{Left: left.String(), Right: right.String()}
}

func highlightWords(a, b string) Markup {
	x, y := tokens.Words(a), tokens.Words(b)
	rx, ry := editscript.Diff(x, y)
	return Markup{
		Left:  markRuns(x, rx, removedMark),
		Right: markRuns(y, ry, addedMark),
	}
}

// markRuns wraps every run of consecutive flagged tokens in mark, passing unflagged tokens
// through verbatim.
func markRuns(toks []string, flagged []bool, mark string) string {
	var b strings.Builder
	for i := 0; i < len(toks); {
		if !flagged[i] {
			b.WriteString(toks[i])
			i++
			continue
		}
		b.WriteString(mark)
		for i < len(toks) && flagged[i] {
			b.WriteString(toks[i])
			i++
		}
		b.WriteString(mark)
	}
	return b.String()
}
