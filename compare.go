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
	"errors"
	"fmt"

	"github.com/verdiff/verdiff/internal/config"
)

// ErrInvalidArgument reports an argument outside its valid range. It is the only error the
// comparison functions return; all string inputs, including empty ones, are valid.
var ErrInvalidArgument = errors.New("invalid argument")

// Kind classifies the outcome of aligning one line pair.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	KindAligned Kind = iota // both sides present, similarity at or above the threshold
	KindAdded               // right-only line with no qualifying left match
	KindRemoved             // left-only line with no qualifying right match
	KindMoved               // matched pair whose right index breaks the monotonic alignment order
)

// Item is a single alignment outcome.
//
// Invariants:
//   - Left and LeftIndex are meaningful iff Kind is KindAligned, KindRemoved, or KindMoved.
//   - Right and RightIndex are meaningful iff Kind is KindAligned, KindAdded, or KindMoved.
//   - An absent side has index -1 and empty text.
//   - Similarity is set only when both sides are present.
//   - LeftMarkup and RightMarkup are set only for two-sided items with Similarity < 1.
type Item struct {
	Kind        Kind    `json:"kind"`
	Left        string  `json:"left,omitempty"`
	Right       string  `json:"right,omitempty"`
	LeftIndex   int     `json:"leftIndex"`
	RightIndex  int     `json:"rightIndex"`
	Similarity  float64 `json:"similarity"`
	LeftMarkup  string  `json:"leftMarkup,omitempty"`
	RightMarkup string  `json:"rightMarkup,omitempty"`
}

// Result is a whole-document comparison.
//
// Invariants:
//   - Every left line and every right line appears in exactly one item.
//   - Items with a left side, read in order, reconstruct the left input.
//   - Items with a right side, read in order, reconstruct the right input, except for
//     KindMoved items, which are out of right order by definition.
type Result struct {
	Score float64 `json:"score"`
	Items []Item  `json:"items"`
}

// Compare aligns the lines of two document versions and returns the structured comparison.
//
// Lines are paired greedily by similarity (see [Similarity]); pairs at or above the threshold
// become KindAligned or KindMoved items, the rest KindRemoved and KindAdded. Modified pairs
// carry highlight markup (see [Highlight]). Score is the mean per-item similarity with one-sided
// items contributing 0, or 1 if both inputs are empty.
//
// The following options are supported: [Threshold], [WordGranularity]. A threshold outside
// [0, 1] fails with an error wrapping [ErrInvalidArgument].
//
// Compare is a pure function: it does not modify its inputs and identical inputs and options
// always produce identical results.
func Compare(left, right []string, opts ...Option) (Result, error) {
	cfg := config.FromOptions(opts, config.Threshold|config.WordGranularity)
	if !(cfg.Threshold >= 0 && cfg.Threshold <= 1) {
		return Result{}, fmt.Errorf("threshold %v outside [0, 1]: %w", cfg.Threshold, ErrInvalidArgument)
	}

	items := align(left, right, cfg.Threshold)

	var sum float64
	for i := range items {
		it := &items[i]
		if it.LeftIndex < 0 || it.RightIndex < 0 {
			continue
		}
		sum += it.Similarity
		if it.Similarity < 1 {
			m := highlight(it.Left, it.Right, cfg)
			it.LeftMarkup, it.RightMarkup = m.Left, m.Right
		}
	}

	score := 1.0
	if len(items) > 0 {
		score = sum / float64(len(items))
	}
	return Result{Score: score, Items: items}, nil
}
