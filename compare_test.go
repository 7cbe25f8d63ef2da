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
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		left      []string
		right     []string
		opts      []Option
		wantScore float64
		want      []Item
	}{
		{
			name:      "both-empty",
			left:      nil,
			right:     nil,
			wantScore: 1,
			want:      []Item{},
		},
		{
			name:      "right-empty",
			left:      []string{"a", "b"},
			right:     nil,
			wantScore: 0,
			want: []Item{
				{Kind: KindRemoved, Left: "a", LeftIndex: 0, RightIndex: -1},
				{Kind: KindRemoved, Left: "b", LeftIndex: 1, RightIndex: -1},
			},
		},
		{
			name:      "left-empty",
			left:      nil,
			right:     []string{"a", "b"},
			wantScore: 0,
			want: []Item{
				{Kind: KindAdded, Right: "a", LeftIndex: -1, RightIndex: 0},
				{Kind: KindAdded, Right: "b", LeftIndex: -1, RightIndex: 1},
			},
		},
		{
			name:      "identical",
			left:      []string{"one", "two"},
			right:     []string{"one", "two"},
			wantScore: 1,
			want: []Item{
				{Kind: KindAligned, Left: "one", Right: "one", LeftIndex: 0, RightIndex: 0, Similarity: 1},
				{Kind: KindAligned, Left: "two", Right: "two", LeftIndex: 1, RightIndex: 1, Similarity: 1},
			},
		},
		{
			name:      "modified-pair",
			left:      []string{"The quick fox"},
			right:     []string{"The quick dog"},
			opts:      []Option{Threshold(0.5)},
			wantScore: 1 - 2.0/13.0,
			want: []Item{
				{
					Kind:        KindAligned,
					Left:        "The quick fox",
					Right:       "The quick dog",
					LeftIndex:   0,
					RightIndex:  0,
					Similarity:  1 - 2.0/13.0,
					LeftMarkup:  "The quick ~~fox~~",
					RightMarkup: "The quick **dog**",
				},
			},
		},
		{
			name:      "below-threshold-splits",
			left:      []string{"The quick fox"},
			right:     []string{"The quick dog"},
			opts:      []Option{Threshold(0.9)},
			wantScore: 0,
			want: []Item{
				{Kind: KindRemoved, Left: "The quick fox", LeftIndex: 0, RightIndex: -1},
				{Kind: KindAdded, Right: "The quick dog", LeftIndex: -1, RightIndex: 0},
			},
		},
		{
			name:      "insertion-interleaved",
			left:      []string{"a", "c"},
			right:     []string{"a", "b", "c"},
			wantScore: 2.0 / 3.0,
			want: []Item{
				{Kind: KindAligned, Left: "a", Right: "a", LeftIndex: 0, RightIndex: 0, Similarity: 1},
				{Kind: KindAdded, Right: "b", LeftIndex: -1, RightIndex: 1},
				{Kind: KindAligned, Left: "c", Right: "c", LeftIndex: 1, RightIndex: 2, Similarity: 1},
			},
		},
		{
			name:      "reorder-marks-moved",
			left:      []string{"x", "y", "z"},
			right:     []string{"z", "x", "y"},
			wantScore: 1,
			want: []Item{
				{Kind: KindAligned, Left: "x", Right: "x", LeftIndex: 0, RightIndex: 1, Similarity: 1},
				{Kind: KindAligned, Left: "y", Right: "y", LeftIndex: 1, RightIndex: 2, Similarity: 1},
				{Kind: KindMoved, Left: "z", Right: "z", LeftIndex: 2, RightIndex: 0, Similarity: 1},
			},
		},
		{
			// The addition must not land behind the aligned pair just because the moved
			// item carries a lower right index.
			name:      "addition-after-move",
			left:      []string{"z", "x"},
			right:     []string{"x", "y", "z"},
			wantScore: 2.0 / 3.0,
			want: []Item{
				{Kind: KindAdded, Right: "y", LeftIndex: -1, RightIndex: 1},
				{Kind: KindAligned, Left: "z", Right: "z", LeftIndex: 0, RightIndex: 2, Similarity: 1},
				{Kind: KindMoved, Left: "x", Right: "x", LeftIndex: 1, RightIndex: 0, Similarity: 1},
			},
		},
		{
			name:      "moved-with-modification",
			left:      []string{"hello world", "x"},
			right:     []string{"x", "hello worlds"},
			wantScore: (1 - 1.0/12.0 + 1) / 2,
			want: []Item{
				{
					Kind:        KindAligned,
					Left:        "hello world",
					Right:       "hello worlds",
					LeftIndex:   0,
					RightIndex:  1,
					Similarity:  1 - 1.0/12.0,
					LeftMarkup:  "hello world",
					RightMarkup: "hello world**s**",
				},
				{Kind: KindMoved, Left: "x", Right: "x", LeftIndex: 1, RightIndex: 0, Similarity: 1},
			},
		},
		{
			name:      "zero-threshold-pairs-anything",
			left:      []string{"abc"},
			right:     []string{"xyz"},
			opts:      []Option{Threshold(0)},
			wantScore: 0,
			want: []Item{
				{
					Kind:        KindAligned,
					Left:        "abc",
					Right:       "xyz",
					LeftIndex:   0,
					RightIndex:  0,
					Similarity:  0,
					LeftMarkup:  "~~abc~~",
					RightMarkup: "**xyz**",
				},
			},
		},
		{
			// Equal score and equal index distance: the smaller right index wins.
			name:      "tie-breaks-by-smaller-index",
			left:      []string{"dup"},
			right:     []string{"dup", "dup"},
			wantScore: 1.0 / 2.0,
			want: []Item{
				{Kind: KindAligned, Left: "dup", Right: "dup", LeftIndex: 0, RightIndex: 0, Similarity: 1},
				{Kind: KindAdded, Right: "dup", LeftIndex: -1, RightIndex: 1},
			},
		},
		{
			// Equal score: the candidate closest to the left line's own position wins.
			name:      "tie-breaks-by-distance",
			left:      []string{"a", "b", "dup"},
			right:     []string{"dup", "q", "r", "dup"},
			wantScore: 1.0 / 6.0,
			want: []Item{
				{Kind: KindRemoved, Left: "a", LeftIndex: 0, RightIndex: -1},
				{Kind: KindRemoved, Left: "b", LeftIndex: 1, RightIndex: -1},
				{Kind: KindAdded, Right: "dup", LeftIndex: -1, RightIndex: 0},
				{Kind: KindAdded, Right: "q", LeftIndex: -1, RightIndex: 1},
				{Kind: KindAdded, Right: "r", LeftIndex: -1, RightIndex: 2},
				{Kind: KindAligned, Left: "dup", Right: "dup", LeftIndex: 2, RightIndex: 3, Similarity: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.left, tt.right, tt.opts...)
			if err != nil {
				t.Fatalf("Compare() failed: %v", err)
			}
			if !approxEqual(got.Score, tt.wantScore) {
				t.Errorf("Score = %v, want %v", got.Score, tt.wantScore)
			}
			if diff := cmp.Diff(tt.want, got.Items, cmp.Comparer(approxEqual)); diff != "" {
				t.Errorf("Items mismatch (-want +got):\n%s", diff)
			}
			checkCoverage(t, tt.left, tt.right, got.Items)
		})
	}
}

// checkCoverage verifies the structural invariants of a comparison: every input line appears in
// exactly one item, left-sided items preserve the left order, and right-sided items preserve
// the right order except for moved items, which are out of right order by definition.
func checkCoverage(t *testing.T, left, right []string, items []Item) {
	t.Helper()

	var gotLeft []string
	lastRight := -1
	for _, it := range items {
		if it.LeftIndex >= 0 {
			if it.LeftIndex != len(gotLeft) {
				t.Errorf("left index %d out of order, want %d", it.LeftIndex, len(gotLeft))
			}
			gotLeft = append(gotLeft, it.Left)
		}
		if it.RightIndex >= 0 {
			if it.Right != right[it.RightIndex] {
				t.Errorf("item carries right text %q, want %q", it.Right, right[it.RightIndex])
			}
			if it.Kind != KindMoved {
				if it.RightIndex <= lastRight {
					t.Errorf("right index %d not increasing after %d", it.RightIndex, lastRight)
				}
				lastRight = it.RightIndex
			}
		}
	}
	if diff := cmp.Diff(left, gotLeft, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("left lines not covered exactly once (-want +got):\n%s", diff)
	}

	seen := make(map[int]bool)
	for _, it := range items {
		if it.RightIndex >= 0 {
			if seen[it.RightIndex] {
				t.Errorf("right index %d appears twice", it.RightIndex)
			}
			seen[it.RightIndex] = true
		}
	}
	if len(seen) != len(right) {
		t.Errorf("covered %d right lines, want %d", len(seen), len(right))
	}
}

func TestCompareInvalidThreshold(t *testing.T) {
	for _, threshold := range []float64{-0.1, 1.5, 2} {
		_, err := Compare([]string{"a"}, []string{"a"}, Threshold(threshold))
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Compare with threshold %v: error = %v, want ErrInvalidArgument", threshold, err)
		}
	}
}

func TestCompareDoesNotMutateInputs(t *testing.T) {
	left := []string{"a", "b", "c"}
	right := []string{"c", "a"}
	wantLeft := []string{"a", "b", "c"}
	wantRight := []string{"c", "a"}

	if _, err := Compare(left, right); err != nil {
		t.Fatalf("Compare() failed: %v", err)
	}
	if diff := cmp.Diff(wantLeft, left); diff != "" {
		t.Errorf("left input mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantRight, right); diff != "" {
		t.Errorf("right input mutated (-want +got):\n%s", diff)
	}
}

// Result serializes directly as a wire body; this pins the JSON shape. Similarity must stay
// present even at 0, so a zero-scored pair remains distinguishable from a one-sided item.
func TestResultJSON(t *testing.T) {
	res, err := Compare([]string{"gone"}, []string{"fresh"})
	if err != nil {
		t.Fatalf("Compare() failed: %v", err)
	}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want := `{"score":0,"items":[` +
		`{"kind":2,"left":"gone","leftIndex":0,"rightIndex":-1,"similarity":0},` +
		`{"kind":1,"right":"fresh","leftIndex":-1,"rightIndex":0,"similarity":0}]}`
	if string(raw) != want {
		t.Errorf("Marshal() = %s, want %s", raw, want)
	}

	res, err = Compare([]string{"abc"}, []string{"xyz"}, Threshold(0))
	if err != nil {
		t.Fatalf("Compare() failed: %v", err)
	}
	raw, err = json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want = `{"score":0,"items":[` +
		`{"kind":0,"left":"abc","right":"xyz","leftIndex":0,"rightIndex":0,"similarity":0,` +
		`"leftMarkup":"~~abc~~","rightMarkup":"**xyz**"}]}`
	if string(raw) != want {
		t.Errorf("Marshal() = %s, want %s", raw, want)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindAligned, "KindAligned"},
		{KindAdded, "KindAdded"},
		{KindRemoved, "KindRemoved"},
		{KindMoved, "KindMoved"},
		{Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
