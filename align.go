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

import "slices"

// align pairs up the lines of both inputs using greedy nearest-candidate matching.
//
// Every left line, in order, claims the unconsumed right line with the highest similarity at or
// above the threshold. Ties are broken by the smallest absolute index distance, then by the
// smaller right index. A claimed right line whose index lies below the highest right index
// claimed so far breaks the monotonic order and marks the pair as moved. Left lines without a
// qualifying candidate become removals; right lines never claimed become additions, interleaved
// after the last non-moved item with a lower right index.
//
// Every line of both inputs ends up in exactly one item.
func align(left, right []string, threshold float64) []Item {
	consumed := make([]bool, len(right))
	items := make([]Item, 0, max(len(left), len(right)))

	highest := -1 // highest right index consumed so far
	for s, line := range left {
		best, bestScore := -1, 0.0
		for t, candidate := range right {
			if consumed[t] {
				continue
			}
			score := Similarity(line, candidate)
			if score < threshold {
				continue
			}
			// Candidates are scanned in ascending index order, so on a full tie the
			// earlier (smaller) right index wins by staying put.
			if best < 0 || score > bestScore || score == bestScore && absdist(t, s) < absdist(best, s) {
				best, bestScore = t, score
			}
		}
		if best < 0 {
			items = append(items, Item{Kind: KindRemoved, Left: line, LeftIndex: s, RightIndex: -1})
			continue
		}
		consumed[best] = true
		kind := KindAligned
		if best < highest {
			kind = KindMoved
		} else {
			highest = best
		}
		items = append(items, Item{
			Kind:       kind,
			Left:       line,
			Right:      right[best],
			LeftIndex:  s,
			RightIndex: best,
			Similarity: bestScore,
		})
	}

	// Interleave never-consumed right lines as additions, each placed after the last non-moved
	// item holding a lower right index so that the right-side order is preserved. Moved items
	// are already out of right order and must not drag additions behind a higher index.
	// Additions also slide past directly following removals, keeping the conventional
	// delete-before-insert presentation for replaced blocks.
	for t, line := range right {
		if consumed[t] {
			continue
		}
		pos := 0
		for i := range items {
			if items[i].Kind != KindMoved && items[i].RightIndex >= 0 && items[i].RightIndex < t {
				pos = i + 1
			}
		}
		for pos < len(items) && items[pos].RightIndex < 0 {
			pos++
		}
		items = slices.Insert(items, pos, Item{Kind: KindAdded, Right: line, LeftIndex: -1, RightIndex: t})
	}
	return items
}

func absdist(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
