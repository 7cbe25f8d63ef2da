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

// Package editscript computes a minimal edit script between two slices using Myers' O(ND)
// algorithm.
//
// The inputs here are word tokens of a single line, so the slices are short and none of the
// usual large-input heuristics (anchoring, uniqueness reduction) are needed. Time complexity is
// O(ND) where N = len(x) + len(y) and D is the number of edits.
package editscript

import "slices"

// Diff compares the contents of x and y and returns removal vectors describing a minimal edit
// script: rx[s] is true if x[s] must be deleted and ry[t] is true if y[t] must be inserted.
// Elements not flagged on either side match up pairwise in order.
func Diff[T comparable](x, y []T) (rx, ry []bool) {
	rx = make([]bool, len(x))
	ry = make([]bool, len(y))

	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	// Handle trivial cases without running the full algorithm.
	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return rx, ry
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return rx, ry
	}

	n, m := smax-smin, tmax-tmin
	maxd := n + m

	// v[maxd+k] is the furthest x-position reachable on diagonal k = s-t. Diagonals of one
	// parity are only touched every other round, so reads of v[k±1] always see the previous
	// round's values.
	v := make([]int, 2*maxd+1)
	var trace [][]int

	var d int
search:
	for d = 0; d <= maxd; d++ {
		trace = append(trace, slices.Clone(v))
		for k := -d; k <= d; k += 2 {
			var s int
			if k == -d || (k != d && v[maxd+k-1] < v[maxd+k+1]) {
				s = v[maxd+k+1] // down: insert y[t]
			} else {
				s = v[maxd+k-1] + 1 // right: delete x[s]
			}
			t := s - k
			for s < n && t < m && x[smin+s] == y[tmin+t] {
				s++
				t++
			}
			v[maxd+k] = s
			if s >= n && t >= m {
				break search
			}
		}
	}

	// Backtrack through the trace, recording one edit per round. The round-0 snake and the
	// stripped prefix/suffix are matches and need no flags.
	s, t := n, m
	for ; d > 0; d-- {
		vprev := trace[d]
		k := s - t
		var pk int
		if k == -d || (k != d && vprev[maxd+k-1] < vprev[maxd+k+1]) {
			pk = k + 1
		} else {
			pk = k - 1
		}
		ps := vprev[maxd+pk]
		pt := ps - pk
		for s > ps && t > pt {
			s--
			t--
		}
		if pk == k+1 {
			ry[tmin+pt] = true
		} else {
			rx[smin+ps] = true
		}
		s, t = ps, pt
	}
	return rx, ry
}
