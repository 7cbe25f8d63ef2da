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

// Package verdiff compares two versions of a line-oriented document.
//
// The main function is [Compare], which aligns the lines of both versions, classifies every line
// as aligned, added, removed, or moved, attaches sub-line highlight markup to modified pairs, and
// returns an aggregate similarity score for the whole comparison. The building blocks are also
// exported: [Similarity] scores a single string pair and [Highlight] produces the markup for one.
//
// Unlike a classic diff, the aligner uses a greedy nearest-candidate heuristic instead of a
// minimal edit script: every left line is paired with the most similar unconsumed right line
// whose similarity reaches the threshold, which allows it to pair up lightly edited lines and to
// flag relocated lines as moved. The trade-off is that the result is not guaranteed to be a
// minimal set of changes. Time complexity is O(n·m) in the two line counts, which is fine for
// documents with hundreds of lines but not for millions.
//
// All functions are pure: they perform no I/O, keep no state between calls, and may be called
// concurrently on independent inputs without coordination.
//
// Highlight markup is a textual wire format: removed spans are wrapped in ~~ and added spans in
// ** with everything else passed through verbatim. See [Highlight] for the exact contract and
// [github.com/verdiff/verdiff/render] for turning markup into styled output.
package verdiff
