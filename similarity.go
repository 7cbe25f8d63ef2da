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
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Similarity returns a normalized similarity ratio between a and b in [0, 1], where 1 means the
// strings are identical. The ratio is 1 - d/n with d the Levenshtein distance between a and b
// and n the rune length of the longer string. Two empty strings are identical, so their ratio
// is 1; a non-empty string compared against an empty one scores 0.
//
// Similarity is symmetric and operates on runes, so multi-byte characters count as single
// edits.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	n := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	d := levenshtein.Distance(a, b, nil)
	return 1 - float64(d)/float64(n)
}
