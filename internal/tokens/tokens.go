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

// Package tokens segments text into UAX #29 word tokens.
package tokens

import "github.com/clipperhouse/uax29/v2/words"

// Words splits s into word tokens per Unicode UAX #29. Whitespace and punctuation runs are
// tokens too: concatenating the result reconstructs s exactly.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	iter := words.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}
