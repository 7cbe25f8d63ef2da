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

package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// The highlight markup convention is deliberately GFM-compatible: ~~ is strikethrough and **
// is strong emphasis, so a Markdown renderer with the strikethrough extension handles it
// directly.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Strikethrough))

// HTML converts one line's highlight markup to an HTML fragment, rendering removed spans as
// <del> and added spans as <strong>. The fragment is a single <p> element. Note that unlike
// [Spans], this applies full Markdown inline semantics: input text that happens to contain
// other Markdown constructs will be interpreted as such.
func HTML(markup string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(markup), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
