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

// Package color provides configuration of the ANSI escape sequences used for terminal
// rendering.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below
// presents added spans in bold green:
//
//	Added(1, 32)
//
// This is equivalent to the raw ANSI sequence \033[1;32m. It's the responsibility of the caller
// to ensure that the parameters are supported by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"

	"github.com/verdiff/verdiff/internal/config"
)

// An Option makes it possible to configure custom colors in the render functions.
type Option func(*config.ColorConfig)

// Added colors added lines and spans.
func Added(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Added = code
	}
}

// Removed colors removed lines and spans.
func Removed(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Removed = code
	}
}

// Moved colors relocated lines.
func Moved(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Moved = code
	}
}

func format(params []int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
