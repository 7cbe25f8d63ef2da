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

import "github.com/verdiff/verdiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Threshold sets the minimum similarity ratio in [0, 1] required to treat a left and a right
// line as an alignment of the same line. Pairs scoring below the threshold are reported as
// independent removals and additions instead. The default is 0.8.
//
// The value is validated by [Compare]: an out-of-range threshold makes Compare fail with an
// error wrapping [ErrInvalidArgument].
func Threshold(t float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Threshold = t
		return config.Threshold
	}
}

// WordGranularity makes highlight markup mark changes per word instead of per character.
// Words are segmented per Unicode UAX #29, so the granularity is stable across scripts.
func WordGranularity() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.WordGranularity = true
		return config.WordGranularity
	}
}
