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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// verdiff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Threshold is the minimum similarity ratio required to accept a line pair as an alignment.
	// Range validation happens in verdiff.Compare: an out-of-range threshold is a caller error,
	// not a programming error.
	Threshold float64

	// If set, highlighting marks changes per word token instead of per character.
	WordGranularity bool
}

// Default is the default configuration.
var Default = Config{
	Threshold:       0.8,
	WordGranularity: false,
}

// Flag describes a single config entry. This is used to detect options being passed to functions
// that don't support them.
type Flag int

const (
	Threshold Flag = 1 << iota
	WordGranularity
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Threshold:
		return "verdiff.Threshold"
	case WordGranularity:
		return "verdiff.WordGranularity"
	default:
		panic("never reached")
	}
}

// ColorConfig holds the ANSI SGR sequences the render package uses for each change category.
type ColorConfig struct {
	Added   string
	Removed string
	Moved   string
}

// DefaultColors is the default terminal color configuration.
var DefaultColors = ColorConfig{
	Added:   "\033[32m",
	Removed: "\033[31m",
	Moved:   "\033[36m",
}

// Reset restores the default graphic rendition.
const Reset = "\033[0m"
