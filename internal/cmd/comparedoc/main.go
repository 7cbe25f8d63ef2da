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

// comparedoc compares two versions of a text document and prints the aligned, highlighted
// result to stdout. It exists to eyeball alignment and highlighting behavior on real documents
// during development; it is not a supported interface.
//
// Usage:
//
//	comparedoc [-threshold 0.8] [-words] [-side-by-side width] old.txt new.txt
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/verdiff/verdiff"
	"github.com/verdiff/verdiff/render"
)

var (
	threshold  = flag.Float64("threshold", 0.8, "minimum similarity ratio to align two lines")
	words      = flag.Bool("words", false, "highlight per word instead of per character")
	sideBySide = flag.Int("side-by-side", 0, "render two columns with the given left column width")
)

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected two file arguments, got %d", len(args))
	}

	old, err := readLines(args[0])
	if err != nil {
		return err
	}
	new, err := readLines(args[1])
	if err != nil {
		return err
	}

	opts := []verdiff.Option{verdiff.Threshold(*threshold)}
	if *words {
		opts = append(opts, verdiff.WordGranularity())
	}
	res, err := verdiff.Compare(old, new, opts...)
	if err != nil {
		return err
	}

	if *sideBySide > 0 {
		fmt.Print(render.SideBySide(res, *sideBySide))
	} else {
		fmt.Print(render.Text(res))
	}
	fmt.Printf("score: %.4f\n", res.Score)
	return nil
}

func readLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}
	lines := strings.Split(string(raw), "\n")
	// A trailing newline produces an empty last element that isn't a line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}
