// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchjson reads benchmark timing results in the nested JSON
// format produced by the benchmark harness: a JSON object mapping
// category names to objects mapping test names to arrays of timing
// samples.
//
// The format carries no metadata and no units; values are taken
// verbatim. Two datasets exist per comparison, a baseline ("master")
// and the run under test ("current"), and the baseline's category
// keys drive all downstream processing.
package benchjson

import "sort"

// Tests maps a test name to its ordered timing samples.
type Tests map[string][]float64

// Dataset maps a category name to the tests measured under it.
type Dataset map[string]Tests

// Categories returns the category names in d in sorted order.
func (d Dataset) Categories() []string {
	cats := make([]string, 0, len(d))
	for c := range d {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Names returns the test names in t in sorted order.
func (t Tests) Names() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// MaxSamples returns the largest sample count across the tests in t.
// Tests need not have equal counts; shorter sequences are padded by
// the reshaper.
func (t Tests) MaxSamples() int {
	max := 0
	for _, samples := range t {
		if len(samples) > max {
			max = len(samples)
		}
	}
	return max
}

// TotalSamples returns the number of samples summed over all tests in t.
func (t Tests) TotalSamples() int {
	n := 0
	for _, samples := range t {
		n += len(samples)
	}
	return n
}
