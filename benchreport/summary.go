// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport summarizes the master/current comparison that
// each chart visualizes: per-test centers, deltas, and significance,
// written as a text table or an HTML index.
package benchreport

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"benchbox/benchjson"
)

// alpha is the significance level below which a delta is reported as
// a real change rather than "~".
const alpha = 0.05

// A Side holds the summary statistics of one branch's samples for a
// single test.
type Side struct {
	N      int
	Mean   float64
	Median float64
}

// A Row compares one test across the two branches.
type Row struct {
	Test string
	Old  Side
	New  Side

	// Delta is the percent change of medians, or "~" when the
	// Mann-Whitney U-test does not reject that the two samples
	// come from the same distribution.
	Delta string

	// P is the U-test p-value, or NaN when the test could not be
	// run (too few or degenerate samples).
	P float64
}

// A Summary is the per-test comparison for one category.
type Summary struct {
	Category string
	// OldLabel and NewLabel are the branch labels, usually
	// "master" and "current".
	OldLabel, NewLabel string
	Rows               []Row
}

func side(samples []float64) Side {
	if len(samples) == 0 {
		return Side{}
	}
	s := stats.Sample{Xs: samples}
	return Side{
		N:      len(samples),
		Mean:   s.Mean(),
		Median: s.Quantile(0.5),
	}
}

// delta formats the percent change of medians guarded by the U-test,
// in the manner of benchstat: "~" for no significant difference.
func delta(old, new []float64) (string, float64) {
	u, err := stats.MannWhitneyUTest(old, new, stats.LocationDiffers)
	if err != nil {
		return "~", math.NaN()
	}
	if u.P > alpha {
		return "~", u.P
	}
	om := stats.Sample{Xs: old}.Quantile(0.5)
	nm := stats.Sample{Xs: new}.Quantile(0.5)
	if om == nm {
		return "0.00%", u.P
	}
	if om == 0 {
		return "?", u.P
	}
	return fmt.Sprintf("%+.2f%%", (nm/om-1)*100), u.P
}

// Summarize compares one category's tests across the two branches.
// The row set is the union of both branches' test names, sorted, so a
// test missing on either side still appears with an empty Side.
func Summarize(category, oldLabel, newLabel string, old, new benchjson.Tests) Summary {
	seen := map[string]bool{}
	var names []string
	for n := range old {
		seen[n] = true
		names = append(names, n)
	}
	for n := range new {
		if !seen[n] {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	s := Summary{Category: category, OldLabel: oldLabel, NewLabel: newLabel}
	for _, name := range names {
		r := Row{
			Test: name,
			Old:  side(old[name]),
			New:  side(new[name]),
		}
		r.Delta, r.P = delta(old[name], new[name])
		s.Rows = append(s.Rows, r)
	}
	return s
}
