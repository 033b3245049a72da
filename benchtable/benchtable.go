// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtable reshapes one category's benchmark samples into
// the long-form tables consumed by the boxplot renderer.
//
// The reshaping is a wide-to-long unpivot. A category's tests first
// become the columns of a wide table whose rows are aligned sample
// indexes; tests with fewer samples than the longest are padded with
// NaN so the columns stay rectangular. The wide table is then
// unpivoted into one row per (test, sample) pair, the NaN padding
// rows are dropped, and every surviving row is stamped with the
// branch label of the source dataset.
package benchtable

import (
	"math"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"benchbox/benchjson"
)

// Column names of the long-form table.
const (
	TestCol   = "test"
	TimeCol   = "time"
	BranchCol = "branch"
)

// Long flattens one category's samples into a long-form table with
// columns (test, time, branch), one row per non-padding sample. The
// table is empty when tests has no names or no samples at all.
func Long(tests benchjson.Tests, branch string) *table.Table {
	names := tests.Names()
	if len(names) == 0 {
		return new(table.Table)
	}

	n := tests.MaxSamples()
	var wide table.Builder
	for _, name := range names {
		col := make([]float64, n)
		copy(col, tests[name])
		for i := len(tests[name]); i < n; i++ {
			col[i] = math.NaN()
		}
		wide.Add(name, col)
	}

	long := table.Unpivot(wide.Done(), TestCol, TimeCol, names...)
	long = table.Filter(long, func(v float64) bool { return !math.IsNaN(v) }, TimeCol)

	flat := table.Flatten(long)
	labels := make([]string, flat.Len())
	for i := range labels {
		labels[i] = branch
	}
	return table.NewBuilder(flat).Add(BranchCol, labels).Done()
}

// Combine concatenates long-form tables row-wise. Empty tables are
// skipped, so a branch that is missing a category contributes nothing
// rather than breaking the concatenation. Row order carries no
// meaning downstream.
func Combine(tables ...*table.Table) *table.Table {
	live := tables[:0:0]
	for _, t := range tables {
		if t != nil && t.Len() > 0 {
			live = append(live, t)
		}
	}
	switch len(live) {
	case 0:
		return new(table.Table)
	case 1:
		return live[0]
	}
	gs := make([]table.Grouping, len(live))
	for i, t := range live {
		gs[i] = t
	}
	return table.Flatten(table.Concat(gs...))
}

// TestNames returns the distinct test names in t, sorted. The sorted
// order fixes the vertical axis order of the rendered chart.
func TestNames(t *table.Table) []string {
	if t == nil || t.Len() == 0 {
		return nil
	}
	names := append([]string(nil), slice.Nub(t.MustColumn(TestCol)).([]string)...)
	sort.Strings(names)
	return names
}

// Samples returns the time values in t for one (test, branch) pair.
// It returns nil when the pair has no rows.
func Samples(t *table.Table, test, branch string) []float64 {
	if t == nil || t.Len() == 0 {
		return nil
	}
	g := table.FilterEq(t, TestCol, test)
	g = table.FilterEq(g, BranchCol, branch)
	flat := table.Flatten(g)
	if flat.Len() == 0 {
		return nil
	}
	return flat.MustColumn(TimeCol).([]float64)
}

// Branches returns the distinct branch labels in t in first-appearance
// order, which is the order the tables were combined in.
func Branches(t *table.Table) []string {
	if t == nil || t.Len() == 0 {
		return nil
	}
	return slice.Nub(t.MustColumn(BranchCol)).([]string)
}
