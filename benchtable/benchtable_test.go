// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchbox/benchjson"
)

func TestLong(t *testing.T) {
	tests := benchjson.Tests{
		"testA": {1, 2, 3},
		"testB": {4, 5, 6},
	}
	long := Long(tests, "master")

	require.Equal(t, 6, long.Len())
	assert.ElementsMatch(t,
		[]string{"testA", "testA", "testA", "testB", "testB", "testB"},
		long.MustColumn(TestCol).([]string))
	assert.ElementsMatch(t, []float64{1, 2, 3, 4, 5, 6}, long.MustColumn(TimeCol).([]float64))
	for _, b := range long.MustColumn(BranchCol).([]string) {
		assert.Equal(t, "master", b)
	}
}

func TestLongRagged(t *testing.T) {
	// Shorter sample sequences are padded to the longest and the
	// padding rows dropped, so the row count equals the number of
	// real samples.
	tests := benchjson.Tests{
		"short": {9},
		"long":  {1, 2, 3, 4},
	}
	long := Long(tests, "current")

	require.Equal(t, 5, long.Len())
	assert.Equal(t, []float64{9}, Samples(long, "short", "current"))
	assert.Equal(t, []float64{1, 2, 3, 4}, Samples(long, "long", "current"))
}

func TestLongEmpty(t *testing.T) {
	assert.Equal(t, 0, Long(benchjson.Tests{}, "master").Len())
	assert.Equal(t, 0, Long(nil, "master").Len())
	// Tests present but with no samples at all.
	assert.Equal(t, 0, Long(benchjson.Tests{"a": nil, "b": {}}, "master").Len())
}

func TestCombine(t *testing.T) {
	master := benchjson.Tests{"testA": {1, 2, 3}, "testB": {4, 5, 6}}
	current := benchjson.Tests{"testA": {2, 3, 4}, "testB": {3, 4, 5}}

	combined := Combine(Long(master, "master"), Long(current, "current"))

	require.Equal(t, 12, combined.Len())
	counts := map[string]int{}
	for _, b := range combined.MustColumn(BranchCol).([]string) {
		counts[b]++
	}
	assert.Equal(t, map[string]int{"master": 6, "current": 6}, counts)
	assert.Equal(t, []string{"master", "current"}, Branches(combined))
	assert.Equal(t, []string{"testA", "testB"}, TestNames(combined))
}

func TestCombineMissingBranch(t *testing.T) {
	// A branch missing the whole category contributes an empty
	// table; the other branch still plots alone.
	combined := Combine(Long(benchjson.Tests{"t": {1, 2}}, "master"), Long(nil, "current"))

	require.Equal(t, 2, combined.Len())
	assert.Equal(t, []string{"master"}, Branches(combined))
	assert.Nil(t, Samples(combined, "t", "current"))
	assert.Equal(t, []float64{1, 2}, Samples(combined, "t", "master"))
}

func TestCombineAllEmpty(t *testing.T) {
	combined := Combine(Long(nil, "master"), Long(nil, "current"))
	assert.Equal(t, 0, combined.Len())
	assert.Nil(t, TestNames(combined))
	assert.Nil(t, Branches(combined))
}

func TestSamplesLosslessCount(t *testing.T) {
	tests := benchjson.Tests{
		"a": {1, 2, 3, 4, 5},
		"b": {6},
		"c": {},
	}
	long := Long(tests, "master")
	assert.Equal(t, tests.TotalSamples(), long.Len())
}
