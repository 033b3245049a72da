// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
)

// A Theme carries the style applied to a chart. It is passed to each
// render call rather than installed as global plot state, so two
// charts with different themes can be drawn from the same process.
type Theme struct {
	// MasterColor and CurrentColor fill the boxes of the baseline
	// and the run under test.
	MasterColor  color.Color
	CurrentColor color.Color

	// Width is the full chart width. Height is not fixed; it is
	// HeightPerTest times the number of distinct tests, so charts
	// with many tests grow instead of squeezing their boxes.
	Width         vg.Length
	HeightPerTest vg.Length

	// DPI is the raster resolution of the written PNG.
	DPI int

	Background color.Color
}

// DefaultTheme returns the stock style: a muted blue/orange pair on a
// white background, 15.5 inches wide and 0.6 inches per test.
func DefaultTheme() Theme {
	return Theme{
		MasterColor:   color.NRGBA{0x4C, 0x72, 0xB0, 0xFF},
		CurrentColor:  color.NRGBA{0xDD, 0x84, 0x52, 0xFF},
		Width:         15.5 * vg.Inch,
		HeightPerTest: 0.6 * vg.Inch,
		DPI:           96,
		Background:    color.White,
	}
}

// branchColor maps the k'th branch of a chart to its fill color.
// Branch order is fixed by the caller: baseline first.
func (t Theme) branchColor(k int) color.Color {
	if k == 0 {
		return t.MasterColor
	}
	return t.CurrentColor
}

// ParseColor parses a "#rrggbb" or "rrggbb" hex color, as accepted in
// theme config files.
func ParseColor(s string) (color.NRGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("color %q: want rrggbb hex", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{r, g, b, 0xFF}, nil
}
