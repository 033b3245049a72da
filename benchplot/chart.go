// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders grouped horizontal boxplots of benchmark
// timings and writes them as PNG images, one per category.
package benchplot

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"benchbox/benchtable"
)

// ErrNoData is returned when a chart's combined table has no rows.
var ErrNoData = errors.New("benchplot: no samples to plot")

var boxWidth = vg.Points(10)

// A BoxChart is one category's comparison chart: a horizontal grouped
// boxplot with tests on the vertical axis, time on the horizontal
// axis, and one box per branch beside each test's tick.
type BoxChart struct {
	// Category names the chart and its output file. Callers must
	// ensure it is a valid file name on the host filesystem.
	Category string

	// Table is the combined long-form table for the category.
	Table *table.Table

	// Branches fixes box order and coloring: baseline first.
	Branches [2]string

	Theme Theme
}

// Height returns the chart height: HeightPerTest per distinct test.
func (c *BoxChart) Height() vg.Length {
	return c.Theme.HeightPerTest * vg.Length(len(benchtable.TestNames(c.Table)))
}

// Draw builds the plot for c. It returns ErrNoData when the combined
// table is empty.
func (c *BoxChart) Draw() (*plot.Plot, error) {
	if c.Table == nil || c.Table.Len() == 0 {
		return nil, ErrNoData
	}
	names := benchtable.TestNames(c.Table)

	pl := plot.New()
	pl.Title.Text = c.Category
	pl.X.Label.Text = "time"
	pl.Y.Tick.Length = 0
	pl.X.Tick.Length = vg.Points(4)

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	grid.Vertical.Color = color.Gray{0xDD}
	pl.Add(grid)

	// One box per (test, branch) pair that has samples. Baseline
	// sits above the tick, current below.
	offsets := [2]vg.Length{-boxWidth * 3 / 5, boxWidth * 3 / 5}
	for i, name := range names {
		for k, branch := range c.Branches {
			vals := benchtable.Samples(c.Table, name, branch)
			if len(vals) == 0 {
				continue
			}
			b, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(vals))
			if err != nil {
				return nil, fmt.Errorf("box for %s/%s: %w", name, branch, err)
			}
			b.Horizontal = true
			b.FillColor = c.Theme.branchColor(k)
			b.Offset = offsets[k]
			pl.Add(b)
		}
	}
	pl.NominalY(names...)

	for k, branch := range c.Branches {
		pl.Legend.Add(branch, swatch{c.Theme.branchColor(k)})
	}
	pl.Legend.Top = true

	return pl, nil
}

// WritePNG renders c and writes <dir>/<category>.png, silently
// overwriting an existing file. It returns the written path.
func (c *BoxChart) WritePNG(dir string) (string, error) {
	pl, err := c.Draw()
	if err != nil {
		return "", err
	}

	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(c.Theme.Width, c.Height()),
		vgimg.UseDPI(c.Theme.DPI),
		vgimg.UseBackgroundColor(c.Theme.Background),
	)}
	pl.Draw(draw.New(can))

	file := filepath.Join(dir, c.Category+".png")
	f, err := os.Create(file)
	if err != nil {
		return "", err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return "", err
	}
	return file, f.Close()
}

// swatch is a legend thumbnail that fills the legend cell with a
// branch color.
type swatch struct {
	clr color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.clr, pts)
}
