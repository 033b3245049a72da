// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestThemeFromConfigDefaults(t *testing.T) {
	viper.Reset()
	viper.SetDefault("chart.width", 15.5)
	viper.SetDefault("chart.height_per_test", 0.6)
	viper.SetDefault("chart.dpi", 96)
	viper.SetDefault("chart.master_color", "#4C72B0")
	viper.SetDefault("chart.current_color", "#DD8452")

	theme, err := themeFromConfig()
	require.NoError(t, err)
	assert.InDelta(t, float64(15.5*vg.Inch), float64(theme.Width), 1e-9)
	assert.InDelta(t, float64(0.6*vg.Inch), float64(theme.HeightPerTest), 1e-9)
	assert.Equal(t, 96, theme.DPI)
	assert.Equal(t, color.NRGBA{0x4C, 0x72, 0xB0, 0xFF}, theme.MasterColor)
}

func TestThemeFromConfigOverride(t *testing.T) {
	viper.Reset()
	viper.Set("chart.width", 10.0)
	viper.Set("chart.height_per_test", 1.0)
	viper.Set("chart.dpi", 150)
	viper.Set("chart.master_color", "000000")
	viper.Set("chart.current_color", "ffffff")

	theme, err := themeFromConfig()
	require.NoError(t, err)
	assert.InDelta(t, float64(10*vg.Inch), float64(theme.Width), 1e-9)
	assert.Equal(t, 150, theme.DPI)
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xFF}, theme.MasterColor)
	assert.Equal(t, color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}, theme.CurrentColor)
}

func TestThemeFromConfigBadColor(t *testing.T) {
	viper.Reset()
	viper.Set("chart.master_color", "not-a-color")
	_, err := themeFromConfig()
	assert.Error(t, err)
}
