// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchbox renders comparative boxplot charts from two sets of
// benchmark timing results.
//
// Usage:
//
//	benchbox [flags] <master_results.json> <current_results.json>
//
// Each input is a JSON object mapping category names to objects
// mapping test names to arrays of timing samples. One PNG per
// category in the master file is written to the output directory
// (default "results"), alongside a benchstat-style comparison on
// stdout. Inputs may be written as label=path to override the
// "master"/"current" branch labels.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"

	"benchbox/benchjson"
	"benchbox/benchplot"
	"benchbox/benchreport"
	"benchbox/benchstore"
	"benchbox/benchtable"
)

var (
	cfgFile     string
	outDir      string
	htmlIndex   bool
	storeDSN    string
	storeDriver string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "benchbox <master_results.json> <current_results.json>",
	Short: "Render comparative boxplot charts from two benchmark runs",
	Long: `Benchbox reads two benchmark result files, a baseline ("master") and
the run under test ("current"), and writes one grouped boxplot PNG per
category found in the baseline. A per-category comparison table is
printed to stdout.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVarP(&outDir, "out", "o", "results", "directory the charts are written into")
	rootCmd.Flags().BoolVar(&htmlIndex, "html", false, "also write an index.html report into the output directory")
	rootCmd.Flags().StringVar(&storeDSN, "store", "", "append the loaded samples to this run-history database (DSN)")
	rootCmd.Flags().StringVar(&storeDriver, "store-driver", "sqlite3", "database driver for --store (sqlite3 or mysql)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file overriding the chart theme")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	viper.SetDefault("chart.width", 15.5)
	viper.SetDefault("chart.height_per_test", 0.6)
	viper.SetDefault("chart.dpi", 96)
	viper.SetDefault("chart.master_color", "#4C72B0")
	viper.SetDefault("chart.current_color", "#DD8452")
}

func initConfig() {
	setupLogging()
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		slog.Error("failed to read config file", "path", cfgFile, "error", err)
		os.Exit(1)
	}
	slog.Debug("loaded config", "path", viper.ConfigFileUsed())
}

func setupLogging() {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// themeFromConfig builds the chart theme from the defaults overlaid
// with any config file values.
func themeFromConfig() (benchplot.Theme, error) {
	theme := benchplot.DefaultTheme()

	master, err := benchplot.ParseColor(viper.GetString("chart.master_color"))
	if err != nil {
		return theme, err
	}
	current, err := benchplot.ParseColor(viper.GetString("chart.current_color"))
	if err != nil {
		return theme, err
	}
	theme.MasterColor = master
	theme.CurrentColor = current
	theme.Width = vgInches(viper.GetFloat64("chart.width"))
	theme.HeightPerTest = vgInches(viper.GetFloat64("chart.height_per_test"))
	theme.DPI = viper.GetInt("chart.dpi")
	return theme, nil
}

func vgInches(v float64) vg.Length {
	return vg.Length(v) * vg.Inch
}

func run(cmd *cobra.Command, args []string) error {
	master := benchjson.ParseInput(args[0], "master")
	current := benchjson.ParseInput(args[1], "current")

	masterData, err := benchjson.ReadFile(master.Path)
	if err != nil {
		return fmt.Errorf("master results: %w", err)
	}
	currentData, err := benchjson.ReadFile(current.Path)
	if err != nil {
		return fmt.Errorf("current results: %w", err)
	}

	theme, err := themeFromConfig()
	if err != nil {
		return err
	}

	if err := os.Mkdir(outDir, 0o777); err != nil {
		if !os.IsExist(err) {
			return fmt.Errorf("creating output directory: %w", err)
		}
		fi, err := os.Stat(outDir)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if !fi.IsDir() {
			return fmt.Errorf("output path %s exists and is not a directory", outDir)
		}
	}

	var history *benchstore.Store
	if storeDSN != "" {
		history, err = benchstore.Open(storeDriver, storeDSN)
		if err != nil {
			return fmt.Errorf("opening history store: %w", err)
		}
		defer history.Close()
	}

	branches := [2]string{master.Label, current.Label}
	var reports []benchreport.CategoryReport

	// The master file's categories drive the run. A category or
	// test absent from the current data is drawn with that series
	// left blank.
	for _, cat := range masterData.Categories() {
		mt := masterData[cat]
		ct, ok := currentData[cat]
		if !ok {
			slog.Warn("category missing from current results", "category", cat)
		}
		if len(mt) == 0 {
			slog.Warn("skipping category with no tests", "category", cat)
			continue
		}

		combined := benchtable.Combine(
			benchtable.Long(mt, master.Label),
			benchtable.Long(ct, current.Label),
		)
		chart := benchplot.BoxChart{
			Category: cat,
			Table:    combined,
			Branches: branches,
			Theme:    theme,
		}
		file, err := chart.WritePNG(outDir)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", cat, err)
		}
		slog.Info("wrote chart", "category", cat, "file", file)

		summary := benchreport.Summarize(cat, master.Label, current.Label, mt, ct)
		if err := benchreport.WriteText(os.Stdout, summary); err != nil {
			return err
		}
		reports = append(reports, benchreport.CategoryReport{
			Summary: summary,
			Image:   cat + ".png",
		})
	}

	if htmlIndex {
		if err := benchreport.WriteIndex(outDir, reports); err != nil {
			return fmt.Errorf("writing HTML index: %w", err)
		}
		slog.Info("wrote HTML index", "dir", outDir)
	}

	if history != nil {
		id, err := history.RecordRun(cmd.Context(), time.Now(),
			benchstore.Run{Branch: master.Label, Data: masterData},
			benchstore.Run{Branch: current.Label, Data: currentData},
		)
		if err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		slog.Info("recorded run in history store", "run_id", id)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("benchbox failed", "error", err)
		os.Exit(1)
	}
}
