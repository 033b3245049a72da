// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
)

// WriteText writes s as an aligned text table.
func WriteText(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n%s\n", s.Category)
	header := []string{
		"test",
		"n", s.OldLabel + " mean", s.OldLabel + " median",
		"n", s.NewLabel + " mean", s.NewLabel + " median",
		"delta", "p",
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, r := range s.Rows {
		fmt.Fprintln(tw, strings.Join([]string{
			r.Test,
			fmt.Sprintf("%d", r.Old.N), num(r.Old.Mean, r.Old.N), num(r.Old.Median, r.Old.N),
			fmt.Sprintf("%d", r.New.N), num(r.New.Mean, r.New.N), num(r.New.Median, r.New.N),
			r.Delta,
			pval(r.P),
		}, "\t"))
	}
	return tw.Flush()
}

func num(v float64, n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%.4g", v)
}

func pval(p float64) string {
	if math.IsNaN(p) {
		return "-"
	}
	return fmt.Sprintf("%.3f", p)
}
