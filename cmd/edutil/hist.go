// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/ebujak/edutils/summary"
	"github.com/ebujak/edutils/viz"
	"github.com/spf13/cobra"
)

func newHistCmd() *cobra.Command {
	var (
		in    sampleFlags
		chart chartFlags
		o     viz.HistogramOptions
		noKDE bool
	)
	cmd := &cobra.Command{
		Use:   "hist [values...]",
		Short: "Draw a histogram of a sample as SVG",
		Long: `Draw a histogram of a sample, with a kernel density estimate
overlaid. The sample is read like the summary command reads it;
with -c, empty cells of the column are skipped.`,
		Annotations: versioned("0.5"),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := in.read(cmd, args)
			if err != nil {
				return err
			}
			xs, err := summary.Floats(vals)
			if err != nil {
				return err
			}
			if in.column != "" && o.XLabel == "" {
				o.XLabel = in.column
			}
			o.Title = chart.title
			o.KDE = !noKDE
			o.Size = chart.size()
			return chart.write(cmd, func(w io.Writer, f viz.Format) error {
				o.Format = f
				return viz.Histogram(w, xs, o)
			})
		},
	}
	in.register(cmd)
	chart.register(cmd)
	cmd.Flags().IntVarP(&o.Bins, "bins", "b", 20, "number of `bins`")
	cmd.Flags().BoolVar(&noKDE, "no-kde", false, "omit the density estimate")
	cmd.Flags().StringVar(&o.XLabel, "xlabel", "", "x axis label (default Value, or the column name)")
	cmd.Flags().StringVar(&o.Color, "color", "blue", "bar `color` (name or #rrggbb)")
	cmd.Flags().Float64Var(&o.Alpha, "alpha", 0.5, "bar opacity in [0, 1]")
	return cmd
}
