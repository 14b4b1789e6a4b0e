// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/ebujak/edutils/viz"
	"github.com/spf13/cobra"
)

func newBarCmd() *cobra.Command {
	var (
		chart      chartFlags
		o          viz.BarOptions
		annotation string
	)
	cmd := &cobra.Command{
		Use:   "bar [counts.yaml]",
		Short: "Draw a bar chart of category counts",
		Long: `Draw a bar chart from a YAML mapping of category to count, read
from the named file or stdin. Bars appear in the order of the mapping.
The left axis shows counts and the right axis percentages of the
total, which is the sum of the counts unless --total is given.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: versioned("0.3"),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := viz.ParseAnnotation(annotation)
			if err != nil {
				return err
			}
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			counts, err := readCounts(cmd, path)
			if err != nil {
				return err
			}
			o.Annotation = a
			o.Title = chart.title
			o.Size = chart.size()
			return chart.write(cmd, func(w io.Writer, f viz.Format) error {
				o.Format = f
				return viz.Bar(w, counts, o)
			})
		},
	}
	chart.register(cmd)
	cmd.Flags().StringVar(&annotation, "annotate", string(viz.AnnotateCountAndPercentage), "text above bars: count, percentage, count_and_percentage or none")
	cmd.Flags().Float64Var(&o.Total, "total", 0, "denominator for percentages (default the sum of counts)")
	cmd.Flags().StringVar(&o.XLabel, "xlabel", "", "x axis label (default Category)")
	cmd.Flags().StringVar(&o.Color, "color", "blue", "bar `color`")
	cmd.Flags().Float64Var(&o.Alpha, "alpha", 0.5, "bar opacity in [0, 1]")
	cmd.Flags().Float64Var(&o.FontSize, "font-size", 11, "annotation font size")
	cmd.Flags().BoolVar(&o.HideLeftTicks, "no-count-ticks", false, "hide the count axis ticks")
	cmd.Flags().BoolVar(&o.HideRightTicks, "no-percent-ticks", false, "hide the percentage axis ticks")
	return cmd
}
