// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/ebujak/edutils/viz"
	"github.com/spf13/cobra"
)

func newPieCmd() *cobra.Command {
	var (
		chart chartFlags
		o     = viz.DefaultPieOptions()
		label string
	)
	cmd := &cobra.Command{
		Use:   "pie [counts.yaml]",
		Short: "Draw a pie chart of category counts",
		Long: `Draw a pie chart from a YAML mapping of category to count, read
from the named file or stdin. Slices are labeled with their category
and, inside, their percentage, count, or both.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: versioned("0.1"),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := viz.ParsePieLabel(label)
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
			values := make([]float64, len(counts))
			o.Labels = make([]string, len(counts))
			for i, c := range counts {
				values[i], o.Labels[i] = c.Value, c.Category
			}
			o.Label = l
			o.Title = chart.title
			o.Size = chart.size()
			return chart.write(cmd, func(w io.Writer, f viz.Format) error {
				o.Format = f
				return viz.Pie(w, values, o)
			})
		},
	}
	chart.register(cmd)
	cmd.Flags().StringVar(&label, "label", string(viz.PiePercentage), "slice text: percentage, count or percentage_and_count")
	cmd.Flags().StringSliceVar(&o.Colors, "colors", nil, "slice `colors`, one per category")
	cmd.Flags().Float64Var(&o.StartAngle, "start-angle", viz.DefaultStartAngle, "angle of the first slice in degrees")
	return cmd
}
