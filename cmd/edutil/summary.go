// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/ebujak/edutils/summary"
	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	var (
		in       sampleFlags
		method   string
		describe bool
	)
	cmd := &cobra.Command{
		Use:   "summary [values...]",
		Short: "Print the five-number summary (min, Q1, median, Q3, max) of a sample",
		Long: `Print the five-number summary of a sample as (min, Q1, Q2, Q3, max).

Values are taken from the arguments, from files given with -f, or from
stdin, separated by white space, commas or semicolons. With -c, values
are read from a named column of CSV or XLSX files instead.

The hinge method (the default) takes Q1 and Q3 as the medians of the
lower and upper halves of the sorted sample, leaving out the median
itself when the sample size is odd. The interp method uses linearly
interpolated quantiles at 0.25, 0.5 and 0.75.`,
		Annotations: versioned("0.6"),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := summary.ParseMethod(method)
			if err != nil {
				return err
			}
			vals, err := in.read(cmd, args)
			if err != nil {
				return err
			}
			logger.Debug("summary", "action", "compute", "method", m, "values", len(vals))

			if describe {
				if len(vals) < 2 {
					return summary.ErrTooShort
				}
				xs, err := summary.Floats(vals)
				if err != nil {
					return err
				}
				d, err := summary.Describe(xs, m)
				if err != nil {
					return err
				}
				d.Fprint(cmd.OutOrStdout())
				return nil
			}

			var s summary.Summary
			if m == summary.Interp {
				s, err = summary.FiveNumberInterpOf(vals)
			} else {
				s, err = summary.FiveNumberOf(vals)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&method, "method", "m", string(summary.Hinge), "quartile `method`: hinge or interp")
	cmd.Flags().BoolVarP(&describe, "describe", "d", false, "also print count, sum, mean and standard deviation")
	return cmd
}
