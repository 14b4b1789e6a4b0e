// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/ebujak/edutils/sample"
	"github.com/ebujak/edutils/shutil"
	"github.com/spf13/cobra"
)

func newGeoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geo latitude [longitude]",
		Short: "Check that coordinates are in range",
		Long: `Check that a latitude is in [-90, 90] and a longitude is in
[-180, 180]. The exit status is 1 if any coordinate is out of range.`,
		Args:        cobra.RangeArgs(1, 2),
		Annotations: versioned("0.1"),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := sample.ParseStrings(args, sample.DefaultValueParsers)
			checks := []func(interface{}) (bool, error){shutil.IsLatitudeOf, shutil.IsLongitudeOf}
			names := []string{"latitude", "longitude"}
			allOK := true
			for i, v := range vals {
				ok, err := checks[i](v)
				if err != nil {
					return err
				}
				verdict := "valid"
				if !ok {
					verdict, allOK = "out of range", false
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %v: %s\n", names[i], v, verdict)
			}
			if !allOK {
				return exitError{1}
			}
			return nil
		},
	}
	return cmd
}
