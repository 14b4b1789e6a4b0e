// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/ebujak/edutils/inspect"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var o inspect.Options
	cmd := &cobra.Command{
		Use:   "inspect package [func | type.method]",
		Short: "Summarize a Go package or print a function's parameters",
		Long: `With one argument, list the constants, variables, functions and
types (with their methods) of a Go package. With a second argument,
print the parameters and results of that function or method, one per
line with aligned types.`,
		Args:        cobra.RangeArgs(1, 2),
		Annotations: versioned("0.2"),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("inspect", "action", "load", "pattern", args[0])
			if len(args) == 2 {
				sig, err := inspect.Signature(cmd.Context(), args[0], args[1], o)
				if err != nil {
					return err
				}
				sig.Fprint(cmd.OutOrStdout())
				return nil
			}
			info, err := inspect.Package(cmd.Context(), args[0], o)
			if err != nil {
				return err
			}
			info.Fprint(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&o.All, "all", "a", false, "include unexported names")
	cmd.Flags().StringVarP(&o.Dir, "dir", "C", "", "resolve the package in `dir`")
	return cmd
}
