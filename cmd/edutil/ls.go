// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/ebujak/edutils/shutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:         "ls [path]",
		Short:       "Long listing of a file or directory, like ls -l",
		Args:        cobra.MaximumNArgs(1),
		Annotations: versioned("0.5"),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := shutil.ParseListFormat(format)
			if err != nil {
				return err
			}
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return shutil.LongList(cmd.OutOrStdout(), path, shutil.ListOptions{
				Format: f,
				Color:  !color.NoColor,
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output `format`: text or html")
	return cmd
}
