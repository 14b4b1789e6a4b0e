// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/ebujak/edutils/versions"
	"github.com/spf13/cobra"
)

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions [module...]",
		Short: "Print command versions, or versions of linked modules",
		Long: `With no arguments, print the version of each edutil command. With
arguments, print the versions of the linked modules at or under each
module path.`,
		Annotations: versioned("0.8"),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				vs := commandVersions(cmd.Root())
				for _, name := range sortedKeys(vs) {
					fmt.Fprintf(out, "%-24s %s\n", name, vs[name])
				}
				return nil
			}
			mods, err := versions.Linked(args...)
			if err != nil {
				return err
			}
			for _, m := range mods {
				fmt.Fprintf(out, "%-40s %s\n", m.Path, m.Version)
			}
			return nil
		},
	}
}
