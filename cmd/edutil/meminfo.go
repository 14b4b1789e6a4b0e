// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/ebujak/edutils/shutil"
	"github.com/spf13/cobra"
)

func newMeminfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "meminfo",
		Short:       "Print physical and virtual memory totals in MiB",
		Args:        cobra.NoArgs,
		Annotations: versioned("0.3"),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := shutil.MemoryInfo()
			if err != nil {
				return err
			}
			m.Fprint(cmd.OutOrStdout())
			return nil
		},
	}
}
