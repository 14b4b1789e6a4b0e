// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ebujak/edutils/shutil"
	"github.com/spf13/cobra"
)

func newColumnsCmd() *cobra.Command {
	var width, gap int
	cmd := &cobra.Command{
		Use:   "columns [items...]",
		Short: "Lay out items in fixed-width columns",
		Long: `Lay out items in columns as wide as the longest item plus a gap.
Items are the arguments, or the lines of stdin.`,
		Annotations: versioned("0.6"),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := args
			if len(items) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						items = append(items, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}
			w := width
			if w == 0 {
				w = cfg.LineLength
			}
			if w == 0 {
				w = shutil.TerminalWidth()
			}
			s, err := shutil.Columns(items, w, gap)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			if s != "" && !strings.HasSuffix(s, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "line `length` (default EDUTIL_LINE_LENGTH or the terminal width)")
	cmd.Flags().IntVarP(&gap, "gap", "g", 5, "spaces between columns")
	return cmd
}
