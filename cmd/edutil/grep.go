// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/ebujak/edutils/shutil"
	"github.com/spf13/cobra"
)

func newGrepCmd() *cobra.Command {
	var (
		o        shutil.GrepOptions
		encoding string
	)
	cmd := &cobra.Command{
		Use:   "grep pattern file...",
		Short: "Print lines of files matching a regular expression",
		Long: `Print lines of files matching a regular expression.

The exit status is 0 if any line matched, 1 if none did, and 2 if
there was an error.`,
		Args:        cobra.MinimumNArgs(2),
		Annotations: versioned("0.1"),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.TextOptions = textOptions(encoding)
			pattern, files := args[0], args[1:]
			out := cmd.OutOrStdout()
			total := 0
			for _, path := range files {
				var buf bytes.Buffer
				n, err := shutil.Grep(&buf, pattern, path, o)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "edutil: %v\n", err)
					return exitError{2}
				}
				total += n
				if len(files) == 1 {
					out.Write(buf.Bytes())
					continue
				}
				scanner := bufio.NewScanner(&buf)
				for scanner.Scan() {
					fmt.Fprintf(out, "%s:%s\n", path, scanner.Text())
				}
			}
			logger.Debug("grep", "action", "done", "pattern", pattern, "matches", total)
			if total == 0 {
				return exitError{1}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&o.LineNumbers, "line-number", "n", false, "prefix matches with line numbers")
	cmd.Flags().BoolVarP(&o.IgnoreCase, "ignore-case", "i", false, "match case-insensitively")
	encodingFlag(cmd, &encoding)
	return cmd
}
