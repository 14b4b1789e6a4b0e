// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/ebujak/edutils/shutil"
	"github.com/spf13/cobra"
)

func encodingFlag(cmd *cobra.Command, p *string) {
	cmd.Flags().StringVarP(p, "encoding", "e", "", "text `encoding` of the input (default EDUTIL_ENCODING or utf-8)")
}

func textOptions(encoding string) shutil.TextOptions {
	if encoding == "" {
		encoding = cfg.Encoding
	}
	return shutil.TextOptions{Encoding: encoding}
}

func newHeadCmd() *cobra.Command {
	var (
		n        int
		encoding string
	)
	cmd := &cobra.Command{
		Use:         "head file...",
		Short:       "Print the first lines of files",
		Args:        cobra.MinimumNArgs(1),
		Annotations: versioned("0.2"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachFile(cmd, args, func(path string) error {
				return shutil.Head(cmd.OutOrStdout(), path, n, textOptions(encoding))
			})
		},
	}
	cmd.Flags().IntVarP(&n, "lines", "n", shutil.DefaultLines, "number of lines")
	encodingFlag(cmd, &encoding)
	return cmd
}

func newTailCmd() *cobra.Command {
	var (
		n        int
		encoding string
	)
	cmd := &cobra.Command{
		Use:         "tail file...",
		Short:       "Print the last lines of files",
		Args:        cobra.MinimumNArgs(1),
		Annotations: versioned("0.2"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachFile(cmd, args, func(path string) error {
				return shutil.Tail(cmd.OutOrStdout(), path, n, textOptions(encoding))
			})
		},
	}
	cmd.Flags().IntVarP(&n, "lines", "n", shutil.DefaultLines, "number of lines")
	encodingFlag(cmd, &encoding)
	return cmd
}

// eachFile calls f for each path, printing a "==> path <==" header
// before each when there is more than one.
func eachFile(cmd *cobra.Command, paths []string, f func(path string) error) error {
	for i, path := range paths {
		if len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "==> %s <==\n", path)
		}
		if err := f(path); err != nil {
			return err
		}
	}
	return nil
}

func newWCCmd() *cobra.Command {
	var encoding string
	cmd := &cobra.Command{
		Use:         "wc file...",
		Short:       "Count lines, words and characters in files",
		Args:        cobra.MinimumNArgs(1),
		Annotations: versioned("0.3"),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := shutil.WordCountFiles(cmd.Context(), args, textOptions(encoding))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range counts {
				fmt.Fprintln(out, c)
			}
			if len(counts) > 1 {
				fmt.Fprintln(out, shutil.Total(counts))
			}
			return nil
		},
	}
	encodingFlag(cmd, &encoding)
	return cmd
}

func newTreeCmd() *cobra.Command {
	var o shutil.TreeOptions
	cmd := &cobra.Command{
		Use:         "tree [dir]",
		Short:       "List a directory recursively as a tree",
		Args:        cobra.MaximumNArgs(1),
		Annotations: versioned("0.6"),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			_, _, err := shutil.Tree(cmd.OutOrStdout(), dir, o)
			return err
		},
	}
	cmd.Flags().BoolVarP(&o.ShowHidden, "all", "a", false, "include names starting with .")
	return cmd
}
