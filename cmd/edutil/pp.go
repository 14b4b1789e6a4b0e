// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ebujak/edutils/shutil"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "pp [file]",
		Short:       "Pretty print JSON or YAML as indented JSON with sorted keys",
		Args:        cobra.MaximumNArgs(1),
		Annotations: versioned("0.1"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) > 0 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			// JSON is a subset of YAML.
			var v interface{}
			if err := yaml.NewDecoder(r).Decode(&v); err != nil && err != io.EOF {
				return err
			}
			s, err := shutil.PrettyJSON(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	return cmd
}
