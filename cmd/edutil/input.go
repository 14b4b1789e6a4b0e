// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ebujak/edutils/sample"
	"github.com/spf13/cobra"
)

// sampleFlags select where a command reads its sample from.
type sampleFlags struct {
	files  []string
	column string
}

func (f *sampleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.files, "file", "f", nil, "read values from `files` (- for stdin)")
	cmd.Flags().StringVarP(&f.column, "column", "c", "", "read the `column` with this header from CSV or XLSX files")
}

// read returns the sample given by args (values on the command line),
// the files flag, or stdin.
func (f *sampleFlags) read(cmd *cobra.Command, args []string) ([]interface{}, error) {
	if len(args) > 0 {
		if len(f.files) > 0 {
			return nil, errors.New("give values as arguments or with -f, not both")
		}
		return sample.ParseStrings(args, sample.DefaultValueParsers), nil
	}
	files := f.files
	if len(files) == 0 {
		files = []string{"-"}
	}
	if f.column != "" {
		return f.readColumns(cmd, files)
	}

	var vals []interface{}
	for _, path := range files {
		var r io.Reader
		if path == "-" {
			r = cmd.InOrStdin()
		} else {
			file, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer file.Close()
			r = file
		}
		vs, err := sample.Parse(r, sample.DefaultValueParsers)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("sample", "action", "read", "file", path, "values", len(vs))
		vals = append(vals, vs...)
	}
	return vals, nil
}

func (f *sampleFlags) readColumns(cmd *cobra.Command, files []string) ([]interface{}, error) {
	var vals []interface{}
	for _, path := range files {
		var col *sample.Column
		var err error
		if path == "-" {
			col, err = sample.ReadColumnCSV(cmd.InOrStdin(), f.column)
		} else {
			col, err = sample.ReadColumn(path, f.column)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("sample", "action", "read column", "file", path, "column", col.Name,
			"values", len(col.Values), "rows", col.Rows)
		vals = append(vals, col.Values...)
	}
	return vals, nil
}

// readCounts reads a category-to-count mapping from path, or stdin if
// path is "" or "-".
func readCounts(cmd *cobra.Command, path string) ([]sample.Count, error) {
	if path == "" || path == "-" {
		return sample.DecodeCounts(cmd.InOrStdin())
	}
	return sample.ReadCounts(path)
}
