// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/ebujak/edutils/viz"
	"github.com/spf13/cobra"
)

// chartFlags are shared by the chart commands.
type chartFlags struct {
	out           string
	format        string
	width, height int
	title         string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.out, "output", "o", "", "write the chart to `file` (.svg or .png); default stdout")
	cmd.Flags().StringVar(&f.format, "format", "svg", "image `format` for stdout: svg or png")
	cmd.Flags().IntVar(&f.width, "width", 0, "chart width in pixels (default EDUTIL_CHART_WIDTH or the chart's default)")
	cmd.Flags().IntVar(&f.height, "height", 0, "chart height in pixels")
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "chart title")
}

func (f *chartFlags) size() viz.Size {
	s := viz.Size{Width: f.width, Height: f.height}
	if s.Width == 0 {
		s.Width = cfg.ChartWidth
	}
	if s.Height == 0 {
		s.Height = cfg.ChartHeight
	}
	return s
}

// write renders a chart to the output file or stdout.
func (f *chartFlags) write(cmd *cobra.Command, draw func(w io.Writer, format viz.Format) error) error {
	if f.out == "" {
		return draw(cmd.OutOrStdout(), viz.Format(f.format))
	}
	logger.Info("chart", "action", "save", "file", f.out)
	return viz.WriteFile(f.out, draw)
}
