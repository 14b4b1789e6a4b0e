// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viz draws a few fixed kinds of charts: histograms,
// categorical bar charts and pie charts.
//
// Histograms are built with go-gg and rendered as SVG. Bar and pie
// charts are drawn directly and can be rendered as SVG or PNG.
package viz

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrInvalid is wrapped by all option and input validation errors.
var ErrInvalid = errors.New("invalid chart input")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Format is an output image format.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// FormatOf returns the Format implied by path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return SVG, nil
	case ".png":
		return PNG, nil
	}
	return "", invalidf("cannot infer image format from %q (want .svg or .png)", path)
}

// Size is a chart size in pixels. A zero Size means the chart's
// default.
type Size struct {
	Width, Height int
}

func (s Size) orDefault(def Size) (Size, error) {
	if s.Width == 0 && s.Height == 0 {
		return def, nil
	}
	if s.Width <= 0 || s.Height <= 0 {
		return s, invalidf("size %dx%d must be positive", s.Width, s.Height)
	}
	return s, nil
}

// WriteFile creates path and calls draw with it and the format
// implied by its extension. The file is removed if draw fails.
func WriteFile(path string, draw func(w io.Writer, f Format) error) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := draw(out, f); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

var namedColors = map[string]color.NRGBA{
	"black":  {0, 0, 0, 255},
	"white":  {255, 255, 255, 255},
	"gray":   {128, 128, 128, 255},
	"grey":   {128, 128, 128, 255},
	"red":    {214, 39, 40, 255},
	"green":  {44, 160, 44, 255},
	"blue":   {31, 119, 180, 255},
	"orange": {255, 127, 14, 255},
	"purple": {148, 103, 189, 255},
	"brown":  {140, 86, 75, 255},
	"pink":   {227, 119, 194, 255},
	"olive":  {188, 189, 34, 255},
	"cyan":   {23, 190, 207, 255},
	"yellow": {255, 221, 0, 255},
}

// defaultPalette is used for slices and bars when no colors are
// given.
var defaultPalette = []color.NRGBA{
	namedColors["blue"], namedColors["orange"], namedColors["green"],
	namedColors["red"], namedColors["purple"], namedColors["brown"],
	namedColors["pink"], namedColors["gray"], namedColors["olive"],
	namedColors["cyan"],
}

// ParseColor parses a color name or a "#rgb" or "#rrggbb" hex color.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
			}
		}
	}
	return color.NRGBA{}, invalidf("unknown color %q", s)
}

// withAlpha returns c with alpha a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(a*255 + 0.5)
	return c
}

func checkAlpha(a float64) error {
	if a < 0 || a > 1 {
		return invalidf("alpha %g must be in [0, 1]", a)
	}
	return nil
}
