// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// PieLabel selects the text drawn inside each slice.
type PieLabel string

const (
	PiePercentage         PieLabel = "percentage"
	PieCount              PieLabel = "count"
	PiePercentageAndCount PieLabel = "percentage_and_count"
)

// ParsePieLabel parses s. "count_and_percentage" is accepted as an
// alias for PiePercentageAndCount.
func ParsePieLabel(s string) (PieLabel, error) {
	switch l := PieLabel(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return PiePercentage, nil
	case PiePercentage, PieCount, PiePercentageAndCount:
		return l, nil
	case "count_and_percentage":
		return PiePercentageAndCount, nil
	}
	return "", invalidf("pie label %q is not one of percentage, count, percentage_and_count", s)
}

// DefaultStartAngle is the angle of the first slice's leading edge in
// DefaultPieOptions.
const DefaultStartAngle = 140

// PieOptions control Pie.
type PieOptions struct {
	Title string

	// Labels name the slices and must be the same length as the
	// values.
	Labels []string
	// Colors, if given, must be the same length as the values.
	// Otherwise slices cycle through a default palette.
	Colors []string

	Label PieLabel // default PiePercentage

	// StartAngle is in degrees counterclockwise from the positive x
	// axis. Slices are laid out counterclockwise.
	StartAngle float64

	Size   Size // default 1000x600
	Format Format
}

// DefaultPieOptions returns options with the conventional start angle.
func DefaultPieOptions() PieOptions {
	return PieOptions{Label: PiePercentage, StartAngle: DefaultStartAngle}
}

// Pie draws a pie chart of values, each slice sized by its share of
// the total.
func Pie(w io.Writer, values []float64, o PieOptions) error {
	label, err := ParsePieLabel(string(o.Label))
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return invalidf("pie chart needs at least one value")
	}
	if len(o.Labels) != len(values) {
		return invalidf("got %d labels for %d values", len(o.Labels), len(values))
	}
	if len(o.Colors) != 0 && len(o.Colors) != len(values) {
		return invalidf("got %d colors for %d values", len(o.Colors), len(values))
	}
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidf("pie value %v must be finite and non-negative", v)
		}
	}
	total := floats.Sum(values)
	if total == 0 {
		return invalidf("pie values sum to zero")
	}
	fills := make([]color.Color, len(values))
	for i := range values {
		if len(o.Colors) == 0 {
			fills[i] = defaultPalette[i%len(defaultPalette)]
			continue
		}
		c, err := ParseColor(o.Colors[i])
		if err != nil {
			return err
		}
		fills[i] = c
	}
	size, err := o.Size.orDefault(Size{1000, 600})
	if err != nil {
		return err
	}

	c, err := newCanvas(w, o.Format, size)
	if err != nil {
		return err
	}
	black := color.Black
	top := 0.0
	if o.Title != "" {
		top = 30
		c.Text(float64(size.Width)/2, 22, o.Title, anchorMiddle, 16, black)
	}
	cx := float64(size.Width) / 2
	cy := top + (float64(size.Height)-top)/2
	r := math.Min(float64(size.Width), float64(size.Height)-top) * 0.35

	a := o.StartAngle * math.Pi / 180
	for i, v := range values {
		sweep := v / total * 2 * math.Pi
		if sweep > 0 {
			wedge(c, cx, cy, r, a, a+sweep, fills[i])
		}
		mid := a + sweep/2
		cos, sin := math.Cos(mid), math.Sin(mid)

		// Name outside the slice, on the side it points to.
		anc := anchorStart
		if cos < 0 {
			anc = anchorEnd
		}
		c.Text(cx+1.1*r*cos, cy-1.1*r*sin+4, o.Labels[i], anc, 12, black)

		lines := sliceLabel(label, v, v/total*100)
		ly := cy - 0.6*r*sin + 4 - 7*float64(len(lines)-1)
		for j, line := range lines {
			c.Text(cx+0.6*r*cos, ly+14*float64(j), line, anchorMiddle, 11, black)
		}
		a += sweep
	}
	return c.Close()
}

func sliceLabel(l PieLabel, v, pct float64) []string {
	switch l {
	case PieCount:
		return []string{formatTick(math.Trunc(v))}
	case PiePercentageAndCount:
		return []string{formatTick(math.Trunc(v)), fmt.Sprintf("(%.1f%%)", pct)}
	}
	return []string{fmt.Sprintf("%.1f%%", pct)}
}
