// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/scale"
	"github.com/ebujak/edutils/sample"
	"gonum.org/v1/gonum/floats"
)

// Annotation selects the text drawn above each bar.
type Annotation string

const (
	AnnotateNone               Annotation = ""
	AnnotateCount              Annotation = "count"
	AnnotatePercentage         Annotation = "percentage"
	AnnotateCountAndPercentage Annotation = "count_and_percentage"
)

// ParseAnnotation parses s, ignoring case and surrounding space.
// "none" is accepted as a synonym for the empty annotation.
func ParseAnnotation(s string) (Annotation, error) {
	a := Annotation(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case AnnotateNone, AnnotateCount, AnnotatePercentage, AnnotateCountAndPercentage:
		return a, nil
	case "none":
		return AnnotateNone, nil
	}
	return "", invalidf("bar annotation %q is not one of count, percentage, count_and_percentage", s)
}

// BarOptions control Bar.
type BarOptions struct {
	Title      string
	XLabel     string // default "Category"
	LeftLabel  string // default "Count"
	RightLabel string // default "Percentage"

	Annotation Annotation
	FontSize   float64 // annotation size; default 11

	// HideLeftTicks and HideRightTicks suppress the count and
	// percentage tick labels.
	HideLeftTicks, HideRightTicks bool

	Color string  // default "blue"
	Alpha float64 // 0 means 0.5

	// Total is the denominator of the percentages. If it is 0, the
	// sum of the counts is used, making percentages relative.
	Total float64

	Size   Size // default 1000x600
	Format Format
}

// Bar draws a categorical bar chart of counts in the given order, with
// counts on the left axis and percentages of the total on the right.
func Bar(w io.Writer, counts []sample.Count, o BarOptions) error {
	if len(counts) == 0 {
		return invalidf("bar chart needs at least one category")
	}
	if o.Total < 0 {
		return invalidf("total %g must not be negative", o.Total)
	}
	ann, err := ParseAnnotation(string(o.Annotation))
	if err != nil {
		return err
	}
	if o.XLabel == "" {
		o.XLabel = "Category"
	}
	if o.LeftLabel == "" {
		o.LeftLabel = "Count"
	}
	if o.RightLabel == "" {
		o.RightLabel = "Percentage"
	}
	if o.FontSize == 0 {
		o.FontSize = 11
	}
	if o.Color == "" {
		o.Color = "blue"
	}
	if o.Alpha == 0 {
		o.Alpha = 0.5
	}
	if err := checkAlpha(o.Alpha); err != nil {
		return err
	}
	col, err := ParseColor(o.Color)
	if err != nil {
		return err
	}
	size, err := o.Size.orDefault(Size{1000, 600})
	if err != nil {
		return err
	}

	vals := make([]float64, len(counts))
	for i, c := range counts {
		if c.Value < 0 || math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
			return invalidf("count %v for %q must be finite and non-negative", c.Value, c.Category)
		}
		vals[i] = c.Value
	}
	total := o.Total
	if total == 0 {
		total = floats.Sum(vals)
	}
	pct := func(v float64) float64 {
		if total == 0 {
			return 0
		}
		return v / total * 100
	}

	maxY := floats.Max(vals) * 1.06
	if maxY == 0 {
		maxY = 1
	}

	c, err := newCanvas(w, o.Format, size)
	if err != nil {
		return err
	}
	const (
		marginL, marginR = 80.0, 80.0
		marginT, marginB = 50.0, 60.0
	)
	black := color.Black
	x0, x1 := marginL, float64(size.Width)-marginR
	y0, y1 := float64(size.Height)-marginB, marginT
	ys := scale.Linear{Min: 0, Max: maxY}
	yPix := func(v float64) float64 { return y0 + (y1-y0)*ys.Map(v) }

	// Bars.
	slot := (x1 - x0) / float64(len(counts))
	barW := slot * 0.8
	fill := withAlpha(col, o.Alpha)
	for i, cnt := range counts {
		bx := x0 + slot*float64(i) + (slot-barW)/2
		top := yPix(cnt.Value)
		rect(c, bx, top, barW, y0-top, fill)
		mid := bx + barW/2
		c.Text(mid, y0+16, cnt.Category, anchorMiddle, 12, black)
		if label := barLabel(ann, cnt.Value, pct(cnt.Value)); label != "" {
			c.Text(mid, yPix(cnt.Value+maxY*0.01)-2, label, anchorMiddle, o.FontSize, black)
		}
	}

	// Axes.
	c.Line(x0, y0, x1, y0, black)
	c.Line(x0, y0, x0, y1, black)
	c.Line(x1, y0, x1, y1, black)
	if !o.HideLeftTicks {
		major, _ := ys.Ticks(scale.TickOptions{Max: 8})
		for _, t := range major {
			py := yPix(t)
			c.Line(x0-5, py, x0, py, black)
			c.Text(x0-8, py+4, formatTick(t), anchorEnd, 11, black)
		}
	}
	if !o.HideRightTicks && total != 0 {
		ps := scale.Linear{Min: 0, Max: pct(maxY)}
		major, _ := ps.Ticks(scale.TickOptions{Max: 8})
		for _, t := range major {
			py := y0 + (y1-y0)*ps.Map(t)
			c.Line(x1, py, x1+5, py, black)
			c.Text(x1+8, py+4, formatTick(t)+"%", anchorStart, 11, black)
		}
	}

	c.Text(x0, y1-10, o.LeftLabel, anchorMiddle, 14, black)
	c.Text(x1, y1-10, o.RightLabel, anchorMiddle, 14, black)
	c.Text((x0+x1)/2, float64(size.Height)-15, o.XLabel, anchorMiddle, 14, black)
	if o.Title != "" {
		c.Text((x0+x1)/2, 20, o.Title, anchorMiddle, 16, black)
	}
	return c.Close()
}

func barLabel(a Annotation, count, pct float64) string {
	switch a {
	case AnnotateCount:
		return formatTick(count)
	case AnnotatePercentage:
		return fmt.Sprintf("%.1f%%", pct)
	case AnnotateCountAndPercentage:
		return fmt.Sprintf("%s (%.1f%%)", formatTick(count), pct)
	}
	return ""
}

// formatTick formats v without a fractional part if it is whole.
func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
