// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// HistogramOptions control Histogram. The zero value is a 20 bin
// histogram with a density overlay disabled.
type HistogramOptions struct {
	Title  string
	XLabel string // default "Value"

	Bins int // default 20

	// KDE overlays a kernel density estimate scaled to counts.
	KDE bool

	Color string  // default "blue"
	Alpha float64 // fill opacity in [0, 1]; 0 means 0.5

	Size Size // default 600x500

	// Format must be SVG (or empty).
	Format Format
}

// Bin is one bar of a histogram: values in [Lo, Hi).
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Bins sorts xs into n equal-width bins spanning [min, max] of xs.
// The last bin is closed on the right so the maximum is counted. If
// all values are equal, the single value is centered in a bin range
// of width 1.
func Bins(xs []float64, n int) ([]Bin, error) {
	if len(xs) == 0 {
		return nil, invalidf("histogram needs at least one value")
	}
	if n <= 0 {
		return nil, invalidf("bins %d must be positive", n)
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, invalidf("histogram values must be finite, got %v", x)
		}
	}

	lo, hi := stats.Bounds(xs)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	h := stats.NewLinearHist(lo, hi, n)
	for _, x := range xs {
		h.Add(x)
	}
	_, counts, over := h.Counts()
	// LinearHist bins are open on the right; the only values
	// "over" are those equal to hi.
	counts[len(counts)-1] += over

	bins := make([]Bin, len(counts))
	for i, c := range counts {
		bins[i] = Bin{h.BinToValue(float64(i)), h.BinToValue(float64(i + 1)), int(c)}
	}
	bins[len(bins)-1].Hi = hi
	return bins, nil
}

// Histogram draws a histogram of xs to w.
func Histogram(w io.Writer, xs []float64, o HistogramOptions) error {
	if o.Format != "" && o.Format != SVG {
		return invalidf("histograms can only be rendered as SVG, not %s", o.Format)
	}
	if o.Bins == 0 {
		o.Bins = 20
	}
	if o.XLabel == "" {
		o.XLabel = "Value"
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
	size, err := o.Size.orDefault(Size{600, 500})
	if err != nil {
		return err
	}
	bins, err := Bins(xs, o.Bins)
	if err != nil {
		return err
	}

	plot := gg.NewPlot(stepTable(bins))
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerSteps{
		LayerPaths: gg.LayerPaths{
			X:     "value",
			Y:     "count",
			Color: plot.Const(col),
			Fill:  plot.Const(withAlpha(col, o.Alpha)),
		},
		Step: gg.StepHV,
	})

	if o.KDE && (stats.Sample{Xs: xs}).StdDev() > 0 {
		plot.SetData(kdeTable(xs, bins))
		plot.Add(gg.LayerLines{
			X:     "value",
			Y:     "count",
			Color: plot.Const(color.NRGBA{0, 0, 0, 255}),
		})
	}

	if o.Title != "" {
		plot.Add(gg.Title(o.Title))
	}
	plot.Add(gg.AxisLabel("x", o.XLabel), gg.AxisLabel("y", "Count"))
	return plot.WriteSVG(w, size.Width, size.Height)
}

// stepTable returns the outline of bins as a sequence of points to be
// connected horizontally then vertically, starting and ending at 0.
func stepTable(bins []Bin) *table.Table {
	xs := []float64{bins[0].Lo}
	ys := []float64{0}
	for _, b := range bins {
		xs = append(xs, b.Lo)
		ys = append(ys, float64(b.Count))
	}
	last := bins[len(bins)-1]
	xs = append(xs, last.Hi, last.Hi)
	ys = append(ys, float64(last.Count), 0)
	return new(table.Builder).Add("value", xs).Add("count", ys).Done()
}

// kdeTable samples a kernel density estimate of xs across the range
// of bins, scaled so its area matches the histogram's.
func kdeTable(xs []float64, bins []Bin) *table.Table {
	const points = 200
	kde := &stats.KDE{Sample: stats.Sample{Xs: xs}}
	lo, hi := bins[0].Lo, bins[len(bins)-1].Hi
	scale := float64(len(xs)) * (bins[0].Hi - bins[0].Lo)

	vs := make([]float64, points)
	ds := make([]float64, points)
	for i := range vs {
		x := lo + (hi-lo)*float64(i)/(points-1)
		vs[i] = x
		ds[i] = kde.PDF(x) * scale
	}
	return new(table.Builder).Add("value", vs).Add("count", ds).Done()
}
