// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Method selects a quartile convention.
type Method string

const (
	Hinge  Method = "hinge"
	Interp Method = "interp"
)

// ParseMethod returns the Method named by s.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case Hinge, Interp:
		return m, nil
	}
	return "", fmt.Errorf("unknown quartile method %q (want %q or %q)", s, Hinge, Interp)
}

// Compute returns the five-number summary of xs using method m.
func (m Method) Compute(xs []float64) (Summary, error) {
	switch m {
	case Hinge, "":
		return FiveNumber(xs)
	case Interp:
		return FiveNumberInterp(xs)
	}
	return Summary{}, fmt.Errorf("unknown quartile method %q", string(m))
}

// Description is a five-number summary plus moments of a sample.
type Description struct {
	N       int
	Sum     float64
	Mean    float64
	GeoMean float64 // NaN unless all values are positive
	StdDev  float64
	Summary
}

// Describe summarizes xs using quartile method m.
func Describe(xs []float64, m Method) (Description, error) {
	sum, err := m.Compute(xs)
	if err != nil {
		return Description{}, err
	}
	s := stats.Sample{Xs: xs}
	return Description{
		N:       len(xs),
		Sum:     s.Sum(),
		Mean:    s.Mean(),
		GeoMean: geoMean(xs),
		StdDev:  s.StdDev(),
		Summary: sum,
	}, nil
}

func geoMean(xs []float64) float64 {
	for _, x := range xs {
		if x <= 0 {
			return math.NaN()
		}
	}
	return stats.GeoMean(xs)
}

// Fprint writes a line of moments followed by one line per summary
// statistic.
func (d Description) Fprint(w io.Writer) {
	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g", d.N, d.Sum, d.Mean)
	if !math.IsNaN(d.GeoMean) {
		fmt.Fprintf(w, "  gmean %.6g", d.GeoMean)
	}
	fmt.Fprintf(w, "  std dev %.6g\n\n", d.StdDev)

	labels := []string{"min", "Q1", "median", "Q3", "max"}
	for i, x := range d.Tuple() {
		fmt.Fprintf(w, "%8s %.6g\n", labels[i], x)
	}
}
