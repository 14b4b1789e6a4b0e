// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import "math"

// FiveNumberInterp returns the five-number summary of xs with
// quartiles computed by Quantile. xs is not modified.
//
// This intentionally does not agree with FiveNumber.
func FiveNumberInterp(xs []float64) (Summary, error) {
	if len(xs) < 2 {
		return Summary{}, ErrTooShort
	}
	sorted := sortedCopy(xs)
	return Summary{
		Min: sorted[0],
		Q1:  Quantile(sorted, 0.25),
		Q2:  Quantile(sorted, 0.5),
		Q3:  Quantile(sorted, 0.75),
		Max: sorted[len(sorted)-1],
	}, nil
}

// Quantile returns the q'th quantile of sorted by linear
// interpolation between the order statistics at rank (n-1)*q. This is
// method 7 of Hyndman and Fan (1996).
//
// sorted must be in increasing order. q is clamped to [0, 1]. If
// sorted is empty, Quantile returns NaN.
//
// go-moremath's stats.Sample.Quantile uses method 8, which gives
// different quartiles on small samples, so it can't be used here.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}
	h := float64(n-1) * q
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
