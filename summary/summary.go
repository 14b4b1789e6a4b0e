// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package summary computes five-number summaries of numeric samples.
//
// A five-number summary is the tuple (minimum, first quartile,
// median, third quartile, maximum). There is more than one accepted
// way to compute the quartiles, and this package provides two of
// them under distinct names:
//
// FiveNumber uses the hinge (Tukey) method: Q2 is the median of the
// sorted sample, and Q1 and Q3 are the medians of the lower and upper
// halves. If the sample has an odd number of elements, the median
// itself belongs to neither half.
//
// FiveNumberInterp uses linear interpolation between order
// statistics at fractional ranks (Hyndman and Fan type 7, the
// default of NumPy and R).
//
// The two disagree on most inputs. For example, for
// [1 2 3 7 8 8 11 15 17], FiveNumber gives (1, 2.5, 8, 13, 17) while
// FiveNumberInterp gives (1, 3, 8, 11, 17). Callers should pick one
// convention and stick with it.
package summary

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrTooShort is returned when a sample has fewer than two
	// values.
	ErrTooShort = errors.New("sample must have at least 2 values")

	// ErrNotNumeric is returned when a sample value is not an
	// integer or real number.
	ErrNotNumeric = errors.New("sample values must be integers or real numbers")
)

// Summary is a five-number summary. Min <= Q1 <= Q2 <= Q3 <= Max.
type Summary struct {
	Min, Q1, Q2, Q3, Max float64
}

// Median returns the second quartile.
func (s Summary) Median() float64 {
	return s.Q2
}

// IQR returns the interquartile range, Q3 - Q1.
func (s Summary) IQR() float64 {
	return s.Q3 - s.Q1
}

// Tuple returns s as (min, Q1, Q2, Q3, max).
func (s Summary) Tuple() [5]float64 {
	return [5]float64{s.Min, s.Q1, s.Q2, s.Q3, s.Max}
}

func (s Summary) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g, %g)", s.Min, s.Q1, s.Q2, s.Q3, s.Max)
}

// FiveNumber returns the hinge five-number summary of xs. xs is not
// modified.
func FiveNumber(xs []float64) (Summary, error) {
	if len(xs) < 2 {
		return Summary{}, ErrTooShort
	}
	sorted := sortedCopy(xs)

	q2, low, high := split(sorted)
	q1, _, _ := split(low)
	q3, _, _ := split(high)

	return Summary{sorted[0], q1, q2, q3, sorted[len(sorted)-1]}, nil
}

// split returns the median of sorted xs and the halves below and
// above it. For odd lengths the median element is in neither half.
func split(xs []float64) (median float64, low, high []float64) {
	mid := len(xs) / 2
	if len(xs)%2 == 0 {
		return (xs[mid-1] + xs[mid]) / 2, xs[:mid], xs[mid:]
	}
	return xs[mid], xs[:mid], xs[mid+1:]
}

func sortedCopy(xs []float64) []float64 {
	c := make([]float64, len(xs))
	copy(c, xs)
	sort.Float64s(c)
	return c
}
