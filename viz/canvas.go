// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"image/color"
	"io"
	"math"
)

type anchor int

const (
	anchorStart anchor = iota
	anchorMiddle
	anchorEnd
)

// canvas is the drawing surface shared by the SVG and PNG backends.
// Coordinates are in pixels with the origin at the top left.
type canvas interface {
	Polygon(xs, ys []float64, fill color.Color)
	Line(x1, y1, x2, y2 float64, stroke color.Color)
	// Text draws s with its baseline at y. size is a hint; the
	// PNG backend has a single fixed-size face.
	Text(x, y float64, s string, a anchor, size float64, c color.Color)
	// Close flushes the image to the underlying writer.
	Close() error
}

func newCanvas(w io.Writer, f Format, size Size) (canvas, error) {
	switch f {
	case SVG, "":
		return newSVGCanvas(w, size), nil
	case PNG:
		return newPNGCanvas(w, size), nil
	}
	return nil, invalidf("unknown format %q", string(f))
}

func rect(c canvas, x, y, w, h float64, fill color.Color) {
	c.Polygon([]float64{x, x + w, x + w, x}, []float64{y, y, y + h, y + h}, fill)
}

// wedge draws a pie slice centered at (cx, cy) from angle a0 to a1
// (in radians, counterclockwise from the positive x axis, with y
// pointing up on screen).
func wedge(c canvas, cx, cy, r, a0, a1 float64, fill color.Color) {
	// One vertex per degree is smooth at chart sizes.
	n := int(math.Ceil((a1-a0)/(math.Pi/180))) + 1
	if n < 2 {
		n = 2
	}
	xs := make([]float64, 0, n+1)
	ys := make([]float64, 0, n+1)
	xs, ys = append(xs, cx), append(ys, cy)
	for i := 0; i < n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n-1)
		xs = append(xs, cx+r*math.Cos(a))
		ys = append(ys, cy-r*math.Sin(a))
	}
	c.Polygon(xs, ys, fill)
}
