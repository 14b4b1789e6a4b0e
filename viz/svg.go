// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

type svgCanvas struct {
	ew  *errWriter
	svg *svg.SVG
}

// errWriter records the first write error, since svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func newSVGCanvas(w io.Writer, size Size) *svgCanvas {
	ew := &errWriter{w: w}
	c := &svgCanvas{ew, svg.New(ew)}
	c.svg.Start(size.Width, size.Height)
	c.svg.Rect(0, 0, size.Width, size.Height, "fill:white")
	return c
}

func (c *svgCanvas) Polygon(xs, ys []float64, fill color.Color) {
	if len(xs) == 0 {
		return
	}
	var path []byte
	for i := range xs {
		if i == 0 {
			path = append(path, 'M')
		} else {
			path = append(path, " L"...)
		}
		path = strconv.AppendFloat(path, xs[i], 'f', 2, 64)
		path = append(path, ' ')
		path = strconv.AppendFloat(path, ys[i], 'f', 2, 64)
	}
	path = append(path, " Z"...)
	c.svg.Path(string(path), cssPaint("fill", fill)+";stroke:white;stroke-width:0.5")
}

func (c *svgCanvas) Line(x1, y1, x2, y2 float64, stroke color.Color) {
	c.svg.Path(fmt.Sprintf("M%.2f %.2f L%.2f %.2f", x1, y1, x2, y2), cssPaint("stroke", stroke)+";stroke-width:1")
}

func (c *svgCanvas) Text(x, y float64, s string, a anchor, size float64, col color.Color) {
	anchors := [...]string{"start", "middle", "end"}
	style := fmt.Sprintf("font-family:sans-serif;font-size:%.0fpx;text-anchor:%s;%s", size, anchors[a], cssPaint("fill", col))
	c.svg.Text(round(x), round(y), s, style)
}

func (c *svgCanvas) Close() error {
	c.svg.End()
	return c.ew.err
}

func cssPaint(prop string, c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := fmt.Sprintf("%s:#%02x%02x%02x", prop, n.R, n.G, n.B)
	if n.A != 255 {
		s += fmt.Sprintf(";%s-opacity:%.3g", prop, float64(n.A)/255)
	}
	return s
}

func round(x float64) int {
	if x < 0 {
		return int(x - 0.5)
	}
	return int(x + 0.5)
}
