// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type pngCanvas struct {
	w   io.Writer
	img *image.RGBA
}

func newPNGCanvas(w io.Writer, size Size) *pngCanvas {
	img := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &pngCanvas{w, img}
}

func (c *pngCanvas) Polygon(xs, ys []float64, fill color.Color) {
	if len(xs) < 3 {
		return
	}
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(xs[0]), float32(ys[0]))
	for i := 1; i < len(xs); i++ {
		z.LineTo(float32(xs[i]), float32(ys[i]))
	}
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(fill), image.Point{})
}

func (c *pngCanvas) Line(x1, y1, x2, y2 float64, stroke color.Color) {
	// Draw a one pixel wide quad along the segment.
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*0.5, dx/l*0.5
	c.Polygon(
		[]float64{x1 + nx, x2 + nx, x2 - nx, x1 - nx},
		[]float64{y1 + ny, y2 + ny, y2 - ny, y1 - ny},
		stroke)
}

func (c *pngCanvas) Text(x, y float64, s string, a anchor, size float64, col color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, s)
	dot := fixed.P(round(x), round(y))
	switch a {
	case anchorMiddle:
		dot.X -= width / 2
	case anchorEnd:
		dot.X -= width
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)
}

func (c *pngCanvas) Close() error {
	return png.Encode(c.w, c.img)
}
