package icon

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Fallback draws a rounded square with a check (active) or a cross (inactive).
// It depends on no external resource.
func Fallback(active bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))

	fill := inactiveFill
	if active {
		fill = activeFill
	}
	fillPath(img, fill, func(z *vector.Rasterizer) {
		roundedRect(z, 4, 4, 60, 60, 12)
	})

	const width = 7
	if active {
		stroke(img, glyphColor, width, 18, 33, 28, 43)
		stroke(img, glyphColor, width, 28, 43, 47, 21)
	} else {
		stroke(img, glyphColor, width, 20, 20, 44, 44)
		stroke(img, glyphColor, width, 20, 44, 44, 20)
	}
	return img
}

func fillPath(dst *image.RGBA, c color.RGBA, build func(z *vector.Rasterizer)) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	build(z)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// roundedRect adds a closed rounded rectangle with corner radius r.
func roundedRect(z *vector.Rasterizer, x0, y0, x1, y1, r float32) {
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.QuadTo(x1, y0, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.QuadTo(x1, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.QuadTo(x0, y1, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.QuadTo(x0, y0, x0+r, y0)
	z.ClosePath()
}

// stroke draws a line segment of the given width with square caps.
func stroke(dst *image.RGBA, c color.RGBA, width, x0, y0, x1, y1 float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Unit direction and normal scaled to half the width.
	half := width / 2
	ux, uy := dx/length*half, dy/length*half
	nx, ny := -uy, ux

	fillPath(dst, c, func(z *vector.Rasterizer) {
		z.MoveTo(x0-ux+nx, y0-uy+ny)
		z.LineTo(x1+ux+nx, y1+uy+ny)
		z.LineTo(x1+ux-nx, y1+uy-ny)
		z.LineTo(x0-ux-nx, y0-uy-ny)
		z.ClosePath()
	})
}
