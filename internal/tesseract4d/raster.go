package tesseract4d

import (
	"image"
	"image/color"
)

// setPix writes one pixel with bounds checking.
func setPix(img *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{x, y}).In(img.Bounds()) {
		return
	}
	p := y*img.Stride + x*4
	img.Pix[p+0] = c.R
	img.Pix[p+1] = c.G
	img.Pix[p+2] = c.B
	img.Pix[p+3] = c.A
}

// drawLine rasterizes a segment with the integer Bresenham walk. Endpoints
// may lie outside the image; pixels are clipped per write.
func drawLine(img *image.NRGBA, x1, y1, x2, y2 int, c color.NRGBA) {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx - dy
	for {
		setPix(img, x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x1 += sx
		}
		if e2 < dx {
			e += dx
			y1 += sy
		}
	}
}
