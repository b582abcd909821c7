package tesseract4d

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
)

// SaveTurntableGIF renders one full revolution of the mesh about both spun
// axes into an animated GIF. cfg.GIFDelay is in 100ths of a second per frame
// (e.g., 5 => 20 fps). Rendering is a pure software pass: rotate, map through
// a fixed orbit camera, Bresenham the segments into an NRGBA frame, quantize.
func SaveTurntableGIF(mesh *LineMesh, cfg *Config) error {
	w, h, frames := cfg.GIFW, cfg.GIFH, cfg.Frames

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}
	cam := NewOrbitCamera(math.Pi/4, math.Pi/6, 4)
	bg := cfg.Background.NRGBA()

	for f := 0; f < frames; f++ {
		if f%imax(1, frames/100) == 0 { // ~1% steps
			percent := Real(f+1) * 100 / Real(frames)
			fmt.Printf("[GIF] %.2f%%\n", percent)
		}
		a := 2 * math.Pi * Real(f) / Real(frames)

		rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			rowOff := y * rgba.Stride
			for x := 0; x < w; x++ {
				p := rowOff + x*4
				rgba.Pix[p+0] = bg.R
				rgba.Pix[p+1] = bg.G
				rgba.Pix[p+2] = bg.B
				rgba.Pix[p+3] = 255
			}
		}

		for s := 0; s < mesh.Segments(); s++ {
			p1 := mesh.Spun(2*s, a, a)
			p2 := mesh.Spun(2*s+1, a, a)
			x1, y1, ok1 := cam.WorldToScreen(p1, w, h)
			x2, y2, ok2 := cam.WorldToScreen(p2, w, h)
			if !ok1 || !ok2 {
				continue
			}
			drawLine(rgba, int(math.Round(x1)), int(math.Round(y1)), int(math.Round(x2)), int(math.Round(y2)), mesh.Colors[2*s].NRGBA())
		}

		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, cfg.GIFDelay)
	}

	f, err := os.Create(cfg.GIFOut)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gif.EncodeAll(f, out); err != nil {
		return err
	}
	DebugLog("Saved turntable GIF: %s (%d frames)", cfg.GIFOut, frames)
	return nil
}
