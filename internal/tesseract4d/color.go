package tesseract4d

import "image/color"

// RGB stores color components; each should be in [0,1].
type RGB struct {
	R, G, B Real
}

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	cl := func(x Real) Real {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return RGB{cl(c.R), cl(c.G), cl(c.B)}
}

// NRGBA converts to an 8-bit color for drawing.
func (c RGB) NRGBA() color.NRGBA {
	cc := c.clamp01()
	return color.NRGBA{
		R: uint8(cc.R*255 + 0.5),
		G: uint8(cc.G*255 + 0.5),
		B: uint8(cc.B*255 + 0.5),
		A: 255,
	}
}
