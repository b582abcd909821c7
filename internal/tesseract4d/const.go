package tesseract4d

import "math"

const (
	// Tesseract topology is fixed.
	VertexCount = 16
	EdgeCount   = 32

	// Viewer defaults (overridable from JSON config).
	WindowW  = 800
	WindowH  = 600
	ProjDist = 2.0   // 4D->3D perspective distance; must stay > 1
	RotStep  = 0.005 // radians per frame on each spun axis (frame-rate bound)

	// Orbit camera.
	DampingFactor = 0.05
	MinZoom       = 2.0
	MaxZoom       = 10.0
	MinPitch      = 0.0
	MaxPitch      = math.Pi / 2
	FOV           = math.Pi / 3
	nearPlane     = 0.1
	dragScale     = 0.01 // radians per pixel of pointer drag
	zoomScale     = 0.25 // distance units per wheel notch

	// Turntable GIF export.
	GIFOut   = "tesseract.gif"
	GIFDelay = 5 // 100ths of a second per frame
	Frames   = 120
	GIFW     = 512
	GIFH     = 512
)
