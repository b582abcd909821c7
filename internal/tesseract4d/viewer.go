package tesseract4d

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Viewer runs the interactive render loop. It has two states, running and
// stopped: it starts running, and Close moves it to stopped permanently.
// Every method is a no-op once stopped.
type Viewer struct {
	mesh *LineMesh
	cam  *OrbitCamera

	rotStep        Real
	angleX, angleY Real
	background     RGB

	width, height int
	offscreen     *ebiten.Image

	dragging     bool
	lastX, lastY int
	stopped      bool
}

// NewViewer wires a built mesh and camera to the render loop.
func NewViewer(mesh *LineMesh, cam *OrbitCamera, cfg *Config) *Viewer {
	return &Viewer{
		mesh:       mesh,
		cam:        cam,
		rotStep:    cfg.RotStep,
		background: cfg.Background,
		width:      cfg.WindowW,
		height:     cfg.WindowH,
	}
}

// Angles returns the accumulated spin angles (radians, mod 2π).
func (v *Viewer) Angles() (ax, ay Real) { return v.angleX, v.angleY }

// AspectRatio returns the current viewport aspect ratio.
func (v *Viewer) AspectRatio() Real { return Real(v.width) / Real(v.height) }

// Update advances the spin angles by a fixed per-frame step, feeds pointer
// input to the orbit camera and steps its damping. The step is per frame,
// not per elapsed time, so the spin speed follows the TPS.
func (v *Viewer) Update() error {
	if v.stopped {
		return nil
	}

	v.angleX = math.Mod(v.angleX+v.rotStep, 2*math.Pi)
	v.angleY = math.Mod(v.angleY+v.rotStep, 2*math.Pi)

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.dragging = true
		v.lastX, v.lastY = x, y
	}
	if v.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		v.cam.Rotate(Real(x-v.lastX), Real(y-v.lastY))
		v.lastX, v.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.dragging = false
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		v.cam.Zoom(wy)
	}

	v.cam.Update()
	return nil
}

// Draw composites the wireframe into an offscreen buffer sized to the screen
// and blits it. The buffer is reallocated when the viewport size changes and
// the previous one is released first.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.stopped || screen == nil {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if v.offscreen == nil || v.offscreen.Bounds().Dx() != w || v.offscreen.Bounds().Dy() != h {
		if v.offscreen != nil {
			v.offscreen.Deallocate()
		}
		v.offscreen = ebiten.NewImage(w, h)
	}

	v.offscreen.Fill(v.background.NRGBA())
	for s := 0; s < v.mesh.Segments(); s++ {
		p1 := v.mesh.Spun(2*s, v.angleX, v.angleY)
		p2 := v.mesh.Spun(2*s+1, v.angleX, v.angleY)
		x1, y1, ok1 := v.cam.WorldToScreen(p1, w, h)
		x2, y2, ok2 := v.cam.WorldToScreen(p2, w, h)
		// both endpoints must be in front of the near plane
		if !ok1 || !ok2 {
			continue
		}
		c := v.mesh.Colors[2*s].NRGBA()
		vector.StrokeLine(v.offscreen, float32(x1), float32(y1), float32(x2), float32(y2), 1, c, true)
	}
	screen.DrawImage(v.offscreen, nil)
}

// Layout adopts the host window's size. Safe to call before any frame has
// been drawn and after Close; it never reports a non-positive dimension.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !v.stopped && outsideWidth > 0 && outsideHeight > 0 {
		v.width, v.height = outsideWidth, outsideHeight
	}
	return v.width, v.height
}

// Close stops the loop and releases the offscreen buffer, then drops the
// mesh and camera references. Idempotent; Update/Draw/Layout stay callable
// afterwards as no-ops.
func (v *Viewer) Close() {
	if v.stopped {
		return
	}
	v.stopped = true
	if v.offscreen != nil {
		v.offscreen.Deallocate()
		v.offscreen = nil
	}
	v.mesh = nil
	v.cam = nil
}
