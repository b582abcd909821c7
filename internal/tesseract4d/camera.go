package tesseract4d

import "math"

// OrbitCamera orbits the origin at a clamped distance. Pointer input adjusts
// target angles; the visible angles chase the targets with exponential
// damping each frame. Panning is intentionally not supported, and pitch is
// clamped to [0, π/2] so the camera cannot flip below the horizon.
type OrbitCamera struct {
	Yaw, Pitch, Dist Real

	targetYaw   Real
	targetPitch Real
	targetDist  Real
}

// NewOrbitCamera starts at the given spherical pose with damping settled.
func NewOrbitCamera(yaw, pitch, dist Real) *OrbitCamera {
	c := &OrbitCamera{}
	c.targetYaw = yaw
	c.targetPitch = clamp(pitch, MinPitch, MaxPitch)
	c.targetDist = clamp(dist, MinZoom, MaxZoom)
	c.Yaw, c.Pitch, c.Dist = c.targetYaw, c.targetPitch, c.targetDist
	return c
}

// Rotate applies a pointer drag of (dx, dy) pixels to the target angles.
func (c *OrbitCamera) Rotate(dx, dy Real) {
	c.targetYaw += dx * dragScale
	c.targetPitch = clamp(c.targetPitch+dy*dragScale, MinPitch, MaxPitch)
}

// Zoom moves the target distance by delta wheel notches.
func (c *OrbitCamera) Zoom(delta Real) {
	c.targetDist = clamp(c.targetDist-delta*zoomScale, MinZoom, MaxZoom)
}

// Update advances the damped angles one frame toward their targets.
func (c *OrbitCamera) Update() {
	c.Yaw += (c.targetYaw - c.Yaw) * DampingFactor
	c.Pitch += (c.targetPitch - c.Pitch) * DampingFactor
	c.Dist += (c.targetDist - c.Dist) * DampingFactor
}

// Eye returns the camera position derived from the spherical pose.
func (c *OrbitCamera) Eye() Point3 {
	cp := math.Cos(c.Pitch)
	return Point3{
		X: c.Dist * cp * math.Sin(c.Yaw),
		Y: c.Dist * math.Sin(c.Pitch),
		Z: c.Dist * cp * math.Cos(c.Yaw),
	}
}

// view rotates a world point into camera space: the eye direction maps onto
// +Z, depth along the view axis is Dist - q.Z.
func (c *OrbitCamera) view(p Point3) Point3 {
	return rotX3(rotY3(p, -c.Yaw), c.Pitch)
}

// WorldToScreen maps a world point to pixel coordinates on a w×h viewport.
// The visibility flag is false for points at or behind the near plane.
func (c *OrbitCamera) WorldToScreen(p Point3, w, h int) (sx, sy Real, visible bool) {
	q := c.view(p)
	depth := c.Dist - q.Z
	if depth < nearPlane {
		return 0, 0, false
	}
	f := Real(h) / (2 * math.Tan(FOV/2))
	sx = Real(w)/2 + f*q.X/depth
	sy = Real(h)/2 - f*q.Y/depth
	return sx, sy, true
}
