package tesseract4d

// LineMesh is a flat list of 3D segment endpoints, two per edge, with one
// color per point (both endpoints of a segment share it). Positions are fixed
// at build time; per frame the whole mesh is only rotated rigidly in 3D, the
// 4D structure is never recomputed.
type LineMesh struct {
	Points []Point3
	Colors []RGB
}

// BuildLineMesh projects the tesseract's vertices once and expands the edges
// into segment endpoints. A rebuild is only needed when the geometry or the
// projection distance changes.
func BuildLineMesh(t *Tesseract, d Real, color RGB) *LineMesh {
	proj := projectVertices(t, d)
	m := &LineMesh{
		Points: make([]Point3, 0, 2*len(t.Edges)),
		Colors: make([]RGB, 0, 2*len(t.Edges)),
	}
	c := color.clamp01()
	for _, e := range t.Edges {
		m.Points = append(m.Points, proj[e[0]], proj[e[1]])
		m.Colors = append(m.Colors, c, c)
	}
	DebugLog("Built line mesh: %d points, %d segments", len(m.Points), len(m.Points)/2)
	return m
}

// Segments returns the number of line segments in the mesh.
func (m *LineMesh) Segments() int { return len(m.Points) / 2 }

// Spun returns point i rotated rigidly about the X then Y axis.
func (m *LineMesh) Spun(i int, ax, ay Real) Point3 {
	return rotY3(rotX3(m.Points[i], ax), ay)
}
