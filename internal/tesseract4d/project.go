package tesseract4d

// ProjectPoint maps a 4D point into 3D with a perspective-style divide on W:
// scale = 1/(d - w). Points with larger W land closer to the origin, which
// produces the familiar cube-nested-in-cube silhouette. The divide is
// singular at w == d; for the unit tesseract (w ∈ {-1, 1}) any d > 1 is safe.
func ProjectPoint(p Point4, d Real) Point3 {
	scale := 1 / (d - p.W)
	return Point3{p.X * scale, p.Y * scale, p.Z * scale}
}

// projectVertices projects all tesseract vertices at once, keeping indexing.
func projectVertices(t *Tesseract, d Real) [VertexCount]Point3 {
	var out [VertexCount]Point3
	for i, v := range t.Vertices {
		out[i] = ProjectPoint(v, d)
	}
	return out
}
