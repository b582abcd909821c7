package tesseract4d

import (
	"fmt"
	"math/bits"
)

// Tesseract: the 8-cell, axis-aligned in local space, then rotated about the
// origin and translated to Center. Vertex index bit k selects the sign of
// local coordinate k (bit0→X, bit1→Y, bit2→Z, bit3→W). An edge connects two
// vertices iff their index bit patterns differ in exactly one bit, which is
// the same as the vertices differing in exactly one coordinate.
type Tesseract struct {
	Center Point4
	Half   Vector4 // half-sizes: Lx/2, Ly/2, Lz/2, Lw/2
	R      Mat4    // local->world rotation

	Vertices [VertexCount]Point4
	Edges    [EdgeCount][2]int
}

// NewTesseract constructs a tesseract and enumerates its vertices and edges.
func NewTesseract(center Point4, scale Vector4, angles Rot4) (*Tesseract, error) {
	if !(scale.X > 0 && scale.Y > 0 && scale.Z > 0 && scale.W > 0) {
		return nil, fmt.Errorf("tesseract scale must be >0 on all axes, got %+v", scale)
	}

	R := rotFromAngles(angles)
	ts := Tesseract{
		Center: center,
		Half:   Vector4{scale.X * 0.5, scale.Y * 0.5, scale.Z * 0.5, scale.W * 0.5},
		R:      R,
	}

	for i := 0; i < VertexCount; i++ {
		local := Vector4{
			sign(i, 0) * ts.Half.X,
			sign(i, 1) * ts.Half.Y,
			sign(i, 2) * ts.Half.Z,
			sign(i, 3) * ts.Half.W,
		}
		ts.Vertices[i] = center.Add(R.MulVec(local))
	}

	n := 0
	for i := 0; i < VertexCount; i++ {
		for j := i + 1; j < VertexCount; j++ {
			if bits.OnesCount8(uint8(i^j)) == 1 {
				ts.Edges[n] = [2]int{i, j}
				n++
			}
		}
	}
	if n != EdgeCount {
		// unreachable with the enumeration above; guards topology edits
		return nil, fmt.Errorf("tesseract edge enumeration produced %d edges, want %d", n, EdgeCount)
	}

	DebugLog("Created tesseract: %+v", ts)
	return &ts, nil
}

// sign maps bit k of the vertex index to -1 or +1.
func sign(i, k int) Real {
	if i&(1<<k) != 0 {
		return 1
	}
	return -1
}

// hamming4 counts the coordinates at which two vertex indices differ.
func hamming4(i, j int) int {
	return bits.OnesCount8(uint8((i ^ j) & 0xF))
}
