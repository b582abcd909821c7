package tesseract4d

import (
	"math"
	"testing"
)

func newUnitTesseract() *Tesseract {
	ts, err := NewTesseract(Point4{}, Vector4{2, 2, 2, 2}, Rot4{})
	if err != nil {
		panic(err)
	}
	return ts
}

func TestTesseractVertices(t *testing.T) {
	ts := newUnitTesseract()

	seen := map[Point4]bool{}
	for i, v := range ts.Vertices {
		for _, c := range []Real{v.X, v.Y, v.Z, v.W} {
			if c != -1 && c != 1 {
				t.Fatalf("vertex %d coordinate not ±1: %+v", i, v)
			}
		}
		if seen[v] {
			t.Fatalf("duplicate vertex %d: %+v", i, v)
		}
		seen[v] = true
	}
	if len(seen) != VertexCount {
		t.Fatalf("expected %d distinct vertices, got %d", VertexCount, len(seen))
	}

	// index bit k selects the sign of coordinate k
	if ts.Vertices[0] != (Point4{-1, -1, -1, -1}) {
		t.Fatalf("vertex 0 wrong: %+v", ts.Vertices[0])
	}
	if ts.Vertices[15] != (Point4{1, 1, 1, 1}) {
		t.Fatalf("vertex 15 wrong: %+v", ts.Vertices[15])
	}
	if ts.Vertices[5] != (Point4{1, -1, 1, -1}) {
		t.Fatalf("vertex 5 wrong: %+v", ts.Vertices[5])
	}
}

func TestTesseractEdges(t *testing.T) {
	ts := newUnitTesseract()

	if len(ts.Edges) != EdgeCount {
		t.Fatalf("expected %d edges, got %d", EdgeCount, len(ts.Edges))
	}
	present := map[[2]int]bool{}
	for _, e := range ts.Edges {
		i, j := e[0], e[1]
		if i >= j {
			t.Fatalf("edge not ordered: %+v", e)
		}
		if hamming4(i, j) != 1 {
			t.Fatalf("edge (%d,%d) has Hamming distance %d", i, j, hamming4(i, j))
		}
		if present[e] {
			t.Fatalf("duplicate edge %+v", e)
		}
		present[e] = true
	}

	// exactly the Hamming-1 pairs, nothing else (0-15 differ in all four
	// coordinates and must not be connected)
	for i := 0; i < VertexCount; i++ {
		for j := i + 1; j < VertexCount; j++ {
			want := hamming4(i, j) == 1
			if present[[2]int{i, j}] != want {
				t.Fatalf("edge (%d,%d): present=%v want %v", i, j, present[[2]int{i, j}], want)
			}
		}
	}
}

func TestTesseractScaleValidation(t *testing.T) {
	if _, err := NewTesseract(Point4{}, Vector4{0, 2, 2, 2}, Rot4{}); err == nil {
		t.Fatal("expected error for zero scale")
	}
	if _, err := NewTesseract(Point4{}, Vector4{2, 2, -1, 2}, Rot4{}); err == nil {
		t.Fatal("expected error for negative scale")
	}
}

func TestTesseractRotationPreservesShape(t *testing.T) {
	ts, err := NewTesseract(Point4{}, Vector4{2, 2, 2, 2}, Rot4{XY: math.Pi / 5, ZW: math.Pi / 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// rigid rotation about the center keeps every vertex at distance 2
	for i, v := range ts.Vertices {
		r := v.Sub(ts.Center).Len()
		if math.Abs(float64(r-2)) > 1e-12 {
			t.Fatalf("vertex %d radius %.12g, want 2", i, r)
		}
	}
	// topology is unaffected by orientation
	for _, e := range ts.Edges {
		if hamming4(e[0], e[1]) != 1 {
			t.Fatalf("rotated tesseract edge %+v not Hamming-1", e)
		}
	}
}

func TestTesseractCenterOffset(t *testing.T) {
	ts, err := NewTesseract(Point4{1, 2, 3, 4}, Vector4{2, 2, 2, 2}, Rot4{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Vertices[0] != (Point4{0, 1, 2, 3}) {
		t.Fatalf("translated vertex 0 wrong: %+v", ts.Vertices[0])
	}
}
