package tesseract4d

// Real is the scalar type used for all geometry.
type Real = float64
