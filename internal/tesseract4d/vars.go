package tesseract4d

import "github.com/hajimehoshi/ebiten/v2"

var (
	Debug     = false // set to true for verbose debug output
	Turntable = false // set to true to render a turntable GIF instead of opening a window
	// Compile time check that the viewer satisfies ebiten's game interface
	_ ebiten.Game = (*Viewer)(nil)
)
