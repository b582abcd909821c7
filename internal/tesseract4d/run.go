package tesseract4d

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	ts, err := cfg.Tesseract.Build()
	if err != nil {
		return err
	}
	mesh := BuildLineMesh(ts, cfg.ProjDist, cfg.Color)

	if Turntable {
		return SaveTurntableGIF(mesh, cfg)
	}

	cam := NewOrbitCamera(math.Pi/4, math.Pi/6, 4)
	v := NewViewer(mesh, cam, cfg)
	defer v.Close()

	ebiten.SetWindowTitle("tesseract4d")
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(v)
}
