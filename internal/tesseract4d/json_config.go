package tesseract4d

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

type TesseractCfg struct {
	Center Point4  `json:"center"`
	Scale  Vector4 `json:"scale,omitempty"` // full edge lengths; defaults 2 per axis
	RotDeg Rot4Deg `json:"rotDeg"`
}

type Config struct {
	WindowW    int          `json:"windowW"`
	WindowH    int          `json:"windowH"`
	ProjDist   Real         `json:"projDist,omitempty"`
	RotStep    Real         `json:"rotStep,omitempty"`
	Color      RGB          `json:"color"`
	Background RGB          `json:"background"`
	GIFOut     string       `json:"gifOut"`
	GIFDelay   int          `json:"gifDelay,omitempty"`
	Frames     int          `json:"frames,omitempty"`
	GIFW       int          `json:"gifW,omitempty"`
	GIFH       int          `json:"gifH,omitempty"`
	Tesseract  TesseractCfg `json:"tesseract"`
}

// Rotation in degrees for JSON (friendlier than radians).
type Rot4Deg struct {
	XY Real `json:"xy"`
	XZ Real `json:"xz"`
	XW Real `json:"xw"`
	YZ Real `json:"yz"`
	YW Real `json:"yw"`
	ZW Real `json:"zw"`
}

func (r Rot4Deg) Radians() Rot4 {
	const k = math.Pi / 180
	return Rot4{
		XY: r.XY * k, XZ: r.XZ * k, XW: r.XW * k,
		YZ: r.YZ * k, YW: r.YW * k, ZW: r.ZW * k,
	}
}

// Build validates and constructs the runtime geometry.
func (tc TesseractCfg) Build() (*Tesseract, error) {
	sc := tc.Scale
	if sc.X == 0 {
		sc.X = 2
	}
	if sc.Y == 0 {
		sc.Y = 2
	}
	if sc.Z == 0 {
		sc.Z = 2
	}
	if sc.W == 0 {
		sc.W = 2
	}
	return NewTesseract(tc.Center, sc, tc.RotDeg.Radians())
}

// loadConfig reads a JSON config file and applies defaults. An empty path is
// not an error: the viewer then runs on pure defaults.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}
	// Defaults / validation
	if cfg.WindowW <= 0 {
		cfg.WindowW = WindowW
	}
	if cfg.WindowH <= 0 {
		cfg.WindowH = WindowH
	}
	if cfg.ProjDist == 0 {
		cfg.ProjDist = ProjDist
	}
	if !isFinite(cfg.ProjDist) || cfg.ProjDist <= 1 {
		return nil, fmt.Errorf("projDist must be > 1, got %.6g", cfg.ProjDist)
	}
	if cfg.RotStep == 0 {
		cfg.RotStep = RotStep
	}
	if cfg.RotStep < 0 {
		return nil, fmt.Errorf("rotStep must be >= 0, got %.6g", cfg.RotStep)
	}
	if cfg.Color == (RGB{}) {
		cfg.Color = RGB{0, 1, 1}
	}
	cfg.Color = cfg.Color.clamp01()
	cfg.Background = cfg.Background.clamp01()
	if cfg.GIFOut == "" {
		cfg.GIFOut = GIFOut
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.Frames <= 0 {
		cfg.Frames = Frames
	}
	if cfg.GIFW <= 0 {
		cfg.GIFW = GIFW
	}
	if cfg.GIFH <= 0 {
		cfg.GIFH = GIFH
	}
	DebugLog("Loaded config from %q: window=(%d, %d), projDist=%.3f, rotStep=%.4f", path, cfg.WindowW, cfg.WindowH, cfg.ProjDist, cfg.RotStep)
	return &cfg, nil
}
