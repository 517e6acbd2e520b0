// Package tuning holds the balancing and layout knobs that are adjusted
// between playtests without recompiling. Values load from an optional yaml
// file layered over built-in defaults.
package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	Window   Window   `yaml:"window"`
	Farm     Farm     `yaml:"farm"`
	Shop     Shop     `yaml:"shop"`
	Player   Player   `yaml:"player"`
	Autosave Autosave `yaml:"autosave"`
	Starting Starting `yaml:"starting"`
}

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

type Farm struct {
	PlotOriginX float64 `yaml:"plot_origin_x"`
	PlotOriginY float64 `yaml:"plot_origin_y"`
	TileSize    float64 `yaml:"tile_size"`
}

type Shop struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

type Player struct {
	SpeedPxPerSec float64 `yaml:"speed_px_per_sec"`
	Radius        float64 `yaml:"radius"`
}

type Autosave struct {
	DebounceMs int `yaml:"debounce_ms"`
}

type Starting struct {
	Money int            `yaml:"money"`
	Seeds map[string]int `yaml:"seeds"`
}

func Default() Tuning {
	return Tuning{
		Window: Window{Width: 960, Height: 640, FPS: 60},
		Farm: Farm{
			PlotOriginX: 96,
			PlotOriginY: 160,
			TileSize:    96,
		},
		Shop: Shop{X: 720, Y: 160, Radius: 80},
		Player: Player{
			SpeedPxPerSec: 220,
			Radius:        14,
		},
		Autosave: Autosave{DebounceMs: 500},
		Starting: Starting{
			Money: 100,
			Seeds: map[string]int{"carrot": 2},
		},
	}
}

// Load reads path over the defaults. A missing file is not an error; a
// present but malformed file is.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return t, nil
	}
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	t.repair()
	return t, nil
}

// repair clamps overridden values back into workable ranges so a bad yaml
// edit degrades instead of breaking the session.
func (t *Tuning) repair() {
	defaults := Default()
	if t.Window.Width < 320 {
		t.Window.Width = defaults.Window.Width
	}
	if t.Window.Height < 240 {
		t.Window.Height = defaults.Window.Height
	}
	if t.Window.FPS < 1 {
		t.Window.FPS = defaults.Window.FPS
	}
	if t.Farm.TileSize <= 0 {
		t.Farm.TileSize = defaults.Farm.TileSize
	}
	if t.Shop.Radius <= 0 {
		t.Shop.Radius = defaults.Shop.Radius
	}
	if t.Player.SpeedPxPerSec <= 0 {
		t.Player.SpeedPxPerSec = defaults.Player.SpeedPxPerSec
	}
	if t.Autosave.DebounceMs < 0 {
		t.Autosave.DebounceMs = defaults.Autosave.DebounceMs
	}
	if t.Starting.Money < 0 {
		t.Starting.Money = defaults.Starting.Money
	}
	if t.Starting.Seeds == nil {
		t.Starting.Seeds = defaults.Starting.Seeds
	}
}
