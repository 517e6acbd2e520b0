package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/homestead/internal/game"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	AccentSoft    rl.Color
	Warning       rl.Color
	Soil          rl.Color
	SoilTilled    rl.Color
	Grass         rl.Color
	ReadyGlow     rl.Color
}

var AppTheme = Theme{
	Background:    rl.NewColor(24, 28, 20, 255),
	Panel:         rl.NewColor(38, 44, 32, 255),
	Border:        rl.NewColor(74, 84, 60, 255),
	TextPrimary:   rl.NewColor(232, 230, 213, 255),
	TextSecondary: rl.NewColor(168, 172, 148, 255),
	TextMuted:     rl.NewColor(112, 118, 98, 255),
	Accent:        rl.NewColor(226, 164, 54, 255),
	AccentSoft:    rl.NewColor(226, 164, 54, 90),
	Warning:       rl.NewColor(214, 93, 62, 255),
	Soil:          rl.NewColor(94, 66, 47, 255),
	SoilTilled:    rl.NewColor(66, 44, 30, 255),
	Grass:         rl.NewColor(58, 88, 44, 255),
	ReadyGlow:     rl.NewColor(255, 222, 120, 255),
}

var (
	colorBG     = AppTheme.Background
	colorPanel  = AppTheme.Panel
	colorBorder = AppTheme.Border
	colorText   = AppTheme.TextPrimary
	colorDim    = AppTheme.TextSecondary
	colorMuted  = AppTheme.TextMuted
	colorAccent = AppTheme.Accent
	colorWarn   = AppTheme.Warning
)

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.08, 6, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.08, 6, 2, colorBorder)
	if title != "" {
		rl.DrawText(title, int32(rect.X)+16, int32(rect.Y)+12, 24, colorText)
	}
}

func drawTextCentered(text string, rect rl.Rectangle, offsetY float32, size int32, color rl.Color) {
	width := rl.MeasureText(text, size)
	x := int32(rect.X + rect.Width/2 - float32(width)/2)
	rl.DrawText(text, x, int32(rect.Y+offsetY), size, color)
}

func drawProgressBar(rect rl.Rectangle, fraction float32, fill rl.Color) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	rl.DrawRectangleRec(rect, rl.Fade(colorBorder, 0.5))
	inner := rl.NewRectangle(rect.X, rect.Y, rect.Width*fraction, rect.Height)
	rl.DrawRectangleRec(inner, fill)
	rl.DrawRectangleLinesEx(rect, 1, colorBorder)
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func cropColor(c game.RGB) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
