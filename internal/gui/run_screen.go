package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/homestead/internal/game"
	"github.com/appengine-ltd/homestead/internal/parser"
)

func (ui *gameUI) updateRun() {
	if ui.farm.View == game.ViewShop {
		ui.updateShop()
		return
	}
	if ui.cmdActive {
		ui.updateConsole()
		return
	}
	if rl.IsKeyPressed(rl.KeySlash) {
		ui.cmdActive = true
		ui.cmdBuffer = ""
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.debouncer.Flush()
		ui.screen = screenMenu
		return
	}

	ui.movePlayer()
	ui.updateSeedSelection()

	if rl.IsKeyPressed(rl.KeyE) {
		if ui.farm.Interact(ui.layout, ui.playerX, ui.playerY) {
			ui.debouncer.Mark(ui.farm.Clone())
		}
	}
	if rl.IsKeyPressed(rl.KeyT) {
		if ui.farm.ToggleTill(ui.layout, ui.playerX, ui.playerY) {
			ui.debouncer.Mark(ui.farm.Clone())
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		ui.farm.SetView(game.ViewShop)
	}
}

// updateConsole runs the typed command box, the same verb surface as the
// terminal client.
func (ui *gameUI) updateConsole() {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch < 127 {
			ui.cmdBuffer += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(ui.cmdBuffer) > 0 {
		ui.cmdBuffer = ui.cmdBuffer[:len(ui.cmdBuffer)-1]
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.cmdActive = false
		return
	}
	if !rl.IsKeyPressed(rl.KeyEnter) {
		return
	}

	line := ui.cmdBuffer
	ui.cmdBuffer = ""
	if line == "" {
		ui.cmdActive = false
		return
	}
	intent := ui.console.Parse(parser.ParseContext{
		Crops:    cropNames(),
		Products: productNames(),
	}, line)
	if intent.Clarify != nil {
		ui.cmdResult = intent.Clarify.Prompt
		return
	}
	res := ui.farm.ExecuteRunCommand(intent.CommandLine())
	if !res.Handled {
		ui.cmdResult = "Unknown command. Try help."
		return
	}
	if res.Changed {
		ui.debouncer.Mark(ui.farm.Clone())
	}
	ui.cmdResult = res.Message
}

func cropNames() []string {
	kinds := game.CropKinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	return names
}

func productNames() []string {
	kinds := game.ProductKinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	return names
}

func (ui *gameUI) movePlayer() {
	speed := ui.tun.Player.SpeedPxPerSec * float64(rl.GetFrameTime())
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		ui.playerY -= speed
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		ui.playerY += speed
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		ui.playerX -= speed
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		ui.playerX += speed
	}

	margin := ui.tun.Player.Radius
	ui.playerX = game.ClampFloat(ui.playerX, margin, float64(ui.width)-margin)
	ui.playerY = game.ClampFloat(ui.playerY, margin+64, float64(ui.height)-margin)
}

func (ui *gameUI) updateSeedSelection() {
	kinds := game.CropKinds()
	for i, kind := range kinds {
		if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) {
			if ui.farm.SelectedSeed == kind {
				ui.farm.SetSelectedSeed("")
			} else {
				ui.farm.SetSelectedSeed(kind)
			}
		}
	}
}

func (ui *gameUI) drawRun() {
	if ui.farm.View == game.ViewShop {
		ui.drawShop()
		return
	}

	now := time.Now()

	// Field.
	rl.DrawRectangle(0, 64, ui.width, ui.height-64, AppTheme.Grass)

	tile := float32(ui.layout.TileSize)
	for _, plot := range ui.farm.Plots {
		col, row := game.PlotCell(plot.ID)
		x := float32(ui.layout.PlotOriginX) + float32(col)*tile
		y := float32(ui.layout.PlotOriginY) + float32(row)*tile
		rect := rl.NewRectangle(x+2, y+2, tile-4, tile-4)

		soil := AppTheme.Soil
		if plot.Tilled {
			soil = AppTheme.SoilTilled
		}
		rl.DrawRectangleRec(rect, soil)
		rl.DrawRectangleLinesEx(rect, 1, colorBorder)

		if plot.Empty() {
			continue
		}
		spec := game.CropSpecFor(plot.Crop)
		progress := float32(plot.Progress(now))
		// Crop sprite grows with progress.
		size := 8 + progress*(tile*0.45-8)
		cx := x + tile/2
		cy := y + tile/2
		rl.DrawCircle(int32(cx), int32(cy), size, cropColor(spec.Color))
		if plot.Ready(now) {
			rl.DrawCircleLines(int32(cx), int32(cy), size+4, AppTheme.ReadyGlow)
		} else {
			bar := rl.NewRectangle(x+6, y+tile-12, tile-12, 6)
			drawProgressBar(bar, progress, colorAccent)
		}
	}

	ui.drawShopBuilding()
	ui.drawPlayer()
	ui.drawInteractionLabel(now)
	ui.drawHUD()
	ui.drawConsole()
}

func (ui *gameUI) drawConsole() {
	if !ui.cmdActive {
		if ui.cmdResult != "" {
			rl.DrawText(ui.cmdResult, 20, ui.height-88, 18, colorDim)
		}
		return
	}
	bar := rl.NewRectangle(12, float32(ui.height-96), float32(ui.width-24), 36)
	rl.DrawRectangleRec(bar, rl.Fade(colorBG, 0.92))
	rl.DrawRectangleLinesEx(bar, 1, colorAccent)
	rl.DrawText("> "+ui.cmdBuffer+"_", int32(bar.X)+10, int32(bar.Y)+8, 20, colorText)
	if ui.cmdResult != "" {
		rl.DrawText(ui.cmdResult, 20, ui.height-120, 18, colorDim)
	}
}

func (ui *gameUI) drawShopBuilding() {
	x := int32(ui.layout.ShopX)
	y := int32(ui.layout.ShopY)
	r := float32(ui.layout.ShopRadius)
	rl.DrawCircle(x, y, r, rl.Fade(colorPanel, 0.9))
	rl.DrawCircleLines(x, y, r, colorBorder)
	rl.DrawText("SHOP", x-28, y-10, 22, colorAccent)
}

func (ui *gameUI) drawPlayer() {
	rl.DrawCircle(int32(ui.playerX), int32(ui.playerY), float32(ui.tun.Player.Radius), colorText)
	rl.DrawCircleLines(int32(ui.playerX), int32(ui.playerY), float32(ui.tun.Player.Radius), colorBG)
}

func (ui *gameUI) drawInteractionLabel(now time.Time) {
	target := ui.farm.ResolveInteraction(ui.layout, ui.playerX, ui.playerY, now)
	if target.Kind == game.TargetNone || target.Label == "" {
		return
	}
	label := target.Label
	switch {
	case target.Primary && target.Secondary:
		label = "[E] " + label + "  [T] till"
	case target.Primary:
		label = "[E] " + label
	case target.Secondary:
		label = "[T] " + label
	}
	width := rl.MeasureText(label, 20)
	x := int32(ui.playerX) - width/2
	y := int32(ui.playerY) - int32(ui.tun.Player.Radius) - 30
	rl.DrawRectangle(x-8, y-4, width+16, 28, rl.Fade(colorBG, 0.8))
	rl.DrawText(label, x, y, 20, colorAccent)
}

func (ui *gameUI) drawHUD() {
	rl.DrawRectangle(0, 0, ui.width, 64, colorPanel)
	rl.DrawLine(0, 64, ui.width, 64, colorBorder)

	rl.DrawText(fmt.Sprintf("%dg", ui.farm.Money), 20, 10, 26, colorAccent)
	rl.DrawText(fmt.Sprintf("%d gems", ui.farm.Gems), 20, 38, 18, colorDim)

	level := fmt.Sprintf("Level %d", ui.farm.Level)
	rl.DrawText(level, 160, 10, 22, colorText)
	needed := ui.farm.Experience + ui.farm.ExperienceToNextLevel()
	fraction := float32(0)
	if needed > 0 {
		fraction = float32(ui.farm.Experience) / float32(needed)
	}
	drawProgressBar(rl.NewRectangle(160, 40, 140, 10), fraction, colorAccent)

	// Seed selector.
	x := int32(340)
	for i, spec := range game.CropCatalog() {
		label := fmt.Sprintf("[%d] %s x%d", i+1, spec.Name, ui.farm.Seeds[spec.Kind])
		color := colorDim
		if ui.farm.SelectedSeed == spec.Kind {
			color = colorAccent
		}
		rl.DrawText(label, x, 22, 20, color)
		x += rl.MeasureText(label, 20) + 24
	}

	if len(ui.farm.Chests) > 0 {
		label := fmt.Sprintf("%d chest(s) waiting, open in shop", len(ui.farm.Chests))
		rl.DrawText(label, ui.width-rl.MeasureText(label, 18)-20, 22, 18, AppTheme.ReadyGlow)
	}

	if status := ui.statusLine(); status != "" {
		rl.DrawText(status, 20, ui.height-32, 20, colorWarn)
	}
	rl.DrawText("[WASD] move  [E] use  [T] till  [Tab] shop  [/] command  [Esc] menu", 20, ui.height-60, 18, colorMuted)
}
