package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/homestead/internal/game"
)

type shopRow struct {
	Label   string
	Detail  string
	Enabled bool
	Apply   func() bool
}

var shopSections = []string{"Buy Seeds", "Sell Crops", "Sell Goods", "Kitchen", "Chests"}

func (ui *gameUI) updateShop() {
	if rl.IsKeyPressed(rl.KeyTab) || rl.IsKeyPressed(rl.KeyEscape) {
		ui.farm.SetView(game.ViewFarm)
		return
	}
	rows := ui.shopRows()
	if rl.IsKeyPressed(rl.KeyRight) {
		ui.shopSection = wrapIndex(ui.shopSection+1, len(shopSections))
		ui.shopCursor = 0
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		ui.shopSection = wrapIndex(ui.shopSection-1, len(shopSections))
		ui.shopCursor = 0
	}
	if len(rows) == 0 {
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.shopCursor = wrapIndex(ui.shopCursor+1, len(rows))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.shopCursor = wrapIndex(ui.shopCursor-1, len(rows))
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		row := rows[ui.shopCursor]
		if row.Apply == nil {
			return
		}
		if row.Apply() {
			ui.debouncer.Mark(ui.farm.Clone())
		} else {
			ui.setStatus("Can't do that right now.")
		}
		if ui.shopCursor >= len(ui.shopRows()) {
			ui.shopCursor = 0
		}
	}
}

func (ui *gameUI) shopRows() []shopRow {
	farm := ui.farm
	switch ui.shopSection {
	case 0:
		rows := make([]shopRow, 0, len(game.CropCatalog()))
		for _, spec := range game.CropCatalog() {
			kind := spec.Kind
			rows = append(rows, shopRow{
				Label:   fmt.Sprintf("%s seed", spec.Name),
				Detail:  fmt.Sprintf("%dg  (owned %d)", spec.SeedCost, farm.Seeds[kind]),
				Enabled: farm.Money >= spec.SeedCost,
				Apply:   func() bool { return farm.BuySeed(kind) },
			})
		}
		return rows
	case 1:
		rows := make([]shopRow, 0, len(game.CropCatalog()))
		for _, spec := range game.CropCatalog() {
			kind := spec.Kind
			rows = append(rows, shopRow{
				Label:   spec.Name,
				Detail:  fmt.Sprintf("sells %dg  (stock %d)", spec.SellPrice, farm.Harvested[kind]),
				Enabled: farm.Harvested[kind] > 0,
				Apply:   func() bool { return farm.SellCrop(kind) },
			})
		}
		return rows
	case 2:
		rows := make([]shopRow, 0, len(game.ProductCatalog()))
		for _, spec := range game.ProductCatalog() {
			kind := spec.Kind
			rows = append(rows, shopRow{
				Label:   spec.Name,
				Detail:  fmt.Sprintf("sells %dg  (stock %d)", spec.SellPrice, farm.Products[kind]),
				Enabled: farm.Products[kind] > 0,
				Apply:   func() bool { return farm.SellProduct(kind) },
			})
		}
		return rows
	case 3:
		rows := make([]shopRow, 0, len(game.ProductCatalog()))
		for _, spec := range game.ProductCatalog() {
			kind := spec.Kind
			detail := "needs"
			canCook := true
			for _, ingredient := range spec.Recipe {
				detail += fmt.Sprintf(" %dx %s", ingredient.Count, ingredient.Crop)
				if farm.Harvested[ingredient.Crop] < ingredient.Count {
					canCook = false
				}
			}
			rows = append(rows, shopRow{
				Label:   "Cook " + spec.Name,
				Detail:  detail,
				Enabled: canCook,
				Apply:   func() bool { return farm.Cook(kind) },
			})
		}
		return rows
	case 4:
		rows := make([]shopRow, 0, len(farm.Chests))
		for i, chest := range farm.Chests {
			index := i
			rows = append(rows, shopRow{
				Label:   fmt.Sprintf("Reward chest (level %d)", chest.Level),
				Detail:  "Enter to open",
				Enabled: true,
				Apply:   func() bool { return farm.OpenChest(index) },
			})
		}
		return rows
	}
	return nil
}

func (ui *gameUI) drawShop() {
	rect := rl.NewRectangle(float32(ui.width/2-320), 60, 640, float32(ui.height-140))
	drawPanel(rect, "General Store")

	// Section tabs.
	x := int32(rect.X) + 24
	for i, name := range shopSections {
		color := colorMuted
		if i == ui.shopSection {
			color = colorAccent
		}
		rl.DrawText(name, x, int32(rect.Y)+48, 20, color)
		x += rl.MeasureText(name, 20) + 28
	}
	rl.DrawLine(int32(rect.X)+16, int32(rect.Y)+78, int32(rect.X+rect.Width)-16, int32(rect.Y)+78, colorBorder)

	rows := ui.shopRows()
	if len(rows) == 0 {
		drawTextCentered("Nothing here yet.", rect, rect.Height/2, 22, colorDim)
	}
	for i, row := range rows {
		y := int32(rect.Y) + 100 + int32(i*48)
		color := colorText
		if !row.Enabled {
			color = colorMuted
		}
		if i == ui.shopCursor {
			rl.DrawRectangleRounded(rl.NewRectangle(rect.X+16, float32(y-6), rect.Width-32, 40), 0.3, 8, rl.Fade(colorAccent, 0.15))
			if row.Enabled {
				color = colorAccent
			}
		}
		rl.DrawText(row.Label, int32(rect.X)+32, y, 22, color)
		rl.DrawText(row.Detail, int32(rect.X)+300, y+2, 18, colorDim)
	}

	footer := fmt.Sprintf("%dg   %d gems", ui.farm.Money, ui.farm.Gems)
	rl.DrawText(footer, int32(rect.X)+24, int32(rect.Y+rect.Height)-40, 22, colorAccent)
	if status := ui.statusLine(); status != "" {
		rl.DrawText(status, int32(rect.X)+220, int32(rect.Y+rect.Height)-38, 18, colorWarn)
	}
	rl.DrawText("Left/Right section, Up/Down select, Enter apply, Tab back to farm", 24, ui.height-36, 18, colorMuted)
}
