// Package gui is the raylib front end: a top-down farm the player walks
// around in, with the simulation living entirely in the game package.
package gui

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/homestead/internal/game"
	"github.com/appengine-ltd/homestead/internal/parser"
	"github.com/appengine-ltd/homestead/internal/save"
	"github.com/appengine-ltd/homestead/internal/tuning"
)

type AppConfig struct {
	Version    string
	Commit     string
	BuildDate  string
	SavePath   string
	TuningPath string
}

type App struct {
	cfg AppConfig
	log *slog.Logger
}

func NewApp(cfg AppConfig, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{cfg: cfg, log: logger}
}

type screen int

const (
	screenMenu screen = iota
	screenLoad
	screenRun
)

type menuAction int

const (
	actionNewFarm menuAction = iota
	actionLoadFarm
	actionQuit
)

type menuItem struct {
	Label  string
	Action menuAction
}

type gameUI struct {
	cfg AppConfig
	log *slog.Logger

	width  int32
	height int32
	screen screen
	quit   bool

	tun    tuning.Tuning
	layout game.Layout

	store     *save.Store
	debouncer *save.Debouncer
	slot      int

	farm    *game.FarmState
	playerX float64
	playerY float64

	menuCursor int
	loadCursor int
	slots      []save.SlotInfo

	shopCursor  int
	shopSection int

	console   *parser.Parser
	cmdActive bool
	cmdBuffer string
	cmdResult string

	status   string
	statusAt time.Time
}

func (a *App) Run() error {
	tun, err := tuning.Load(a.cfg.TuningPath)
	if err != nil {
		return fmt.Errorf("load tuning: %w", err)
	}
	store, err := save.Open(a.cfg.SavePath, a.log)
	if err != nil {
		return err
	}
	defer store.Close()

	ui := newGameUI(a.cfg, a.log, tun, store)
	return ui.Run()
}

func newGameUI(cfg AppConfig, logger *slog.Logger, tun tuning.Tuning, store *save.Store) *gameUI {
	ui := &gameUI{
		cfg:     cfg,
		log:     logger,
		width:   int32(tun.Window.Width),
		height:  int32(tun.Window.Height),
		screen:  screenMenu,
		tun:     tun,
		store:   store,
		slot:    1,
		console: parser.New(),
		layout: game.Layout{
			ShopX:       tun.Shop.X,
			ShopY:       tun.Shop.Y,
			ShopRadius:  tun.Shop.Radius,
			PlotOriginX: tun.Farm.PlotOriginX,
			PlotOriginY: tun.Farm.PlotOriginY,
			TileSize:    tun.Farm.TileSize,
			PlotCols:    game.PlotCols,
			PlotRows:    game.PlotRows,
		},
	}
	ui.playerX = tun.Farm.PlotOriginX - tun.Farm.TileSize
	ui.playerY = tun.Farm.PlotOriginY + tun.Farm.TileSize
	return ui
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "homestead")
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(ui.tun.Window.FPS))

	for !ui.quit && !rl.WindowShouldClose() {
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update()

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	if ui.debouncer != nil {
		ui.debouncer.Close()
	}
	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update() {
	switch ui.screen {
	case screenMenu:
		ui.updateMenu()
	case screenLoad:
		ui.updateLoad()
	case screenRun:
		ui.updateRun()
	}
}

func (ui *gameUI) draw() {
	switch ui.screen {
	case screenMenu:
		ui.drawMenu()
	case screenLoad:
		ui.drawLoad()
	case screenRun:
		ui.drawRun()
	}
}

func (ui *gameUI) menuItems() []menuItem {
	return []menuItem{
		{Label: "New Farm", Action: actionNewFarm},
		{Label: "Load Farm", Action: actionLoadFarm},
		{Label: "Quit", Action: actionQuit},
	}
}

func (ui *gameUI) updateMenu() {
	items := ui.menuItems()
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.menuCursor = wrapIndex(ui.menuCursor+1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.menuCursor = wrapIndex(ui.menuCursor-1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		switch items[ui.menuCursor].Action {
		case actionNewFarm:
			ui.startRun(game.NewFarmState(ui.startingConfig()))
		case actionLoadFarm:
			ui.openLoad()
		case actionQuit:
			ui.quit = true
		}
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
	}
}

func (ui *gameUI) startingConfig() game.FarmConfig {
	config := game.FarmConfig{
		StartingMoney: ui.tun.Starting.Money,
		StartingSeeds: map[game.CropKind]int{},
	}
	for name, count := range ui.tun.Starting.Seeds {
		if kind, ok := game.ParseCropKind(name); ok {
			config.StartingSeeds[kind] = count
		}
	}
	return config
}

func (ui *gameUI) startRun(farm *game.FarmState) {
	ui.farm = farm
	if ui.debouncer != nil {
		ui.debouncer.Close()
	}
	delay := time.Duration(ui.tun.Autosave.DebounceMs) * time.Millisecond
	ui.debouncer = save.NewDebouncer(delay, func(snapshot game.FarmState) {
		if err := ui.store.Save(ui.slot, snapshot); err != nil {
			ui.log.Error("autosave failed", "slot", ui.slot, "error", err)
		}
	})
	ui.shopCursor = 0
	ui.shopSection = 0
	ui.screen = screenRun
}

func (ui *gameUI) drawMenu() {
	titleRect := rl.NewRectangle(20, 20, float32(ui.width-40), 120)
	drawPanel(titleRect, "HOMESTEAD")
	drawTextCentered(fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate), titleRect, 42, 18, colorDim)

	items := ui.menuItems()
	menuRect := rl.NewRectangle(float32(ui.width/2-200), 180, 400, float32(120+len(items)*64))
	drawPanel(menuRect, "Main Menu")
	for i, item := range items {
		y := int32(menuRect.Y) + 64 + int32(i*64)
		r := rl.NewRectangle(menuRect.X+28, float32(y), menuRect.Width-56, 48)
		if i == ui.menuCursor {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorAccent, 0.2))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 2, colorAccent)
			rl.DrawText(item.Label, int32(r.X)+16, y+12, 26, colorAccent)
		} else {
			rl.DrawText(item.Label, int32(r.X)+16, y+12, 26, colorText)
		}
	}
	rl.DrawText("Up/Down to move, Enter to select, Q to quit", 24, ui.height-36, 18, colorMuted)
}

func (ui *gameUI) openLoad() {
	slots, err := ui.store.List()
	if err != nil {
		ui.setStatus(fmt.Sprintf("Could not read saves: %v", err))
		return
	}
	ui.slots = slots
	ui.loadCursor = 0
	ui.screen = screenLoad
}

func (ui *gameUI) updateLoad() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.screen = screenMenu
		return
	}
	if len(ui.slots) == 0 {
		if rl.IsKeyPressed(rl.KeyEnter) {
			ui.screen = screenMenu
		}
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.loadCursor = wrapIndex(ui.loadCursor+1, len(ui.slots))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.loadCursor = wrapIndex(ui.loadCursor-1, len(ui.slots))
	}
	if rl.IsKeyPressed(rl.KeyX) {
		slot := ui.slots[ui.loadCursor].Slot
		if err := ui.store.Delete(slot); err != nil {
			ui.setStatus(fmt.Sprintf("Delete failed: %v", err))
			return
		}
		ui.openLoad()
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		slot := ui.slots[ui.loadCursor].Slot
		farm, err := ui.store.Load(slot, ui.startingConfig())
		if err != nil {
			ui.setStatus(fmt.Sprintf("Load failed: %v", err))
			return
		}
		ui.slot = slot
		ui.startRun(farm)
	}
}

func (ui *gameUI) drawLoad() {
	rect := rl.NewRectangle(float32(ui.width/2-280), 80, 560, float32(ui.height-160))
	drawPanel(rect, "Load Farm")
	if len(ui.slots) == 0 {
		drawTextCentered("No saved farms yet.", rect, rect.Height/2, 22, colorDim)
		drawTextCentered("Enter or Esc to go back", rect, rect.Height/2+36, 18, colorMuted)
		return
	}
	for i, info := range ui.slots {
		y := int32(rect.Y) + 64 + int32(i*56)
		label := fmt.Sprintf("Slot %d  Level %d  %dg", info.Slot, info.Level, info.Money)
		when := info.SavedAt.Local().Format("2006-01-02 15:04")
		color := colorText
		if i == ui.loadCursor {
			color = colorAccent
			rl.DrawRectangleRounded(rl.NewRectangle(rect.X+24, float32(y-8), rect.Width-48, 44), 0.3, 8, rl.Fade(colorAccent, 0.15))
		}
		rl.DrawText(label, int32(rect.X)+36, y, 22, color)
		rl.DrawText(when, int32(rect.X+rect.Width)-200, y+2, 18, colorMuted)
	}
	rl.DrawText("Enter to load, X to delete, Esc to go back", 24, ui.height-36, 18, colorMuted)
}

func (ui *gameUI) setStatus(text string) {
	ui.status = text
	ui.statusAt = time.Now()
}

func (ui *gameUI) statusLine() string {
	if ui.status == "" || time.Since(ui.statusAt) > 4*time.Second {
		return ""
	}
	return ui.status
}
