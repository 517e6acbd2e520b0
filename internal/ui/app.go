// Package ui is the terminal front end, used on builds without a display
// or when the player prefers a console session.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/homestead/internal/game"
	"github.com/appengine-ltd/homestead/internal/parser"
	"github.com/appengine-ltd/homestead/internal/save"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	SavePath  string
	Slot      int
}

type App struct {
	cfg   AppConfig
	store *save.Store
}

func NewApp(cfg AppConfig, store *save.Store) *App {
	return &App{cfg: cfg, store: store}
}

func (a *App) Run() error {
	m, err := newFarmModel(a.cfg, a.store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	m.debouncer.Close()
	return err
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type farmModel struct {
	cfg       AppConfig
	farm      *game.FarmState
	store     *save.Store
	debouncer *save.Debouncer
	parser    *parser.Parser

	input string
	log   []string
}

func newFarmModel(cfg AppConfig, store *save.Store) (*farmModel, error) {
	farm, err := store.Load(cfg.Slot, game.DefaultFarmConfig())
	if err != nil {
		return nil, err
	}
	m := &farmModel{
		cfg:    cfg,
		farm:   farm,
		store:  store,
		parser: parser.New(),
		log:    []string{"Welcome back to the homestead. Type help for commands."},
	}
	m.debouncer = save.NewDebouncer(500*time.Millisecond, func(snapshot game.FarmState) {
		_ = store.Save(cfg.Slot, snapshot)
	})
	return m, nil
}

func (m *farmModel) Init() tea.Cmd {
	return tickCmd()
}

func (m *farmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Growth is derived from the clock; ticking just refreshes the view.
		return m, tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.debouncer.Flush()
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input)
			m.input = ""
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "exit" {
				m.debouncer.Flush()
				return m, tea.Quit
			}
			m.execute(line)
			return m, nil
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil
		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				m.input += msg.String()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *farmModel) execute(line string) {
	ctx := parser.ParseContext{
		Crops:    cropNames(),
		Products: productNames(),
	}
	intent := m.parser.Parse(ctx, line)
	if intent.Clarify != nil {
		prompt := intent.Clarify.Prompt
		if len(intent.Clarify.Options) > 0 {
			verbs := make([]string, 0, len(intent.Clarify.Options))
			for _, opt := range intent.Clarify.Options {
				verbs = append(verbs, opt.Verb)
			}
			prompt += " " + strings.Join(verbs, " / ")
		}
		m.append("> "+line, prompt)
		return
	}

	switch intent.Verb {
	case "save":
		m.debouncer.Flush()
		if err := m.store.Save(m.cfg.Slot, m.farm.Clone()); err != nil {
			m.append("> "+line, fmt.Sprintf("Save failed: %v", err))
			return
		}
		m.append("> "+line, "Saved.")
		return
	case "load":
		farm, err := m.store.Load(m.cfg.Slot, game.DefaultFarmConfig())
		if err != nil {
			m.append("> "+line, fmt.Sprintf("Load failed: %v", err))
			return
		}
		m.farm = farm
		m.append("> "+line, "Loaded.")
		return
	case "menu":
		m.append("> "+line, "Type quit to leave the session.")
		return
	}

	res := m.farm.ExecuteRunCommand(intent.CommandLine())
	if !res.Handled {
		m.append("> "+line, "Nothing happened. Type help for commands.")
		return
	}
	if res.Changed {
		m.debouncer.Mark(m.farm.Clone())
	}
	m.append("> "+line, res.Message)
}

func (m *farmModel) append(lines ...string) {
	m.log = append(m.log, lines...)
	if len(m.log) > 10 {
		m.log = m.log[len(m.log)-10:]
	}
}

func (m *farmModel) View() string {
	title := brightGreen.Render("HOMESTEAD") + dimGreen.Render("  "+m.cfg.Version)
	rule := border.Render(strings.Repeat("-", 48))

	status := m.farm.ExecuteRunCommand("status").Message
	plots := renderPlotGrid(m.farm)

	out := title + "\n" + rule + "\n"
	out += green.Render(status) + "\n\n"
	out += plots + "\n"
	out += rule + "\n"
	for _, line := range m.log {
		out += dimGreen.Render(line) + "\n"
	}
	out += rule + "\n"
	out += green.Render("> ") + brightGreen.Render(m.input) + brightGreen.Render("_") + "\n"
	return out
}

func renderPlotGrid(farm *game.FarmState) string {
	now := time.Now()
	var b strings.Builder
	for row := 0; row < game.PlotRows; row++ {
		for col := 0; col < game.PlotCols; col++ {
			plot := farm.Plots[row*game.PlotCols+col]
			cell := ".."
			switch {
			case !plot.Empty() && plot.Ready(now):
				cell = "!" + string(plot.Crop[0])
			case !plot.Empty():
				cell = fmt.Sprintf("%s%d", string(plot.Crop[0]), int(plot.Progress(now)*9))
			case plot.Tilled:
				cell = "~~"
			}
			b.WriteString(fmt.Sprintf("[%2d %s] ", plot.ID, green.Render(cell)))
		}
		b.WriteString("\n")
	}
	return b.String()
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
