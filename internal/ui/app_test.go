package ui

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/homestead/internal/game"
	"github.com/appengine-ltd/homestead/internal/save"
)

func newTestModel(t *testing.T) *farmModel {
	t.Helper()

	store, err := save.Open(filepath.Join(t.TempDir(), "saves.db"), slog.Default())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m, err := newFarmModel(AppConfig{Version: "test", Slot: 1}, store)
	if err != nil {
		t.Fatalf("new farm model: %v", err)
	}
	t.Cleanup(m.debouncer.Close)
	return m
}

func typeLine(m *farmModel, line string) {
	for _, r := range line {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestTypedCommandsReachTheFarm(t *testing.T) {
	m := newTestModel(t)

	typeLine(m, "till 0")
	if !m.farm.Plots[0].Tilled {
		t.Fatalf("expected typed till command to apply")
	}
	typeLine(m, "plant carrot 0")
	if m.farm.Plots[0].Crop != game.CropCarrot {
		t.Fatalf("expected typed plant command to apply")
	}
}

func TestMisspelledCommandResolves(t *testing.T) {
	m := newTestModel(t)

	typeLine(m, "tilll 0")
	if !m.farm.Plots[0].Tilled {
		t.Fatalf("expected fuzzy till to apply, log: %v", m.log)
	}
}

func TestNonsenseInputLogsClarification(t *testing.T) {
	m := newTestModel(t)
	before := m.farm.Clone()

	typeLine(m, "xyzzy the plugh")
	joined := strings.Join(m.log, "\n")
	if !strings.Contains(joined, "couldn't map") {
		t.Fatalf("expected clarification in log, got: %v", m.log)
	}
	if m.farm.Money != before.Money {
		t.Fatalf("nonsense input must not mutate the farm")
	}
}

func TestBackspaceEditsInput(t *testing.T) {
	m := newTestModel(t)

	for _, r := range "statuss" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.input != "status" {
		t.Fatalf("expected backspace to trim input, got %q", m.input)
	}
}

func TestViewShowsStatusAndGrid(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "HOMESTEAD") {
		t.Fatalf("expected title in view")
	}
	if !strings.Contains(view, "Level 1") {
		t.Fatalf("expected status line in view")
	}
	if !strings.Contains(view, "[ 0") {
		t.Fatalf("expected plot grid in view")
	}
}
