package save

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/appengine-ltd/homestead/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "saves.db")
	store, err := Open(path, slog.Default())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	farm := game.NewFarmState(game.DefaultFarmConfig())
	now := time.UnixMilli(5_000_000)
	farm.Clock = func() time.Time { return now }
	farm.Till(0)
	farm.Plant(0, game.CropCarrot)
	farm.BuySeed(game.CropTomato)
	farm.Gems = 12

	if err := store.Save(1, farm.Clone()); err != nil {
		t.Fatalf("save: %v", err)
	}
	restored, err := store.Load(1, game.DefaultFarmConfig())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if restored.Money != farm.Money {
		t.Fatalf("expected money %d, got %d", farm.Money, restored.Money)
	}
	if restored.Plots[0].Crop != game.CropCarrot {
		t.Fatalf("expected carrot on plot 0, got %q", restored.Plots[0].Crop)
	}
	if restored.Plots[0].PlantedAtMs != farm.Plots[0].PlantedAtMs {
		t.Fatalf("expected planting timestamp preserved")
	}
	if restored.Gems != 12 {
		t.Fatalf("expected gems preserved, got %d", restored.Gems)
	}
}

func TestLoadEmptySlotYieldsFreshFarm(t *testing.T) {
	store := newTestStore(t)

	farm, err := store.Load(3, game.DefaultFarmConfig())
	if err != nil {
		t.Fatalf("load empty slot: %v", err)
	}
	if farm.Money != 100 || farm.Level != 1 {
		t.Fatalf("expected fresh farm, got money=%d level=%d", farm.Money, farm.Level)
	}
}

func TestLoadCorruptPayloadYieldsFreshFarm(t *testing.T) {
	store := newTestStore(t)

	_, err := store.conn.Exec(
		`INSERT INTO saves (slot, saved_at, payload) VALUES (?, ?, ?)`,
		2, time.Now().UTC().Format(time.RFC3339), "{not json",
	)
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	farm, err := store.Load(2, game.DefaultFarmConfig())
	if err != nil {
		t.Fatalf("load corrupt slot: %v", err)
	}
	if farm.Money != 100 || farm.Level != 1 {
		t.Fatalf("expected fresh farm for corrupt payload, got money=%d level=%d", farm.Money, farm.Level)
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	store := newTestStore(t)

	farm := game.NewFarmState(game.DefaultFarmConfig())
	if err := store.Save(1, farm.Clone()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	farm.Money = 900
	if err := store.Save(1, farm.Clone()); err != nil {
		t.Fatalf("second save: %v", err)
	}

	restored, err := store.Load(1, game.DefaultFarmConfig())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if restored.Money != 900 {
		t.Fatalf("expected overwritten save, got money=%d", restored.Money)
	}

	infos, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 1 || infos[0].Slot != 1 || infos[0].Money != 900 {
		t.Fatalf("unexpected slot listing: %+v", infos)
	}
}

func TestDeleteSlot(t *testing.T) {
	store := newTestStore(t)

	farm := game.NewFarmState(game.DefaultFarmConfig())
	if err := store.Save(4, farm.Clone()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(4); err != nil {
		t.Fatalf("delete: %v", err)
	}
	infos, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 0 {
		t.Fatalf("expected no slots after delete, got %+v", infos)
	}
	if err := store.Delete(4); err != nil {
		t.Fatalf("deleting an empty slot must not error: %v", err)
	}
}
