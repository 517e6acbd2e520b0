package game

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestCloneIsIndependent(t *testing.T) {
	farm, clock := newTestFarm(t)
	farm.Till(0)
	farm.Plant(0, CropCarrot)
	*clock = clock.Add(time.Minute)

	snap := farm.Clone()
	farm.Harvest(0)
	farm.Money = 0
	farm.Seeds[CropCarrot] = 99

	if snap.Plots[0].Crop != CropCarrot {
		t.Fatalf("clone plots must not track the live state")
	}
	if snap.Money != 100 {
		t.Fatalf("clone money must not track the live state, got %d", snap.Money)
	}
	if snap.Seeds[CropCarrot] == 99 {
		t.Fatalf("clone seed map must not alias the live state")
	}
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	farm, clock := newTestFarm(t)
	farm.Till(2)
	farm.Plant(2, CropCarrot)
	*clock = clock.Add(10 * time.Second)
	farm.Harvest(2)
	farm.BuySeed(CropTomato)
	farm.Harvested[CropPumpkin] = 3
	farm.Harvested[CropTomato] = 2
	if !farm.Cook(ProductTomatoSoup) {
		t.Fatalf("expected soup to cook")
	}
	farm.SetSelectedSeed(CropTomato)
	farm.Gems = 40
	farm.Chests = append(farm.Chests, RewardChest{Level: 2})

	payload, err := json.Marshal(farm.Clone())
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	var snap FarmState
	if err := json.Unmarshal(payload, &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	restored := RestoreSnapshot(snap, DefaultFarmConfig())

	want := farm.Clone()
	got := restored.Clone()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("round trip changed state:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestRestoreSnapshotDefaultsMissingFields(t *testing.T) {
	restored := RestoreSnapshot(FarmState{}, DefaultFarmConfig())

	if restored.Money != 0 {
		t.Fatalf("zero money in snapshot must restore as zero, got %d", restored.Money)
	}
	if len(restored.Plots) != PlotCount {
		t.Fatalf("expected full plot grid, got %d", len(restored.Plots))
	}
	if restored.Level != 1 {
		t.Fatalf("expected level default, got %d", restored.Level)
	}
	if restored.View != ViewFarm {
		t.Fatalf("expected farm view default, got %q", restored.View)
	}
	if restored.Seeds == nil || restored.Harvested == nil || restored.Products == nil {
		t.Fatalf("expected fully populated count maps")
	}
	for _, kind := range CropKinds() {
		if _, ok := restored.Seeds[kind]; !ok {
			t.Fatalf("expected seed map entry for %s", kind)
		}
	}
}

func TestRestoreSnapshotRepairsCorruptFields(t *testing.T) {
	snap := FarmState{
		Money:      -50,
		Level:      0,
		Experience: -10,
		Gems:       -1,
		Plots: append([]Plot{
			{ID: 9, Crop: CropKind("kale"), PlantedAtMs: 123},
			{ID: 9, Crop: CropCarrot},
		}, make([]Plot, PlotCount-2)...),
		Seeds:        map[CropKind]int{CropCarrot: -4, CropTomato: 7},
		View:         ViewMode("dungeon"),
		SelectedSeed: CropKind("kale"),
		Chests:       []RewardChest{{Level: 0}, {Level: 2}},
	}

	restored := RestoreSnapshot(snap, DefaultFarmConfig())

	if restored.Money != 100 {
		t.Fatalf("negative money must fall back to the starting balance, got %d", restored.Money)
	}
	if restored.Level != 1 || restored.Experience != 0 || restored.Gems != 0 {
		t.Fatalf("corrupt progression must default, got level=%d exp=%d gems=%d", restored.Level, restored.Experience, restored.Gems)
	}
	if restored.Plots[0].Crop != "" || restored.Plots[0].PlantedAtMs != 0 {
		t.Fatalf("unknown crop must be cleared, got %+v", restored.Plots[0])
	}
	if restored.Plots[1].ID != 1 {
		t.Fatalf("plot IDs must be reassigned by position, got %d", restored.Plots[1].ID)
	}
	if restored.Plots[1].Crop != "" {
		t.Fatalf("crop without timestamp must be cleared, got %+v", restored.Plots[1])
	}
	if restored.Seeds[CropCarrot] != 0 || restored.Seeds[CropTomato] != 7 {
		t.Fatalf("negative counts must clamp to zero, got %+v", restored.Seeds)
	}
	if restored.View != ViewFarm {
		t.Fatalf("unknown view must default to farm, got %q", restored.View)
	}
	if restored.SelectedSeed != "" {
		t.Fatalf("unknown selected seed must clear, got %q", restored.SelectedSeed)
	}
	if len(restored.Chests) != 1 || restored.Chests[0].Level != 2 {
		t.Fatalf("invalid chests must be dropped, got %+v", restored.Chests)
	}
}

func TestRestoredGrowthContinuesFromTimestamp(t *testing.T) {
	farm, clock := newTestFarm(t)
	farm.Seeds[CropPumpkin] = 1
	farm.Till(0)
	if !farm.Plant(0, CropPumpkin) {
		t.Fatalf("expected pumpkin to plant")
	}
	plantedAt := *clock

	snap := farm.Clone()
	restored := RestoreSnapshot(snap, DefaultFarmConfig())

	// Half the pumpkin growth window later, progress resumes mid-flight.
	later := plantedAt.Add(10 * time.Second)
	if progress := restored.GrowthProgress(0, later); progress != 0.5 {
		t.Fatalf("expected restored growth at 0.5, got %f", progress)
	}
	if !restored.Plots[0].Ready(plantedAt.Add(time.Minute)) {
		t.Fatalf("expected restored crop ready after full window")
	}
}
