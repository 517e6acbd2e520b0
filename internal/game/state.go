package game

import (
	"time"
)

type ViewMode string

const (
	ViewFarm ViewMode = "farm"
	ViewShop ViewMode = "shop"
)

const (
	PlotCount = 16
	PlotCols  = 4
	PlotRows  = 4
)

// FarmState is the full simulation aggregate. The presentation layer holds a
// read reference for rendering and mutates it only through the operations
// defined on it; every operation either applies fully or leaves the state
// untouched.
type FarmState struct {
	Money        int                 `json:"money"`
	Plots        []Plot              `json:"plots"`
	Seeds        map[CropKind]int    `json:"seeds"`
	Harvested    map[CropKind]int    `json:"harvested"`
	Products     map[ProductKind]int `json:"products"`
	Level        int                 `json:"level"`
	Experience   int                 `json:"experience"`
	Gems         int                 `json:"gems"`
	Chests       []RewardChest       `json:"chests,omitempty"`
	View         ViewMode            `json:"view"`
	SelectedSeed CropKind            `json:"selected_seed,omitempty"`

	// Clock overrides the wall clock for planting timestamps and growth
	// progress. Nil means time.Now.
	Clock func() time.Time `json:"-"`
}

type FarmConfig struct {
	StartingMoney int
	StartingSeeds map[CropKind]int
}

func DefaultFarmConfig() FarmConfig {
	return FarmConfig{
		StartingMoney: 100,
		StartingSeeds: map[CropKind]int{CropCarrot: 2},
	}
}

func NewFarmState(config FarmConfig) *FarmState {
	state := &FarmState{
		Money:     config.StartingMoney,
		Plots:     newPlots(),
		Seeds:     zeroCropCounts(),
		Harvested: zeroCropCounts(),
		Products:  zeroProductCounts(),
		Level:     1,
		View:      ViewFarm,
	}
	if state.Money < 0 {
		state.Money = 0
	}
	for kind, count := range config.StartingSeeds {
		if _, ok := ParseCropKind(string(kind)); ok && count > 0 {
			state.Seeds[kind] = count
		}
	}
	return state
}

func newPlots() []Plot {
	plots := make([]Plot, PlotCount)
	for i := range plots {
		plots[i] = Plot{ID: i}
	}
	return plots
}

// zeroCropCounts returns a fully populated map so lookups stay total and no
// existence checks leak into the transaction logic.
func zeroCropCounts() map[CropKind]int {
	counts := make(map[CropKind]int, len(CropCatalog()))
	for _, kind := range CropKinds() {
		counts[kind] = 0
	}
	return counts
}

func zeroProductCounts() map[ProductKind]int {
	counts := make(map[ProductKind]int, len(ProductCatalog()))
	for _, kind := range ProductKinds() {
		counts[kind] = 0
	}
	return counts
}

func (s *FarmState) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *FarmState) SetView(mode ViewMode) bool {
	if s == nil {
		return false
	}
	switch mode {
	case ViewFarm, ViewShop:
	default:
		return false
	}
	s.View = mode
	return true
}

// SetSelectedSeed selects the seed kind used when interacting with a tilled
// plot. An empty kind clears the selection.
func (s *FarmState) SetSelectedSeed(kind CropKind) bool {
	if s == nil {
		return false
	}
	if kind == "" {
		s.SelectedSeed = ""
		return true
	}
	if _, ok := ParseCropKind(string(kind)); !ok {
		return false
	}
	s.SelectedSeed = kind
	return true
}
