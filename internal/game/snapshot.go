package game

// Clone returns a deep copy of the aggregate, safe to hand to the save layer
// while the live state keeps mutating.
func (s *FarmState) Clone() FarmState {
	if s == nil {
		return FarmState{}
	}
	out := *s
	out.Clock = nil
	out.Plots = append([]Plot(nil), s.Plots...)
	out.Chests = append([]RewardChest(nil), s.Chests...)
	out.Seeds = make(map[CropKind]int, len(s.Seeds))
	for kind, count := range s.Seeds {
		out.Seeds[kind] = count
	}
	out.Harvested = make(map[CropKind]int, len(s.Harvested))
	for kind, count := range s.Harvested {
		out.Harvested[kind] = count
	}
	out.Products = make(map[ProductKind]int, len(s.Products))
	for kind, count := range s.Products {
		out.Products[kind] = count
	}
	return out
}

// RestoreSnapshot rebuilds a live aggregate from persisted data. Loading is
// defensive: every top-level field independently falls back to its initial
// value when absent or malformed, and the plot occupancy invariant is
// repaired rather than trusted.
func RestoreSnapshot(snap FarmState, config FarmConfig) *FarmState {
	state := NewFarmState(config)

	if snap.Money >= 0 {
		state.Money = snap.Money
	}
	if len(snap.Plots) == PlotCount {
		for i := range snap.Plots {
			state.Plots[i] = repairPlot(snap.Plots[i], i)
		}
	}
	state.Seeds = restoreCropCounts(snap.Seeds, state.Seeds)
	state.Harvested = restoreCropCounts(snap.Harvested, zeroCropCounts())
	state.Products = restoreProductCounts(snap.Products)
	if snap.Level >= 1 {
		state.Level = snap.Level
	}
	if snap.Experience >= 0 {
		state.Experience = snap.Experience
	}
	if snap.Gems >= 0 {
		state.Gems = snap.Gems
	}
	for _, chest := range snap.Chests {
		if chest.Level >= 1 {
			state.Chests = append(state.Chests, chest)
		}
	}
	if snap.View == ViewFarm || snap.View == ViewShop {
		state.View = snap.View
	}
	if _, ok := ParseCropKind(string(snap.SelectedSeed)); ok {
		state.SelectedSeed = snap.SelectedSeed
	}
	return state
}

func repairPlot(plot Plot, id int) Plot {
	plot.ID = id
	if _, ok := ParseCropKind(string(plot.Crop)); !ok {
		plot.Crop = ""
	}
	// Occupancy and timestamp are set together or not at all.
	if plot.Crop == "" || plot.PlantedAtMs <= 0 {
		plot.Crop = ""
		plot.PlantedAtMs = 0
	}
	return plot
}

func restoreCropCounts(src map[CropKind]int, fallback map[CropKind]int) map[CropKind]int {
	if src == nil {
		return fallback
	}
	counts := zeroCropCounts()
	for _, kind := range CropKinds() {
		if src[kind] > 0 {
			counts[kind] = src[kind]
		}
	}
	return counts
}

func restoreProductCounts(src map[ProductKind]int) map[ProductKind]int {
	counts := zeroProductCounts()
	if src == nil {
		return counts
	}
	for _, kind := range ProductKinds() {
		if src[kind] > 0 {
			counts[kind] = src[kind]
		}
	}
	return counts
}
