package game

import "time"

const (
	experiencePlant   = 5
	experienceHarvest = 100
)

// Plot is one grid cell of farmable land. Crop and PlantedAtMs are set and
// cleared together: a plot is occupied exactly when Crop is non-empty, and
// PlantedAtMs (epoch milliseconds) is non-zero exactly then.
type Plot struct {
	ID          int      `json:"id"`
	Tilled      bool     `json:"tilled"`
	Crop        CropKind `json:"crop,omitempty"`
	PlantedAtMs int64    `json:"planted_at_ms,omitempty"`
}

func (p Plot) Empty() bool {
	return p.Crop == ""
}

// Progress is derived from the stored planting timestamp and the supplied
// clock, never stored, so restoring an old save after arbitrary elapsed time
// yields correct growth without any catch-up tick.
func (p Plot) Progress(now time.Time) float64 {
	if p.Empty() {
		return 0
	}
	spec := CropSpecFor(p.Crop)
	if spec.GrowthMs <= 0 {
		return 1
	}
	elapsed := now.UnixMilli() - p.PlantedAtMs
	return ClampFloat(float64(elapsed)/float64(spec.GrowthMs), 0, 1)
}

func (p Plot) Ready(now time.Time) bool {
	return !p.Empty() && p.Progress(now) >= 1
}

func (s *FarmState) plotByID(plotID int) *Plot {
	if s == nil || plotID < 0 || plotID >= len(s.Plots) {
		return nil
	}
	return &s.Plots[plotID]
}

// Till toggles the tilled flag of an unoccupied plot. An occupied plot keeps
// its tilling until harvest consumes it.
func (s *FarmState) Till(plotID int) bool {
	plot := s.plotByID(plotID)
	if plot == nil || !plot.Empty() {
		return false
	}
	plot.Tilled = !plot.Tilled
	return true
}

func (s *FarmState) Plant(plotID int, kind CropKind) bool {
	plot := s.plotByID(plotID)
	if plot == nil || !plot.Tilled || !plot.Empty() {
		return false
	}
	if _, ok := ParseCropKind(string(kind)); !ok {
		return false
	}
	if s.Seeds[kind] < 1 {
		return false
	}
	plot.Crop = kind
	plot.PlantedAtMs = s.now().UnixMilli()
	s.Seeds[kind]--
	s.awardExperience(experiencePlant)
	return true
}

// Harvest gathers a mature crop. The soil reverts to untilled; the next cycle
// starts from scratch.
func (s *FarmState) Harvest(plotID int) bool {
	plot := s.plotByID(plotID)
	if plot == nil || plot.Empty() || !plot.Ready(s.now()) {
		return false
	}
	s.Harvested[plot.Crop]++
	plot.Crop = ""
	plot.PlantedAtMs = 0
	plot.Tilled = false
	s.awardExperience(experienceHarvest)
	return true
}

// GrowthProgress reports the derived growth fraction for a plot, 0 for
// unknown plots.
func (s *FarmState) GrowthProgress(plotID int, now time.Time) float64 {
	plot := s.plotByID(plotID)
	if plot == nil {
		return 0
	}
	return plot.Progress(now)
}

// ClampFloat bounds v to [minV, maxV]. Presentation code shares it for
// keeping the player inside the window.
func ClampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
