package game

import (
	"fmt"
	"math"
	"time"
)

type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetShop
	TargetPlot
)

// Layout places the interactive world objects in pixel space. It is built
// from tuning by the presentation layer and treated as static for a session.
type Layout struct {
	ShopX       float64
	ShopY       float64
	ShopRadius  float64
	PlotOriginX float64
	PlotOriginY float64
	TileSize    float64
	PlotCols    int
	PlotRows    int
}

// Interaction describes the single actionable target at a position: what it
// is, the affordance label shown to the player, and which inputs apply.
type Interaction struct {
	Kind      TargetKind
	PlotID    int
	Label     string
	Primary   bool // confirm input (enter shop / plant / harvest)
	Secondary bool // till toggle input
}

// ResolveInteraction is the read-only label mode, called once per frame. The
// shop check runs first and wins over any plot cell the position might also
// fall into; that precedence must hold even if a future layout overlaps them.
func (s *FarmState) ResolveInteraction(layout Layout, x, y float64, now time.Time) Interaction {
	if s == nil {
		return Interaction{Kind: TargetNone}
	}
	if math.Hypot(x-layout.ShopX, y-layout.ShopY) < layout.ShopRadius {
		return Interaction{Kind: TargetShop, PlotID: -1, Label: "enter shop", Primary: true}
	}

	plotID, ok := layout.cellAt(x, y)
	if !ok {
		return Interaction{Kind: TargetNone, PlotID: -1}
	}
	plot := s.plotByID(plotID)
	if plot == nil {
		return Interaction{Kind: TargetNone, PlotID: -1}
	}

	target := Interaction{Kind: TargetPlot, PlotID: plotID}
	switch {
	case plot.Empty() && !plot.Tilled:
		target.Label = "till"
		target.Secondary = true
	case plot.Empty() && plot.Tilled:
		if s.SelectedSeed != "" {
			target.Label = "plant " + CropSpecFor(s.SelectedSeed).Name
			target.Primary = true
			target.Secondary = true
		} else {
			target.Label = "untill"
			target.Secondary = true
		}
	case plot.Ready(now):
		target.Label = "harvest " + CropSpecFor(plot.Crop).Name
		target.Primary = true
	default:
		target.Label = fmt.Sprintf("%s growing (%d%%)", CropSpecFor(plot.Crop).Name, int(plot.Progress(now)*100))
	}
	return target
}

// Interact is the execute mode for the confirm input. It resolves the same
// target the label mode reported and dispatches, so the label always
// predicts the executed action.
func (s *FarmState) Interact(layout Layout, x, y float64) bool {
	if s == nil {
		return false
	}
	target := s.ResolveInteraction(layout, x, y, s.now())
	switch target.Kind {
	case TargetShop:
		return s.SetView(ViewShop)
	case TargetPlot:
		plot := s.plotByID(target.PlotID)
		if plot == nil {
			return false
		}
		if plot.Ready(s.now()) {
			return s.Harvest(target.PlotID)
		}
		if plot.Empty() && plot.Tilled && s.SelectedSeed != "" {
			return s.Plant(target.PlotID, s.SelectedSeed)
		}
	}
	return false
}

// ToggleTill is the execute mode for the secondary input.
func (s *FarmState) ToggleTill(layout Layout, x, y float64) bool {
	if s == nil {
		return false
	}
	target := s.ResolveInteraction(layout, x, y, s.now())
	if target.Kind != TargetPlot {
		return false
	}
	return s.Till(target.PlotID)
}

func (l Layout) cellAt(x, y float64) (int, bool) {
	if l.TileSize <= 0 {
		return 0, false
	}
	cols, rows := l.PlotCols, l.PlotRows
	if cols <= 0 {
		cols = PlotCols
	}
	if rows <= 0 {
		rows = PlotRows
	}
	col := int(math.Floor((x - l.PlotOriginX) / l.TileSize))
	row := int(math.Floor((y - l.PlotOriginY) / l.TileSize))
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return 0, false
	}
	return row*cols + col, true
}

// PlotCell reports the grid coordinates of a plot for rendering.
func PlotCell(plotID int) (col, row int) {
	return plotID % PlotCols, plotID / PlotCols
}
