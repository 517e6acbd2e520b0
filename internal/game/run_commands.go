package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Run command handlers are thin adapters over the FarmState operations; the
// GUI command box and the classic TUI both feed through here.
type RunCommandResult struct {
	Handled bool
	Message string
	// Changed reports whether simulation state mutated, so the caller
	// knows to mark the autosave debouncer.
	Changed bool
}

func (s *FarmState) ExecuteRunCommand(raw string) RunCommandResult {
	command := strings.TrimSpace(strings.ToLower(raw))
	if command == "" {
		return RunCommandResult{Handled: false}
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return RunCommandResult{Handled: false}
	}

	switch fields[0] {
	case "commands", "help":
		return RunCommandResult{
			Handled: true,
			Message: "Commands: status, plots, inventory, prices, till <plot>, plant <crop> <plot>, harvest <plot|all>, buy <crop> [n], sell <crop|product> [n], cook <product>, seed <crop|none>, chests, open <n>, shop, farm.",
		}
	case "status":
		return s.executeStatusCommand()
	case "plots":
		return s.executePlotsCommand()
	case "inventory":
		return s.executeInventoryCommand()
	case "prices":
		return s.executePricesCommand()
	case "till":
		return s.executeTillCommand(fields[1:])
	case "plant":
		return s.executePlantCommand(fields[1:])
	case "harvest":
		return s.executeHarvestCommand(fields[1:])
	case "buy":
		return s.executeBuyCommand(fields[1:])
	case "sell":
		return s.executeSellCommand(fields[1:])
	case "cook":
		return s.executeCookCommand(fields[1:])
	case "seed":
		return s.executeSeedCommand(fields[1:])
	case "chests":
		return s.executeChestsCommand()
	case "open":
		return s.executeOpenCommand(fields[1:])
	case "shop":
		applied := s.SetView(ViewShop)
		return RunCommandResult{Handled: true, Changed: applied, Message: "Entered the shop."}
	case "farm":
		applied := s.SetView(ViewFarm)
		return RunCommandResult{Handled: true, Changed: applied, Message: "Back to the farm."}
	default:
		return RunCommandResult{Handled: false}
	}
}

func (s *FarmState) executeStatusCommand() RunCommandResult {
	growing := 0
	ready := 0
	now := s.now()
	for _, plot := range s.Plots {
		if plot.Empty() {
			continue
		}
		if plot.Ready(now) {
			ready++
		} else {
			growing++
		}
	}
	return RunCommandResult{
		Handled: true,
		Message: fmt.Sprintf("Money %dg | Gems %d | Level %d (%d xp to next) | growing %d, ready %d, chests %d",
			s.Money, s.Gems, s.Level, s.ExperienceToNextLevel(), growing, ready, len(s.Chests)),
	}
}

func (s *FarmState) executePlotsCommand() RunCommandResult {
	now := s.now()
	parts := make([]string, 0, len(s.Plots))
	for _, plot := range s.Plots {
		switch {
		case plot.Empty() && !plot.Tilled:
			parts = append(parts, fmt.Sprintf("%d:-", plot.ID))
		case plot.Empty():
			parts = append(parts, fmt.Sprintf("%d:tilled", plot.ID))
		case plot.Ready(now):
			parts = append(parts, fmt.Sprintf("%d:%s ready", plot.ID, plot.Crop))
		default:
			parts = append(parts, fmt.Sprintf("%d:%s %d%%", plot.ID, plot.Crop, int(plot.Progress(now)*100)))
		}
	}
	return RunCommandResult{Handled: true, Message: "Plots -> " + strings.Join(parts, " | ")}
}

func (s *FarmState) executeInventoryCommand() RunCommandResult {
	parts := make([]string, 0, 3)
	parts = append(parts, "seeds: "+formatCropCounts(s.Seeds))
	parts = append(parts, "crops: "+formatCropCounts(s.Harvested))
	parts = append(parts, "products: "+formatProductCounts(s.Products))
	return RunCommandResult{Handled: true, Message: strings.Join(parts, " | ")}
}

func (s *FarmState) executePricesCommand() RunCommandResult {
	parts := make([]string, 0, len(CropCatalog())+len(ProductCatalog()))
	for _, spec := range CropCatalog() {
		parts = append(parts, fmt.Sprintf("%s seed %dg, sells %dg", spec.Kind, spec.SeedCost, spec.SellPrice))
	}
	for _, spec := range ProductCatalog() {
		parts = append(parts, fmt.Sprintf("%s sells %dg (%s)", spec.Kind, spec.SellPrice, formatRecipe(spec.Recipe)))
	}
	return RunCommandResult{Handled: true, Message: "Prices -> " + strings.Join(parts, " | ")}
}

func (s *FarmState) executeTillCommand(args []string) RunCommandResult {
	plotID, ok := parsePlotID(args)
	if !ok {
		return RunCommandResult{Handled: true, Message: "Usage: till <plot 0-15>"}
	}
	if !s.Till(plotID) {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("Plot %d is occupied.", plotID)}
	}
	plot := s.plotByID(plotID)
	if plot.Tilled {
		return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("Tilled plot %d.", plotID)}
	}
	return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("Untilled plot %d.", plotID)}
}

func (s *FarmState) executePlantCommand(args []string) RunCommandResult {
	if len(args) < 2 {
		return RunCommandResult{Handled: true, Message: "Usage: plant <crop> <plot>"}
	}
	kind, ok := ParseCropKind(args[0])
	if !ok {
		return RunCommandResult{Handled: true, Message: "Unknown crop: " + args[0]}
	}
	plotID, ok := parsePlotID(args[1:])
	if !ok {
		return RunCommandResult{Handled: true, Message: "Usage: plant <crop> <plot 0-15>"}
	}
	if !s.Plant(plotID, kind) {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("Can't plant %s on plot %d (needs tilled empty soil and a seed).", kind, plotID)}
	}
	return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("Planted %s on plot %d.", kind, plotID)}
}

func (s *FarmState) executeHarvestCommand(args []string) RunCommandResult {
	if len(args) > 0 && args[0] == "all" {
		now := s.now()
		harvested := 0
		for _, plot := range s.Plots {
			if plot.Ready(now) && s.Harvest(plot.ID) {
				harvested++
			}
		}
		if harvested == 0 {
			return RunCommandResult{Handled: true, Message: "Nothing is ready to harvest."}
		}
		return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("Harvested %d plots.", harvested)}
	}
	plotID, ok := parsePlotID(args)
	if !ok {
		return RunCommandResult{Handled: true, Message: "Usage: harvest <plot 0-15> | harvest all"}
	}
	plot := s.plotByID(plotID)
	if plot == nil || plot.Empty() {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("Nothing planted on plot %d.", plotID)}
	}
	crop := plot.Crop
	if !s.Harvest(plotID) {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("%s on plot %d is still growing (%d%%).", crop, plotID, int(plot.Progress(s.now())*100))}
	}
	return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("Harvested %s from plot %d.", crop, plotID)}
}

func (s *FarmState) executeBuyCommand(args []string) RunCommandResult {
	if len(args) == 0 {
		return RunCommandResult{Handled: true, Message: "Usage: buy <crop> [count]"}
	}
	kind, ok := ParseCropKind(args[0])
	if !ok {
		return RunCommandResult{Handled: true, Message: "Unknown crop: " + args[0]}
	}
	count := parseCount(args[1:])
	bought := 0
	for i := 0; i < count; i++ {
		if !s.BuySeed(kind) {
			break
		}
		bought++
	}
	if bought == 0 {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("Not enough money for a %s seed (%dg).", kind, CropSpecFor(kind).SeedCost)}
	}
	return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("Bought %d %s seed(s), %dg left.", bought, kind, s.Money)}
}

func (s *FarmState) executeSellCommand(args []string) RunCommandResult {
	if len(args) == 0 {
		return RunCommandResult{Handled: true, Message: "Usage: sell <crop|product> [count]"}
	}
	count := parseCount(args[1:])
	if kind, ok := ParseCropKind(args[0]); ok {
		sold := 0
		for i := 0; i < count; i++ {
			if !s.SellCrop(kind) {
				break
			}
			sold++
		}
		if sold == 0 {
			return RunCommandResult{Handled: true, Message: fmt.Sprintf("No %s in stock.", kind)}
		}
		return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("Sold %d %s for %dg each.", sold, kind, CropSpecFor(kind).SellPrice)}
	}
	if kind, ok := ParseProductKind(args[0]); ok {
		sold := 0
		for i := 0; i < count; i++ {
			if !s.SellProduct(kind) {
				break
			}
			sold++
		}
		if sold == 0 {
			return RunCommandResult{Handled: true, Message: fmt.Sprintf("No %s in stock.", kind)}
		}
		return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("Sold %d %s for %dg each.", sold, kind, ProductSpecFor(kind).SellPrice)}
	}
	return RunCommandResult{Handled: true, Message: "Unknown item: " + args[0]}
}

func (s *FarmState) executeCookCommand(args []string) RunCommandResult {
	if len(args) == 0 {
		return RunCommandResult{Handled: true, Message: "Usage: cook <product>"}
	}
	kind, ok := ParseProductKind(args[0])
	if !ok {
		return RunCommandResult{Handled: true, Message: "Unknown product: " + args[0]}
	}
	if !s.Cook(kind) {
		return RunCommandResult{Handled: true, Message: fmt.Sprintf("Missing ingredients for %s (needs %s).", kind, formatRecipe(ProductSpecFor(kind).Recipe))}
	}
	return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("Cooked one %s.", kind)}
}

func (s *FarmState) executeSeedCommand(args []string) RunCommandResult {
	if len(args) == 0 {
		return RunCommandResult{Handled: true, Message: "Usage: seed <crop|none>"}
	}
	if args[0] == "none" {
		s.SetSelectedSeed("")
		return RunCommandResult{Handled: true, Changed: true, Message: "Seed selection cleared."}
	}
	kind, ok := ParseCropKind(args[0])
	if !ok {
		return RunCommandResult{Handled: true, Message: "Unknown crop: " + args[0]}
	}
	s.SetSelectedSeed(kind)
	return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("Selected %s seeds.", kind)}
}

func (s *FarmState) executeChestsCommand() RunCommandResult {
	if len(s.Chests) == 0 {
		return RunCommandResult{Handled: true, Message: "No reward chests."}
	}
	parts := make([]string, 0, len(s.Chests))
	for i, chest := range s.Chests {
		parts = append(parts, fmt.Sprintf("%d:level %d", i, chest.Level))
	}
	return RunCommandResult{Handled: true, Message: "Chests -> " + strings.Join(parts, ", ") + " (open <n>)"}
}

func (s *FarmState) executeOpenCommand(args []string) RunCommandResult {
	if len(args) == 0 {
		return RunCommandResult{Handled: true, Message: "Usage: open <chest index>"}
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return RunCommandResult{Handled: true, Message: "Usage: open <chest index>"}
	}
	if index < 0 || index >= len(s.Chests) {
		return RunCommandResult{Handled: true, Message: "No such chest."}
	}
	reward := rewardForLevel(s.Chests[index].Level)
	if !s.OpenChest(index) {
		return RunCommandResult{Handled: true, Message: "No such chest."}
	}
	return RunCommandResult{Handled: true, Changed: true, Message: fmt.Sprintf("Chest opened: +%d gems, %s.", reward.Gems, formatSeedReward(reward.Seeds))}
}

func parsePlotID(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 0 || id >= PlotCount {
		return 0, false
	}
	return id, true
}

func parseCount(args []string) int {
	if len(args) == 0 {
		return 1
	}
	count, err := strconv.Atoi(args[0])
	if err != nil || count < 1 {
		return 1
	}
	return count
}

func formatCropCounts(counts map[CropKind]int) string {
	parts := make([]string, 0, len(counts))
	for _, kind := range CropKinds() {
		parts = append(parts, fmt.Sprintf("%s %d", kind, counts[kind]))
	}
	return strings.Join(parts, ", ")
}

func formatProductCounts(counts map[ProductKind]int) string {
	parts := make([]string, 0, len(counts))
	for _, kind := range ProductKinds() {
		parts = append(parts, fmt.Sprintf("%s %d", kind, counts[kind]))
	}
	return strings.Join(parts, ", ")
}

func formatRecipe(recipe []Ingredient) string {
	parts := make([]string, 0, len(recipe))
	for _, ingredient := range recipe {
		parts = append(parts, fmt.Sprintf("%dx %s", ingredient.Count, ingredient.Crop))
	}
	return strings.Join(parts, " + ")
}

func formatSeedReward(seeds map[CropKind]int) string {
	parts := make([]string, 0, len(seeds))
	for kind, count := range seeds {
		parts = append(parts, fmt.Sprintf("%d %s seed(s)", count, kind))
	}
	sort.Strings(parts)
	if len(parts) == 0 {
		return "no seeds"
	}
	return strings.Join(parts, ", ")
}
