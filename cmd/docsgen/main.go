// Command docsgen regenerates the reference docs from the data catalogs, so
// balancing changes in code never drift from the documentation.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/homestead/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateCropsDoc(),
		generateProductsDoc(),
		generateProgressionDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateCropsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Crops\n\n")
	b.WriteString("| Crop | Seed cost | Sell price | Growth time |\n")
	b.WriteString("| --- | ---: | ---: | ---: |\n")
	for _, spec := range game.CropCatalog() {
		b.WriteString(fmt.Sprintf("| %s %s | %dg | %dg | %.0fs |\n",
			spec.Icon, spec.Name, spec.SeedCost, spec.SellPrice, float64(spec.GrowthMs)/1000))
	}
	return docFile{Name: "crops.md", Title: "Crops", Content: b.String()}
}

func generateProductsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Cooked Goods\n\n")
	b.WriteString("| Product | Sell price | Recipe |\n")
	b.WriteString("| --- | ---: | --- |\n")
	for _, spec := range game.ProductCatalog() {
		parts := make([]string, 0, len(spec.Recipe))
		for _, ingredient := range spec.Recipe {
			parts = append(parts, fmt.Sprintf("%dx %s", ingredient.Count, ingredient.Crop))
		}
		b.WriteString(fmt.Sprintf("| %s %s | %dg | %s |\n",
			spec.Icon, spec.Name, spec.SellPrice, strings.Join(parts, " + ")))
	}
	return docFile{Name: "products.md", Title: "Cooked Goods", Content: b.String()}
}

func generateProgressionDoc() docFile {
	var b strings.Builder
	b.WriteString("# Progression\n\n")
	b.WriteString("Experience: 5 for planting, 100 for harvesting, 200 for cooking.\n\n")
	b.WriteString("| Level | Experience to next |\n")
	b.WriteString("| ---: | ---: |\n")
	farm := game.NewFarmState(game.DefaultFarmConfig())
	for level := 1; level <= 10; level++ {
		farm.Level = level
		farm.Experience = 0
		b.WriteString(fmt.Sprintf("| %d | %d |\n", level, farm.ExperienceToNextLevel()))
	}
	b.WriteString("\nEach level-up grants a reward chest; its contents are fixed by the level it was earned at.\n")
	return docFile{Name: "progression.md", Title: "Progression", Content: b.String()}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
