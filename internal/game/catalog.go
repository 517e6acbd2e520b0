package game

type CropKind string

const (
	CropCarrot  CropKind = "carrot"
	CropTomato  CropKind = "tomato"
	CropPumpkin CropKind = "pumpkin"
)

type ProductKind string

const (
	ProductPumpkinPie ProductKind = "pumpkin_pie"
	ProductTomatoSoup ProductKind = "tomato_soup"
)

// RGB is a renderer-agnostic colour so the catalog stays free of any
// graphics dependency.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// CropSpec is the static definition of a plantable crop. All balancing
// numbers live here and in ProductSpec; the simulation code never hardcodes
// prices or timings.
type CropSpec struct {
	Kind      CropKind
	Name      string
	Icon      string
	SeedCost  int
	SellPrice int
	GrowthMs  int64
	Color     RGB
}

type Ingredient struct {
	Crop  CropKind
	Count int
}

// ProductSpec is the static definition of a cookable product and its recipe.
type ProductSpec struct {
	Kind      ProductKind
	Name      string
	Icon      string
	SellPrice int
	Recipe    []Ingredient
}

func CropCatalog() []CropSpec {
	return []CropSpec{
		{
			Kind:      CropCarrot,
			Name:      "Carrot",
			Icon:      "🥕",
			SeedCost:  10,
			SellPrice: 25,
			GrowthMs:  5000,
			Color:     RGB{R: 237, G: 145, B: 33},
		},
		{
			Kind:      CropTomato,
			Name:      "Tomato",
			Icon:      "🍅",
			SeedCost:  25,
			SellPrice: 60,
			GrowthMs:  10000,
			Color:     RGB{R: 220, G: 48, B: 35},
		},
		{
			Kind:      CropPumpkin,
			Name:      "Pumpkin",
			Icon:      "🎃",
			SeedCost:  50,
			SellPrice: 120,
			GrowthMs:  20000,
			Color:     RGB{R: 255, G: 117, B: 24},
		},
	}
}

func ProductCatalog() []ProductSpec {
	return []ProductSpec{
		{
			Kind:      ProductPumpkinPie,
			Name:      "Pumpkin Pie",
			Icon:      "🥧",
			SellPrice: 350,
			Recipe: []Ingredient{
				{Crop: CropPumpkin, Count: 2},
				{Crop: CropCarrot, Count: 1},
			},
		},
		{
			Kind:      ProductTomatoSoup,
			Name:      "Tomato Soup",
			Icon:      "🍲",
			SellPrice: 160,
			Recipe: []Ingredient{
				{Crop: CropTomato, Count: 2},
				{Crop: CropCarrot, Count: 1},
			},
		},
	}
}

func CropKinds() []CropKind {
	catalog := CropCatalog()
	kinds := make([]CropKind, 0, len(catalog))
	for _, spec := range catalog {
		kinds = append(kinds, spec.Kind)
	}
	return kinds
}

func ProductKinds() []ProductKind {
	catalog := ProductCatalog()
	kinds := make([]ProductKind, 0, len(catalog))
	for _, spec := range catalog {
		kinds = append(kinds, spec.Kind)
	}
	return kinds
}

// CropSpecFor is total over CropKind; an unknown kind yields the zero spec.
func CropSpecFor(kind CropKind) CropSpec {
	for _, spec := range CropCatalog() {
		if spec.Kind == kind {
			return spec
		}
	}
	return CropSpec{}
}

func ProductSpecFor(kind ProductKind) ProductSpec {
	for _, spec := range ProductCatalog() {
		if spec.Kind == kind {
			return spec
		}
	}
	return ProductSpec{}
}

func ParseCropKind(raw string) (CropKind, bool) {
	for _, spec := range CropCatalog() {
		if string(spec.Kind) == raw {
			return spec.Kind, true
		}
	}
	return "", false
}

func ParseProductKind(raw string) (ProductKind, bool) {
	for _, spec := range ProductCatalog() {
		if string(spec.Kind) == raw {
			return spec.Kind, true
		}
	}
	return "", false
}
