package game

import "testing"

func TestCookConsumesFullRecipe(t *testing.T) {
	farm, _ := newTestFarm(t)
	farm.Harvested[CropPumpkin] = 2
	farm.Harvested[CropCarrot] = 1

	if !farm.Cook(ProductPumpkinPie) {
		t.Fatalf("expected cook to succeed with full recipe in stock")
	}
	if farm.Harvested[CropPumpkin] != 0 || farm.Harvested[CropCarrot] != 0 {
		t.Fatalf("expected ingredients consumed, pumpkin=%d carrot=%d", farm.Harvested[CropPumpkin], farm.Harvested[CropCarrot])
	}
	if farm.Products[ProductPumpkinPie] != 1 {
		t.Fatalf("expected one pie, got %d", farm.Products[ProductPumpkinPie])
	}
	if farm.Experience != experienceCook {
		t.Fatalf("expected %d xp after cooking, got %d", experienceCook, farm.Experience)
	}
}

func TestCookIsAllOrNothing(t *testing.T) {
	farm, _ := newTestFarm(t)
	farm.Harvested[CropPumpkin] = 2
	// Missing the carrot; nothing may be consumed.

	if farm.Cook(ProductPumpkinPie) {
		t.Fatalf("expected cook with incomplete recipe to fail")
	}
	if farm.Harvested[CropPumpkin] != 2 {
		t.Fatalf("failed cook must not drain ingredients, pumpkin=%d", farm.Harvested[CropPumpkin])
	}
	if farm.Products[ProductPumpkinPie] != 0 {
		t.Fatalf("failed cook must not produce anything")
	}
	if farm.Experience != 0 {
		t.Fatalf("failed cook must not award experience, got %d", farm.Experience)
	}
}

func TestCookWithSurplusOfWrongIngredientStillFails(t *testing.T) {
	farm, _ := newTestFarm(t)
	farm.Harvested[CropPumpkin] = 1
	farm.Harvested[CropCarrot] = 5

	if farm.Cook(ProductPumpkinPie) {
		t.Fatalf("expected cook to fail with only one pumpkin")
	}
	if farm.Harvested[CropPumpkin] != 1 || farm.Harvested[CropCarrot] != 5 {
		t.Fatalf("failed cook must leave all counts unchanged, pumpkin=%d carrot=%d", farm.Harvested[CropPumpkin], farm.Harvested[CropCarrot])
	}
}

func TestCookUnknownProductFails(t *testing.T) {
	farm, _ := newTestFarm(t)
	if farm.Cook(ProductKind("stew")) {
		t.Fatalf("expected cook of unknown product to fail")
	}
}
