package game

import (
	"strings"
	"testing"
	"time"
)

func TestRunCommandUnknownIsNotHandled(t *testing.T) {
	farm, _ := newTestFarm(t)

	res := farm.ExecuteRunCommand("dance")
	if res.Handled {
		t.Fatalf("expected unknown command to be unhandled")
	}
	res = farm.ExecuteRunCommand("   ")
	if res.Handled {
		t.Fatalf("expected blank command to be unhandled")
	}
}

func TestRunCommandStatusReportsLedgerAndProgression(t *testing.T) {
	farm, _ := newTestFarm(t)

	res := farm.ExecuteRunCommand("status")
	if !res.Handled {
		t.Fatalf("expected status to be handled")
	}
	if !strings.Contains(res.Message, "100g") || !strings.Contains(res.Message, "Level 1") {
		t.Fatalf("unexpected status message: %s", res.Message)
	}
	if res.Changed {
		t.Fatalf("status must not mark state changed")
	}
}

func TestRunCommandFullSeasonScenario(t *testing.T) {
	farm, clock := newTestFarm(t)

	res := farm.ExecuteRunCommand("till 0")
	if !res.Handled || !res.Changed {
		t.Fatalf("expected till to apply: %+v", res)
	}
	res = farm.ExecuteRunCommand("plant carrot 0")
	if !res.Changed {
		t.Fatalf("expected plant to apply: %s", res.Message)
	}
	if farm.Seeds[CropCarrot] != 1 {
		t.Fatalf("expected one carrot seed left, got %d", farm.Seeds[CropCarrot])
	}

	res = farm.ExecuteRunCommand("harvest 0")
	if res.Changed {
		t.Fatalf("harvest before maturity must not change state: %s", res.Message)
	}
	if !strings.Contains(res.Message, "growing") {
		t.Fatalf("expected growing message, got: %s", res.Message)
	}

	*clock = clock.Add(5 * time.Second)
	res = farm.ExecuteRunCommand("harvest 0")
	if !res.Changed {
		t.Fatalf("expected harvest at maturity to apply: %s", res.Message)
	}
	if farm.Harvested[CropCarrot] != 1 {
		t.Fatalf("expected one harvested carrot, got %d", farm.Harvested[CropCarrot])
	}

	res = farm.ExecuteRunCommand("sell carrot")
	if !res.Changed || farm.Money != 125 {
		t.Fatalf("expected carrot sale for 25g, money=%d message=%s", farm.Money, res.Message)
	}
}

func TestRunCommandBuyCapsAtAffordableCount(t *testing.T) {
	farm, _ := newTestFarm(t)
	farm.Money = 25

	res := farm.ExecuteRunCommand("buy carrot 5")
	if !res.Changed {
		t.Fatalf("expected partial buy to apply: %s", res.Message)
	}
	if farm.Seeds[CropCarrot] != 4 || farm.Money != 5 {
		t.Fatalf("expected 2 seeds bought, seeds=%d money=%d", farm.Seeds[CropCarrot], farm.Money)
	}

	res = farm.ExecuteRunCommand("buy pumpkin")
	if res.Changed {
		t.Fatalf("expected unaffordable buy to be rejected: %s", res.Message)
	}
	if farm.Money != 5 {
		t.Fatalf("rejected buy must not change money, got %d", farm.Money)
	}
}

func TestRunCommandCookReportsMissingIngredients(t *testing.T) {
	farm, _ := newTestFarm(t)

	res := farm.ExecuteRunCommand("cook pumpkin_pie")
	if !res.Handled || res.Changed {
		t.Fatalf("expected cook without ingredients to be a handled no-op: %+v", res)
	}
	if !strings.Contains(res.Message, "pumpkin") {
		t.Fatalf("expected recipe hint in message, got: %s", res.Message)
	}

	farm.Harvested[CropPumpkin] = 2
	farm.Harvested[CropCarrot] = 1
	res = farm.ExecuteRunCommand("cook pumpkin_pie")
	if !res.Changed || farm.Products[ProductPumpkinPie] != 1 {
		t.Fatalf("expected pie cooked: %s", res.Message)
	}
}

func TestRunCommandHarvestAll(t *testing.T) {
	farm, clock := newTestFarm(t)
	farm.ExecuteRunCommand("till 0")
	farm.ExecuteRunCommand("till 1")
	farm.ExecuteRunCommand("plant carrot 0")
	farm.ExecuteRunCommand("plant carrot 1")

	res := farm.ExecuteRunCommand("harvest all")
	if res.Changed {
		t.Fatalf("expected nothing ready yet: %s", res.Message)
	}

	*clock = clock.Add(6 * time.Second)
	res = farm.ExecuteRunCommand("harvest all")
	if !res.Changed || !strings.Contains(res.Message, "2") {
		t.Fatalf("expected both plots harvested: %s", res.Message)
	}
	if farm.Harvested[CropCarrot] != 2 {
		t.Fatalf("expected 2 carrots, got %d", farm.Harvested[CropCarrot])
	}
}

func TestRunCommandChestFlow(t *testing.T) {
	farm, _ := newTestFarm(t)

	res := farm.ExecuteRunCommand("chests")
	if !strings.Contains(res.Message, "No reward chests") {
		t.Fatalf("expected empty chest listing, got: %s", res.Message)
	}

	farm.awardExperience(1000)
	res = farm.ExecuteRunCommand("chests")
	if !strings.Contains(res.Message, "level 2") {
		t.Fatalf("expected level-2 chest in listing, got: %s", res.Message)
	}

	res = farm.ExecuteRunCommand("open 0")
	if !res.Changed || farm.Gems == 0 {
		t.Fatalf("expected chest opened and gems credited: %s", res.Message)
	}
	res = farm.ExecuteRunCommand("open 0")
	if res.Changed {
		t.Fatalf("expected second open to fail: %s", res.Message)
	}
}

func TestRunCommandSeedSelectionAndViews(t *testing.T) {
	farm, _ := newTestFarm(t)

	res := farm.ExecuteRunCommand("seed tomato")
	if !res.Changed || farm.SelectedSeed != CropTomato {
		t.Fatalf("expected tomato selected: %s", res.Message)
	}
	res = farm.ExecuteRunCommand("seed none")
	if !res.Changed || farm.SelectedSeed != "" {
		t.Fatalf("expected selection cleared: %s", res.Message)
	}

	farm.ExecuteRunCommand("shop")
	if farm.View != ViewShop {
		t.Fatalf("expected shop view, got %s", farm.View)
	}
	farm.ExecuteRunCommand("farm")
	if farm.View != ViewFarm {
		t.Fatalf("expected farm view, got %s", farm.View)
	}
}
