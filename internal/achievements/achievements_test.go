package achievements

import (
	"testing"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/state"
)

func TestCatalogShape(t *testing.T) {
	// 3 wealth + 4 counter families of 3 + 18 types at 3 milestones.
	want := 3 + 4*3 + 18*3
	if len(Catalog) != want {
		t.Fatalf("catalog has %d entries, want %d", len(Catalog), want)
	}
	seen := map[string]bool{}
	for _, a := range Catalog {
		if a.ID == "" || a.Reward <= 0 || a.Condition == nil || a.Progress == nil {
			t.Errorf("achievement %q incomplete", a.ID)
		}
		if seen[a.ID] {
			t.Errorf("duplicate id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestEvaluateWealth(t *testing.T) {
	player := state.NewPlayerState()
	player.Stats.PeakBalance = 1_500_000

	earned := Evaluate(&player)
	ids := map[string]bool{}
	for _, a := range earned {
		ids[a.ID] = true
	}
	if !ids["wealth_1m"] {
		t.Error("millionaire not earned at 1.5M peak")
	}
	if ids["wealth_1b"] || ids["wealth_1t"] {
		t.Error("higher wealth tiers earned too early")
	}
}

func TestEvaluateSkipsCompleted(t *testing.T) {
	player := state.NewPlayerState()
	player.Stats.RouletteWins = 60
	player.CompletedAchievements = []string{"roulette_win_10"}

	earned := Evaluate(&player)
	ids := map[string]bool{}
	for _, a := range earned {
		ids[a.ID] = true
	}
	if ids["roulette_win_10"] {
		t.Error("completed achievement surfaced again")
	}
	if !ids["roulette_win_50"] {
		t.Error("roulette_win_50 not earned at 60 wins")
	}
	if ids["roulette_win_100"] {
		t.Error("roulette_win_100 earned at 60 wins")
	}
}

func TestEvaluateTypeCollection(t *testing.T) {
	player := state.NewPlayerState()
	for i := 0; i < 5; i++ {
		player.Inventory = append(player.Inventory, state.CreatureInstance{
			UID:   string(rune('a' + i)),
			Types: []catalog.ElementType{catalog.TypeFire, catalog.TypeFlying},
		})
	}

	earned := Evaluate(&player)
	ids := map[string]bool{}
	for _, a := range earned {
		ids[a.ID] = true
	}
	for _, id := range []string{"type_fire_1", "type_fire_5", "type_flying_5"} {
		if !ids[id] {
			t.Errorf("%s not earned", id)
		}
	}
	if ids["type_fire_10"] {
		t.Error("type_fire_10 earned with only five owned")
	}
	if ids["type_water_1"] {
		t.Error("type_water_1 earned with no water creatures")
	}
}

func TestDualTypeCountsOncePerCreature(t *testing.T) {
	player := state.NewPlayerState()
	player.Inventory = []state.CreatureInstance{
		{UID: "x", Types: []catalog.ElementType{catalog.TypeFire, catalog.TypeFire}},
	}
	if got := ownedOfType(&player, catalog.TypeFire); got != 1 {
		t.Fatalf("ownedOfType = %d, want 1", got)
	}
}

func TestRewardScaling(t *testing.T) {
	cases := map[string]float64{
		"wealth_1m":       50000,
		"wealth_1b":       5e6,
		"wealth_1t":       5e9,
		"buy_100":         100000,
		"roulette_win_50": 100000,
		"rocket_bet_10":   15000,
		"type_dragon_10":  50000,
	}
	for id, want := range cases {
		a, ok := ByID(id)
		if !ok {
			t.Errorf("missing achievement %s", id)
			continue
		}
		if a.Reward != want {
			t.Errorf("%s reward = %v, want %v", id, a.Reward, want)
		}
	}
}
