package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokecasino/server/internal/catalog"
)

func TestMultiplier(t *testing.T) {
	cases := []struct {
		name  string
		stats int
		class catalog.Class
		shiny bool
		want  float64
	}{
		{"class F floor", 200, catalog.ClassF, false, 0.01},
		{"class E baseline", 100, catalog.ClassE, false, 0.01},
		{"class A heavy hitter", 680, catalog.ClassA, false, 1.7},
		{"shiny boost applies once", 100, catalog.ClassE, true, 0.012},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Multiplier(tc.stats, tc.class, tc.shiny), 1e-9)
		})
	}
}

func TestPrice(t *testing.T) {
	cases := []struct {
		name   string
		stats  int
		class  catalog.Class
		rarity float64
		shiny  bool
		want   float64
	}{
		{"ordinary class F", 300, catalog.ClassF, 1, false, 1500},
		{"legendary class A", 680, catalog.ClassA, 5, false, 850000},
		{"starter rarity", 318, catalog.ClassE, 2, false, 6360},
		{"shiny doubles", 300, catalog.ClassF, 1, true, 3000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Price(tc.stats, tc.class, tc.rarity, tc.shiny))
		})
	}
}

func TestRefreshCost(t *testing.T) {
	cases := []struct {
		name   string
		filter Filter
		want   float64
	}{
		{"no filter", Filter{}, 1000},
		{"class F discount", Filter{Class: catalog.ClassF}, 500},
		{"class A premium", Filter{Class: catalog.ClassA}, 26000},
		{"types surcharge", Filter{Types: []catalog.ElementType{catalog.TypeFire}}, 6000},
		{"bonus surcharge", Filter{Bonus: catalog.BonusRocket}, 6000},
		{"legendary group", Filter{Group: catalog.GroupLegendary}, 26000},
		{"group any is free", Filter{Group: catalog.GroupAny}, 1000},
		{
			"everything stacked",
			Filter{
				Class: catalog.ClassA,
				Bonus: catalog.BonusSlots,
				Types: []catalog.ElementType{catalog.TypeDragon, catalog.TypeSteel},
				Group: catalog.GroupLegendary,
			},
			61000,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RefreshCost(tc.filter))
		})
	}
}

func TestRefreshCostNeverNegative(t *testing.T) {
	for _, group := range []catalog.Group{catalog.GroupAny, catalog.GroupStarter} {
		cost := RefreshCost(Filter{Class: catalog.ClassF, Group: group})
		assert.GreaterOrEqual(t, cost, float64(0))
	}
}
