package market

import (
	"pokecasino/server/internal/catalog"
)

// RefreshBaseCost is the flat charge of a forced market refresh before
// filter surcharges.
const RefreshBaseCost float64 = 1000

var groupSurcharges = map[catalog.Group]float64{
	catalog.GroupStarter:    1000,
	catalog.GroupPseudo:     5000,
	catalog.GroupParadox:    10000,
	catalog.GroupUltraBeast: 15000,
	catalog.GroupMythical:   20000,
	catalog.GroupLegendary:  25000,
}

var classSurcharges = map[catalog.Class]float64{
	catalog.ClassF: -500,
	catalog.ClassE: 0,
	catalog.ClassD: 1000,
	catalog.ClassC: 5000,
	catalog.ClassB: 10000,
	catalog.ClassA: 25000,
}

// RefreshCost prices a forced refresh for the given filter. Natural
// countdown refreshes never call this; they are free.
func RefreshCost(filter Filter) float64 {
	cost := RefreshBaseCost
	if filter.WantsTypes() {
		cost += 5000
	}
	if filter.Bonus != "" {
		cost += 5000
	}
	if filter.WantsGroup() {
		cost += groupSurcharges[filter.Group]
	}
	if filter.Class != "" {
		cost += classSurcharges[filter.Class]
	}
	if cost < 0 {
		cost = 0
	}
	return cost
}
