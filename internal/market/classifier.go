package market

import (
	"math/rand"

	"pokecasino/server/internal/catalog"
)

// RollClass draws a power class for a candidate. High-tier species
// (legendary, mythical, ultra beast) only ever roll B or A; everything else
// samples the weighted distribution. A pinned class skips the draw entirely.
func RollClass(rng *rand.Rand, highTier bool, pinned catalog.Class) catalog.Class {
	if pinned != "" {
		return pinned
	}
	if highTier {
		if rng.Float64() > 1-catalog.HighTierAChance {
			return catalog.ClassA
		}
		return catalog.ClassB
	}

	roll := rng.Intn(100)
	cumulative := 0
	for _, entry := range catalog.ClassWeights {
		cumulative += entry.Weight
		if roll < cumulative {
			return entry.Class
		}
	}
	return catalog.ClassF
}

// HighTier reports whether a species rolls from the restricted class pool.
func HighTier(id catalog.SpeciesID, legendary, mythical bool) bool {
	return legendary || mythical || catalog.IsUltraBeast(id)
}

// RarityMultiplier derives the pricing multiplier from a fixed rarity
// priority: legendary beats mythical beats pseudo-legendary/paradox beats
// starter beats ordinary.
func RarityMultiplier(id catalog.SpeciesID, legendary, mythical bool) float64 {
	switch {
	case legendary || catalog.InGroup(catalog.GroupLegendary, id):
		return 5
	case mythical || catalog.InGroup(catalog.GroupMythical, id):
		return 4
	case catalog.IsPseudoLegendary(id) || catalog.IsParadox(id):
		return 3
	case catalog.IsStarter(id):
		return 2
	default:
		return 1
	}
}
