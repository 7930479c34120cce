package market

import (
	"math"

	"pokecasino/server/internal/catalog"
)

// ShinyMultiplierBoost scales a shiny instance's bonus multiplier. Applied
// once when the multiplier is computed, never retroactively.
const ShinyMultiplierBoost = 1.2

// Multiplier computes the casino bonus a creature contributes while
// equipped.
func Multiplier(totalStats int, class catalog.Class, shiny bool) float64 {
	value := float64(totalStats) / 100 * catalog.ClassFactor(class) / 100
	if shiny {
		value *= ShinyMultiplierBoost
	}
	return value
}

// Price computes the market price of a creature. Shiny instances cost
// double.
func Price(totalStats int, class catalog.Class, rarityMultiplier float64, shiny bool) float64 {
	price := math.Floor(float64(totalStats) * 10 * catalog.ClassFactor(class) * rarityMultiplier)
	if shiny {
		price *= 2
	}
	return price
}
