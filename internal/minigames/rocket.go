package minigames

import (
	"math"
	"math/rand"
)

// Crash point distribution tiers: a thin slice of near-instant busts, then
// progressively rarer, larger thresholds.
const (
	instantCrashChance = 0.03
	lowTierChance      = 0.50
	midTierChance      = 0.90
)

// RocketCrashPoint draws the threshold multiplier at which the rocket
// busts. The result is always > 1.
func RocketCrashPoint(rng *rand.Rand) float64 {
	r := rng.Float64()
	switch {
	case r < instantCrashChance:
		return 1 + rng.Float64()*0.05
	case r < lowTierChance:
		return 1 + rng.Float64()
	case r < midTierChance:
		return 2 + rng.Float64()*8
	default:
		return 10 + rng.Float64()*40
	}
}

// RocketMultiplierAt evaluates the growth curve at elapsed seconds. The
// curve is monotonic and accelerating, so a cash-out multiplier maps back
// to a unique instant.
func RocketMultiplierAt(elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return 1 + 0.1*elapsed + 0.01*math.Pow(elapsed, 2.5)
}

// RocketPayout settles a successful cash-out at the given multiplier.
func RocketPayout(wager, multiplier, bonusMultiplier float64) float64 {
	return wager * multiplier * (1 + bonusMultiplier)
}
