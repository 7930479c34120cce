package minigames

import (
	"math/rand"
)

// RouletteColor is one of the three wagerable colors.
type RouletteColor string

const (
	ColorGreen RouletteColor = "green"
	ColorRed   RouletteColor = "red"
	ColorBlack RouletteColor = "black"
)

// ParseRouletteColor validates a color string from a client.
func ParseRouletteColor(value string) (RouletteColor, bool) {
	switch RouletteColor(value) {
	case ColorGreen, ColorRed, ColorBlack:
		return RouletteColor(value), true
	default:
		return "", false
	}
}

// WheelNumbers is the physical wheel layout, pocket order clockwise from
// the zero.
var WheelNumbers = []int{
	0, 32, 15, 19, 4, 21, 2, 25, 17, 34, 6, 27, 13, 36, 11, 30, 8, 23, 10,
	5, 24, 16, 33, 1, 20, 14, 31, 9, 22, 18, 29, 7, 28, 12, 35, 3, 26,
}

const (
	// GreenPayout pays the single zero pocket.
	GreenPayout = 14
	// ColorPayout pays a matched red or black.
	ColorPayout = 2
)

// RouletteResult is one resolved spin.
type RouletteResult struct {
	Number int           `json:"number"`
	Color  RouletteColor `json:"color"`
	Payout float64       `json:"payout"`
}

// WheelColor derives a pocket's color. Zero is green; the rest alternate
// black/red by wheel position, not by true roulette coloring.
func WheelColor(number int) RouletteColor {
	if number == 0 {
		return ColorGreen
	}
	for i, n := range WheelNumbers {
		if n == number {
			if i%2 == 0 {
				return ColorBlack
			}
			return ColorRed
		}
	}
	return ColorBlack
}

// SpinRoulette resolves one spin. The wager is assumed already staked; the
// returned payout is the gross amount to credit back, zero on a miss.
func SpinRoulette(rng *rand.Rand, wager float64, pick RouletteColor, bonusMultiplier float64) RouletteResult {
	number := WheelNumbers[rng.Intn(len(WheelNumbers))]
	color := WheelColor(number)

	result := RouletteResult{Number: number, Color: color}
	if color != pick {
		return result
	}
	payout := ColorPayout
	if color == ColorGreen {
		payout = GreenPayout
	}
	result.Payout = wager * float64(payout) * (1 + bonusMultiplier)
	return result
}
