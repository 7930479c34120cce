package minigames

import (
	"math/rand"
)

// SlotSymbol is one reel face with its draw probability and per-line
// payout multiplier.
type SlotSymbol struct {
	Name   string  `json:"name"`
	Glyph  string  `json:"glyph"`
	Chance float64 `json:"chance"`
	Payout float64 `json:"payout"`
}

// SlotSymbols is the fixed reel strip, commonest first. Chances sum to 1.
var SlotSymbols = []SlotSymbol{
	{Name: "Cherry", Glyph: "🍒", Chance: 0.40, Payout: 0.5},
	{Name: "Lemon", Glyph: "🍋", Chance: 0.25, Payout: 0.8},
	{Name: "Bell", Glyph: "🔔", Chance: 0.15, Payout: 2},
	{Name: "Coin", Glyph: "🔥", Chance: 0.10, Payout: 5},
	{Name: "Tiger", Glyph: "🐯", Chance: 0.07, Payout: 15},
	{Name: "Diamond", Glyph: "💎", Chance: 0.03, Payout: 50},
}

// SlotGridSize is the number of cells in the 3x3 grid, indexed row-major.
const SlotGridSize = 9

// SlotLines are the eight paylines: three rows, three columns, two
// diagonals.
var SlotLines = [][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// SlotResult is one resolved spin.
type SlotResult struct {
	Grid         [SlotGridSize]int `json:"grid"`
	WinningLines [][3]int          `json:"winningLines,omitempty"`
	Payout       float64           `json:"payout"`
}

// rollSymbol samples the strip's cumulative distribution.
func rollSymbol(rng *rand.Rand) int {
	r := rng.Float64()
	acc := 0.0
	for i, symbol := range SlotSymbols {
		acc += symbol.Chance
		if r < acc {
			return i
		}
	}
	return len(SlotSymbols) - 1
}

// SpinSlots draws a full grid and settles it. Each three-of-a-kind line
// pays wager times the symbol payout; line wins are summed and the bonus
// multiplier scales the combined total exactly once.
func SpinSlots(rng *rand.Rand, wager float64, bonusMultiplier float64) SlotResult {
	var result SlotResult
	for i := range result.Grid {
		result.Grid[i] = rollSymbol(rng)
	}
	return settleSlots(result.Grid, wager, bonusMultiplier)
}

func settleSlots(grid [SlotGridSize]int, wager, bonusMultiplier float64) SlotResult {
	result := SlotResult{Grid: grid}
	total := 0.0
	for _, line := range SlotLines {
		a, b, c := grid[line[0]], grid[line[1]], grid[line[2]]
		if a == b && b == c {
			total += wager * SlotSymbols[a].Payout
			result.WinningLines = append(result.WinningLines, line)
		}
	}
	if total > 0 {
		result.Payout = total * (1 + bonusMultiplier)
	}
	return result
}
