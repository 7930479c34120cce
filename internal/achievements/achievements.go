package achievements

import (
	"fmt"
	"sort"
	"strings"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/state"
)

// Category groups achievements for display.
type Category string

const (
	CategoryWealth     Category = "wealth"
	CategoryCollection Category = "collection"
	CategoryGame       Category = "game"
	CategoryType       Category = "type"
)

// Achievement is one milestone with a credit reward. Condition and
// Progress read the player without mutating it.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Reward      float64
	Category    Category
	Condition   func(*state.PlayerState) bool
	Progress    func(*state.PlayerState) (current, max float64)
}

// Catalog is the full fixed achievement list.
var Catalog = buildCatalog()

var catalogByID = func() map[string]*Achievement {
	byID := make(map[string]*Achievement, len(Catalog))
	for i := range Catalog {
		byID[Catalog[i].ID] = &Catalog[i]
	}
	return byID
}()

// ByID looks up an achievement definition.
func ByID(id string) (*Achievement, bool) {
	a, ok := catalogByID[id]
	return a, ok
}

// Evaluate returns the achievements the player newly qualifies for, in
// catalog order. Already completed ids are skipped; the caller credits the
// rewards and records the ids.
func Evaluate(player *state.PlayerState) []*Achievement {
	done := make(map[string]struct{}, len(player.CompletedAchievements))
	for _, id := range player.CompletedAchievements {
		done[id] = struct{}{}
	}
	var earned []*Achievement
	for i := range Catalog {
		a := &Catalog[i]
		if _, completed := done[a.ID]; completed {
			continue
		}
		if a.Condition(player) {
			earned = append(earned, a)
		}
	}
	return earned
}

func buildCatalog() []Achievement {
	entries := []Achievement{
		wealthAchievement("wealth_1m", "Millionaire", 1e6, 50000),
		wealthAchievement("wealth_1b", "Billionaire", 1e9, 5e6),
		wealthAchievement("wealth_1t", "Trillionaire", 1e12, 5e9),
	}

	for _, count := range []int{10, 50, 100} {
		entries = append(entries, counterAchievement(
			fmt.Sprintf("buy_%d", count),
			fmt.Sprintf("Shopaholic %d", count),
			fmt.Sprintf("Buy %d creatures from the market.", count),
			float64(count)*1000, CategoryCollection, count,
			func(s *state.Stats) int { return s.CreaturesBought },
		))
	}
	for _, count := range []int{10, 50, 100} {
		entries = append(entries, counterAchievement(
			fmt.Sprintf("roulette_win_%d", count),
			fmt.Sprintf("Roulette Master %d", count),
			fmt.Sprintf("Win %d times at roulette.", count),
			float64(count)*2000, CategoryGame, count,
			func(s *state.Stats) int { return s.RouletteWins },
		))
	}
	for _, count := range []int{10, 50, 100} {
		entries = append(entries, counterAchievement(
			fmt.Sprintf("slots_win_%d", count),
			fmt.Sprintf("Slot Tycoon %d", count),
			fmt.Sprintf("Win %d times at slots.", count),
			float64(count)*2000, CategoryGame, count,
			func(s *state.Stats) int { return s.SlotsWins },
		))
	}
	for _, count := range []int{10, 50, 100} {
		entries = append(entries, counterAchievement(
			fmt.Sprintf("rocket_bet_%d", count),
			fmt.Sprintf("Rocket Pilot %d", count),
			fmt.Sprintf("Play rocket crash %d times.", count),
			float64(count)*1500, CategoryGame, count,
			func(s *state.Stats) int { return s.RocketBets },
		))
	}

	return append(entries, typeAchievements()...)
}

func wealthAchievement(id, title string, threshold, reward float64) Achievement {
	return Achievement{
		ID:          id,
		Title:       title,
		Description: fmt.Sprintf("Reach %s credits wealth.", formatCredits(threshold)),
		Reward:      reward,
		Category:    CategoryWealth,
		Condition: func(p *state.PlayerState) bool {
			return p.Stats.PeakBalance >= threshold
		},
		Progress: func(p *state.PlayerState) (float64, float64) {
			return p.Stats.PeakBalance, threshold
		},
	}
}

func counterAchievement(id, title, description string, reward float64, category Category, threshold int, counter func(*state.Stats) int) Achievement {
	return Achievement{
		ID:          id,
		Title:       title,
		Description: description,
		Reward:      reward,
		Category:    category,
		Condition: func(p *state.PlayerState) bool {
			return counter(&p.Stats) >= threshold
		},
		Progress: func(p *state.PlayerState) (float64, float64) {
			return float64(counter(&p.Stats)), float64(threshold)
		},
	}
}

func typeAchievements() []Achievement {
	var out []Achievement
	for _, element := range catalog.ElementTypes {
		element := element
		for _, count := range []int{1, 5, 10} {
			count := count
			out = append(out, Achievement{
				ID:          fmt.Sprintf("type_%s_%d", element, count),
				Title:       fmt.Sprintf("%s Collector %d", titleCase(string(element)), count),
				Description: fmt.Sprintf("Own %d %s-type creatures.", count, element),
				Reward:      float64(count) * 5000,
				Category:    CategoryType,
				Condition: func(p *state.PlayerState) bool {
					return ownedOfType(p, element) >= count
				},
				Progress: func(p *state.PlayerState) (float64, float64) {
					return float64(ownedOfType(p, element)), float64(count)
				},
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func ownedOfType(p *state.PlayerState, element catalog.ElementType) int {
	owned := 0
	for _, creature := range p.Inventory {
		for _, t := range creature.Types {
			if t == element {
				owned++
				break
			}
		}
	}
	return owned
}

func titleCase(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

func formatCredits(value float64) string {
	switch {
	case value >= 1e12:
		return fmt.Sprintf("%gT", value/1e12)
	case value >= 1e9:
		return fmt.Sprintf("%gB", value/1e9)
	case value >= 1e6:
		return fmt.Sprintf("%gM", value/1e6)
	case value >= 1e3:
		return fmt.Sprintf("%gK", value/1e3)
	default:
		return fmt.Sprintf("%g", value)
	}
}
