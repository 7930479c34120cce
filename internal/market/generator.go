package market

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/dex"
	"pokecasino/server/internal/state"
)

const (
	// BatchSize is how many listings a full market batch carries.
	BatchSize = 12
	// AttemptBudget caps provider lookups per batch so a filter with a
	// tiny matching pool cannot loop forever.
	AttemptBudget = 50
	// ShinyChance is the independent shiny roll per accepted candidate.
	ShinyChance = 0.02
)

// Generator produces market batches from the dex provider.
type Generator struct {
	provider dex.Provider
	rng      *rand.Rand
}

// NewGenerator builds a batch generator. The caller owns the RNG; sharing
// it with other components requires external synchronization.
func NewGenerator(provider dex.Provider, rng *rand.Rand) *Generator {
	return &Generator{provider: provider, rng: rng}
}

// Generate emits up to count listings satisfying the filter. The batch may
// come back short when the attempt budget runs out before count listings
// are found; callers must tolerate that. A failing provider lookup skips
// the candidate rather than aborting the batch; the last hard failure is
// returned alongside whatever was produced.
func (g *Generator) Generate(ctx context.Context, count int, filter Filter) ([]state.CreatureInstance, error) {
	pool, degraded := g.candidatePool(ctx, filter)

	listings := make([]state.CreatureInstance, 0, count)
	attempts := 0
	for _, idx := range g.rng.Perm(len(pool)) {
		if len(listings) >= count || attempts >= AttemptBudget {
			break
		}
		id := pool[idx]

		species, err := g.provider.Resolve(ctx, id)
		if err != nil {
			if !errors.Is(err, dex.ErrNotFound) {
				degraded = err
			}
			continue
		}
		attempts++

		if !filter.MatchesTypes(species.Types) {
			continue
		}
		listings = append(listings, g.makeListing(species, filter))
	}
	return listings, degraded
}

// MakeInstance builds a priced creature instance from resolved species data
// with an explicit class and shiny flag. Starter selection uses it with the
// starter's fixed rarity.
func MakeInstance(species dex.Species, class catalog.Class, bonus catalog.BonusCategory, rarityMultiplier float64, shiny bool) state.CreatureInstance {
	return state.CreatureInstance{
		UID:         uuid.NewString(),
		SpeciesID:   species.ID,
		Name:        species.Name,
		Sprite:      species.Sprite,
		ShinySprite: species.ShinySprite,
		Class:       class,
		Bonus:       bonus,
		Multiplier:  Multiplier(species.TotalStats, class, shiny),
		Price:       Price(species.TotalStats, class, rarityMultiplier, shiny),
		Types:       append([]catalog.ElementType(nil), species.Types...),
		TotalStats:  species.TotalStats,
		Shiny:       shiny,
	}
}

func (g *Generator) makeListing(species dex.Species, filter Filter) state.CreatureInstance {
	class := RollClass(g.rng, HighTier(species.ID, species.Legendary, species.Mythical), filter.Class)
	bonus := filter.Bonus
	if bonus == "" {
		bonus = catalog.BonusCategories[g.rng.Intn(len(catalog.BonusCategories))]
	}
	shiny := g.rng.Float64() < ShinyChance
	rarity := RarityMultiplier(species.ID, species.Legendary, species.Mythical)
	return MakeInstance(species, class, bonus, rarity, shiny)
}

func (g *Generator) candidatePool(ctx context.Context, filter Filter) ([]catalog.SpeciesID, error) {
	var pool []catalog.SpeciesID
	var degraded error
	switch {
	case filter.WantsGroup():
		pool = append([]catalog.SpeciesID(nil), catalog.GroupMembers(filter.Group)...)
	case filter.WantsTypes():
		seen := make(map[catalog.SpeciesID]struct{})
		for _, t := range filter.Types {
			ids, err := g.provider.ResolveByType(ctx, t)
			if err != nil {
				if !errors.Is(err, dex.ErrNotFound) {
					degraded = err
				}
				continue
			}
			for _, id := range ids {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				pool = append(pool, id)
			}
		}
	default:
		pool = make([]catalog.SpeciesID, 0, catalog.MaxSpeciesID)
		for id := catalog.SpeciesID(1); id <= catalog.MaxSpeciesID; id++ {
			pool = append(pool, id)
		}
	}

	if filter.WantsGeneration() {
		span := catalog.GenerationRanges[filter.Generation]
		filtered := pool[:0]
		for _, id := range pool {
			if span.Contains(id) {
				filtered = append(filtered, id)
			}
		}
		pool = filtered
	}
	return pool, degraded
}
