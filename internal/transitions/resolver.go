package transitions

import (
	"context"
	"errors"
	"math/rand"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/dex"
	"pokecasino/server/internal/state"
)

// Resolver decides what transition, if any, a creature instance can take
// next. Categories are checked in strict precedence order: available fusion,
// fixed form options, mega evolution, linear form chain, natural evolution.
// The first category that applies wins and suppresses the rest.
type Resolver struct {
	provider dex.Provider
	rng      *rand.Rand
}

// NewResolver builds a resolver. The RNG picks among branching natural
// evolutions.
func NewResolver(provider dex.Provider, rng *rand.Rand) *Resolver {
	return &Resolver{provider: provider, rng: rng}
}

// Resolve returns the active transition rule for the creature. A creature
// with no path returns Kind KindNone and no error. Provider failures fail
// closed: the error is surfaced and no transition is offered.
func (r *Resolver) Resolve(ctx context.Context, player *state.PlayerState, creature state.CreatureInstance) (Rule, error) {
	if fusions := r.fusionOptions(player, creature); len(fusions) > 0 {
		return Rule{Kind: KindFusion, Fusions: fusions}, nil
	}

	if options := catalog.FixedFormOptions(creature.SpeciesID); len(options) > 0 {
		forms := make([]FormOption, 0, len(options))
		for _, option := range options {
			forms = append(forms, FormOption{
				TargetID: option.TargetID,
				Name:     option.Name,
				HeldItem: option.HeldItem,
				KeyItem:  option.KeyItem,
			})
		}
		return Rule{Kind: KindForms, Forms: forms}, nil
	}

	if catalog.CanMegaEvolve(creature.SpeciesID) {
		target, err := r.provider.ResolveMegaVariety(ctx, creature.SpeciesID)
		if err != nil && !errors.Is(err, dex.ErrNotFound) {
			return Rule{Kind: KindNone}, err
		}
		if err == nil {
			mega := &MegaOption{TargetID: target}
			if stone, ok := catalog.HeldRequirement(creature.SpeciesID); ok {
				mega.Stone = stone
			}
			return Rule{Kind: KindMega, Mega: mega}, nil
		}
	}

	if next, ok := catalog.NextFormChain(creature.SpeciesID); ok {
		step := &ChainStep{TargetID: next}
		if gate, gated := catalog.ChainKeyGate(next); gated {
			step.KeyItem = gate
		}
		return Rule{Kind: KindChain, Chain: step}, nil
	}

	return r.naturalStep(ctx, creature)
}

func (r *Resolver) fusionOptions(player *state.PlayerState, creature state.CreatureInstance) []FusionOption {
	recipes := catalog.FusionRecipes(creature.SpeciesID)
	if len(recipes) == 0 {
		return nil
	}
	var options []FusionOption
	for _, recipe := range recipes {
		for i := range player.Inventory {
			partner := &player.Inventory[i]
			if partner.UID == creature.UID || partner.SpeciesID != recipe.PartnerID {
				continue
			}
			options = append(options, FusionOption{
				PartnerUID:     partner.UID,
				PartnerSpecies: partner.SpeciesID,
				ResultID:       recipe.ResultID,
				Name:           recipe.Name,
				KeyItem:        catalog.FusionItemRequirement(recipe.ResultID),
			})
			break
		}
	}
	return options
}

func (r *Resolver) naturalStep(ctx context.Context, creature state.CreatureInstance) (Rule, error) {
	lineage, err := r.provider.ResolveLineage(ctx, creature.SpeciesID)
	if err != nil && !errors.Is(err, dex.ErrNotFound) {
		return Rule{Kind: KindNone}, err
	}
	if err == nil {
		if node, ok := lineage.Find(creature.SpeciesID); ok && len(node.Children) > 0 {
			pick := node.Children[r.rng.Intn(len(node.Children))]
			return Rule{Kind: KindNatural, Natural: &NaturalStep{TargetID: pick.Species}}, nil
		}
	}

	// Lineage exhausted (or untracked): a mega variety exposed by the
	// provider is the last resort.
	target, err := r.provider.ResolveMegaVariety(ctx, creature.SpeciesID)
	if errors.Is(err, dex.ErrNotFound) {
		return Rule{Kind: KindNone}, nil
	}
	if err != nil {
		return Rule{Kind: KindNone}, err
	}
	return Rule{Kind: KindNatural, Natural: &NaturalStep{TargetID: target}}, nil
}
