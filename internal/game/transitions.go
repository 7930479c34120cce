package game

import (
	"context"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/market"
	"pokecasino/server/internal/state"
	"pokecasino/server/internal/transitions"
	"pokecasino/server/logging"
	transitionlog "pokecasino/server/logging/transitions"
)

// AvailableTransition resolves the active transition rule for an owned
// instance without acting on it. Clients use this to render the evolve
// panel.
func (e *Engine) AvailableTransition(ctx context.Context, uid string) (transitions.Rule, error) {
	e.mu.Lock()
	creature, ok := e.player.Creature(uid)
	if !ok {
		e.mu.Unlock()
		return transitions.Rule{}, deny(ReasonNotFound, uid)
	}
	snapshot := creature.Clone()
	player := e.player.Clone()
	e.mu.Unlock()

	rule, err := e.resolver.Resolve(ctx, &player, snapshot)
	if err != nil {
		return transitions.Rule{}, deny(ReasonUnavailable, uid)
	}
	return rule, nil
}

// Evolve advances an instance along its natural lineage. The rule must
// resolve to a natural step; higher-precedence paths use their dedicated
// operations.
func (e *Engine) Evolve(ctx context.Context, uid string) error {
	creature, err := e.beginTransition(uid)
	if err != nil {
		return err
	}
	defer e.clearInflight(uid)

	player := e.Snapshot()
	rule, err := e.resolver.Resolve(ctx, &player, creature)
	if err != nil {
		return deny(ReasonUnavailable, uid)
	}
	if rule.Kind != transitions.KindNatural {
		e.logDenied(ctx, "evolve", ReasonNoTransition)
		return deny(ReasonNoTransition, uid)
	}

	return e.mutateIdentity(ctx, uid, rule.Natural.TargetID, catalog.EvolveCost, "evolve", nil)
}

// MegaEvolve performs a mega evolution: bracelet in the bag, and the
// species' stone (when one is required) held by the creature itself.
func (e *Engine) MegaEvolve(ctx context.Context, uid string) error {
	creature, err := e.beginTransition(uid)
	if err != nil {
		return err
	}
	defer e.clearInflight(uid)

	player := e.Snapshot()
	rule, err := e.resolver.Resolve(ctx, &player, creature)
	if err != nil {
		return deny(ReasonUnavailable, uid)
	}
	if rule.Kind != transitions.KindMega {
		e.logDenied(ctx, "mega", ReasonNoTransition)
		return deny(ReasonNoTransition, uid)
	}
	if !player.HasItem(catalog.ItemMegaBracelet) {
		e.logDenied(ctx, "mega", ReasonMissingItem)
		return deny(ReasonMissingItem, string(catalog.ItemMegaBracelet))
	}
	if rule.Mega.Stone != "" && creature.HeldItem != rule.Mega.Stone {
		e.logDenied(ctx, "mega", ReasonMissingItem)
		return deny(ReasonMissingItem, string(rule.Mega.Stone))
	}

	return e.mutateIdentity(ctx, uid, rule.Mega.TargetID, catalog.MegaEvolveCost, "mega", nil)
}

// ChangeForm takes a fixed-form option or the next linear chain step. The
// target disambiguates when a species offers several fixed forms.
func (e *Engine) ChangeForm(ctx context.Context, uid string, target catalog.SpeciesID) error {
	creature, err := e.beginTransition(uid)
	if err != nil {
		return err
	}
	defer e.clearInflight(uid)

	player := e.Snapshot()
	rule, err := e.resolver.Resolve(ctx, &player, creature)
	if err != nil {
		return deny(ReasonUnavailable, uid)
	}

	switch rule.Kind {
	case transitions.KindForms:
		for _, option := range rule.Forms {
			if option.TargetID != target {
				continue
			}
			if option.HeldItem != "" && creature.HeldItem != option.HeldItem {
				e.logDenied(ctx, "form", ReasonMissingItem)
				return deny(ReasonMissingItem, string(option.HeldItem))
			}
			if option.KeyItem != "" && !player.HasItem(option.KeyItem) {
				e.logDenied(ctx, "form", ReasonMissingItem)
				return deny(ReasonMissingItem, string(option.KeyItem))
			}
			return e.mutateIdentity(ctx, uid, option.TargetID, 0, "form", nil)
		}
		e.logDenied(ctx, "form", ReasonNoTransition)
		return deny(ReasonNoTransition, uid)
	case transitions.KindChain:
		if rule.Chain.TargetID != target {
			e.logDenied(ctx, "form", ReasonNoTransition)
			return deny(ReasonNoTransition, uid)
		}
		if rule.Chain.KeyItem != "" && !player.HasItem(rule.Chain.KeyItem) {
			e.logDenied(ctx, "form", ReasonMissingItem)
			return deny(ReasonMissingItem, string(rule.Chain.KeyItem))
		}
		return e.mutateIdentity(ctx, uid, rule.Chain.TargetID, catalog.FormChangeCost, "form", nil)
	default:
		e.logDenied(ctx, "form", ReasonNoTransition)
		return deny(ReasonNoTransition, uid)
	}
}

// Fuse merges a partner instance into the base. The partner is destroyed,
// the base takes the fusion result's identity and keeps its own shiny
// flag. The gating key item is possession-checked, not consumed.
func (e *Engine) Fuse(ctx context.Context, baseUID, partnerUID string) error {
	creature, err := e.beginTransition(baseUID)
	if err != nil {
		return err
	}
	defer e.clearInflight(baseUID)

	e.mu.Lock()
	if err := e.markInflight(partnerUID); err != nil {
		e.mu.Unlock()
		return err
	}
	e.mu.Unlock()
	defer e.clearInflight(partnerUID)

	player := e.Snapshot()
	rule, err := e.resolver.Resolve(ctx, &player, creature)
	if err != nil {
		return deny(ReasonUnavailable, baseUID)
	}
	if rule.Kind != transitions.KindFusion {
		e.logDenied(ctx, "fusion", ReasonNoTransition)
		return deny(ReasonNoTransition, baseUID)
	}

	var chosen *transitions.FusionOption
	for i := range rule.Fusions {
		if rule.Fusions[i].PartnerUID == partnerUID {
			chosen = &rule.Fusions[i]
			break
		}
	}
	if chosen == nil {
		e.logDenied(ctx, "fusion", ReasonNoTransition)
		return deny(ReasonNoTransition, partnerUID)
	}
	if !player.HasItem(chosen.KeyItem) {
		e.logDenied(ctx, "fusion", ReasonMissingItem)
		return deny(ReasonMissingItem, string(chosen.KeyItem))
	}

	resultID := chosen.ResultID
	err = e.mutateIdentity(ctx, baseUID, resultID, catalog.FusionCost, "fusion", func() error {
		if !e.player.RemoveCreature(partnerUID) {
			return deny(ReasonNotFound, partnerUID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	transitionlog.Fused(ctx, e.publisher, e.nextSeq(), e.creatureRef(baseUID),
		transitionlog.FusedPayload{PartnerUID: partnerUID, ResultID: int(resultID), Cost: catalog.FusionCost}, nil)
	return nil
}

// beginTransition validates the instance exists and reserves it.
func (e *Engine) beginTransition(uid string) (state.CreatureInstance, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	creature, ok := e.player.Creature(uid)
	if !ok {
		return state.CreatureInstance{}, deny(ReasonNotFound, uid)
	}
	if err := e.markInflight(uid); err != nil {
		return state.CreatureInstance{}, err
	}
	return creature.Clone(), nil
}

// mutateIdentity is the shared commit path for every identity change:
// fetch the target species, then re-validate and swap the instance's
// identity in place, preserving the shiny multiplier boost. extraCommit
// runs inside the commit critical section, before the charge.
func (e *Engine) mutateIdentity(ctx context.Context, uid string, target catalog.SpeciesID, cost float64, path string, extraCommit func() error) error {
	species, err := e.provider.Resolve(ctx, target)
	if err != nil {
		e.logDenied(ctx, path, ReasonUnavailable)
		return deny(ReasonUnavailable, uid)
	}

	e.mu.Lock()
	creature, ok := e.player.Creature(uid)
	if !ok {
		e.mu.Unlock()
		return deny(ReasonNotFound, uid)
	}
	if e.player.Credits < cost {
		e.mu.Unlock()
		e.logDenied(ctx, path, ReasonInsufficientFunds)
		return deny(ReasonInsufficientFunds, uid)
	}
	if extraCommit != nil {
		if err := extraCommit(); err != nil {
			e.mu.Unlock()
			return err
		}
	}

	fromID := creature.SpeciesID
	creature.SpeciesID = species.ID
	creature.Name = species.Name
	creature.Sprite = species.Sprite
	creature.ShinySprite = species.ShinySprite
	creature.Types = append([]catalog.ElementType(nil), species.Types...)
	creature.TotalStats = species.TotalStats
	creature.Multiplier = market.Multiplier(species.TotalStats, creature.Class, creature.Shiny)
	e.creditDelta(ctx, -cost)
	e.finish(ctx)

	transitionlog.Evolved(ctx, e.publisher, e.nextSeq(), e.creatureRef(uid),
		transitionlog.EvolvedPayload{Path: path, FromID: int(fromID), ToID: int(species.ID), Cost: cost}, nil)
	return nil
}

func (e *Engine) creatureRef(uid string) logging.EntityRef {
	return logging.EntityRef{ID: uid, Kind: logging.EntityKindCreature}
}

func (e *Engine) logDenied(ctx context.Context, path string, reason Reason) {
	transitionlog.Denied(ctx, e.publisher, e.nextSeq(), e.playerRef(),
		transitionlog.DeniedPayload{Path: path, Reason: string(reason)}, nil)
}
