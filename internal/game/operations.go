package game

import (
	"context"
	"fmt"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/market"
	"pokecasino/server/internal/state"
	economylog "pokecasino/server/logging/economy"
)

// PickStarter claims one of the three fixed starter offers on a fresh
// save. The starter is free, equipped immediately, and the choice is
// permanent.
func (e *Engine) PickStarter(ctx context.Context, key string) (state.CreatureInstance, error) {
	starter, ok := catalog.StarterByKey(key)
	if !ok {
		return state.CreatureInstance{}, deny(ReasonNotFound, key)
	}

	e.mu.Lock()
	if e.player.HasPickedStarter {
		e.mu.Unlock()
		return state.CreatureInstance{}, deny(ReasonAlreadyPicked, key)
	}
	e.mu.Unlock()

	species, err := e.provider.Resolve(ctx, starter.SpeciesID)
	if err != nil {
		return state.CreatureInstance{}, deny(ReasonUnavailable, key)
	}

	e.mu.Lock()
	if e.player.HasPickedStarter {
		e.mu.Unlock()
		return state.CreatureInstance{}, deny(ReasonAlreadyPicked, key)
	}
	shiny := e.rng.Float64() < market.ShinyChance
	creature := market.MakeInstance(species, market.RollClass(e.rng, false, ""), starter.Bonus, 2, shiny)
	creature.Starter = true
	e.player.Inventory = append(e.player.Inventory, creature)
	e.player.EquippedIDs = append(e.player.EquippedIDs, creature.UID)
	e.player.HasPickedStarter = true
	e.settleAchievements(ctx)
	e.finish(ctx)
	return creature, nil
}

// Charge debits a flat amount, with a funds check. Used for costs that
// are not tied to a catalog item, like a forced market refresh.
func (e *Engine) Charge(ctx context.Context, amount float64, subject string) error {
	e.mu.Lock()
	if e.player.Credits < amount {
		e.mu.Unlock()
		economylog.PurchaseDenied(ctx, e.publisher, e.nextSeq(), e.playerRef(),
			economylog.DeniedPayload{Subject: subject, Reason: string(ReasonInsufficientFunds)}, nil)
		return deny(ReasonInsufficientFunds, subject)
	}
	e.creditDelta(ctx, -amount)
	e.finish(ctx)
	return nil
}

// BuyListing purchases a market listing. The listing is copied into the
// inventory verbatim; the hub removes it from the batch on success.
func (e *Engine) BuyListing(ctx context.Context, listing state.CreatureInstance) error {
	e.mu.Lock()
	if e.player.Credits < listing.Price {
		e.mu.Unlock()
		economylog.PurchaseDenied(ctx, e.publisher, e.nextSeq(), e.playerRef(),
			economylog.DeniedPayload{Subject: listing.Name, Reason: string(ReasonInsufficientFunds)}, nil)
		return deny(ReasonInsufficientFunds, listing.Name)
	}
	if _, owned := e.player.Creature(listing.UID); owned {
		e.mu.Unlock()
		return deny(ReasonNotFound, listing.UID)
	}
	e.player.Inventory = append(e.player.Inventory, listing.Clone())
	e.player.Stats.CreaturesBought++
	e.creditDelta(ctx, -listing.Price)
	balance := e.player.Credits
	e.finish(ctx)

	economylog.CreaturePurchased(ctx, e.publisher, e.nextSeq(), e.playerRef(),
		economylog.TradePayload{Subject: listing.Name, Amount: listing.Price, Balance: balance}, nil)
	return nil
}

// SellCreature sells an owned instance back at a fixed fraction of its
// recorded price. Starters can be sold like anything else.
func (e *Engine) SellCreature(ctx context.Context, uid string) (float64, error) {
	e.mu.Lock()
	creature, ok := e.player.Creature(uid)
	if !ok {
		e.mu.Unlock()
		return 0, deny(ReasonNotFound, uid)
	}
	if err := e.markInflight(uid); err != nil {
		e.mu.Unlock()
		return 0, err
	}
	proceeds := creature.Price * catalog.SellCreatureRate
	name := creature.Name
	if held := creature.HeldItem; held != "" {
		e.player.Items = append(e.player.Items, held)
	}
	e.player.RemoveCreature(uid)
	delete(e.inflight, uid)
	e.creditDelta(ctx, proceeds)
	balance := e.player.Credits
	e.finish(ctx)

	economylog.CreatureSold(ctx, e.publisher, e.nextSeq(), e.playerRef(),
		economylog.TradePayload{Subject: name, Amount: proceeds, Balance: balance}, nil)
	return proceeds, nil
}

// BuyItem purchases one catalog item into the bag.
func (e *Engine) BuyItem(ctx context.Context, id catalog.ItemID) error {
	item, ok := catalog.ItemFor(id)
	if !ok {
		return deny(ReasonNotFound, string(id))
	}

	e.mu.Lock()
	if e.player.Credits < item.Price {
		e.mu.Unlock()
		economylog.PurchaseDenied(ctx, e.publisher, e.nextSeq(), e.playerRef(),
			economylog.DeniedPayload{Subject: item.Name, Reason: string(ReasonInsufficientFunds)}, nil)
		return deny(ReasonInsufficientFunds, item.Name)
	}
	e.player.Items = append(e.player.Items, item.ID)
	e.creditDelta(ctx, -item.Price)
	balance := e.player.Credits
	e.finish(ctx)

	economylog.ItemPurchased(ctx, e.publisher, e.nextSeq(), e.playerRef(),
		economylog.TradePayload{Subject: item.Name, Amount: item.Price, Balance: balance}, nil)
	return nil
}

// SellItem sells one bag item back at half price. Items held by creatures
// are not reachable here; take them back first.
func (e *Engine) SellItem(ctx context.Context, id catalog.ItemID) (float64, error) {
	item, ok := catalog.ItemFor(id)
	if !ok {
		return 0, deny(ReasonNotFound, string(id))
	}

	e.mu.Lock()
	if !e.player.RemoveItem(id) {
		e.mu.Unlock()
		return 0, deny(ReasonNotFound, item.Name)
	}
	proceeds := item.Price * catalog.SellItemRate
	e.creditDelta(ctx, proceeds)
	balance := e.player.Credits
	e.finish(ctx)

	economylog.ItemSold(ctx, e.publisher, e.nextSeq(), e.playerRef(),
		economylog.TradePayload{Subject: item.Name, Amount: proceeds, Balance: balance}, nil)
	return proceeds, nil
}

// ToggleEquip adds an owned instance to the active bonus set, or removes
// it if already present. The set never exceeds the equip limit.
func (e *Engine) ToggleEquip(ctx context.Context, uid string) (equipped bool, err error) {
	e.mu.Lock()
	if _, ok := e.player.Creature(uid); !ok {
		e.mu.Unlock()
		return false, deny(ReasonNotFound, uid)
	}
	if e.player.IsEquipped(uid) {
		e.player.Unequip(uid)
		e.finish(ctx)
		return false, nil
	}
	if len(e.player.EquippedIDs) >= catalog.MaxEquipped {
		e.mu.Unlock()
		return false, deny(ReasonEquipLimit, fmt.Sprintf("max %d", catalog.MaxEquipped))
	}
	e.player.EquippedIDs = append(e.player.EquippedIDs, uid)
	e.finish(ctx)
	return true, nil
}

// GiveItem moves one bag item into a creature's held slot. A previously
// held item returns to the bag first. Species-specific items (stones,
// orbs) only fit the species that needs them.
func (e *Engine) GiveItem(ctx context.Context, uid string, id catalog.ItemID) error {
	item, ok := catalog.ItemFor(id)
	if !ok {
		return deny(ReasonNotFound, string(id))
	}
	if !item.Holdable() {
		return deny(ReasonIncompatible, item.Name)
	}

	e.mu.Lock()
	creature, ok := e.player.Creature(uid)
	if !ok {
		e.mu.Unlock()
		return deny(ReasonNotFound, uid)
	}
	if owners := catalog.SpeciesForHeldItem(id); len(owners) > 0 && !containsSpecies(owners, creature.SpeciesID) {
		e.mu.Unlock()
		return deny(ReasonIncompatible, item.Name)
	}
	if !e.player.RemoveItem(id) {
		e.mu.Unlock()
		return deny(ReasonMissingItem, item.Name)
	}
	if creature.HeldItem != "" {
		e.player.Items = append(e.player.Items, creature.HeldItem)
	}
	creature.HeldItem = id
	e.finish(ctx)
	return nil
}

// TakeItem returns a creature's held item to the bag.
func (e *Engine) TakeItem(ctx context.Context, uid string) (catalog.ItemID, error) {
	e.mu.Lock()
	creature, ok := e.player.Creature(uid)
	if !ok {
		e.mu.Unlock()
		return "", deny(ReasonNotFound, uid)
	}
	if creature.HeldItem == "" {
		e.mu.Unlock()
		return "", deny(ReasonMissingItem, uid)
	}
	taken := creature.HeldItem
	creature.HeldItem = ""
	e.player.Items = append(e.player.Items, taken)
	e.finish(ctx)
	return taken, nil
}

func containsSpecies(ids []catalog.SpeciesID, id catalog.SpeciesID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
