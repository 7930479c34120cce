package state

import (
	"pokecasino/server/internal/catalog"
)

// Stats accumulates the lifetime counters achievements are judged against.
type Stats struct {
	RouletteWins    int     `json:"rouletteWins"`
	SlotsWins       int     `json:"slotsWins"`
	RocketBets      int     `json:"rocketBets"`
	CreaturesBought int     `json:"creaturesBought"`
	PeakBalance     float64 `json:"peakBalance"`
}

// PlayerState is the whole mutable profile for one save slot.
type PlayerState struct {
	Credits               float64            `json:"credits"`
	Inventory             []CreatureInstance `json:"inventory"`
	EquippedIDs           []string           `json:"equippedIds"`
	Items                 []catalog.ItemID   `json:"items"`
	Badges                []string           `json:"badges"`
	Stats                 Stats              `json:"stats"`
	CompletedAchievements []string           `json:"completedAchievements"`
	HasPickedStarter      bool               `json:"hasPickedStarter"`
}

// NewPlayerState returns a fresh profile with the starting bankroll.
func NewPlayerState() PlayerState {
	return PlayerState{
		Credits:               catalog.StartingCredits,
		Inventory:             []CreatureInstance{},
		EquippedIDs:           []string{},
		Items:                 []catalog.ItemID{},
		Badges:                []string{},
		CompletedAchievements: []string{},
	}
}

// Clone returns a deep copy safe to hand to other goroutines.
func (p PlayerState) Clone() PlayerState {
	clone := p
	clone.Inventory = make([]CreatureInstance, len(p.Inventory))
	for i, creature := range p.Inventory {
		clone.Inventory[i] = creature.Clone()
	}
	clone.EquippedIDs = append([]string(nil), p.EquippedIDs...)
	clone.Items = append([]catalog.ItemID(nil), p.Items...)
	clone.Badges = append([]string(nil), p.Badges...)
	clone.CompletedAchievements = append([]string(nil), p.CompletedAchievements...)
	return clone
}

// Creature finds an owned instance by UID.
func (p *PlayerState) Creature(uid string) (*CreatureInstance, bool) {
	for i := range p.Inventory {
		if p.Inventory[i].UID == uid {
			return &p.Inventory[i], true
		}
	}
	return nil, false
}

// RemoveCreature drops an instance from the inventory and from the equipped
// set. It reports whether the instance existed.
func (p *PlayerState) RemoveCreature(uid string) bool {
	idx := -1
	for i := range p.Inventory {
		if p.Inventory[i].UID == uid {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	p.Inventory = append(p.Inventory[:idx], p.Inventory[idx+1:]...)
	p.Unequip(uid)
	return true
}

// IsEquipped reports whether an instance is in the active bonus set.
func (p *PlayerState) IsEquipped(uid string) bool {
	for _, id := range p.EquippedIDs {
		if id == uid {
			return true
		}
	}
	return false
}

// Unequip removes an instance from the active bonus set if present.
func (p *PlayerState) Unequip(uid string) {
	for i, id := range p.EquippedIDs {
		if id == uid {
			p.EquippedIDs = append(p.EquippedIDs[:i], p.EquippedIDs[i+1:]...)
			return
		}
	}
}

// HasItem reports whether the bag holds at least one of the item.
func (p *PlayerState) HasItem(item catalog.ItemID) bool {
	for _, held := range p.Items {
		if held == item {
			return true
		}
	}
	return false
}

// RemoveItem removes one copy of the item from the bag. It reports whether a
// copy existed.
func (p *PlayerState) RemoveItem(item catalog.ItemID) bool {
	for i, held := range p.Items {
		if held == item {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return true
		}
	}
	return false
}

// BonusMultiplier sums the multipliers of equipped creatures whose bonus
// matches the category.
func (p *PlayerState) BonusMultiplier(category catalog.BonusCategory) float64 {
	total := 0.0
	for _, uid := range p.EquippedIDs {
		creature, ok := p.Creature(uid)
		if !ok {
			continue
		}
		if creature.Bonus == category {
			total += creature.Multiplier
		}
	}
	return total
}
