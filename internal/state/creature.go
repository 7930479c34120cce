package state

import (
	"pokecasino/server/internal/catalog"
)

// CreatureInstance is one owned (or listed) creature. UID identifies the
// instance; two instances of the same species are distinct assets with their
// own pricing and shiny roll.
type CreatureInstance struct {
	UID         string                `json:"uid"`
	SpeciesID   catalog.SpeciesID     `json:"speciesId"`
	Name        string                `json:"name"`
	Sprite      string                `json:"sprite"`
	ShinySprite string                `json:"shinySprite"`
	Class       catalog.Class         `json:"class"`
	Bonus       catalog.BonusCategory `json:"bonus"`
	Multiplier  float64               `json:"multiplier"`
	Price       float64               `json:"price"`
	Types       []catalog.ElementType `json:"types"`
	TotalStats  int                   `json:"totalStats"`
	Starter     bool                  `json:"starter,omitempty"`
	Shiny       bool                  `json:"shiny,omitempty"`
	HeldItem    catalog.ItemID        `json:"heldItem,omitempty"`
}

// Clone returns a deep copy.
func (c CreatureInstance) Clone() CreatureInstance {
	clone := c
	if c.Types != nil {
		clone.Types = append([]catalog.ElementType(nil), c.Types...)
	}
	return clone
}
