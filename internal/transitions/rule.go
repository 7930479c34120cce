package transitions

import (
	"pokecasino/server/internal/catalog"
)

// Kind tags which transition category a resolved rule carries. Exactly one
// category is active per rule; the categories are mutually exclusive by
// precedence.
type Kind string

const (
	KindNone    Kind = "none"
	KindFusion  Kind = "fusion"
	KindForms   Kind = "forms"
	KindMega    Kind = "mega"
	KindChain   Kind = "chain"
	KindNatural Kind = "natural"
)

// FusionOption is one available fusion: the owned partner instance to
// consume and the resulting species, gated by a key item.
type FusionOption struct {
	PartnerUID     string            `json:"partnerUid"`
	PartnerSpecies catalog.SpeciesID `json:"partnerSpecies"`
	ResultID       catalog.SpeciesID `json:"resultId"`
	Name           string            `json:"name"`
	KeyItem        catalog.ItemID    `json:"keyItem"`
}

// FormOption is one fixed alternate-form action, gated by a held item
// and/or a possessed key item.
type FormOption struct {
	TargetID catalog.SpeciesID `json:"targetId"`
	Name     string            `json:"name"`
	HeldItem catalog.ItemID    `json:"heldItem,omitempty"`
	KeyItem  catalog.ItemID    `json:"keyItem,omitempty"`
}

// MegaOption is a mega evolution step. Stone is zero when the species has
// no specific stone requirement.
type MegaOption struct {
	TargetID catalog.SpeciesID `json:"targetId"`
	Stone    catalog.ItemID    `json:"stone,omitempty"`
}

// ChainStep is the next link of a linear form chain.
type ChainStep struct {
	TargetID catalog.SpeciesID `json:"targetId"`
	KeyItem  catalog.ItemID    `json:"keyItem,omitempty"`
}

// NaturalStep is a provider-driven species evolution.
type NaturalStep struct {
	TargetID catalog.SpeciesID `json:"targetId"`
}

// Rule is the resolved transition for one creature instance. Only the
// field matching Kind is populated.
type Rule struct {
	Kind    Kind           `json:"kind"`
	Fusions []FusionOption `json:"fusions,omitempty"`
	Forms   []FormOption   `json:"forms,omitempty"`
	Mega    *MegaOption    `json:"mega,omitempty"`
	Chain   *ChainStep     `json:"chain,omitempty"`
	Natural *NaturalStep   `json:"natural,omitempty"`
}

// Cost returns the credit cost of acting on the rule.
func (r Rule) Cost() float64 {
	switch r.Kind {
	case KindFusion:
		return catalog.FusionCost
	case KindForms:
		// Fixed-form bursts are item-gated but free.
		return 0
	case KindChain:
		return catalog.FormChangeCost
	case KindMega:
		return catalog.MegaEvolveCost
	case KindNatural:
		return catalog.EvolveCost
	default:
		return 0
	}
}
