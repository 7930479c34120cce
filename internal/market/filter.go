package market

import (
	"pokecasino/server/internal/catalog"
)

// Filter narrows what a market batch may contain. Zero values mean "any":
// an empty class or bonus, generation 0, no types, and GroupAny all leave
// that axis unconstrained.
type Filter struct {
	Class      catalog.Class         `json:"class,omitempty"`
	Bonus      catalog.BonusCategory `json:"bonus,omitempty"`
	Generation int                   `json:"generation,omitempty"`
	Types      []catalog.ElementType `json:"types,omitempty"`
	Group      catalog.Group         `json:"group,omitempty"`
}

// WantsGroup reports whether the filter pins a specific creature cohort.
func (f Filter) WantsGroup() bool {
	return f.Group != "" && f.Group != catalog.GroupAny
}

// WantsTypes reports whether the filter pins elemental types.
func (f Filter) WantsTypes() bool {
	return len(f.Types) > 0
}

// WantsGeneration reports whether the filter pins a dex generation.
func (f Filter) WantsGeneration() bool {
	_, ok := catalog.GenerationRanges[f.Generation]
	return ok
}

// MatchesTypes reports whether a candidate's type tags share at least one
// entry with the requested set. An unconstrained filter matches everything.
func (f Filter) MatchesTypes(types []catalog.ElementType) bool {
	if !f.WantsTypes() {
		return true
	}
	for _, want := range f.Types {
		for _, have := range types {
			if want == have {
				return true
			}
		}
	}
	return false
}
