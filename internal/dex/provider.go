package dex

import (
	"context"
	"errors"

	"pokecasino/server/internal/catalog"
)

// ErrNotFound reports a species id the dex cannot resolve. Callers treat it
// as "skip this candidate" rather than a failure.
var ErrNotFound = errors.New("dex: not found")

// Species carries the descriptive attributes the casino needs for one
// resolved dex entry.
type Species struct {
	ID          catalog.SpeciesID
	Name        string
	Sprite      string
	ShinySprite string
	Types       []catalog.ElementType
	TotalStats  int
	Legendary   bool
	Mythical    bool
}

// LineageNode is one node of a species' evolution tree. Branching lines
// (Eevee, Tyrogue) carry multiple children.
type LineageNode struct {
	Species  catalog.SpeciesID
	Children []LineageNode
}

// Find walks the tree for the node matching id.
func (n LineageNode) Find(id catalog.SpeciesID) (LineageNode, bool) {
	if n.Species == id {
		return n, true
	}
	for _, child := range n.Children {
		if match, ok := child.Find(id); ok {
			return match, true
		}
	}
	return LineageNode{}, false
}

// Provider resolves creature data from the external dex. Implementations
// must return ErrNotFound (possibly wrapped) for unknown ids so callers can
// distinguish missing data from transport failures; both are treated as
// non-fatal by the core.
type Provider interface {
	// Resolve fetches descriptive data for a species.
	Resolve(ctx context.Context, id catalog.SpeciesID) (Species, error)
	// ResolveLineage fetches the evolution tree containing the species.
	ResolveLineage(ctx context.Context, id catalog.SpeciesID) (LineageNode, error)
	// ResolveByType lists every base-dex species carrying the elemental type.
	ResolveByType(ctx context.Context, t catalog.ElementType) ([]catalog.SpeciesID, error)
	// ResolveMegaVariety returns the mega form exposed by the dex for a
	// species, or ErrNotFound when none exists.
	ResolveMegaVariety(ctx context.Context, id catalog.SpeciesID) (catalog.SpeciesID, error)
}
