package catalog

import (
	"fmt"

	"github.com/dominikbraun/graph"
)

// FixedFormOption is a named alternate-form target a species can reach as an
// independent action, gated by item possession. HeldItem (if set) must be the
// creature's current held item; KeyItem (if set) must be in the player's bag.
type FixedFormOption struct {
	TargetID SpeciesID
	Name     string
	HeldItem ItemID
	KeyItem  ItemID
}

// fixedFormOptions keys species that expose static alternate-form actions.
// The fused Necrozma forms can burst into Ultra Necrozma when the player
// carries a Z-Power Ring.
var fixedFormOptions = map[SpeciesID][]FixedFormOption{
	10155: {{TargetID: 10157, Name: "Ultra Necrozma", KeyItem: ItemZRing}},
	10156: {{TargetID: 10157, Name: "Ultra Necrozma", KeyItem: ItemZRing}},
}

// FixedFormOptions returns the static alternate-form actions for a species,
// or nil. The returned slice must not be mutated.
func FixedFormOptions(species SpeciesID) []FixedFormOption {
	return fixedFormOptions[species]
}

// formChains maps a species to the next step of its linear form chain. Each
// chain is strictly linear with no branching; BuildFormChainGraph enforces
// the no-cycle invariant at package init.
var formChains = map[SpeciesID]SpeciesID{
	// Zygarde: 10% -> 50% -> Complete
	10118: 718,
	718:   10120,

	// Origin formes
	483: 10245,
	484: 10246,
	487: 10007,

	// Crowned forms
	888: 10188,
	889: 10189,

	// Eternatus -> Eternamax
	890: 10190,

	// Deoxys: Normal -> Attack -> Defense -> Speed
	386:   10001,
	10001: 10002,
	10002: 10003,

	// Shaymin: Land -> Sky
	492: 10006,

	// Hoopa: Confined -> Unbound
	720: 10024,

	// Meloetta: Aria -> Pirouette
	648: 10018,

	// Primal reversions
	382: 10077,
	383: 10078,
}

// chainKeyGates maps a chain target to the key item the player must possess
// before the step is allowed. Held-item gates on chain steps come from the
// source species' HeldRequirement instead.
var chainKeyGates = map[SpeciesID]ItemID{
	10190: ItemDynamaxBand,
}

// NextFormChain returns the next step of a species' linear form chain.
func NextFormChain(species SpeciesID) (SpeciesID, bool) {
	next, ok := formChains[species]
	return next, ok
}

// ChainKeyGate returns the key item gating a chain target, if any.
func ChainKeyGate(target SpeciesID) (ItemID, bool) {
	item, ok := chainKeyGates[target]
	return item, ok
}

// megaEvolvers lists species with a mega evolution reachable through the
// evolve action (bracelet-gated, plus a held stone when HeldRequirement
// names one).
var megaEvolvers = map[SpeciesID]bool{
	3: true, 6: true, 9: true, 15: true, 18: true, 65: true, 94: true,
	130: true, 142: true, 150: true, 212: true, 248: true, 254: true,
	257: true, 260: true, 282: true, 373: true, 376: true, 384: true,
	445: true, 448: true, 475: true,
}

// CanMegaEvolve reports whether a species has a mega evolution.
func CanMegaEvolve(species SpeciesID) bool {
	return megaEvolvers[species]
}

func init() {
	if _, err := BuildFormChainGraph(formChains); err != nil {
		panic(fmt.Sprintf("catalog: invalid form chain table: %v", err))
	}
}

// BuildFormChainGraph constructs the directed form-chain graph and rejects
// cycles and branching. Exposed so tests can probe the invariant with
// synthetic tables.
func BuildFormChainGraph(chains map[SpeciesID]SpeciesID) (graph.Graph[SpeciesID, SpeciesID], error) {
	g := graph.New(func(id SpeciesID) SpeciesID { return id }, graph.Directed(), graph.PreventCycles())

	for source, target := range chains {
		if source == target {
			return nil, fmt.Errorf("self-loop on %d", source)
		}
		if err := g.AddVertex(source); err != nil && err != graph.ErrVertexAlreadyExists {
			return nil, fmt.Errorf("add vertex %d: %w", source, err)
		}
		if err := g.AddVertex(target); err != nil && err != graph.ErrVertexAlreadyExists {
			return nil, fmt.Errorf("add vertex %d: %w", target, err)
		}
		if err := g.AddEdge(source, target); err != nil {
			return nil, fmt.Errorf("chain step %d -> %d: %w", source, target, err)
		}
	}
	return g, nil
}
