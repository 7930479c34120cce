package transitions

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/dex"
	"pokecasino/server/internal/state"
)

func testResolver(provider dex.Provider) *Resolver {
	return NewResolver(provider, rand.New(rand.NewSource(7)))
}

func playerWith(creatures ...state.CreatureInstance) *state.PlayerState {
	player := state.NewPlayerState()
	player.Inventory = creatures
	return &player
}

func TestResolveFusionBeatsEverything(t *testing.T) {
	// Necrozma can mega-proxy through lower categories in theory, but an
	// owned Solgaleo partner must win the precedence race.
	provider := &dex.StubProvider{
		LineageByID: map[catalog.SpeciesID]dex.LineageNode{
			800: {Species: 800},
		},
	}
	base := state.CreatureInstance{UID: "base", SpeciesID: 800}
	partner := state.CreatureInstance{UID: "partner", SpeciesID: 791}
	player := playerWith(base, partner)

	rule, err := testResolver(provider).Resolve(context.Background(), player, base)
	require.NoError(t, err)
	require.Equal(t, KindFusion, rule.Kind)
	require.Len(t, rule.Fusions, 1)
	assert.Equal(t, "partner", rule.Fusions[0].PartnerUID)
	assert.Equal(t, catalog.SpeciesID(10155), rule.Fusions[0].ResultID)
	assert.Equal(t, catalog.ItemNSolarizer, rule.Fusions[0].KeyItem)
	assert.Equal(t, catalog.FusionCost, rule.Cost())
}

func TestResolveFusionNeedsDistinctPartner(t *testing.T) {
	// The base instance cannot be its own partner even if species match
	// could arise; with no partner owned the category is skipped.
	provider := &dex.StubProvider{
		LineageByID: map[catalog.SpeciesID]dex.LineageNode{
			646: {Species: 646},
		},
	}
	base := state.CreatureInstance{UID: "base", SpeciesID: 646}
	player := playerWith(base)

	rule, err := testResolver(provider).Resolve(context.Background(), player, base)
	require.NoError(t, err)
	assert.Equal(t, KindNone, rule.Kind)
}

func TestResolveFusionListsEveryOwnedRecipe(t *testing.T) {
	provider := &dex.StubProvider{}
	base := state.CreatureInstance{UID: "base", SpeciesID: 646}
	zekrom := state.CreatureInstance{UID: "z", SpeciesID: 644}
	reshiram := state.CreatureInstance{UID: "r", SpeciesID: 643}
	player := playerWith(base, zekrom, reshiram)

	rule, err := testResolver(provider).Resolve(context.Background(), player, base)
	require.NoError(t, err)
	require.Equal(t, KindFusion, rule.Kind)
	require.Len(t, rule.Fusions, 2)
	results := []catalog.SpeciesID{rule.Fusions[0].ResultID, rule.Fusions[1].ResultID}
	assert.ElementsMatch(t, []catalog.SpeciesID{10022, 10023}, results)
	for _, fusion := range rule.Fusions {
		assert.Equal(t, catalog.ItemDNASplicers, fusion.KeyItem)
	}
}

func TestResolveFixedFormsForFusedNecrozma(t *testing.T) {
	provider := &dex.StubProvider{}
	creature := state.CreatureInstance{UID: "dusk", SpeciesID: 10155}

	rule, err := testResolver(provider).Resolve(context.Background(), playerWith(creature), creature)
	require.NoError(t, err)
	require.Equal(t, KindForms, rule.Kind)
	require.Len(t, rule.Forms, 1)
	assert.Equal(t, catalog.SpeciesID(10157), rule.Forms[0].TargetID)
	assert.Equal(t, catalog.ItemZRing, rule.Forms[0].KeyItem)
	assert.Equal(t, float64(0), rule.Cost(), "fixed forms are free")
}

func TestResolveMegaEvolution(t *testing.T) {
	provider := &dex.StubProvider{
		MegaByID: map[catalog.SpeciesID]catalog.SpeciesID{6: 10035},
	}
	creature := state.CreatureInstance{UID: "zard", SpeciesID: 6}

	rule, err := testResolver(provider).Resolve(context.Background(), playerWith(creature), creature)
	require.NoError(t, err)
	require.Equal(t, KindMega, rule.Kind)
	require.NotNil(t, rule.Mega)
	assert.Equal(t, catalog.SpeciesID(10035), rule.Mega.TargetID)
	assert.Equal(t, catalog.ItemCharizarditeX, rule.Mega.Stone)
	assert.Equal(t, catalog.MegaEvolveCost, rule.Cost())
}

func TestResolveFormChain(t *testing.T) {
	provider := &dex.StubProvider{}
	creature := state.CreatureInstance{UID: "deoxys", SpeciesID: 386}

	rule, err := testResolver(provider).Resolve(context.Background(), playerWith(creature), creature)
	require.NoError(t, err)
	require.Equal(t, KindChain, rule.Kind)
	require.NotNil(t, rule.Chain)
	assert.Equal(t, catalog.SpeciesID(10001), rule.Chain.TargetID)
	assert.Empty(t, rule.Chain.KeyItem)
}

func TestResolveFormChainKeyGate(t *testing.T) {
	provider := &dex.StubProvider{}
	creature := state.CreatureInstance{UID: "gmax", SpeciesID: 890}

	rule, err := testResolver(provider).Resolve(context.Background(), playerWith(creature), creature)
	require.NoError(t, err)
	require.Equal(t, KindChain, rule.Kind)
	assert.Equal(t, catalog.SpeciesID(10190), rule.Chain.TargetID)
	assert.Equal(t, catalog.ItemDynamaxBand, rule.Chain.KeyItem)
}

func TestResolveNaturalEvolution(t *testing.T) {
	// The provider hands back the whole chain, rooted above the creature.
	chain := dex.LineageNode{
		Species: 172,
		Children: []dex.LineageNode{
			{Species: 25, Children: []dex.LineageNode{{Species: 26}}},
		},
	}
	provider := &dex.StubProvider{
		LineageByID: map[catalog.SpeciesID]dex.LineageNode{25: chain},
	}
	creature := state.CreatureInstance{UID: "pika", SpeciesID: 25}

	rule, err := testResolver(provider).Resolve(context.Background(), playerWith(creature), creature)
	require.NoError(t, err)
	require.Equal(t, KindNatural, rule.Kind)
	assert.Equal(t, catalog.SpeciesID(26), rule.Natural.TargetID)
	assert.Equal(t, catalog.EvolveCost, rule.Cost())
}

func TestResolveNaturalBranchingStaysInLine(t *testing.T) {
	provider := &dex.StubProvider{
		LineageByID: map[catalog.SpeciesID]dex.LineageNode{
			133: {
				Species: 133,
				Children: []dex.LineageNode{
					{Species: 134}, {Species: 135}, {Species: 136},
				},
			},
		},
	}
	creature := state.CreatureInstance{UID: "eevee", SpeciesID: 133}
	resolver := testResolver(provider)

	seen := map[catalog.SpeciesID]bool{}
	for i := 0; i < 200; i++ {
		rule, err := resolver.Resolve(context.Background(), playerWith(creature), creature)
		require.NoError(t, err)
		require.Equal(t, KindNatural, rule.Kind)
		seen[rule.Natural.TargetID] = true
	}
	assert.Equal(t, map[catalog.SpeciesID]bool{134: true, 135: true, 136: true}, seen,
		"every branch must be reachable")
}

func TestResolveMegaVarietyFallbackAfterLineage(t *testing.T) {
	// Terminal species with no registered mega: the provider-exposed
	// variety is the last resort.
	provider := &dex.StubProvider{
		LineageByID: map[catalog.SpeciesID]dex.LineageNode{
			127: {Species: 127},
		},
		MegaByID: map[catalog.SpeciesID]catalog.SpeciesID{127: 10039},
	}
	creature := state.CreatureInstance{UID: "pinsir", SpeciesID: 127}

	rule, err := testResolver(provider).Resolve(context.Background(), playerWith(creature), creature)
	require.NoError(t, err)
	require.Equal(t, KindNatural, rule.Kind)
	assert.Equal(t, catalog.SpeciesID(10039), rule.Natural.TargetID)
}

func TestResolveNoTransition(t *testing.T) {
	provider := &dex.StubProvider{
		LineageByID: map[catalog.SpeciesID]dex.LineageNode{
			132: {Species: 132},
		},
	}
	creature := state.CreatureInstance{UID: "ditto", SpeciesID: 132}

	rule, err := testResolver(provider).Resolve(context.Background(), playerWith(creature), creature)
	require.NoError(t, err)
	assert.Equal(t, KindNone, rule.Kind)
	assert.Equal(t, float64(0), rule.Cost())
}

func TestResolveProviderOutageFailsClosed(t *testing.T) {
	outage := errors.New("upstream down")
	provider := &dex.StubProvider{Err: outage}
	creature := state.CreatureInstance{UID: "pika", SpeciesID: 25}

	rule, err := testResolver(provider).Resolve(context.Background(), playerWith(creature), creature)
	require.ErrorIs(t, err, outage)
	assert.Equal(t, KindNone, rule.Kind)
}
