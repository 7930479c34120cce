package market

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/dex"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1337))
}

func denseProvider(from, to catalog.SpeciesID) *dex.StubProvider {
	stub := &dex.StubProvider{
		SpeciesByID:   map[catalog.SpeciesID]dex.Species{},
		SpeciesByType: map[catalog.ElementType][]catalog.SpeciesID{},
	}
	for id := from; id <= to; id++ {
		stub.SpeciesByID[id] = dex.Species{
			ID:         id,
			Name:       "Creature",
			Types:      []catalog.ElementType{catalog.TypeNormal},
			TotalStats: 300,
		}
	}
	return stub
}

func TestRollClassDistribution(t *testing.T) {
	rng := testRNG()
	counts := map[catalog.Class]int{}
	const draws = 100000
	for i := 0; i < draws; i++ {
		counts[RollClass(rng, false, "")]++
	}
	for _, entry := range catalog.ClassWeights {
		got := float64(counts[entry.Class]) / draws * 100
		assert.InDelta(t, float64(entry.Weight), got, 1.0, "class %s", entry.Class)
	}
}

func TestRollClassHighTier(t *testing.T) {
	rng := testRNG()
	counts := map[catalog.Class]int{}
	const draws = 100000
	for i := 0; i < draws; i++ {
		counts[RollClass(rng, true, "")]++
	}
	assert.Equal(t, draws, counts[catalog.ClassA]+counts[catalog.ClassB], "high tier rolls only A or B")
	assert.InDelta(t, 30, float64(counts[catalog.ClassA])/draws*100, 1.0)
}

func TestRollClassPinned(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 50; i++ {
		assert.Equal(t, catalog.ClassD, RollClass(rng, false, catalog.ClassD))
		assert.Equal(t, catalog.ClassC, RollClass(rng, true, catalog.ClassC))
	}
}

func TestRarityMultiplierPriority(t *testing.T) {
	assert.Equal(t, float64(5), RarityMultiplier(150, true, false), "legendary wins")
	assert.Equal(t, float64(5), RarityMultiplier(151, true, true), "legendary beats mythical")
	assert.Equal(t, float64(4), RarityMultiplier(151, false, true), "mythical")
	assert.Equal(t, float64(3), RarityMultiplier(149, false, false), "pseudo legendary")
	assert.Equal(t, float64(2), RarityMultiplier(1, false, false), "starter")
	assert.Equal(t, float64(1), RarityMultiplier(16, false, false), "ordinary")
}

func TestGenerateFullBatch(t *testing.T) {
	provider := denseProvider(1, 200)
	gen := NewGenerator(provider, testRNG())

	listings, err := gen.Generate(context.Background(), BatchSize, Filter{})
	require.NoError(t, err)
	require.Len(t, listings, BatchSize)

	seen := map[string]struct{}{}
	for _, listing := range listings {
		assert.NotEmpty(t, listing.UID)
		_, dup := seen[listing.UID]
		assert.False(t, dup, "duplicate listing uid %s", listing.UID)
		seen[listing.UID] = struct{}{}
		assert.Greater(t, listing.Price, float64(0))
		assert.Greater(t, listing.Multiplier, float64(0))
		assert.Contains(t, catalog.BonusCategories, listing.Bonus)
	}
}

func TestGenerateHonorsGroupFilter(t *testing.T) {
	provider := denseProvider(1, catalog.MaxSpeciesID)
	gen := NewGenerator(provider, testRNG())

	listings, err := gen.Generate(context.Background(), BatchSize, Filter{Group: catalog.GroupStarter})
	require.NoError(t, err)
	require.NotEmpty(t, listings)
	for _, listing := range listings {
		assert.True(t, catalog.IsStarter(listing.SpeciesID), "species %d not a starter", listing.SpeciesID)
	}
}

func TestGenerateHonorsGenerationFilter(t *testing.T) {
	provider := denseProvider(1, catalog.MaxSpeciesID)
	gen := NewGenerator(provider, testRNG())

	listings, err := gen.Generate(context.Background(), BatchSize, Filter{Generation: 2})
	require.NoError(t, err)
	require.NotEmpty(t, listings)
	span := catalog.GenerationRanges[2]
	for _, listing := range listings {
		assert.True(t, span.Contains(listing.SpeciesID), "species %d outside generation 2", listing.SpeciesID)
	}
}

func TestGenerateTypePoolFromProvider(t *testing.T) {
	provider := denseProvider(1, 50)
	provider.SpeciesByType[catalog.TypeFire] = []catalog.SpeciesID{4, 5, 6}
	for _, id := range []catalog.SpeciesID{4, 5, 6} {
		species := provider.SpeciesByID[id]
		species.Types = []catalog.ElementType{catalog.TypeFire}
		provider.SpeciesByID[id] = species
	}
	gen := NewGenerator(provider, testRNG())

	listings, err := gen.Generate(context.Background(), BatchSize, Filter{Types: []catalog.ElementType{catalog.TypeFire}})
	require.NoError(t, err)
	require.Len(t, listings, 3, "pool only has three fire species")
	for _, listing := range listings {
		assert.Contains(t, []catalog.SpeciesID{4, 5, 6}, listing.SpeciesID)
	}
}

func TestGenerateCountsTypeMismatchAgainstBudget(t *testing.T) {
	// Every species in the pool resolves but none carries the requested
	// type, so the generator must stop at the attempt budget with an
	// empty batch instead of walking all 1025 ids.
	provider := denseProvider(1, catalog.MaxSpeciesID)
	provider.SpeciesByType[catalog.TypeGhost] = func() []catalog.SpeciesID {
		ids := make([]catalog.SpeciesID, 0, 200)
		for id := catalog.SpeciesID(1); id <= 200; id++ {
			ids = append(ids, id)
		}
		return ids
	}()
	gen := NewGenerator(provider, testRNG())

	listings, err := gen.Generate(context.Background(), BatchSize, Filter{Types: []catalog.ElementType{catalog.TypeGhost}})
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestGenerateSkipsUnresolvableForFree(t *testing.T) {
	// Only five of two hundred pool entries resolve; unresolvable ids must
	// not eat the attempt budget, so all five still surface.
	provider := denseProvider(1, 5)
	gen := NewGenerator(provider, testRNG())

	listings, err := gen.Generate(context.Background(), BatchSize, Filter{Generation: 2})
	require.NoError(t, err)
	assert.Empty(t, listings, "generation 2 pool has no resolvable entries")

	listings, err = gen.Generate(context.Background(), BatchSize, Filter{Generation: 1})
	require.NoError(t, err)
	assert.Len(t, listings, 5)
}

// flakyProvider fails hard on selected lookups while the rest of the stub
// keeps serving.
type flakyProvider struct {
	*dex.StubProvider
	failing      map[catalog.SpeciesID]error
	failingTypes map[catalog.ElementType]error
}

func (f *flakyProvider) Resolve(ctx context.Context, id catalog.SpeciesID) (dex.Species, error) {
	if err, ok := f.failing[id]; ok {
		return dex.Species{}, err
	}
	return f.StubProvider.Resolve(ctx, id)
}

func (f *flakyProvider) ResolveByType(ctx context.Context, t catalog.ElementType) ([]catalog.SpeciesID, error) {
	if err, ok := f.failingTypes[t]; ok {
		return nil, err
	}
	return f.StubProvider.ResolveByType(ctx, t)
}

func TestGenerateSkipsFailedLookups(t *testing.T) {
	// A partial provider outage degrades the batch instead of aborting it:
	// healthy ids still surface and the failure is reported alongside.
	outage := errors.New("upstream timeout")
	provider := &flakyProvider{
		StubProvider: denseProvider(1, 5),
		failing:      map[catalog.SpeciesID]error{3: outage},
	}
	gen := NewGenerator(provider, testRNG())

	listings, err := gen.Generate(context.Background(), BatchSize, Filter{Generation: 1})
	require.ErrorIs(t, err, outage)
	assert.Len(t, listings, 4)
	for _, listing := range listings {
		assert.NotEqual(t, catalog.SpeciesID(3), listing.SpeciesID)
	}
}

func TestGenerateTypePoolOutageDegrades(t *testing.T) {
	outage := errors.New("upstream down")
	base := denseProvider(1, 50)
	base.SpeciesByType[catalog.TypeFire] = []catalog.SpeciesID{4, 5, 6}
	for _, id := range []catalog.SpeciesID{4, 5, 6} {
		species := base.SpeciesByID[id]
		species.Types = []catalog.ElementType{catalog.TypeFire}
		base.SpeciesByID[id] = species
	}
	provider := &flakyProvider{
		StubProvider: base,
		failingTypes: map[catalog.ElementType]error{catalog.TypeWater: outage},
	}
	gen := NewGenerator(provider, testRNG())

	listings, err := gen.Generate(context.Background(), BatchSize,
		Filter{Types: []catalog.ElementType{catalog.TypeFire, catalog.TypeWater}})
	require.ErrorIs(t, err, outage)
	require.Len(t, listings, 3, "the healthy type still fills the pool")
	for _, listing := range listings {
		assert.Contains(t, []catalog.SpeciesID{4, 5, 6}, listing.SpeciesID)
	}
}

func TestGenerateShortBatchOnTinyPool(t *testing.T) {
	provider := denseProvider(1, 3)
	gen := NewGenerator(provider, testRNG())

	listings, err := gen.Generate(context.Background(), BatchSize, Filter{Generation: 1})
	require.NoError(t, err)
	assert.Len(t, listings, 3)
}

func TestGenerateShinyRate(t *testing.T) {
	provider := denseProvider(1, catalog.MaxSpeciesID)
	gen := NewGenerator(provider, testRNG())

	shinies, total := 0, 0
	for i := 0; i < 500; i++ {
		listings, err := gen.Generate(context.Background(), BatchSize, Filter{})
		require.NoError(t, err)
		for _, listing := range listings {
			total++
			if listing.Shiny {
				shinies++
				assert.Equal(t, listing.Price, Price(listing.TotalStats, listing.Class, RarityMultiplier(listing.SpeciesID, false, false), true))
			}
		}
	}
	rate := float64(shinies) / float64(total)
	assert.InDelta(t, ShinyChance, rate, 0.01)
}

func TestGeneratePinnedClassAndBonus(t *testing.T) {
	provider := denseProvider(1, 100)
	gen := NewGenerator(provider, testRNG())

	listings, err := gen.Generate(context.Background(), BatchSize, Filter{Class: catalog.ClassA, Bonus: catalog.BonusRocket})
	require.NoError(t, err)
	require.NotEmpty(t, listings)
	for _, listing := range listings {
		assert.Equal(t, catalog.ClassA, listing.Class)
		assert.Equal(t, catalog.BonusRocket, listing.Bonus)
	}
}
