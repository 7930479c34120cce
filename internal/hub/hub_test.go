package hub

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/dex"
	"pokecasino/server/internal/game"
	"pokecasino/server/internal/market"
	"pokecasino/server/internal/state"
)

func testHub(t *testing.T, credits float64) *Hub {
	t.Helper()
	species := map[catalog.SpeciesID]dex.Species{}
	for id := catalog.SpeciesID(1); id <= 20; id++ {
		species[id] = dex.Species{ID: id, Name: "Creature", TotalStats: 300 + int(id)}
	}
	provider := &dex.StubProvider{SpeciesByID: species}
	rng := rand.New(rand.NewSource(7))

	player := state.NewPlayerState()
	player.Credits = credits
	player.Stats.PeakBalance = credits
	player.HasPickedStarter = true

	engine := game.NewEngine(player, game.Config{Provider: provider, RNG: rng})
	return New(Config{
		Engine:    engine,
		Generator: market.NewGenerator(provider, rng),
		Interval:  time.Minute,
	})
}

func TestRollBatchPublishesListings(t *testing.T) {
	h := testHub(t, 1000)
	h.rollBatch(context.Background(), market.Filter{}, false)

	listings, refreshAt := h.Listings()
	assert.Equal(t, market.BatchSize, len(listings))
	assert.True(t, refreshAt.After(time.Now()), "countdown points at the next roll")
	for _, listing := range listings {
		assert.NotEmpty(t, listing.UID)
		assert.Greater(t, listing.Price, float64(0))
	}
}

func TestConfiguredBatchSize(t *testing.T) {
	species := map[catalog.SpeciesID]dex.Species{}
	for id := catalog.SpeciesID(1); id <= 20; id++ {
		species[id] = dex.Species{ID: id, Name: "Creature", TotalStats: 300 + int(id)}
	}
	provider := &dex.StubProvider{SpeciesByID: species}
	rng := rand.New(rand.NewSource(7))
	engine := game.NewEngine(state.NewPlayerState(), game.Config{Provider: provider, RNG: rng})

	h := New(Config{
		Engine:    engine,
		Generator: market.NewGenerator(provider, rng),
		Interval:  time.Minute,
		BatchSize: 5,
	})
	h.rollBatch(context.Background(), market.Filter{}, false)

	listings, _ := h.Listings()
	assert.Len(t, listings, 5)
}

func TestListingsReturnsCopies(t *testing.T) {
	h := testHub(t, 1000)
	h.rollBatch(context.Background(), market.Filter{}, false)

	listings, _ := h.Listings()
	listings[0].Price = -1
	again, _ := h.Listings()
	assert.Greater(t, again[0].Price, float64(0))
}

func TestForceRefreshCharges(t *testing.T) {
	h := testHub(t, 10000)
	ctx := context.Background()

	require.NoError(t, h.ForceRefresh(ctx, market.Filter{}))
	assert.Equal(t, float64(9000), h.engine.Snapshot().Credits, "base refresh costs 1000")

	listings, _ := h.Listings()
	assert.Equal(t, market.BatchSize, len(listings))
}

func TestForceRefreshDeniedKeepsBatch(t *testing.T) {
	h := testHub(t, 500)
	ctx := context.Background()
	h.rollBatch(ctx, market.Filter{}, false)
	before, _ := h.Listings()

	err := h.ForceRefresh(ctx, market.Filter{})
	assert.Equal(t, game.ReasonInsufficientFunds, game.DenialReason(err))
	assert.Equal(t, float64(500), h.engine.Snapshot().Credits)

	after, _ := h.Listings()
	require.Equal(t, len(before), len(after))
	assert.Equal(t, before[0].UID, after[0].UID, "denied refresh leaves the batch alone")
}

func TestBuyRemovesListing(t *testing.T) {
	h := testHub(t, 1e9)
	ctx := context.Background()
	h.rollBatch(ctx, market.Filter{}, false)
	listings, _ := h.Listings()
	target := listings[0]

	bought, err := h.Buy(ctx, target.UID)
	require.NoError(t, err)
	assert.Equal(t, target.UID, bought.UID)

	remaining, _ := h.Listings()
	assert.Equal(t, len(listings)-1, len(remaining))
	for _, listing := range remaining {
		assert.NotEqual(t, target.UID, listing.UID)
	}
	snapshot := h.engine.Snapshot()
	_, owned := snapshot.Creature(target.UID)
	assert.True(t, owned)
}

func TestBuyDeniedKeepsListing(t *testing.T) {
	h := testHub(t, 0)
	ctx := context.Background()
	h.rollBatch(ctx, market.Filter{}, false)
	listings, _ := h.Listings()

	_, err := h.Buy(ctx, listings[0].UID)
	assert.Equal(t, game.ReasonInsufficientFunds, game.DenialReason(err))
	remaining, _ := h.Listings()
	assert.Equal(t, len(listings), len(remaining))
}

func TestBuyUnknownListing(t *testing.T) {
	h := testHub(t, 1000)
	_, err := h.Buy(context.Background(), "no-such-uid")
	assert.Equal(t, game.ReasonNotFound, game.DenialReason(err))
}

func TestRunStopsOnContextCancel(t *testing.T) {
	h := testHub(t, 1000)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	// The initial roll happens before the ticker starts.
	require.Eventually(t, func() bool {
		listings, _ := h.Listings()
		return len(listings) > 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run loop did not stop")
	}
}
