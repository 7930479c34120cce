package saves

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/state"
)

func TestDecodeSnapshotDefaults(t *testing.T) {
	player, err := DecodeSnapshot([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, catalog.StartingCredits, player.Credits)
	assert.Empty(t, player.Inventory)
	assert.Empty(t, player.EquippedIDs)
	assert.Empty(t, player.Items)
	assert.False(t, player.HasPickedStarter)
	assert.Zero(t, player.Stats)
}

func TestDecodeSnapshotPartial(t *testing.T) {
	player, err := DecodeSnapshot([]byte(`{"credits": 0, "hasPickedStarter": true}`))
	require.NoError(t, err)
	assert.Equal(t, float64(0), player.Credits, "explicit zero must not default")
	assert.True(t, player.HasPickedStarter)
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`not json`))
	assert.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	player := state.NewPlayerState()
	player.Credits = 123456.5
	player.HasPickedStarter = true
	player.Stats.RouletteWins = 7
	player.Stats.PeakBalance = 2e6
	player.Items = []catalog.ItemID{catalog.ItemMegaBracelet, catalog.ItemDNASplicers}
	player.CompletedAchievements = []string{"wealth_1m"}
	player.Inventory = []state.CreatureInstance{{
		UID:        "abc",
		SpeciesID:  6,
		Name:       "Charizard",
		Class:      catalog.ClassA,
		Bonus:      catalog.BonusRocket,
		Multiplier: 1.335,
		Price:      53400,
		Types:      []catalog.ElementType{catalog.TypeFire, catalog.TypeFlying},
		TotalStats: 534,
		Shiny:      true,
		HeldItem:   catalog.ItemCharizarditeX,
	}}
	player.EquippedIDs = []string{"abc"}

	payload, err := EncodeSnapshot(player)
	require.NoError(t, err)
	restored, err := DecodeSnapshot(payload)
	require.NoError(t, err)
	assert.Equal(t, player, restored)
}

func TestStoreSaveLoad(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	player, found, err := store.Load(ctx, "slot1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, catalog.StartingCredits, player.Credits)

	player.Credits = 9000
	player.HasPickedStarter = true
	require.NoError(t, store.Save(ctx, "slot1", player))

	restored, found, err := store.Load(ctx, "slot1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, float64(9000), restored.Credits)
	assert.True(t, restored.HasPickedStarter)

	// Upsert keeps a single row per slot.
	player.Credits = 500
	require.NoError(t, store.Save(ctx, "slot1", player))
	restored, _, err = store.Load(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, float64(500), restored.Credits)

	slots, err := store.Slots(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"slot1"}, slots)

	require.NoError(t, store.Delete(ctx, "slot1"))
	_, found, err = store.Load(ctx, "slot1")
	require.NoError(t, err)
	assert.False(t, found)
}
