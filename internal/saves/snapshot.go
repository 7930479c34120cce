package saves

import (
	"encoding/json"
	"fmt"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/state"
)

// snapshot mirrors state.PlayerState with pointer fields so missing keys
// in an old payload fall back to fresh-profile defaults instead of zero
// values. Saves written by any prior layout must keep loading.
type snapshot struct {
	Credits               *float64                 `json:"credits"`
	Inventory             []state.CreatureInstance `json:"inventory"`
	EquippedIDs           []string                 `json:"equippedIds"`
	Items                 []catalog.ItemID         `json:"items"`
	Badges                []string                 `json:"badges"`
	Stats                 *state.Stats             `json:"stats"`
	CompletedAchievements []string                 `json:"completedAchievements"`
	HasPickedStarter      *bool                    `json:"hasPickedStarter"`
}

// EncodeSnapshot serializes a profile for storage.
func EncodeSnapshot(player state.PlayerState) ([]byte, error) {
	return json.Marshal(player)
}

// DecodeSnapshot deserializes a stored profile, defaulting every missing
// field. An empty object decodes to a fresh profile.
func DecodeSnapshot(payload []byte) (state.PlayerState, error) {
	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return state.PlayerState{}, fmt.Errorf("decode snapshot: %w", err)
	}

	player := state.NewPlayerState()
	if snap.Credits != nil {
		player.Credits = *snap.Credits
	}
	if snap.Inventory != nil {
		player.Inventory = snap.Inventory
	}
	if snap.EquippedIDs != nil {
		player.EquippedIDs = snap.EquippedIDs
	}
	if snap.Items != nil {
		player.Items = snap.Items
	}
	if snap.Badges != nil {
		player.Badges = snap.Badges
	}
	if snap.Stats != nil {
		player.Stats = *snap.Stats
	}
	if snap.CompletedAchievements != nil {
		player.CompletedAchievements = snap.CompletedAchievements
	}
	if snap.HasPickedStarter != nil {
		player.HasPickedStarter = *snap.HasPickedStarter
	}
	return player, nil
}
