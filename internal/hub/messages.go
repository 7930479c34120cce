package hub

import (
	"pokecasino/server/internal/state"
)

// StateMessage is the full snapshot pushed to every session after any
// commit and on each market roll.
type StateMessage struct {
	Type       string                   `json:"type"`
	Player     state.PlayerState        `json:"player"`
	Listings   []state.CreatureInstance `json:"listings"`
	RefreshAt  int64                    `json:"refreshAt"`
	ServerTime int64                    `json:"serverTime"`
}
