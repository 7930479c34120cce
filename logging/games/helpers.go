package games

import (
	"context"

	"pokecasino/server/logging"
)

const (
	// EventWagerPlaced is emitted when a stake is deducted.
	EventWagerPlaced logging.EventType = "game.wager_placed"
	// EventWagerSettled is emitted when a round resolves, win or lose.
	EventWagerSettled logging.EventType = "game.wager_settled"
	// EventWagerDenied is emitted when a stake is rejected.
	EventWagerDenied logging.EventType = "game.wager_denied"
)

// WagerPayload describes a placed stake.
type WagerPayload struct {
	Game    string  `json:"game"`
	Wager   float64 `json:"wager"`
	Bonus   float64 `json:"bonus"`
	Balance float64 `json:"balance"`
}

// SettlePayload describes a resolved round.
type SettlePayload struct {
	Game    string  `json:"game"`
	Wager   float64 `json:"wager"`
	Payout  float64 `json:"payout"`
	Balance float64 `json:"balance"`
}

// DeniedPayload describes a rejected stake.
type DeniedPayload struct {
	Game   string  `json:"game"`
	Wager  float64 `json:"wager"`
	Reason string  `json:"reason"`
}

// WagerPlaced publishes a stake event.
func WagerPlaced(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload WagerPayload, extra map[string]any) {
	publish(ctx, pub, EventWagerPlaced, seq, actor, logging.SeverityInfo, payload, extra)
}

// WagerSettled publishes a round settlement event.
func WagerSettled(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload SettlePayload, extra map[string]any) {
	publish(ctx, pub, EventWagerSettled, seq, actor, logging.SeverityInfo, payload, extra)
}

// WagerDenied publishes a rejected stake event.
func WagerDenied(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload DeniedPayload, extra map[string]any) {
	publish(ctx, pub, EventWagerDenied, seq, actor, logging.SeverityWarn, payload, extra)
}

func publish(ctx context.Context, pub logging.Publisher, eventType logging.EventType, seq uint64, actor logging.EntityRef, severity logging.Severity, payload any, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     eventType,
		Seq:      seq,
		Actor:    actor,
		Severity: severity,
		Category: logging.CategoryGame,
		Payload:  payload,
		Extra:    extra,
	})
}
