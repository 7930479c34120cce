package economy

import (
	"context"

	"pokecasino/server/logging"
)

const (
	// EventCreaturePurchased is emitted when a market listing is bought.
	EventCreaturePurchased logging.EventType = "economy.creature_purchased"
	// EventCreatureSold is emitted when an owned creature is sold back.
	EventCreatureSold logging.EventType = "economy.creature_sold"
	// EventItemPurchased is emitted when a catalog item is bought.
	EventItemPurchased logging.EventType = "economy.item_purchased"
	// EventItemSold is emitted when a bag item is sold back.
	EventItemSold logging.EventType = "economy.item_sold"
	// EventPurchaseDenied is emitted when a purchase attempt is rejected.
	EventPurchaseDenied logging.EventType = "economy.purchase_denied"
	// EventAchievementUnlocked is emitted when a milestone pays out.
	EventAchievementUnlocked logging.EventType = "economy.achievement_unlocked"
)

// TradePayload describes a completed purchase or sale.
type TradePayload struct {
	Subject string  `json:"subject"`
	Amount  float64 `json:"amount"`
	Balance float64 `json:"balance"`
}

// DeniedPayload describes why a purchase was rejected.
type DeniedPayload struct {
	Subject string `json:"subject"`
	Reason  string `json:"reason"`
}

// AchievementPayload describes an unlocked milestone.
type AchievementPayload struct {
	AchievementID string  `json:"achievementId"`
	Reward        float64 `json:"reward"`
}

// CreaturePurchased publishes a listing purchase event.
func CreaturePurchased(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload TradePayload, extra map[string]any) {
	publish(ctx, pub, EventCreaturePurchased, seq, actor, logging.SeverityInfo, payload, extra)
}

// CreatureSold publishes a creature sale event.
func CreatureSold(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload TradePayload, extra map[string]any) {
	publish(ctx, pub, EventCreatureSold, seq, actor, logging.SeverityInfo, payload, extra)
}

// ItemPurchased publishes an item purchase event.
func ItemPurchased(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload TradePayload, extra map[string]any) {
	publish(ctx, pub, EventItemPurchased, seq, actor, logging.SeverityInfo, payload, extra)
}

// ItemSold publishes an item sale event.
func ItemSold(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload TradePayload, extra map[string]any) {
	publish(ctx, pub, EventItemSold, seq, actor, logging.SeverityInfo, payload, extra)
}

// PurchaseDenied publishes a rejected purchase event.
func PurchaseDenied(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload DeniedPayload, extra map[string]any) {
	publish(ctx, pub, EventPurchaseDenied, seq, actor, logging.SeverityWarn, payload, extra)
}

// AchievementUnlocked publishes a milestone payout event.
func AchievementUnlocked(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload AchievementPayload, extra map[string]any) {
	publish(ctx, pub, EventAchievementUnlocked, seq, actor, logging.SeverityInfo, payload, extra)
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
		Category: logging.CategoryEconomy,
		Payload:  payload,
		Extra:    extra,
	})
}
