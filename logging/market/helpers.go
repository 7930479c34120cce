package market

import (
	"context"

	"pokecasino/server/logging"
)

const (
	// EventBatchGenerated is emitted when a new listing batch is published.
	EventBatchGenerated logging.EventType = "market.batch_generated"
	// EventBatchShort is emitted when the attempt budget left a batch
	// under its requested size.
	EventBatchShort logging.EventType = "market.batch_short"
	// EventRefreshCharged is emitted when a forced refresh deducts credits.
	EventRefreshCharged logging.EventType = "market.refresh_charged"
	// EventRefreshDenied is emitted when a forced refresh is rejected.
	EventRefreshDenied logging.EventType = "market.refresh_denied"
)

// BatchPayload describes a generated batch.
type BatchPayload struct {
	Requested int  `json:"requested"`
	Produced  int  `json:"produced"`
	Forced    bool `json:"forced"`
}

// RefreshPayload describes a charged refresh.
type RefreshPayload struct {
	Cost    float64 `json:"cost"`
	Balance float64 `json:"balance"`
}

// DeniedPayload describes a rejected refresh.
type DeniedPayload struct {
	Cost   float64 `json:"cost"`
	Reason string  `json:"reason"`
}

// BatchGenerated publishes a batch publication event.
func BatchGenerated(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload BatchPayload, extra map[string]any) {
	publish(ctx, pub, EventBatchGenerated, seq, actor, logging.SeverityInfo, payload, extra)
}

// BatchShort publishes a warning for an under-filled batch.
func BatchShort(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload BatchPayload, extra map[string]any) {
	publish(ctx, pub, EventBatchShort, seq, actor, logging.SeverityWarn, payload, extra)
}

// RefreshCharged publishes a forced refresh charge event.
func RefreshCharged(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload RefreshPayload, extra map[string]any) {
	publish(ctx, pub, EventRefreshCharged, seq, actor, logging.SeverityInfo, payload, extra)
}

// RefreshDenied publishes a rejected refresh event.
func RefreshDenied(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload DeniedPayload, extra map[string]any) {
	publish(ctx, pub, EventRefreshDenied, seq, actor, logging.SeverityWarn, payload, extra)
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
		Category: logging.CategoryMarket,
		Payload:  payload,
		Extra:    extra,
	})
}
