package transitions

import (
	"context"

	"pokecasino/server/logging"
)

const (
	// EventEvolved is emitted when an instance changes identity through
	// any transition path.
	EventEvolved logging.EventType = "transition.evolved"
	// EventFused is emitted when a fusion consumes a partner instance.
	EventFused logging.EventType = "transition.fused"
	// EventDenied is emitted when a transition attempt is rejected.
	EventDenied logging.EventType = "transition.denied"
)

// EvolvedPayload describes a completed identity change.
type EvolvedPayload struct {
	Path   string  `json:"path"`
	FromID int     `json:"fromId"`
	ToID   int     `json:"toId"`
	Cost   float64 `json:"cost"`
}

// FusedPayload describes a completed fusion.
type FusedPayload struct {
	PartnerUID string  `json:"partnerUid"`
	ResultID   int     `json:"resultId"`
	Cost       float64 `json:"cost"`
}

// DeniedPayload describes a rejected transition.
type DeniedPayload struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Evolved publishes an identity change event.
func Evolved(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload EvolvedPayload, extra map[string]any) {
	publish(ctx, pub, EventEvolved, seq, actor, logging.SeverityInfo, payload, extra)
}

// Fused publishes a fusion event.
func Fused(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload FusedPayload, extra map[string]any) {
	publish(ctx, pub, EventFused, seq, actor, logging.SeverityInfo, payload, extra)
}

// Denied publishes a rejected transition event.
func Denied(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload DeniedPayload, extra map[string]any) {
	publish(ctx, pub, EventDenied, seq, actor, logging.SeverityWarn, payload, extra)
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
		Category: logging.CategoryTransition,
		Payload:  payload,
		Extra:    extra,
	})
}
