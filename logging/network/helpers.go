package network

import (
	"context"

	"pokecasino/server/logging"
)

const (
	// EventSessionOpened is emitted when a websocket session attaches.
	EventSessionOpened logging.EventType = "network.session_opened"
	// EventSessionClosed is emitted when a websocket session detaches.
	EventSessionClosed logging.EventType = "network.session_closed"
	// EventCommandRejected is emitted when a client command fails to parse
	// or names an unknown operation.
	EventCommandRejected logging.EventType = "network.command_rejected"
)

// SessionPayload captures session lifecycle details.
type SessionPayload struct {
	RemoteAddr string `json:"remoteAddr,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// CommandRejectedPayload describes a discarded client command.
type CommandRejectedPayload struct {
	Command string `json:"command"`
	Reason  string `json:"reason"`
}

// SessionOpened publishes a session attach event.
func SessionOpened(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload SessionPayload, extra map[string]any) {
	publish(ctx, pub, EventSessionOpened, seq, actor, logging.SeverityInfo, payload, extra)
}

// SessionClosed publishes a session detach event.
func SessionClosed(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload SessionPayload, extra map[string]any) {
	publish(ctx, pub, EventSessionClosed, seq, actor, logging.SeverityInfo, payload, extra)
}

// CommandRejected publishes a discarded command event.
func CommandRejected(ctx context.Context, pub logging.Publisher, seq uint64, actor logging.EntityRef, payload CommandRejectedPayload, extra map[string]any) {
	publish(ctx, pub, EventCommandRejected, seq, actor, logging.SeverityWarn, payload, extra)
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
		Category: logging.CategorySystem,
		Payload:  payload,
		Extra:    extra,
	})
}
