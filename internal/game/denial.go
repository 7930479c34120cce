package game

import (
	"errors"
	"fmt"
)

// Reason classifies why an operation was rejected. Every rejection leaves
// state untouched; the reason is surfaced to the client for messaging.
type Reason string

const (
	ReasonInsufficientFunds Reason = "insufficient_funds"
	ReasonMissingItem       Reason = "missing_item"
	ReasonNotFound          Reason = "not_found"
	ReasonNoTransition      Reason = "no_transition"
	ReasonBusy              Reason = "busy"
	ReasonEquipLimit        Reason = "equip_limit"
	ReasonIncompatible      Reason = "incompatible"
	ReasonAlreadyPicked     Reason = "already_picked"
	ReasonInvalidWager      Reason = "invalid_wager"
	ReasonUnavailable       Reason = "unavailable"
)

// Denial is the error returned for every rejected operation.
type Denial struct {
	Reason  Reason
	Subject string
}

func (d *Denial) Error() string {
	if d.Subject == "" {
		return string(d.Reason)
	}
	return fmt.Sprintf("%s: %s", d.Reason, d.Subject)
}

func deny(reason Reason, subject string) *Denial {
	return &Denial{Reason: reason, Subject: subject}
}

// DenialReason extracts the reason from an error, or empty when the error
// is not a denial.
func DenialReason(err error) Reason {
	var denial *Denial
	if errors.As(err, &denial) {
		return denial.Reason
	}
	return ""
}
