package dto

import (
	"time"

	"seyren-stride/domain/entities"
)

// TargetFailure records why posting to one conversation failed.
type TargetFailure struct {
	Target string `json:"target" yaml:"target"`
	Error  string `json:"error" yaml:"error"`
}

// DispatchResult summarises one sendNotification invocation.
type DispatchResult struct {
	DispatchID string          `json:"dispatch_id" yaml:"dispatch_id"`
	CheckID    string          `json:"check_id" yaml:"check_id"`
	State      string          `json:"state" yaml:"state"`
	Skipped    bool            `json:"skipped" yaml:"skipped"`
	Delivered  []string        `json:"delivered,omitempty" yaml:"delivered,omitempty"`
	Failed     []TargetFailure `json:"failed,omitempty" yaml:"failed,omitempty"`
	Duration   time.Duration   `json:"duration" yaml:"duration"`
}

// Outcome classifies the result for metrics and logs.
func (r *DispatchResult) Outcome() string {
	switch {
	case r.Skipped:
		return OutcomeSkipped
	case len(r.Delivered) == 0:
		return OutcomeFailed
	case len(r.Failed) > 0:
		return OutcomePartial
	default:
		return OutcomeDelivered
	}
}

// Dispatch outcomes.
const (
	OutcomeDelivered = "delivered"
	OutcomePartial   = "partial"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
)

// NotificationRequest is the payload accepted by the HTTP routing adapter.
type NotificationRequest struct {
	Check        entities.Check        `json:"check"`
	Subscription entities.Subscription `json:"subscription"`
	Alerts       []entities.Alert      `json:"alerts"`
}
