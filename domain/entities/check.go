// Package entities contains the core domain entities for the Stride notification channel.
// It defines checks, subscriptions, alerts and the message colors understood by the chat API.
package entities

import "strings"

// AlertType is the state a check can be in.
type AlertType string

const (
	// AlertTypeOK indicates the check is healthy.
	AlertTypeOK AlertType = "OK"
	// AlertTypeWarn indicates the check crossed its warning threshold.
	AlertTypeWarn AlertType = "WARN"
	// AlertTypeError indicates the check crossed its error threshold.
	AlertTypeError AlertType = "ERROR"
	// AlertTypeUnknown indicates the check state could not be determined.
	AlertTypeUnknown AlertType = "UNKNOWN"
)

// ParseAlertType parses a state name case-insensitively.
// Anything unrecognised maps to AlertTypeUnknown.
func ParseAlertType(s string) AlertType {
	switch AlertType(strings.ToUpper(strings.TrimSpace(s))) {
	case AlertTypeOK:
		return AlertTypeOK
	case AlertTypeWarn:
		return AlertTypeWarn
	case AlertTypeError:
		return AlertTypeError
	default:
		return AlertTypeUnknown
	}
}

// String returns the state name.
func (a AlertType) String() string {
	return string(a)
}

// Check is an immutable snapshot of a monitored check.
type Check struct {
	ID    string    `json:"id" yaml:"id"`
	Name  string    `json:"name" yaml:"name"`
	State AlertType `json:"state" yaml:"state"`
}
