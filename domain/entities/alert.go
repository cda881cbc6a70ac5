package entities

import "time"

// Alert is a single state change recorded for a check.
type Alert struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	CheckID   string    `json:"check_id,omitempty" yaml:"check_id,omitempty"`
	Target    string    `json:"target,omitempty" yaml:"target,omitempty"`
	Value     float64   `json:"value" yaml:"value"`
	FromType  AlertType `json:"from_type" yaml:"from_type"`
	ToType    AlertType `json:"to_type" yaml:"to_type"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}
