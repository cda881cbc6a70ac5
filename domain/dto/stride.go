// Package dto contains data transfer objects exchanged with the chat API and returned to callers.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Conversation is a room the integration participates in.
type Conversation struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Privacy string `json:"privacy,omitempty" yaml:"privacy,omitempty"`
	Topic   string `json:"topic,omitempty" yaml:"topic,omitempty"`
}

// ConversationList is the conversation listing returned by the site endpoint.
type ConversationList struct {
	Values []Conversation `json:"values"`
	Cursor string         `json:"cursor,omitempty"`
}

// UnmarshalJSON accepts either a bare array of conversations or an object with a values array.
func (l *ConversationList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var values []Conversation
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return fmt.Errorf("failed to decode conversation array: %w", err)
		}
		l.Values = values
		l.Cursor = ""
		return nil
	}

	type plain ConversationList
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return fmt.Errorf("failed to decode conversation listing: %w", err)
	}
	*l = ConversationList(p)
	return nil
}
