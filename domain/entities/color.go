package entities

import "strings"

// MessageColor is the background color of a room notification.
type MessageColor string

// Colors accepted by the room notification endpoint.
const (
	MessageColorYellow MessageColor = "YELLOW"
	MessageColorRed    MessageColor = "RED"
	MessageColorGreen  MessageColor = "GREEN"
	MessageColorPurple MessageColor = "PURPLE"
	MessageColorRandom MessageColor = "RANDOM"
)

// Wire returns the lower-cased form expected by the API.
func (c MessageColor) Wire() string {
	return strings.ToLower(string(c))
}
