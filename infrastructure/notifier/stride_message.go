package notifier

import (
	"fmt"
	"html"
	"strings"

	"seyren-stride/domain/entities"
	"seyren-stride/domain/interfaces"
)

// strideMessageComposer implements the MessageComposer interface.
type strideMessageComposer struct {
	platformBaseURL string
}

// NewStrideMessageComposer creates a composer that links back to the given Seyren base URL.
func NewStrideMessageComposer(platformBaseURL string) interfaces.MessageComposer {
	return &strideMessageComposer{
		platformBaseURL: strings.TrimRight(platformBaseURL, "/"),
	}
}

// Compose renders the HTML message for a check.
func (c *strideMessageComposer) Compose(check entities.Check) (string, entities.MessageColor, bool) {
	color, ok := SeverityColor(check.State)
	if !ok {
		return "", "", false
	}

	body := fmt.Sprintf("Check <a href=%s/#/checks/%s>%s</a> has entered its %s state.",
		c.platformBaseURL,
		check.ID,
		html.EscapeString(check.Name),
		check.State)

	return body, color, true
}

// SeverityColor maps a check state to its message color.
// UNKNOWN and unrecognised states have no color and are not notified.
func SeverityColor(state entities.AlertType) (entities.MessageColor, bool) {
	switch state {
	case entities.AlertTypeError:
		return entities.MessageColorRed, true
	case entities.AlertTypeWarn:
		return entities.MessageColorYellow, true
	case entities.AlertTypeOK:
		return entities.MessageColorGreen, true
	case entities.AlertTypeUnknown:
		return "", false
	default:
		return "", false
	}
}
