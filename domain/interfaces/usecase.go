// Package interfaces defines contracts and interfaces for the notification domain layer.
// It contains interfaces for notification channels, routing, use cases, and logging.
package interfaces

import (
	"context"

	"seyren-stride/domain/dto"
	"seyren-stride/domain/entities"
)

// NotificationRouter selects the channel for a subscription and delivers through it.
type NotificationRouter interface {
	// Route sends the notification through the first channel that handles the subscription type.
	Route(
		ctx context.Context,
		check entities.Check,
		subscription entities.Subscription,
		alerts []entities.Alert,
	) error
}

// NotifyCheckUseCase handles the business logic for notifying a single subscription.
type NotifyCheckUseCase interface {
	// Execute validates the request and routes it to a channel.
	Execute(ctx context.Context, params NotifyCheckParams) error
}

// NotifyCheckParams represents parameters for notifying a subscription.
type NotifyCheckParams struct {
	Check        entities.Check
	Subscription entities.Subscription
	Alerts       []entities.Alert
}

// NotifyCheckParamsFromRequest converts the HTTP payload into use case parameters.
func NotifyCheckParamsFromRequest(req dto.NotificationRequest) NotifyCheckParams {
	return NotifyCheckParams{
		Check:        req.Check,
		Subscription: req.Subscription,
		Alerts:       req.Alerts,
	}
}
