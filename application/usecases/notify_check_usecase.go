// Package usecases contains application use cases that orchestrate business logic.
// It implements the primary operation of delivering a check notification to its subscription.
package usecases

import (
	"context"

	"seyren-stride/domain/entities"
	"seyren-stride/domain/errors"
	"seyren-stride/domain/interfaces"
)

// notifyCheckUseCase implements the NotifyCheckUseCase interface.
type notifyCheckUseCase struct {
	router interfaces.NotificationRouter
	logger interfaces.Logger
}

// NewNotifyCheckUseCase creates a new notify check use case.
func NewNotifyCheckUseCase(
	router interfaces.NotificationRouter,
	logger interfaces.Logger,
) interfaces.NotifyCheckUseCase {
	return &notifyCheckUseCase{
		router: router,
		logger: logger,
	}
}

// Execute validates the request and routes it to the matching channel.
func (uc *notifyCheckUseCase) Execute(ctx context.Context, params interfaces.NotifyCheckParams) error {
	if err := uc.validateParams(params); err != nil {
		return err
	}

	uc.logger.Info("Notifying subscription",
		"check", params.Check.ID,
		"state", params.Check.State,
		"subscriptionType", params.Subscription.Type,
		"alerts", len(params.Alerts))

	return uc.router.Route(ctx, params.Check, params.Subscription, params.Alerts)
}

// validateParams validates the notify parameters.
func (uc *notifyCheckUseCase) validateParams(params interfaces.NotifyCheckParams) error {
	validationErr := &errors.ValidationError{}

	if params.Check.ID == "" {
		validationErr.AddFieldError("check.id", "check id is required")
	}

	if params.Check.Name == "" {
		validationErr.AddFieldError("check.name", "check name is required")
	}

	if _, ok := entities.ParseSubscriptionType(string(params.Subscription.Type)); !ok {
		validationErr.AddFieldError("subscription.type", "unknown subscription type: "+string(params.Subscription.Type))
	}

	if validationErr.HasErrors() {
		return validationErr
	}

	return nil
}
