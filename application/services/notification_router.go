// Package services contains application services that coordinate notification channels.
package services

import (
	"context"
	"fmt"

	"seyren-stride/domain/entities"
	"seyren-stride/domain/errors"
	"seyren-stride/domain/interfaces"
)

// Routing results reported to metrics.
const (
	RouteDelivered = "delivered"
	RouteFailed    = "failed"
	RouteNoChannel = "no_channel"
)

// notificationRouter implements the NotificationRouter interface
type notificationRouter struct {
	services []interfaces.NotificationService
	metrics  interfaces.RoutingMetrics
	logger   interfaces.Logger
}

// NewNotificationRouter creates a router over the given channels, consulted in order
func NewNotificationRouter(
	logger interfaces.Logger,
	metrics interfaces.RoutingMetrics,
	services ...interfaces.NotificationService,
) interfaces.NotificationRouter {
	return &notificationRouter{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}

// Route delivers through the first channel handling the subscription type.
// A failing or panicking channel is reported as an error and never escapes
// as a panic.
func (r *notificationRouter) Route(
	ctx context.Context,
	check entities.Check,
	subscription entities.Subscription,
	alerts []entities.Alert,
) (err error) {
	noChannel := false

	defer func() {
		if p := recover(); p != nil {
			err = errors.NewNotificationFailedError(
				string(subscription.Type),
				"channel panicked",
				fmt.Errorf("%v", p),
			)
		}
		switch {
		case noChannel:
			r.record(subscription.Type, RouteNoChannel)
		case err != nil:
			r.record(subscription.Type, RouteFailed)
			r.logger.Error("Notification failed",
				"check", check.ID,
				"subscriptionType", subscription.Type,
				"error", err)
		default:
			r.record(subscription.Type, RouteDelivered)
		}
	}()

	service := r.find(subscription.Type)
	if service == nil {
		noChannel = true
		return errors.NewDomainError(errors.ErrNoChannel, string(subscription.Type)).
			WithDetails("subscription", subscription.ID)
	}

	return service.SendNotification(ctx, check, subscription, alerts)
}

// find returns the first service able to handle the subscription type
func (r *notificationRouter) find(subscriptionType entities.SubscriptionType) interfaces.NotificationService {
	for _, s := range r.services {
		if s.CanHandle(subscriptionType) {
			return s
		}
	}
	return nil
}

func (r *notificationRouter) record(subscriptionType entities.SubscriptionType, result string) {
	if r.metrics != nil {
		r.metrics.IncrementRouted(string(subscriptionType), result)
	}
}
