// Package interfaces defines the contracts for domain services.
package interfaces

import (
	"context"

	"seyren-stride/domain/dto"
	"seyren-stride/domain/entities"
)

// NotificationService delivers check state changes over one channel type.
type NotificationService interface {
	// CanHandle reports whether the service serves the given subscription type.
	CanHandle(subscriptionType entities.SubscriptionType) bool

	// SendNotification notifies the subscription's targets about the check.
	// Failures are returned as *errors.NotificationFailedError.
	SendNotification(
		ctx context.Context,
		check entities.Check,
		subscription entities.Subscription,
		alerts []entities.Alert,
	) error
}

// CredentialProvider obtains a short-lived access token.
type CredentialProvider interface {
	// FetchAccessToken performs a single token exchange.
	FetchAccessToken(ctx context.Context) (string, error)
}

// ConversationResolver looks up the conversations the integration belongs to.
type ConversationResolver interface {
	// ListConversations returns every conversation visible on the site.
	ListConversations(ctx context.Context, cloudID, accessToken string) ([]dto.Conversation, error)
}

// MessageComposer renders the room message for a check.
type MessageComposer interface {
	// Compose returns the message body and color. ok is false when the
	// check state is not meant to notify.
	Compose(check entities.Check) (body string, color entities.MessageColor, ok bool)
}

// DispatchMetrics records notification outcomes.
type DispatchMetrics interface {
	// ObserveDispatch records one finished dispatch.
	ObserveDispatch(channel, outcome string, seconds float64)

	// IncrementPosts records one conversation post.
	IncrementPosts(channel, result string)

	// IncrementTokenFailures records a failed token exchange.
	IncrementTokenFailures(channel string)
}

// RoutingMetrics records routing decisions.
type RoutingMetrics interface {
	// IncrementRouted records one routed notification.
	IncrementRouted(subscriptionType, result string)
}
