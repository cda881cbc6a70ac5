package services

import (
	"context"
	stderrors "errors"
	"testing"

	"seyren-stride/domain/entities"
	"seyren-stride/domain/errors"
	"seyren-stride/test/helpers"
	"seyren-stride/test/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routedCall struct {
	subscriptionType string
	result           string
}

type recordingMetrics struct {
	calls []routedCall
}

func (m *recordingMetrics) IncrementRouted(subscriptionType, result string) {
	m.calls = append(m.calls, routedCall{subscriptionType: subscriptionType, result: result})
}

func TestNotificationRouter_Route(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	ctx := helpers.TestContext(t)
	check := helpers.NewCheck("42", "CPU High", entities.AlertTypeError)
	alerts := helpers.NewAlerts(check, 1)

	t.Run("selects the channel that handles the type", func(t *testing.T) {
		slack := mocks.NewMockNotificationService(ctrl)
		stride := mocks.NewMockNotificationService(ctrl)
		metrics := &recordingMetrics{}
		subscription := helpers.NewStrideSubscription("A")

		slack.EXPECT().CanHandle(entities.SubscriptionTypeStride).Return(false)
		stride.EXPECT().CanHandle(entities.SubscriptionTypeStride).Return(true)
		stride.EXPECT().SendNotification(ctx, check, subscription, alerts).Return(nil)

		router := NewNotificationRouter(mockLogger, metrics, slack, stride)

		require.NoError(t, router.Route(ctx, check, subscription, alerts))
		assert.Equal(t, []routedCall{{"STRIDE", RouteDelivered}}, metrics.calls)
	})

	t.Run("no channel", func(t *testing.T) {
		stride := mocks.NewMockNotificationService(ctrl)
		metrics := &recordingMetrics{}
		subscription := entities.Subscription{Target: "ops@example.com", Type: entities.SubscriptionTypeEmail}

		stride.EXPECT().CanHandle(entities.SubscriptionTypeEmail).Return(false)

		router := NewNotificationRouter(mockLogger, metrics, stride)

		err := router.Route(ctx, check, subscription, alerts)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrNoChannel))
		assert.Equal(t, []routedCall{{"EMAIL", RouteNoChannel}}, metrics.calls)
	})

	t.Run("channel failure is returned", func(t *testing.T) {
		stride := mocks.NewMockNotificationService(ctrl)
		metrics := &recordingMetrics{}
		subscription := helpers.NewStrideSubscription("A")
		failure := errors.NewNotificationFailedError("stride", "could not obtain access token", assert.AnError)

		stride.EXPECT().CanHandle(gomock.Any()).Return(true)
		stride.EXPECT().SendNotification(ctx, check, subscription, alerts).Return(failure)

		router := NewNotificationRouter(mockLogger, metrics, stride)

		err := router.Route(ctx, check, subscription, alerts)
		assert.Equal(t, failure, err)
		assert.Equal(t, []routedCall{{"STRIDE", RouteFailed}}, metrics.calls)
	})

	t.Run("channel panic is recovered", func(t *testing.T) {
		stride := mocks.NewMockNotificationService(ctrl)
		subscription := helpers.NewStrideSubscription("A")

		stride.EXPECT().CanHandle(gomock.Any()).Return(true)
		stride.EXPECT().SendNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, entities.Check, entities.Subscription, []entities.Alert) error {
				panic("nil map")
			})

		router := NewNotificationRouter(mockLogger, nil, stride)

		var err error
		require.NotPanics(t, func() {
			err = router.Route(ctx, check, subscription, alerts)
		})
		var failed *errors.NotificationFailedError
		require.True(t, stderrors.As(err, &failed))
		assert.Contains(t, err.Error(), "nil map")
	})

	t.Run("panic while matching channels is recovered", func(t *testing.T) {
		stride := mocks.NewMockNotificationService(ctrl)
		subscription := helpers.NewStrideSubscription("A")
		metrics := &recordingMetrics{}

		stride.EXPECT().CanHandle(gomock.Any()).DoAndReturn(func(entities.SubscriptionType) bool {
			panic("channel not initialised")
		})

		router := NewNotificationRouter(mockLogger, metrics, stride)

		var err error
		require.NotPanics(t, func() {
			err = router.Route(ctx, check, subscription, alerts)
		})
		var failed *errors.NotificationFailedError
		require.True(t, stderrors.As(err, &failed))
		assert.Contains(t, err.Error(), "channel not initialised")
		assert.Equal(t, []routedCall{{"STRIDE", RouteFailed}}, metrics.calls)
	})
}
