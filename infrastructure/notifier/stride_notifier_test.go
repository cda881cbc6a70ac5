package notifier

import (
	stderrors "errors"
	"net/http"
	"strings"
	"testing"

	"seyren-stride/domain/dto"
	"seyren-stride/domain/entities"
	"seyren-stride/domain/errors"
	"seyren-stride/test/helpers"
	"seyren-stride/test/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChannel(server *helpers.StrideServer, ctrl *gomock.Controller, mutate func(*StrideConfig)) *StrideNotifier {
	cfg := StrideConfig{
		BaseURL:         server.URL,
		AuthURL:         server.TokenURL(),
		ClientID:        "client-id",
		ClientSecret:    "client-secret",
		CloudID:         "cloud-1",
		PlatformBaseURL: "https://seyren.example",
		Notify:          true,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewStrideChannel(cfg, newTestHTTPClient(), nil, newQuietLogger(ctrl))
}

func TestStrideNotifier_CanHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	n := NewStrideNotifier(StrideConfig{}, nil, nil, NewStrideMessageComposer(""), nil, nil, newQuietLogger(ctrl))

	for _, subscriptionType := range entities.AllSubscriptionTypes {
		t.Run(string(subscriptionType), func(t *testing.T) {
			assert.Equal(t, subscriptionType == entities.SubscriptionTypeStride, n.CanHandle(subscriptionType))
		})
	}
}

func TestStrideNotifier_SendNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := helpers.TestContext(t)
	check := helpers.NewCheck("42", "CPU High", entities.AlertTypeError)

	t.Run("posts to every conversation", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		n := newTestChannel(server, ctrl, nil)

		result, err := n.Dispatch(ctx, check, helpers.NewStrideSubscription("A, B"), helpers.NewAlerts(check, 2))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, result.Delivered)
		assert.Empty(t, result.Failed)
		assert.Equal(t, dto.OutcomeDelivered, result.Outcome())
		assert.NotEmpty(t, result.DispatchID)

		posts := server.Posts()
		require.Len(t, posts, 2)
		for _, post := range posts {
			assert.Equal(t, "T", post.AuthToken)
			assert.Equal(t, "application/x-www-form-urlencoded", post.ContentType)
			assert.Equal(t, "red", post.Form.Get("color"))
			assert.Equal(t, "html", post.Form.Get("message_format"))
			assert.Equal(t, "true", post.Form.Get("notify"))
			assert.Equal(t,
				"Check <a href=https://seyren.example/#/checks/42>CPU High</a> has entered its ERROR state.",
				post.Form.Get("message"))
		}
		assert.Len(t, server.TokenRequests(), 1)
	})

	t.Run("notify flag omitted when disabled", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		n := newTestChannel(server, ctrl, func(c *StrideConfig) { c.Notify = false })

		require.NoError(t, n.SendNotification(ctx, check, helpers.NewStrideSubscription("A"), nil))

		posts := server.Posts()
		require.Len(t, posts, 1)
		_, present := posts[0].Form["notify"]
		assert.False(t, present)
	})

	t.Run("partial failure succeeds and records the failed target", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		server.FailConversations["B"] = true
		n := newTestChannel(server, ctrl, nil)

		result, err := n.Dispatch(ctx, check, helpers.NewStrideSubscription("A,B,C"), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "C"}, result.Delivered)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, "B", result.Failed[0].Target)
		assert.Contains(t, result.Failed[0].Error, "500")
		assert.Equal(t, dto.OutcomePartial, result.Outcome())
		assert.Len(t, server.Posts(), 3)
	})

	t.Run("total failure returns notification failed error", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		server.FailConversations["A"] = true
		server.FailConversations["B"] = true
		n := newTestChannel(server, ctrl, nil)

		err := n.SendNotification(ctx, check, helpers.NewStrideSubscription("A,B"), nil)
		require.Error(t, err)

		var failed *errors.NotificationFailedError
		require.True(t, stderrors.As(err, &failed))
		assert.Equal(t, ChannelStride, failed.Channel)

		var postErr *errors.PostError
		require.True(t, stderrors.As(err, &postErr))
		assert.True(t, stderrors.Is(err, errors.ErrUnexpectedStatus))
		assert.NotContains(t, err.Error(), "auth_token=T")
	})

	t.Run("dropped connection fails only that conversation", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		server.DropConversations["B"] = true
		n := newTestChannel(server, ctrl, nil)

		result, err := n.Dispatch(ctx, check, helpers.NewStrideSubscription("A,B"), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, result.Delivered)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, "B", result.Failed[0].Target)
		assert.Contains(t, result.Failed[0].Error, "transport error during room notification")
		assert.Contains(t, result.Failed[0].Error, "auth_token=%5BREDACTED%5D")
		assert.NotContains(t, result.Failed[0].Error, "auth_token=T")
		assert.Equal(t, dto.OutcomePartial, result.Outcome())
	})

	t.Run("dropped connection on every conversation hides the token", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		server.DropConversations["B"] = true
		n := newTestChannel(server, ctrl, nil)

		err := n.SendNotification(ctx, check, helpers.NewStrideSubscription("B"), nil)
		require.Error(t, err)

		var failed *errors.NotificationFailedError
		require.True(t, stderrors.As(err, &failed))
		var transportErr *errors.TransportError
		require.True(t, stderrors.As(err, &transportErr))
		var postErr *errors.PostError
		require.True(t, stderrors.As(err, &postErr))
		assert.Equal(t, "B", postErr.ConversationID)

		assert.Contains(t, err.Error(), "auth_token=%5BREDACTED%5D")
		assert.NotContains(t, err.Error(), "auth_token=T")
	})

	t.Run("unknown state is skipped even when the token endpoint is down", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		server.TokenStatus = http.StatusServiceUnavailable
		n := newTestChannel(server, ctrl, nil)

		result, err := n.Dispatch(ctx, helpers.NewCheck("1", "Mem", entities.AlertTypeUnknown), helpers.NewStrideSubscription("A"), nil)
		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Empty(t, server.TokenRequests())
	})

	t.Run("space in conversation id is encoded as %20", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		n := newTestChannel(server, ctrl, nil)

		require.NoError(t, n.SendNotification(ctx, check, helpers.NewStrideSubscription("dev monitoring"), nil))

		posts := server.Posts()
		require.Len(t, posts, 1)
		assert.True(t, strings.HasPrefix(posts[0].RequestURI, "/v2/room/dev%20monitoring/notification?"))
		assert.NotContains(t, posts[0].RequestURI, "+")
		assert.Equal(t, "dev monitoring", posts[0].ConversationID)
	})

	t.Run("unknown state is skipped without network calls", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		n := newTestChannel(server, ctrl, nil)

		result, err := n.Dispatch(ctx, helpers.NewCheck("1", "Mem", entities.AlertTypeUnknown), helpers.NewStrideSubscription("A"), nil)
		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Equal(t, dto.OutcomeSkipped, result.Outcome())
		assert.Empty(t, server.TokenRequests())
		assert.Empty(t, server.Posts())
	})

	t.Run("token failure aborts before posting", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		server.TokenStatus = http.StatusUnauthorized
		n := newTestChannel(server, ctrl, nil)

		err := n.SendNotification(ctx, check, helpers.NewStrideSubscription("A,B"), nil)
		require.Error(t, err)

		var failed *errors.NotificationFailedError
		require.True(t, stderrors.As(err, &failed))
		var authErr *errors.AuthError
		require.True(t, stderrors.As(err, &authErr))
		assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
		assert.Empty(t, server.Posts())
	})

	t.Run("empty target is a configuration failure", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		n := newTestChannel(server, ctrl, nil)

		err := n.SendNotification(ctx, check, helpers.NewStrideSubscription(" , "), nil)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrEmptyTarget))
		assert.Empty(t, server.TokenRequests())
	})

	t.Run("resolves conversation names", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		server.Conversations = []map[string]string{{"id": "c-1", "name": "dev-monitoring"}}
		n := newTestChannel(server, ctrl, func(c *StrideConfig) { c.ResolveConversations = true })

		result, err := n.Dispatch(ctx, check, helpers.NewStrideSubscription("dev-monitoring,unknown"), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"dev-monitoring"}, result.Delivered)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, "unknown", result.Failed[0].Target)
		assert.Equal(t, []string{"Bearer T"}, server.AuthorizationHeaders())

		posts := server.Posts()
		require.Len(t, posts, 1)
		assert.Equal(t, "c-1", posts[0].ConversationID)
	})

	t.Run("listing failure falls back to raw targets", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		server.ConversationStatus = http.StatusForbidden
		n := newTestChannel(server, ctrl, func(c *StrideConfig) { c.ResolveConversations = true })

		result, err := n.Dispatch(ctx, check, helpers.NewStrideSubscription("c-7"), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"c-7"}, result.Delivered)
	})

	t.Run("all targets unresolved fails", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		n := newTestChannel(server, ctrl, func(c *StrideConfig) { c.ResolveConversations = true })

		err := n.SendNotification(ctx, check, helpers.NewStrideSubscription("nowhere"), nil)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrUnresolvedConversation))
		assert.Empty(t, server.Posts())
	})
}

func TestStrideNotifier_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := helpers.TestContext(t)
	check := helpers.NewCheck("42", "CPU High", entities.AlertTypeWarn)

	t.Run("partial dispatch", func(t *testing.T) {
		server := helpers.NewStrideServer(t)
		server.FailConversations["B"] = true

		metrics := mocks.NewMockDispatchMetrics(ctrl)
		metrics.EXPECT().IncrementPosts(ChannelStride, "success").Times(1)
		metrics.EXPECT().IncrementPosts(ChannelStride, "failure").Times(1)
		metrics.EXPECT().ObserveDispatch(ChannelStride, dto.OutcomePartial, gomock.Any()).Times(1)

		cfg := StrideConfig{BaseURL: server.URL, AuthURL: server.TokenURL(), PlatformBaseURL: "https://seyren.example"}
		n := NewStrideChannel(cfg, newTestHTTPClient(), metrics, newQuietLogger(ctrl))

		require.NoError(t, n.SendNotification(ctx, check, helpers.NewStrideSubscription("A,B"), nil))
	})

	t.Run("token failure", func(t *testing.T) {
		credentials := mocks.NewMockCredentialProvider(ctrl)
		credentials.EXPECT().FetchAccessToken(gomock.Any()).Return("", &errors.AuthError{StatusCode: http.StatusForbidden})

		metrics := mocks.NewMockDispatchMetrics(ctrl)
		metrics.EXPECT().IncrementTokenFailures(ChannelStride).Times(1)
		metrics.EXPECT().ObserveDispatch(ChannelStride, dto.OutcomeFailed, gomock.Any()).Times(1)

		n := NewStrideNotifier(
			StrideConfig{BaseURL: "http://127.0.0.1:1"},
			credentials,
			mocks.NewMockConversationResolver(ctrl),
			NewStrideMessageComposer("https://seyren.example"),
			newTestHTTPClient(),
			metrics,
			newQuietLogger(ctrl),
		)

		err := n.SendNotification(ctx, check, helpers.NewStrideSubscription("A"), nil)
		require.Error(t, err)
	})
}

func TestEscapeConversationID(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{id: "ops", expected: "ops"},
		{id: "dev monitoring", expected: "dev%20monitoring"},
		{id: "a+b", expected: "a%2Bb"},
		{id: "a/b", expected: "a%2Fb"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeConversationID(tt.id))
		})
	}
}
