// Package notifier provides notification service implementations.
package notifier

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"seyren-stride/domain/dto"
	"seyren-stride/domain/entities"
	"seyren-stride/domain/errors"
	"seyren-stride/domain/interfaces"
	"seyren-stride/infrastructure/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ChannelStride is the channel name used in errors, logs and metrics.
const ChannelStride = "stride"

// DefaultMaxConcurrency bounds parallel conversation posts within one dispatch.
const DefaultMaxConcurrency = 4

// StrideConfig holds the read-only settings of the Stride channel.
type StrideConfig struct {
	BaseURL              string
	AuthURL              string
	Audience             string
	ClientID             string
	ClientSecret         string
	CloudID              string
	PlatformBaseURL      string
	Notify               bool
	ResolveConversations bool
	MaxConcurrency       int
}

// StrideNotifier implements the NotificationService interface for Stride rooms.
type StrideNotifier struct {
	config      StrideConfig
	credentials interfaces.CredentialProvider
	resolver    interfaces.ConversationResolver
	composer    interfaces.MessageComposer
	httpClient  *http.Client
	metrics     interfaces.DispatchMetrics
	logger      interfaces.Logger
}

// NewStrideChannel builds a StrideNotifier and its collaborators from configuration.
func NewStrideChannel(
	config StrideConfig,
	httpClient *http.Client,
	metrics interfaces.DispatchMetrics,
	logger interfaces.Logger,
) *StrideNotifier {
	return NewStrideNotifier(
		config,
		NewStrideCredentialProvider(config.AuthURL, config.Audience, config.ClientID, config.ClientSecret, httpClient, logger),
		NewStrideConversationResolver(config.BaseURL, httpClient, logger),
		NewStrideMessageComposer(config.PlatformBaseURL),
		httpClient,
		metrics,
		logger,
	)
}

// NewStrideNotifier creates a new Stride notifier from explicit collaborators.
func NewStrideNotifier(
	config StrideConfig,
	credentials interfaces.CredentialProvider,
	resolver interfaces.ConversationResolver,
	composer interfaces.MessageComposer,
	httpClient *http.Client,
	metrics interfaces.DispatchMetrics,
	logger interfaces.Logger,
) *StrideNotifier {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = DefaultMaxConcurrency
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &StrideNotifier{
		config:      config,
		credentials: credentials,
		resolver:    resolver,
		composer:    composer,
		httpClient:  httpClient,
		metrics:     metrics,
		logger:      logger,
	}
}

// CanHandle reports whether the subscription type is STRIDE.
func (n *StrideNotifier) CanHandle(subscriptionType entities.SubscriptionType) bool {
	return subscriptionType == entities.SubscriptionTypeStride
}

// SendNotification posts the check state to every conversation of the subscription.
func (n *StrideNotifier) SendNotification(
	ctx context.Context,
	check entities.Check,
	subscription entities.Subscription,
	alerts []entities.Alert,
) error {
	_, err := n.Dispatch(ctx, check, subscription, alerts)
	return err
}

// Dispatch is SendNotification returning the per-conversation outcome.
// A check state without a color is skipped before any I/O, token exchange
// included. The result is never nil. The error, if any, is a *errors.NotificationFailedError.
func (n *StrideNotifier) Dispatch(
	ctx context.Context,
	check entities.Check,
	subscription entities.Subscription,
	alerts []entities.Alert,
) (*dto.DispatchResult, error) {
	start := time.Now()
	result := &dto.DispatchResult{
		DispatchID: uuid.NewString(),
		CheckID:    check.ID,
		State:      check.State.String(),
	}
	log := n.logger.WithFields(map[string]interface{}{
		"dispatch": result.DispatchID,
		"check":    check.ID,
		"state":    check.State.String(),
	})
	defer func() {
		result.Duration = time.Since(start)
		n.metrics.ObserveDispatch(ChannelStride, result.Outcome(), result.Duration.Seconds())
	}()

	targets := subscription.Targets()
	if len(targets) == 0 {
		log.Error("Stride subscription has no target conversation", "subscription", subscription.ID)
		return result, errors.NewNotificationFailedError(ChannelStride, "no conversation to notify", errors.ErrEmptyTarget)
	}

	message, color, ok := n.composer.Compose(check)
	if !ok {
		log.Warn("Did not send notification to Stride for check in this state")
		result.Skipped = true
		return result, nil
	}

	token, err := n.credentials.FetchAccessToken(ctx)
	if err != nil {
		n.metrics.IncrementTokenFailures(ChannelStride)
		log.WithError(err).Error("Could not obtain Stride access token")
		return result, errors.NewNotificationFailedError(ChannelStride, "could not obtain access token", err)
	}

	resolved := n.resolveTargets(ctx, log, token, targets, result)

	postErrs := n.postAll(ctx, log, token, message, color, resolved, result)

	if len(result.Delivered) == 0 {
		return result, errors.NewNotificationFailedError(
			ChannelStride,
			fmt.Sprintf("failed to post to all %d conversations", len(targets)),
			stderrors.Join(postErrs...),
		)
	}

	if len(result.Failed) > 0 {
		log.Warn("Stride notification partially delivered",
			"delivered", len(result.Delivered),
			"failed", len(result.Failed))
	} else {
		log.Info("Stride notification delivered", "conversations", len(result.Delivered), "alerts", len(alerts))
	}

	return result, nil
}

// resolveTargets translates targets into conversation ids when resolution is enabled.
// Unresolved targets are recorded as failures on result.
func (n *StrideNotifier) resolveTargets(
	ctx context.Context,
	log interfaces.Logger,
	token string,
	targets []string,
	result *dto.DispatchResult,
) []ResolvedTarget {
	passthrough := func() []ResolvedTarget {
		out := make([]ResolvedTarget, len(targets))
		for i, t := range targets {
			out[i] = ResolvedTarget{Target: t, ConversationID: t}
		}
		return out
	}

	if !n.config.ResolveConversations || n.resolver == nil {
		return passthrough()
	}

	conversations, err := n.resolver.ListConversations(ctx, n.config.CloudID, token)
	if err != nil {
		log.WithError(err).Warn("Could not list Stride conversations, posting to targets as given")
		return passthrough()
	}

	resolved, unresolved := ResolveTargets(conversations, targets)
	for _, t := range unresolved {
		log.Warn("Stride conversation not found", "target", t)
		result.Failed = append(result.Failed, dto.TargetFailure{
			Target: t,
			Error:  (&errors.PostError{ConversationID: t, Err: errors.ErrUnresolvedConversation}).Error(),
		})
	}
	return resolved
}

// postAll posts the message to every resolved conversation. Posts run in
// parallel and never cancel each other; outcomes are recorded on result in
// target order and the individual errors are returned.
func (n *StrideNotifier) postAll(
	ctx context.Context,
	log interfaces.Logger,
	token string,
	message string,
	color entities.MessageColor,
	targets []ResolvedTarget,
	result *dto.DispatchResult,
) []error {
	outcomes := make([]error, len(targets))

	var g errgroup.Group
	g.SetLimit(n.config.MaxConcurrency)
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			outcomes[i] = n.postMessage(ctx, token, target.ConversationID, message, color)
			return nil
		})
	}
	_ = g.Wait()

	// Failures recorded so far are unresolved targets.
	errs := make([]error, 0, len(result.Failed)+len(targets))
	for _, f := range result.Failed {
		errs = append(errs, &errors.PostError{ConversationID: f.Target, Err: errors.ErrUnresolvedConversation})
	}

	for i, target := range targets {
		if err := outcomes[i]; err != nil {
			n.metrics.IncrementPosts(ChannelStride, "failure")
			log.WithError(err).Warn("Error posting to Stride", "conversation", target.ConversationID)
			errs = append(errs, err)
			result.Failed = append(result.Failed, dto.TargetFailure{Target: target.Target, Error: err.Error()})
			continue
		}
		n.metrics.IncrementPosts(ChannelStride, "success")
		result.Delivered = append(result.Delivered, target.Target)
	}

	return errs
}

// postMessage sends one room notification.
func (n *StrideNotifier) postMessage(
	ctx context.Context,
	token string,
	conversationID string,
	message string,
	color entities.MessageColor,
) error {
	form := url.Values{}
	form.Set("message", message)
	form.Set("color", color.Wire())
	form.Set("message_format", "html")
	if n.config.Notify {
		form.Set("notify", "true")
	}

	endpoint := n.roomNotificationURL(conversationID, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &errors.PostError{ConversationID: conversationID, Err: scrubURLError(err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	n.logger.Debug("Posting to Stride", "conversation", conversationID, "color", color.Wire())

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return &errors.PostError{
			ConversationID: conversationID,
			Err:            &errors.TransportError{Operation: "room notification", Err: scrubURLError(err)},
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return &errors.PostError{
			ConversationID: conversationID,
			Err: &errors.APIError{
				Operation:  "room notification",
				StatusCode: resp.StatusCode,
				Body:       string(body),
			},
		}
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	return nil
}

// roomNotificationURL builds the notification endpoint for a conversation.
func (n *StrideNotifier) roomNotificationURL(conversationID, token string) string {
	return fmt.Sprintf("%s/v2/room/%s/notification?auth_token=%s",
		n.config.BaseURL,
		EscapeConversationID(conversationID),
		url.QueryEscape(token))
}

// EscapeConversationID form-encodes a conversation id for use as a path
// segment, writing spaces as %20 rather than +.
func EscapeConversationID(id string) string {
	return strings.ReplaceAll(url.QueryEscape(id), "+", "%20")
}

// scrubURLError hides the auth_token carried in request URLs.
func scrubURLError(err error) error {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: logger.RedactURL(urlErr.URL), Err: urlErr.Err}
	}
	return err
}

type noopMetrics struct{}

func (noopMetrics) ObserveDispatch(string, string, float64) {}
func (noopMetrics) IncrementPosts(string, string)           {}
func (noopMetrics) IncrementTokenFailures(string)           {}
