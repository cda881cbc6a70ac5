package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"seyren-stride/domain/dto"
	"seyren-stride/domain/errors"
	"seyren-stride/domain/interfaces"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// strideConversationResolver implements the ConversationResolver interface.
type strideConversationResolver struct {
	baseURL    string
	httpClient *http.Client
	logger     interfaces.Logger
}

// NewStrideConversationResolver creates a resolver against the given API base URL.
func NewStrideConversationResolver(
	baseURL string,
	httpClient *http.Client,
	logger interfaces.Logger,
) interfaces.ConversationResolver {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &strideConversationResolver{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// ListConversations fetches the conversations the integration is a member of.
func (r *strideConversationResolver) ListConversations(
	ctx context.Context,
	cloudID string,
	accessToken string,
) ([]dto.Conversation, error) {
	endpoint := fmt.Sprintf("%s/site/%s/conversation", r.baseURL, url.PathEscape(cloudID))

	r.logger.Info("Getting list of conversations", "cloudID", cloudID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &errors.TransportError{Operation: "conversation listing", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &errors.TransportError{Operation: "conversation listing", Err: err}
	}

	r.logger.Debug("Conversation list response received", "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Could not get list of conversations",
			"status", resp.StatusCode,
			"body", string(body))
		return nil, &errors.APIError{
			Operation:  "conversation listing",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var list dto.ConversationList
	if err := json.Unmarshal(body, &list); err != nil {
		r.logger.Error("Could not parse list of conversations", "error", err)
		return nil, &errors.APIError{
			Operation:  "conversation listing",
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Err:        fmt.Errorf("%w: %v", errors.ErrMalformedResponse, err),
		}
	}

	return list.Values, nil
}

// ResolvedTarget pairs a subscription target with the conversation id it addresses.
type ResolvedTarget struct {
	Target         string
	ConversationID string
}

// ResolveTargets translates subscription targets into conversation ids.
// A target equal to a conversation id is kept; otherwise it is matched
// against conversation names ignoring case. Unmatched targets are returned
// separately, in input order.
func ResolveTargets(conversations []dto.Conversation, targets []string) ([]ResolvedTarget, []string) {
	byID := make(map[string]struct{}, len(conversations))
	byName := make(map[string]string, len(conversations))
	for _, c := range conversations {
		byID[c.ID] = struct{}{}
		name := strings.ToLower(c.Name)
		if _, dup := byName[name]; !dup {
			byName[name] = c.ID
		}
	}

	resolved := make([]ResolvedTarget, 0, len(targets))
	var unresolved []string
	for _, t := range targets {
		if _, ok := byID[t]; ok {
			resolved = append(resolved, ResolvedTarget{Target: t, ConversationID: t})
			continue
		}
		if id, ok := byName[strings.ToLower(strings.TrimPrefix(t, "#"))]; ok {
			resolved = append(resolved, ResolvedTarget{Target: t, ConversationID: id})
			continue
		}
		unresolved = append(unresolved, t)
	}

	return resolved, unresolved
}
