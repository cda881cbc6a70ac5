package notifier

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"seyren-stride/domain/errors"
	"seyren-stride/domain/interfaces"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Default OAuth2 settings for the Atlassian identity platform.
const (
	DefaultAuthURL  = "https://auth.atlassian.com/oauth/token"
	DefaultAudience = "api.atlassian.com"
)

// strideCredentialProvider implements the CredentialProvider interface with a
// client-credentials exchange.
type strideCredentialProvider struct {
	config     clientcredentials.Config
	httpClient *http.Client
	logger     interfaces.Logger
}

// NewStrideCredentialProvider creates a credential provider for the given OAuth2 client.
func NewStrideCredentialProvider(
	authURL string,
	audience string,
	clientID string,
	clientSecret string,
	httpClient *http.Client,
	logger interfaces.Logger,
) interfaces.CredentialProvider {
	if authURL == "" {
		authURL = DefaultAuthURL
	}
	if audience == "" {
		audience = DefaultAudience
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &strideCredentialProvider{
		config: clientcredentials.Config{
			ClientID:       clientID,
			ClientSecret:   clientSecret,
			TokenURL:       authURL,
			EndpointParams: url.Values{"audience": {audience}},
			AuthStyle:      oauth2.AuthStyleInParams,
		},
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchAccessToken exchanges the client credentials for an access token.
// Every call performs exactly one request; tokens are not cached.
func (p *strideCredentialProvider) FetchAccessToken(ctx context.Context) (string, error) {
	p.logger.Info("Getting Stride access token", "tokenURL", p.config.TokenURL)

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	token, err := p.config.Token(ctx)
	if err != nil {
		return "", p.translateError(err)
	}

	if token.AccessToken == "" {
		return "", &errors.AuthError{Err: errors.ErrMissingAccessToken}
	}

	p.logger.Debug("Stride access token issued",
		"tokenType", token.TokenType,
		"expiry", token.Expiry)

	return token.AccessToken, nil
}

// translateError maps oauth2 failures onto the domain taxonomy.
func (p *strideCredentialProvider) translateError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if stderrors.As(err, &retrieveErr) {
		authErr := &errors.AuthError{
			Body: string(retrieveErr.Body),
			Err:  errors.ErrUnexpectedStatus,
		}
		if retrieveErr.Response != nil {
			authErr.StatusCode = retrieveErr.Response.StatusCode
		}
		switch authErr.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			authErr.Err = errors.ErrUnauthorized
		}
		p.logger.Error("Could not generate Stride access token",
			"status", authErr.StatusCode,
			"body", authErr.Body)
		return authErr
	}

	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		p.logger.Warn("Error getting access token from Stride API", "error", err)
		return &errors.TransportError{Operation: "token exchange", Err: err}
	}

	// oauth2 reports a 2xx body without a token as a plain error.
	if strings.Contains(err.Error(), "missing access_token") {
		return &errors.AuthError{Err: fmt.Errorf("%w: %v", errors.ErrMissingAccessToken, err)}
	}

	p.logger.Warn("Error parsing Stride token response", "error", err)
	return &errors.AuthError{Err: err}
}
