package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors
var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when the token endpoint rejects the client credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMissingAccessToken is returned when the token response carries no access_token
	ErrMissingAccessToken = errors.New("token response missing access_token")

	// ErrEmptyTarget is returned when a subscription has no conversation to post to
	ErrEmptyTarget = errors.New("subscription target is empty")

	// ErrUnresolvedConversation is returned when a target matches no known conversation
	ErrUnresolvedConversation = errors.New("conversation not found")

	// ErrNoChannel is returned when no notification channel handles a subscription type
	ErrNoChannel = errors.New("no notification channel for subscription type")

	// ErrUnexpectedStatus is returned when the chat API answers with a non-success status
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedResponse is returned when a chat API body cannot be decoded
	ErrMalformedResponse = errors.New("malformed response body")
)

// DomainError represents a domain-specific error with context
type DomainError struct {
	Type    error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return e.Type.Error()
}

// Is implements errors.Is interface
func (e *DomainError) Is(target error) bool {
	return errors.Is(e.Type, target)
}

// Unwrap implements errors.Unwrap interface
func (e *DomainError) Unwrap() error {
	return e.Type
}

// NewDomainError creates a new domain error
func NewDomainError(errType error, message string) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WithDetails adds details to the domain error
func (e *DomainError) WithDetails(key string, value interface{}) *DomainError {
	e.Details[key] = value
	return e
}

// ValidationError represents a validation error with field-specific errors
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d fields", len(e.Fields))
}

// Is reports ErrInvalidInput so callers can match validation failures generically
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// AddFieldError adds a field-specific error
func (e *ValidationError) AddFieldError(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors returns true if there are any field errors
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// AuthError is returned when no access token could be obtained.
type AuthError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("access token request failed with status %d: %s", e.StatusCode, truncate(e.Body))
	}
	return fmt.Sprintf("access token request failed: %v", e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *AuthError) Unwrap() error {
	return e.Err
}

// TransportError represents a network failure during one HTTP step
type TransportError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError represents a non-success or unreadable answer from the chat API
type APIError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s returned status %d with %v: %s", e.Operation, e.StatusCode, e.Err, truncate(e.Body))
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Operation, e.StatusCode, truncate(e.Body))
}

// Is matches ErrUnexpectedStatus when the status itself was the failure
func (e *APIError) Is(target error) bool {
	return e.Err == nil && target == ErrUnexpectedStatus
}

// Unwrap implements errors.Unwrap interface
func (e *APIError) Unwrap() error {
	return e.Err
}

// PostError represents a failed post to a single conversation
type PostError struct {
	ConversationID string
	Err            error
}

// Error implements the error interface
func (e *PostError) Error() string {
	return fmt.Sprintf("posting to conversation %q failed: %v", e.ConversationID, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *PostError) Unwrap() error {
	return e.Err
}

// NotificationFailedError is the only error a notification channel returns to its caller.
type NotificationFailedError struct {
	Channel string
	Message string
	Err     error
}

// Error implements the error interface
func (e *NotificationFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s notification failed: %s: %v", e.Channel, e.Message, e.Err)
	}
	return fmt.Sprintf("%s notification failed: %s", e.Channel, e.Message)
}

// Unwrap implements errors.Unwrap interface
func (e *NotificationFailedError) Unwrap() error {
	return e.Err
}

// NewNotificationFailedError creates a channel failure wrapping cause
func NewNotificationFailedError(channel, message string, cause error) *NotificationFailedError {
	return &NotificationFailedError{
		Channel: channel,
		Message: message,
		Err:     cause,
	}
}

const maxBodyInError = 512

// truncate keeps response bodies in error messages readable
func truncate(body string) string {
	body = strings.TrimSpace(body)
	if len(body) <= maxBodyInError {
		return body
	}
	return body[:maxBodyInError] + "..."
}
