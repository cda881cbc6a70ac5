package helpers

import (
	"context"
	"testing"
	"time"

	"seyren-stride/domain/entities"
	"github.com/stretchr/testify/require"
)

// TestContext creates a test context with timeout
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// NewCheck builds a check fixture in the given state
func NewCheck(id, name string, state entities.AlertType) entities.Check {
	return entities.Check{
		ID:    id,
		Name:  name,
		State: state,
	}
}

// NewStrideSubscription builds a STRIDE subscription for the comma-separated target
func NewStrideSubscription(target string) entities.Subscription {
	return entities.Subscription{
		ID:     "sub-1",
		Target: target,
		Type:   entities.SubscriptionTypeStride,
	}
}

// NewAlerts builds n alert fixtures for the check
func NewAlerts(check entities.Check, n int) []entities.Alert {
	alerts := make([]entities.Alert, 0, n)
	for i := 0; i < n; i++ {
		alerts = append(alerts, entities.Alert{
			CheckID:   check.ID,
			Target:    "servers.web.cpu",
			Value:     float64(90 + i),
			FromType:  entities.AlertTypeOK,
			ToType:    check.State,
			Timestamp: time.Unix(1700000000, 0).UTC(),
		})
	}
	return alerts
}

// AssertEventually asserts that a condition is met within a timeout
func AssertEventually(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	require.Fail(t, message)
}

// SkipIfShort skips the test if running in short mode
func SkipIfShort(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping test in short mode")
	}
}
