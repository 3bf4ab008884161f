// Package push delivers notifications to browser push endpoints.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
)

const (
	// requestTimeout bounds delivery to a single endpoint.
	requestTimeout = 10 * time.Second
	// payloadTTL tells the push service how long to retain an
	// undelivered message, in seconds.
	payloadTTL = 86400
)

// HTTPSender implements the adapter.PushSender interface by POSTing the
// payload to each subscription endpoint.
type HTTPSender struct {
	client *http.Client
}

// NewHTTPSender creates a new push sender instance.
func NewHTTPSender() *HTTPSender {
	return &HTTPSender{
		client: &http.Client{Timeout: requestTimeout},
	}
}

// pushPayload is the JSON body delivered to the endpoint.
type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// Send delivers a message to each subscription and returns a
// per-endpoint result. Delivery is best effort: one failing endpoint
// does not abort the rest.
func (s *HTTPSender) Send(ctx context.Context, subs []*entity.PushSubscription, msg adapter.PushMessage) []adapter.PushDeliveryResult {
	results := make([]adapter.PushDeliveryResult, 0, len(subs))
	for _, sub := range subs {
		results = append(results, s.sendOne(ctx, sub, msg))
	}
	return results
}

// sendOne delivers the message to a single endpoint.
func (s *HTTPSender) sendOne(ctx context.Context, sub *entity.PushSubscription, msg adapter.PushMessage) adapter.PushDeliveryResult {
	result := adapter.PushDeliveryResult{Endpoint: sub.Endpoint}

	body, err := json.Marshal(pushPayload{
		Title: msg.Title,
		Body:  msg.Body,
		URL:   msg.URL,
	})
	if err != nil {
		result.Error = fmt.Sprintf("failed to marshal payload: %v", err)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.Endpoint, bytes.NewReader(body))
	if err != nil {
		result.Error = fmt.Sprintf("failed to build request: %v", err)
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("TTL", fmt.Sprintf("%d", payloadTTL))

	resp, err := s.client.Do(req)
	if err != nil {
		result.Error = fmt.Sprintf("failed to deliver: %v", err)
		return result
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		result.Success = true
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		// The push service reports the subscription no longer exists.
		result.Gone = true
		result.Error = fmt.Sprintf("endpoint gone: status %d", resp.StatusCode)
	default:
		result.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}

	if !result.Success {
		slog.Debug("Push delivery failed",
			"endpoint", sub.Endpoint,
			"status", resp.StatusCode,
		)
	}

	return result
}

// MockPushSender is a mock implementation for testing.
type MockPushSender struct {
	Sent          []adapter.PushMessage
	GoneEndpoints map[string]bool
	FailAll       bool
}

// NewMockPushSender creates a new mock push sender.
func NewMockPushSender() *MockPushSender {
	return &MockPushSender{
		GoneEndpoints: make(map[string]bool),
	}
}

// Send implements the adapter.PushSender interface for testing.
func (m *MockPushSender) Send(ctx context.Context, subs []*entity.PushSubscription, msg adapter.PushMessage) []adapter.PushDeliveryResult {
	m.Sent = append(m.Sent, msg)

	results := make([]adapter.PushDeliveryResult, 0, len(subs))
	for _, sub := range subs {
		result := adapter.PushDeliveryResult{Endpoint: sub.Endpoint}
		switch {
		case m.GoneEndpoints[sub.Endpoint]:
			result.Gone = true
			result.Error = "endpoint gone"
		case m.FailAll:
			result.Error = "mock delivery failure"
		default:
			result.Success = true
		}
		results = append(results, result)
	}
	return results
}

// Reset clears all recorded messages and failure configuration.
func (m *MockPushSender) Reset() {
	m.Sent = nil
	m.GoneEndpoints = make(map[string]bool)
	m.FailAll = false
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.PushSender = (*HTTPSender)(nil)
	_ adapter.PushSender = (*MockPushSender)(nil)
)
