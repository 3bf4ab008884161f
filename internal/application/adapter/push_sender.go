// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/habitflow/backend/internal/domain/entity"
)

// PushMessage represents the payload delivered to a push endpoint.
type PushMessage struct {
	Title string
	Body  string
	URL   string
}

// PushDeliveryResult reports the outcome of delivery to one endpoint.
type PushDeliveryResult struct {
	Endpoint string
	Success  bool
	Gone     bool // endpoint permanently invalid, subscription should be dropped
	Error    string
}

// PushSender defines the interface for delivering push notifications.
// Delivery is best effort: one failing endpoint does not abort the rest.
type PushSender interface {
	// Send delivers a message to each subscription and returns a
	// per-endpoint result.
	Send(ctx context.Context, subs []*entity.PushSubscription, msg PushMessage) []PushDeliveryResult
}
