// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription stores a browser push endpoint for a user.
// Subscriptions are deduplicated by endpoint identity: re-subscribing
// with a known endpoint is a no-op.
type PushSubscription struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Endpoint  string
	P256DH    string
	Auth      string
	CreatedAt time.Time
}

// NewPushSubscription creates a subscription for the given user and endpoint.
func NewPushSubscription(userID uuid.UUID, endpoint, p256dh, auth string) *PushSubscription {
	return &PushSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		Endpoint:  endpoint,
		P256DH:    p256dh,
		Auth:      auth,
		CreatedAt: time.Now().UTC(),
	}
}
