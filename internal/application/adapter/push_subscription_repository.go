// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

// PushSubscriptionRepository defines the interface for push subscription persistence operations.
type PushSubscriptionRepository interface {
	// Save stores a subscription, replacing any existing record with
	// the same endpoint.
	Save(ctx context.Context, sub *entity.PushSubscription) error

	// FindByUserID retrieves all subscriptions for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)

	// DeleteByEndpoint removes the subscription with the given endpoint.
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}
