// Package notification contains push notification use cases.
package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// SubscribeInput represents the input for registering a push subscription.
type SubscribeInput struct {
	UserID   uuid.UUID
	Endpoint string
	P256DH   string
	Auth     string
}

// SubscribeOutput represents the output of registering a push subscription.
type SubscribeOutput struct {
	Subscription *entity.PushSubscription
}

// SubscribeUseCase registers a browser push endpoint for a user.
// Subscriptions are keyed by endpoint; re-subscribing replaces the
// stored record instead of duplicating it.
type SubscribeUseCase struct {
	subscriptionRepo adapter.PushSubscriptionRepository
}

// NewSubscribeUseCase creates a new SubscribeUseCase instance.
func NewSubscribeUseCase(subscriptionRepo adapter.PushSubscriptionRepository) *SubscribeUseCase {
	return &SubscribeUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute performs the subscription registration.
func (uc *SubscribeUseCase) Execute(ctx context.Context, input SubscribeInput) (*SubscribeOutput, error) {
	endpoint := strings.TrimSpace(input.Endpoint)
	if endpoint == "" || !strings.HasPrefix(endpoint, "https://") {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeInvalidSubscription,
			"subscription endpoint must be an https URL",
			domainerror.ErrInvalidSubscription,
		)
	}

	sub := entity.NewPushSubscription(input.UserID, endpoint, input.P256DH, input.Auth)
	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	return &SubscribeOutput{
		Subscription: sub,
	}, nil
}
