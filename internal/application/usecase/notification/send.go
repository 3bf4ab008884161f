// Package notification contains push notification use cases.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// SendInput represents the input for sending a push notification.
type SendInput struct {
	UserID uuid.UUID
	Title  string
	Body   string
	URL    string
}

// SendOutput represents the output of sending a push notification.
type SendOutput struct {
	Sent    int
	Failed  int
	Results []adapter.PushDeliveryResult
}

// SendUseCase fans a notification out to all of the caller's push
// subscriptions. Delivery is best effort: every endpoint is attempted
// and endpoints reported gone are dropped from the store.
type SendUseCase struct {
	subscriptionRepo adapter.PushSubscriptionRepository
	settingsRepo     adapter.SettingsRepository
	sender           adapter.PushSender
}

// NewSendUseCase creates a new SendUseCase instance.
func NewSendUseCase(
	subscriptionRepo adapter.PushSubscriptionRepository,
	settingsRepo adapter.SettingsRepository,
	sender adapter.PushSender,
) *SendUseCase {
	return &SendUseCase{
		subscriptionRepo: subscriptionRepo,
		settingsRepo:     settingsRepo,
		sender:           sender,
	}
}

// Execute performs the fan-out.
func (uc *SendUseCase) Execute(ctx context.Context, input SendInput) (*SendOutput, error) {
	settings, err := uc.settingsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationsDisabled,
			"notifications are disabled for this user",
			domainerror.ErrNotificationsDisabled,
		)
	}

	subs, err := uc.subscriptionRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeNoSubscriptions,
			"no push subscriptions registered",
			domainerror.ErrNoSubscriptions,
		)
	}

	results := uc.sender.Send(ctx, subs, adapter.PushMessage{
		Title: input.Title,
		Body:  input.Body,
		URL:   input.URL,
	})

	output := &SendOutput{Results: results}
	for _, r := range results {
		if r.Success {
			output.Sent++
			continue
		}
		output.Failed++
		if r.Gone {
			// Endpoint is permanently invalid, drop the subscription.
			if err := uc.subscriptionRepo.DeleteByEndpoint(ctx, r.Endpoint); err != nil {
				slog.Warn("Failed to drop stale push subscription", "error", err)
			}
		}
	}

	return output, nil
}
