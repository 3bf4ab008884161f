// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/integration/persistence/model"
)

// pushSubscriptionRepository implements the adapter.PushSubscriptionRepository interface.
type pushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository creates a new push subscription repository instance.
func NewPushSubscriptionRepository(db *gorm.DB) adapter.PushSubscriptionRepository {
	return &pushSubscriptionRepository{
		db: db,
	}
}

// Save stores a subscription. Browsers re-register the same endpoint
// with fresh keys, so any existing record for the endpoint is replaced.
func (r *pushSubscriptionRepository) Save(ctx context.Context, sub *entity.PushSubscription) error {
	subModel := model.PushSubscriptionFromEntity(sub)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("endpoint = ?", sub.Endpoint).
			Delete(&model.PushSubscriptionModel{}).Error; err != nil {
			return err
		}
		return tx.Create(subModel).Error
	})
}

// FindByUserID retrieves all subscriptions for a user.
func (r *pushSubscriptionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	var subModels []model.PushSubscriptionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&subModels)
	if result.Error != nil {
		return nil, result.Error
	}

	subs := make([]*entity.PushSubscription, len(subModels))
	for i, sm := range subModels {
		subs[i] = sm.ToEntity()
	}
	return subs, nil
}

// DeleteByEndpoint removes the subscription with the given endpoint.
func (r *pushSubscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	result := r.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		Delete(&model.PushSubscriptionModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
