// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

// PushSubscriptionModel represents the push_subscriptions table in the database.
type PushSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Endpoint  string    `gorm:"type:text;uniqueIndex;not null"`
	P256DH    string    `gorm:"type:text"`
	Auth      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PushSubscriptionModel.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}

// ToEntity converts a PushSubscriptionModel to a domain PushSubscription entity.
func (m *PushSubscriptionModel) ToEntity() *entity.PushSubscription {
	return &entity.PushSubscription{
		ID:        m.ID,
		UserID:    m.UserID,
		Endpoint:  m.Endpoint,
		P256DH:    m.P256DH,
		Auth:      m.Auth,
		CreatedAt: m.CreatedAt,
	}
}

// PushSubscriptionFromEntity creates a PushSubscriptionModel from a domain PushSubscription entity.
func PushSubscriptionFromEntity(s *entity.PushSubscription) *PushSubscriptionModel {
	return &PushSubscriptionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		Endpoint:  s.Endpoint,
		P256DH:    s.P256DH,
		Auth:      s.Auth,
		CreatedAt: s.CreatedAt,
	}
}
