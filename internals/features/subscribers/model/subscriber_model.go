// file: internals/features/subscribers/model/subscriber_model.go
package model

import (
	"time"

	"gorm.io/gorm"

	paymentModel "suscriptores_backend/internals/features/payments/model"
)

// =========================================================
// MODEL
// =========================================================

type Subscriber struct {
	// PK
	SubscriberID uint `gorm:"column:subscriber_id;primaryKey;autoIncrement" json:"subscriber_id"`

	SubscriberContractNumber  string    `gorm:"column:subscriber_contract_number;type:varchar(50);not null;uniqueIndex:uq_subscribers_contract_number" json:"subscriber_contract_number"`
	SubscriberNationalID      string    `gorm:"column:subscriber_national_id;type:varchar(20);not null;uniqueIndex:uq_subscribers_national_id" json:"subscriber_national_id"`
	SubscriberFullName        string    `gorm:"column:subscriber_full_name;type:varchar(255);not null" json:"subscriber_full_name"`
	SubscriberSubscriptionDate time.Time `gorm:"column:subscriber_subscription_date;type:date;not null;index" json:"subscriber_subscription_date"`

	// Timestamps (explicit)
	SubscriberCreatedAt time.Time `gorm:"column:subscriber_created_at;not null" json:"subscriber_created_at"`
	SubscriberUpdatedAt time.Time `gorm:"column:subscriber_updated_at;not null" json:"subscriber_updated_at"`

	// Deleting a subscriber removes all of its payments (and, through
	// payments, their receipt and income rows).
	Payments []paymentModel.Payment `gorm:"foreignKey:PaymentSubscriberID;references:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

// =========================================================
// HOOKS — explicit timestamps
// =========================================================

func (m *Subscriber) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.SubscriberCreatedAt.IsZero() {
		m.SubscriberCreatedAt = now
	}
	m.SubscriberUpdatedAt = now
	return nil
}

func (m *Subscriber) BeforeUpdate(tx *gorm.DB) (err error) {
	m.SubscriberUpdatedAt = time.Now()
	return nil
}
