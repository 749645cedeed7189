// file: internals/features/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — payment method
// =========================================================

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// =========================================================
// MODEL
// =========================================================

// Payment is never inserted bare: rows are created only by the settlement
// service, together with their receipt and income, in one transaction.
type Payment struct {
	// PK
	PaymentID uint `gorm:"column:payment_id;primaryKey;autoIncrement" json:"payment_id"`

	// FK → subscribers(subscriber_id), ON DELETE CASCADE via owner association
	PaymentSubscriberID uint `gorm:"column:payment_subscriber_id;not null;index;uniqueIndex:uq_payments_period,priority:1" json:"payment_subscriber_id"`

	// Billing period — at most one payment per (subscriber, month, year)
	PaymentMonth int `gorm:"column:payment_month;not null;uniqueIndex:uq_payments_period,priority:2;check:payment_month >= 1 AND payment_month <= 12" json:"payment_month"`
	PaymentYear  int `gorm:"column:payment_year;not null;uniqueIndex:uq_payments_period,priority:3;check:payment_year >= 2000" json:"payment_year"`

	PaymentDate  time.Time       `gorm:"column:payment_date;type:date;not null;index" json:"payment_date"`
	PaymentValue decimal.Decimal `gorm:"column:payment_value;type:decimal(12,2);not null;check:payment_value > 0" json:"payment_value"`

	PaymentMethod PaymentMethod `gorm:"column:payment_method;type:varchar(20);not null;check:payment_method IN ('cash','transfer')" json:"payment_method"`

	// Transfer-specific fields
	PaymentBankEntity   *string `gorm:"column:payment_bank_entity;type:varchar(100)" json:"payment_bank_entity,omitempty"`
	PaymentRemitterName *string `gorm:"column:payment_remitter_name;type:varchar(255)" json:"payment_remitter_name,omitempty"`

	// Cash-specific field
	PaymentCashAmount *decimal.Decimal `gorm:"column:payment_cash_amount;type:decimal(12,2)" json:"payment_cash_amount,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;not null" json:"payment_created_at"`

	// Derived records — exactly one of each for every committed payment.
	Receipt *Receipt `gorm:"foreignKey:ReceiptPaymentID;references:PaymentID;constraint:OnDelete:CASCADE" json:"receipt,omitempty"`
	Income  *Income  `gorm:"foreignKey:IncomePaymentID;references:PaymentID;constraint:OnDelete:CASCADE" json:"income,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

func (m *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = time.Now()
	}
	return nil
}
