// file: internals/features/payments/model/income_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income mirrors its payment's value — 1:1, created only by settlement.
type Income struct {
	// PK
	IncomeID uint `gorm:"column:income_id;primaryKey;autoIncrement" json:"income_id"`

	// FK → payments(payment_id), unique: one income per payment
	IncomePaymentID uint `gorm:"column:income_payment_id;not null;uniqueIndex:uq_incomes_payment_id" json:"income_payment_id"`

	IncomeAmount decimal.Decimal `gorm:"column:income_amount;type:decimal(12,2);not null;check:income_amount > 0" json:"income_amount"`
	IncomeDate   time.Time       `gorm:"column:income_date;type:date;not null;index" json:"income_date"`

	// "Payment from subscriber: {full name}"
	IncomeOrigin string `gorm:"column:income_origin;type:varchar(255);not null" json:"income_origin"`

	IncomeCreatedAt time.Time `gorm:"column:income_created_at;not null" json:"income_created_at"`
}

func (Income) TableName() string {
	return "incomes"
}

func (m *Income) BeforeCreate(tx *gorm.DB) (err error) {
	if m.IncomeCreatedAt.IsZero() {
		m.IncomeCreatedAt = time.Now()
	}
	return nil
}
