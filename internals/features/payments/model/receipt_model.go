// file: internals/features/payments/model/receipt_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// Receipt exists only as a byproduct of settlement — 1:1 with its payment.
type Receipt struct {
	// PK
	ReceiptID uint `gorm:"column:receipt_id;primaryKey;autoIncrement" json:"receipt_id"`

	// FK → payments(payment_id), unique: one receipt per payment
	ReceiptPaymentID uint `gorm:"column:receipt_payment_id;not null;uniqueIndex:uq_receipts_payment_id" json:"receipt_payment_id"`

	// REC-YYYYMMDD-NNNNN, day-scoped sequence
	ReceiptNumber string `gorm:"column:receipt_number;type:varchar(50);not null;uniqueIndex:uq_receipts_number" json:"receipt_number"`

	ReceiptIssuedAt time.Time `gorm:"column:receipt_issued_at;not null" json:"receipt_issued_at"`
}

func (Receipt) TableName() string {
	return "receipts"
}

func (m *Receipt) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ReceiptIssuedAt.IsZero() {
		m.ReceiptIssuedAt = time.Now()
	}
	return nil
}
