// file: internals/features/payments/service/receipt_number.go
package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"suscriptores_backend/internals/features/payments/model"
)

const receiptNumberPrefix = "REC"

// NextReceiptNumber computes the next day-scoped receipt number,
// REC-YYYYMMDD-NNNNN, as (receipts already issued that day) + 1.
//
// It must run on the same tx that inserts the receipt: two settlements
// racing on the same day can still compute the same counter, which the
// unique index on receipt_number turns into a retryable conflict.
func NextReceiptNumber(tx *gorm.DB, asOf time.Time) (string, error) {
	day := asOf.Format("20060102")
	prefix := fmt.Sprintf("%s-%s-", receiptNumberPrefix, day)

	var count int64
	if err := tx.Model(&model.Receipt{}).
		Where("receipt_number LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%05d", prefix, count+1), nil
}
