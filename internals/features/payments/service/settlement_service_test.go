// file: internals/features/payments/service/settlement_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "suscriptores_backend/internals/databases"
	"suscriptores_backend/internals/features/payments/dto"
	"suscriptores_backend/internals/features/payments/model"
	subscriberModel "suscriptores_backend/internals/features/subscribers/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createSubscriber(t *testing.T, db *gorm.DB, contract, nationalID, name string) subscriberModel.Subscriber {
	t.Helper()
	sub := subscriberModel.Subscriber{
		SubscriberContractNumber:   contract,
		SubscriberNationalID:       nationalID,
		SubscriberFullName:         name,
		SubscriberSubscriptionDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&sub).Error)
	return sub
}

func cashRequest(subscriberID uint, month, year int, value string) dto.PaymentCreateRequest {
	v := decimal.RequireFromString(value)
	return dto.PaymentCreateRequest{
		PaymentSubscriberID: subscriberID,
		PaymentMonth:        month,
		PaymentYear:         year,
		PaymentDate:         "2024-03-10",
		PaymentValue:        v,
		PaymentMethod:       "cash",
		PaymentCashAmount:   &v,
	}
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

func TestSettlePayment_CashDerivesReceiptAndIncome(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettlementService(db)
	sub := createSubscriber(t, db, "C-001", "123", "Maria Lopez")

	payment, err := svc.SettlePayment(context.Background(), cashRequest(sub.SubscriberID, 3, 2024, "50.00"))
	require.NoError(t, err)
	require.NotZero(t, payment.PaymentID)

	today := time.Now().Format("20060102")
	require.NotNil(t, payment.Receipt)
	assert.Equal(t, fmt.Sprintf("REC-%s-00001", today), payment.Receipt.ReceiptNumber)
	assert.Equal(t, payment.PaymentID, payment.Receipt.ReceiptPaymentID)

	require.NotNil(t, payment.Income)
	assert.True(t, payment.Income.IncomeAmount.Equal(payment.PaymentValue),
		"income amount %s != payment value %s", payment.Income.IncomeAmount, payment.PaymentValue)
	assert.Equal(t, "Payment from subscriber: Maria Lopez", payment.Income.IncomeOrigin)

	var income model.Income
	require.NoError(t, db.First(&income, "income_payment_id = ?", payment.PaymentID).Error)
	assert.Equal(t, payment.PaymentDate.Format("2006-01-02"), income.IncomeDate.Format("2006-01-02"))

	var receiptCnt, incomeCnt int64
	require.NoError(t, db.Model(&model.Receipt{}).Where("receipt_payment_id = ?", payment.PaymentID).Count(&receiptCnt).Error)
	require.NoError(t, db.Model(&model.Income{}).Where("income_payment_id = ?", payment.PaymentID).Count(&incomeCnt).Error)
	assert.EqualValues(t, 1, receiptCnt)
	assert.EqualValues(t, 1, incomeCnt)
}

func TestSettlePayment_SameDayNumbersAreSequential(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettlementService(db)
	sub := createSubscriber(t, db, "C-002", "456", "Juan Perez")

	var numbers []string
	for m := 1; m <= 3; m++ {
		p, err := svc.SettlePayment(context.Background(), cashRequest(sub.SubscriberID, m, 2024, "25.00"))
		require.NoError(t, err)
		numbers = append(numbers, p.Receipt.ReceiptNumber)
	}

	today := time.Now().Format("20060102")
	assert.Equal(t, []string{
		fmt.Sprintf("REC-%s-00001", today),
		fmt.Sprintf("REC-%s-00002", today),
		fmt.Sprintf("REC-%s-00003", today),
	}, numbers)
}

func TestSettlePayment_DuplicatePeriodRejectedLeavesNoRows(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettlementService(db)
	sub := createSubscriber(t, db, "C-003", "789", "Ana Gomez")

	_, err := svc.SettlePayment(context.Background(), cashRequest(sub.SubscriberID, 3, 2024, "50.00"))
	require.NoError(t, err)

	// duplicate period is a bad request, same as the other input rejections
	_, err = svc.SettlePayment(context.Background(), cashRequest(sub.SubscriberID, 3, 2024, "60.00"))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))

	var payments, receipts, incomes int64
	require.NoError(t, db.Model(&model.Payment{}).Count(&payments).Error)
	require.NoError(t, db.Model(&model.Receipt{}).Count(&receipts).Error)
	require.NoError(t, db.Model(&model.Income{}).Count(&incomes).Error)
	assert.EqualValues(t, 1, payments)
	assert.EqualValues(t, 1, receipts)
	assert.EqualValues(t, 1, incomes)
}

func TestSettlePayment_SubscriberMissing(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettlementService(db)

	_, err := svc.SettlePayment(context.Background(), cashRequest(999, 3, 2024, "50.00"))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))

	var payments int64
	require.NoError(t, db.Model(&model.Payment{}).Count(&payments).Error)
	assert.Zero(t, payments)
}

func TestSettlePayment_MethodFieldValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettlementService(db)
	sub := createSubscriber(t, db, "C-004", "321", "Luis Diaz")

	t.Run("transfer requires bank fields", func(t *testing.T) {
		req := cashRequest(sub.SubscriberID, 1, 2024, "50.00")
		req.PaymentMethod = "transfer"
		req.PaymentCashAmount = nil
		_, err := svc.SettlePayment(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
	})

	t.Run("cash requires positive cash amount", func(t *testing.T) {
		req := cashRequest(sub.SubscriberID, 2, 2024, "50.00")
		zero := decimal.Zero
		req.PaymentCashAmount = &zero
		_, err := svc.SettlePayment(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
	})

	t.Run("value must be positive", func(t *testing.T) {
		req := cashRequest(sub.SubscriberID, 4, 2024, "50.00")
		req.PaymentValue = decimal.Zero
		_, err := svc.SettlePayment(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
	})

	// the service guards the period ranges itself, not just the request tags
	t.Run("month out of range", func(t *testing.T) {
		_, err := svc.SettlePayment(context.Background(), cashRequest(sub.SubscriberID, 13, 2024, "50.00"))
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
	})

	t.Run("year below floor", func(t *testing.T) {
		_, err := svc.SettlePayment(context.Background(), cashRequest(sub.SubscriberID, 5, 1999, "50.00"))
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
	})

	var payments int64
	require.NoError(t, db.Model(&model.Payment{}).Count(&payments).Error)
	assert.Zero(t, payments, "failed validations must not leave payment rows behind")
}

// A receipt number squatting on the next counter value makes every attempt
// collide: the settlement must retry, give up after the bounded attempts, and
// roll the payment insert back each time.
func TestSettlePayment_NumberConflictRetriesThenRollsBack(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettlementService(db)
	first := createSubscriber(t, db, "C-005", "654", "Rosa Marin")
	second := createSubscriber(t, db, "C-006", "987", "Pedro Ruiz")

	p1, err := svc.SettlePayment(context.Background(), cashRequest(first.SubscriberID, 1, 2024, "40.00"))
	require.NoError(t, err)
	assert.NotNil(t, p1.Receipt)

	// bare payment to hang the squatting receipt on (bypasses settlement)
	v := decimal.RequireFromString("10.00")
	bare := model.Payment{
		PaymentSubscriberID: second.SubscriberID,
		PaymentMonth:        1,
		PaymentYear:         2024,
		PaymentDate:         time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		PaymentValue:        v,
		PaymentMethod:       model.PaymentMethodCash,
		PaymentCashAmount:   &v,
	}
	require.NoError(t, db.Create(&bare).Error)

	today := time.Now().Format("20060102")
	squatter := model.Receipt{
		ReceiptPaymentID: bare.PaymentID,
		// two receipts exist now, so the next computed counter is 3 — taken
		ReceiptNumber: fmt.Sprintf("REC-%s-00003", today),
	}
	require.NoError(t, db.Create(&squatter).Error)

	_, err = svc.SettlePayment(context.Background(), cashRequest(second.SubscriberID, 2, 2024, "30.00"))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, fiberStatus(t, err))

	// the failed settlement left nothing behind
	var payments, receipts, incomes int64
	require.NoError(t, db.Model(&model.Payment{}).Count(&payments).Error)
	require.NoError(t, db.Model(&model.Receipt{}).Count(&receipts).Error)
	require.NoError(t, db.Model(&model.Income{}).Count(&incomes).Error)
	assert.EqualValues(t, 2, payments)
	assert.EqualValues(t, 2, receipts)
	assert.EqualValues(t, 1, incomes)

	var cnt int64
	require.NoError(t, db.Model(&model.Payment{}).
		Where("payment_subscriber_id = ? AND payment_month = ? AND payment_year = ?", second.SubscriberID, 2, 2024).
		Count(&cnt).Error)
	assert.Zero(t, cnt)
}
