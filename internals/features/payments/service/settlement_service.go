// file: internals/features/payments/service/settlement_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "suscriptores_backend/internals/databases"
	"suscriptores_backend/internals/features/payments/dto"
	"suscriptores_backend/internals/features/payments/model"
	subscriberModel "suscriptores_backend/internals/features/subscribers/model"
)

// maxSettlementAttempts bounds retries on the receipt-number race.
const maxSettlementAttempts = 3

var errReceiptNumberTaken = errors.New("receipt number already taken")

type SettlementService struct {
	DB *gorm.DB
}

func NewSettlementService(db *gorm.DB) *SettlementService {
	return &SettlementService{DB: db}
}

// SettlePayment records a payment and derives its receipt and income in one
// transaction. Either all three rows commit or none of them exist afterwards.
//
// Failure modes:
//   - 404 subscriber missing
//   - 400 range/enum/method-field violations and duplicate
//     (subscriber, month, year) periods
//   - 500 receipt-number conflict after retries exhausted
func (s *SettlementService) SettlePayment(ctx context.Context, req dto.PaymentCreateRequest) (*model.Payment, error) {
	if err := validatePeriodRange(req); err != nil {
		return nil, err
	}
	if err := validateMethodFields(req); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= maxSettlementAttempts; attempt++ {
		payment, err := s.settleOnce(ctx, req)
		if err == nil {
			return payment, nil
		}
		if errors.Is(err, errReceiptNumberTaken) {
			// race lost on the day counter — recompute and retry the whole settlement
			lastErr = err
			continue
		}
		return nil, err
	}

	return nil, fiber.NewError(fiber.StatusInternalServerError,
		fmt.Sprintf("could not assign a receipt number after %d attempts: %v", maxSettlementAttempts, lastErr))
}

// settleOnce runs steps 2–6 of the settlement inside one transaction scope.
// Any error rolls back the payment insert too — no partial state escapes.
func (s *SettlementService) settleOnce(ctx context.Context, req dto.PaymentCreateRequest) (*model.Payment, error) {
	var payment model.Payment

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// subscriber must exist
		var sub subscriberModel.Subscriber
		if err := tx.First(&sub, "subscriber_id = ?", req.PaymentSubscriberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "subscriber not found")
			}
			return err
		}

		// fast-path duplicate-period check; the unique index is the real guard
		var cnt int64
		if err := tx.Model(&model.Payment{}).
			Where("payment_subscriber_id = ? AND payment_month = ? AND payment_year = ?",
				req.PaymentSubscriberID, req.PaymentMonth, req.PaymentYear).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return duplicatePeriodError(req.PaymentMonth, req.PaymentYear)
		}

		payment = req.ToModel()
		if err := tx.Create(&payment).Error; err != nil {
			// the period index is the only unique constraint on payments
			if database.IsUniqueViolation(err, "") {
				return duplicatePeriodError(req.PaymentMonth, req.PaymentYear)
			}
			return err
		}

		now := time.Now()
		number, err := NextReceiptNumber(tx, now)
		if err != nil {
			return err
		}

		receipt := model.Receipt{
			ReceiptPaymentID: payment.PaymentID,
			ReceiptNumber:    number,
			ReceiptIssuedAt:  now,
		}
		if err := tx.Create(&receipt).Error; err != nil {
			if database.IsUniqueViolation(err, "number") {
				return fmt.Errorf("%w: %s", errReceiptNumberTaken, number)
			}
			return err
		}

		income := model.Income{
			IncomePaymentID: payment.PaymentID,
			IncomeAmount:    payment.PaymentValue,
			IncomeDate:      payment.PaymentDate,
			IncomeOrigin:    fmt.Sprintf("Payment from subscriber: %s", sub.SubscriberFullName),
		}
		if err := tx.Create(&income).Error; err != nil {
			return err
		}

		payment.Receipt = &receipt
		payment.Income = &income
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func duplicatePeriodError(month, year int) error {
	return fiber.NewError(fiber.StatusBadRequest,
		fmt.Sprintf("a payment already exists for this subscriber in %d/%d", month, year))
}

// validatePeriodRange guards direct service callers; the HTTP layer already
// rejects these through the request tags, but a raw check-constraint failure
// must never be the first line of defense.
func validatePeriodRange(req dto.PaymentCreateRequest) error {
	if req.PaymentMonth < 1 || req.PaymentMonth > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "payment_month must be between 1 and 12")
	}
	if req.PaymentYear < 2000 {
		return fiber.NewError(fiber.StatusBadRequest, "payment_year must be 2000 or later")
	}
	return nil
}

// validateMethodFields enforces the conditionally required fields per method.
func validateMethodFields(req dto.PaymentCreateRequest) error {
	if !req.PaymentValue.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "payment_value must be greater than zero")
	}

	switch model.PaymentMethod(req.PaymentMethod) {
	case model.PaymentMethodTransfer:
		if req.PaymentBankEntity == nil || strings.TrimSpace(*req.PaymentBankEntity) == "" ||
			req.PaymentRemitterName == nil || strings.TrimSpace(*req.PaymentRemitterName) == "" {
			return fiber.NewError(fiber.StatusBadRequest,
				"payment_bank_entity and payment_remitter_name are required for transfer payments")
		}
	case model.PaymentMethodCash:
		if req.PaymentCashAmount == nil || !req.PaymentCashAmount.IsPositive() {
			return fiber.NewError(fiber.StatusBadRequest,
				"payment_cash_amount is required and must be greater than zero for cash payments")
		}
	default:
		return fiber.NewError(fiber.StatusBadRequest, "payment_method must be 'cash' or 'transfer'")
	}
	return nil
}
