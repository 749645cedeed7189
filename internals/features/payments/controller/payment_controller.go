// file: internals/features/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suscriptores_backend/internals/features/payments/dto"
	"suscriptores_backend/internals/features/payments/model"
	"suscriptores_backend/internals/features/payments/service"
	subscriberModel "suscriptores_backend/internals/features/subscribers/model"
	helper "suscriptores_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

type PaymentHandler struct {
	DB         *gorm.DB
	Settlement *service.SettlementService
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{
		DB:         db,
		Settlement: service.NewSettlementService(db),
	}
}

// -----------------------------------------
// Create (POST /payments) — settlement
// -----------------------------------------
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.PaymentCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrors := helper.ValidateStruct(in); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	payment, err := h.Settlement.SettlePayment(c.UserContext(), in)
	if err != nil {
		return helper.TranslateError(c, err)
	}
	return helper.JsonCreated(c, "payment settled", dto.ToPaymentResponse(*payment))
}

// -----------------------------------------
// List (GET /payments)
// Query filters (optional):
// - subscriber_id
// - date_from, date_to (payment_date, inclusive)
// - page, per_page
// -----------------------------------------
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.Payment{})

	if v := c.QueryInt("subscriber_id"); v > 0 {
		q = q.Where("payment_subscriber_id = ?", v)
	}
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			q = q.Where("payment_date >= ?", t)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			q = q.Where("payment_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.TranslateError(c, err)
	}

	var list []model.Payment
	if err := q.
		Preload("Receipt").Preload("Income").
		Order("payment_date DESC, payment_id DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.TranslateError(c, err)
	}

	meta := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", dto.ToPaymentResponses(list), meta)
}

// -----------------------------------------
// GetByID (GET /payments/:id)
// -----------------------------------------
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Payment
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Receipt").Preload("Income").
		First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.TranslateError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToPaymentResponse(m))
}

// -----------------------------------------
// ListBySubscriber (GET /payments/subscriber/:id)
// Ordered by period, newest first.
// -----------------------------------------
func (h *PaymentHandler) ListBySubscriber(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var cnt int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&subscriberModel.Subscriber{}).
		Where("subscriber_id = ?", id).
		Count(&cnt).Error; err != nil {
		return helper.TranslateError(c, err)
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "subscriber not found")
	}

	var list []model.Payment
	if err := h.DB.WithContext(c.UserContext()).
		Preload("Receipt").Preload("Income").
		Where("payment_subscriber_id = ?", id).
		Order("payment_year DESC, payment_month DESC").
		Find(&list).Error; err != nil {
		return helper.TranslateError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToPaymentResponses(list))
}

// -----------------------------------------
// Delete (DELETE /payments/:id)
// Cascades to the payment's receipt and income in one statement.
// -----------------------------------------
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Payment
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.TranslateError(c, err)
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.TranslateError(c, err)
	}
	return helper.JsonDeleted(c, "payment deleted", dto.ToPaymentResponse(m))
}
