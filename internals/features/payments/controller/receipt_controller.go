// file: internals/features/payments/controller/receipt_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suscriptores_backend/internals/features/payments/dto"
	"suscriptores_backend/internals/features/payments/model"
	helper "suscriptores_backend/internals/helpers"
)

type ReceiptHandler struct {
	DB *gorm.DB
}

func NewReceiptHandler(db *gorm.DB) *ReceiptHandler {
	return &ReceiptHandler{DB: db}
}

// -----------------------------------------
// List (GET /receipts)
// -----------------------------------------
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.Receipt{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.TranslateError(c, err)
	}

	var list []model.Receipt
	if err := q.
		Order("receipt_issued_at DESC, receipt_id DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.TranslateError(c, err)
	}

	meta := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", dto.ToReceiptResponses(list), meta)
}

// -----------------------------------------
// GetByID (GET /receipts/:id)
// -----------------------------------------
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Receipt
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "receipt_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "receipt not found")
		}
		return helper.TranslateError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToReceiptResponse(m))
}

// -----------------------------------------
// GetByPayment (GET /receipts/by-payment/:payment_id)
// -----------------------------------------
func (h *ReceiptHandler) GetByPayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("payment_id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payment_id")
	}

	var m model.Receipt
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "receipt_payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "receipt not found for this payment")
		}
		return helper.TranslateError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToReceiptResponse(m))
}

// -----------------------------------------
// GetByNumber (GET /receipts/by-number/:number)
// Number format: REC-YYYYMMDD-NNNNN
// -----------------------------------------
func (h *ReceiptHandler) GetByNumber(c *fiber.Ctx) error {
	number := strings.TrimSpace(c.Params("number"))
	if number == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid number")
	}

	var m model.Receipt
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "receipt_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "receipt not found")
		}
		return helper.TranslateError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToReceiptResponse(m))
}
