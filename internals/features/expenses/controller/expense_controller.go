// file: internals/features/expenses/controller/expense_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suscriptores_backend/internals/features/expenses/dto"
	"suscriptores_backend/internals/features/expenses/model"
	helper "suscriptores_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

type ExpenseHandler struct {
	DB *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{DB: db}
}

// -----------------------------------------
// Create (POST /expenses)
// -----------------------------------------
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.ExpenseCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrors := helper.ValidateStruct(in); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	if !in.ExpenseValue.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "expense_value must be greater than zero")
	}

	m := in.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.TranslateError(c, err)
	}
	return helper.JsonCreated(c, "expense recorded", dto.ToExpenseResponse(m))
}

// -----------------------------------------
// List (GET /expenses)
// Query filters (optional):
// - type (exact, case-insensitive)
// - q (text match on description / purchase location / motive)
// - date_from, date_to (expense_date, inclusive)
// - page, per_page
// -----------------------------------------
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.Expense{})

	if v := strings.TrimSpace(c.Query("type")); v != "" {
		q = q.Where("LOWER(expense_type) = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where(`
			LOWER(expense_description) LIKE ?
			OR LOWER(expense_purchase_location) LIKE ?
			OR LOWER(expense_motive) LIKE ?
		`, like, like, like)
	}
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			q = q.Where("expense_date >= ?", t)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			q = q.Where("expense_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.TranslateError(c, err)
	}

	var list []model.Expense
	if err := q.
		Order("expense_date DESC, expense_id DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.TranslateError(c, err)
	}

	meta := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", dto.ToExpenseResponses(list), meta)
}

// -----------------------------------------
// GetByID (GET /expenses/:id)
// -----------------------------------------
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Expense
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "expense not found")
		}
		return helper.TranslateError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToExpenseResponse(m))
}

// -----------------------------------------
// Update (PUT /expenses/:id)
// -----------------------------------------
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.ExpenseUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrors := helper.ValidateStruct(in); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	if in.ExpenseValue != nil && !in.ExpenseValue.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "expense_value must be greater than zero")
	}

	var m model.Expense
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "expense not found")
		}
		return helper.TranslateError(c, err)
	}

	dto.ApplyExpenseUpdate(&m, in)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.TranslateError(c, err)
	}
	return helper.JsonUpdated(c, "expense updated", dto.ToExpenseResponse(m))
}

// -----------------------------------------
// Delete (DELETE /expenses/:id)
// -----------------------------------------
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Expense
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "expense not found")
		}
		return helper.TranslateError(c, err)
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.TranslateError(c, err)
	}
	return helper.JsonDeleted(c, "expense deleted", dto.ToExpenseResponse(m))
}
