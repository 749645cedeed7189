// file: internals/features/payments/controller/income_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suscriptores_backend/internals/features/payments/dto"
	"suscriptores_backend/internals/features/payments/model"
	helper "suscriptores_backend/internals/helpers"
)

type IncomeHandler struct {
	DB *gorm.DB
}

func NewIncomeHandler(db *gorm.DB) *IncomeHandler {
	return &IncomeHandler{DB: db}
}

// -----------------------------------------
// List (GET /balance/incomes)
// Query filters (optional): date_from, date_to (income_date, inclusive)
// -----------------------------------------
func (h *IncomeHandler) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.Income{})

	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			q = q.Where("income_date >= ?", t)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			q = q.Where("income_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.TranslateError(c, err)
	}

	var list []model.Income
	if err := q.
		Order("income_date DESC, income_id DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.TranslateError(c, err)
	}

	meta := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", dto.ToIncomeResponses(list), meta)
}
