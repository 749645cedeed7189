// file: internals/features/subscribers/controller/subscriber_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "suscriptores_backend/internals/databases"
	"suscriptores_backend/internals/features/subscribers/dto"
	"suscriptores_backend/internals/features/subscribers/model"
	helper "suscriptores_backend/internals/helpers"
)

type SubscriberHandler struct {
	DB *gorm.DB
}

func NewSubscriberHandler(db *gorm.DB) *SubscriberHandler {
	return &SubscriberHandler{DB: db}
}

// -----------------------------------------
// Create (POST /subscribers)
// -----------------------------------------
func (h *SubscriberHandler) Create(c *fiber.Ctx) error {
	var in dto.SubscriberCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrors := helper.ValidateStruct(in); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	m := in.ToModel()
	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.Subscriber{}).
			Where("subscriber_contract_number = ?", in.SubscriberContractNumber).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "contract number already registered")
		}

		cnt = 0
		if err := tx.Model(&model.Subscriber{}).
			Where("subscriber_national_id = ?", in.SubscriberNationalID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "national ID already registered")
		}

		if err := tx.Create(&m).Error; err != nil {
			if database.IsUniqueViolation(err, "") {
				return fiber.NewError(fiber.StatusConflict, "contract number or national ID already registered")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return helper.TranslateError(c, err)
	}
	return helper.JsonCreated(c, "subscriber registered", dto.ToSubscriberResponse(m))
}

// -----------------------------------------
// List (GET /subscribers)
// Optional text search: ?q= matches contract number, national ID or name.
// -----------------------------------------
func (h *SubscriberHandler) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.Subscriber{})

	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where(`
			LOWER(subscriber_contract_number) LIKE ?
			OR LOWER(subscriber_national_id) LIKE ?
			OR LOWER(subscriber_full_name) LIKE ?
		`, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.TranslateError(c, err)
	}

	var list []model.Subscriber
	if err := q.
		Order("subscriber_created_at DESC, subscriber_id DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.TranslateError(c, err)
	}

	meta := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", dto.ToSubscriberResponses(list), meta)
}

// -----------------------------------------
// GetByID (GET /subscribers/:id)
// -----------------------------------------
func (h *SubscriberHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Subscriber
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "subscriber_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "subscriber not found")
		}
		return helper.TranslateError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToSubscriberResponse(m))
}

// -----------------------------------------
// GetByContract (GET /subscribers/by-contract/:contract_number)
// -----------------------------------------
func (h *SubscriberHandler) GetByContract(c *fiber.Ctx) error {
	contract := strings.TrimSpace(c.Params("contract_number"))
	if contract == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid contract number")
	}

	var m model.Subscriber
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "subscriber_contract_number = ?", contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "subscriber not found")
		}
		return helper.TranslateError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToSubscriberResponse(m))
}

// -----------------------------------------
// Update (PUT /subscribers/:id)
// -----------------------------------------
func (h *SubscriberHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.SubscriberUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrors := helper.ValidateStruct(in); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	var m model.Subscriber
	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "subscriber_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "subscriber not found")
			}
			return err
		}

		// uniqueness re-checks only when the value actually changes
		if in.SubscriberContractNumber != nil && *in.SubscriberContractNumber != m.SubscriberContractNumber {
			var cnt int64
			if err := tx.Model(&model.Subscriber{}).
				Where("subscriber_contract_number = ? AND subscriber_id <> ?", *in.SubscriberContractNumber, m.SubscriberID).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "contract number already registered")
			}
		}
		if in.SubscriberNationalID != nil && *in.SubscriberNationalID != m.SubscriberNationalID {
			var cnt int64
			if err := tx.Model(&model.Subscriber{}).
				Where("subscriber_national_id = ? AND subscriber_id <> ?", *in.SubscriberNationalID, m.SubscriberID).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "national ID already registered")
			}
		}

		dto.ApplySubscriberUpdate(&m, in)
		if err := tx.Save(&m).Error; err != nil {
			if database.IsUniqueViolation(err, "") {
				return fiber.NewError(fiber.StatusConflict, "contract number or national ID already registered")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return helper.TranslateError(c, err)
	}
	return helper.JsonUpdated(c, "subscriber updated", dto.ToSubscriberResponse(m))
}

// -----------------------------------------
// Delete (DELETE /subscribers/:id)
// One statement; the store cascades payments → receipts/incomes.
// -----------------------------------------
func (h *SubscriberHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Subscriber
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "subscriber_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "subscriber not found")
		}
		return helper.TranslateError(c, err)
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.TranslateError(c, err)
	}
	return helper.JsonDeleted(c, "subscriber deleted", dto.ToSubscriberResponse(m))
}
