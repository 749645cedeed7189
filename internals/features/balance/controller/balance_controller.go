// file: internals/features/balance/controller/balance_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"suscriptores_backend/internals/features/balance/dto"
	helper "suscriptores_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

type BalanceHandler struct {
	DB *gorm.DB
}

func NewBalanceHandler(db *gorm.DB) *BalanceHandler {
	return &BalanceHandler{DB: db}
}

// sumColumn returns COALESCE(SUM(col),0) over table, optionally restricted to
// dateCol ∈ [from, to). Incomes and expenses are summed independently — never
// joined (a cross join would multiply the rows).
func (h *BalanceHandler) sumColumn(c *fiber.Ctx, table, col, dateCol string, from, to *time.Time) (decimal.Decimal, error) {
	q := h.DB.WithContext(c.UserContext()).Table(table).Select("COALESCE(SUM(" + col + "), 0)")
	if from != nil {
		q = q.Where(dateCol+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(dateCol+" < ?", *to)
	}

	var total decimal.Decimal
	if err := q.Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// -----------------------------------------
// General (GET /balance)
// -----------------------------------------
func (h *BalanceHandler) General(c *fiber.Ctx) error {
	totalIncome, err := h.sumColumn(c, "incomes", "income_amount", "income_date", nil, nil)
	if err != nil {
		return helper.TranslateError(c, err)
	}
	totalExpense, err := h.sumColumn(c, "expenses", "expense_value", "expense_date", nil, nil)
	if err != nil {
		return helper.TranslateError(c, err)
	}

	return helper.JsonOK(c, "", dto.BalanceResponse{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Net:          totalIncome.Sub(totalExpense),
	})
}

// -----------------------------------------
// ByDateRange (GET /balance/by-date-range?date_from=&date_to=)
// Both bounds inclusive.
// -----------------------------------------
func (h *BalanceHandler) ByDateRange(c *fiber.Ctx) error {
	from, err := time.Parse(dateLayout, c.Query("date_from"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date_from must be a valid YYYY-MM-DD date")
	}
	to, err := time.Parse(dateLayout, c.Query("date_to"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date_to must be a valid YYYY-MM-DD date")
	}
	if from.After(to) {
		return helper.JsonError(c, fiber.StatusBadRequest, "date_from must not be after date_to")
	}

	// inclusive upper bound → exclusive next day
	end := to.AddDate(0, 0, 1)

	totalIncome, err := h.sumColumn(c, "incomes", "income_amount", "income_date", &from, &end)
	if err != nil {
		return helper.TranslateError(c, err)
	}
	totalExpense, err := h.sumColumn(c, "expenses", "expense_value", "expense_date", &from, &end)
	if err != nil {
		return helper.TranslateError(c, err)
	}

	return helper.JsonOK(c, "", dto.DateRangeBalanceResponse{
		DateFrom:     from.Format(dateLayout),
		DateTo:       to.Format(dateLayout),
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Net:          totalIncome.Sub(totalExpense),
	})
}

// -----------------------------------------
// Monthly (GET /balance/monthly?year=)
// Always returns 12 buckets, zero-filled for quiet months.
// Per-month date ranges keep the SQL identical across drivers.
// -----------------------------------------
func (h *BalanceHandler) Monthly(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	if year < 2000 {
		return helper.JsonError(c, fiber.StatusBadRequest, "year is required and must be >= 2000")
	}

	months := make([]dto.MonthlyBucket, 0, 12)
	for m := 1; m <= 12; m++ {
		start := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		income, err := h.sumColumn(c, "incomes", "income_amount", "income_date", &start, &end)
		if err != nil {
			return helper.TranslateError(c, err)
		}
		expense, err := h.sumColumn(c, "expenses", "expense_value", "expense_date", &start, &end)
		if err != nil {
			return helper.TranslateError(c, err)
		}

		months = append(months, dto.MonthlyBucket{
			Month:        m,
			TotalIncome:  income,
			TotalExpense: expense,
			Net:          income.Sub(expense),
		})
	}

	return helper.JsonOK(c, "", dto.MonthlyBalanceResponse{Year: year, Months: months})
}

// -----------------------------------------
// BySubscriber (GET /balance/by-subscriber)
// Total paid per subscriber, biggest payers first.
// -----------------------------------------
func (h *BalanceHandler) BySubscriber(c *fiber.Ctx) error {
	var rows []dto.SubscriberBalanceRow
	if err := h.DB.WithContext(c.UserContext()).
		Table("payments").
		Select(`
			subscribers.subscriber_id AS subscriber_id,
			subscribers.subscriber_contract_number AS subscriber_contract_number,
			subscribers.subscriber_full_name AS subscriber_full_name,
			COUNT(payments.payment_id) AS payment_count,
			COALESCE(SUM(payments.payment_value), 0) AS total_paid
		`).
		Joins("JOIN subscribers ON subscribers.subscriber_id = payments.payment_subscriber_id").
		Group("subscribers.subscriber_id, subscribers.subscriber_contract_number, subscribers.subscriber_full_name").
		Order("total_paid DESC").
		Scan(&rows).Error; err != nil {
		return helper.TranslateError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}
