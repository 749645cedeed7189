// file: internals/features/payments/dto/income_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"suscriptores_backend/internals/features/payments/model"
)

type IncomeResponse struct {
	IncomeID        uint            `json:"income_id"`
	IncomePaymentID uint            `json:"income_payment_id"`
	IncomeAmount    decimal.Decimal `json:"income_amount"`
	IncomeDate      string          `json:"income_date"`
	IncomeOrigin    string          `json:"income_origin"`
	IncomeCreatedAt time.Time       `json:"income_created_at"`
}

func ToIncomeResponse(m model.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:        m.IncomeID,
		IncomePaymentID: m.IncomePaymentID,
		IncomeAmount:    m.IncomeAmount,
		IncomeDate:      m.IncomeDate.Format(dateLayout),
		IncomeOrigin:    m.IncomeOrigin,
		IncomeCreatedAt: m.IncomeCreatedAt,
	}
}

func ToIncomeResponses(list []model.Income) []IncomeResponse {
	out := make([]IncomeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToIncomeResponse(m))
	}
	return out
}
