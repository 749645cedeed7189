// file: internals/features/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"suscriptores_backend/internals/features/payments/model"
)

const dateLayout = "2006-01-02"

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS — DTO
////////////////////////////////////////////////////////////////////////////////

// PaymentCreateRequest is the settlement input. Method-specific fields are
// conditionally required and checked by the settlement service, which owns
// the message wording.
type PaymentCreateRequest struct {
	PaymentSubscriberID uint            `json:"payment_subscriber_id" validate:"required"`
	PaymentMonth        int             `json:"payment_month" validate:"required,min=1,max=12"`
	PaymentYear         int             `json:"payment_year" validate:"required,min=2000"`
	PaymentDate         string          `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentValue        decimal.Decimal `json:"payment_value"`
	PaymentMethod       string          `json:"payment_method" validate:"required,oneof=cash transfer"`

	// transfer
	PaymentBankEntity   *string `json:"payment_bank_entity,omitempty" validate:"omitempty,max=100"`
	PaymentRemitterName *string `json:"payment_remitter_name,omitempty" validate:"omitempty,max=255"`

	// cash
	PaymentCashAmount *decimal.Decimal `json:"payment_cash_amount,omitempty"`
}

type PaymentResponse struct {
	PaymentID           uint            `json:"payment_id"`
	PaymentSubscriberID uint            `json:"payment_subscriber_id"`
	PaymentMonth        int             `json:"payment_month"`
	PaymentYear         int             `json:"payment_year"`
	PaymentDate         string          `json:"payment_date"`
	PaymentValue        decimal.Decimal `json:"payment_value"`
	PaymentMethod       string          `json:"payment_method"`

	PaymentBankEntity   *string          `json:"payment_bank_entity,omitempty"`
	PaymentRemitterName *string          `json:"payment_remitter_name,omitempty"`
	PaymentCashAmount   *decimal.Decimal `json:"payment_cash_amount,omitempty"`

	PaymentCreatedAt time.Time `json:"payment_created_at"`

	Receipt *ReceiptResponse `json:"receipt,omitempty"`
	Income  *IncomeResponse  `json:"income,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func (r PaymentCreateRequest) ToModel() model.Payment {
	payDate, _ := time.Parse(dateLayout, r.PaymentDate)
	return model.Payment{
		PaymentSubscriberID: r.PaymentSubscriberID,
		PaymentMonth:        r.PaymentMonth,
		PaymentYear:         r.PaymentYear,
		PaymentDate:         payDate,
		PaymentValue:        r.PaymentValue,
		PaymentMethod:       model.PaymentMethod(r.PaymentMethod),
		PaymentBankEntity:   r.PaymentBankEntity,
		PaymentRemitterName: r.PaymentRemitterName,
		PaymentCashAmount:   r.PaymentCashAmount,
	}
}

func ToPaymentResponse(m model.Payment) PaymentResponse {
	resp := PaymentResponse{
		PaymentID:           m.PaymentID,
		PaymentSubscriberID: m.PaymentSubscriberID,
		PaymentMonth:        m.PaymentMonth,
		PaymentYear:         m.PaymentYear,
		PaymentDate:         m.PaymentDate.Format(dateLayout),
		PaymentValue:        m.PaymentValue,
		PaymentMethod:       string(m.PaymentMethod),
		PaymentBankEntity:   m.PaymentBankEntity,
		PaymentRemitterName: m.PaymentRemitterName,
		PaymentCashAmount:   m.PaymentCashAmount,
		PaymentCreatedAt:    m.PaymentCreatedAt,
	}
	if m.Receipt != nil {
		r := ToReceiptResponse(*m.Receipt)
		resp.Receipt = &r
	}
	if m.Income != nil {
		i := ToIncomeResponse(*m.Income)
		resp.Income = &i
	}
	return resp
}

func ToPaymentResponses(list []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}
