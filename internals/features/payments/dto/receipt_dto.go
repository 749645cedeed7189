// file: internals/features/payments/dto/receipt_dto.go
package dto

import (
	"time"

	"suscriptores_backend/internals/features/payments/model"
)

type ReceiptResponse struct {
	ReceiptID        uint      `json:"receipt_id"`
	ReceiptPaymentID uint      `json:"receipt_payment_id"`
	ReceiptNumber    string    `json:"receipt_number"`
	ReceiptIssuedAt  time.Time `json:"receipt_issued_at"`
}

func ToReceiptResponse(m model.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:        m.ReceiptID,
		ReceiptPaymentID: m.ReceiptPaymentID,
		ReceiptNumber:    m.ReceiptNumber,
		ReceiptIssuedAt:  m.ReceiptIssuedAt,
	}
}

func ToReceiptResponses(list []model.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToReceiptResponse(m))
	}
	return out
}
