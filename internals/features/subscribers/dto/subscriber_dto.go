// file: internals/features/subscribers/dto/subscriber_dto.go
package dto

import (
	"time"

	"suscriptores_backend/internals/features/subscribers/model"
)

const dateLayout = "2006-01-02"

////////////////////////////////////////////////////////////////////////////////
// SUBSCRIBERS — DTO
////////////////////////////////////////////////////////////////////////////////

type SubscriberCreateRequest struct {
	SubscriberContractNumber   string `json:"subscriber_contract_number" validate:"required,min=1,max=50"`
	SubscriberNationalID       string `json:"subscriber_national_id" validate:"required,min=1,max=20"`
	SubscriberFullName         string `json:"subscriber_full_name" validate:"required,min=1,max=255"`
	SubscriberSubscriptionDate string `json:"subscriber_subscription_date" validate:"required,datetime=2006-01-02"`
}

// Update (partial)
type SubscriberUpdateRequest struct {
	SubscriberContractNumber   *string `json:"subscriber_contract_number,omitempty" validate:"omitempty,min=1,max=50"`
	SubscriberNationalID       *string `json:"subscriber_national_id,omitempty" validate:"omitempty,min=1,max=20"`
	SubscriberFullName         *string `json:"subscriber_full_name,omitempty" validate:"omitempty,min=1,max=255"`
	SubscriberSubscriptionDate *string `json:"subscriber_subscription_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type SubscriberResponse struct {
	SubscriberID               uint      `json:"subscriber_id"`
	SubscriberContractNumber   string    `json:"subscriber_contract_number"`
	SubscriberNationalID       string    `json:"subscriber_national_id"`
	SubscriberFullName         string    `json:"subscriber_full_name"`
	SubscriberSubscriptionDate string    `json:"subscriber_subscription_date"`
	SubscriberCreatedAt        time.Time `json:"subscriber_created_at"`
	SubscriberUpdatedAt        time.Time `json:"subscriber_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func (r SubscriberCreateRequest) ToModel() model.Subscriber {
	subDate, _ := time.Parse(dateLayout, r.SubscriberSubscriptionDate)
	return model.Subscriber{
		SubscriberContractNumber:   r.SubscriberContractNumber,
		SubscriberNationalID:       r.SubscriberNationalID,
		SubscriberFullName:         r.SubscriberFullName,
		SubscriberSubscriptionDate: subDate,
	}
}

// ApplySubscriberUpdate patches only the provided fields.
func ApplySubscriberUpdate(m *model.Subscriber, r SubscriberUpdateRequest) {
	if r.SubscriberContractNumber != nil {
		m.SubscriberContractNumber = *r.SubscriberContractNumber
	}
	if r.SubscriberNationalID != nil {
		m.SubscriberNationalID = *r.SubscriberNationalID
	}
	if r.SubscriberFullName != nil {
		m.SubscriberFullName = *r.SubscriberFullName
	}
	if r.SubscriberSubscriptionDate != nil {
		if t, err := time.Parse(dateLayout, *r.SubscriberSubscriptionDate); err == nil {
			m.SubscriberSubscriptionDate = t
		}
	}
}

func ToSubscriberResponse(m model.Subscriber) SubscriberResponse {
	return SubscriberResponse{
		SubscriberID:               m.SubscriberID,
		SubscriberContractNumber:   m.SubscriberContractNumber,
		SubscriberNationalID:       m.SubscriberNationalID,
		SubscriberFullName:         m.SubscriberFullName,
		SubscriberSubscriptionDate: m.SubscriberSubscriptionDate.Format(dateLayout),
		SubscriberCreatedAt:        m.SubscriberCreatedAt,
		SubscriberUpdatedAt:        m.SubscriberUpdatedAt,
	}
}

func ToSubscriberResponses(list []model.Subscriber) []SubscriberResponse {
	out := make([]SubscriberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToSubscriberResponse(m))
	}
	return out
}
