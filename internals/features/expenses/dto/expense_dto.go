// file: internals/features/expenses/dto/expense_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"suscriptores_backend/internals/features/expenses/model"
)

const dateLayout = "2006-01-02"

////////////////////////////////////////////////////////////////////////////////
// EXPENSES — DTO
////////////////////////////////////////////////////////////////////////////////

type ExpenseCreateRequest struct {
	ExpenseType             string          `json:"expense_type" validate:"required,min=1,max=50"`
	ExpenseDescription      string          `json:"expense_description" validate:"required,min=1"`
	ExpenseValue            decimal.Decimal `json:"expense_value"`
	ExpenseDate             string          `json:"expense_date" validate:"required,datetime=2006-01-02"`
	ExpensePurchaseLocation *string         `json:"expense_purchase_location,omitempty" validate:"omitempty,max=255"`
	ExpenseMotive           *string         `json:"expense_motive,omitempty" validate:"omitempty,max=255"`
}

// Update (partial)
type ExpenseUpdateRequest struct {
	ExpenseType             *string          `json:"expense_type,omitempty" validate:"omitempty,min=1,max=50"`
	ExpenseDescription      *string          `json:"expense_description,omitempty" validate:"omitempty,min=1"`
	ExpenseValue            *decimal.Decimal `json:"expense_value,omitempty"`
	ExpenseDate             *string          `json:"expense_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpensePurchaseLocation *string          `json:"expense_purchase_location,omitempty" validate:"omitempty,max=255"`
	ExpenseMotive           *string          `json:"expense_motive,omitempty" validate:"omitempty,max=255"`
}

type ExpenseResponse struct {
	ExpenseID               uint            `json:"expense_id"`
	ExpenseType             string          `json:"expense_type"`
	ExpenseDescription      string          `json:"expense_description"`
	ExpenseValue            decimal.Decimal `json:"expense_value"`
	ExpenseDate             string          `json:"expense_date"`
	ExpensePurchaseLocation *string         `json:"expense_purchase_location,omitempty"`
	ExpenseMotive           *string         `json:"expense_motive,omitempty"`
	ExpenseCreatedAt        time.Time       `json:"expense_created_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func (r ExpenseCreateRequest) ToModel() model.Expense {
	expDate, _ := time.Parse(dateLayout, r.ExpenseDate)
	return model.Expense{
		ExpenseType:             r.ExpenseType,
		ExpenseDescription:      r.ExpenseDescription,
		ExpenseValue:            r.ExpenseValue,
		ExpenseDate:             expDate,
		ExpensePurchaseLocation: r.ExpensePurchaseLocation,
		ExpenseMotive:           r.ExpenseMotive,
	}
}

func ApplyExpenseUpdate(m *model.Expense, r ExpenseUpdateRequest) {
	if r.ExpenseType != nil {
		m.ExpenseType = *r.ExpenseType
	}
	if r.ExpenseDescription != nil {
		m.ExpenseDescription = *r.ExpenseDescription
	}
	if r.ExpenseValue != nil {
		m.ExpenseValue = *r.ExpenseValue
	}
	if r.ExpenseDate != nil {
		if t, err := time.Parse(dateLayout, *r.ExpenseDate); err == nil {
			m.ExpenseDate = t
		}
	}
	if r.ExpensePurchaseLocation != nil {
		m.ExpensePurchaseLocation = r.ExpensePurchaseLocation
	}
	if r.ExpenseMotive != nil {
		m.ExpenseMotive = r.ExpenseMotive
	}
}

func ToExpenseResponse(m model.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:               m.ExpenseID,
		ExpenseType:             m.ExpenseType,
		ExpenseDescription:      m.ExpenseDescription,
		ExpenseValue:            m.ExpenseValue,
		ExpenseDate:             m.ExpenseDate.Format(dateLayout),
		ExpensePurchaseLocation: m.ExpensePurchaseLocation,
		ExpenseMotive:           m.ExpenseMotive,
		ExpenseCreatedAt:        m.ExpenseCreatedAt,
	}
}

func ToExpenseResponses(list []model.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToExpenseResponse(m))
	}
	return out
}
