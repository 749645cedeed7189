// file: internals/features/expenses/model/expense_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is standalone — no relationship to payments or incomes.
type Expense struct {
	// PK
	ExpenseID uint `gorm:"column:expense_id;primaryKey;autoIncrement" json:"expense_id"`

	ExpenseType        string          `gorm:"column:expense_type;type:varchar(50);not null;index" json:"expense_type"`
	ExpenseDescription string          `gorm:"column:expense_description;type:text;not null" json:"expense_description"`
	ExpenseValue       decimal.Decimal `gorm:"column:expense_value;type:decimal(12,2);not null;check:expense_value > 0" json:"expense_value"`
	ExpenseDate        time.Time       `gorm:"column:expense_date;type:date;not null;index" json:"expense_date"`

	// Optional, depending on the expense type
	ExpensePurchaseLocation *string `gorm:"column:expense_purchase_location;type:varchar(255)" json:"expense_purchase_location,omitempty"`
	ExpenseMotive           *string `gorm:"column:expense_motive;type:varchar(255)" json:"expense_motive,omitempty"`

	ExpenseCreatedAt time.Time `gorm:"column:expense_created_at;not null" json:"expense_created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

func (m *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ExpenseCreatedAt.IsZero() {
		m.ExpenseCreatedAt = time.Now()
	}
	return nil
}
