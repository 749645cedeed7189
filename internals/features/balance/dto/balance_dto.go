// file: internals/features/balance/dto/balance_dto.go
package dto

import "github.com/shopspring/decimal"

////////////////////////////////////////////////////////////////////////////////
// BALANCE — DTO (read-only projections, no model behind them)
////////////////////////////////////////////////////////////////////////////////

type BalanceResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}

type DateRangeBalanceResponse struct {
	DateFrom     string          `json:"date_from"`
	DateTo       string          `json:"date_to"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}

type MonthlyBucket struct {
	Month        int             `json:"month"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}

type MonthlyBalanceResponse struct {
	Year   int             `json:"year"`
	Months []MonthlyBucket `json:"months"` // always 12, zero-filled
}

type SubscriberBalanceRow struct {
	SubscriberID             uint            `json:"subscriber_id"`
	SubscriberContractNumber string          `json:"subscriber_contract_number"`
	SubscriberFullName       string          `json:"subscriber_full_name"`
	PaymentCount             int64           `json:"payment_count"`
	TotalPaid                decimal.Decimal `json:"total_paid"`
}
