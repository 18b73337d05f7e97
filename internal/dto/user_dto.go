package dto

import "github.com/shopspring/decimal"

// UpdateSalaryRequest: Salary is a pointer so the handler can tell "salary": 0
// (valid) apart from a missing field (validation error).
type UpdateSalaryRequest struct {
	UserID string           `json:"userId" validate:"required"`
	Salary *decimal.Decimal `json:"salary"`
}
