package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitExpenseRequest deliberately has no employee-id field: the owner is
// always the authenticated caller. Amount is a pointer because an explicit 0
// is valid and must be distinguishable from an omitted value.
type SubmitExpenseRequest struct {
	Month       string           `json:"month"    validate:"required"`
	Year        int              `json:"year"     validate:"required"`
	Category    string           `json:"category" validate:"required"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
}

type ExpenseResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	// EmployeeName/Email are populated only for admin listings (read-only join).
	EmployeeName  string          `json:"employeeName,omitempty"`
	EmployeeEmail string          `json:"employeeEmail,omitempty"`
	Month         string          `json:"month"`
	Year          int             `json:"year"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	Status        string          `json:"status"`
	SubmittedAt   time.Time       `json:"submittedAt"`
}
