package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateSalaryRequest: BasicSalary is a pointer so that a missing value is
// rejected while an explicit 0 is accepted; the three optional components
// default to 0 when omitted.
type GenerateSalaryRequest struct {
	EmployeeID  string           `json:"employeeId" validate:"required"`
	Month       string           `json:"month"      validate:"required"`
	Year        int              `json:"year"       validate:"required"`
	BasicSalary *decimal.Decimal `json:"basicSalary"`
	Allowances  *decimal.Decimal `json:"allowances"`
	Deductions  *decimal.Decimal `json:"deductions"`
	Bonus       *decimal.Decimal `json:"bonus"`
}

type SalaryResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	// EmployeeName/Email populated for admin listings only; GeneratedByName
	// also for the employee's own view.
	EmployeeName    string          `json:"employeeName,omitempty"`
	EmployeeEmail   string          `json:"employeeEmail,omitempty"`
	Month           string          `json:"month"`
	Year            int             `json:"year"`
	BasicSalary     decimal.Decimal `json:"basicSalary"`
	Allowances      decimal.Decimal `json:"allowances"`
	Deductions      decimal.Decimal `json:"deductions"`
	Bonus           decimal.Decimal `json:"bonus"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	GeneratedBy     string          `json:"generatedBy"`
	GeneratedByName string          `json:"generatedByName,omitempty"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}
