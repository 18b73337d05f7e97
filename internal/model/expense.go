package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ExpenseStatusPending  = "pending"
	ExpenseStatusApproved = "approved"
	ExpenseStatusRejected = "rejected"
)

// Expense is an employee-submitted expense claim. EmployeeID is always the
// authenticated caller, never client input. Status defaults to pending; no
// endpoint transitions it (approve/reject workflow is out of scope).
type Expense struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Employee   *User     `gorm:"foreignKey:EmployeeID"`
	Month      string    `gorm:"not null"`
	Year       int       `gorm:"not null"`
	// Category is a free string; the UI offers Travel/Meals/Supplies/Equipment/Other.
	Category    string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description string
	Status      string    `gorm:"type:varchar(20);not null;default:pending"`
	SubmittedAt time.Time `gorm:"not null"`
}
