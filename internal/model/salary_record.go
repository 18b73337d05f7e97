package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryRecord is an admin-generated salary slip. TotalAmount is a snapshot
// computed at creation time (basic + allowances + bonus - deductions) and is
// never recomputed. Records are immutable after creation.
type SalaryRecord struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Employee    *User           `gorm:"foreignKey:EmployeeID"`
	Month       string          `gorm:"not null"`
	Year        int             `gorm:"not null"`
	BasicSalary decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Allowances  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Deductions  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Bonus       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	GeneratedBy uuid.UUID       `gorm:"type:uuid;not null"`
	Generator   *User           `gorm:"foreignKey:GeneratedBy"`
	GeneratedAt time.Time       `gorm:"not null"`
}
