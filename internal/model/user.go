package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User stores system users with role-based access.
// Role: "admin" | "employee" — immutable after creation; no endpoint mutates it.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:employee"`
	// Salary is the base salary shown in admin pickers; only admins may change it.
	Salary    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
