package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skanda2852b/payrollmanagement/internal/model"
	"github.com/Skanda2852b/payrollmanagement/internal/policy"
)

// CategoryTotal is an aggregate row for the dashboard summary.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthTotal is an aggregate row grouped by (year, month).
type MonthTotal struct {
	Month string
	Year  int
	Total decimal.Decimal
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	ListAll(ctx context.Context) ([]model.Expense, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Expense, error)
	Count(ctx context.Context, scope policy.Scope) (int64, error)
	TotalsByCategory(ctx context.Context, scope policy.Scope) ([]CategoryTotal, error)
	TotalsByMonth(ctx context.Context, scope policy.Scope) ([]MonthTotal, error)
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// ListAll preloads the owning employee so admin listings can be enriched
// with name/email without a second round trip.
func (r *expenseRepo) ListAll(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).Preload("Employee").
		Order("submitted_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).
		Order("submitted_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) scoped(ctx context.Context, scope policy.Scope) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Expense{})
	if !scope.All {
		q = q.Where("employee_id = ?", scope.EmployeeID)
	}
	return q
}

func (r *expenseRepo) Count(ctx context.Context, scope policy.Scope) (int64, error) {
	var n int64
	err := r.scoped(ctx, scope).Count(&n).Error
	return n, err
}

func (r *expenseRepo) TotalsByCategory(ctx context.Context, scope policy.Scope) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	err := r.scoped(ctx, scope).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Group("category").Order("category").
		Scan(&rows).Error
	return rows, err
}

func (r *expenseRepo) TotalsByMonth(ctx context.Context, scope policy.Scope) ([]MonthTotal, error) {
	var rows []MonthTotal
	err := r.scoped(ctx, scope).
		Select("month, year, COALESCE(SUM(amount), 0) AS total").
		Group("month, year").Order("year, month").
		Scan(&rows).Error
	return rows, err
}
