package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skanda2852b/payrollmanagement/internal/model"
	"github.com/Skanda2852b/payrollmanagement/internal/policy"
)

type SalaryRepository interface {
	Create(ctx context.Context, rec *model.SalaryRecord) error
	ListAll(ctx context.Context) ([]model.SalaryRecord, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.SalaryRecord, error)
	Count(ctx context.Context, scope policy.Scope) (int64, error)
	TotalsByMonth(ctx context.Context, scope policy.Scope) ([]MonthTotal, error)
}

type salaryRepo struct{ db *gorm.DB }

func NewSalaryRepository(db *gorm.DB) SalaryRepository { return &salaryRepo{db: db} }

func (r *salaryRepo) Create(ctx context.Context, rec *model.SalaryRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// ListAll preloads both the owning employee and the generating admin for the
// admin view.
func (r *salaryRepo) ListAll(ctx context.Context) ([]model.SalaryRecord, error) {
	var records []model.SalaryRecord
	err := r.db.WithContext(ctx).Preload("Employee").Preload("Generator").
		Order("generated_at DESC").Find(&records).Error
	return records, err
}

// ListByEmployee preloads only the generator — the self view shows who
// generated the slip but needs no owner join.
func (r *salaryRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.SalaryRecord, error) {
	var records []model.SalaryRecord
	err := r.db.WithContext(ctx).Preload("Generator").
		Where("employee_id = ?", employeeID).
		Order("generated_at DESC").Find(&records).Error
	return records, err
}

func (r *salaryRepo) scoped(ctx context.Context, scope policy.Scope) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.SalaryRecord{})
	if !scope.All {
		q = q.Where("employee_id = ?", scope.EmployeeID)
	}
	return q
}

func (r *salaryRepo) Count(ctx context.Context, scope policy.Scope) (int64, error) {
	var n int64
	err := r.scoped(ctx, scope).Count(&n).Error
	return n, err
}

func (r *salaryRepo) TotalsByMonth(ctx context.Context, scope policy.Scope) ([]MonthTotal, error) {
	var rows []MonthTotal
	err := r.scoped(ctx, scope).
		Select("month, year, COALESCE(SUM(total_amount), 0) AS total").
		Group("month, year").Order("year, month").
		Scan(&rows).Error
	return rows, err
}
