package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skanda2852b/payrollmanagement/internal/apierror"
	"github.com/Skanda2852b/payrollmanagement/internal/dto"
	"github.com/Skanda2852b/payrollmanagement/internal/model"
	"github.com/Skanda2852b/payrollmanagement/internal/policy"
	"github.com/Skanda2852b/payrollmanagement/internal/repository"
)

type SalaryService interface {
	Generate(ctx context.Context, caller *policy.Identity, req dto.GenerateSalaryRequest) (*dto.SalaryResponse, error)
	List(ctx context.Context, caller *policy.Identity) ([]dto.SalaryResponse, error)
}

type salaryService struct {
	salaries repository.SalaryRepository
	users    repository.UserRepository
}

func NewSalaryService(salaries repository.SalaryRepository, users repository.UserRepository) SalaryService {
	return &salaryService{salaries: salaries, users: users}
}

// Generate creates an immutable salary slip. TotalAmount is computed here
// once (basic + allowances + bonus - deductions) and stored as a snapshot;
// it is never recomputed on read.
func (s *salaryService) Generate(ctx context.Context, caller *policy.Identity, req dto.GenerateSalaryRequest) (*dto.SalaryResponse, error) {
	if err := policy.CanGenerateSalary(caller); err != nil {
		return nil, err
	}
	if req.BasicSalary == nil {
		return nil, apierror.Validation("basicSalary is required")
	}

	employeeID, err := parseID(req.EmployeeID, "employee id")
	if err != nil {
		return nil, err
	}
	// Referential check: the store itself does not enforce integrity, so an
	// unknown employee must be rejected here rather than persisted orphaned.
	employee, err := s.users.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Employee not found")
		}
		return nil, apierror.Store("Could not resolve employee")
	}

	allowances := orZero(req.Allowances)
	deductions := orZero(req.Deductions)
	bonus := orZero(req.Bonus)
	total := req.BasicSalary.Add(allowances).Add(bonus).Sub(deductions)

	record := &model.SalaryRecord{
		EmployeeID:  employee.ID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: *req.BasicSalary,
		Allowances:  allowances,
		Deductions:  deductions,
		Bonus:       bonus,
		TotalAmount: total,
		GeneratedBy: caller.ID,
		GeneratedAt: time.Now(),
	}
	if err := s.salaries.Create(ctx, record); err != nil {
		return nil, apierror.Store("Could not save salary record")
	}

	resp := salaryToResponse(record, true)
	resp.EmployeeName = employee.Name
	resp.EmployeeEmail = employee.Email
	resp.GeneratedByName = caller.Name
	return resp, nil
}

// List returns the caller's salary records (with generator name), or all
// records joined with owner and generator names for an admin.
func (s *salaryService) List(ctx context.Context, caller *policy.Identity) ([]dto.SalaryResponse, error) {
	scope, err := policy.SalaryScope(caller)
	if err != nil {
		return nil, err
	}

	var rows []model.SalaryRecord
	if scope.All {
		rows, err = s.salaries.ListAll(ctx)
	} else {
		rows, err = s.salaries.ListByEmployee(ctx, scope.EmployeeID)
	}
	if err != nil {
		return nil, apierror.Store("Could not list salary records")
	}

	resp := make([]dto.SalaryResponse, len(rows))
	for i := range rows {
		resp[i] = *salaryToResponse(&rows[i], scope.All)
	}
	return resp, nil
}

func salaryToResponse(rec *model.SalaryRecord, withOwner bool) *dto.SalaryResponse {
	resp := &dto.SalaryResponse{
		ID:          rec.ID.String(),
		EmployeeID:  rec.EmployeeID.String(),
		Month:       rec.Month,
		Year:        rec.Year,
		BasicSalary: rec.BasicSalary,
		Allowances:  rec.Allowances,
		Deductions:  rec.Deductions,
		Bonus:       rec.Bonus,
		TotalAmount: rec.TotalAmount,
		GeneratedBy: rec.GeneratedBy.String(),
		GeneratedAt: rec.GeneratedAt,
	}
	if withOwner && rec.Employee != nil {
		resp.EmployeeName = rec.Employee.Name
		resp.EmployeeEmail = rec.Employee.Email
	}
	if rec.Generator != nil {
		resp.GeneratedByName = rec.Generator.Name
	}
	return resp
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
