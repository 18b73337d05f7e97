package service

import (
	"context"
	"time"

	"github.com/Skanda2852b/payrollmanagement/internal/apierror"
	"github.com/Skanda2852b/payrollmanagement/internal/dto"
	"github.com/Skanda2852b/payrollmanagement/internal/model"
	"github.com/Skanda2852b/payrollmanagement/internal/policy"
	"github.com/Skanda2852b/payrollmanagement/internal/repository"
)

type ExpenseService interface {
	Submit(ctx context.Context, caller *policy.Identity, req dto.SubmitExpenseRequest) (*dto.ExpenseResponse, error)
	List(ctx context.Context, caller *policy.Identity) ([]dto.ExpenseResponse, error)
}

type expenseService struct {
	expenses repository.ExpenseRepository
}

func NewExpenseService(expenses repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenses: expenses}
}

// Submit persists a pending expense owned by the caller. The owner is taken
// from the verified identity, never from the payload, so an employee cannot
// file expenses on someone else's behalf.
func (s *expenseService) Submit(ctx context.Context, caller *policy.Identity, req dto.SubmitExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := policy.CanSubmitExpense(caller); err != nil {
		return nil, err
	}
	if req.Amount == nil {
		return nil, apierror.Validation("Amount is required")
	}
	if req.Amount.IsNegative() {
		return nil, apierror.Validation("Amount must not be negative")
	}

	expense := &model.Expense{
		EmployeeID:  caller.ID,
		Month:       req.Month,
		Year:        req.Year,
		Category:    req.Category,
		Amount:      *req.Amount,
		Description: req.Description,
		Status:      model.ExpenseStatusPending,
		SubmittedAt: time.Now(),
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, apierror.Store("Could not save expense")
	}
	return expenseToResponse(expense, false), nil
}

// List returns the caller's expenses, or every expense joined with the
// owner's name/email when the caller is an admin.
func (s *expenseService) List(ctx context.Context, caller *policy.Identity) ([]dto.ExpenseResponse, error) {
	scope, err := policy.ExpenseScope(caller)
	if err != nil {
		return nil, err
	}

	var rows []model.Expense
	if scope.All {
		rows, err = s.expenses.ListAll(ctx)
	} else {
		rows, err = s.expenses.ListByEmployee(ctx, scope.EmployeeID)
	}
	if err != nil {
		return nil, apierror.Store("Could not list expenses")
	}

	resp := make([]dto.ExpenseResponse, len(rows))
	for i := range rows {
		resp[i] = *expenseToResponse(&rows[i], scope.All)
	}
	return resp, nil
}

func expenseToResponse(e *model.Expense, withOwner bool) *dto.ExpenseResponse {
	resp := &dto.ExpenseResponse{
		ID:          e.ID.String(),
		EmployeeID:  e.EmployeeID.String(),
		Month:       e.Month,
		Year:        e.Year,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		Status:      e.Status,
		SubmittedAt: e.SubmittedAt,
	}
	if withOwner && e.Employee != nil {
		resp.EmployeeName = e.Employee.Name
		resp.EmployeeEmail = e.Employee.Email
	}
	return resp
}
