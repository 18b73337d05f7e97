package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skanda2852b/payrollmanagement/internal/apierror"
	"github.com/Skanda2852b/payrollmanagement/internal/dto"
	"github.com/Skanda2852b/payrollmanagement/internal/policy"
	"github.com/Skanda2852b/payrollmanagement/internal/repository"
)

type UserService interface {
	ListEmployees(ctx context.Context, caller *policy.Identity) ([]dto.UserResponse, error)
	UpdateSalary(ctx context.Context, caller *policy.Identity, req dto.UpdateSalaryRequest) (*dto.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// ListEmployees returns employee-role users only (admins excluded), without
// password hashes. Feeds the admin's employee pickers.
func (s *userService) ListEmployees(ctx context.Context, caller *policy.Identity) ([]dto.UserResponse, error) {
	if err := policy.CanListEmployees(caller); err != nil {
		return nil, err
	}
	users, err := s.users.ListByRole(ctx, policy.RoleEmployee)
	if err != nil {
		return nil, apierror.Store("Could not list employees")
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = *userToResponse(&users[i])
	}
	return resp, nil
}

// UpdateSalary sets a user's base salary. A nil salary is a validation
// error; an explicit 0 is a valid value and must not be treated as missing.
// Concurrent updates to the same user are last-write-wins.
func (s *userService) UpdateSalary(ctx context.Context, caller *policy.Identity, req dto.UpdateSalaryRequest) (*dto.UserResponse, error) {
	if err := policy.CanUpdateSalary(caller); err != nil {
		return nil, err
	}
	if req.UserID == "" || req.Salary == nil {
		return nil, apierror.Validation("User ID and salary are required")
	}
	if req.Salary.IsNegative() {
		return nil, apierror.Validation("Salary must not be negative")
	}

	userID, err := parseID(req.UserID, "user id")
	if err != nil {
		return nil, err
	}
	user, err := s.users.UpdateSalary(ctx, userID, *req.Salary)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("User not found")
		}
		return nil, apierror.Store("Could not update salary")
	}
	return userToResponse(user), nil
}
