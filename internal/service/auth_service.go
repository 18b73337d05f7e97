package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Skanda2852b/payrollmanagement/internal/apierror"
	"github.com/Skanda2852b/payrollmanagement/internal/dto"
	"github.com/Skanda2852b/payrollmanagement/internal/model"
	"github.com/Skanda2852b/payrollmanagement/internal/policy"
	"github.com/Skanda2852b/payrollmanagement/internal/repository"
	"github.com/Skanda2852b/payrollmanagement/internal/token"
)

const bcryptCost = 12

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, string, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.UserResponse, string, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *token.Service
}

func NewAuthService(users repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Register creates a user and issues a token for it. Email uniqueness is
// enforced here (and by the unique index underneath).
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, string, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, "", apierror.Validation("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apierror.Store("Could not create user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	role := req.Role
	if role == "" {
		role = policy.RoleEmployee
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Salary:       decimal.Zero,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", apierror.Store("Could not create user")
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return userToResponse(user), tok, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error so callers cannot probe for accounts.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.UserResponse, string, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", apierror.Authentication("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", apierror.Authentication("Invalid email or password")
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return userToResponse(user), tok, nil
}

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:     u.ID.String(),
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Salary: u.Salary,
	}
}

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.Validation("Invalid " + what)
	}
	return id, nil
}
