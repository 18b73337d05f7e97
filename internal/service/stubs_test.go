package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Skanda2852b/payrollmanagement/internal/model"
	"github.com/Skanda2852b/payrollmanagement/internal/policy"
	"github.com/Skanda2852b/payrollmanagement/internal/repository"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubUserRepo struct {
	byID map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return errors.New("duplicate email")
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.byID[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]model.User, error) {
	var users []model.User
	for _, u := range r.byID {
		if u.Role == role {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *stubUserRepo) UpdateSalary(_ context.Context, id uuid.UUID, salary decimal.Decimal) (*model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u.Salary = salary
	return u, nil
}

type stubExpenseRepo struct {
	users *stubUserRepo
	rows  []*model.Expense
}

func newStubExpenseRepo(users *stubUserRepo) *stubExpenseRepo {
	return &stubExpenseRepo{users: users}
}

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.rows = append(r.rows, e)
	return nil
}

// ListAll emulates the Employee preload of the real repository.
func (r *stubExpenseRepo) ListAll(_ context.Context) ([]model.Expense, error) {
	out := make([]model.Expense, 0, len(r.rows))
	for _, e := range r.rows {
		row := *e
		row.Employee = r.users.byID[e.EmployeeID]
		out = append(out, row)
	}
	return out, nil
}

func (r *stubExpenseRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range r.rows {
		if e.EmployeeID == employeeID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubExpenseRepo) inScope(e *model.Expense, scope policy.Scope) bool {
	return scope.All || e.EmployeeID == scope.EmployeeID
}

func (r *stubExpenseRepo) Count(_ context.Context, scope policy.Scope) (int64, error) {
	var n int64
	for _, e := range r.rows {
		if r.inScope(e, scope) {
			n++
		}
	}
	return n, nil
}

func (r *stubExpenseRepo) TotalsByCategory(_ context.Context, scope policy.Scope) ([]repository.CategoryTotal, error) {
	totals := make(map[string]decimal.Decimal)
	for _, e := range r.rows {
		if r.inScope(e, scope) {
			totals[e.Category] = totals[e.Category].Add(e.Amount)
		}
	}
	var out []repository.CategoryTotal
	for cat, total := range totals {
		out = append(out, repository.CategoryTotal{Category: cat, Total: total})
	}
	return out, nil
}

func (r *stubExpenseRepo) TotalsByMonth(_ context.Context, scope policy.Scope) ([]repository.MonthTotal, error) {
	type key struct {
		month string
		year  int
	}
	totals := make(map[key]decimal.Decimal)
	for _, e := range r.rows {
		if r.inScope(e, scope) {
			k := key{e.Month, e.Year}
			totals[k] = totals[k].Add(e.Amount)
		}
	}
	var out []repository.MonthTotal
	for k, total := range totals {
		out = append(out, repository.MonthTotal{Month: k.month, Year: k.year, Total: total})
	}
	return out, nil
}

type stubSalaryRepo struct {
	users *stubUserRepo
	rows  []*model.SalaryRecord
}

func newStubSalaryRepo(users *stubUserRepo) *stubSalaryRepo {
	return &stubSalaryRepo{users: users}
}

func (r *stubSalaryRepo) Create(_ context.Context, rec *model.SalaryRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.rows = append(r.rows, rec)
	return nil
}

func (r *stubSalaryRepo) ListAll(_ context.Context) ([]model.SalaryRecord, error) {
	out := make([]model.SalaryRecord, 0, len(r.rows))
	for _, rec := range r.rows {
		row := *rec
		row.Employee = r.users.byID[rec.EmployeeID]
		row.Generator = r.users.byID[rec.GeneratedBy]
		out = append(out, row)
	}
	return out, nil
}

func (r *stubSalaryRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]model.SalaryRecord, error) {
	var out []model.SalaryRecord
	for _, rec := range r.rows {
		if rec.EmployeeID == employeeID {
			row := *rec
			row.Generator = r.users.byID[rec.GeneratedBy]
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubSalaryRepo) Count(_ context.Context, scope policy.Scope) (int64, error) {
	var n int64
	for _, rec := range r.rows {
		if scope.All || rec.EmployeeID == scope.EmployeeID {
			n++
		}
	}
	return n, nil
}

func (r *stubSalaryRepo) TotalsByMonth(_ context.Context, scope policy.Scope) ([]repository.MonthTotal, error) {
	type key struct {
		month string
		year  int
	}
	totals := make(map[key]decimal.Decimal)
	for _, rec := range r.rows {
		if scope.All || rec.EmployeeID == scope.EmployeeID {
			k := key{rec.Month, rec.Year}
			totals[k] = totals[k].Add(rec.TotalAmount)
		}
	}
	var out []repository.MonthTotal
	for k, total := range totals {
		out = append(out, repository.MonthTotal{Month: k.month, Year: k.year, Total: total})
	}
	return out, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func seedUser(t *testing.T, repo *stubUserRepo, name, email, password, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Salary:       decimal.Zero,
	}
	repo.byID[u.ID] = u
	return u
}

func identityOf(u *model.User) *policy.Identity {
	return &policy.Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
