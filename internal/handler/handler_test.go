package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Skanda2852b/payrollmanagement/internal/config"
	"github.com/Skanda2852b/payrollmanagement/internal/middleware"
	"github.com/Skanda2852b/payrollmanagement/internal/model"
	"github.com/Skanda2852b/payrollmanagement/internal/policy"
	"github.com/Skanda2852b/payrollmanagement/internal/repository"
	"github.com/Skanda2852b/payrollmanagement/internal/service"
	"github.com/Skanda2852b/payrollmanagement/internal/token"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubUserRepo struct {
	byID map[uuid.UUID]*model.User
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

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.rows = append(r.rows, e)
	return nil
}

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

func (r *stubExpenseRepo) Count(_ context.Context, scope policy.Scope) (int64, error) {
	var n int64
	for _, e := range r.rows {
		if scope.All || e.EmployeeID == scope.EmployeeID {
			n++
		}
	}
	return n, nil
}

func (r *stubExpenseRepo) TotalsByCategory(_ context.Context, scope policy.Scope) ([]repository.CategoryTotal, error) {
	return nil, nil
}

func (r *stubExpenseRepo) TotalsByMonth(_ context.Context, scope policy.Scope) ([]repository.MonthTotal, error) {
	return nil, nil
}

type stubSalaryRepo struct {
	users *stubUserRepo
	rows  []*model.SalaryRecord
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
	return int64(len(r.rows)), nil
}

func (r *stubSalaryRepo) TotalsByMonth(_ context.Context, scope policy.Scope) ([]repository.MonthTotal, error) {
	return nil, nil
}

// ── Test environment ─────────────────────────────────────────────────────────

type testEnv struct {
	router   *gin.Engine
	users    *stubUserRepo
	expenses *stubExpenseRepo
	salaries *stubSalaryRepo
	tokens   *token.Service
}

// newTestEnv mirrors router.New without the postgres/redis infrastructure.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &stubUserRepo{byID: make(map[uuid.UUID]*model.User)}
	expenses := &stubExpenseRepo{users: users}
	salaries := &stubSalaryRepo{users: users}

	cfg := &config.Config{Env: "development", JWTSecret: testSecret, TokenTTLHours: 168}
	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour, users)

	authH := NewAuthHandler(service.NewAuthService(users, tokens), cfg)
	expensesH := NewExpensesHandler(service.NewExpenseService(expenses))
	salaryH := NewSalaryHandler(service.NewSalaryService(salaries, users))
	usersH := NewUsersHandler(service.NewUserService(users))
	dashboardH := NewDashboardHandler(service.NewDashboardService(expenses, salaries, nil))

	r := gin.New()
	auth := r.Group("/auth")
	{
		auth.POST("/login", authH.Login)
		auth.POST("/register", authH.Register)
		auth.POST("/logout", authH.Logout)
	}
	protected := r.Group("/", middleware.Auth(tokens))
	{
		protected.GET("/expenses", expensesH.List)
		protected.POST("/expenses", expensesH.Submit)
		protected.GET("/salary", salaryH.List)
		protected.POST("/salary", salaryH.Generate)
		protected.GET("/users", usersH.ListEmployees)
		protected.PUT("/users", usersH.UpdateSalary)
		protected.GET("/dashboard/summary", dashboardH.Summary)
	}

	return &testEnv{router: r, users: users, expenses: expenses, salaries: salaries, tokens: tokens}
}

func (env *testEnv) seedUser(t *testing.T, name, email, password, role string) *model.User {
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
	env.users.byID[u.ID] = u
	return u
}

func (env *testEnv) tokenFor(t *testing.T, u *model.User) string {
	t.Helper()
	tok, err := env.tokens.Issue(u.ID)
	require.NoError(t, err)
	return tok
}

// do performs a request; tok may be empty for unauthenticated calls and is
// transported as the token cookie, exactly as a browser would.
func (env *testEnv) do(t *testing.T, method, path, tok string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: tok})
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	out := make(map[string]json.RawMessage)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
