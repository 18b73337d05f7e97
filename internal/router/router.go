package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Skanda2852b/payrollmanagement/internal/config"
	"github.com/Skanda2852b/payrollmanagement/internal/handler"
	"github.com/Skanda2852b/payrollmanagement/internal/middleware"
	"github.com/Skanda2852b/payrollmanagement/internal/repository"
	"github.com/Skanda2852b/payrollmanagement/internal/service"
	"github.com/Skanda2852b/payrollmanagement/internal/token"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	salaryRepo := repository.NewSalaryRepository(db)

	// ── Token service ────────────────────────────────────────────────────────
	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour, userRepo)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, tokens)
	expenseSvc := service.NewExpenseService(expenseRepo)
	salarySvc := service.NewSalaryService(salaryRepo, userRepo)
	userSvc := service.NewUserService(userRepo)
	dashboardSvc := service.NewDashboardService(expenseRepo, salaryRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	salaryH := handler.NewSalaryHandler(salarySvc)
	usersH := handler.NewUsersHandler(userSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", middleware.LoginRateLimiter(), authH.Register)
		auth.POST("/logout", authH.Logout)
	}

	// Protected routes — role checks live in the policy layer, not here: the
	// middleware only establishes identity.
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

	return r
}
