package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Skanda2852b/payrollmanagement/internal/apierror"
	"github.com/Skanda2852b/payrollmanagement/internal/dto"
	"github.com/Skanda2852b/payrollmanagement/internal/policy"
	"github.com/Skanda2852b/payrollmanagement/internal/repository"
)

const summaryCacheTTL = time.Minute

type DashboardService interface {
	Summary(ctx context.Context, caller *policy.Identity) (*dto.DashboardSummary, error)
}

type dashboardService struct {
	expenses repository.ExpenseRepository
	salaries repository.SalaryRepository
	rdb      *redis.Client
}

// NewDashboardService: rdb may be nil (tests); caching is then skipped.
func NewDashboardService(expenses repository.ExpenseRepository, salaries repository.SalaryRepository, rdb *redis.Client) DashboardService {
	return &dashboardService{expenses: expenses, salaries: salaries, rdb: rdb}
}

// Summary aggregates expense and salary data for the dashboard charts,
// scoped exactly like the list endpoints. Results are cached per scope for
// a minute; cache errors are ignored — redis being down only costs latency.
func (s *dashboardService) Summary(ctx context.Context, caller *policy.Identity) (*dto.DashboardSummary, error) {
	scope, err := policy.ExpenseScope(caller)
	if err != nil {
		return nil, err
	}

	cacheKey := "dashboard:all"
	if !scope.All {
		cacheKey = "dashboard:" + scope.EmployeeID.String()
	}
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var summary dto.DashboardSummary
			if json.Unmarshal(cached, &summary) == nil {
				return &summary, nil
			}
		}
	}

	summary := &dto.DashboardSummary{}
	if summary.ExpenseCount, err = s.expenses.Count(ctx, scope); err != nil {
		return nil, apierror.Store("Could not build dashboard summary")
	}
	if summary.SalaryCount, err = s.salaries.Count(ctx, scope); err != nil {
		return nil, apierror.Store("Could not build dashboard summary")
	}

	byCategory, err := s.expenses.TotalsByCategory(ctx, scope)
	if err != nil {
		return nil, apierror.Store("Could not build dashboard summary")
	}
	for _, row := range byCategory {
		summary.ExpensesByCategory = append(summary.ExpensesByCategory,
			dto.CategoryTotal{Category: row.Category, Total: row.Total})
	}

	expensesByMonth, err := s.expenses.TotalsByMonth(ctx, scope)
	if err != nil {
		return nil, apierror.Store("Could not build dashboard summary")
	}
	for _, row := range expensesByMonth {
		summary.ExpensesByMonth = append(summary.ExpensesByMonth,
			dto.MonthlyTotal{Month: row.Month, Year: row.Year, Total: row.Total})
	}

	salariesByMonth, err := s.salaries.TotalsByMonth(ctx, scope)
	if err != nil {
		return nil, apierror.Store("Could not build dashboard summary")
	}
	for _, row := range salariesByMonth {
		summary.SalariesByMonth = append(summary.SalariesByMonth,
			dto.MonthlyTotal{Month: row.Month, Year: row.Year, Total: row.Total})
	}

	if s.rdb != nil {
		if b, err := json.Marshal(summary); err == nil {
			_ = s.rdb.Set(context.Background(), cacheKey, b, summaryCacheTTL).Err()
		}
	}
	return summary, nil
}
