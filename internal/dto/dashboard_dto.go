package dto

import "github.com/shopspring/decimal"

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type MonthlyTotal struct {
	Month string          `json:"month"`
	Year  int             `json:"year"`
	Total decimal.Decimal `json:"total"`
}

// DashboardSummary feeds the dashboard charts. Scoped like the list
// endpoints: admins aggregate over everything, employees over their own rows.
type DashboardSummary struct {
	ExpenseCount       int64           `json:"expenseCount"`
	SalaryCount        int64           `json:"salaryCount"`
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`
	ExpensesByMonth    []MonthlyTotal  `json:"expensesByMonth"`
	SalariesByMonth    []MonthlyTotal  `json:"salariesByMonth"`
}
