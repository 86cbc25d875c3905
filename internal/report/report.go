// Package report computes monthly spending summaries and category reports.
//
// All functions are pure. They expect the complete expense and budget sets
// for one month of one user, filtered by the caller.
package report

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Status of the spending in a month relative to its budget.
type Status string

const (
	StatusNoBudget    Status = "no_budget"
	StatusUnderBudget Status = "under_budget"
	StatusOverBudget  Status = "over_budget"
)

const (
	// DefaultCategory is used for expenses without a category.
	DefaultCategory = "Other"

	// GeneralBudgetKey is the lookup key for budgets without a category.
	GeneralBudgetKey = "general"

	// precision is the number of decimal places of presented values.
	precision = 2
)

var hundred = decimal.NewFromInt(100)

// percent returns part / total * 100. It returns zero when total is not positive.
func percent(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}

	return part.Mul(hundred).Div(total)
}

// Summary is the financial summary for a month.
type Summary struct {
	Month              types.Month     `json:"month" example:"2024-05"`
	TotalExpenses      decimal.Decimal `json:"total_expenses" example:"280"`
	TotalBudget        decimal.Decimal `json:"total_budget" example:"370"`
	RemainingBudget    decimal.Decimal `json:"remaining_budget" example:"90"`
	BudgetUsagePercent decimal.Decimal `json:"budget_usage_percent" example:"75.68"`
	BudgetStatus       Status          `json:"budget_status" example:"under_budget"`
	ExpenseCount       int             `json:"expense_count" example:"3"`
	BudgetCount        int             `json:"budget_count" example:"2"`
}

// Summarize computes the Summary for the month.
//
// The total budget is the sum of all budgets, no matter which category
// they are for.
func Summarize(month types.Month, expenses []models.Expense, budgets []models.Budget) Summary {
	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	totalBudget := decimal.Zero
	for _, b := range budgets {
		totalBudget = totalBudget.Add(b.Amount)
	}

	remaining := totalBudget.Sub(totalExpenses)

	status := StatusOverBudget
	if totalBudget.IsZero() {
		status = StatusNoBudget
	} else if !remaining.IsNegative() {
		status = StatusUnderBudget
	}

	return Summary{
		Month:              month,
		TotalExpenses:      totalExpenses.Round(precision),
		TotalBudget:        totalBudget.Round(precision),
		RemainingBudget:    remaining.Round(precision),
		BudgetUsagePercent: percent(totalExpenses, totalBudget).Round(precision),
		BudgetStatus:       status,
		ExpenseCount:       len(expenses),
		BudgetCount:        len(budgets),
	}
}
