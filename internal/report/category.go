package report

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategoryReport is the spending in one category compared to its budget.
type CategoryReport struct {
	TotalAmount decimal.Decimal `json:"total_amount" example:"80"` // Sum of all expenses in the category
	Count       int             `json:"count" example:"2"`         // Number of expenses in the category
	Budget      decimal.Decimal `json:"budget" example:"70"`       // Budget for the category, 0 if there is none
	OverBudget  bool            `json:"over_budget" example:"true"`
	Percentage  decimal.Decimal `json:"percentage" example:"28.57"` // Share of the category in the month's expenses
}

// TopCategory is the category with the highest spending.
type TopCategory struct {
	Category string          `json:"category" example:"Rent"`
	Amount   decimal.Decimal `json:"amount" example:"200"`
}

// Report is the category breakdown for a month.
type Report struct {
	Month                     types.Month               `json:"month" example:"2024-05"`
	ExpensesByCategory        map[string]CategoryReport `json:"expenses_by_category"`
	TopSpendingCategory       *TopCategory              `json:"top_spending_category"` // nil if there are no expenses
	OverBudgetCategoriesCount int                       `json:"over_budget_categories_count" example:"1"`
	TotalExpenses             decimal.Decimal           `json:"total_expenses" example:"280"`
	TotalCategories           int                       `json:"total_categories" example:"2"`

	// Categories in the order in which they first appear in the expenses.
	Order []string `json:"-"`
}

// group accumulates the expenses of one category.
type group struct {
	category string
	total    decimal.Decimal
	count    int
}

// Categorize computes the category Report for the month.
//
// Categories keep the order in which they first appear in the expenses.
// When two categories have the same total, the one appearing first is
// the top spending category.
func Categorize(month types.Month, expenses []models.Expense, budgets []models.Budget) Report {
	lookup := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		key := b.Category
		if key == "" {
			key = GeneralBudgetKey
		}
		lookup[key] = b.Amount
	}

	var groups []*group
	index := make(map[string]*group)
	totalExpenses := decimal.Zero

	for _, e := range expenses {
		category := e.Category
		if category == "" {
			category = DefaultCategory
		}

		g, ok := index[category]
		if !ok {
			g = &group{category: category, total: decimal.Zero}
			index[category] = g
			groups = append(groups, g)
		}

		g.total = g.total.Add(e.Amount)
		g.count++
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	r := Report{
		Month:              month,
		ExpensesByCategory: make(map[string]CategoryReport, len(groups)),
		TotalExpenses:      totalExpenses.Round(precision),
		TotalCategories:    len(groups),
		Order:              make([]string, 0, len(groups)),
	}

	top := decimal.Zero
	for _, g := range groups {
		budget, ok := lookup[g.category]
		if !ok {
			budget = decimal.Zero
		}

		overBudget := budget.IsPositive() && g.total.GreaterThan(budget)
		if overBudget {
			r.OverBudgetCategoriesCount++
		}

		if g.total.GreaterThan(top) {
			top = g.total
			r.TopSpendingCategory = &TopCategory{Category: g.category}
		}

		r.ExpensesByCategory[g.category] = CategoryReport{
			TotalAmount: g.total.Round(precision),
			Count:       g.count,
			Budget:      budget,
			OverBudget:  overBudget,
			Percentage:  percent(g.total, totalExpenses).Round(precision),
		}
		r.Order = append(r.Order, g.category)
	}

	if r.TopSpendingCategory != nil {
		r.TopSpendingCategory.Amount = top.Round(precision)
	}

	return r
}
