package models

import (
	"context"

	"github.com/fintrack/backend/internal/types"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// MonthData is the complete set of expenses and budgets of a user for a month.
type MonthData struct {
	Month    types.Month
	Expenses []Expense
	Budgets  []Budget
}

// FetchMonth loads the expenses and budgets of a user for a month.
//
// Both sets are loaded concurrently. If either query fails, no data is
// returned.
func FetchMonth(ctx context.Context, db *gorm.DB, userID string, month types.Month) (MonthData, error) {
	data := MonthData{Month: month}
	from, until := month.Range()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		expenses, err := ListExpenses(ctx, db, userID, from, until)
		data.Expenses = expenses
		return err
	})

	g.Go(func() error {
		budgets, err := ListBudgets(ctx, db, userID, month, nil)
		data.Budgets = budgets
		return err
	})

	if err := g.Wait(); err != nil {
		return MonthData{}, err
	}

	return data, nil
}
