package models

import (
	"context"
	"errors"
	"strings"

	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending ceiling of a user for a month.
//
// A budget with an empty category is a general budget for the whole month.
// There can only be one budget per user, month and category.
type Budget struct {
	DefaultModel
	UserID   string          `gorm:"not null;uniqueIndex:idx_budgets_user_month_category"`
	Amount   decimal.Decimal `gorm:"type:TEXT"` // TEXT so that SQLite keeps all digits
	Month    types.Month     `gorm:"not null;uniqueIndex:idx_budgets_user_month_category"`
	Category string          `gorm:"not null;default:'';uniqueIndex:idx_budgets_user_month_category"`
}

// BeforeSave trims whitespace from the category and rejects amounts
// that are not positive or out of range.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	return types.CheckAmount(b.Amount)
}

// ListBudgets returns the budgets of the user for a month, ordered by category.
//
// If category is not nil, only the budget for that category is returned.
// An empty category selects the general budget.
func ListBudgets(ctx context.Context, db *gorm.DB, userID string, month types.Month, category *string) ([]Budget, error) {
	var budgets []Budget

	q := db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month)

	if category != nil {
		q = q.Where("category = ?", strings.TrimSpace(*category))
	}

	err := q.Order("category ASC, created_at ASC").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// GetBudget returns a single budget of the user.
func GetBudget(ctx context.Context, db *gorm.DB, userID string, id uuid.UUID) (Budget, error) {
	var budget Budget

	err := db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&budget).
		Error

	return budget, err
}

// SetBudget creates the budget for the month and category or, if it
// exists already, updates its amount.
//
// The returned bool is true when a new budget has been created.
func SetBudget(ctx context.Context, db *gorm.DB, userID string, month types.Month, category string, amount decimal.Decimal) (Budget, bool, error) {
	var budget Budget
	created := false
	category = strings.TrimSpace(category)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("user_id = ? AND month = ? AND category = ?", userID, month, category).
			First(&budget).
			Error

		if errors.Is(err, ErrResourceNotFound) {
			budget = Budget{
				UserID:   userID,
				Month:    month,
				Category: category,
				Amount:   amount,
			}
			created = true
			return tx.Create(&budget).Error
		} else if err != nil {
			return err
		}

		budget.Amount = amount
		return tx.Save(&budget).Error
	})

	if err != nil {
		return Budget{}, false, err
	}

	return budget, created, nil
}

// SaveBudget writes all fields of an existing budget.
//
// Moving a budget to a month and category that already has a budget
// fails with ErrBudgetNotUnique.
func SaveBudget(ctx context.Context, db *gorm.DB, budget *Budget) error {
	return db.WithContext(ctx).Save(budget).Error
}

// DeleteBudget deletes a budget of the user.
func DeleteBudget(ctx context.Context, db *gorm.DB, userID string, id uuid.UUID) error {
	budget, err := GetBudget(ctx, db, userID, id)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Delete(&budget).Error
}
