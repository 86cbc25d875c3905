package models

import (
	"context"
	"strings"
	"time"

	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single expense of a user.
type Expense struct {
	DefaultModel
	UserID   string          `gorm:"not null;index:idx_expenses_user_date,priority:1"`
	Amount   decimal.Decimal `gorm:"type:TEXT"` // TEXT so that SQLite keeps all digits
	Category string
	Date     time.Time `gorm:"index:idx_expenses_user_date,priority:2"` // Day of the expense, stored at midnight UTC
	Note     string
}

// AfterFind updates the timestamps and the date to use UTC as timezone.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - trims whitespace from string fields
//   - sets the timezone for the Date to UTC
//   - rejects amounts that are not positive or out of range
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Note = strings.TrimSpace(e.Note)
	e.Date = e.Date.In(time.UTC)

	return types.CheckAmount(e.Amount)
}

// ListExpenses returns all expenses of the user with a date between
// from and until, both inclusive.
//
// Expenses are ordered by date, then by creation time. The report engine
// relies on this order to be stable.
func ListExpenses(ctx context.Context, db *gorm.DB, userID string, from, until time.Time) ([]Expense, error) {
	var expenses []Expense

	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", from.In(time.UTC), until.In(time.UTC)).
		Order("date ASC, created_at ASC, id ASC").
		Find(&expenses).
		Error

	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// GetExpense returns a single expense of the user.
func GetExpense(ctx context.Context, db *gorm.DB, userID string, id uuid.UUID) (Expense, error) {
	var expense Expense

	err := db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&expense).
		Error

	return expense, err
}

// CreateExpense stores a new expense. ID and timestamps are set on the
// passed expense.
func CreateExpense(ctx context.Context, db *gorm.DB, expense *Expense) error {
	return db.WithContext(ctx).Create(expense).Error
}

// SaveExpense writes all fields of an existing expense and refreshes
// its UpdatedAt timestamp.
func SaveExpense(ctx context.Context, db *gorm.DB, expense *Expense) error {
	return db.WithContext(ctx).Save(expense).Error
}

// DeleteExpense deletes an expense of the user.
func DeleteExpense(ctx context.Context, db *gorm.DB, userID string, id uuid.UUID) error {
	expense, err := GetExpense(ctx, db, userID, id)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Delete(&expense).Error
}
