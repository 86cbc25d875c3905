package controllers

import (
	"fmt"
	"time"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable contains all fields of a budget that can be set by the API.
type BudgetEditable struct {
	Amount   types.Amount `json:"amount" swaggertype:"number" example:"300"`    // Spending ceiling, must be positive. Accepted as number or numeric string
	Month    types.Month  `json:"month" swaggertype:"string" example:"2024-05"` // Year and month in YYYY-MM format
	Category string       `json:"category" example:"Groceries" default:""`      // Category of the budget. Leave empty for a budget for the whole month
}

var requiredBudgetFields = []requiredField{
	{"Amount", "amount"},
	{"Month", "month"},
}

// apply sets all fields of the editable that are in set on the model.
func (editable BudgetEditable) apply(m *models.Budget, set []string) {
	for _, field := range set {
		switch field {
		case "Amount":
			m.Amount = editable.Amount.Decimal
		case "Month":
			m.Month = editable.Month
		case "Category":
			m.Category = editable.Category
		}
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/users/alice/budgets/f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"`
}

type Budget struct {
	ID        uuid.UUID       `json:"id" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number" example:"300"`
	Month     types.Month     `json:"month" swaggertype:"string" example:"2024-05"`
	Category  string          `json:"category" example:""`
	CreatedAt time.Time       `json:"created_at" example:"2024-05-01T08:00:00.000000Z"`
	UpdatedAt time.Time       `json:"updated_at" example:"2024-05-01T08:00:00.000000Z"`
	Links     BudgetLinks     `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	return Budget{
		ID:        model.ID,
		Amount:    model.Amount,
		Month:     model.Month,
		Category:  model.Category,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/api/users/%s/budgets/%s", httputil.BaseURL(c), model.UserID, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Budgets     []Budget        `json:"budgets"`
	Month       types.Month     `json:"month" swaggertype:"string" example:"2024-05"`
	TotalBudget decimal.Decimal `json:"total_budget" swaggertype:"number" example:"370"` // Sum of all budgets in the list
	Count       int             `json:"count" example:"2"`
}

type BudgetResponse struct {
	Message string `json:"message,omitempty" example:"budget created successfully"`
	Budget  Budget `json:"budget"`
}

type BudgetQueryFilter struct {
	Month    string  `form:"month" example:"2024-05"` // Year and month in YYYY-MM format. Defaults to the current month
	Category *string `form:"category"`                // Only return the budget for this category. Set to an empty value for the general budget
}
