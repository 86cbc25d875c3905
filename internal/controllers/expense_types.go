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

// ExpenseEditable contains all fields of an expense that can be set by the API.
type ExpenseEditable struct {
	Amount   types.Amount `json:"amount" swaggertype:"number" example:"12.5"` // Amount of the expense, must be positive. Accepted as number or numeric string
	Category string       `json:"category" example:"Groceries"`               // Category of the expense
	Date     types.Date   `json:"date" swaggertype:"string" example:"2024-05-10"`
	Note     string       `json:"note" example:"Weekly shopping" default:""`
}

var requiredExpenseFields = []requiredField{
	{"Amount", "amount"},
	{"Category", "category"},
	{"Date", "date"},
}

// apply sets all fields of the editable that are in set on the model.
func (editable ExpenseEditable) apply(m *models.Expense, set []string) {
	for _, field := range set {
		switch field {
		case "Amount":
			m.Amount = editable.Amount.Decimal
		case "Category":
			m.Category = editable.Category
		case "Date":
			m.Date = editable.Date.Time()
		case "Note":
			m.Note = editable.Note
		}
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/users/alice/expenses/3b1ea324-d438-4419-882a-2fc91d71772f"`
}

type Expense struct {
	ID        uuid.UUID       `json:"id" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number" example:"12.5"`
	Category  string          `json:"category" example:"Groceries"`
	Date      types.Date      `json:"date" swaggertype:"string" example:"2024-05-10"`
	Note      string          `json:"note" example:"Weekly shopping"`
	CreatedAt time.Time       `json:"created_at" example:"2024-05-10T18:43:00.271152Z"`
	UpdatedAt time.Time       `json:"updated_at" example:"2024-05-10T18:43:00.271152Z"`
	Links     ExpenseLinks    `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	return Expense{
		ID:        model.ID,
		Amount:    model.Amount,
		Category:  model.Category,
		Date:      types.Date(model.Date),
		Note:      model.Note,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/api/users/%s/expenses/%s", httputil.BaseURL(c), model.UserID, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Expenses   []Expense   `json:"expenses"`
	Month      types.Month `json:"month" swaggertype:"string" example:"2024-05"`
	TotalCount int         `json:"total_count" example:"3"`
}

type ExpenseResponse struct {
	Message string  `json:"message,omitempty" example:"expense added successfully"`
	Expense Expense `json:"expense"`
}

type ExpenseQueryFilter struct {
	Month    string `form:"month" example:"2024-05"`   // Year and month in YYYY-MM format. Defaults to the current month
	Category string `form:"category" example:"Food*"` // Category, may contain * as wildcard
}
