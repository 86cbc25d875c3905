package models_test

import (
	"testing"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSetBudgetCreatesAndUpdates() {
	month := types.NewMonth(2024, time.May)

	budget, created, err := models.SetBudget(suite.ctx, suite.db, "alice", month, "Food", decimal.NewFromInt(100))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), created)

	updated, created, err := models.SetBudget(suite.ctx, suite.db, "alice", month, " Food ", decimal.NewFromInt(150))
	require.Nil(suite.T(), err)
	assert.False(suite.T(), created)
	assert.Equal(suite.T(), budget.ID, updated.ID)
	assert.True(suite.T(), decimal.NewFromInt(150).Equal(updated.Amount))

	budgets, err := models.ListBudgets(suite.ctx, suite.db, "alice", month, nil)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), budgets, 1)
	assert.True(suite.T(), decimal.NewFromInt(150).Equal(budgets[0].Amount))
}

func (suite *TestSuiteStandard) TestSetBudgetGeneralIsSeparateKey() {
	month := types.NewMonth(2024, time.May)

	_, created, err := models.SetBudget(suite.ctx, suite.db, "alice", month, "", decimal.NewFromInt(300))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), created)

	_, created, err = models.SetBudget(suite.ctx, suite.db, "alice", month, "Food", decimal.NewFromInt(70))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), created)

	_, created, err = models.SetBudget(suite.ctx, suite.db, "alice", month, "  ", decimal.NewFromInt(320))
	require.Nil(suite.T(), err)
	assert.False(suite.T(), created, "whitespace only category is the general budget")

	// Same month and category for another user is a different budget
	_, created, err = models.SetBudget(suite.ctx, suite.db, "bob", month, "", decimal.NewFromInt(10))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), created)

	budgets, err := models.ListBudgets(suite.ctx, suite.db, "alice", month, nil)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), budgets, 2)
	assert.Equal(suite.T(), "", budgets[0].Category)
	assert.True(suite.T(), decimal.NewFromInt(320).Equal(budgets[0].Amount))
	assert.Equal(suite.T(), "Food", budgets[1].Category)
}

func (suite *TestSuiteStandard) TestListBudgetsFilter() {
	may := types.NewMonth(2024, time.May)
	june := types.NewMonth(2024, time.June)

	_ = suite.createTestBudget(models.Budget{UserID: "alice", Month: may, Amount: decimal.NewFromInt(300)})
	_ = suite.createTestBudget(models.Budget{UserID: "alice", Month: may, Category: "Food", Amount: decimal.NewFromInt(70)})
	_ = suite.createTestBudget(models.Budget{UserID: "alice", Month: june, Category: "Food", Amount: decimal.NewFromInt(80)})

	general := ""
	food := "Food"

	tests := []struct {
		name     string
		month    types.Month
		category *string
		len      int
	}{
		{"All for May", may, nil, 2},
		{"General for May", may, &general, 1},
		{"Food for May", may, &food, 1},
		{"All for June", june, nil, 1},
		{"General for June", june, &general, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			budgets, err := models.ListBudgets(suite.ctx, suite.db, "alice", tt.month, tt.category)
			require.Nil(t, err)
			assert.Len(t, budgets, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetUniqueConstraint() {
	month := types.NewMonth(2024, time.May)

	_ = suite.createTestBudget(models.Budget{UserID: "alice", Month: month, Category: "Food", Amount: decimal.NewFromInt(70)})
	rent := suite.createTestBudget(models.Budget{UserID: "alice", Month: month, Category: "Rent", Amount: decimal.NewFromInt(700)})

	rent.Category = "Food"
	err := models.SaveBudget(suite.ctx, suite.db, &rent)
	assert.ErrorIs(suite.T(), err, models.ErrBudgetNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetMonthRoundTrip() {
	month := types.NewMonth(1999, time.December)
	budget := suite.createTestBudget(models.Budget{UserID: "alice", Month: month, Amount: decimal.NewFromInt(1)})

	found, err := models.GetBudget(suite.ctx, suite.db, "alice", budget.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), month, found.Month)
}

func (suite *TestSuiteStandard) TestBudgetAmountNotPositive() {
	_, _, err := models.SetBudget(suite.ctx, suite.db, "alice", types.NewMonth(2024, time.May), "", decimal.Zero)
	assert.ErrorIs(suite.T(), err, types.ErrAmountNotPositive)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	budget := suite.createTestBudget(models.Budget{UserID: "alice", Month: types.NewMonth(2024, time.May), Amount: decimal.NewFromInt(1)})

	err := models.DeleteBudget(suite.ctx, suite.db, "bob", budget.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	require.Nil(suite.T(), models.DeleteBudget(suite.ctx, suite.db, "alice", budget.ID))

	_, err = models.GetBudget(suite.ctx, suite.db, "alice", budget.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetAmountKeepsAllDigits() {
	amount := decimal.RequireFromString("123456789012.87654321")

	created, _, err := models.SetBudget(suite.ctx, suite.db, "alice", types.NewMonth(2024, time.May), "", amount)
	require.Nil(suite.T(), err)

	budget, err := models.GetBudget(suite.ctx, suite.db, "alice", created.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), amount.String(), budget.Amount.String())
}

func (suite *TestSuiteStandard) TestBudgetAmountOutOfRange() {
	_, _, err := models.SetBudget(suite.ctx, suite.db, "alice", types.NewMonth(2024, time.May), "", decimal.RequireFromString("1e400"))
	assert.ErrorIs(suite.T(), err, types.ErrAmountOutOfRange)
}
