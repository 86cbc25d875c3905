package models_test

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestFetchMonth() {
	month := types.NewMonth(2024, time.May)

	_ = suite.createTestExpense(models.Expense{UserID: "alice", Amount: decimal.NewFromInt(50), Category: "Food", Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestExpense(models.Expense{UserID: "alice", Amount: decimal.NewFromInt(20), Category: "Food", Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestBudget(models.Budget{UserID: "alice", Month: month, Amount: decimal.NewFromInt(300)})
	_ = suite.createTestBudget(models.Budget{UserID: "alice", Month: month.AddDate(0, 1), Amount: decimal.NewFromInt(300)})

	data, err := models.FetchMonth(suite.ctx, suite.db, "alice", month)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), month, data.Month)
	assert.Len(suite.T(), data.Expenses, 1)
	assert.Len(suite.T(), data.Budgets, 1)
}

func (suite *TestSuiteStandard) TestFetchMonthDBClosed() {
	suite.CloseDB()

	data, err := models.FetchMonth(suite.ctx, suite.db, "alice", types.NewMonth(2024, time.May))
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
	assert.Nil(suite.T(), data.Expenses)
	assert.Nil(suite.T(), data.Budgets)
}
