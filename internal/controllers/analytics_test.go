package controllers_test

import (
	"net/http"

	"github.com/fintrack/backend/internal/report"
	"github.com/fintrack/backend/test"
)

// seedMonth creates the expenses and budgets of alice for May 2024.
func (suite *TestSuiteStandard) seedMonth() {
	for _, e := range []map[string]any{
		{"amount": 50, "category": "Food", "date": "2024-05-02"},
		{"amount": 200, "category": "Rent", "date": "2024-05-03"},
		{"amount": 30, "category": "Food", "date": "2024-05-04"},
		{"amount": 1000, "category": "Rent", "date": "2024-06-01"},
	} {
		suite.createTestExpense("alice", test.Alice, e)
	}
	suite.createTestExpense("bob", test.Bob, map[string]any{"amount": 5000, "category": "Food", "date": "2024-05-02"})

	suite.setTestBudget("alice", test.Alice, map[string]any{"amount": 300, "month": "2024-05"}, http.StatusCreated)
	suite.setTestBudget("alice", test.Alice, map[string]any{"amount": 70, "month": "2024-05", "category": "Food"}, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestAnalyticsOptions() {
	for _, path := range []string{"/api/summary/alice/2024-05", "/api/report/alice/2024-05"} {
		r := test.Request(suite.T(), suite.controller, http.MethodOptions, "http://example.com"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
	}
}

func (suite *TestSuiteStandard) TestSummary() {
	suite.seedMonth()

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/summary/alice/2024-05", "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var s report.Summary
	test.DecodeResponse(suite.T(), &r, &s)
	suite.Assert().Equal("2024-05", s.Month.String())
	suite.Assert().Equal("280", s.TotalExpenses.String())
	suite.Assert().Equal("370", s.TotalBudget.String())
	suite.Assert().Equal("90", s.RemainingBudget.String())
	suite.Assert().Equal("75.68", s.BudgetUsagePercent.String())
	suite.Assert().Equal(report.StatusUnderBudget, s.BudgetStatus)
	suite.Assert().Equal(3, s.ExpenseCount)
	suite.Assert().Equal(2, s.BudgetCount)
}

func (suite *TestSuiteStandard) TestSummaryNoData() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/summary/alice/2024-05", "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var s report.Summary
	test.DecodeResponse(suite.T(), &r, &s)
	suite.Assert().True(s.TotalExpenses.IsZero())
	suite.Assert().True(s.BudgetUsagePercent.IsZero())
	suite.Assert().Equal(report.StatusNoBudget, s.BudgetStatus)
}

func (suite *TestSuiteStandard) TestReport() {
	suite.seedMonth()

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/report/alice/2024-05", "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rep report.Report
	test.DecodeResponse(suite.T(), &r, &rep)
	suite.Assert().Equal("2024-05", rep.Month.String())
	suite.Assert().Equal(2, rep.TotalCategories)
	suite.Assert().Equal(1, rep.OverBudgetCategoriesCount)
	suite.Assert().Equal("280", rep.TotalExpenses.String())

	food := rep.ExpensesByCategory["Food"]
	suite.Assert().Equal("80", food.TotalAmount.String())
	suite.Assert().Equal(2, food.Count)
	suite.Assert().Equal("70", food.Budget.String())
	suite.Assert().True(food.OverBudget)
	suite.Assert().Equal("28.57", food.Percentage.String())

	rent := rep.ExpensesByCategory["Rent"]
	suite.Assert().Equal("200", rent.TotalAmount.String())
	suite.Assert().True(rent.Budget.IsZero())
	suite.Assert().False(rent.OverBudget)
	suite.Assert().Equal("71.43", rent.Percentage.String())

	if suite.Assert().NotNil(rep.TopSpendingCategory) {
		suite.Assert().Equal("Rent", rep.TopSpendingCategory.Category)
		suite.Assert().Equal("200", rep.TopSpendingCategory.Amount.String())
	}
}

func (suite *TestSuiteStandard) TestReportNoData() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/report/alice/2024-05", "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), `"top_spending_category":null`)
	suite.Assert().Contains(r.Body.String(), `"expenses_by_category":{}`)
}

func (suite *TestSuiteStandard) TestAnalyticsFails() {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
		status  int
		err     string
	}{
		{"Summary invalid month", "/api/summary/alice/2024-13", test.Alice, http.StatusBadRequest, "invalid month format, use YYYY-MM"},
		{"Report invalid month", "/api/report/alice/May", test.Alice, http.StatusBadRequest, "invalid month format, use YYYY-MM"},
		{"Summary of other user", "/api/summary/alice/2024-05", test.Bob, http.StatusForbidden, "unauthorized access to user data"},
		{"Report without token", "/api/report/alice/2024-05", nil, http.StatusUnauthorized, "authorization header missing"},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com"+tt.path, "", tt.headers)
		test.AssertHTTPStatus(suite.T(), &r, tt.status)
		suite.Assert().Equal(tt.err, test.DecodeError(suite.T(), r.Body.Bytes()), tt.name)
	}
}

func (suite *TestSuiteStandard) TestAnalyticsDBClosed() {
	suite.CloseDB()

	for _, path := range []string{"/api/summary/alice/2024-05", "/api/report/alice/2024-05"} {
		r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com"+path, "", test.Alice)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	}
}
