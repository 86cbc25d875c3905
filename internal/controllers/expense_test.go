package controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/fintrack/backend/internal/controllers"
	"github.com/fintrack/backend/internal/types"
	"github.com/fintrack/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestExpense(userID string, headers map[string]string, body map[string]any) controllers.Expense {
	r := test.Request(suite.T(), suite.controller, http.MethodPost, fmt.Sprintf("http://example.com/api/users/%s/expenses", userID), body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Expense
}

func (suite *TestSuiteStandard) TestExpensesOptions() {
	r := test.Request(suite.T(), suite.controller, http.MethodOptions, "http://example.com/api/users/alice/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), suite.controller, http.MethodOptions, fmt.Sprintf("http://example.com/api/users/alice/expenses/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	e := suite.createTestExpense("alice", test.Alice, map[string]any{
		"amount":   12.5,
		"category": " Groceries ",
		"date":     "2024-05-10",
		"note":     "Weekly shopping ",
	})

	suite.Assert().Equal("12.5", e.Amount.String())
	suite.Assert().Equal("Groceries", e.Category)
	suite.Assert().Equal("2024-05-10", e.Date.String())
	suite.Assert().Equal("Weekly shopping", e.Note)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/api/users/alice/expenses/%s", e.ID), e.Links.Self)
	suite.Assert().False(e.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestExpensesCreateNumericString() {
	e := suite.createTestExpense("alice", test.Alice, map[string]any{
		"amount":   "7.25",
		"category": "Coffee",
		"date":     "2024-05-11",
	})

	suite.Assert().Equal("7.25", e.Amount.String())
	suite.Assert().Equal("", e.Note)
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken JSON", `{"amount": 12`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data. Please check and try again"},
		{"Missing amount", `{"category": "Food", "date": "2024-05-10"}`, http.StatusBadRequest, "missing required field: amount"},
		{"Missing category", `{"amount": 5, "date": "2024-05-10"}`, http.StatusBadRequest, "missing required field: category"},
		{"Missing date", `{"amount": 5, "category": "Food"}`, http.StatusBadRequest, "missing required field: date"},
		{"Negative amount", `{"amount": -5, "category": "Food", "date": "2024-05-10"}`, http.StatusBadRequest, "amount must be positive"},
		{"Zero amount", `{"amount": "0", "category": "Food", "date": "2024-05-10"}`, http.StatusBadRequest, "amount must be positive"},
		{"Invalid amount", `{"amount": "twelve", "category": "Food", "date": "2024-05-10"}`, http.StatusBadRequest, "invalid amount format"},
		{"Invalid date", `{"amount": 5, "category": "Food", "date": "10.05.2024"}`, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD"},
		{"Amount too large", `{"amount": "1e400", "category": "Food", "date": "2024-05-10"}`, http.StatusBadRequest, "amount must have at most 12 digits before and 8 digits after the decimal point"},
		{"Amount too precise", `{"amount": 0.123456789, "category": "Food", "date": "2024-05-10"}`, http.StatusBadRequest, "amount must have at most 12 digits before and 8 digits after the decimal point"},
		{"Impossible date", `{"amount": 5, "category": "Food", "date": "2024-02-30"}`, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/api/users/alice/expenses", tt.body, test.Alice)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesAuth() {
	body := map[string]any{"amount": 5, "category": "Food", "date": "2024-05-10"}

	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/api/users/alice/expenses", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	suite.Assert().Equal("authorization header missing", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/api/users/alice/expenses", body, map[string]string{"Authorization": "Bearer forged"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	suite.Assert().Equal("invalid or expired token", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/api/users/alice/expenses", body, test.Bob)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
	suite.Assert().Equal("unauthorized access to user data", test.DecodeError(suite.T(), r.Body.Bytes()))

	// Bob cannot reach alice's expense through his own path either
	e := suite.createTestExpense("alice", test.Alice, body)
	r = test.Request(suite.T(), suite.controller, http.MethodGet, fmt.Sprintf("http://example.com/api/users/bob/expenses/%s", e.ID), "", test.Bob)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesList() {
	suite.createTestExpense("alice", test.Alice, map[string]any{"amount": 30, "category": "Food", "date": "2024-05-20"})
	suite.createTestExpense("alice", test.Alice, map[string]any{"amount": 50, "category": "Food", "date": "2024-05-03"})
	suite.createTestExpense("alice", test.Alice, map[string]any{"amount": 200, "category": "Rent", "date": "2024-05-01"})
	suite.createTestExpense("alice", test.Alice, map[string]any{"amount": 12, "category": "Fuel", "date": "2024-05-31"})
	suite.createTestExpense("alice", test.Alice, map[string]any{"amount": 99, "category": "Food", "date": "2024-06-01"})
	suite.createTestExpense("bob", test.Bob, map[string]any{"amount": 8, "category": "Food", "date": "2024-05-10"})

	tests := []struct {
		name       string
		query      string
		categories []string
	}{
		{"Whole month ordered by date", "?month=2024-05", []string{"Rent", "Food", "Food", "Fuel"}},
		{"Exact category", "?month=2024-05&category=Food", []string{"Food", "Food"}},
		{"Glob category", "?month=2024-05&category=F*", []string{"Food", "Food", "Fuel"}},
		{"No match", "?month=2024-05&category=Travel", []string{}},
		{"Other month", "?month=2024-06", []string{"Food"}},
		{"Empty month", "?month=2023-01", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodGet, "http://example.com/api/users/alice/expenses"+tt.query, "", test.Alice)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response controllers.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)

			categories := []string{}
			for _, e := range response.Expenses {
				categories = append(categories, e.Category)
			}

			assert.Equal(t, tt.categories, categories)
			assert.Equal(t, len(tt.categories), response.TotalCount)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesListCurrentMonth() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/users/alice/expenses", "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(types.CurrentMonth().String(), response.Month.String())
	suite.Assert().Len(response.Expenses, 0)
}

func (suite *TestSuiteStandard) TestExpensesListInvalidMonth() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/users/alice/expenses?month=2024-13", "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("invalid month format, use YYYY-MM", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestExpensesGet() {
	e := suite.createTestExpense("alice", test.Alice, map[string]any{"amount": 5, "category": "Food", "date": "2024-05-10"})

	r := test.Request(suite.T(), suite.controller, http.MethodGet, e.Links.Self, "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(e.ID, response.Expense.ID)
	suite.Assert().Empty(response.Message)
}

func (suite *TestSuiteStandard) TestExpensesGetFails() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/users/alice/expenses/not-a-uuid", "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("the specified resource ID is not a valid UUID", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.T(), suite.controller, http.MethodGet, fmt.Sprintf("http://example.com/api/users/alice/expenses/%s", uuid.New()), "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no expense matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestExpensesUpdate() {
	e := suite.createTestExpense("alice", test.Alice, map[string]any{"amount": 5, "category": "Food", "date": "2024-05-10", "note": "lunch"})

	r := test.Request(suite.T(), suite.controller, http.MethodPut, e.Links.Self, map[string]any{"note": "dinner", "date": "2024-05-11"}, test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("expense updated successfully", response.Message)
	suite.Assert().Equal("dinner", response.Expense.Note)
	suite.Assert().Equal("2024-05-11", response.Expense.Date.String())
	suite.Assert().Equal("5", response.Expense.Amount.String(), "Amount must not change if it is not set")
	suite.Assert().Equal("Food", response.Expense.Category)

	// Explicitly clearing the note is possible
	r = test.Request(suite.T(), suite.controller, http.MethodPut, e.Links.Self, `{"note": ""}`, test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("", response.Expense.Note)
}

func (suite *TestSuiteStandard) TestExpensesUpdateFails() {
	e := suite.createTestExpense("alice", test.Alice, map[string]any{"amount": 5, "category": "Food", "date": "2024-05-10"})

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Empty body", e.Links.Self, "", http.StatusBadRequest},
		{"Invalid amount", e.Links.Self, `{"amount": -1}`, http.StatusBadRequest},
		{"Invalid date", e.Links.Self, `{"date": "yesterday"}`, http.StatusBadRequest},
		{"Not found", fmt.Sprintf("http://example.com/api/users/alice/expenses/%s", uuid.New()), `{"note": "x"}`, http.StatusNotFound},
		{"Invalid ID", "http://example.com/api/users/alice/expenses/-", `{"note": "x"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPut, tt.url, tt.body, test.Alice)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	e := suite.createTestExpense("alice", test.Alice, map[string]any{"amount": 5, "category": "Food", "date": "2024-05-10"})

	r := test.Request(suite.T(), suite.controller, http.MethodDelete, e.Links.Self, "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.MessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("expense deleted successfully", response.Message)

	r = test.Request(suite.T(), suite.controller, http.MethodDelete, e.Links.Self, "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, e.Links.Self, "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/users/alice/expenses?month=2024-05", "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().True(strings.HasPrefix(test.DecodeError(suite.T(), r.Body.Bytes()), "an error occurred on the server"))

	r = test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/api/users/alice/expenses", map[string]any{"amount": 5, "category": "Food", "date": "2024-05-10"}, test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestExpensesLargeAmounts() {
	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/api/users/alice/expenses", `{"amount": "1e400", "category": "Food", "date": "2024-05-10"}`, test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The database must stay usable for everyone
	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/summary/alice/2024-05", "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/users/bob/expenses?month=2024-05", "", test.Bob)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The largest accepted amount keeps all digits
	e := suite.createTestExpense("alice", test.Alice, map[string]any{"amount": "999999999999.99999999", "category": "Food", "date": "2024-05-10"})
	suite.Assert().Equal("999999999999.99999999", e.Amount.String())

	r = test.Request(suite.T(), suite.controller, http.MethodGet, e.Links.Self, "", test.Alice)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("999999999999.99999999", response.Expense.Amount.String())
}
