package controllers

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:expenseId", OptionsExpenseDetail)
		r.GET("/:expenseId", co.GetExpense)
		r.PUT("/:expenseId", co.UpdateExpense)
		r.DELETE("/:expenseId", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/api/users/{userId}/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			userId		path	string	true	"ID of the user"
// @Param			expenseId	path	string	true	"ID formatted as string"
// @Router			/api/users/{userId}/expenses/{expenseId} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List expenses
// @Description	Returns the expenses of a month ordered by date
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		403			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			userId		path		string	true	"ID of the user"
// @Param			month		query		string	false	"Year and month in YYYY-MM format. Defaults to the current month"
// @Param			category	query		string	false	"Filter by category. Supports * as wildcard"
// @Router			/api/users/{userId}/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	month, err := monthOrCurrent(filter.Month)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	from, until := month.Range()
	expenses, err := models.ListExpenses(c.Request.Context(), co.DB, c.Param("userId"), from, until)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		if filter.Category != "" && !glob.Glob(filter.Category, expense.Category) {
			continue
		}

		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Expenses:   data,
		Month:      month,
		TotalCount: len(data),
	})
}

// @Summary		Add expense
// @Description	Adds a new expense. Amount, category and date are required.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		403		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			userId	path		string			true	"ID of the user"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/api/users/{userId}/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	fields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = checkRequired(fields, requiredExpenseFields...)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var editable ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	expense := models.Expense{UserID: c.Param("userId")}
	editable.apply(&expense, fields)

	err = models.CreateExpense(c.Request.Context(), co.DB, &expense)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{
		Message: "expense added successfully",
		Expense: newExpense(c, expense),
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	ExpenseResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			userId		path		string	true	"ID of the user"
// @Param			expenseId	path		string	true	"ID formatted as string"
// @Router			/api/users/{userId}/expenses/{expenseId} [get]
func (co Controller) GetExpense(c *gin.Context) {
	expense, ok := co.expenseFromPath(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Expense: newExpense(c, expense)})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	ExpenseResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			userId		path		string			true	"ID of the user"
// @Param			expenseId	path		string			true	"ID formatted as string"
// @Param			expense		body		ExpenseEditable	true	"Expense"
// @Router			/api/users/{userId}/expenses/{expenseId} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	expense, ok := co.expenseFromPath(c)
	if !ok {
		return
	}

	fields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var editable ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	editable.apply(&expense, fields)

	err = models.SaveExpense(c.Request.Context(), co.DB, &expense)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{
		Message: "expense updated successfully",
		Expense: newExpense(c, expense),
	})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	MessageResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			userId		path		string	true	"ID of the user"
// @Param			expenseId	path		string	true	"ID formatted as string"
// @Router			/api/users/{userId}/expenses/{expenseId} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("expenseId"))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = models.DeleteExpense(c.Request.Context(), co.DB, c.Param("userId"), id)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "expense deleted successfully"})
}

// expenseFromPath loads the expense referenced by the path parameters.
// If that is not possible, the error response is written and ok is false.
func (co Controller) expenseFromPath(c *gin.Context) (expense models.Expense, ok bool) {
	id, err := httputil.UUIDFromString(c.Param("expenseId"))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Expense{}, false
	}

	expense, err = models.GetExpense(c.Request.Context(), co.DB, c.Param("userId"), id)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Expense{}, false
	}

	return expense, true
}
