package controllers

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.SetBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:budgetId", OptionsBudgetDetail)
		r.GET("/:budgetId", co.GetBudget)
		r.PUT("/:budgetId", co.UpdateBudget)
		r.DELETE("/:budgetId", co.DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/api/users/{userId}/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			userId		path	string	true	"ID of the user"
// @Param			budgetId	path	string	true	"ID formatted as string"
// @Router			/api/users/{userId}/budgets/{budgetId} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List budgets
// @Description	Returns the budgets of a month
// @Tags			Budgets
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	BudgetListResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		403			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			userId		path		string	true	"ID of the user"
// @Param			month		query		string	false	"Year and month in YYYY-MM format. Defaults to the current month"
// @Param			category	query		string	false	"Only return the budget for this category"
// @Router			/api/users/{userId}/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	month, err := monthOrCurrent(filter.Month)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	budgets, err := models.ListBudgets(c.Request.Context(), co.DB, c.Param("userId"), month, filter.Category)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	total := decimal.Zero
	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		total = total.Add(budget.Amount)
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Budgets:     data,
		Month:       month,
		TotalBudget: total,
		Count:       len(data),
	})
}

// @Summary		Set budget
// @Description	Sets the budget for a month and category. If a budget for the month and category exists, it is updated.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	BudgetResponse	"The existing budget was updated"
// @Success		201		{object}	BudgetResponse	"A new budget was created"
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		403		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			userId	path		string			true	"ID of the user"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/api/users/{userId}/budgets [post]
func (co Controller) SetBudget(c *gin.Context) {
	fields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = checkRequired(fields, requiredBudgetFields...)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	budget, created, err := models.SetBudget(c.Request.Context(), co.DB, c.Param("userId"), editable.Month, editable.Category, editable.Amount.Decimal)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, BudgetResponse{
			Message: "budget created successfully",
			Budget:  newBudget(c, budget),
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{
		Message: "budget updated successfully",
		Budget:  newBudget(c, budget),
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			userId		path		string	true	"ID of the user"
// @Param			budgetId	path		string	true	"ID formatted as string"
// @Router			/api/users/{userId}/budgets/{budgetId} [get]
func (co Controller) GetBudget(c *gin.Context) {
	budget, ok := co.budgetFromPath(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Budget: newBudget(c, budget)})
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		409			{object}	httputil.HTTPError	"A budget for the month and category already exists"
// @Failure		500			{object}	httputil.HTTPError
// @Param			userId		path		string			true	"ID of the user"
// @Param			budgetId	path		string			true	"ID formatted as string"
// @Param			budget		body		BudgetEditable	true	"Budget"
// @Router			/api/users/{userId}/budgets/{budgetId} [put]
func (co Controller) UpdateBudget(c *gin.Context) {
	budget, ok := co.budgetFromPath(c)
	if !ok {
		return
	}

	fields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	editable.apply(&budget, fields)

	err = models.SaveBudget(c.Request.Context(), co.DB, &budget)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{
		Message: "budget updated successfully",
		Budget:  newBudget(c, budget),
	})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	MessageResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			userId		path		string	true	"ID of the user"
// @Param			budgetId	path		string	true	"ID formatted as string"
// @Router			/api/users/{userId}/budgets/{budgetId} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("budgetId"))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = models.DeleteBudget(c.Request.Context(), co.DB, c.Param("userId"), id)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "budget deleted successfully"})
}

// budgetFromPath loads the budget referenced by the path parameters.
// If that is not possible, the error response is written and ok is false.
func (co Controller) budgetFromPath(c *gin.Context) (budget models.Budget, ok bool) {
	id, err := httputil.UUIDFromString(c.Param("budgetId"))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Budget{}, false
	}

	budget, err = models.GetBudget(c.Request.Context(), co.DB, c.Param("userId"), id)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Budget{}, false
	}

	return budget, true
}
