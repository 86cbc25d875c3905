package controllers

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/report"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes registers the routes for monthly summaries with
// the RouterGroup that is passed.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsAnalytics)
	r.GET("/:month", co.GetSummary)
}

// RegisterReportRoutes registers the routes for monthly category reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsAnalytics)
	r.GET("/:month", co.GetReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Param			month	path	string	true	"Year and month in YYYY-MM format"
// @Router			/api/summary/{userId}/{month} [options]
// @Router			/api/report/{userId}/{month} [options]
func OptionsAnalytics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns the total expenses of a month compared to the total budget
// @Tags			Analytics
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	report.Summary
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		403		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			userId	path		string	true	"ID of the user"
// @Param			month	path		string	true	"Year and month in YYYY-MM format"
// @Router			/api/summary/{userId}/{month} [get]
func (co Controller) GetSummary(c *gin.Context) {
	data, ok := co.monthData(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, report.Summarize(data.Month, data.Expenses, data.Budgets))
}

// @Summary		Get category report
// @Description	Returns the expenses of a month grouped by category and compared to the category budgets
// @Tags			Analytics
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	report.Report
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		403		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			userId	path		string	true	"ID of the user"
// @Param			month	path		string	true	"Year and month in YYYY-MM format"
// @Router			/api/report/{userId}/{month} [get]
func (co Controller) GetReport(c *gin.Context) {
	data, ok := co.monthData(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, report.Categorize(data.Month, data.Expenses, data.Budgets))
}

// monthData loads all expenses and budgets for the month in the path.
// If that is not possible, the error response is written and ok is false.
func (co Controller) monthData(c *gin.Context) (models.MonthData, bool) {
	month, err := types.ParseMonth(c.Param("month"))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.MonthData{}, false
	}

	data, err := models.FetchMonth(c.Request.Context(), co.DB, c.Param("userId"), month)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.MonthData{}, false
	}

	return data, true
}
