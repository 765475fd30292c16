package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/reports"
	"github.com/gin-gonic/gin"
)

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetAnalytics)
}

// The analytics payload is consumed by charting code, so amounts are
// plain floats here. Everywhere else amounts stay decimal.

// NamedAmount is one slice of a breakdown chart.
type NamedAmount struct {
	Name   string  `json:"name" example:"Food"`
	Amount float64 `json:"amount" example:"50"`
}

// BudgetSpendRow is one bar pair of the budget versus spend chart.
type BudgetSpendRow struct {
	Name   string  `json:"name" example:"Food"`
	Budget float64 `json:"budget" example:"270.5"`
	Spent  float64 `json:"spent" example:"50"`
}

// MonthAmount is one point of a timeline chart.
type MonthAmount struct {
	Month  string  `json:"month" example:"2024-03"` // YYYY-MM
	Amount float64 `json:"amount" example:"812.43"`
}

// Analytics aggregates a month's charts. BudgetVsSpend and CategoryDetails
// carry the same rows, the frontend renders them as a chart and a table.
type Analytics struct {
	Month int `json:"month" example:"3"`
	Year  int `json:"year" example:"2024"`

	ExpenseByCategory []NamedAmount    `json:"expense_by_category"`
	SavingsByCategory []NamedAmount    `json:"savings_by_category"`
	BudgetVsSpend     []BudgetSpendRow `json:"budget_vs_spend"`
	CategoryDetails   []BudgetSpendRow `json:"category_details"`
	MonthlyTimeline   []MonthAmount    `json:"monthly_timeline"`
	BudgetTimeline    []MonthAmount    `json:"budget_timeline"`
}

type AnalyticsResponse struct {
	Data  *Analytics `json:"data"`
	Error *string    `json:"error"`
}

// @Summary		Analytics
// @Description	Returns the month's aggregated charts. Spending per top-level category includes its direct subcategories; the timelines cover the six months ending at the requested one.
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	AnalyticsResponse
// @Failure		400		{object}	AnalyticsResponse
// @Failure		500		{object}	AnalyticsResponse
// @Param			month	query		int	false	"Month (1-12), defaults to the current month"
// @Param			year	query		int	false	"Year, defaults to the current year"
// @Router			/v1/analytics [get]
func GetAnalytics(c *gin.Context) {
	var query MonthYearQuery
	_ = c.Bind(&query)

	month, year, err := query.resolve(time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalyticsResponse{Error: &e})
		return
	}

	userID := currentUser(c)

	expenseSums, err := reports.ExpenseBreakdown(models.DB, userID, month, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalyticsResponse{Error: &e})
		return
	}

	savingsSums, err := reports.SavingsBreakdown(models.DB, userID, month, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalyticsResponse{Error: &e})
		return
	}

	rows, err := reports.BudgetVsSpend(models.DB, userID, month, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalyticsResponse{Error: &e})
		return
	}

	timeline, budgetTimeline, err := reports.Timeline(models.DB, userID, month, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalyticsResponse{Error: &e})
		return
	}

	analytics := Analytics{
		Month:             month,
		Year:              year,
		ExpenseByCategory: namedAmounts(expenseSums),
		SavingsByCategory: namedAmounts(savingsSums),
		BudgetVsSpend:     budgetSpendRows(rows),
		MonthlyTimeline:   make([]MonthAmount, 0, len(timeline)),
		BudgetTimeline:    make([]MonthAmount, 0, len(budgetTimeline)),
	}

	// Same rows twice, computed once
	analytics.CategoryDetails = analytics.BudgetVsSpend

	for i, point := range timeline {
		analytics.MonthlyTimeline = append(analytics.MonthlyTimeline, MonthAmount{
			Month:  point.Month,
			Amount: point.Amount.InexactFloat64(),
		})
		analytics.BudgetTimeline = append(analytics.BudgetTimeline, MonthAmount{
			Month:  point.Month,
			Amount: budgetTimeline[i].InexactFloat64(),
		})
	}

	c.JSON(http.StatusOK, AnalyticsResponse{Data: &analytics})
}

func namedAmounts(sums []reports.CategorySum) []NamedAmount {
	amounts := make([]NamedAmount, 0, len(sums))
	for _, sum := range sums {
		amounts = append(amounts, NamedAmount{Name: sum.Name, Amount: sum.Amount.InexactFloat64()})
	}

	return amounts
}

func budgetSpendRows(rows []reports.BudgetRow) []BudgetSpendRow {
	result := make([]BudgetSpendRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, BudgetSpendRow{
			Name:   row.Name,
			Budget: row.Budget.InexactFloat64(),
			Spent:  row.Spent.InexactFloat64(),
		})
	}

	return result
}
