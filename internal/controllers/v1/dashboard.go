package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/reports"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetDashboard)
}

// Dashboard is everything the overview page needs for one month.
type Dashboard struct {
	Month int `json:"month" example:"3"`
	Year  int `json:"year" example:"2024"`

	Expenses []models.Expense `json:"expenses"`
	Incomes  []models.Income  `json:"incomes"`
	Savings  []models.Savings `json:"savings"`

	Categories        []models.ExpenseCategory `json:"categories"`
	IncomeCategories  []models.IncomeCategory  `json:"incomeCategories"`
	SavingsCategories []models.SavingsCategory `json:"savingsCategories"`

	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"812.43"`
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"2400"`
	TotalSavings  decimal.Decimal `json:"totalSavings" example:"300"`
	TotalBudget   decimal.Decimal `json:"totalBudget" example:"950"`

	// Names of top-level expense categories without a budget this month
	UncoveredCategories []string `json:"uncoveredCategories"`

	// Whether the missing-budget warning should be shown. Stays false when
	// every top-level category is covered or the warning was dismissed today.
	ShowBudgetWarning bool `json:"showBudgetWarning"`
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`
	Error *string    `json:"error"`
}

// @Summary		Dashboard
// @Description	Returns the month's entries, the category lists, totals and the budget coverage warning
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		500		{object}	DashboardResponse
// @Param			month	query		int	false	"Month (1-12), defaults to the current month"
// @Param			year	query		int	false	"Year, defaults to the current year"
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var query MonthYearQuery
	_ = c.Bind(&query)

	month, year, err := query.resolve(time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	userID := currentUser(c)
	from, until := types.NewMonth(year, time.Month(month)).Interval()

	dashboard := Dashboard{
		Month: month,
		Year:  year,
	}

	err = models.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, from, until).Order("date DESC").Find(&dashboard.Expenses).Error
	if err == nil {
		err = models.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, from, until).Order("date DESC").Find(&dashboard.Incomes).Error
	}
	if err == nil {
		err = models.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, from, until).Order("date DESC").Find(&dashboard.Savings).Error
	}
	if err == nil {
		err = models.DB.Where("user_id = ?", userID).Order("name ASC").Find(&dashboard.Categories).Error
	}
	if err == nil {
		err = models.DB.Where("user_id = ?", userID).Order("name ASC").Find(&dashboard.IncomeCategories).Error
	}
	if err == nil {
		err = models.DB.Where("user_id = ?", userID).Order("name ASC").Find(&dashboard.SavingsCategories).Error
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	dashboard.TotalExpenses = decimal.Zero
	for _, expense := range dashboard.Expenses {
		dashboard.TotalExpenses = dashboard.TotalExpenses.Add(expense.Amount)
	}

	dashboard.TotalIncome = decimal.Zero
	for _, income := range dashboard.Incomes {
		dashboard.TotalIncome = dashboard.TotalIncome.Add(income.Amount)
	}

	dashboard.TotalSavings = decimal.Zero
	for _, saving := range dashboard.Savings {
		dashboard.TotalSavings = dashboard.TotalSavings.Add(saving.Amount)
	}

	dashboard.TotalBudget, err = reports.BudgetTotal(models.DB, userID, month, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	coverage, err := reports.BudgetCoverage(models.DB, userID, month, year, time.Now().UTC())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	dashboard.UncoveredCategories = coverage.Uncovered
	dashboard.ShowBudgetWarning = coverage.ShowWarning

	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}
