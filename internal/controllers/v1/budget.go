package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPut)
	r.GET("", GetBudgets)
	r.PUT("", SetBudget)
}

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the expense category the budget is for
	Month      int             `json:"month" example:"3"`                                         // 1-12
	Year       int             `json:"year" example:"2024"`
	Amount     decimal.Decimal `json:"amount" example:"270.5"`
}

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`
	Error *string        `json:"error"`
}

type BudgetListResponse struct {
	Data  []models.Budget `json:"data"`
	Error *string         `json:"error"`
}

// @Summary		Set budget
// @Description	Sets the budget for an expense category and month. Setting it again overwrites the amount, so there is always at most one budget per category and month.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [put]
func SetBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := models.SetBudget(models.DB, currentUser(c), editable.CategoryID, editable.Month, editable.Year, editable.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// @Summary		Get budgets
// @Description	Returns the user's budgets for a month, defaulting to the current month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Param			month	query		int	false	"Month (1-12), defaults to the current month"
// @Param			year	query		int	false	"Year, defaults to the current year"
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	var query MonthYearQuery
	_ = c.Bind(&query)

	month, year, err := query.resolve(time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	var budgets []models.Budget
	err = models.DB.Where("user_id = ? AND month = ? AND year = ?", currentUser(c), month, year).Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}
