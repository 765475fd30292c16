package reports_test

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/reports"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTimelineYearRollover() {
	user := suite.createTestUser()

	points, budgets, err := reports.Timeline(models.DB, user.ID, 2, 2024)
	suite.Require().NoError(err)
	suite.Require().Len(points, 6)
	suite.Require().Len(budgets, 6)

	// The window ending at February 2024 crosses the year boundary
	labels := make([]string, 0, len(points))
	for _, point := range points {
		labels = append(labels, point.Month)
	}

	suite.Assert().Equal([]string{"2023-09", "2023-10", "2023-11", "2023-12", "2024-01", "2024-02"}, labels)
}

func (suite *TestSuiteStandard) TestTimelineAmounts() {
	user := suite.createTestUser()
	food := suite.createTestCategory(user.ID, "Food", nil)

	suite.createTestExpense(user.ID, food.ID, "50", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	suite.createTestExpense(user.ID, food.ID, "25", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	// Before the window
	suite.createTestExpense(user.ID, food.ID, "999", time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC))

	points, _, err := reports.Timeline(models.DB, user.ID, 3, 2024)
	suite.Require().NoError(err)
	suite.Require().Len(points, 6)

	suite.Assert().Equal("2023-10", points[0].Month)
	suite.Assert().True(points[0].Amount.IsZero())

	suite.Assert().Equal("2024-01", points[3].Month)
	suite.Assert().True(points[3].Amount.Equal(decimal.RequireFromString("25")), "amount is %s", points[3].Amount)

	suite.Assert().Equal("2024-03", points[5].Month)
	suite.Assert().True(points[5].Amount.Equal(decimal.RequireFromString("50")), "amount is %s", points[5].Amount)
}

func (suite *TestSuiteStandard) TestTimelineBudgets() {
	user := suite.createTestUser()
	food := suite.createTestCategory(user.ID, "Food", nil)
	transport := suite.createTestCategory(user.ID, "Transport", nil)

	suite.createTestBudget(user.ID, food.ID, 3, 2024, "270.5")
	suite.createTestBudget(user.ID, transport.ID, 3, 2024, "50")
	suite.createTestBudget(user.ID, food.ID, 2, 2024, "100")

	_, budgets, err := reports.Timeline(models.DB, user.ID, 3, 2024)
	suite.Require().NoError(err)
	suite.Require().Len(budgets, 6)

	suite.Assert().True(budgets[4].Equal(decimal.RequireFromString("100")), "February budget is %s", budgets[4])
	suite.Assert().True(budgets[5].Equal(decimal.RequireFromString("320.5")), "March budget is %s", budgets[5])
}

func (suite *TestSuiteStandard) TestBudgetTotal() {
	user := suite.createTestUser()
	food := suite.createTestCategory(user.ID, "Food", nil)
	transport := suite.createTestCategory(user.ID, "Transport", nil)

	suite.createTestBudget(user.ID, food.ID, 3, 2024, "270.5")
	suite.createTestBudget(user.ID, transport.ID, 3, 2024, "50")

	total, err := reports.BudgetTotal(models.DB, user.ID, 3, 2024)
	suite.Require().NoError(err)
	suite.Assert().True(total.Equal(decimal.RequireFromString("320.5")), "total is %s", total)
}
