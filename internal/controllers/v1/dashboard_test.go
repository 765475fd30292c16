package v1_test

import (
	"time"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDashboard() {
	food := suite.createTestCategory("Food", nil)
	suite.createTestExpense(food.ID, "30", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	suite.createTestExpense(food.ID, "20", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))

	// Other month, must not show up
	suite.createTestExpense(food.ID, "99", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	recorder := suite.request("PUT", "/v1/budgets", v1.BudgetEditable{
		CategoryID: food.ID,
		Month:      3,
		Year:       2024,
		Amount:     decimal.NewFromFloat(270.5),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	recorder = suite.request("GET", "/v1/dashboard?month=3&year=2024", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	dashboard := response.Data
	suite.Require().NotNil(dashboard)

	suite.Assert().Equal(3, dashboard.Month)
	suite.Assert().Equal(2024, dashboard.Year)
	suite.Assert().Len(dashboard.Expenses, 2)
	suite.Assert().True(dashboard.TotalExpenses.Equal(decimal.NewFromFloat(50)), "total is %s", dashboard.TotalExpenses)
	suite.Assert().True(dashboard.TotalBudget.Equal(decimal.NewFromFloat(270.5)))
	suite.Assert().Len(dashboard.Categories, 1)
	suite.Assert().Empty(dashboard.UncoveredCategories)
	suite.Assert().False(dashboard.ShowBudgetWarning)
}

func (suite *TestSuiteStandard) TestDashboardBudgetWarning() {
	suite.createTestCategory("Food", nil)

	recorder := suite.request("GET", "/v1/dashboard?month=3&year=2024", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.ShowBudgetWarning)
	suite.Assert().Equal([]string{"Food"}, response.Data.UncoveredCategories)
}

func (suite *TestSuiteStandard) TestDashboardInvalidMonth() {
	recorder := suite.request("GET", "/v1/dashboard?month=13", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}
