package v1_test

import (
	"time"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/test"
)

func (suite *TestSuiteStandard) TestDismissMissingBudget() {
	suite.createTestCategory("Food", nil)

	now := time.Now().UTC()
	recorder := suite.request("POST", "/v1/notifications/missing-budget/dismiss", v1.DismissEditable{
		Month: int(now.Month()),
		Year:  now.Year(),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.DismissResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.NotificationMissingBudget, response.Data.NotificationType)

	// With a dismissal from today the dashboard no longer warns
	dashboard := suite.request("GET", "/v1/dashboard", nil)
	test.AssertHTTPStatus(suite.T(), &dashboard, 200)

	var dashboardResponse v1.DashboardResponse
	test.DecodeResponse(suite.T(), &dashboard, &dashboardResponse)
	suite.Assert().False(dashboardResponse.Data.ShowBudgetWarning)
	suite.Assert().Equal([]string{"Food"}, dashboardResponse.Data.UncoveredCategories)
}

func (suite *TestSuiteStandard) TestDismissMissingBudgetDefaultsToCurrentMonth() {
	recorder := suite.request("POST", "/v1/notifications/missing-budget/dismiss", map[string]int{})
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.DismissResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	now := time.Now().UTC()
	suite.Assert().Equal(int(now.Month()), response.Data.Month)
	suite.Assert().Equal(now.Year(), response.Data.Year)
}

func (suite *TestSuiteStandard) TestDismissMissingBudgetInvalidMonth() {
	recorder := suite.request("POST", "/v1/notifications/missing-budget/dismiss", v1.DismissEditable{
		Month: 13,
		Year:  2024,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}
