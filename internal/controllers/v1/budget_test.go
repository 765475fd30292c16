package v1_test

import (
	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSetBudgetEndpoint() {
	category := suite.createTestCategory("Food", nil)

	recorder := suite.request("PUT", "/v1/budgets", v1.BudgetEditable{
		CategoryID: category.ID,
		Month:      3,
		Year:       2024,
		Amount:     decimal.NewFromFloat(270.5),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromFloat(270.5)))
}

func (suite *TestSuiteStandard) TestSetBudgetEndpointOverwrites() {
	category := suite.createTestCategory("Food", nil)

	for _, amount := range []float64{100, 250} {
		recorder := suite.request("PUT", "/v1/budgets", v1.BudgetEditable{
			CategoryID: category.ID,
			Month:      3,
			Year:       2024,
			Amount:     decimal.NewFromFloat(amount),
		})
		test.AssertHTTPStatus(suite.T(), &recorder, 200)
	}

	recorder := suite.request("GET", "/v1/budgets?month=3&year=2024", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromFloat(250)))
}

func (suite *TestSuiteStandard) TestSetBudgetEndpointMonthOutOfRange() {
	category := suite.createTestCategory("Food", nil)

	recorder := suite.request("PUT", "/v1/budgets", v1.BudgetEditable{
		CategoryID: category.ID,
		Month:      13,
		Year:       2024,
		Amount:     decimal.NewFromFloat(100),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}

func (suite *TestSuiteStandard) TestSetBudgetEndpointUnknownCategory() {
	recorder := suite.request("PUT", "/v1/budgets", v1.BudgetEditable{
		CategoryID: uuid.New(),
		Month:      3,
		Year:       2024,
		Amount:     decimal.NewFromFloat(100),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestGetBudgetsInvalidMonth() {
	recorder := suite.request("GET", "/v1/budgets?month=42", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 400)
}
