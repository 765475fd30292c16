package v1_test

import (
	"fmt"
	"time"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	category := suite.createTestCategory("Food", nil)
	expense := suite.createTestExpense(category.ID, "14.03", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	suite.Assert().True(expense.Amount.Equal(decimal.NewFromFloat(14.03)))
	suite.Assert().Equal(category.ID, expense.CategoryID)
	suite.Assert().Equal(suite.user.ID, expense.UserID)
}

func (suite *TestSuiteStandard) TestCreateExpenseWrongCategoryKind() {
	recorder := suite.request("POST", "/v1/income-categories", map[string]string{"name": "Salary"})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var created v1.SimpleCategoryResponse[models.IncomeCategory]
	test.DecodeResponse(suite.T(), &recorder, &created)

	// An income category is not a valid expense category
	recorder = suite.request("POST", "/v1/expenses", map[string]any{
		"amount":     "10",
		"categoryId": created.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestListExpensesMonthFilter() {
	category := suite.createTestCategory("Food", nil)
	suite.createTestExpense(category.ID, "50", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	suite.createTestExpense(category.ID, "99", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	recorder := suite.request("GET", "/v1/expenses?month=3&year=2024", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.EntryListResponse[models.Expense]
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromFloat(50)))
}

func (suite *TestSuiteStandard) TestListExpensesUnfiltered() {
	category := suite.createTestCategory("Food", nil)
	suite.createTestExpense(category.ID, "50", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	suite.createTestExpense(category.ID, "99", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	recorder := suite.request("GET", "/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.EntryListResponse[models.Expense]
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().True(response.Data[0].Date.After(response.Data[1].Date), "entries must be newest first")
}

func (suite *TestSuiteStandard) TestUpdateExpenseOverwrites() {
	category := suite.createTestCategory("Food", nil)
	other := suite.createTestCategory("Transport", nil)
	expense := suite.createTestExpense(category.ID, "50", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	recorder := suite.request("PUT", fmt.Sprintf("/v1/expenses/%s", expense.ID), map[string]any{
		"amount":     "60",
		"note":       "Taxi",
		"date":       time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		"categoryId": other.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.EntryResponse[models.Expense]
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromFloat(60)))
	suite.Assert().Equal("Taxi", response.Data.Note)
	suite.Assert().Equal(other.ID, response.Data.CategoryID)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	category := suite.createTestCategory("Food", nil)
	expense := suite.createTestExpense(category.ID, "50", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	recorder := suite.request("DELETE", fmt.Sprintf("/v1/expenses/%s", expense.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 204)

	recorder = suite.request("GET", fmt.Sprintf("/v1/expenses/%s", expense.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestGetForeignExpense() {
	category := suite.createTestCategory("Food", nil)
	expense := suite.createTestExpense(category.ID, "50", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	otherToken, _ := suite.registerTestUser("grace")
	recorder := test.Request(suite.T(), suite.router, "GET", fmt.Sprintf("/v1/expenses/%s", expense.ID), nil, map[string]string{
		"Authorization": "Bearer " + otherToken,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 404)
}

func (suite *TestSuiteStandard) TestIncomeLifecycle() {
	recorder := suite.request("POST", "/v1/income-categories", map[string]string{"name": "Salary"})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var category v1.SimpleCategoryResponse[models.IncomeCategory]
	test.DecodeResponse(suite.T(), &recorder, &category)

	recorder = suite.request("POST", "/v1/incomes", map[string]any{
		"amount":     "2317.34",
		"note":       "March salary",
		"date":       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"categoryId": category.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	recorder = suite.request("GET", "/v1/incomes?month=3&year=2024", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)
	suite.Assert().Contains(recorder.Body.String(), "March salary")
}

func (suite *TestSuiteStandard) TestSavingsLifecycle() {
	recorder := suite.request("POST", "/v1/savings-categories", map[string]string{"name": "Emergency fund"})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	var category v1.SimpleCategoryResponse[models.SavingsCategory]
	test.DecodeResponse(suite.T(), &recorder, &category)

	recorder = suite.request("POST", "/v1/savings", map[string]any{
		"amount":     "100",
		"date":       time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		"categoryId": category.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 201)

	recorder = suite.request("GET", "/v1/savings?month=3&year=2024", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 200)

	var response v1.EntryListResponse[models.Savings]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromFloat(100)))
}
