package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSetBudget() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.ExpenseCategory{Name: "Food", UserID: user.ID})

	budget, err := models.SetBudget(models.DB, user.ID, category.ID, 3, 2024, decimal.NewFromFloat(270.5))
	suite.Require().NoError(err)

	suite.Assert().True(budget.Amount.Equal(decimal.NewFromFloat(270.5)), "budget amount is %s", budget.Amount)
	suite.Assert().Equal(3, budget.Month)
	suite.Assert().Equal(2024, budget.Year)
	suite.Assert().Equal(category.ID, budget.CategoryID)
}

func (suite *TestSuiteStandard) TestSetBudgetOverwrites() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.ExpenseCategory{Name: "Food", UserID: user.ID})

	first, err := models.SetBudget(models.DB, user.ID, category.ID, 3, 2024, decimal.NewFromFloat(100))
	suite.Require().NoError(err)

	second, err := models.SetBudget(models.DB, user.ID, category.ID, 3, 2024, decimal.NewFromFloat(250))
	suite.Require().NoError(err)

	suite.Assert().Equal(first.ID, second.ID, "overwriting must update the existing row")
	suite.Assert().True(second.Amount.Equal(decimal.NewFromFloat(250)), "amount is %s", second.Amount)

	var count int64
	err = models.DB.Model(&models.Budget{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Assert().Equal(int64(1), count, "there must be exactly one budget per category and month")
}

func (suite *TestSuiteStandard) TestSetBudgetSeparateMonths() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.ExpenseCategory{Name: "Food", UserID: user.ID})

	_, err := models.SetBudget(models.DB, user.ID, category.ID, 3, 2024, decimal.NewFromFloat(100))
	suite.Require().NoError(err)

	_, err = models.SetBudget(models.DB, user.ID, category.ID, 4, 2024, decimal.NewFromFloat(100))
	suite.Require().NoError(err)

	var count int64
	err = models.DB.Model(&models.Budget{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Assert().Equal(int64(2), count)
}

func (suite *TestSuiteStandard) TestSetBudgetMonthOutOfRange() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.ExpenseCategory{Name: "Food", UserID: user.ID})

	_, err := models.SetBudget(models.DB, user.ID, category.ID, 13, 2024, decimal.NewFromFloat(100))
	suite.Assert().ErrorIs(err, models.ErrMonthOutOfRange)

	_, err = models.SetBudget(models.DB, user.ID, category.ID, 0, 2024, decimal.NewFromFloat(100))
	suite.Assert().ErrorIs(err, models.ErrMonthOutOfRange)
}

func (suite *TestSuiteStandard) TestSetBudgetForeignCategory() {
	user := suite.createTestUser(models.User{Username: "ada"})
	other := suite.createTestUser(models.User{Username: "grace"})
	category := suite.createTestCategory(models.ExpenseCategory{Name: "Food", UserID: other.ID})

	_, err := models.SetBudget(models.DB, user.ID, category.ID, 3, 2024, decimal.NewFromFloat(100))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound, "a foreign category must read like a missing one")
}

func (suite *TestSuiteStandard) TestBudgetMonthValidation() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.ExpenseCategory{Name: "Food", UserID: user.ID})

	budget := models.Budget{
		Amount:     decimal.NewFromFloat(100),
		Month:      0,
		Year:       2024,
		CategoryID: category.ID,
		UserID:     user.ID,
	}

	err := models.DB.Create(&budget).Error
	suite.Assert().ErrorIs(err, models.ErrMonthOutOfRange)
}
