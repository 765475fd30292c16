package models_test

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestUsernameUnique() {
	suite.createTestUser(models.User{Username: "ada", Email: "ada@example.com"})

	err := models.DB.Create(&models.User{Username: "ada", Email: "other@example.com"}).Error
	suite.Assert().ErrorIs(err, models.ErrUsernameTaken)
}

func (suite *TestSuiteStandard) TestEmailUnique() {
	suite.createTestUser(models.User{Username: "ada", Email: "ada@example.com"})

	err := models.DB.Create(&models.User{Username: "grace", Email: "ada@example.com"}).Error
	suite.Assert().ErrorIs(err, models.ErrEmailTaken)
}

func (suite *TestSuiteStandard) TestUserNormalization() {
	user := suite.createTestUser(models.User{Username: " ada ", Email: " Ada@Example.Com "})

	suite.Assert().Equal("ada", user.Username)
	suite.Assert().Equal("ada@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserDeleteCascades() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.ExpenseCategory{Name: "Food", UserID: user.ID})
	suite.createTestExpense(models.Expense{
		Amount:     decimal.NewFromFloat(14.03),
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CategoryID: category.ID,
		UserID:     user.ID,
	})

	suite.Require().NoError(models.DB.Delete(&user).Error)

	var categories, expenses int64
	suite.Require().NoError(models.DB.Model(&models.ExpenseCategory{}).Count(&categories).Error)
	suite.Require().NoError(models.DB.Model(&models.Expense{}).Count(&expenses).Error)

	suite.Assert().Equal(int64(0), categories, "categories must be deleted with their user")
	suite.Assert().Equal(int64(0), expenses, "expenses must be deleted with their user")
}
