package models_test

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenseDateDefaults() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.ExpenseCategory{Name: "Food", UserID: user.ID})

	expense := suite.createTestExpense(models.Expense{
		Amount:     decimal.NewFromFloat(14.03),
		CategoryID: category.ID,
		UserID:     user.ID,
	})

	suite.Assert().False(expense.Date.IsZero(), "an unset date must default to the creation time")
	suite.Assert().WithinDuration(time.Now(), expense.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestExpenseDateUTC() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.ExpenseCategory{Name: "Food", UserID: user.ID})

	local := time.FixedZone("UTC+2", 2*60*60)
	expense := suite.createTestExpense(models.Expense{
		Amount:     decimal.NewFromFloat(14.03),
		Date:       time.Date(2024, 3, 15, 14, 0, 0, 0, local),
		CategoryID: category.ID,
		UserID:     user.ID,
	})

	var loaded models.Expense
	suite.Require().NoError(models.DB.First(&loaded, "id = ?", expense.ID).Error)

	suite.Assert().Equal(time.UTC, loaded.Date.Location())
	suite.Assert().True(loaded.Date.Equal(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))
}

func (suite *TestSuiteStandard) TestExpenseAmountPrecision() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.ExpenseCategory{Name: "Food", UserID: user.ID})

	// 0.1 + 0.2 is the classic float trap
	suite.createTestExpense(models.Expense{
		Amount:     decimal.RequireFromString("0.1"),
		CategoryID: category.ID,
		UserID:     user.ID,
	})
	suite.createTestExpense(models.Expense{
		Amount:     decimal.RequireFromString("0.2"),
		CategoryID: category.ID,
		UserID:     user.ID,
	})

	var expenses []models.Expense
	suite.Require().NoError(models.DB.Find(&expenses).Error)

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}

	suite.Assert().True(total.Equal(decimal.RequireFromString("0.3")), "total is %s", total)
}
