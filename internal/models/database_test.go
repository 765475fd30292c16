package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestQueryCallbackNotFound() {
	err := models.DB.First(&models.ExpenseCategory{}, "id = ?", uuid.New()).Error
	suite.Require().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no expense category matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestQueryCallbackPluralization() {
	err := models.DB.First(&models.Savings{}, "id = ?", uuid.New()).Error
	suite.Require().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "saving")
}

func (suite *TestSuiteStandard) TestGeneralCallbackClosedDB() {
	sqlDB, err := models.DB.DB()
	suite.Require().NoError(err)
	sqlDB.Close()

	err = models.DB.First(&models.User{}, "username = ?", "ada").Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
