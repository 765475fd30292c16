package models_test

import (
	"time"

	"github.com/centsible/backend/internal/models"
)

func (suite *TestSuiteStandard) TestDismissNotification() {
	user := suite.createTestUser(models.User{})
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	dismissal, err := models.DismissNotification(models.DB, user.ID, models.NotificationMissingBudget, 3, 2024, now)
	suite.Require().NoError(err)

	suite.Assert().Equal(models.NotificationMissingBudget, dismissal.NotificationType)
	suite.Assert().True(dismissal.IgnoredDate.Equal(now), "ignored date is %s", dismissal.IgnoredDate)
}

func (suite *TestSuiteStandard) TestDismissNotificationUpdates() {
	user := suite.createTestUser(models.User{})

	first, err := models.DismissNotification(models.DB, user.ID, models.NotificationMissingBudget, 3, 2024, time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	later := time.Date(2024, 3, 16, 9, 30, 0, 0, time.UTC)
	second, err := models.DismissNotification(models.DB, user.ID, models.NotificationMissingBudget, 3, 2024, later)
	suite.Require().NoError(err)

	suite.Assert().Equal(first.ID, second.ID, "re-dismissing must update the existing row")
	suite.Assert().True(second.IgnoredDate.Equal(later), "ignored date is %s", second.IgnoredDate)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.IgnoredNotification{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestSuppressedOn() {
	dismissal := models.IgnoredNotification{
		IgnoredDate: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		day        time.Time
		suppressed bool
	}{
		{"same day", time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC), true},
		{"next day", time.Date(2024, 3, 16, 0, 0, 1, 0, time.UTC), false},
		{"a week later", time.Date(2024, 3, 22, 8, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		suite.Assert().Equal(tt.suppressed, dismissal.SuppressedOn(tt.day), tt.name)
	}
}

func (suite *TestSuiteStandard) TestSuppressedOnTimezone() {
	// 23:30 UTC on March 15
	dismissal := models.IgnoredNotification{
		IgnoredDate: time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC),
	}

	// 01:30 local time on March 16 in UTC+2 is still March 15 in UTC
	local := time.FixedZone("UTC+2", 2*60*60)
	suite.Assert().True(dismissal.SuppressedOn(time.Date(2024, 3, 16, 1, 30, 0, 0, local)))
}
