package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationMissingBudget is the only notification type currently in use:
// the warning that some top-level expense categories have no budget for the
// current month.
const NotificationMissingBudget = "missing_budget"

// IgnoredNotification records that a user dismissed a recurring warning for
// a given month and year. A dismissal only counts for the calendar day it
// was recorded; the next day the warning surfaces again.
type IgnoredNotification struct {
	DefaultModel
	NotificationType string    `json:"notificationType" gorm:"uniqueIndex:notification_user_type_month" example:"missing_budget"`
	Month            int       `json:"month" gorm:"uniqueIndex:notification_user_type_month" example:"3"` // 1-12
	Year             int       `json:"year" gorm:"uniqueIndex:notification_user_type_month" example:"2024"`
	IgnoredDate      time.Time `json:"ignoredDate" example:"2024-03-15T08:00:00Z"`
	UserID           uuid.UUID `json:"userId" gorm:"uniqueIndex:notification_user_type_month"`
	User             User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// SuppressedOn reports whether the dismissal still suppresses the warning
// on the given day. It compares calendar days: a dismissal recorded
// yesterday does not suppress today.
func (n IgnoredNotification) SuppressedOn(day time.Time) bool {
	return !calendarDay(n.IgnoredDate).Before(calendarDay(day))
}

func calendarDay(t time.Time) time.Time {
	t = t.In(time.UTC)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DismissNotification records that the user dismissed a notification for
// the given month and year. Re-dismissing updates the timestamp of the
// existing row instead of inserting a duplicate.
func DismissNotification(db *gorm.DB, userID uuid.UUID, notificationType string, month, year int, now time.Time) (IgnoredNotification, error) {
	notification := IgnoredNotification{
		NotificationType: notificationType,
		Month:            month,
		Year:             year,
		IgnoredDate:      now.In(time.UTC),
		UserID:           userID,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "notification_type"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"ignored_date": now.In(time.UTC),
			"updated_at":   time.Now().In(time.UTC),
		}),
	}).Create(&notification).Error
	if err != nil {
		return IgnoredNotification{}, err
	}

	var saved IgnoredNotification
	err = db.First(&saved, "user_id = ? AND notification_type = ? AND month = ? AND year = ?", userID, notificationType, month, year).Error
	return saved, err
}
