package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the amount a user plans to spend for one expense category in
// one month. There is at most one Budget per (user, category, month,
// year), enforced by the composite unique index and the upsert in
// SetBudget.
type Budget struct {
	DefaultModel
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"270.5"`
	Month      int             `json:"month" gorm:"uniqueIndex:budget_user_category_month" example:"3"` // 1-12
	Year       int             `json:"year" gorm:"uniqueIndex:budget_user_category_month" example:"2024"`
	CategoryID uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:budget_user_category_month"`
	Category   ExpenseCategory `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID     uuid.UUID       `json:"userId" gorm:"uniqueIndex:budget_user_category_month"`
	User       User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Month < 1 || b.Month > 12 {
		return ErrMonthOutOfRange
	}

	return nil
}

// SetBudget sets the budget for a category and month. Setting it again
// overwrites the amount of the existing row, so the operation is
// idempotent. The category must belong to the user.
func SetBudget(db *gorm.DB, userID, categoryID uuid.UUID, month, year int, amount decimal.Decimal) (Budget, error) {
	if month < 1 || month > 12 {
		return Budget{}, ErrMonthOutOfRange
	}

	err := db.First(&ExpenseCategory{}, "id = ? AND user_id = ?", categoryID, userID).Error
	if err != nil {
		return Budget{}, err
	}

	budget := Budget{
		Amount:     amount,
		Month:      month,
		Year:       year,
		CategoryID: categoryID,
		UserID:     userID,
	}

	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category_id"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     amount,
			"updated_at": time.Now().In(time.UTC),
		}),
	}).Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	// On a conflict the insert is skipped, so the generated ID does not
	// match the stored row. Read the row back to return what is persisted.
	var saved Budget
	err = db.First(&saved, "user_id = ? AND category_id = ? AND month = ? AND year = ?", userID, categoryID, month, year).Error
	return saved, err
}
