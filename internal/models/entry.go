package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spending entry against an expense category.
type Expense struct {
	DefaultModel
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`
	Note       string          `json:"note,omitempty" example:"Lunch"`
	Date       time.Time       `json:"date" example:"2024-03-15T00:00:00Z"`
	CategoryID uuid.UUID       `json:"categoryId"`
	Category   ExpenseCategory `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID     uuid.UUID       `json:"userId"`
	User       User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// BeforeSave defaults the date to the creation time.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Date = normalizeDate(e.Date)
	return nil
}

func (e *Expense) AfterFind(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// Income is a single income entry against an income category.
type Income struct {
	DefaultModel
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"2317.34"`
	Note       string          `json:"note,omitempty" example:"March salary"`
	Date       time.Time       `json:"date" example:"2024-03-01T00:00:00Z"`
	CategoryID uuid.UUID       `json:"categoryId"`
	Category   IncomeCategory  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID     uuid.UUID       `json:"userId"`
	User       User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Date = normalizeDate(i.Date)
	return nil
}

func (i *Income) AfterFind(_ *gorm.DB) error {
	i.Date = i.Date.In(time.UTC)
	return nil
}

// Savings is a single savings entry against a savings category.
type Savings struct {
	DefaultModel
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"100"`
	Note       string          `json:"note,omitempty" example:"Rainy day"`
	Date       time.Time       `json:"date" example:"2024-03-20T00:00:00Z"`
	CategoryID uuid.UUID       `json:"categoryId"`
	Category   SavingsCategory `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID     uuid.UUID       `json:"userId"`
	User       User            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (s *Savings) BeforeSave(_ *gorm.DB) error {
	s.Date = normalizeDate(s.Date)
	return nil
}

func (s *Savings) AfterFind(_ *gorm.DB) error {
	s.Date = s.Date.In(time.UTC)
	return nil
}

func normalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().In(time.UTC)
	}

	return t.In(time.UTC)
}
