package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IncomeCategory groups income entries. It has no hierarchy.
type IncomeCategory struct {
	DefaultModel
	Name   string    `json:"name" example:"Salary"`
	UserID uuid.UUID `json:"userId"`
	User   User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (c *IncomeCategory) BeforeDelete(tx *gorm.DB) error {
	var entries int64
	err := tx.Model(&Income{}).Where("category_id = ?", c.ID).Count(&entries).Error
	if err != nil {
		return err
	}

	if entries > 0 {
		return fmt.Errorf("%w: %d transactions reference it, delete those first", ErrCategoryInUse, entries)
	}

	return nil
}

// SavingsCategory groups savings entries. It has no hierarchy.
type SavingsCategory struct {
	DefaultModel
	Name   string    `json:"name" example:"Emergency fund"`
	UserID uuid.UUID `json:"userId"`
	User   User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (c *SavingsCategory) BeforeDelete(tx *gorm.DB) error {
	var entries int64
	err := tx.Model(&Savings{}).Where("category_id = ?", c.ID).Count(&entries).Error
	if err != nil {
		return err
	}

	if entries > 0 {
		return fmt.Errorf("%w: %d transactions reference it, delete those first", ErrCategoryInUse, entries)
	}

	return nil
}
