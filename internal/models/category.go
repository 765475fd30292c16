package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseCategory groups expenses. Categories can nest via ParentID;
// storage allows arbitrary depth, but only one level is ever aggregated
// (see the reports package).
type ExpenseCategory struct {
	DefaultModel
	Name     string           `json:"name" example:"Groceries"`
	ParentID *uuid.UUID       `json:"parentId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Parent   *ExpenseCategory `json:"-"`
	UserID   uuid.UUID        `json:"userId"`
	User     User             `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// BeforeDelete refuses to delete a category that still has expenses or
// subcategories. The error names the count of blocking dependents.
func (c *ExpenseCategory) BeforeDelete(tx *gorm.DB) error {
	var expenses int64
	err := tx.Model(&Expense{}).Where("category_id = ?", c.ID).Count(&expenses).Error
	if err != nil {
		return err
	}

	if expenses > 0 {
		return fmt.Errorf("%w: %d transactions reference it, delete those first", ErrCategoryInUse, expenses)
	}

	var subcategories int64
	err = tx.Model(&ExpenseCategory{}).Where("parent_id = ?", c.ID).Count(&subcategories).Error
	if err != nil {
		return err
	}

	if subcategories > 0 {
		return fmt.Errorf("%w: %d subcategories reference it, delete those first", ErrCategoryInUse, subcategories)
	}

	return nil
}

// Subcategories returns the direct children of the category.
func (c ExpenseCategory) Subcategories(db *gorm.DB) ([]ExpenseCategory, error) {
	var subcategories []ExpenseCategory
	err := db.Where("parent_id = ?", c.ID).Order("name ASC").Find(&subcategories).Error
	return subcategories, err
}
