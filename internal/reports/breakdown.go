package reports

import (
	"strings"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CategorySum is the total amount recorded against one category name in
// one month.
type CategorySum struct {
	Name   string
	Amount decimal.Decimal
}

// ExpenseBreakdown groups the user's expenses of the month by expense
// category name, sorted by name. Categories without expenses in the month
// are omitted; this intentionally differs from BudgetVsSpend, which always
// emits a row per top-level category.
func ExpenseBreakdown(db *gorm.DB, userID uuid.UUID, month, year int) ([]CategorySum, error) {
	var categories []models.ExpenseCategory
	err := db.Where("user_id = ?", userID).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	from, until := types.NewMonth(year, time.Month(month)).Interval()

	var expenses []models.Expense
	err = db.Where("user_id = ? AND date >= ? AND date < ?", userID, from, until).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		name := names[expense.CategoryID]
		sums[name] = sums[name].Add(expense.Amount)
	}

	return sortedSums(sums), nil
}

// SavingsBreakdown groups the user's savings of the month by savings
// category name, sorted by name. Categories without entries are omitted.
func SavingsBreakdown(db *gorm.DB, userID uuid.UUID, month, year int) ([]CategorySum, error) {
	var categories []models.SavingsCategory
	err := db.Where("user_id = ?", userID).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	from, until := types.NewMonth(year, time.Month(month)).Interval()

	var savings []models.Savings
	err = db.Where("user_id = ? AND date >= ? AND date < ?", userID, from, until).Find(&savings).Error
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal)
	for _, saving := range savings {
		name := names[saving.CategoryID]
		sums[name] = sums[name].Add(saving.Amount)
	}

	return sortedSums(sums), nil
}

func sortedSums(sums map[string]decimal.Decimal) []CategorySum {
	result := make([]CategorySum, 0, len(sums))
	for name, amount := range sums {
		result = append(result, CategorySum{Name: name, Amount: amount})
	}

	slices.SortFunc(result, func(a, b CategorySum) int {
		return strings.Compare(a.Name, b.Name)
	})

	return result
}
