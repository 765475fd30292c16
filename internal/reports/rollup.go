package reports

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetRow pairs a top-level category with its budget and the amount
// spent in it, including its direct subcategories.
type BudgetRow struct {
	Name   string
	Budget decimal.Decimal
	Spent  decimal.Decimal
}

// BudgetVsSpend returns one row per top-level expense category of the
// user, sorted by name. Spent sums all expenses of the category and its
// direct subcategories in the given month; the budget is the one set for
// the top-level category itself, zero if none is set.
func BudgetVsSpend(db *gorm.DB, userID uuid.UUID, month, year int) ([]BudgetRow, error) {
	var categories []models.ExpenseCategory
	err := db.Where("user_id = ?", userID).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	tree := NewTree(categories)

	var budgets []models.Budget
	err = db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	budgeted := make(map[uuid.UUID]decimal.Decimal, len(budgets))
	for _, budget := range budgets {
		budgeted[budget.CategoryID] = budget.Amount
	}

	spent, err := spentByCategory(db, userID, types.NewMonth(year, time.Month(month)))
	if err != nil {
		return nil, err
	}

	rows := make([]BudgetRow, 0, len(tree.Roots()))
	for _, category := range tree.Roots() {
		row := BudgetRow{
			Name:   category.Name,
			Budget: budgeted[category.ID],
			Spent:  decimal.Zero,
		}

		for _, id := range tree.RollupSet(category.ID) {
			row.Spent = row.Spent.Add(spent[id])
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// spentByCategory sums the user's expenses in the month per category ID.
// Summing is done here and not in SQL so that the decimal amounts never
// pass through floating point.
func spentByCategory(db *gorm.DB, userID uuid.UUID, month types.Month) (map[uuid.UUID]decimal.Decimal, error) {
	from, until := month.Interval()

	var expenses []models.Expense
	err := db.Where("user_id = ? AND date >= ? AND date < ?", userID, from, until).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, expense := range expenses {
		sums[expense.CategoryID] = sums[expense.CategoryID].Add(expense.Amount)
	}

	return sums, nil
}
