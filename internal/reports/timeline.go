package reports

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// timelineMonths is the length of the trailing window: the target month
// plus the five months before it.
const timelineMonths = 6

// TimelinePoint is one month of the trailing timeline.
type TimelinePoint struct {
	Month  string // YYYY-MM
	Amount decimal.Decimal
}

// Timeline returns the trailing six-month expense timeline ending at the
// given month, oldest first, together with the total budget across all
// categories for each of those months in the same order. Months without
// data yield zero.
func Timeline(db *gorm.DB, userID uuid.UUID, month, year int) ([]TimelinePoint, []decimal.Decimal, error) {
	points := make([]TimelinePoint, 0, timelineMonths)
	budgets := make([]decimal.Decimal, 0, timelineMonths)

	for i := 0; i < timelineMonths; i++ {
		targetMonth := month - i
		targetYear := year

		// Standard calendar rollover, one step at a time
		for targetMonth <= 0 {
			targetMonth += 12
			targetYear--
		}

		spent, err := monthlyExpenseTotal(db, userID, types.NewMonth(targetYear, time.Month(targetMonth)))
		if err != nil {
			return nil, nil, err
		}

		budget, err := BudgetTotal(db, userID, targetMonth, targetYear)
		if err != nil {
			return nil, nil, err
		}

		point := TimelinePoint{
			Month:  types.NewMonth(targetYear, time.Month(targetMonth)).String(),
			Amount: spent,
		}

		// Walking backwards in time, so prepend to end up oldest first
		points = append([]TimelinePoint{point}, points...)
		budgets = append([]decimal.Decimal{budget}, budgets...)
	}

	return points, budgets, nil
}

func monthlyExpenseTotal(db *gorm.DB, userID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	from, until := month.Interval()

	var expenses []models.Expense
	err := db.Where("user_id = ? AND date >= ? AND date < ?", userID, from, until).Find(&expenses).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}

	return total, nil
}

// BudgetTotal sums the user's budgets across all categories for one month.
func BudgetTotal(db *gorm.DB, userID uuid.UUID, month, year int) (decimal.Decimal, error) {
	var budgets []models.Budget
	err := db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).Find(&budgets).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, budget := range budgets {
		total = total.Add(budget.Amount)
	}

	return total, nil
}
