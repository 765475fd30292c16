package reports

import (
	"errors"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Coverage is the result of the budget coverage check for one month.
type Coverage struct {
	// Names of top-level expense categories without a budget, sorted.
	Uncovered []string

	// Whether the missing-budget warning should be surfaced. False when
	// everything is covered or when the user dismissed the warning today.
	ShowWarning bool
}

// UncoveredCategories returns the names of the user's top-level expense
// categories that have no budget for the given month and year. An empty
// category set yields an empty result.
func UncoveredCategories(db *gorm.DB, userID uuid.UUID, month, year int) ([]string, error) {
	var categories []models.ExpenseCategory
	err := db.Where("user_id = ? AND parent_id IS NULL", userID).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	var budgets []models.Budget
	err = db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	covered := make(map[uuid.UUID]struct{}, len(budgets))
	for _, budget := range budgets {
		covered[budget.CategoryID] = struct{}{}
	}

	uncovered := make([]string, 0)
	for _, category := range categories {
		if _, ok := covered[category.ID]; !ok {
			uncovered = append(uncovered, category.Name)
		}
	}

	return uncovered, nil
}

// BudgetCoverage runs the coverage check and the notification suppression
// policy for the given month. The warning is shown when at least one
// category is uncovered, unless a dismissal recorded on the calendar day
// of "today" exists. A dismissal from an earlier day re-surfaces the
// warning even though the dismissed month is unchanged.
func BudgetCoverage(db *gorm.DB, userID uuid.UUID, month, year int, today time.Time) (Coverage, error) {
	uncovered, err := UncoveredCategories(db, userID, month, year)
	if err != nil {
		return Coverage{}, err
	}

	coverage := Coverage{Uncovered: uncovered}
	if len(uncovered) == 0 {
		return coverage, nil
	}

	var dismissal models.IgnoredNotification
	err = db.Where(
		"user_id = ? AND notification_type = ? AND month = ? AND year = ?",
		userID, models.NotificationMissingBudget, month, year,
	).First(&dismissal).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			coverage.ShowWarning = true
			return coverage, nil
		}

		return Coverage{}, err
	}

	coverage.ShowWarning = !dismissal.SuppressedOn(today)
	return coverage, nil
}
