package v1

import (
	"time"

	"github.com/centsible/backend/internal/models"
	ez_uuid "github.com/centsible/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// MonthYearQuery selects the target month for dashboards and analytics.
// Unset values default to the current month.
type MonthYearQuery struct {
	Month int `form:"month" example:"3"` // 1-12
	Year  int `form:"year" example:"2024"`
}

// resolve fills unset values from now and validates the month range.
func (q MonthYearQuery) resolve(now time.Time) (month, year int, err error) {
	month = q.Month
	year = q.Year

	if month == 0 {
		month = int(now.UTC().Month())
	}

	if year == 0 {
		year = now.UTC().Year()
	}

	if month < 1 || month > 12 {
		return 0, 0, models.ErrMonthOutOfRange
	}

	return month, year, nil
}
