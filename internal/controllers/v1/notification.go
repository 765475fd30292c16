package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes registers the routes for notifications with
// the RouterGroup that is passed.
func RegisterNotificationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/missing-budget/dismiss", httputil.OptionsPost)
	r.POST("/missing-budget/dismiss", DismissMissingBudget)
}

// DismissEditable selects the month whose warning is dismissed.
type DismissEditable struct {
	Month int `json:"month" example:"3"` // 1-12
	Year  int `json:"year" example:"2024"`
}

type DismissResponse struct {
	Data  *models.IgnoredNotification `json:"data"`
	Error *string                     `json:"error"`
}

// @Summary		Dismiss missing-budget warning
// @Description	Dismisses the missing-budget warning for a month. The dismissal lasts for the rest of the calendar day, the warning returns the next day while categories stay uncovered.
// @Tags			Notifications
// @Accept			json
// @Produce		json
// @Success		200			{object}	DismissResponse
// @Failure		400			{object}	DismissResponse
// @Failure		500			{object}	DismissResponse
// @Param			dismissal	body		DismissEditable	true	"Month to dismiss"
// @Router			/v1/notifications/missing-budget/dismiss [post]
func DismissMissingBudget(c *gin.Context) {
	var editable DismissEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DismissResponse{Error: &e})
		return
	}

	now := time.Now().UTC()
	if editable.Month == 0 {
		editable.Month = int(now.Month())
	}
	if editable.Year == 0 {
		editable.Year = now.Year()
	}

	if editable.Month < 1 || editable.Month > 12 {
		e := models.ErrMonthOutOfRange.Error()
		c.JSON(status(models.ErrMonthOutOfRange), DismissResponse{Error: &e})
		return
	}

	dismissal, err := models.DismissNotification(models.DB, currentUser(c), models.NotificationMissingBudget, editable.Month, editable.Year, now)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DismissResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DismissResponse{Data: &dismissal})
}
