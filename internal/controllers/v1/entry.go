package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expenses, incomes and savings are the same resource shape recorded
// against different category kinds. The handlers are shared through
// generics; the category check and the field assignment are the only
// pieces that differ per kind.

type entry interface {
	models.Expense | models.Income | models.Savings
}

type entryCategory interface {
	models.ExpenseCategory | models.IncomeCategory | models.SavingsCategory
}

// EntryEditable represents all user configurable parameters of an
// expense, income or savings entry. Edits overwrite every field.
type EntryEditable struct {
	Amount     decimal.Decimal `json:"amount" example:"14.03"`
	Note       string          `json:"note" example:"Lunch" default:""`
	Date       time.Time       `json:"date" example:"2024-03-15T00:00:00Z"` // defaults to the creation time
	CategoryID uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
}

type EntryResponse[M entry] struct {
	Data  *M      `json:"data"`
	Error *string `json:"error"`
}

type EntryListResponse[M entry] struct {
	Data  []M     `json:"data"`
	Error *string `json:"error"`
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	registerEntryRoutes[models.Expense, models.ExpenseCategory](r,
		func(editable EntryEditable, userID uuid.UUID) models.Expense {
			return models.Expense{
				Amount:     editable.Amount,
				Note:       editable.Note,
				Date:       editable.Date,
				CategoryID: editable.CategoryID,
				UserID:     userID,
			}
		},
		func(expense *models.Expense, editable EntryEditable) {
			expense.Amount = editable.Amount
			expense.Note = editable.Note
			expense.Date = editable.Date
			expense.CategoryID = editable.CategoryID
		})
}

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	registerEntryRoutes[models.Income, models.IncomeCategory](r,
		func(editable EntryEditable, userID uuid.UUID) models.Income {
			return models.Income{
				Amount:     editable.Amount,
				Note:       editable.Note,
				Date:       editable.Date,
				CategoryID: editable.CategoryID,
				UserID:     userID,
			}
		},
		func(income *models.Income, editable EntryEditable) {
			income.Amount = editable.Amount
			income.Note = editable.Note
			income.Date = editable.Date
			income.CategoryID = editable.CategoryID
		})
}

// RegisterSavingsRoutes registers the routes for savings with
// the RouterGroup that is passed.
func RegisterSavingsRoutes(r *gin.RouterGroup) {
	registerEntryRoutes[models.Savings, models.SavingsCategory](r,
		func(editable EntryEditable, userID uuid.UUID) models.Savings {
			return models.Savings{
				Amount:     editable.Amount,
				Note:       editable.Note,
				Date:       editable.Date,
				CategoryID: editable.CategoryID,
				UserID:     userID,
			}
		},
		func(savings *models.Savings, editable EntryEditable) {
			savings.Amount = editable.Amount
			savings.Note = editable.Note
			savings.Date = editable.Date
			savings.CategoryID = editable.CategoryID
		})
}

func registerEntryRoutes[M entry, C entryCategory](r *gin.RouterGroup, build func(EntryEditable, uuid.UUID) M, overwrite func(*M, EntryEditable)) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", listEntries[M])
		r.POST("", createEntry[M, C](build))
	}

	// Entry with ID
	{
		r.OPTIONS("/:id", optionsEntryDetail[M])
		r.GET("/:id", getEntry[M])
		r.PUT("/:id", updateEntry[M, C](overwrite))
		r.DELETE("/:id", deleteEntry[M])
	}
}

func optionsEntryDetail[M entry](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var e M
	err = models.DB.First(&e, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("allow", "GET, PUT, DELETE")
	c.Status(http.StatusNoContent)
}

func createEntry[M entry, C entryCategory](build func(EntryEditable, uuid.UUID) M) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable EntryEditable
		err := httputil.BindData(c, &editable)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EntryResponse[M]{Error: &e})
			return
		}

		userID := currentUser(c)

		// The category must be of the right kind and belong to the user
		var category C
		err = models.DB.First(&category, "id = ? AND user_id = ?", editable.CategoryID, userID).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EntryResponse[M]{Error: &e})
			return
		}

		entry := build(editable, userID)

		err = models.DB.Create(&entry).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EntryResponse[M]{Error: &e})
			return
		}

		c.JSON(http.StatusCreated, EntryResponse[M]{Data: &entry})
	}
}

func listEntries[M entry](c *gin.Context) {
	q := models.DB.Where("user_id = ?", currentUser(c)).Order("date DESC")

	// Without month and year parameters all entries are listed
	if c.Query("month") != "" || c.Query("year") != "" {
		var query MonthYearQuery
		_ = c.Bind(&query)

		month, year, err := query.resolve(time.Now())
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EntryListResponse[M]{Error: &e})
			return
		}

		from, until := types.NewMonth(year, time.Month(month)).Interval()
		q = q.Where("date >= ? AND date < ?", from, until)
	}

	var entries []M
	err := q.Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse[M]{Error: &e})
		return
	}

	c.JSON(http.StatusOK, EntryListResponse[M]{Data: entries})
}

func getEntry[M entry](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse[M]{Error: &e})
		return
	}

	var entry M
	err = models.DB.First(&entry, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse[M]{Error: &e})
		return
	}

	c.JSON(http.StatusOK, EntryResponse[M]{Data: &entry})
}

func updateEntry[M entry, C entryCategory](overwrite func(*M, EntryEditable)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri URIID
		err := c.ShouldBindUri(&uri)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EntryResponse[M]{Error: &e})
			return
		}

		userID := currentUser(c)

		var entry M
		err = models.DB.First(&entry, "id = ? AND user_id = ?", uri.ID.UUID, userID).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EntryResponse[M]{Error: &e})
			return
		}

		var editable EntryEditable
		err = httputil.BindData(c, &editable)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EntryResponse[M]{Error: &e})
			return
		}

		var category C
		err = models.DB.First(&category, "id = ? AND user_id = ?", editable.CategoryID, userID).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EntryResponse[M]{Error: &e})
			return
		}

		// Edits overwrite every field
		overwrite(&entry, editable)

		err = models.DB.Save(&entry).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EntryResponse[M]{Error: &e})
			return
		}

		c.JSON(http.StatusOK, EntryResponse[M]{Data: &entry})
	}
}

func deleteEntry[M entry](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var entry M
	err = models.DB.First(&entry, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&entry).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
