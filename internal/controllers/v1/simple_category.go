package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Income and savings categories have identical behavior: a flat, named
// grouping with a delete guard. The handlers are shared through generics;
// only the model type differs.

type simpleCategory interface {
	models.IncomeCategory | models.SavingsCategory
}

// SimpleCategoryEditable represents all user configurable parameters of
// income and savings categories.
type SimpleCategoryEditable struct {
	Name string `json:"name" example:"Salary"`
}

type SimpleCategoryResponse[M simpleCategory] struct {
	Data  *M      `json:"data"`
	Error *string `json:"error"`
}

type SimpleCategoryListResponse[M simpleCategory] struct {
	Data  []M     `json:"data"`
	Error *string `json:"error"`
}

// RegisterIncomeCategoryRoutes registers the routes for income categories
// with the RouterGroup that is passed.
func RegisterIncomeCategoryRoutes(r *gin.RouterGroup) {
	registerSimpleCategoryRoutes(r, func(name string, userID uuid.UUID) models.IncomeCategory {
		return models.IncomeCategory{Name: name, UserID: userID}
	})
}

// RegisterSavingsCategoryRoutes registers the routes for savings
// categories with the RouterGroup that is passed.
func RegisterSavingsCategoryRoutes(r *gin.RouterGroup) {
	registerSimpleCategoryRoutes(r, func(name string, userID uuid.UUID) models.SavingsCategory {
		return models.SavingsCategory{Name: name, UserID: userID}
	})
}

func registerSimpleCategoryRoutes[M simpleCategory](r *gin.RouterGroup, build func(name string, userID uuid.UUID) M) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", listSimpleCategories[M])
		r.POST("", createSimpleCategory(build))
	}

	// Category with ID
	{
		r.OPTIONS("/:id", optionsSimpleCategoryDetail[M])
		r.GET("/:id", getSimpleCategory[M])
		r.DELETE("/:id", deleteSimpleCategory[M])
	}
}

func optionsSimpleCategoryDetail[M simpleCategory](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var category M
	err = models.DB.First(&category, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetDelete(c)
}

func createSimpleCategory[M simpleCategory](build func(name string, userID uuid.UUID) M) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable SimpleCategoryEditable
		err := httputil.BindData(c, &editable)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SimpleCategoryResponse[M]{Error: &e})
			return
		}

		category := build(editable.Name, currentUser(c))

		err = models.DB.Create(&category).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SimpleCategoryResponse[M]{Error: &e})
			return
		}

		c.JSON(http.StatusCreated, SimpleCategoryResponse[M]{Data: &category})
	}
}

func listSimpleCategories[M simpleCategory](c *gin.Context) {
	var categories []M
	err := models.DB.Where("user_id = ?", currentUser(c)).Order("name ASC").Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SimpleCategoryListResponse[M]{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SimpleCategoryListResponse[M]{Data: categories})
}

func getSimpleCategory[M simpleCategory](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SimpleCategoryResponse[M]{Error: &e})
		return
	}

	var category M
	err = models.DB.First(&category, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SimpleCategoryResponse[M]{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SimpleCategoryResponse[M]{Data: &category})
}

func deleteSimpleCategory[M simpleCategory](c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var category M
	err = models.DB.First(&category, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
