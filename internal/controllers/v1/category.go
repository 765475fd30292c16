package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterCategoryRoutes registers the routes for expense categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name     string     `json:"name" example:"Groceries"`
	ParentID *uuid.UUID `json:"parentId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // unset for a top-level category
}

type CategoryResponse struct {
	Data  *models.ExpenseCategory `json:"data"`
	Error *string                 `json:"error"`
}

type CategoryListResponse struct {
	Data  []models.ExpenseCategory `json:"data"`
	Error *string                  `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ExpenseCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.ExpenseCategory{}, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create expense category
// @Description	Creates a new expense category, optionally nested under a parent category
// @Tags			ExpenseCategories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	userID := currentUser(c)

	// The parent must be one of the user's own categories
	if editable.ParentID != nil {
		err = models.DB.First(&models.ExpenseCategory{}, "id = ? AND user_id = ?", *editable.ParentID, userID).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), CategoryResponse{Error: &e})
			return
		}
	}

	category := models.ExpenseCategory{
		Name:     editable.Name,
		ParentID: editable.ParentID,
		UserID:   userID,
	}

	err = models.DB.Create(&category).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		Get expense categories
// @Description	Returns the user's expense categories. Subcategories reference their parent via parentId.
// @Tags			ExpenseCategories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.ExpenseCategory
	err := models.DB.Where("user_id = ?", currentUser(c)).Order("name ASC").Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Get expense category
// @Description	Returns a specific expense category
// @Tags			ExpenseCategories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	var category models.ExpenseCategory
	err = models.DB.First(&category, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Delete expense category
// @Description	Deletes an expense category. Fails while expenses or subcategories still reference it.
// @Tags			ExpenseCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var category models.ExpenseCategory
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
