package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "verde/internal/errors"
	"verde/internal/models"
	"verde/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category.
type CreateCategoryRequest struct {
	Name     string              `json:"name" binding:"required,min=1,max=100"`
	Type     models.CategoryType `json:"type" binding:"required,category_type"`
	Icon     string              `json:"icon" binding:"max=32"`
	Color    string              `json:"color" binding:"omitempty,hex_color"`
	ParentID *string             `json:"parent_id" binding:"omitempty,min=1"`
}

// UpdateCategoryRequest represents the request payload for updating a category.
type UpdateCategoryRequest struct {
	Name        *string              `json:"name" binding:"omitempty,min=1,max=100"`
	Type        *models.CategoryType `json:"type" binding:"omitempty,category_type"`
	Icon        *string              `json:"icon" binding:"omitempty,max=32"`
	Color       *string              `json:"color" binding:"omitempty,hex_color"`
	ParentID    *string              `json:"parent_id" binding:"omitempty,min=1"`
	ClearParent bool                 `json:"clear_parent"`
}

// CreateCategory handles the creation of a new category.
// @Summary     Create a category
// @Description Create a new category, optionally under a top-level parent
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} CategoryResponse "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Parent category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	category, err := h.categoryService.AddCategory(c.Request.Context(), models.Category{
		Name:     req.Name,
		Type:     req.Type,
		Icon:     req.Icon,
		Color:    req.Color,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetCategories handles listing categories.
// @Summary     Get categories
// @Description List categories with their display labels, optionally filtered by type
// @Tags        categories
// @Produce     json
// @Param       type query string false "Filter by type (income/expense)"
// @Success     200 {object} CategoryListResponse "Categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var categoryType *models.CategoryType
	if v := c.Query("type"); v != "" {
		t := models.CategoryType(v)
		if !t.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'income' or 'expense'"))
			return
		}
		categoryType = &t
	}

	c.JSON(http.StatusOK, gin.H{"categories": h.categoryService.ListCategories(categoryType)})
}

// GetCategory handles retrieving a specific category.
// @Summary     Get category by ID
// @Description Get a category by ID, including the built-in system categories
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} CategoryResponse "Category details"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// UpdateCategory handles updating an existing category.
// @Summary     Update category
// @Description Update an existing category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path string                true "Category ID"
// @Param       request body UpdateCategoryRequest true "Updated category details"
// @Success     200 {object} CategoryResponse "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if _, ok := models.SystemCategory(id); ok {
		respondWithError(c, apperrors.ErrSystemCategory)
		return
	}
	if _, err := h.categoryService.GetCategory(id); err != nil {
		respondWithError(c, err)
		return
	}

	patch := models.CategoryPatch{
		Name:        req.Name,
		Type:        req.Type,
		Icon:        req.Icon,
		Color:       req.Color,
		ParentID:    req.ParentID,
		ClearParent: req.ClearParent,
	}
	if err := h.categoryService.UpdateCategory(c.Request.Context(), id, patch); err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory handles deleting a category.
// @Summary     Delete category
// @Description Delete a category. Children become top-level; transactions keep the dangling id.
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     400 {object} ErrorResponse "System category"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, ok := models.SystemCategory(id); !ok {
		if _, err := h.categoryService.GetCategory(id); err != nil {
			respondWithError(c, err)
			return
		}
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
