package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"verde/internal/models"
	"verde/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	CategoryID string          `json:"category_id" binding:"required,max=128"`
	Limit      decimal.Decimal `json:"limit" binding:"gt=0"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	CategoryID *string          `json:"category_id" binding:"omitempty,min=1,max=128"`
	Limit      *decimal.Decimal `json:"limit" binding:"omitempty,gt=0"`
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Description Create a spending limit for a category. Spent is filled in by the next refresh.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} BudgetResponse "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	budget, err := h.budgetService.AddBudget(c.Request.Context(), models.Budget{CategoryID: req.CategoryID, Limit: req.Limit})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing budgets.
// @Summary     Get budgets
// @Description List every budget with its last computed spending
// @Tags        budgets
// @Produce     json
// @Success     200 {object} BudgetListResponse "Budgets"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"budgets": h.budgetService.ListBudgets()})
}

// GetBudget handles retrieving a specific budget.
// @Summary     Get budget by ID
// @Description Get a specific budget by ID
// @Tags        budgets
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} BudgetResponse "Budget details"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles updating an existing budget.
// @Summary     Update budget
// @Description Update an existing budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Updated budget details"
// @Success     200 {object} BudgetResponse "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if _, err := h.budgetService.GetBudget(id); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.UpdateBudget(c.Request.Context(), id, models.BudgetPatch{CategoryID: req.CategoryID, Limit: req.Limit}); err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget.
// @Summary     Delete budget
// @Description Delete a budget by ID
// @Tags        budgets
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.budgetService.GetBudget(id); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}

// RefreshBudgets handles recomputing every budget's spending.
// @Summary     Refresh budgets
// @Description Recompute spent for every budget from the transaction list
// @Tags        budgets
// @Produce     json
// @Success     200 {object} BudgetRefreshResponse "Refresh result"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/refresh [post]
func (h *BudgetHandler) RefreshBudgets(c *gin.Context) {
	changed, err := h.budgetService.RefreshBudgets(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changed": changed, "budgets": h.budgetService.ListBudgets()})
}

// GetBudgetProgress handles retrieving the spending progress for a budget.
// @Summary     Get budget progress
// @Description Get spending against the limit for a budget
// @Tags        budgets
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} BudgetProgressResponse "Budget progress"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id}/progress [get]
func (h *BudgetHandler) GetBudgetProgress(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	progress, err := h.budgetService.GetBudgetProgress(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
