package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"verde/internal/models"
	"verde/internal/services"
)

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  decimal.Decimal `json:"target_amount" binding:"gt=0"`
	CurrentAmount decimal.Decimal `json:"current_amount" binding:"gte=0"`
	Deadline      string          `json:"deadline" binding:"omitempty,iso_date"`
	Icon          string          `json:"icon" binding:"max=32"`
	Color         string          `json:"color" binding:"omitempty,hex_color"`
}

// UpdateGoalRequest represents the request payload for updating a goal.
type UpdateGoalRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=100"`
	TargetAmount  *decimal.Decimal `json:"target_amount" binding:"omitempty,gt=0"`
	CurrentAmount *decimal.Decimal `json:"current_amount" binding:"omitempty,gte=0"`
	Deadline      *string          `json:"deadline" binding:"omitempty,iso_date"`
	Icon          *string          `json:"icon" binding:"omitempty,max=32"`
	Color         *string          `json:"color" binding:"omitempty,hex_color"`
}

// CreateGoal handles the creation of a new goal.
// @Summary     Create a goal
// @Description Create a savings goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} GoalResponse "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	goal, err := h.goalService.AddGoal(c.Request.Context(), models.Goal{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Icon:          req.Icon,
		Color:         req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals handles listing goals.
// @Summary     Get goals
// @Description List goals with their progress
// @Tags        goals
// @Produce     json
// @Success     200 {object} GoalListResponse "Goals"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"goals": h.goalService.ListGoals()})
}

// GetGoal handles retrieving a specific goal.
// @Summary     Get goal by ID
// @Description Get a specific goal by ID
// @Tags        goals
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} GoalResponse "Goal details"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoal(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// UpdateGoal handles updating a goal.
// @Summary     Update goal
// @Description Update a goal, e.g. to record a new saved amount
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Goal ID"
// @Param       request body UpdateGoalRequest true "Updated goal details"
// @Success     200 {object} GoalResponse "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if _, err := h.goalService.GetGoal(id); err != nil {
		respondWithError(c, err)
		return
	}

	patch := models.GoalPatch{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Icon:          req.Icon,
		Color:         req.Color,
	}
	if err := h.goalService.UpdateGoal(c.Request.Context(), id, patch); err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoal(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal handles deleting a goal.
// @Summary     Delete goal
// @Description Delete a goal by ID
// @Tags        goals
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.goalService.GetGoal(id); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
