package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"verde/internal/models"
	"verde/internal/services"
)

// ScheduleHandler handles recurring and one-off scheduled payments.
type ScheduleHandler struct {
	scheduleService services.ScheduleServicer
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService services.ScheduleServicer) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// CreateScheduleRequest represents the request payload for creating a schedule.
type CreateScheduleRequest struct {
	Description string                 `json:"description" binding:"required,min=1,max=255"`
	Amount      decimal.Decimal        `json:"amount"`
	Date        string                 `json:"date" binding:"required,iso_date"`
	Frequency   models.Frequency       `json:"frequency" binding:"required,frequency"`
	CategoryID  string                 `json:"category_id" binding:"max=128"`
	AccountID   string                 `json:"account_id" binding:"required,max=128"`
	ToAccountID *string                `json:"to_account_id" binding:"omitempty,min=1,max=128"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
}

// UpdateScheduleRequest represents the request payload for updating a schedule.
type UpdateScheduleRequest struct {
	Description *string                 `json:"description" binding:"omitempty,min=1,max=255"`
	Amount      *decimal.Decimal        `json:"amount"`
	Date        *string                 `json:"date" binding:"omitempty,iso_date"`
	Frequency   *models.Frequency       `json:"frequency" binding:"omitempty,frequency"`
	CategoryID  *string                 `json:"category_id" binding:"omitempty,max=128"`
	AccountID   *string                 `json:"account_id" binding:"omitempty,min=1,max=128"`
	ToAccountID *string                 `json:"to_account_id" binding:"omitempty,min=1,max=128"`
	Type        *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
}

// CreateSchedule handles the creation of a new schedule.
// @Summary     Create a schedule
// @Description Create a one-off, weekly or monthly scheduled transaction
// @Tags        schedules
// @Accept      json
// @Produce     json
// @Param       request body CreateScheduleRequest true "Schedule details"
// @Success     201 {object} ScheduleResponse "Schedule created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	schedule, err := h.scheduleService.AddSchedule(c.Request.Context(), models.Schedule{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Frequency:   req.Frequency,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		ToAccountID: req.ToAccountID,
		Type:        req.Type,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"schedule": schedule})
}

// GetSchedules handles listing the schedule agenda.
// @Summary     Get schedules
// @Description List schedules soonest first with their status relative to today
// @Tags        schedules
// @Produce     json
// @Success     200 {object} AgendaResponse "Agenda"
// @Router      /schedules [get]
func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schedules": h.scheduleService.Agenda()})
}

// GetSchedule handles retrieving a specific schedule.
// @Summary     Get schedule by ID
// @Description Get a specific schedule by ID
// @Tags        schedules
// @Produce     json
// @Param       id path string true "Schedule ID"
// @Success     200 {object} ScheduleResponse "Schedule details"
// @Failure     404 {object} ErrorResponse "Schedule not found"
// @Router      /schedules/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	schedule, err := h.scheduleService.GetSchedule(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// UpdateSchedule handles updating an existing schedule.
// @Summary     Update schedule
// @Description Update an existing schedule
// @Tags        schedules
// @Accept      json
// @Produce     json
// @Param       id      path string                true "Schedule ID"
// @Param       request body UpdateScheduleRequest true "Updated schedule details"
// @Success     200 {object} ScheduleResponse "Updated schedule"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Schedule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /schedules/{id} [put]
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if _, err := h.scheduleService.GetSchedule(id); err != nil {
		respondWithError(c, err)
		return
	}

	patch := models.SchedulePatch{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Frequency:   req.Frequency,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		ToAccountID: req.ToAccountID,
		Type:        req.Type,
	}
	if err := h.scheduleService.UpdateSchedule(c.Request.Context(), id, patch); err != nil {
		respondWithError(c, err)
		return
	}

	schedule, err := h.scheduleService.GetSchedule(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// DeleteSchedule handles deleting a schedule.
// @Summary     Delete schedule
// @Description Delete a schedule by ID
// @Tags        schedules
// @Produce     json
// @Param       id path string true "Schedule ID"
// @Success     200 {object} MessageResponse "Schedule deleted"
// @Failure     404 {object} ErrorResponse "Schedule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.scheduleService.GetSchedule(id); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.scheduleService.DeleteSchedule(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}

// PaySchedule handles paying a schedule.
// @Summary     Pay schedule
// @Description Record the scheduled transaction dated today and move the schedule to its next due date
// @Tags        schedules
// @Produce     json
// @Param       id path string true "Schedule ID"
// @Success     201 {object} TransactionResponse "Payment recorded"
// @Failure     404 {object} ErrorResponse "Schedule not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /schedules/{id}/pay [post]
func (h *ScheduleHandler) PaySchedule(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.scheduleService.GetSchedule(id); err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.scheduleService.PaySchedule(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}
