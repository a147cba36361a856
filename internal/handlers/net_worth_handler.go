package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "verde/internal/errors"
	"verde/internal/models"
	"verde/internal/services"
)

// NetWorthHandler handles net-worth snapshot requests.
type NetWorthHandler struct {
	snapshotService services.NetWorthSnapshotServicer
	now             func() time.Time
}

// NewNetWorthHandler creates a new NetWorthHandler. A nil clock means time.Now.
func NewNetWorthHandler(snapshotService services.NetWorthSnapshotServicer, now func() time.Time) *NetWorthHandler {
	if now == nil {
		now = time.Now
	}
	return &NetWorthHandler{snapshotService: snapshotService, now: now}
}

// RecordSnapshotRequest represents the request payload for recording a snapshot.
type RecordSnapshotRequest struct {
	Date string `json:"date" binding:"omitempty,iso_date"`
}

// RecordSnapshot handles recording today's (or the given day's) net worth.
// Recording the same day twice replaces the earlier snapshot.
// @Summary     Record net-worth snapshot
// @Description Store cash, debt, investments and score for a day
// @Tags        net-worth
// @Accept      json
// @Produce     json
// @Param       request body RecordSnapshotRequest false "Snapshot day, defaults to today"
// @Success     201 {object} SnapshotResponse "Snapshot"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /net-worth/snapshots [post]
func (h *NetWorthHandler) RecordSnapshot(c *gin.Context) {
	var req RecordSnapshotRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, invalidInput(err))
			return
		}
	}

	day := models.FormatDate(h.now().UTC())
	if req.Date != "" {
		day = req.Date
	}
	recordedAt, err := models.ParseDate(day)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidDate)
		return
	}

	snapshot, err := h.snapshotService.RecordSnapshot(c.Request.Context(), recordedAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}

// GetSnapshots handles listing snapshots in a date range.
// @Summary     Get net-worth snapshots
// @Description List snapshots between two days, newest first
// @Tags        net-worth
// @Produce     json
// @Param       from_date query string false "First day (YYYY-MM-DD)"
// @Param       to_date   query string false "Last day (YYYY-MM-DD)"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[models.NetWorthSnapshot] "Snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /net-worth/snapshots [get]
func (h *NetWorthHandler) GetSnapshots(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from := time.Time{}
	to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	if v := c.Query("from_date"); v != "" {
		if from, err = models.ParseDate(v); err != nil {
			respondWithError(c, apperrors.ErrInvalidDate)
			return
		}
	}
	if v := c.Query("to_date"); v != "" {
		if to, err = models.ParseDate(v); err != nil {
			respondWithError(c, apperrors.ErrInvalidDate)
			return
		}
	}
	if to.Before(from) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to_date must not be before from_date"))
		return
	}

	snapshots, err := h.snapshotService.GetSnapshots(c.Request.Context(), from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshots)
}
