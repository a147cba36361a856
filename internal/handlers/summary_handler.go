package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"verde/internal/services"
)

// SummaryHandler serves the dashboard and the raw state snapshot.
type SummaryHandler struct {
	summaryService services.SummaryServicer
	stateReader    services.StateReader
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer, stateReader services.StateReader) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService, stateReader: stateReader}
}

// DashboardQuery holds the dashboard query parameters.
type DashboardQuery struct {
	Month string `form:"month" binding:"omitempty,year_month"`
}

// GetDashboard handles the dashboard summary.
// @Summary     Get dashboard
// @Description Balances, monthly totals, expense breakdown and history for a month
// @Tags        dashboard
// @Produce     json
// @Param       month query string false "Month (YYYY-MM), defaults to the current month"
// @Success     200 {object} DashboardResponse "Dashboard"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Router      /dashboard [get]
func (h *SummaryHandler) GetDashboard(c *gin.Context) {
	var q DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	summary, err := h.summaryService.GetDashboard(q.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": summary})
}

// GetMonths handles listing the months that carry activity.
// @Summary     Get available months
// @Description The current month plus every month with a transaction, newest first
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} MonthsResponse "Months"
// @Router      /dashboard/months [get]
func (h *SummaryHandler) GetMonths(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"months": h.summaryService.AvailableMonths()})
}

// GetState handles exporting the full ledger state.
// @Summary     Export state
// @Description Return a copy of the whole ledger state
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} models.State "State"
// @Router      /state [get]
func (h *SummaryHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.stateReader.State())
}
