package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"verde/internal/services"
)

// AuditHandler serves the audit trail.
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// GetAuditLogs handles listing audit log entries.
// @Summary     Get audit logs
// @Description List recorded ledger changes, newest first
// @Tags        audit
// @Produce     json
// @Param       resource_type query string false "Filter by resource type, e.g. transactions"
// @Param       page          query int    false "Page number"
// @Param       page_size     query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[models.AuditLog] "Audit logs"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logs, err := h.auditService.ListAuditLogs(c.Request.Context(), c.Query("resource_type"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
