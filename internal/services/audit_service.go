package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	apperrors "verde/internal/errors"
	"verde/internal/events"
	"verde/internal/logger"
	"verde/internal/models"
	"verde/internal/pagination"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(ctx context.Context, action, resourceType, resourceID string, changes map[string]any) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Changes:      changesJSON,
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

// Subscriber returns a bus handler that records every committed mutation.
func (s *auditService) Subscriber() events.Handler {
	return func(ctx context.Context, e events.Event) {
		s.Log(context.WithoutCancel(ctx), e.Name(), string(e.Collection), e.EntityID, e.Payload)
	}
}

// ListAuditLogs returns audit entries newest first, optionally limited to one
// resource type.
func (s *auditService) ListAuditLogs(ctx context.Context, resourceType string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.AuditLog{})
	if resourceType != "" {
		base = base.Where("resource_type = ?", resourceType)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.AuditLog
	if err := base.Order("created_at DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}
