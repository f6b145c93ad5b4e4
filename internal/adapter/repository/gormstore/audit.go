package gormstore

import (
	"context"
	"fmt"

	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/storage"
	"loandesk-backend/pkg/id"
)

func (s *Store) GetAuditLogs(ctx context.Context) ([]audit.AuditLog, error) {
	var out []audit.AuditLog
	if err := s.db.WithContext(ctx).Order("timestamp DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("fetch audit logs: %w", err)
	}
	return out, nil
}

// CreateAuditLog is the explicit hook for `view` entries. Mutation entries
// are written by the mutating operations themselves, never through here.
func (s *Store) CreateAuditLog(ctx context.Context, in audit.Entry) (*audit.AuditLog, error) {
	userID := in.UserID
	if userID == "" {
		userID = storage.DefaultUserID
	}
	row := audit.AuditLog{
		ID:         id.NewID32(),
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		Action:     in.Action,
		Details:    in.Details,
		UserID:     userID,
		Timestamp:  nowUTC(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create audit log: %w", err)
	}
	return &row, nil
}
