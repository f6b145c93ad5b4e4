package memory

import (
	"context"

	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/storage"
	"loandesk-backend/pkg/id"
)

// GetAuditLogs lists the trail newest-first. Entries are appended in call
// order, so reverse insertion order is timestamp-descending even when two
// entries share a timestamp.
func (s *Store) GetAuditLogs(_ context.Context) ([]audit.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]audit.AuditLog, len(s.auditLogs))
	for i, entry := range s.auditLogs {
		out[len(s.auditLogs)-1-i] = entry
	}
	return out, nil
}

// CreateAuditLog is the explicit hook for `view` entries. Mutation entries
// are appended by the mutating operations themselves, never through here.
func (s *Store) CreateAuditLog(_ context.Context, in audit.Entry) (*audit.AuditLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
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
	s.auditLogs = append(s.auditLogs, row)
	return &row, nil
}
