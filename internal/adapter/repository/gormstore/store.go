// Package gormstore is the durable relational backend of the storage
// contract. MySQL backs it in production, SQLite in development and tests;
// the two share one schema through gorm's migrations. Each mutating
// operation runs the entity write and its audit write inside a single
// transaction, so the audit trail never lags a committed mutation.
package gormstore

import (
	"time"

	"gorm.io/gorm"

	"loandesk-backend/internal/domain/applicant"
	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/provider"
	"loandesk-backend/internal/domain/storage"
	"loandesk-backend/pkg/id"
)

// compile-time check that the backend satisfies the facade
var _ storage.Storage = (*Store)(nil)

type Store struct{ db *gorm.DB }

func New(db *gorm.DB) *Store { return &Store{db: db} }

// Migrate creates or updates the four entity tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&provider.LoanProvider{},
		&applicant.Applicant{},
		&application.LoanApplication{},
		&audit.AuditLog{},
	)
}

func nowUTC() time.Time { return time.Now().UTC() }

// writeAudit inserts one audit row on the given (possibly transactional)
// handle. Ids and timestamps are assigned here, never by the caller.
func writeAudit(tx *gorm.DB, entityType audit.EntityType, entityID string, action audit.Action, details string) error {
	row := audit.AuditLog{
		ID:         id.NewID32(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
		UserID:     storage.DefaultUserID,
		Timestamp:  nowUTC(),
	}
	return tx.Create(&row).Error
}
