// Package memory is the map-backed development backend of the storage
// contract. All state lives in process; a mutex keeps concurrent echo
// requests from corrupting the maps. The entity write and its audit append
// happen under the same lock, so the trail can never lag a mutation.
package memory

import (
	"sort"
	"sync"
	"time"

	"loandesk-backend/internal/domain/applicant"
	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/provider"
	"loandesk-backend/internal/domain/storage"
	"loandesk-backend/pkg/id"
)

var _ storage.Storage = (*Store)(nil)

type Store struct {
	mu           sync.RWMutex
	providers    map[string]provider.LoanProvider
	applicants   map[string]applicant.Applicant
	applications map[string]application.LoanApplication
	auditLogs    []audit.AuditLog // append-only, insertion order
}

// New returns a store pre-seeded with sample rows for development.
func New() *Store {
	s := &Store{
		providers:    make(map[string]provider.LoanProvider),
		applicants:   make(map[string]applicant.Applicant),
		applications: make(map[string]application.LoanApplication),
	}
	s.seed()
	return s
}

// NewEmpty returns a store without seed data, for tests that assert exact
// collection contents.
func NewEmpty() *Store {
	return &Store{
		providers:    make(map[string]provider.LoanProvider),
		applicants:   make(map[string]applicant.Applicant),
		applications: make(map[string]application.LoanApplication),
	}
}

func nowUTC() time.Time { return time.Now().UTC() }

// appendAudit must be called with the write lock held.
func (s *Store) appendAudit(entityType audit.EntityType, entityID string, action audit.Action, details string) {
	s.auditLogs = append(s.auditLogs, audit.AuditLog{
		ID:         id.NewID32(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
		UserID:     storage.DefaultUserID,
		Timestamp:  nowUTC(),
	})
}

// providerEmailTaken must be called with a lock held.
func (s *Store) providerEmailTaken(email, excludeID string) bool {
	for _, p := range s.providers {
		if p.Email == email && p.ID != excludeID {
			return true
		}
	}
	return false
}

// applicantEmailTaken must be called with a lock held.
func (s *Store) applicantEmailTaken(email, excludeID string) bool {
	for _, a := range s.applicants {
		if a.Email == email && a.ID != excludeID {
			return true
		}
	}
	return false
}

func sortByCreatedDesc[T any](items []T, createdAt func(T) time.Time, key func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		ti, tj := createdAt(items[i]), createdAt(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return key(items[i]) > key(items[j])
	})
}
