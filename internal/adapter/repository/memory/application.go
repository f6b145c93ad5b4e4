package memory

import (
	"context"
	"log"
	"time"

	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/storage"
	"loandesk-backend/pkg/id"
)

// GetLoanApplications returns the enriched view, newest submissions first.
// Rows with dangling references are omitted, matching the gorm backend.
func (s *Store) GetLoanApplications(_ context.Context) ([]application.WithDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	apps := make([]application.LoanApplication, 0, len(s.applications))
	for _, a := range s.applications {
		apps = append(apps, a)
	}
	sortByCreatedDesc(apps,
		func(a application.LoanApplication) time.Time { return a.SubmittedAt },
		func(a application.LoanApplication) string { return a.ID })

	out := make([]application.WithDetails, 0, len(apps))
	for _, app := range apps {
		ap, okA := s.applicants[app.ApplicantID]
		pr, okP := s.providers[app.ProviderID]
		if !okA || !okP {
			log.Printf("loan application %s has a dangling reference, omitting from listing", app.ID)
			continue
		}
		out = append(out, application.WithDetails{LoanApplication: app, Applicant: ap, Provider: pr})
	}
	return out, nil
}

func (s *Store) GetLoanApplication(_ context.Context, appID string) (*application.WithDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.applications[appID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	ap, okA := s.applicants[app.ApplicantID]
	pr, okP := s.providers[app.ProviderID]
	if !okA || !okP {
		return nil, storage.ErrDanglingReference
	}
	return &application.WithDetails{LoanApplication: app, Applicant: ap, Provider: pr}, nil
}

func (s *Store) CreateLoanApplication(_ context.Context, in application.CreateInput) (*application.LoanApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := in.Status
	if status == "" {
		status = application.StatusPending
	}
	app := application.LoanApplication{
		ID:           id.NewID32(),
		ApplicantID:  in.ApplicantID,
		ProviderID:   in.ProviderID,
		LoanAmount:   in.LoanAmount,
		LoanPurpose:  in.LoanPurpose,
		LoanTerm:     in.LoanTerm,
		InterestRate: in.InterestRate,
		Status:       status,
		Notes:        in.Notes,
		SubmittedAt:  nowUTC(),
	}
	s.applications[app.ID] = app
	s.appendAudit(audit.EntityApplication, app.ID, audit.ActionCreate,
		"Created loan application for "+app.LoanAmount.StringFixed(2))
	return &app, nil
}

func (s *Store) UpdateLoanApplication(_ context.Context, appID string, in application.UpdateInput) (*application.LoanApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[appID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	in.Apply(&app, nowUTC(), storage.DefaultUserID)
	s.applications[appID] = app
	s.appendAudit(audit.EntityApplication, app.ID, audit.ActionUpdate,
		"Updated loan application, status: "+string(app.Status))
	return &app, nil
}

func (s *Store) DeleteLoanApplication(_ context.Context, appID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[appID]
	if !ok {
		return false, nil
	}
	delete(s.applications, appID)
	s.appendAudit(audit.EntityApplication, app.ID, audit.ActionDelete,
		"Deleted loan application for "+app.LoanAmount.StringFixed(2))
	return true, nil
}
