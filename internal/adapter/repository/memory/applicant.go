package memory

import (
	"context"
	"time"

	"loandesk-backend/internal/domain/applicant"
	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/storage"
	"loandesk-backend/pkg/id"
)

func (s *Store) GetApplicants(_ context.Context) ([]applicant.Applicant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]applicant.Applicant, 0, len(s.applicants))
	for _, a := range s.applicants {
		out = append(out, a)
	}
	sortByCreatedDesc(out,
		func(a applicant.Applicant) time.Time { return a.CreatedAt },
		func(a applicant.Applicant) string { return a.ID })
	return out, nil
}

func (s *Store) GetApplicant(_ context.Context, applicantID string) (*applicant.Applicant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.applicants[applicantID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &a, nil
}

func (s *Store) CreateApplicant(_ context.Context, in applicant.CreateInput) (*applicant.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.applicantEmailTaken(in.Email, "") {
		return nil, storage.ErrDuplicateEmail
	}
	a := applicant.Applicant{
		ID:               id.NewID32(),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		DateOfBirth:      in.DateOfBirth,
		SSN:              id.MaskSSN(in.SSN),
		EmploymentStatus: in.EmploymentStatus,
		AnnualIncome:     in.AnnualIncome,
		CreditScore:      in.CreditScore,
		CreatedAt:        nowUTC(),
	}
	s.applicants[a.ID] = a
	s.appendAudit(audit.EntityApplicant, a.ID, audit.ActionCreate, "Created applicant: "+a.FullName())
	return &a, nil
}

func (s *Store) UpdateApplicant(_ context.Context, applicantID string, in applicant.UpdateInput) (*applicant.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applicants[applicantID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if in.Email != nil && s.applicantEmailTaken(*in.Email, applicantID) {
		return nil, storage.ErrDuplicateEmail
	}
	if in.SSN != nil {
		masked := id.MaskSSN(*in.SSN)
		in.SSN = &masked
	}
	in.Apply(&a)
	s.applicants[applicantID] = a
	s.appendAudit(audit.EntityApplicant, a.ID, audit.ActionUpdate, "Updated applicant: "+a.FullName())
	return &a, nil
}

func (s *Store) DeleteApplicant(_ context.Context, applicantID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applicants[applicantID]
	if !ok {
		return false, nil
	}
	delete(s.applicants, applicantID)
	s.appendAudit(audit.EntityApplicant, a.ID, audit.ActionDelete, "Deleted applicant: "+a.FullName())
	return true, nil
}
