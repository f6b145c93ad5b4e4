package memory

import (
	"context"
	"time"

	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/provider"
	"loandesk-backend/internal/domain/storage"
	"loandesk-backend/pkg/id"
)

func (s *Store) GetLoanProviders(_ context.Context) ([]provider.LoanProvider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]provider.LoanProvider, 0, len(s.providers))
	for _, p := range s.providers {
		out = append(out, p)
	}
	sortByCreatedDesc(out,
		func(p provider.LoanProvider) time.Time { return p.CreatedAt },
		func(p provider.LoanProvider) string { return p.ID })
	return out, nil
}

func (s *Store) GetLoanProvider(_ context.Context, providerID string) (*provider.LoanProvider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.providers[providerID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (s *Store) CreateLoanProvider(_ context.Context, in provider.CreateInput) (*provider.LoanProvider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.providerEmailTaken(in.Email, "") {
		return nil, storage.ErrDuplicateEmail
	}
	status := in.Status
	if status == "" {
		status = provider.StatusActive
	}
	p := provider.LoanProvider{
		ID:              id.NewID32(),
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Address:         in.Address,
		Website:         in.Website,
		LicenseNumber:   in.LicenseNumber,
		Status:          status,
		InterestRateMin: in.InterestRateMin,
		InterestRateMax: in.InterestRateMax,
		MaxLoanAmount:   in.MaxLoanAmount,
		CreatedAt:       nowUTC(),
	}
	s.providers[p.ID] = p
	s.appendAudit(audit.EntityProvider, p.ID, audit.ActionCreate, "Created loan provider: "+p.Name)
	return &p, nil
}

func (s *Store) UpdateLoanProvider(_ context.Context, providerID string, in provider.UpdateInput) (*provider.LoanProvider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.providers[providerID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if in.Email != nil && s.providerEmailTaken(*in.Email, providerID) {
		return nil, storage.ErrDuplicateEmail
	}
	in.Apply(&p)
	s.providers[providerID] = p
	s.appendAudit(audit.EntityProvider, p.ID, audit.ActionUpdate, "Updated loan provider: "+p.Name)
	return &p, nil
}

func (s *Store) DeleteLoanProvider(_ context.Context, providerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.providers[providerID]
	if !ok {
		return false, nil
	}
	delete(s.providers, providerID)
	s.appendAudit(audit.EntityProvider, p.ID, audit.ActionDelete, "Deleted loan provider: "+p.Name)
	return true, nil
}
