package storagemock

import (
	"context"

	"loandesk-backend/internal/domain/applicant"
	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/provider"
	"loandesk-backend/internal/domain/storage"
)

// Store is a function-backed mock that satisfies storage.Storage. Unset
// functions fall back to empty results or ErrNotFound, so tests only wire
// the methods they exercise.
type Store struct {
	GetLoanProvidersFn   func(ctx context.Context) ([]provider.LoanProvider, error)
	GetLoanProviderFn    func(ctx context.Context, id string) (*provider.LoanProvider, error)
	CreateLoanProviderFn func(ctx context.Context, in provider.CreateInput) (*provider.LoanProvider, error)
	UpdateLoanProviderFn func(ctx context.Context, id string, in provider.UpdateInput) (*provider.LoanProvider, error)
	DeleteLoanProviderFn func(ctx context.Context, id string) (bool, error)

	GetApplicantsFn   func(ctx context.Context) ([]applicant.Applicant, error)
	GetApplicantFn    func(ctx context.Context, id string) (*applicant.Applicant, error)
	CreateApplicantFn func(ctx context.Context, in applicant.CreateInput) (*applicant.Applicant, error)
	UpdateApplicantFn func(ctx context.Context, id string, in applicant.UpdateInput) (*applicant.Applicant, error)
	DeleteApplicantFn func(ctx context.Context, id string) (bool, error)

	GetLoanApplicationsFn   func(ctx context.Context) ([]application.WithDetails, error)
	GetLoanApplicationFn    func(ctx context.Context, id string) (*application.WithDetails, error)
	CreateLoanApplicationFn func(ctx context.Context, in application.CreateInput) (*application.LoanApplication, error)
	UpdateLoanApplicationFn func(ctx context.Context, id string, in application.UpdateInput) (*application.LoanApplication, error)
	DeleteLoanApplicationFn func(ctx context.Context, id string) (bool, error)

	GetAuditLogsFn   func(ctx context.Context) ([]audit.AuditLog, error)
	CreateAuditLogFn func(ctx context.Context, in audit.Entry) (*audit.AuditLog, error)

	GetDashboardStatsFn func(ctx context.Context) (*storage.DashboardStats, error)
}

var _ storage.Storage = (*Store)(nil)

func (m *Store) GetLoanProviders(ctx context.Context) ([]provider.LoanProvider, error) {
	if m.GetLoanProvidersFn != nil {
		return m.GetLoanProvidersFn(ctx)
	}
	return []provider.LoanProvider{}, nil
}

func (m *Store) GetLoanProvider(ctx context.Context, id string) (*provider.LoanProvider, error) {
	if m.GetLoanProviderFn != nil {
		return m.GetLoanProviderFn(ctx, id)
	}
	return nil, storage.ErrNotFound
}

func (m *Store) CreateLoanProvider(ctx context.Context, in provider.CreateInput) (*provider.LoanProvider, error) {
	if m.CreateLoanProviderFn != nil {
		return m.CreateLoanProviderFn(ctx, in)
	}
	return nil, storage.ErrNotFound
}

func (m *Store) UpdateLoanProvider(ctx context.Context, id string, in provider.UpdateInput) (*provider.LoanProvider, error) {
	if m.UpdateLoanProviderFn != nil {
		return m.UpdateLoanProviderFn(ctx, id, in)
	}
	return nil, storage.ErrNotFound
}

func (m *Store) DeleteLoanProvider(ctx context.Context, id string) (bool, error) {
	if m.DeleteLoanProviderFn != nil {
		return m.DeleteLoanProviderFn(ctx, id)
	}
	return false, nil
}

func (m *Store) GetApplicants(ctx context.Context) ([]applicant.Applicant, error) {
	if m.GetApplicantsFn != nil {
		return m.GetApplicantsFn(ctx)
	}
	return []applicant.Applicant{}, nil
}

func (m *Store) GetApplicant(ctx context.Context, id string) (*applicant.Applicant, error) {
	if m.GetApplicantFn != nil {
		return m.GetApplicantFn(ctx, id)
	}
	return nil, storage.ErrNotFound
}

func (m *Store) CreateApplicant(ctx context.Context, in applicant.CreateInput) (*applicant.Applicant, error) {
	if m.CreateApplicantFn != nil {
		return m.CreateApplicantFn(ctx, in)
	}
	return nil, storage.ErrNotFound
}

func (m *Store) UpdateApplicant(ctx context.Context, id string, in applicant.UpdateInput) (*applicant.Applicant, error) {
	if m.UpdateApplicantFn != nil {
		return m.UpdateApplicantFn(ctx, id, in)
	}
	return nil, storage.ErrNotFound
}

func (m *Store) DeleteApplicant(ctx context.Context, id string) (bool, error) {
	if m.DeleteApplicantFn != nil {
		return m.DeleteApplicantFn(ctx, id)
	}
	return false, nil
}

func (m *Store) GetLoanApplications(ctx context.Context) ([]application.WithDetails, error) {
	if m.GetLoanApplicationsFn != nil {
		return m.GetLoanApplicationsFn(ctx)
	}
	return []application.WithDetails{}, nil
}

func (m *Store) GetLoanApplication(ctx context.Context, id string) (*application.WithDetails, error) {
	if m.GetLoanApplicationFn != nil {
		return m.GetLoanApplicationFn(ctx, id)
	}
	return nil, storage.ErrNotFound
}

func (m *Store) CreateLoanApplication(ctx context.Context, in application.CreateInput) (*application.LoanApplication, error) {
	if m.CreateLoanApplicationFn != nil {
		return m.CreateLoanApplicationFn(ctx, in)
	}
	return nil, storage.ErrNotFound
}

func (m *Store) UpdateLoanApplication(ctx context.Context, id string, in application.UpdateInput) (*application.LoanApplication, error) {
	if m.UpdateLoanApplicationFn != nil {
		return m.UpdateLoanApplicationFn(ctx, id, in)
	}
	return nil, storage.ErrNotFound
}

func (m *Store) DeleteLoanApplication(ctx context.Context, id string) (bool, error) {
	if m.DeleteLoanApplicationFn != nil {
		return m.DeleteLoanApplicationFn(ctx, id)
	}
	return false, nil
}

func (m *Store) GetAuditLogs(ctx context.Context) ([]audit.AuditLog, error) {
	if m.GetAuditLogsFn != nil {
		return m.GetAuditLogsFn(ctx)
	}
	return []audit.AuditLog{}, nil
}

func (m *Store) CreateAuditLog(ctx context.Context, in audit.Entry) (*audit.AuditLog, error) {
	if m.CreateAuditLogFn != nil {
		return m.CreateAuditLogFn(ctx, in)
	}
	return nil, storage.ErrNotFound
}

func (m *Store) GetDashboardStats(ctx context.Context) (*storage.DashboardStats, error) {
	if m.GetDashboardStatsFn != nil {
		return m.GetDashboardStatsFn(ctx)
	}
	return &storage.DashboardStats{}, nil
}
