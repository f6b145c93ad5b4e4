package storage

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"loandesk-backend/internal/domain/applicant"
	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/provider"
)

var (
	// ErrNotFound signals that the targeted id is absent from the
	// collection. Get/update surface it; delete reports a miss as
	// (false, nil) instead.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a provider or applicant create or
	// update would reuse an email already held by another record.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrDanglingReference is returned when an application's applicant or
	// provider reference no longer resolves.
	ErrDanglingReference = errors.New("dangling entity reference")
)

// DefaultUserID is the actor recorded on audit entries and review
// transitions while the system has no authentication layer.
const DefaultUserID = "admin"

type DashboardStats struct {
	TotalApplications int64           `json:"totalApplications"`
	ApprovedLoans     int64           `json:"approvedLoans"`
	PendingReview     int64           `json:"pendingReview"`
	TotalValue        decimal.Decimal `json:"totalValue"`
}

// Storage is the single contract the HTTP layer consumes. Two backends
// implement it: the in-memory store (development/tests, seeded) and the
// gorm-backed relational store (production). Every create/update/delete on
// providers, applicants, and applications writes exactly one audit entry as
// part of the same operation; CreateAuditLog exists only for the explicit
// `view` action and is never invoked by the store itself.
type Storage interface {
	GetLoanProviders(ctx context.Context) ([]provider.LoanProvider, error)
	GetLoanProvider(ctx context.Context, id string) (*provider.LoanProvider, error)
	CreateLoanProvider(ctx context.Context, in provider.CreateInput) (*provider.LoanProvider, error)
	UpdateLoanProvider(ctx context.Context, id string, in provider.UpdateInput) (*provider.LoanProvider, error)
	DeleteLoanProvider(ctx context.Context, id string) (bool, error)

	GetApplicants(ctx context.Context) ([]applicant.Applicant, error)
	GetApplicant(ctx context.Context, id string) (*applicant.Applicant, error)
	CreateApplicant(ctx context.Context, in applicant.CreateInput) (*applicant.Applicant, error)
	UpdateApplicant(ctx context.Context, id string, in applicant.UpdateInput) (*applicant.Applicant, error)
	DeleteApplicant(ctx context.Context, id string) (bool, error)

	GetLoanApplications(ctx context.Context) ([]application.WithDetails, error)
	GetLoanApplication(ctx context.Context, id string) (*application.WithDetails, error)
	CreateLoanApplication(ctx context.Context, in application.CreateInput) (*application.LoanApplication, error)
	UpdateLoanApplication(ctx context.Context, id string, in application.UpdateInput) (*application.LoanApplication, error)
	DeleteLoanApplication(ctx context.Context, id string) (bool, error)

	GetAuditLogs(ctx context.Context) ([]audit.AuditLog, error)
	CreateAuditLog(ctx context.Context, in audit.Entry) (*audit.AuditLog, error)

	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
