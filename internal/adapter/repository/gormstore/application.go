package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"loandesk-backend/internal/domain/applicant"
	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/provider"
	"loandesk-backend/internal/domain/storage"
	"loandesk-backend/pkg/id"
)

// GetLoanApplications returns the enriched view, newest submissions first.
// Rows whose applicant or provider reference no longer resolves are omitted
// from the listing; the per-id read surfaces them as ErrDanglingReference
// instead.
func (s *Store) GetLoanApplications(ctx context.Context) ([]application.WithDetails, error) {
	var apps []application.LoanApplication
	if err := s.db.WithContext(ctx).Order("submitted_at DESC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("fetch loan applications: %w", err)
	}
	if len(apps) == 0 {
		return []application.WithDetails{}, nil
	}

	applicantIDs := make([]string, 0, len(apps))
	providerIDs := make([]string, 0, len(apps))
	for _, a := range apps {
		applicantIDs = append(applicantIDs, a.ApplicantID)
		providerIDs = append(providerIDs, a.ProviderID)
	}

	var applicants []applicant.Applicant
	if err := s.db.WithContext(ctx).Where("id IN ?", applicantIDs).Find(&applicants).Error; err != nil {
		return nil, fmt.Errorf("fetch applicants for join: %w", err)
	}
	var providers []provider.LoanProvider
	if err := s.db.WithContext(ctx).Where("id IN ?", providerIDs).Find(&providers).Error; err != nil {
		return nil, fmt.Errorf("fetch providers for join: %w", err)
	}

	applicantByID := make(map[string]applicant.Applicant, len(applicants))
	for _, a := range applicants {
		applicantByID[a.ID] = a
	}
	providerByID := make(map[string]provider.LoanProvider, len(providers))
	for _, p := range providers {
		providerByID[p.ID] = p
	}

	out := make([]application.WithDetails, 0, len(apps))
	for _, app := range apps {
		ap, okA := applicantByID[app.ApplicantID]
		pr, okP := providerByID[app.ProviderID]
		if !okA || !okP {
			log.Printf("loan application %s has a dangling reference, omitting from listing", app.ID)
			continue
		}
		out = append(out, application.WithDetails{LoanApplication: app, Applicant: ap, Provider: pr})
	}
	return out, nil
}

func (s *Store) GetLoanApplication(ctx context.Context, appID string) (*application.WithDetails, error) {
	var app application.LoanApplication
	err := s.db.WithContext(ctx).Where("id = ?", appID).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch loan application: %w", err)
	}
	return s.resolveDetails(ctx, app)
}

func (s *Store) resolveDetails(ctx context.Context, app application.LoanApplication) (*application.WithDetails, error) {
	var ap applicant.Applicant
	err := s.db.WithContext(ctx).Where("id = ?", app.ApplicantID).First(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrDanglingReference
	}
	if err != nil {
		return nil, fmt.Errorf("resolve applicant: %w", err)
	}
	var pr provider.LoanProvider
	err = s.db.WithContext(ctx).Where("id = ?", app.ProviderID).First(&pr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrDanglingReference
	}
	if err != nil {
		return nil, fmt.Errorf("resolve provider: %w", err)
	}
	return &application.WithDetails{LoanApplication: app, Applicant: ap, Provider: pr}, nil
}

func (s *Store) CreateLoanApplication(ctx context.Context, in application.CreateInput) (*application.LoanApplication, error) {
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
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			return err
		}
		return writeAudit(tx, audit.EntityApplication, app.ID, audit.ActionCreate,
			"Created loan application for "+app.LoanAmount.StringFixed(2))
	})
	if err != nil {
		return nil, fmt.Errorf("create loan application: %w", err)
	}
	return &app, nil
}

func (s *Store) UpdateLoanApplication(ctx context.Context, appID string, in application.UpdateInput) (*application.LoanApplication, error) {
	var app application.LoanApplication
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", appID).First(&app).Error; err != nil {
			return err
		}
		in.Apply(&app, nowUTC(), storage.DefaultUserID)
		if err := tx.Save(&app).Error; err != nil {
			return err
		}
		return writeAudit(tx, audit.EntityApplication, app.ID, audit.ActionUpdate,
			"Updated loan application, status: "+string(app.Status))
	})
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, storage.ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("update loan application: %w", err)
	}
	return &app, nil
}

func (s *Store) DeleteLoanApplication(ctx context.Context, appID string) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app application.LoanApplication
		if err := tx.Where("id = ?", appID).First(&app).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&application.LoanApplication{}, "id = ?", appID).Error; err != nil {
			return err
		}
		found = true
		return writeAudit(tx, audit.EntityApplication, app.ID, audit.ActionDelete,
			"Deleted loan application for "+app.LoanAmount.StringFixed(2))
	})
	if err != nil {
		return false, fmt.Errorf("delete loan application: %w", err)
	}
	return found, nil
}
