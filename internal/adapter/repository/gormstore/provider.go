package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/provider"
	"loandesk-backend/internal/domain/storage"
	"loandesk-backend/pkg/id"
)

func (s *Store) GetLoanProviders(ctx context.Context) ([]provider.LoanProvider, error) {
	var out []provider.LoanProvider
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("fetch loan providers: %w", err)
	}
	return out, nil
}

func (s *Store) GetLoanProvider(ctx context.Context, providerID string) (*provider.LoanProvider, error) {
	var out provider.LoanProvider
	err := s.db.WithContext(ctx).Where("id = ?", providerID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch loan provider: %w", err)
	}
	return &out, nil
}

func (s *Store) CreateLoanProvider(ctx context.Context, in provider.CreateInput) (*provider.LoanProvider, error) {
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
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		return writeAudit(tx, audit.EntityProvider, p.ID, audit.ActionCreate,
			"Created loan provider: "+p.Name)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, storage.ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("create loan provider: %w", err)
	}
	return &p, nil
}

func (s *Store) UpdateLoanProvider(ctx context.Context, providerID string, in provider.UpdateInput) (*provider.LoanProvider, error) {
	var p provider.LoanProvider
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", providerID).First(&p).Error; err != nil {
			return err
		}
		in.Apply(&p)
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		return writeAudit(tx, audit.EntityProvider, p.ID, audit.ActionUpdate,
			"Updated loan provider: "+p.Name)
	})
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, storage.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, storage.ErrDuplicateEmail
	case err != nil:
		return nil, fmt.Errorf("update loan provider: %w", err)
	}
	return &p, nil
}

func (s *Store) DeleteLoanProvider(ctx context.Context, providerID string) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p provider.LoanProvider
		if err := tx.Where("id = ?", providerID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&provider.LoanProvider{}, "id = ?", providerID).Error; err != nil {
			return err
		}
		found = true
		return writeAudit(tx, audit.EntityProvider, p.ID, audit.ActionDelete,
			"Deleted loan provider: "+p.Name)
	})
	if err != nil {
		return false, fmt.Errorf("delete loan provider: %w", err)
	}
	return found, nil
}
