package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"loandesk-backend/internal/domain/applicant"
	"loandesk-backend/internal/domain/audit"
	"loandesk-backend/internal/domain/storage"
	"loandesk-backend/pkg/id"
)

func (s *Store) GetApplicants(ctx context.Context) ([]applicant.Applicant, error) {
	var out []applicant.Applicant
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("fetch applicants: %w", err)
	}
	return out, nil
}

func (s *Store) GetApplicant(ctx context.Context, applicantID string) (*applicant.Applicant, error) {
	var out applicant.Applicant
	err := s.db.WithContext(ctx).Where("id = ?", applicantID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch applicant: %w", err)
	}
	return &out, nil
}

func (s *Store) CreateApplicant(ctx context.Context, in applicant.CreateInput) (*applicant.Applicant, error) {
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
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		return writeAudit(tx, audit.EntityApplicant, a.ID, audit.ActionCreate,
			"Created applicant: "+a.FullName())
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, storage.ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("create applicant: %w", err)
	}
	return &a, nil
}

func (s *Store) UpdateApplicant(ctx context.Context, applicantID string, in applicant.UpdateInput) (*applicant.Applicant, error) {
	if in.SSN != nil {
		masked := id.MaskSSN(*in.SSN)
		in.SSN = &masked
	}
	var a applicant.Applicant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", applicantID).First(&a).Error; err != nil {
			return err
		}
		in.Apply(&a)
		if err := tx.Save(&a).Error; err != nil {
			return err
		}
		return writeAudit(tx, audit.EntityApplicant, a.ID, audit.ActionUpdate,
			"Updated applicant: "+a.FullName())
	})
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, storage.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, storage.ErrDuplicateEmail
	case err != nil:
		return nil, fmt.Errorf("update applicant: %w", err)
	}
	return &a, nil
}

func (s *Store) DeleteApplicant(ctx context.Context, applicantID string) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a applicant.Applicant
		if err := tx.Where("id = ?", applicantID).First(&a).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&applicant.Applicant{}, "id = ?", applicantID).Error; err != nil {
			return err
		}
		found = true
		return writeAudit(tx, audit.EntityApplicant, a.ID, audit.ActionDelete,
			"Deleted applicant: "+a.FullName())
	})
	if err != nil {
		return false, fmt.Errorf("delete applicant: %w", err)
	}
	return found, nil
}
