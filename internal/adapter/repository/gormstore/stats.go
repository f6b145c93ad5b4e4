package gormstore

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/storage"
)

// GetDashboardStats recomputes the aggregates from the applications table on
// every call. The amounts are summed in Go as decimals: a SQL SUM over a
// decimal column runs in floating point on sqlite (NUMERIC affinity), which
// drifts on cent values.
func (s *Store) GetDashboardStats(ctx context.Context) (*storage.DashboardStats, error) {
	db := s.db.WithContext(ctx)

	var total, approved, pending int64
	if err := db.Model(&application.LoanApplication{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	if err := db.Model(&application.LoanApplication{}).
		Where("status = ?", application.StatusApproved).
		Count(&approved).Error; err != nil {
		return nil, fmt.Errorf("count approved applications: %w", err)
	}
	if err := db.Model(&application.LoanApplication{}).
		Where("status IN ?", []application.Status{application.StatusPending, application.StatusUnderReview}).
		Count(&pending).Error; err != nil {
		return nil, fmt.Errorf("count pending applications: %w", err)
	}

	var amounts []decimal.Decimal
	if err := db.Model(&application.LoanApplication{}).
		Where("status = ?", application.StatusApproved).
		Pluck("loan_amount", &amounts).Error; err != nil {
		return nil, fmt.Errorf("fetch approved loan amounts: %w", err)
	}
	totalValue := decimal.Zero
	for _, a := range amounts {
		totalValue = totalValue.Add(a)
	}

	return &storage.DashboardStats{
		TotalApplications: total,
		ApprovedLoans:     approved,
		PendingReview:     pending,
		TotalValue:        totalValue,
	}, nil
}
