package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/storage"
)

// GetDashboardStats recomputes the aggregates from the application map on
// every call. totalValue is the exact decimal sum over approved rows only.
func (s *Store) GetDashboardStats(_ context.Context) (*storage.DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := storage.DashboardStats{TotalValue: decimal.Zero}
	for _, app := range s.applications {
		stats.TotalApplications++
		switch app.Status {
		case application.StatusApproved:
			stats.ApprovedLoans++
			stats.TotalValue = stats.TotalValue.Add(app.LoanAmount)
		case application.StatusPending, application.StatusUnderReview:
			stats.PendingReview++
		}
	}
	return &stats, nil
}
