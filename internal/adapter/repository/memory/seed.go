package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"loandesk-backend/internal/domain/applicant"
	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/provider"
	"loandesk-backend/pkg/id"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// seed loads a small set of sample rows so the development backend has data
// to render on first boot. Seed rows are fixtures, not user actions, so they
// do not enter the audit trail.
func (s *Store) seed() {
	base := nowUTC().Add(-72 * time.Hour)

	p1 := provider.LoanProvider{
		ID:              id.NewID32(),
		Name:            "Summit Capital Lending",
		Email:           "contact@summitcapital.example",
		Phone:           "555-0142",
		Address:         "410 Market St, Denver, CO",
		Website:         strPtr("https://summitcapital.example"),
		LicenseNumber:   "LC-88231",
		Status:          provider.StatusActive,
		InterestRateMin: decimal.RequireFromString("4.25"),
		InterestRateMax: decimal.RequireFromString("11.50"),
		MaxLoanAmount:   decimal.RequireFromString("500000.00"),
		CreatedAt:       base,
	}
	p2 := provider.LoanProvider{
		ID:              id.NewID32(),
		Name:            "Harborline Finance",
		Email:           "info@harborline.example",
		Phone:           "555-0187",
		Address:         "22 Pier Ave, Portland, ME",
		LicenseNumber:   "LC-90417",
		Status:          provider.StatusActive,
		InterestRateMin: decimal.RequireFromString("5.00"),
		InterestRateMax: decimal.RequireFromString("13.75"),
		MaxLoanAmount:   decimal.RequireFromString("250000.00"),
		CreatedAt:       base.Add(1 * time.Hour),
	}
	s.providers[p1.ID] = p1
	s.providers[p2.ID] = p2

	a1 := applicant.Applicant{
		ID:               id.NewID32(),
		FirstName:        "Maria",
		LastName:         "Santos",
		Email:            "maria.santos@example.com",
		Phone:            "555-0230",
		Address:          "18 Alder Ln, Austin, TX",
		DateOfBirth:      "1988-06-14",
		SSN:              "***-**-6789",
		EmploymentStatus: applicant.Employed,
		AnnualIncome:     decimal.RequireFromString("84000.00"),
		CreditScore:      intPtr(742),
		CreatedAt:        base.Add(2 * time.Hour),
	}
	a2 := applicant.Applicant{
		ID:               id.NewID32(),
		FirstName:        "Devon",
		LastName:         "Clarke",
		Email:            "devon.clarke@example.com",
		Phone:            "555-0265",
		Address:          "93 Birch Rd, Columbus, OH",
		DateOfBirth:      "1979-11-02",
		SSN:              "***-**-1204",
		EmploymentStatus: applicant.SelfEmployed,
		AnnualIncome:     decimal.RequireFromString("112500.00"),
		CreatedAt:        base.Add(3 * time.Hour),
	}
	s.applicants[a1.ID] = a1
	s.applicants[a2.ID] = a2

	reviewedAt := base.Add(30 * time.Hour)
	reviewer := "admin"
	apps := []application.LoanApplication{
		{
			ID:          id.NewID32(),
			ApplicantID: a1.ID,
			ProviderID:  p1.ID,
			LoanAmount:  decimal.RequireFromString("25000.00"),
			LoanPurpose: "Home renovation",
			LoanTerm:    36,
			Status:      application.StatusApproved,
			SubmittedAt: base.Add(4 * time.Hour),
			ReviewedAt:  &reviewedAt,
			ReviewedBy:  &reviewer,
		},
		{
			ID:          id.NewID32(),
			ApplicantID: a2.ID,
			ProviderID:  p2.ID,
			LoanAmount:  decimal.RequireFromString("60000.00"),
			LoanPurpose: "Business equipment",
			LoanTerm:    48,
			Status:      application.StatusUnderReview,
			Notes:       strPtr("Waiting on income verification"),
			SubmittedAt: base.Add(5 * time.Hour),
		},
		{
			ID:          id.NewID32(),
			ApplicantID: a1.ID,
			ProviderID:  p2.ID,
			LoanAmount:  decimal.RequireFromString("12000.00"),
			LoanPurpose: "Auto purchase",
			LoanTerm:    24,
			Status:      application.StatusPending,
			SubmittedAt: base.Add(6 * time.Hour),
		},
	}
	for _, app := range apps {
		s.applications[app.ID] = app
	}
}
