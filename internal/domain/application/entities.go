package application

import (
	"time"

	"github.com/shopspring/decimal"

	"loandesk-backend/internal/domain/applicant"
	"loandesk-backend/internal/domain/provider"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

type LoanApplication struct {
	ID           string           `gorm:"primaryKey;size:32;column:id" json:"id"`
	ApplicantID  string           `gorm:"size:32;not null;index:idx_loan_applications_applicant" json:"applicantId"`
	ProviderID   string           `gorm:"size:32;not null;index:idx_loan_applications_provider" json:"providerId"`
	LoanAmount   decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"loanAmount"`
	LoanPurpose  string           `gorm:"type:text;not null" json:"loanPurpose"`
	LoanTerm     int              `gorm:"not null" json:"loanTerm"` // months
	InterestRate *decimal.Decimal `gorm:"type:decimal(5,2)" json:"interestRate"`
	Status       Status           `gorm:"size:16;not null;default:'pending'" json:"status"`
	Notes        *string          `gorm:"type:text" json:"notes"`
	SubmittedAt  time.Time        `gorm:"column:submitted_at;not null" json:"submittedAt"`
	ReviewedAt   *time.Time       `gorm:"column:reviewed_at" json:"reviewedAt"`
	ReviewedBy   *string          `gorm:"size:64" json:"reviewedBy"`
}

func (LoanApplication) TableName() string { return "loan_applications" }

// WithDetails is the enriched read shape: the raw application plus the
// referenced applicant and provider records resolved in full.
type WithDetails struct {
	LoanApplication
	Applicant applicant.Applicant   `gorm:"-" json:"applicant"`
	Provider  provider.LoanProvider `gorm:"-" json:"provider"`
}

type CreateInput struct {
	ApplicantID  string
	ProviderID   string
	LoanAmount   decimal.Decimal
	LoanPurpose  string
	LoanTerm     int
	InterestRate *decimal.Decimal
	Status       Status
	Notes        *string
}

// UpdateInput is a partial update: nil fields retain the prior value.
type UpdateInput struct {
	ApplicantID  *string
	ProviderID   *string
	LoanAmount   *decimal.Decimal
	LoanPurpose  *string
	LoanTerm     *int
	InterestRate *decimal.Decimal
	Status       *Status
	Notes        *string
}

// Apply merges the supplied fields over a. A status value different from the
// current one marks the application reviewed: ReviewedAt=now and
// ReviewedBy=reviewer are set in the same merged record. An update carrying
// the unchanged status leaves both review fields alone.
func (in UpdateInput) Apply(a *LoanApplication, now time.Time, reviewer string) {
	if in.ApplicantID != nil {
		a.ApplicantID = *in.ApplicantID
	}
	if in.ProviderID != nil {
		a.ProviderID = *in.ProviderID
	}
	if in.LoanAmount != nil {
		a.LoanAmount = *in.LoanAmount
	}
	if in.LoanPurpose != nil {
		a.LoanPurpose = *in.LoanPurpose
	}
	if in.LoanTerm != nil {
		a.LoanTerm = *in.LoanTerm
	}
	if in.InterestRate != nil {
		a.InterestRate = in.InterestRate
	}
	if in.Notes != nil {
		a.Notes = in.Notes
	}
	if in.Status != nil && *in.Status != a.Status {
		a.Status = *in.Status
		a.ReviewedAt = &now
		a.ReviewedBy = &reviewer
	}
}
