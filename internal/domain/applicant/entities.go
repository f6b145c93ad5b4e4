package applicant

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	Employed     EmploymentStatus = "employed"
	Unemployed   EmploymentStatus = "unemployed"
	SelfEmployed EmploymentStatus = "self-employed"
	Retired      EmploymentStatus = "retired"
)

// SSN is stored masked (last four digits only); the full number never touches
// the database.
type Applicant struct {
	ID               string           `gorm:"primaryKey;size:32;column:id" json:"id"`
	FirstName        string           `gorm:"size:128;not null" json:"firstName"`
	LastName         string           `gorm:"size:128;not null" json:"lastName"`
	Email            string           `gorm:"size:255;not null;uniqueIndex:ux_applicants_email" json:"email"`
	Phone            string           `gorm:"size:32;not null" json:"phone"`
	Address          string           `gorm:"type:text;not null" json:"address"`
	DateOfBirth      string           `gorm:"size:16;not null" json:"dateOfBirth"`
	SSN              string           `gorm:"column:ssn;size:16;not null" json:"ssn"`
	EmploymentStatus EmploymentStatus `gorm:"size:16;not null" json:"employmentStatus"`
	AnnualIncome     decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"annualIncome"`
	CreditScore      *int             `gorm:"column:credit_score" json:"creditScore"`
	CreatedAt        time.Time        `gorm:"column:created_at;not null" json:"createdAt"`
}

func (Applicant) TableName() string { return "applicants" }

type CreateInput struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	DateOfBirth      string
	SSN              string
	EmploymentStatus EmploymentStatus
	AnnualIncome     decimal.Decimal
	CreditScore      *int
}

// UpdateInput is a partial update: nil fields retain the prior value.
type UpdateInput struct {
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	Address          *string
	DateOfBirth      *string
	SSN              *string
	EmploymentStatus *EmploymentStatus
	AnnualIncome     *decimal.Decimal
	CreditScore      *int
}

// Apply merges the supplied fields over a. SSN arrives pre-masked from the
// store.
func (in UpdateInput) Apply(a *Applicant) {
	if in.FirstName != nil {
		a.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		a.LastName = *in.LastName
	}
	if in.Email != nil {
		a.Email = *in.Email
	}
	if in.Phone != nil {
		a.Phone = *in.Phone
	}
	if in.Address != nil {
		a.Address = *in.Address
	}
	if in.DateOfBirth != nil {
		a.DateOfBirth = *in.DateOfBirth
	}
	if in.SSN != nil {
		a.SSN = *in.SSN
	}
	if in.EmploymentStatus != nil {
		a.EmploymentStatus = *in.EmploymentStatus
	}
	if in.AnnualIncome != nil {
		a.AnnualIncome = *in.AnnualIncome
	}
	if in.CreditScore != nil {
		a.CreditScore = in.CreditScore
	}
}

// FullName is used for audit trail details.
func (a *Applicant) FullName() string { return a.FirstName + " " + a.LastName }
