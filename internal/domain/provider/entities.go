package provider

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

type LoanProvider struct {
	ID              string          `gorm:"primaryKey;size:32;column:id" json:"id"`
	Name            string          `gorm:"type:text;not null" json:"name"`
	Email           string          `gorm:"size:255;not null;uniqueIndex:ux_loan_providers_email" json:"email"`
	Phone           string          `gorm:"size:32;not null" json:"phone"`
	Address         string          `gorm:"type:text;not null" json:"address"`
	Website         *string         `gorm:"type:text" json:"website"`
	LicenseNumber   string          `gorm:"size:64;not null" json:"licenseNumber"`
	Status          Status          `gorm:"size:16;not null;default:'active'" json:"status"`
	InterestRateMin decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"interestRateMin"`
	InterestRateMax decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"interestRateMax"`
	MaxLoanAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"maxLoanAmount"`
	CreatedAt       time.Time       `gorm:"column:created_at;not null" json:"createdAt"`
}

func (LoanProvider) TableName() string { return "loan_providers" }

// CreateInput carries caller-supplied fields; id/createdAt are assigned by the
// store, Status falls back to active when empty.
type CreateInput struct {
	Name            string
	Email           string
	Phone           string
	Address         string
	Website         *string
	LicenseNumber   string
	Status          Status
	InterestRateMin decimal.Decimal
	InterestRateMax decimal.Decimal
	MaxLoanAmount   decimal.Decimal
}

// UpdateInput is a partial update: nil fields retain the prior value.
type UpdateInput struct {
	Name            *string
	Email           *string
	Phone           *string
	Address         *string
	Website         *string
	LicenseNumber   *string
	Status          *Status
	InterestRateMin *decimal.Decimal
	InterestRateMax *decimal.Decimal
	MaxLoanAmount   *decimal.Decimal
}

// Apply merges the supplied fields over p.
func (in UpdateInput) Apply(p *LoanProvider) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.Website != nil {
		p.Website = in.Website
	}
	if in.LicenseNumber != nil {
		p.LicenseNumber = *in.LicenseNumber
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.InterestRateMin != nil {
		p.InterestRateMin = *in.InterestRateMin
	}
	if in.InterestRateMax != nil {
		p.InterestRateMax = *in.InterestRateMax
	}
	if in.MaxLoanAmount != nil {
		p.MaxLoanAmount = *in.MaxLoanAmount
	}
}
