package model

import "time"

type LicenseStatus string

const (
	LicenseStatusActive  LicenseStatus = "active"
	LicenseStatusExpired LicenseStatus = "expired"
)

// Provider is a row of medical_provider
type Provider struct {
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Phone     string `db:"phone" json:"phone"`
	Email     string `db:"email" json:"email"`
}

// ProviderSpecialty links a provider to one of its specialties
type ProviderSpecialty struct {
	ProviderID  int `db:"provider_id" json:"provider_id"`
	SpecialtyID int `db:"specialty_id" json:"specialty_id"`
}

// License is a row of medical_license
type License struct {
	ProviderID int           `db:"provider_id" json:"provider_id"`
	IssueDate  time.Time     `db:"issue_date" json:"issue_date"`
	Status     LicenseStatus `db:"status" json:"status"`
}
