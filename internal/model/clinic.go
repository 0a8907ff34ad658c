package model

type ClinicStatus string

const (
	ClinicStatusOpen       ClinicStatus = "open"
	ClinicStatusRenovation ClinicStatus = "renovation"
)

type Clinic struct {
	Name   string       `db:"clinic_name" json:"clinic_name"`
	Status ClinicStatus `db:"status" json:"status"`
	Address
}

type Specialty struct {
	Name        string `db:"specialty_name" json:"specialty_name"`
	Description string `db:"specialty_description" json:"specialty_description"`
}
