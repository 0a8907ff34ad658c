package model

import "time"

// Dataset is a complete, referentially consistent set of careconnect rows.
// Row identifiers are implicit: the 1-based position of a row in its slice.
type Dataset struct {
	GeneratedAt         time.Time
	Clinics             []Clinic
	Specialties         []Specialty
	Providers           []Provider
	Patients            []Patient
	ProviderSpecialties []ProviderSpecialty
	Licenses            []License
	Appointments        []Appointment
	Notes               []AppointmentNote
}
