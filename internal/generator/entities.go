package generator

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jwalitptl/careconnect-api/internal/model"
)

const (
	clinicMaxLot       = 200
	patientMaxLot      = 300
	regionCount        = 10
	patientMaxAgeYears = 90
	maxSpecialties     = 3
	emailSuffixMax     = 999999

	activeLicenseMinDays  = 30
	activeLicenseMaxDays  = 500
	expiredLicenseMinDays = 400
	expiredLicenseMaxDays = 900
	expiredLicenseRate    = 0.25
)

func generateClinics(r *Rand) []model.Clinic {
	clinics := make([]model.Clinic, 0, len(clinicNames))
	for _, name := range clinicNames {
		status := model.ClinicStatus(r.Pick(clinicStatuses))
		clinics = append(clinics, model.Clinic{
			Name:    name,
			Status:  status,
			Address: generateAddress(r, clinicMaxLot),
		})
	}
	return clinics
}

func generateSpecialties() []model.Specialty {
	specialties := make([]model.Specialty, len(specialtyCatalog))
	copy(specialties, specialtyCatalog)
	return specialties
}

func generateProviders(r *Rand, n int) []model.Provider {
	providers := make([]model.Provider, 0, n)
	for i := 0; i < n; i++ {
		first := r.FirstName()
		last := r.LastName()
		phone := phoneNumber(r)
		email := emailAddress(r, first, last, providerEmailDomain)
		providers = append(providers, model.Provider{
			FirstName: first,
			LastName:  last,
			Phone:     phone,
			Email:     email,
		})
	}
	return providers
}

func generatePatients(r *Rand, n int, now time.Time) []model.Patient {
	today := midnight(now)
	oldest := today.AddDate(-patientMaxAgeYears, 0, 0)
	ageRange := int(today.Sub(oldest).Hours() / 24)

	patients := make([]model.Patient, 0, n)
	for i := 0; i < n; i++ {
		first := r.FirstName()
		last := r.LastName()
		dob := today.AddDate(0, 0, -r.IntRange(0, ageRange))
		sex := model.Sex(r.Pick(sexes))
		phone := phoneNumber(r)
		email := emailAddress(r, first, last, patientEmailDomain)
		patients = append(patients, model.Patient{
			FirstName:   first,
			LastName:    last,
			DateOfBirth: dob,
			Sex:         sex,
			Phone:       phone,
			Email:       email,
			Address:     generateAddress(r, patientMaxLot),
		})
	}
	return patients
}

// generateProviderSpecialties gives every provider 1 to 3 distinct
// specialties. Pairs are returned ordered by provider then specialty.
func generateProviderSpecialties(r *Rand, providers, specialties int) []model.ProviderSpecialty {
	if specialties == 0 {
		return []model.ProviderSpecialty{}
	}
	seen := make(map[model.ProviderSpecialty]struct{}, providers*2)
	for providerID := 1; providerID <= providers; providerID++ {
		k := r.IntRange(1, maxSpecialties)
		for _, specialtyID := range r.Sample(specialties, k) {
			seen[model.ProviderSpecialty{ProviderID: providerID, SpecialtyID: specialtyID}] = struct{}{}
		}
	}

	pairs := make([]model.ProviderSpecialty, 0, len(seen))
	for p := range seen {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].ProviderID != pairs[j].ProviderID {
			return pairs[i].ProviderID < pairs[j].ProviderID
		}
		return pairs[i].SpecialtyID < pairs[j].SpecialtyID
	})
	return pairs
}

func generateLicenses(r *Rand, providers int, now time.Time) []model.License {
	today := midnight(now)
	licenses := make([]model.License, 0, providers)
	for providerID := 1; providerID <= providers; providerID++ {
		issued := today.AddDate(0, 0, -r.IntRange(activeLicenseMinDays, activeLicenseMaxDays))
		status := model.LicenseStatusActive
		if r.Chance(expiredLicenseRate) {
			issued = today.AddDate(0, 0, -r.IntRange(expiredLicenseMinDays, expiredLicenseMaxDays))
			status = model.LicenseStatusExpired
		}
		licenses = append(licenses, model.License{
			ProviderID: providerID,
			IssueDate:  issued,
			Status:     status,
		})
	}
	return licenses
}

func generateAddress(r *Rand, maxLot int) model.Address {
	lot := strconv.Itoa(r.IntRange(1, maxLot))
	street := r.StreetName()
	village := r.Pick(villages)
	city := r.Pick(cities)
	return model.Address{
		LotNumber:    lot,
		StreetName:   street,
		Village:      village,
		City:         city,
		RegionNumber: strconv.Itoa(r.IntRange(1, regionCount)),
	}
}

func phoneNumber(r *Rand) string {
	return phonePrefix + r.Digits(phoneDigits)
}

// emailAddress appends a random suffix to first.last. Collisions are unlikely
// but possible.
func emailAddress(r *Rand, first, last, domain string) string {
	base := strings.ToLower(first + "." + last)
	base = strings.NewReplacer("'", "", " ", "").Replace(base)
	return base + strconv.Itoa(r.IntRange(1, emailSuffixMax)) + "@" + domain
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
