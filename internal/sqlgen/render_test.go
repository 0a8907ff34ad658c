package sqlgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/careconnect-api/internal/generator"
	"github.com/jwalitptl/careconnect-api/internal/model"
)

func sampleDataset() *model.Dataset {
	start := time.Date(2026, time.November, 2, 9, 30, 0, 0, time.UTC)
	return &model.Dataset{
		Clinics: []model.Clinic{{
			Name:   "Georgetown Public Hospital",
			Status: model.ClinicStatusOpen,
			Address: model.Address{
				LotNumber: "12", StreetName: "Oak Avenue", Village: "Kitty", City: "Georgetown", RegionNumber: "4",
			},
		}},
		Specialties: []model.Specialty{{Name: "Obstetrics & Gynecology", Description: "Pregnancy and women's health."}},
		Providers: []model.Provider{{
			FirstName: "Shaquille", LastName: "O'Neal", Phone: "5926123456", Email: "shaquille.oneal42@careconnect.gy",
		}},
		Patients: []model.Patient{{
			FirstName:   "Ann",
			LastName:    `Back\slash`,
			DateOfBirth: time.Date(1990, time.March, 4, 0, 0, 0, 0, time.UTC),
			Sex:         model.SexFemale,
			Phone:       "5926000001",
			Email:       "ann.backslash7@patientmail.gy",
			Address: model.Address{
				LotNumber: "300", StreetName: "Main Street", Village: "Buxton", City: "Linden", RegionNumber: "10",
			},
		}},
		ProviderSpecialties: []model.ProviderSpecialty{{ProviderID: 1, SpecialtyID: 1}},
		Licenses: []model.License{{
			ProviderID: 1, IssueDate: time.Date(2025, time.January, 9, 0, 0, 0, 0, time.UTC), Status: model.LicenseStatusActive,
		}},
		Appointments: []model.Appointment{{
			PatientID: 1, ProviderID: 1, ClinicID: 1,
			StartTime: start, EndTime: start.Add(time.Hour),
			Status: model.AppointmentStatusScheduled, Reason: "Follow-up visit",
		}},
		Notes: []model.AppointmentNote{{
			AppointmentID: 1, AuthorProviderID: 1, Text: "Condition improving. Continue current regimen and monitor.",
		}},
	}
}

func TestRender_Format(t *testing.T) {
	want := strings.Join([]string{
		"-- Populate clinics",
		"INSERT INTO clinic (clinic_name,status,lot_number,street_name,village,city,region_number) VALUES ('Georgetown Public Hospital','open','12','Oak Avenue','Kitty','Georgetown','4');",
		"",
		"-- Populate specialties",
		"INSERT INTO specialty (specialty_name,specialty_description) VALUES ('Obstetrics & Gynecology','Pregnancy and women''s health.');",
		"",
		"-- Populate medical providers",
		"INSERT INTO medical_provider (first_name,last_name,phone,email) VALUES ('Shaquille','O''Neal','5926123456','shaquille.oneal42@careconnect.gy');",
		"",
		"-- Populate patients",
		`INSERT INTO patient (first_name,last_name,date_of_birth,sex,phone,email,lot_number,street_name,village,city,region_number) VALUES ('Ann','Back\\slash','1990-03-04','female','5926000001','ann.backslash7@patientmail.gy','300','Main Street','Buxton','Linden','10');`,
		"",
		"-- Populate provider_specialty",
		"INSERT INTO provider_specialty (provider_id,specialty_id) VALUES (1,1);",
		"",
		"-- Populate medical_license",
		"INSERT INTO medical_license (provider_id, issue_date, status) VALUES (1, '2025-01-09', 'active');",
		"",
		"-- Populate appointments",
		"INSERT INTO appointment (patient_id,provider_id,clinic_id,start_datetime,end_datetime,status,reason) VALUES (1,1,1,'2026-11-02 09:30:00','2026-11-02 10:30:00','scheduled','Follow-up visit');",
		"",
		"-- Populate appointment notes",
		"INSERT INTO appointment_note (appointment_id, author_provider_id, note_text) VALUES (1,1,'Condition improving. Continue current regimen and monitor.');",
	}, "\n") + "\n"

	assert.Equal(t, want, string(Render(sampleDataset())))
}

func TestRender_EmptyDataset(t *testing.T) {
	out := string(Render(&model.Dataset{}))

	assert.True(t, strings.HasPrefix(out, "-- Populate clinics\n\n-- Populate specialties\n"))
	assert.True(t, strings.HasSuffix(out, "-- Populate appointment notes\n"))
	assert.NotContains(t, out, "INSERT")
}

func TestRender_GeneratedDatasetIsDeterministic(t *testing.T) {
	now := time.Date(2026, time.October, 17, 8, 0, 0, 0, time.UTC)
	gen := func() []byte {
		ds, err := generator.New(
			generator.Options{Seed: 2102, Patients: 10, Providers: 5, Appointments: 20},
			generator.WithClock(func() time.Time { return now }),
		).Generate()
		require.NoError(t, err)
		return Render(ds)
	}

	first := gen()
	assert.Equal(t, first, gen())
	assert.Equal(t, 20, strings.Count(string(first), "INSERT INTO appointment ("))
	assert.Equal(t, 5, strings.Count(string(first), "INSERT INTO medical_license "))
}

func TestRender_SectionOrder(t *testing.T) {
	out := string(Render(sampleDataset()))

	order := []string{
		"INSERT INTO clinic ", "INSERT INTO specialty ", "INSERT INTO medical_provider ",
		"INSERT INTO patient ", "INSERT INTO provider_specialty ", "INSERT INTO medical_license ",
		"INSERT INTO appointment ", "INSERT INTO appointment_note ",
	}
	last := -1
	for _, prefix := range order {
		idx := strings.Index(out, prefix)
		require.NotEqual(t, -1, idx, prefix)
		assert.Greater(t, idx, last, prefix)
		last = idx
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "careconnect_data.sql")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	n, err := WriteFile(path, sampleDataset())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render(sampleDataset()), data)
	assert.Equal(t, len(data), n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "careconnect_data.sql")

	_, err := WriteFile(path, sampleDataset())
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
