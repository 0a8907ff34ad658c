package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/careconnect-api/internal/model"
)

var fixedNow = time.Date(2026, time.October, 17, 10, 15, 42, 0, time.UTC)

func generate(t *testing.T, opts Options) *model.Dataset {
	t.Helper()
	ds, err := New(opts, WithClock(func() time.Time { return fixedNow })).Generate()
	require.NoError(t, err)
	return ds
}

func TestGenerate_Example(t *testing.T) {
	ds := generate(t, Options{Seed: 2102, Patients: 10, Providers: 5, Appointments: 20})

	assert.Len(t, ds.Clinics, 6)
	assert.Len(t, ds.Specialties, 8)
	assert.Len(t, ds.Providers, 5)
	assert.Len(t, ds.Patients, 10)
	assert.Len(t, ds.Licenses, 5)
	require.Len(t, ds.Appointments, 20)

	type providerSlot struct {
		provider int
		start    time.Time
	}
	seen := make(map[providerSlot]bool)
	for _, a := range ds.Appointments {
		assert.GreaterOrEqual(t, a.ProviderID, 1)
		assert.LessOrEqual(t, a.ProviderID, 5)
		assert.GreaterOrEqual(t, a.PatientID, 1)
		assert.LessOrEqual(t, a.PatientID, 10)
		key := providerSlot{a.ProviderID, a.StartTime}
		assert.False(t, seen[key], "duplicate provider slot %v", key)
		seen[key] = true
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := Options{Seed: 7, Patients: 40, Providers: 12, Appointments: 150}

	first := generate(t, opts)
	second := generate(t, opts)
	assert.Equal(t, first, second)

	opts.Seed = 8
	other := generate(t, opts)
	assert.NotEqual(t, first.Providers, other.Providers)
}

func TestGenerate_ReferentialIntegrity(t *testing.T) {
	ds := generate(t, Options{Seed: 2102, Patients: 50, Providers: 20, Appointments: 300})

	for _, ps := range ds.ProviderSpecialties {
		assert.True(t, ps.ProviderID >= 1 && ps.ProviderID <= len(ds.Providers))
		assert.True(t, ps.SpecialtyID >= 1 && ps.SpecialtyID <= len(ds.Specialties))
	}
	for i, l := range ds.Licenses {
		assert.Equal(t, i+1, l.ProviderID)
	}
	for _, a := range ds.Appointments {
		assert.True(t, a.PatientID >= 1 && a.PatientID <= len(ds.Patients))
		assert.True(t, a.ProviderID >= 1 && a.ProviderID <= len(ds.Providers))
		assert.True(t, a.ClinicID >= 1 && a.ClinicID <= len(ds.Clinics))
	}
	for _, n := range ds.Notes {
		require.True(t, n.AppointmentID >= 1 && n.AppointmentID <= len(ds.Appointments))
		assert.Equal(t, ds.Appointments[n.AppointmentID-1].ProviderID, n.AuthorProviderID)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	ds := generate(t, Options{Seed: 99, Patients: 30, Providers: 10, Appointments: 1000})

	type slot struct {
		id    int
		start int64
	}
	providerSlots := make(map[slot]bool)
	patientSlots := make(map[slot]bool)
	for _, a := range ds.Appointments {
		p := slot{a.ProviderID, a.StartTime.Unix()}
		q := slot{a.PatientID, a.StartTime.Unix()}
		assert.False(t, providerSlots[p], "provider double booked: %+v", a)
		assert.False(t, patientSlots[q], "patient double booked: %+v", a)
		providerSlots[p] = true
		patientSlots[q] = true
	}

	pairs := make(map[model.ProviderSpecialty]bool)
	perProvider := make(map[int]int)
	for _, ps := range ds.ProviderSpecialties {
		assert.False(t, pairs[ps], "duplicate provider specialty %+v", ps)
		pairs[ps] = true
		perProvider[ps.ProviderID]++
	}
	assert.Len(t, perProvider, 10)
	for id, n := range perProvider {
		assert.True(t, n >= 1 && n <= 3, "provider %d has %d specialties", id, n)
	}
}

func TestGenerate_ProviderSpecialtiesSorted(t *testing.T) {
	ds := generate(t, Options{Seed: 3, Patients: 1, Providers: 25})

	for i := 1; i < len(ds.ProviderSpecialties); i++ {
		prev, cur := ds.ProviderSpecialties[i-1], ds.ProviderSpecialties[i]
		assert.True(t, prev.ProviderID < cur.ProviderID ||
			(prev.ProviderID == cur.ProviderID && prev.SpecialtyID < cur.SpecialtyID))
	}
}

func TestGenerate_AppointmentSchedule(t *testing.T) {
	ds := generate(t, Options{Seed: 2102, Patients: 100, Providers: 30, Appointments: 2000})

	earliest := time.Date(2026, time.June, 19, 0, 0, 0, 0, time.UTC)
	latest := time.Date(2026, time.December, 16, 23, 59, 59, 0, time.UTC)
	hours := map[int]bool{8: true, 9: true, 10: true, 11: true, 13: true, 14: true, 15: true, 16: true}

	for _, a := range ds.Appointments {
		assert.True(t, hours[a.StartTime.Hour()], "start hour %d", a.StartTime.Hour())
		assert.Contains(t, []int{0, 30}, a.StartTime.Minute())
		assert.Zero(t, a.StartTime.Second())
		assert.False(t, a.StartTime.Before(earliest), "start %v too early", a.StartTime)
		assert.False(t, a.StartTime.After(latest), "start %v too late", a.StartTime)

		d := a.EndTime.Sub(a.StartTime)
		assert.True(t, d == 30*time.Minute || d == 60*time.Minute, "duration %v", d)
		assert.Contains(t, appointmentReasons, a.Reason)

		if a.StartTime.After(fixedNow) {
			assert.Contains(t,
				[]model.AppointmentStatus{model.AppointmentStatusScheduled, model.AppointmentStatusCancelled},
				a.Status, "future appointment %+v", a)
		}
	}
}

func TestGenerate_NotesOnlyForCompleted(t *testing.T) {
	ds := generate(t, Options{Seed: 2102, Patients: 100, Providers: 30, Appointments: 2000})

	require.NotEmpty(t, ds.Notes)
	perAppointment := make(map[int]int)
	for _, n := range ds.Notes {
		appt := ds.Appointments[n.AppointmentID-1]
		assert.Equal(t, model.AppointmentStatusCompleted, appt.Status)
		assert.Contains(t, notePhrases, n.Text)
		perAppointment[n.AppointmentID]++
	}
	for id, n := range perAppointment {
		assert.True(t, n == 1 || n == 2, "appointment %d has %d notes", id, n)
	}
}

func TestGenerate_EntityFields(t *testing.T) {
	ds := generate(t, Options{Seed: 11, Patients: 200, Providers: 50})

	for _, c := range ds.Clinics {
		assert.Contains(t, []model.ClinicStatus{model.ClinicStatusOpen, model.ClinicStatusRenovation}, c.Status)
		assert.Contains(t, cities, c.City)
		assert.Contains(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, c.RegionNumber)
	}
	for _, p := range ds.Providers {
		assert.Regexp(t, `^5926[0-9]{6}$`, p.Phone)
		assert.Regexp(t, `^[^@\s]+[0-9]{1,6}@careconnect\.gy$`, p.Email)
	}

	oldest := fixedNow.AddDate(-90, 0, -1)
	for _, p := range ds.Patients {
		assert.Regexp(t, `@patientmail\.gy$`, p.Email)
		assert.False(t, p.DateOfBirth.After(fixedNow))
		assert.True(t, p.DateOfBirth.After(oldest))
		assert.Contains(t, sexes, string(p.Sex))
	}

	for _, l := range ds.Licenses {
		age := int(midnight(fixedNow).Sub(l.IssueDate).Hours() / 24)
		switch l.Status {
		case model.LicenseStatusActive:
			assert.True(t, age >= 30 && age <= 500, "active license issued %d days ago", age)
		case model.LicenseStatusExpired:
			assert.True(t, age >= 400 && age <= 900, "expired license issued %d days ago", age)
		default:
			t.Fatalf("unexpected license status %q", l.Status)
		}
	}
}

func TestGenerate_BudgetExhausted(t *testing.T) {
	// one provider has 181 days * 16 slots = 2896 distinct start times
	_, err := New(
		Options{Seed: 1, Patients: 1, Providers: 1, Appointments: 3000},
		WithClock(func() time.Time { return fixedNow }),
	).Generate()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAttemptBudgetExhausted))

	var budgetErr *BudgetExhaustedError
	require.True(t, errors.As(err, &budgetErr))
	assert.Equal(t, 3000, budgetErr.Requested)
	assert.Less(t, budgetErr.Generated, 3000)
	assert.LessOrEqual(t, budgetErr.Generated, 2896)
	assert.Equal(t, 60000, budgetErr.Attempts)
	assert.Contains(t, err.Error(), "out of 3000")
}

func TestGenerate_ZeroCounts(t *testing.T) {
	t.Run("everything zero", func(t *testing.T) {
		ds := generate(t, Options{Seed: 2102})
		assert.Len(t, ds.Clinics, 6)
		assert.Empty(t, ds.Providers)
		assert.Empty(t, ds.Patients)
		assert.Empty(t, ds.ProviderSpecialties)
		assert.Empty(t, ds.Licenses)
		assert.Empty(t, ds.Appointments)
		assert.Empty(t, ds.Notes)
	})

	t.Run("no providers with appointments requested", func(t *testing.T) {
		_, err := New(
			Options{Seed: 2102, Patients: 10, Appointments: 5},
			WithClock(func() time.Time { return fixedNow }),
		).Generate()
		assert.ErrorIs(t, err, ErrAttemptBudgetExhausted)
	})

	t.Run("no patients with appointments requested", func(t *testing.T) {
		_, err := New(
			Options{Seed: 2102, Providers: 10, Appointments: 5},
			WithClock(func() time.Time { return fixedNow }),
		).Generate()
		assert.ErrorIs(t, err, ErrAttemptBudgetExhausted)
	})
}

func TestGenerate_NegativeCount(t *testing.T) {
	_, err := New(Options{Patients: -1}).Generate()
	assert.Error(t, err)
}
