package generator

import (
	"time"

	"github.com/jwalitptl/careconnect-api/internal/model"
)

const (
	// attemptsPerAppointment bounds the rejection loop: a run may spend at
	// most this many draws per requested appointment.
	attemptsPerAppointment = 20

	minDayOffset = -120
	maxDayOffset = 60

	noteRate     = 0.55
	maxNotesEach = 2
)

type slotKey struct {
	id    int
	start int64
}

// slotTracker remembers which (provider, start) and (patient, start) pairs
// are already booked.
type slotTracker struct {
	providers map[slotKey]struct{}
	patients  map[slotKey]struct{}
}

func newSlotTracker(capacity int) *slotTracker {
	return &slotTracker{
		providers: make(map[slotKey]struct{}, capacity),
		patients:  make(map[slotKey]struct{}, capacity),
	}
}

func (s *slotTracker) taken(providerID, patientID int, start time.Time) bool {
	unix := start.Unix()
	if _, ok := s.providers[slotKey{providerID, unix}]; ok {
		return true
	}
	_, ok := s.patients[slotKey{patientID, unix}]
	return ok
}

func (s *slotTracker) book(providerID, patientID int, start time.Time) {
	unix := start.Unix()
	s.providers[slotKey{providerID, unix}] = struct{}{}
	s.patients[slotKey{patientID, unix}] = struct{}{}
}

// generateAppointments draws appointments until target is reached, rejecting
// draws that would double book a provider or a patient. It gives up with a
// *BudgetExhaustedError after target*attemptsPerAppointment draws.
func generateAppointments(r *Rand, now time.Time, target, patients, providers, clinics int) ([]model.Appointment, error) {
	appts := make([]model.Appointment, 0, target)
	if target == 0 {
		return appts, nil
	}
	maxAttempts := target * attemptsPerAppointment
	if patients == 0 || providers == 0 || clinics == 0 {
		return nil, &BudgetExhaustedError{Requested: target, Attempts: maxAttempts}
	}

	slots := newSlotTracker(target)
	attempts := 0
	for len(appts) < target && attempts < maxAttempts {
		attempts++

		patientID := r.IntRange(1, patients)
		providerID := r.IntRange(1, providers)
		clinicID := r.IntRange(1, clinics)
		start := pickTimeslot(r, now)

		if slots.taken(providerID, patientID, start) {
			continue
		}

		end := start.Add(time.Duration(r.PickInt(appointmentDurations)) * time.Minute)

		status := Weighted(r, pastStatuses, pastStatusWeights)
		if start.After(now) {
			status = Weighted(r, futureStatuses, futureStatusWeights)
		}

		appts = append(appts, model.Appointment{
			PatientID:  patientID,
			ProviderID: providerID,
			ClinicID:   clinicID,
			StartTime:  start,
			EndTime:    end,
			Status:     status,
			Reason:     r.Pick(appointmentReasons),
		})
		slots.book(providerID, patientID, start)
	}

	if len(appts) < target {
		return nil, &BudgetExhaustedError{
			Generated: len(appts),
			Requested: target,
			Attempts:  attempts,
		}
	}
	return appts, nil
}

// pickTimeslot returns a half-hour slot within working hours on a day between
// minDayOffset and maxDayOffset days from now.
func pickTimeslot(r *Rand, now time.Time) time.Time {
	offset := r.IntRange(minDayOffset, maxDayOffset)
	hour := r.PickInt(workingHours)
	minute := r.PickInt(slotMinutes)
	y, m, d := now.Date()
	return time.Date(y, m, d+offset, hour, minute, 0, 0, now.Location())
}

// generateNotes attaches one or two notes to some of the completed
// appointments. Notes are authored by the appointment's provider.
func generateNotes(r *Rand, appts []model.Appointment) []model.AppointmentNote {
	notes := make([]model.AppointmentNote, 0)
	for i, appt := range appts {
		if appt.Status != model.AppointmentStatusCompleted || !r.Chance(noteRate) {
			continue
		}
		for n := r.IntRange(1, maxNotesEach); n > 0; n-- {
			notes = append(notes, model.AppointmentNote{
				AppointmentID:    i + 1,
				AuthorProviderID: appt.ProviderID,
				Text:             r.Pick(notePhrases),
			})
		}
	}
	return notes
}
