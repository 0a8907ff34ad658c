package repository

import (
	"context"

	"github.com/jwalitptl/careconnect-api/internal/model"
)

// All repository interfaces in one file
type (
	// ReportRepository runs the fixed, read-only dashboard reports
	ReportRepository interface {
		// UpcomingAppointments returns the next 10 appointments starting from now
		UpcomingAppointments(ctx context.Context) ([]model.UpcomingAppointment, error)
		// NoShowRates returns the 5 providers with the highest no-show rate
		// among providers with more than 10 appointments
		NoShowRates(ctx context.Context) ([]model.ProviderNoShowRate, error)
		// AppointmentsByClinic returns appointment and no-show totals for every clinic
		AppointmentsByClinic(ctx context.Context) ([]model.ClinicAppointmentSummary, error)
	}

	// Pinger checks database connectivity
	Pinger interface {
		PingContext(ctx context.Context) error
	}
)
