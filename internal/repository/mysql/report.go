package mysql

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/careconnect-api/internal/model"
	"github.com/jwalitptl/careconnect-api/internal/repository"
)

const (
	upcomingAppointmentsQuery = `
		SELECT
			a.start_datetime,
			a.status,
			p.first_name AS patient,
			mp.last_name AS provider,
			c.clinic_name
		FROM appointment a
		JOIN patient p ON p.patient_id = a.patient_id
		JOIN medical_provider mp ON mp.provider_id = a.provider_id
		JOIN clinic c ON c.clinic_id = a.clinic_id
		WHERE a.start_datetime >= NOW()
		ORDER BY a.start_datetime
		LIMIT 10
	`

	noShowRatesQuery = `
		SELECT
			mp.last_name AS provider,
			ROUND(100 * SUM(a.status = 'no_show') / COUNT(*), 2) AS no_show_rate
		FROM appointment a
		JOIN medical_provider mp ON mp.provider_id = a.provider_id
		GROUP BY mp.provider_id, mp.last_name
		HAVING COUNT(*) > 10
		ORDER BY no_show_rate DESC
		LIMIT 5
	`

	appointmentsByClinicQuery = `
		SELECT
			c.clinic_name,
			COUNT(a.appointment_id) AS total_appointments,
			COALESCE(SUM(a.status = 'no_show'), 0) AS no_shows
		FROM clinic c
		LEFT JOIN appointment a ON a.clinic_id = c.clinic_id
		GROUP BY c.clinic_id, c.clinic_name
		ORDER BY total_appointments DESC
	`
)

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) UpcomingAppointments(ctx context.Context) ([]model.UpcomingAppointment, error) {
	rows := []model.UpcomingAppointment{}
	if err := r.db.SelectContext(ctx, &rows, upcomingAppointmentsQuery); err != nil {
		return nil, fmt.Errorf("failed to query upcoming appointments: %w", err)
	}
	return rows, nil
}

func (r *reportRepository) NoShowRates(ctx context.Context) ([]model.ProviderNoShowRate, error) {
	rows := []model.ProviderNoShowRate{}
	if err := r.db.SelectContext(ctx, &rows, noShowRatesQuery); err != nil {
		return nil, fmt.Errorf("failed to query no-show rates: %w", err)
	}
	return rows, nil
}

func (r *reportRepository) AppointmentsByClinic(ctx context.Context) ([]model.ClinicAppointmentSummary, error) {
	rows := []model.ClinicAppointmentSummary{}
	if err := r.db.SelectContext(ctx, &rows, appointmentsByClinicQuery); err != nil {
		return nil, fmt.Errorf("failed to query appointments by clinic: %w", err)
	}
	return rows, nil
}
