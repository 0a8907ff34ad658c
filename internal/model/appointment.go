package model

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

type Appointment struct {
	PatientID  int               `db:"patient_id" json:"patient_id"`
	ProviderID int               `db:"provider_id" json:"provider_id"`
	ClinicID   int               `db:"clinic_id" json:"clinic_id"`
	StartTime  time.Time         `db:"start_datetime" json:"start_datetime"`
	EndTime    time.Time         `db:"end_datetime" json:"end_datetime"`
	Status     AppointmentStatus `db:"status" json:"status"`
	Reason     string            `db:"reason" json:"reason"`
}

type AppointmentNote struct {
	AppointmentID    int    `db:"appointment_id" json:"appointment_id"`
	AuthorProviderID int    `db:"author_provider_id" json:"author_provider_id"`
	Text             string `db:"note_text" json:"note_text"`
}
