package model

// UpcomingAppointment is a row of the upcoming appointments report
type UpcomingAppointment struct {
	StartTime  DateTime `db:"start_datetime" json:"start_datetime"`
	Status     string   `db:"status" json:"status"`
	Patient    string   `db:"patient" json:"patient"`
	Provider   string   `db:"provider" json:"provider"`
	ClinicName string   `db:"clinic_name" json:"clinic_name"`
}

// ProviderNoShowRate is the no-show percentage of a single provider
type ProviderNoShowRate struct {
	Provider   string  `db:"provider" json:"provider"`
	NoShowRate float64 `db:"no_show_rate" json:"no_show_rate"`
}

// ClinicAppointmentSummary counts appointments and no-shows for a clinic
type ClinicAppointmentSummary struct {
	ClinicName        string `db:"clinic_name" json:"clinic_name"`
	TotalAppointments int64  `db:"total_appointments" json:"total_appointments"`
	NoShows           int64  `db:"no_shows" json:"no_shows"`
}
