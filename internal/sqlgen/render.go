// Package sqlgen renders a generated dataset as SQL INSERT statements for
// the careconnect schema.
package sqlgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jwalitptl/careconnect-api/internal/model"
)

// Tables are written in this order so that no statement references a row
// that has not been inserted yet.
const (
	clinicInsert            = "INSERT INTO clinic (clinic_name,status,lot_number,street_name,village,city,region_number) VALUES "
	specialtyInsert         = "INSERT INTO specialty (specialty_name,specialty_description) VALUES "
	providerInsert          = "INSERT INTO medical_provider (first_name,last_name,phone,email) VALUES "
	patientInsert           = "INSERT INTO patient (first_name,last_name,date_of_birth,sex,phone,email,lot_number,street_name,village,city,region_number) VALUES "
	providerSpecialtyInsert = "INSERT INTO provider_specialty (provider_id,specialty_id) VALUES "
	licenseInsert           = "INSERT INTO medical_license (provider_id, issue_date, status) VALUES "
	appointmentInsert       = "INSERT INTO appointment (patient_id,provider_id,clinic_id,start_datetime,end_datetime,status,reason) VALUES "
	noteInsert              = "INSERT INTO appointment_note (appointment_id, author_provider_id, note_text) VALUES "
)

type renderer struct {
	lines []string
}

func (r *renderer) section(title string) {
	header := "-- Populate " + title
	if len(r.lines) > 0 {
		header = "\n" + header
	}
	r.lines = append(r.lines, header)
}

func (r *renderer) add(stmt string) {
	r.lines = append(r.lines, stmt)
}

// Statements returns the dataset as SQL lines: comment headers and one
// INSERT statement per row, in dependency order.
func Statements(ds *model.Dataset) []string {
	r := &renderer{}

	r.section("clinics")
	for _, c := range ds.Clinics {
		r.add(clinicInsert + values(
			quote(c.Name), quote(string(c.Status)), quote(c.LotNumber), quote(c.StreetName),
			quote(c.Village), quote(c.City), quote(c.RegionNumber),
		))
	}

	r.section("specialties")
	for _, s := range ds.Specialties {
		r.add(specialtyInsert + values(quote(s.Name), quote(s.Description)))
	}

	r.section("medical providers")
	for _, p := range ds.Providers {
		r.add(providerInsert + values(quote(p.FirstName), quote(p.LastName), quote(p.Phone), quote(p.Email)))
	}

	r.section("patients")
	for _, p := range ds.Patients {
		r.add(patientInsert + values(
			quote(p.FirstName), quote(p.LastName), quote(p.DateOfBirth.Format(model.DateLayout)),
			quote(string(p.Sex)), quote(p.Phone), quote(p.Email), quote(p.LotNumber),
			quote(p.StreetName), quote(p.Village), quote(p.City), quote(p.RegionNumber),
		))
	}

	r.section("provider_specialty")
	for _, ps := range ds.ProviderSpecialties {
		r.add(providerSpecialtyInsert + values(fmt.Sprint(ps.ProviderID), fmt.Sprint(ps.SpecialtyID)))
	}

	r.section("medical_license")
	for _, l := range ds.Licenses {
		r.add(licenseInsert + fmt.Sprintf("(%d, %s, %s);",
			l.ProviderID, quote(l.IssueDate.Format(model.DateLayout)), quote(string(l.Status))))
	}

	r.section("appointments")
	for _, a := range ds.Appointments {
		r.add(appointmentInsert + values(
			fmt.Sprint(a.PatientID), fmt.Sprint(a.ProviderID), fmt.Sprint(a.ClinicID),
			quote(a.StartTime.Format(model.DateTimeLayout)), quote(a.EndTime.Format(model.DateTimeLayout)),
			quote(string(a.Status)), quote(a.Reason),
		))
	}

	r.section("appointment notes")
	for _, n := range ds.Notes {
		r.add(noteInsert + values(fmt.Sprint(n.AppointmentID), fmt.Sprint(n.AuthorProviderID), quote(n.Text)))
	}

	return r.lines
}

// Render returns the full SQL script, newline terminated.
func Render(ds *model.Dataset) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(Statements(ds), "\n"))
	buf.WriteByte('\n')
	return buf.Bytes()
}

func values(literals ...string) string {
	return "(" + strings.Join(literals, ",") + ");"
}
