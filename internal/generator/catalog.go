package generator

import "github.com/jwalitptl/careconnect-api/internal/model"

const (
	providerEmailDomain = "careconnect.gy"
	patientEmailDomain  = "patientmail.gy"
	phonePrefix         = "5926"
	phoneDigits         = 6
)

var clinicNames = []string{
	"Georgetown Public Hospital",
	"New Amsterdam Regional Hospital",
	"Linden Hospital Complex",
	"Suddie Regional Hospital",
	"West Demerara Regional Hospital",
	"Skeldon Public Hospital",
}

// three in four clinics are open
var clinicStatuses = []string{
	string(model.ClinicStatusOpen),
	string(model.ClinicStatusOpen),
	string(model.ClinicStatusOpen),
	string(model.ClinicStatusRenovation),
}

var specialtyCatalog = []model.Specialty{
	{Name: "Family Medicine", Description: "Primary care and general practice."},
	{Name: "Pediatrics", Description: "Healthcare for infants, children, and adolescents."},
	{Name: "Cardiology", Description: "Heart and vascular system."},
	{Name: "Dermatology", Description: "Skin, hair, and nail conditions."},
	{Name: "Orthopedics", Description: "Musculoskeletal system and injuries."},
	{Name: "Obstetrics & Gynecology", Description: "Pregnancy and women's health."},
	{Name: "Internal Medicine", Description: "Adult medicine and complex conditions."},
	{Name: "Psychiatry", Description: "Mental health and behavioral disorders."},
}

var cities = []string{"Georgetown", "Linden", "New Amsterdam", "Anna Regina"}

var villages = []string{
	"Albouystown", "Kitty", "Plaisance", "Buxton", "Mahaicony",
	"Rosignol", "Parika", "Bartica", "Wismar", "Vreed-en-Hoop",
}

var sexes = []string{
	string(model.SexMale),
	string(model.SexFemale),
	string(model.SexOther),
	string(model.SexUnknown),
}

var appointmentReasons = []string{
	"Routine check-up", "Follow-up visit", "Lab results review",
	"Medication refill", "New symptoms evaluation", "Pre-op consultation",
	"Vaccination", "Prenatal visit", "Dermatology consult", "Cardiac screening",
}

var notePhrases = []string{
	"Patient assessed; vitals stable. Advised follow-up in 2 weeks.",
	"Discussed symptoms and treatment plan. Prescribed medication.",
	"Reviewed labs; no critical findings. Lifestyle advice provided.",
	"Condition improving. Continue current regimen and monitor.",
}

var (
	workingHours         = []int{8, 9, 10, 11, 13, 14, 15, 16}
	slotMinutes          = []int{0, 30}
	appointmentDurations = []int{30, 60}
)

var (
	pastStatuses = []model.AppointmentStatus{
		model.AppointmentStatusScheduled,
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
		model.AppointmentStatusNoShow,
	}
	pastStatusWeights = []float64{35, 45, 10, 10}

	// completed and no_show cannot happen in the future
	futureStatuses = []model.AppointmentStatus{
		model.AppointmentStatusScheduled,
		model.AppointmentStatusCancelled,
	}
	futureStatusWeights = []float64{85, 15}
)
