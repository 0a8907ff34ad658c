// Package generator synthesizes a deterministic careconnect dataset:
// clinics, specialties, providers, patients, provider specialties, licenses,
// appointments and appointment notes.
package generator

import (
	"fmt"
	"time"

	"github.com/jwalitptl/careconnect-api/internal/model"
)

// Options sizes a generation run.
type Options struct {
	Seed         uint64
	Patients     int
	Providers    int
	Appointments int
}

type Generator struct {
	opts Options
	now  func() time.Time
}

type Option func(*Generator)

// WithClock overrides the generation time, which anchors dates of birth,
// license dates and the appointment window.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func New(opts Options, options ...Option) *Generator {
	g := &Generator{
		opts: opts,
		now:  time.Now,
	}
	for _, o := range options {
		o(g)
	}
	return g
}

// Generate runs the whole pipeline. Draws happen in a fixed order (clinics,
// specialties, providers, patients, provider specialties, licenses,
// appointments, notes); changing it changes the output for a given seed.
func (g *Generator) Generate() (*model.Dataset, error) {
	if g.opts.Patients < 0 || g.opts.Providers < 0 || g.opts.Appointments < 0 {
		return nil, fmt.Errorf("invalid options %+v: counts must not be negative", g.opts)
	}

	now := g.now().Truncate(time.Second)
	r := NewRand(g.opts.Seed)

	ds := &model.Dataset{GeneratedAt: now}
	ds.Clinics = generateClinics(r)
	ds.Specialties = generateSpecialties()
	ds.Providers = generateProviders(r, g.opts.Providers)
	ds.Patients = generatePatients(r, g.opts.Patients, now)
	ds.ProviderSpecialties = generateProviderSpecialties(r, len(ds.Providers), len(ds.Specialties))
	ds.Licenses = generateLicenses(r, len(ds.Providers), now)

	appts, err := generateAppointments(r, now, g.opts.Appointments, len(ds.Patients), len(ds.Providers), len(ds.Clinics))
	if err != nil {
		return nil, fmt.Errorf("failed to generate appointments: %w", err)
	}
	ds.Appointments = appts
	ds.Notes = generateNotes(r, appts)

	return ds, nil
}
