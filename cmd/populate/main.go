package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jwalitptl/careconnect-api/internal/config"
	"github.com/jwalitptl/careconnect-api/internal/generator"
	"github.com/jwalitptl/careconnect-api/internal/model"
	"github.com/jwalitptl/careconnect-api/internal/sqlgen"
	"github.com/jwalitptl/careconnect-api/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	seed         int64
	patients     int
	providers    int
	appointments int
	output       string
	logLevel     string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "populate",
		Short:         "Generate a deterministic careconnect dataset as SQL INSERT statements",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadPopulateConfig()
			if err != nil {
				log.Error().Err(err).Msg("failed to load configuration")
				return err
			}
			applyFlags(cmd, &f, cfg)
			if err := cfg.Validate(); err != nil {
				log.Error().Err(err).Msg("invalid configuration")
				return err
			}

			l := logger.NewLogger(&logger.Config{
				Level:      logger.ParseLevel(cfg.LogLevel),
				TimeFormat: time.RFC3339,
				Output:     os.Stderr,
			})
			log.Logger = l.Zerolog()

			_, err = run(cfg)
			return err
		},
	}

	fs := cmd.Flags()
	fs.Int64Var(&f.seed, "seed", 2102, "random seed")
	fs.IntVar(&f.patients, "patients", 30000, "number of patients")
	fs.IntVar(&f.providers, "providers", 2000, "number of medical providers")
	fs.IntVar(&f.appointments, "appointments", 80000, "number of appointments")
	fs.StringVar(&f.output, "output", "careconnect_data.sql", "output SQL file")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

// applyFlags overrides environment settings with flags given on the command line
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.PopulateConfig) {
	fs := cmd.Flags()
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("patients") {
		cfg.NumPatients = f.patients
	}
	if fs.Changed("providers") {
		cfg.NumProviders = f.providers
	}
	if fs.Changed("appointments") {
		cfg.NumAppointments = f.appointments
	}
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
}

func run(cfg *config.PopulateConfig, options ...generator.Option) (*model.Dataset, error) {
	start := time.Now()

	gen := generator.New(generator.Options{
		Seed:         uint64(cfg.Seed),
		Patients:     cfg.NumPatients,
		Providers:    cfg.NumProviders,
		Appointments: cfg.NumAppointments,
	}, options...)

	ds, err := gen.Generate()
	if err != nil {
		log.Error().Err(err).Int64("seed", cfg.Seed).Msg("failed to generate dataset")
		return nil, err
	}

	n, err := sqlgen.WriteFile(cfg.Output, ds)
	if err != nil {
		log.Error().Err(err).Str("output", cfg.Output).Msg("failed to write dataset")
		return nil, err
	}

	log.Info().
		Str("output", cfg.Output).
		Int64("seed", cfg.Seed).
		Int("patients", len(ds.Patients)).
		Int("providers", len(ds.Providers)).
		Int("appointments", len(ds.Appointments)).
		Int("notes", len(ds.Notes)).
		Int("bytes", n).
		Dur("elapsed", time.Since(start)).
		Msg("dataset written")

	return ds, nil
}
