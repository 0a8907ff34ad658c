package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// PopulateConfig configures the dataset generator. Every field can be set
// through a CARECONNECT_ prefixed environment variable.
type PopulateConfig struct {
	Seed            int64  `envconfig:"SEED" default:"2102" validate:"gte=0"`
	NumPatients     int    `envconfig:"NUM_PATIENTS" default:"30000" validate:"gte=0"`
	NumProviders    int    `envconfig:"NUM_PROVIDERS" default:"2000" validate:"gte=0"`
	NumAppointments int    `envconfig:"NUM_APPOINTMENTS" default:"80000" validate:"gte=0"`
	Output          string `envconfig:"OUTPUT" default:"careconnect_data.sql" validate:"required"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

func LoadPopulateConfig() (*PopulateConfig, error) {
	var cfg PopulateConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *PopulateConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid populate config: %w", err)
	}
	return nil
}
