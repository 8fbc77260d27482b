package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the configuration struct from environment variables using
// its `env` field tags. A .env file in the working directory is loaded once
// per process before the first parse; a missing file is not an error.
//
// Required keys missing from the environment fail here, so configuration
// problems surface at startup rather than on first use.
//
// Example:
//
//	type Config struct {
//		SecretKey string `env:"SECRET_KEY,required"`
//		CheckXSRF bool   `env:"CHECK_XSRF" envDefault:"true"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is a development convenience and may not exist.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
