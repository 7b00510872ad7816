// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-mirror-sync/models"
)

const (
	// DefaultAPIURL is the remote API base URL used when none is configured.
	DefaultAPIURL = "https://api.put.io/v2"
	// DefaultParallel is the default maximum number of concurrent transfers.
	DefaultParallel = 2
	// DefaultRequestTimeout bounds remote API calls (not content streaming).
	DefaultRequestTimeout = 30 * time.Second
	// DefaultPIDFileName is the base name of the single-instance lock file.
	DefaultPIDFileName = "mirror-sync.pid"
)

// StructuredConfig is the top-level configuration container for the
// go-mirror-sync application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote API settings.
	Adapter Adapter `envPrefix:"MIRROR_"`

	// Sync holds the scheduler and cycle settings.
	Sync Sync `envPrefix:"MIRROR_"`

	// Log holds the verbosity switches.
	Log Log `envPrefix:"MIRROR_"`

	// Storage holds the transfer journal settings.
	Storage Storage `envPrefix:"MIRROR_"`

	// Server holds the optional status API listener settings.
	Server Server `envPrefix:"MIRROR_"`

	// Mappings lists the remote↔local folder pairs to mirror. Mappings are
	// read from the JSON file or from repeated -mapping flags.
	Mappings []models.Mapping

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the remote API connection settings.
type Adapter struct {
	// APIURL is the base URL of the remote API (e.g. "https://api.put.io/v2").
	// Env: MIRROR_API_URL
	APIURL string `env:"API_URL"`

	// Token is the OAuth token attached to every remote API call.
	// Env: MIRROR_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the maximum duration of one remote API call.
	// Content streaming is not bounded by it.
	// Env: MIRROR_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds settings of the download scheduler and the cycle driver.
type Sync struct {
	// Parallel is the maximum number of concurrently running transfers.
	// Env: MIRROR_PARALLEL
	Parallel int `env:"PARALLEL"`

	// Wait is the delay between the end of one cycle and the start of the
	// next one. Zero runs a single cycle and exits.
	// Env: MIRROR_WAIT
	Wait time.Duration `env:"WAIT"`

	// Override bypasses the single-instance lock.
	// Env: MIRROR_OVERRIDE
	Override bool `env:"OVERRIDE"`

	// PIDFile is the path of the single-instance lock file.
	// Env: MIRROR_PID_FILE
	PIDFile string `env:"PID_FILE"`

	// Progress renders live per-slot progress bars instead of console logs.
	// Env: MIRROR_PROGRESS
	Progress bool `env:"PROGRESS"`
}

// Log holds verbosity switches.
type Log struct {
	// Verbose enables debug logging.
	// Env: MIRROR_VERBOSE
	Verbose bool `env:"VERBOSE"`

	// Quiet restricts logging to warnings and errors.
	// Env: MIRROR_QUIET
	Quiet bool `env:"QUIET"`

	// File receives log output while the progress view owns the terminal.
	// Env: MIRROR_LOG_FILE
	File string `env:"LOG_FILE"`
}

// Storage holds the transfer journal settings.
type Storage struct {
	// JournalDSN selects the journal backend: a "postgres://" URL, or a
	// SQLite file given as a path or a "sqlite://" URL. Empty disables the
	// journal.
	// Env: MIRROR_JOURNAL_DSN
	JournalDSN string `env:"JOURNAL_DSN"`
}

// Server holds the status API listener settings.
type Server struct {
	// StatusAddress is the "host:port" the status API listens on.
	// Empty disables the listener.
	// Env: MIRROR_STATUS_ADDRESS
	StatusAddress string `env:"STATUS_ADDRESS"`
}

// GetStructuredConfig loads, merges, defaults, and validates the
// application configuration from all available sources.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		build()
}

// applyDefaults fills fields left unset by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.APIURL == "" {
		cfg.Adapter.APIURL = DefaultAPIURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Sync.Parallel == 0 {
		cfg.Sync.Parallel = DefaultParallel
	}
	if cfg.Sync.PIDFile == "" {
		cfg.Sync.PIDFile = filepath.Join(os.TempDir(), DefaultPIDFileName)
	}
	if cfg.Log.File == "" && cfg.Sync.Progress {
		cfg.Log.File = filepath.Join(filepath.Dir(cfg.Sync.PIDFile), "mirror-sync.log")
	}
}
