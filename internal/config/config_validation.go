// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.Token) == "" {
		return fmt.Errorf("%w: oauth token is required", ErrInvalidAdapterConfigs)
	}

	if cfg.Sync.Parallel < 1 {
		return fmt.Errorf("%w: parallel must be at least 1", ErrInvalidSyncConfigs)
	}

	if cfg.Sync.Wait < 0 {
		return fmt.Errorf("%w: wait must not be negative", ErrInvalidSyncConfigs)
	}

	if cfg.Log.Verbose && cfg.Log.Quiet {
		return fmt.Errorf("%w: verbose and quiet are mutually exclusive", ErrInvalidLogConfigs)
	}

	if len(cfg.Mappings) == 0 {
		return ErrNoMappings
	}

	// An empty remote path is the remote root.
	for i, m := range cfg.Mappings {
		if strings.TrimSpace(m.LocalPath) == "" {
			return fmt.Errorf("%w: mapping %d has no local path", ErrInvalidMapping, i)
		}
	}

	return nil
}

// expandPaths resolves a leading "~" in every local path.
func (cfg *StructuredConfig) expandPaths() error {
	for i := range cfg.Mappings {
		expanded, err := homedir.Expand(cfg.Mappings[i].LocalPath)
		if err != nil {
			return fmt.Errorf("expand local path %q: %w", cfg.Mappings[i].LocalPath, err)
		}
		cfg.Mappings[i].LocalPath = expanded
	}

	pidFile, err := homedir.Expand(cfg.Sync.PIDFile)
	if err != nil {
		return fmt.Errorf("expand pid file path: %w", err)
	}
	cfg.Sync.PIDFile = pidFile

	if cfg.Storage.JournalDSN != "" && !isPostgresDSN(cfg.Storage.JournalDSN) {
		path, hasScheme := strings.CutPrefix(cfg.Storage.JournalDSN, "sqlite://")
		path, err = homedir.Expand(path)
		if err != nil {
			return fmt.Errorf("expand journal path: %w", err)
		}
		if hasScheme {
			path = "sqlite://" + path
		}
		cfg.Storage.JournalDSN = path
	}

	return nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
