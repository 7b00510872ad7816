package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrNoMappings indicates that no remote↔local mapping was configured.
	ErrNoMappings = errors.New("no sync mappings configured")
	// ErrInvalidMapping indicates a mapping with an empty local path.
	ErrInvalidMapping = errors.New("invalid sync mapping")
	// ErrInvalidAdapterConfigs indicates invalid remote API settings
	// (for example, missing token).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSyncConfigs indicates invalid scheduler settings
	// (for example, non-positive parallelism or negative wait).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidLogConfigs indicates contradicting verbosity switches.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
