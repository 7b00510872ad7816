// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"MIRROR_API_URL":         "https://api.example.com/v2",
		"MIRROR_TOKEN":           "secret",
		"MIRROR_REQUEST_TIMEOUT": "15s",

		"MIRROR_PARALLEL": "4",
		"MIRROR_WAIT":     "10m",
		"MIRROR_OVERRIDE": "true",
		"MIRROR_PID_FILE": "/run/mirror.pid",
		"MIRROR_PROGRESS": "true",

		"MIRROR_VERBOSE":  "true",
		"MIRROR_LOG_FILE": "/var/log/mirror.log",

		"MIRROR_JOURNAL_DSN":    "/var/lib/mirror/journal.db",
		"MIRROR_STATUS_ADDRESS": "localhost:9100",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://api.example.com/v2", cfg.Adapter.APIURL)
	assert.Equal(t, "secret", cfg.Adapter.Token)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 4, cfg.Sync.Parallel)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Wait)
	assert.True(t, cfg.Sync.Override)
	assert.Equal(t, "/run/mirror.pid", cfg.Sync.PIDFile)
	assert.True(t, cfg.Sync.Progress)

	assert.True(t, cfg.Log.Verbose)
	assert.False(t, cfg.Log.Quiet)
	assert.Equal(t, "/var/log/mirror.log", cfg.Log.File)

	assert.Equal(t, "/var/lib/mirror/journal.db", cfg.Storage.JournalDSN)
	assert.Equal(t, "localhost:9100", cfg.Server.StatusAddress)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	setEnvVars(t, nil)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Sync{}, cfg.Sync)
	assert.Equal(t, Log{}, cfg.Log)
	assert.Empty(t, cfg.Mappings)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"MIRROR_WAIT": "invalid_duration"})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_WaitInSeconds(t *testing.T) {
	setEnvVars(t, map[string]string{
		"MIRROR_WAIT":            "600",
		"MIRROR_REQUEST_TIMEOUT": "45",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, 10*time.Minute, cfg.Sync.Wait)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
}

// Helpers

var envKeys = []string{
	"CONFIG",
	"MIRROR_API_URL",
	"MIRROR_TOKEN",
	"MIRROR_REQUEST_TIMEOUT",
	"MIRROR_PARALLEL",
	"MIRROR_WAIT",
	"MIRROR_OVERRIDE",
	"MIRROR_PID_FILE",
	"MIRROR_PROGRESS",
	"MIRROR_VERBOSE",
	"MIRROR_QUIET",
	"MIRROR_LOG_FILE",
	"MIRROR_JOURNAL_DSN",
	"MIRROR_STATUS_ADDRESS",
}

// setEnvVars clears every known variable for the duration of the test and
// then sets vars. t.Setenv restores the previous values on cleanup.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
