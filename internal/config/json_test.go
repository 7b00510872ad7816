package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "integer seconds", input: `600`, expected: 10 * time.Minute},
		{name: "fractional seconds", input: `1.5`, expected: 1500 * time.Millisecond},
		{name: "numeric string", input: `"30"`, expected: 30 * time.Second},
		{name: "duration string", input: `"1h"`, expected: time.Hour},
		{name: "null", input: `null`, expected: 0},
		{name: "invalid string", input: `"tomorrow"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
		{name: "malformed", input: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}

func TestParseJSON_FullFile(t *testing.T) {
	path := writeJSONFile(t, `{
		"oauth_token": "secret",
		"api_url": "https://api.example.com/v2",
		"request_timeout": "15s",
		"parallel": 4,
		"wait": 600,
		"verbose": true,
		"log_file": "/var/log/mirror.log",
		"override": true,
		"pid_file": "/run/mirror.pid",
		"progress": true,
		"journal_dsn": "/var/lib/mirror/journal.db",
		"status_address": "localhost:9100",
		"sync": [
			{"remote_path": "Movies", "local_path": "/data/movies", "recursive": true, "delete": true},
			{"remote_path": "/", "local_path": "/data/all", "delete_subfolder": true}
		]
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Adapter.Token)
	assert.Equal(t, "https://api.example.com/v2", cfg.Adapter.APIURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4, cfg.Sync.Parallel)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Wait)
	assert.True(t, cfg.Log.Verbose)
	assert.Equal(t, "/var/log/mirror.log", cfg.Log.File)
	assert.True(t, cfg.Sync.Override)
	assert.Equal(t, "/run/mirror.pid", cfg.Sync.PIDFile)
	assert.True(t, cfg.Sync.Progress)
	assert.Equal(t, "/var/lib/mirror/journal.db", cfg.Storage.JournalDSN)
	assert.Equal(t, "localhost:9100", cfg.Server.StatusAddress)
	assert.Empty(t, cfg.JSONFilePath)

	require.Len(t, cfg.Mappings, 2)
	assert.Equal(t, "Movies", cfg.Mappings[0].RemotePath)
	assert.True(t, cfg.Mappings[0].Recursive)
	assert.True(t, cfg.Mappings[0].DeleteAfterSync)
	assert.False(t, cfg.Mappings[0].DeleteEmptySubfolders)
	assert.True(t, cfg.Mappings[1].DeleteEmptySubfolders)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Sync{}, cfg.Sync)
	assert.Empty(t, cfg.Mappings)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseJSON(writeJSONFile(t, `{"parallel": `))
		assert.Error(t, err)
	})

	t.Run("bad wait", func(t *testing.T) {
		_, err := parseJSON(writeJSONFile(t, `{"wait": "whenever"}`))
		assert.Error(t, err)
	})
}
