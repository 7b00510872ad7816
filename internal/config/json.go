package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-mirror-sync/models"
)

// StructuredJSONConfig mirrors the layout of the JSON configuration file.
type StructuredJSONConfig struct {
	Token          string           `json:"oauth_token"`
	APIURL         string           `json:"api_url"`
	RequestTimeout Duration         `json:"request_timeout"`
	Parallel       int              `json:"parallel"`
	Wait           Duration         `json:"wait"`
	Verbose        bool             `json:"verbose"`
	Quiet          bool             `json:"quiet"`
	LogFile        string           `json:"log_file"`
	Override       bool             `json:"override"`
	PIDFile        string           `json:"pid_file"`
	Progress       bool             `json:"progress"`
	JournalDSN     string           `json:"journal_dsn"`
	StatusAddress  string           `json:"status_address"`
	Sync           []models.Mapping `json:"sync"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			APIURL:         jsonCfg.APIURL,
			Token:          jsonCfg.Token,
			RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
		},
		Sync: Sync{
			Parallel: jsonCfg.Parallel,
			Wait:     time.Duration(jsonCfg.Wait),
			Override: jsonCfg.Override,
			PIDFile:  jsonCfg.PIDFile,
			Progress: jsonCfg.Progress,
		},
		Log: Log{
			Verbose: jsonCfg.Verbose,
			Quiet:   jsonCfg.Quiet,
			File:    jsonCfg.LogFile,
		},
		Storage:      Storage{JournalDSN: jsonCfg.JournalDSN},
		Server:       Server{StatusAddress: jsonCfg.StatusAddress},
		Mappings:     jsonCfg.Sync,
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from plain numbers of seconds (30) and from duration strings
// ("1h", "30s").
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value * float64(time.Second)))
		return nil
	case string:
		tmp, err := parseSeconds(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		*d = 0
		return nil
	default:
		return fmt.Errorf("invalid duration value %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
