package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-mirror-sync/models"
)

// mappingList collects repeated -mapping flags of the form "remote=local".
// It implements the flag.Value interface.
type mappingList []models.Mapping

// String returns the mappings in their flag form.
func (m *mappingList) String() string {
	parts := make([]string, 0, len(*m))
	for _, mapping := range *m {
		parts = append(parts, mapping.RemotePath+"="+mapping.LocalPath)
	}

	return strings.Join(parts, ",")
}

// Set parses one "remote=local" pair and appends it to the list.
func (m *mappingList) Set(s string) error {
	remote, local, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(local) == "" {
		return errors.New("need mapping in a form `remote/path=/local/path`")
	}

	*m = append(*m, models.Mapping{RemotePath: remote, LocalPath: local})
	return nil
}

// seconds is a time.Duration flag accepting either a plain number of
// seconds ("600") or a Go duration string ("10m").
type seconds time.Duration

func (s *seconds) String() string {
	return time.Duration(*s).String()
}

func (s *seconds) Set(v string) error {
	d, err := parseSeconds(v)
	if err != nil {
		return err
	}
	*s = seconds(d)
	return nil
}

func parseSeconds(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", v, err)
	}
	return d, nil
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-c/-config json file path with configs
//	-token remote API OAuth token
//	-api-url remote API base URL
//	-request-timeout remote API call timeout (e.g., "30s")
//	-p/-parallel max concurrent transfers
//	-w/-wait delay between cycles in seconds or as duration; 0 runs once
//	-v verbose logging
//	-q quiet logging
//	-log-file log file used with -progress
//	-override bypass the single-instance lock
//	-pid-file single-instance lock file path
//	-journal transfer journal DSN (SQLite path or postgres:// URL)
//	-status-address status API address host:port
//	-progress render live progress bars
//	-mapping remote=local pair, repeatable
//	-recursive / -delete / -delete-subfolder options for -mapping pairs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("mirror-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		jsonConfigPath  string
		token           string
		apiURL          string
		requestTimeout  time.Duration
		parallel        int
		wait            seconds
		verbose         bool
		quiet           bool
		logFile         string
		override        bool
		pidFile         string
		journalDSN      string
		statusAddress   string
		progress        bool
		mappings        mappingList
		recursive       bool
		deleteAfterSync bool
		deleteSubfolder bool
	)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&token, "token", "", "Remote API OAuth token")
	fs.StringVar(&apiURL, "api-url", "", "Remote API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote API request timeout (e.g., 30s)")
	fs.IntVar(&parallel, "p", 0, "Max concurrent transfers")
	fs.IntVar(&parallel, "parallel", 0, "Max concurrent transfers (alias)")
	fs.Var(&wait, "w", "Wait between cycles (seconds or duration), 0 runs once")
	fs.Var(&wait, "wait", "Wait between cycles (alias)")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	fs.BoolVar(&quiet, "q", false, "Quiet logging")
	fs.StringVar(&logFile, "log-file", "", "Log file used while progress bars are shown")
	fs.BoolVar(&override, "override", false, "Bypass the single-instance lock")
	fs.StringVar(&pidFile, "pid-file", "", "Single-instance lock file")
	fs.StringVar(&journalDSN, "journal", "", "Transfer journal DSN")
	fs.StringVar(&statusAddress, "status-address", "", "Status API address host:port")
	fs.BoolVar(&progress, "progress", false, "Render live progress bars")
	fs.Var(&mappings, "mapping", "Mapping remote=local (repeatable)")
	fs.BoolVar(&recursive, "recursive", false, "Recurse into subfolders for -mapping pairs")
	fs.BoolVar(&deleteAfterSync, "delete", false, "Delete remote files after sync for -mapping pairs")
	fs.BoolVar(&deleteSubfolder, "delete-subfolder", false, "Delete empty remote subfolders for -mapping pairs")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	for i := range mappings {
		mappings[i].Recursive = recursive
		mappings[i].DeleteAfterSync = deleteAfterSync
		mappings[i].DeleteEmptySubfolders = deleteSubfolder
	}

	return &StructuredConfig{
		Adapter: Adapter{
			APIURL:         apiURL,
			Token:          token,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Parallel: parallel,
			Wait:     time.Duration(wait),
			Override: override,
			PIDFile:  pidFile,
			Progress: progress,
		},
		Log: Log{
			Verbose: verbose,
			Quiet:   quiet,
			File:    logFile,
		},
		Storage:      Storage{JournalDSN: journalDSN},
		Server:       Server{StatusAddress: statusAddress},
		Mappings:     mappings,
		JSONFilePath: jsonConfigPath,
	}, nil
}
